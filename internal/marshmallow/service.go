package marshmallow

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/lookaway/lookaway/internal/adapter"
	"github.com/lookaway/lookaway/internal/domain"
	"github.com/lookaway/lookaway/internal/logger"
	"github.com/lookaway/lookaway/internal/messaging"
	"github.com/lookaway/lookaway/internal/settings"
	"github.com/lookaway/lookaway/internal/store"
)

// Service gates and executes marshmallow allocations
//
//go:generate mockgen -source=service.go -destination=../mocks/marshmallow_service.go -package=mocks -mock_names=Service=MockMarshmallowService
type Service interface {
	// CanAllocate reports whether the account's cooldown has elapsed; an account without a profile cannot allocate
	CanAllocate(ctx context.Context, accountID uuid.UUID) (bool, error)
	// IsNewAccount reports whether the account is younger than the maturity window
	IsNewAccount(ctx context.Context, accountID uuid.UUID) (bool, error)
	// AdjustedWeight returns the weight the account's next allocation would carry
	AdjustedWeight(ctx context.Context, accountID uuid.UUID, scope *domain.EntityType) (float64, error)
	// Allocate transfers a marshmallow from the account to the entity when the account is eligible
	Allocate(ctx context.Context, accountID uuid.UUID, entityType domain.EntityType, entityID uint64) (*Result, error)
}

// Result is the outcome of an allocation attempt.
// An ineligible attempt is not an error: Allocated is false and Reason says why.
type Result struct {
	Allocated    bool
	Reason       domain.IneligibleReason
	Weight       float64
	EntityWeight float64
	Label        string
	AllocationID uint64
	AllocatedAt  time.Time
}

type service struct {
	settings  settings.Settings
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	metrics   *metrics
}

// NewService creates a new allocation service
func NewService(
	cfg settings.Settings,
	st store.Store,
	publisher messaging.Publisher,
	clock adapter.Clock,
	promRegistry prometheus.Registerer,
) Service {
	return &service{
		settings:  cfg,
		store:     st,
		publisher: publisher,
		clock:     clock,
		metrics:   newMetrics(promRegistry),
	}
}

// CanAllocate reports whether the account's cooldown has elapsed
func (s *service) CanAllocate(ctx context.Context, accountID uuid.UUID) (bool, error) {
	profile, err := s.store.GetProfile(ctx, accountID)
	if err != nil {
		return false, err
	}
	if profile == nil {
		// No allocation history: fail closed
		return false, nil
	}
	return CanAllocateAt(profile.LastAllocationAt, s.clock.Now(), s.settings.Cooldown), nil
}

// IsNewAccount reports whether the account is younger than the maturity window
func (s *service) IsNewAccount(ctx context.Context, accountID uuid.UUID) (bool, error) {
	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return false, err
	}
	if account == nil {
		return false, domain.ErrAccountNotFound
	}
	return IsNewAt(account.JoinedAt, s.clock.Now(), s.settings.Maturity), nil
}

// AdjustedWeight returns the weight the account's next allocation would carry
func (s *service) AdjustedWeight(ctx context.Context, accountID uuid.UUID, scope *domain.EntityType) (float64, error) {
	if scope != nil && !scope.Valid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownEntityType, *scope)
	}

	since := s.clock.Now().Add(-s.settings.Lookback())
	q, err := s.store.CountAllocationsSince(ctx, accountID, since, scope)
	if err != nil {
		return 0, err
	}
	return ComputeWeight(q, s.settings.LookbackDays, s.settings.Multiplier), nil
}

// Allocate transfers a marshmallow from the account to the entity.
// The eligibility checks, ledger insert, weight increment and profile touch share one transaction.
// A transaction aborted by a concurrent writer is retried once.
func (s *service) Allocate(ctx context.Context, accountID uuid.UUID, entityType domain.EntityType, entityID uint64) (*Result, error) {
	if !entityType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEntityType, entityType)
	}

	operation := func() (*Result, error) {
		result, err := s.allocateOnce(ctx, accountID, entityType, entityID)
		if err != nil {
			if store.IsRetryable(err) {
				s.metrics.conflicts.Inc()
				logger.WarnCtx(ctx, "Allocation conflicted with a concurrent writer",
					zap.Error(err),
					logger.AccountID(accountID),
					logger.EntityType(entityType.String()),
					logger.EntityID(entityID),
				)
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		return result, nil
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(s.settings.RetryDelay), 1),
		ctx,
	)
	result, err := backoff.RetryWithData(operation, b)
	if err != nil {
		if store.IsRetryable(err) {
			return nil, fmt.Errorf("%w: %w", domain.ErrAllocationConflict, err)
		}
		return nil, err
	}

	if !result.Allocated {
		s.metrics.ineligible.WithLabelValues(string(result.Reason)).Inc()
		logger.DebugCtx(ctx, "Allocation refused",
			logger.AccountID(accountID),
			logger.EntityType(entityType.String()),
			logger.EntityID(entityID),
			logger.Reason(string(result.Reason)),
		)
		return result, nil
	}

	s.metrics.allocations.WithLabelValues(entityType.String()).Inc()
	s.metrics.weight.Observe(result.Weight)
	logger.InfoCtx(ctx, "Allocation committed",
		logger.AccountID(accountID),
		logger.EntityType(entityType.String()),
		logger.EntityID(entityID),
		logger.Weight(result.Weight),
		zap.Float64("entity_weight", result.EntityWeight),
	)

	s.publish(ctx, accountID, entityType, entityID, result)
	return result, nil
}

// allocateOnce runs a single allocation transaction
func (s *service) allocateOnce(ctx context.Context, accountID uuid.UUID, entityType domain.EntityType, entityID uint64) (*Result, error) {
	now := s.clock.Now()

	var result *Result
	err := s.store.RunAllocationTx(ctx, func(tx store.AllocationTx) error {
		result = nil

		profile, err := tx.LockProfile(accountID)
		if err != nil {
			return err
		}
		if profile == nil {
			result = ineligible(domain.ReasonNoProfile)
			return nil
		}

		account, err := tx.GetAccount(accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrAccountNotFound
		}
		if IsNewAt(account.JoinedAt, now, s.settings.Maturity) {
			result = ineligible(domain.ReasonNewAccount)
			return nil
		}
		if !CanAllocateAt(profile.LastAllocationAt, now, s.settings.Cooldown) {
			result = ineligible(domain.ReasonCooldown)
			return nil
		}

		entity, err := tx.LockEntity(entityType, entityID)
		if err != nil {
			return err
		}
		if entity == nil {
			return domain.ErrEntityNotFound
		}
		if !entity.IsPublished(now) {
			result = ineligible(domain.ReasonEntityNotPublic)
			return nil
		}

		var scope *domain.EntityType
		if s.settings.ScopeByEntityType {
			scope = &entityType
		}
		q, err := tx.CountAllocationsSince(accountID, now.Add(-s.settings.Lookback()), scope)
		if err != nil {
			return err
		}
		weight := ComputeWeight(q, s.settings.LookbackDays, s.settings.Multiplier)

		appended, err := tx.AppendAllocation(store.AppendAllocationInput{
			AccountID:  accountID,
			EntityType: entityType,
			EntityID:   entityID,
			Weight:     weight,
			CreatedAt:  now,
		})
		if err != nil {
			return err
		}

		if err := tx.TouchProfile(accountID, now); err != nil {
			return err
		}

		result = &Result{
			Allocated:    true,
			Weight:       weight,
			EntityWeight: appended.EntityWeight,
			Label:        Label(weight),
			AllocationID: appended.Allocation.ID,
			AllocatedAt:  now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// publish emits the allocation event; a failure never undoes the committed allocation
func (s *service) publish(ctx context.Context, accountID uuid.UUID, entityType domain.EntityType, entityID uint64, result *Result) {
	if s.publisher == nil {
		return
	}

	event := &domain.AllocationEvent{
		EventID:      newEventID(result.AllocatedAt),
		AllocationID: result.AllocationID,
		AccountID:    accountID,
		EntityType:   entityType,
		EntityID:     entityID,
		Weight:       result.Weight,
		EntityWeight: result.EntityWeight,
		CreatedAt:    result.AllocatedAt,
	}
	if err := s.publisher.PublishAllocation(ctx, event); err != nil {
		s.metrics.publishFailures.Inc()
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish allocation event: %w", err),
			zap.String("event_id", event.EventID),
			zap.Uint64("allocation_id", event.AllocationID),
		)
	}
}

func ineligible(reason domain.IneligibleReason) *Result {
	return &Result{Allocated: false, Reason: reason}
}
