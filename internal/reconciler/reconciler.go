package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/lookaway/lookaway/internal/adapter"
	"github.com/lookaway/lookaway/internal/domain"
	"github.com/lookaway/lookaway/internal/logger"
	"github.com/lookaway/lookaway/internal/store"
)

// Reconciler is a long-running background task that repairs denormalized entity weights
type Reconciler interface {
	// Start runs reconciliation cycles until the context is canceled or Stop is called
	Start(ctx context.Context) error
	// Stop gracefully stops the reconciler, waiting for the running cycle
	Stop(ctx context.Context) error
	// RunOnce runs a single reconciliation cycle over every entity type
	RunOnce(ctx context.Context) (*Report, error)
	// Name returns the reconciler's name for logging and identification
	Name() string
}

// Config holds configuration for the weight reconciler
type Config struct {
	Interval       time.Duration // Time to sleep between cycles
	WorkerPoolSize int           // Entity types reconciled concurrently
	BatchSize      int           // Drifted entities read per query
	RetryTimeout   time.Duration // Give up raising a weight after this long
}

// Report summarizes a reconciliation cycle
type Report struct {
	Scanned int64
	Raised  int64
	Ahead   int64
	Failed  int64
}

type weightReconciler struct {
	config    Config
	store     store.Store
	clock     adapter.Clock
	raised    prometheus.Counter
	ahead     prometheus.Counter

	// mu guards running and the channels of the current run
	mu        sync.Mutex
	running   bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// New creates a new weight reconciler
func New(config Config, st store.Store, clock adapter.Clock, promRegistry prometheus.Registerer) Reconciler {
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 1
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 500
	}
	if config.RetryTimeout <= 0 {
		config.RetryTimeout = time.Minute
	}
	if promRegistry == nil {
		promRegistry = prometheus.NewRegistry()
	}

	promautoFactory := promauto.With(promRegistry)
	return &weightReconciler{
		config: config,
		store:  st,
		clock:  clock,
		raised: promautoFactory.NewCounter(prometheus.CounterOpts{
			Name: "lookaway_reconciler_weights_raised_total",
			Help: "entity weights raised to their ledger sum",
		}),
		ahead: promautoFactory.NewCounter(prometheus.CounterOpts{
			Name: "lookaway_reconciler_weights_ahead_total",
			Help: "entity weights found above their ledger sum",
		}),
	}
}

// Name returns the reconciler's name
func (r *weightReconciler) Name() string {
	return "weight-reconciler"
}

// Start begins the reconciler's main loop. A stopped reconciler may be started again.
func (r *weightReconciler) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return fmt.Errorf("reconciler already running")
	}
	r.running = true
	r.stopChan = make(chan struct{})
	r.stoppedCh = make(chan struct{})
	stopChan, stoppedCh := r.stopChan, r.stoppedCh
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
		close(stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting weight reconciler",
		zap.Duration("interval", r.config.Interval),
		zap.Int("batch_size", r.config.BatchSize),
		zap.Int("worker_pool_size", r.config.WorkerPoolSize),
	)

	for {
		if _, err := r.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}

		select {
		case <-r.clock.After(r.config.Interval):
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Weight reconciler stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-stopChan:
			logger.InfoCtx(ctx, "Weight reconciler stop requested")
			return nil
		}
	}
}

// Stop gracefully stops the reconciler with timeout support
func (r *weightReconciler) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil // Not running
	}
	stopChan, stoppedCh := r.stopChan, r.stoppedCh
	r.mu.Unlock()

	logger.InfoCtx(ctx, "Stopping weight reconciler")

	// Signal stop to the main loop
	select {
	case <-stopChan:
	default:
		close(stopChan)
	}

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-stoppedCh:
		logger.InfoCtx(ctx, "Weight reconciler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Weight reconciler stop interrupted by context timeout")
		return ctx.Err()
	}
}

// RunOnce reconciles every entity type on the worker pool
func (r *weightReconciler) RunOnce(ctx context.Context) (*Report, error) {
	startTime := r.clock.Now()

	pool := pond.NewPool(
		r.config.WorkerPoolSize,
		pond.WithQueueSize(len(domain.EntityTypes)),
		pond.WithContext(ctx),
	)

	var scanned, raised, ahead, failed atomic.Int64
	for _, entityType := range domain.EntityTypes {
		pool.Submit(func() {
			if err := r.reconcileType(ctx, entityType, &scanned, &raised, &ahead, &failed); err != nil {
				failed.Add(1)
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err, logger.EntityType(entityType.String()))
				}
			}
		})
	}
	pool.StopAndWait()

	report := &Report{
		Scanned: scanned.Load(),
		Raised:  raised.Load(),
		Ahead:   ahead.Load(),
		Failed:  failed.Load(),
	}
	logger.InfoCtx(ctx, "Reconciliation cycle completed",
		zap.Duration("duration", r.clock.Since(startTime)),
		zap.Int64("scanned", report.Scanned),
		zap.Int64("raised", report.Raised),
		zap.Int64("ahead", report.Ahead),
		zap.Int64("failed", report.Failed),
	)

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// reconcileType pages through the drifted entities of one type
func (r *weightReconciler) reconcileType(ctx context.Context, entityType domain.EntityType, scanned, raised, ahead, failed *atomic.Int64) error {
	var afterID uint64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		drifts, err := r.store.ListWeightDrift(ctx, entityType, afterID, r.config.BatchSize)
		if err != nil {
			return fmt.Errorf("failed to list weight drift: %w", err)
		}

		for _, drift := range drifts {
			scanned.Add(1)
			afterID = drift.EntityID

			if drift.Weight > drift.LedgerSum {
				// Weights never go down; this happens after a giving account is deleted
				ahead.Add(1)
				r.ahead.Inc()
				logger.WarnCtx(ctx, "Entity weight is above its ledger sum",
					logger.EntityType(entityType.String()),
					logger.EntityID(drift.EntityID),
					logger.Weight(drift.Weight),
					zap.Float64("ledger_sum", drift.LedgerSum),
				)
				continue
			}

			ok, err := r.raiseWithRetry(ctx, entityType, drift.EntityID)
			if err != nil {
				failed.Add(1)
				logger.ErrorCtx(ctx, fmt.Errorf("failed to raise weight after retries: %w", err),
					logger.EntityType(entityType.String()),
					logger.EntityID(drift.EntityID),
				)
				continue
			}
			if ok {
				raised.Add(1)
				r.raised.Inc()
				logger.InfoCtx(ctx, "Raised entity weight to its ledger sum",
					logger.EntityType(entityType.String()),
					logger.EntityID(drift.EntityID),
					logger.Weight(drift.LedgerSum),
				)
			}
		}

		if len(drifts) < r.config.BatchSize {
			return nil
		}
	}
}

// raiseWithRetry raises a weight with exponential backoff on transient failures
func (r *weightReconciler) raiseWithRetry(ctx context.Context, entityType domain.EntityType, entityID uint64) (bool, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = r.config.RetryTimeout

	// Wrap with context to respect cancellation
	backoffWithContext := backoff.WithContext(b, ctx)

	operation := func() (bool, error) {
		ok, err := r.store.RaiseWeight(ctx, entityType, entityID)
		if errors.Is(err, domain.ErrEntityNotFound) {
			// Deleted since it was listed
			return false, backoff.Permanent(err)
		}
		return ok, err
	}

	ok, err := backoff.RetryWithData(operation, backoffWithContext)
	if errors.Is(err, domain.ErrEntityNotFound) {
		return false, nil
	}
	return ok, err
}
