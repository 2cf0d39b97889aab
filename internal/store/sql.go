package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lookaway/lookaway/internal/domain"
	"github.com/lookaway/lookaway/internal/store/schema"
)

// weightTolerance absorbs float rounding between the running weight and a ledger SUM
const weightTolerance = 1e-6

type sqlStore struct {
	db *gorm.DB
}

// NewSQLStore creates a new store on a gorm connection (PostgreSQL or SQLite)
func NewSQLStore(db *gorm.DB) Store {
	return &sqlStore{db: db}
}

// CreateAccount creates an account and its profile in a single transaction.
// The profile starts with last_allocation_at equal to the join date.
func (s *sqlStore) CreateAccount(ctx context.Context, input CreateAccountInput) (*schema.Account, error) {
	account := schema.Account{
		ID:       input.ID,
		Username: input.Username,
		JoinedAt: input.JoinedAt.UTC(),
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if input.JoinedAt.IsZero() {
		account.JoinedAt = time.Now().UTC()
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&account).Error; err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		profile := schema.Profile{
			AccountID:        account.ID,
			LastAllocationAt: account.JoinedAt,
		}
		if err := tx.Omit(clause.Associations).Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// GetAccount retrieves an account by its ID
func (s *sqlStore) GetAccount(ctx context.Context, accountID uuid.UUID) (*schema.Account, error) {
	return getAccount(s.db.WithContext(ctx), accountID)
}

// GetProfile retrieves the allocation profile of an account
func (s *sqlStore) GetProfile(ctx context.Context, accountID uuid.UUID) (*schema.Profile, error) {
	var profile schema.Profile
	err := s.db.WithContext(ctx).Where("account_id = ?", accountID).Take(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// DeleteAccount removes an account with everything it owns:
// its ledger rows (and their links), its profile, and the entities it created.
func (s *sqlStore) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		allocationIDs := tx.Model(&schema.Allocation{}).Select("id").Where("account_id = ?", accountID)

		for _, entityType := range domain.EntityTypes {
			table, _ := schema.TableName(entityType)
			joinTable, _ := schema.JoinTableName(entityType)

			// 1. Unlink the account's allocations from any entity
			if err := tx.Table(joinTable).
				Where("allocation_id IN (?)", allocationIDs).
				Delete(&schema.EntityAllocation{}).Error; err != nil {
				return fmt.Errorf("failed to unlink allocations from %s: %w", table, err)
			}

			// 2. Drop the entities the account owns, links first
			ownedIDs := tx.Table(table).Select("id").Where("owner_id = ?", accountID)
			if err := tx.Table(joinTable).
				Where("entity_id IN (?)", ownedIDs).
				Delete(&schema.EntityAllocation{}).Error; err != nil {
				return fmt.Errorf("failed to unlink owned %s: %w", table, err)
			}
			if err := tx.Table(table).
				Where("owner_id = ?", accountID).
				Delete(&schema.Content{}).Error; err != nil {
				return fmt.Errorf("failed to delete owned %s: %w", table, err)
			}
		}

		// 3. Ledger rows, profile and the account itself
		if err := tx.Where("account_id = ?", accountID).Delete(&schema.Allocation{}).Error; err != nil {
			return fmt.Errorf("failed to delete allocations: %w", err)
		}
		if err := tx.Where("account_id = ?", accountID).Delete(&schema.Profile{}).Error; err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
		result := tx.Where("id = ?", accountID).Delete(&schema.Account{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete account: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrAccountNotFound
		}

		return nil
	})
}

// CreateEntity inserts a weighted entity. Weight always starts at zero.
func (s *sqlStore) CreateEntity(ctx context.Context, entity schema.Weighted) error {
	content := entity.GetContent()
	content.Weight = 0
	if content.CreationDate.IsZero() {
		content.CreationDate = time.Now().UTC()
	}
	content.CreationDate = content.CreationDate.UTC()
	if content.PublicationDate != nil {
		pub := content.PublicationDate.UTC()
		content.PublicationDate = &pub
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", entity.EntityType(), err)
	}
	return nil
}

// GetEntity retrieves the shared columns of a weighted entity
func (s *sqlStore) GetEntity(ctx context.Context, entityType domain.EntityType, entityID uint64) (*schema.Content, error) {
	table, err := schema.TableName(entityType)
	if err != nil {
		return nil, err
	}

	var content schema.Content
	err = s.db.WithContext(ctx).Table(table).Where("id = ?", entityID).Take(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", entityType, err)
	}
	return &content, nil
}

// GetEntityAllocations retrieves the ledger rows linked to a weighted entity, oldest first
func (s *sqlStore) GetEntityAllocations(ctx context.Context, entityType domain.EntityType, entityID uint64) ([]schema.Allocation, error) {
	joinTable, err := schema.JoinTableName(entityType)
	if err != nil {
		return nil, err
	}

	var allocations []schema.Allocation
	err = s.db.WithContext(ctx).
		Joins(fmt.Sprintf("JOIN %s ON %s.allocation_id = allocations.id", joinTable, joinTable)).
		Where(fmt.Sprintf("%s.entity_id = ?", joinTable), entityID).
		Order("allocations.created_at ASC, allocations.id ASC").
		Find(&allocations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get allocations for %s: %w", entityType, err)
	}
	return allocations, nil
}

// DeleteEntity deletes a weighted entity and its links; the ledger rows stay with their giver
func (s *sqlStore) DeleteEntity(ctx context.Context, entityType domain.EntityType, entityID uint64) error {
	table, err := schema.TableName(entityType)
	if err != nil {
		return err
	}
	joinTable, _ := schema.JoinTableName(entityType)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(joinTable).Where("entity_id = ?", entityID).Delete(&schema.EntityAllocation{}).Error; err != nil {
			return fmt.Errorf("failed to unlink allocations: %w", err)
		}

		result := tx.Table(table).Where("id = ?", entityID).Delete(&schema.Content{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete %s: %w", entityType, result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrEntityNotFound
		}
		return nil
	})
}

// CountAllocationsSince counts allocations given by an account at or after since
func (s *sqlStore) CountAllocationsSince(ctx context.Context, accountID uuid.UUID, since time.Time, scope *domain.EntityType) (int64, error) {
	return countAllocationsSince(s.db.WithContext(ctx), accountID, since, scope)
}

// RunAllocationTx runs fn inside a single transaction; any error rolls everything back
func (s *sqlStore) RunAllocationTx(ctx context.Context, fn func(tx AllocationTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&allocationTx{db: tx})
	})
}

// CountEligible counts the entities matching the filter
func (s *sqlStore) CountEligible(ctx context.Context, filter EntityFilter) (int64, error) {
	query, err := s.eligibleQuery(ctx, filter)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", filter.Type, err)
	}
	return count, nil
}

// ListNewest lists the entities matching the filter by creation date, newest first
func (s *sqlStore) ListNewest(ctx context.Context, filter EntityFilter) ([]schema.Content, error) {
	return s.listEligible(ctx, filter, "creation_date DESC, id DESC")
}

// ListTopWeighted lists the entities matching the filter by weight, heaviest first.
// Ties go to the most recently published entity.
func (s *sqlStore) ListTopWeighted(ctx context.Context, filter EntityFilter) ([]schema.Content, error) {
	return s.listEligible(ctx, filter, "weight DESC, publication_date DESC, id DESC")
}

func (s *sqlStore) listEligible(ctx context.Context, filter EntityFilter, order string) ([]schema.Content, error) {
	query, err := s.eligibleQuery(ctx, filter)
	if err != nil {
		return nil, err
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var entities []schema.Content
	if err := query.Order(order).Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", filter.Type, err)
	}
	return entities, nil
}

// eligibleQuery builds the shared WHERE clause of the ranking reads:
// public entities whose publication date has passed.
func (s *sqlStore) eligibleQuery(ctx context.Context, filter EntityFilter) (*gorm.DB, error) {
	table, err := schema.TableName(filter.Type)
	if err != nil {
		return nil, err
	}

	now := filter.Now
	if now.IsZero() {
		now = time.Now()
	}

	query := s.db.WithContext(ctx).
		Table(table).
		Where("is_public = ?", true).
		Where("publication_date IS NOT NULL AND publication_date <= ?", now.UTC())

	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filter.ExcludeIDs)
	}
	if filter.PublishedBefore != nil {
		query = query.Where("publication_date < ?", filter.PublishedBefore.UTC())
	}

	return query, nil
}

// ListWeightDrift lists entities with id > afterID whose weight differs from their ledger sum
func (s *sqlStore) ListWeightDrift(ctx context.Context, entityType domain.EntityType, afterID uint64, limit int) ([]WeightDrift, error) {
	table, err := schema.TableName(entityType)
	if err != nil {
		return nil, err
	}
	joinTable, _ := schema.JoinTableName(entityType)

	var drifts []WeightDrift
	err = s.db.WithContext(ctx).
		Table(table+" AS e").
		Select("e.id AS id, e.weight AS weight, COALESCE(SUM(a.weight), 0) AS ledger_sum").
		Joins(fmt.Sprintf("LEFT JOIN %s ea ON ea.entity_id = e.id", joinTable)).
		Joins("LEFT JOIN allocations a ON a.id = ea.allocation_id").
		Where("e.id > ?", afterID).
		Group("e.id, e.weight").
		Having("ABS(e.weight - COALESCE(SUM(a.weight), 0)) > ?", weightTolerance).
		Order("e.id ASC").
		Limit(limit).
		Scan(&drifts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list weight drift for %s: %w", entityType, err)
	}
	return drifts, nil
}

// RaiseWeight raises an entity weight to its ledger sum.
// The sum is recomputed under the entity row lock so a concurrent allocation is never lost;
// an entity already at or above its sum is left untouched.
func (s *sqlStore) RaiseWeight(ctx context.Context, entityType domain.EntityType, entityID uint64) (bool, error) {
	table, err := schema.TableName(entityType)
	if err != nil {
		return false, err
	}
	joinTable, _ := schema.JoinTableName(entityType)

	raised := false
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var content schema.Content
		err := tx.Table(table).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", entityID).
			Take(&content).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrEntityNotFound
			}
			return fmt.Errorf("failed to lock %s: %w", entityType, err)
		}

		var sum float64
		err = tx.Table("allocations").
			Select("COALESCE(SUM(allocations.weight), 0)").
			Joins(fmt.Sprintf("JOIN %s ON %s.allocation_id = allocations.id", joinTable, joinTable)).
			Where(fmt.Sprintf("%s.entity_id = ?", joinTable), entityID).
			Scan(&sum).Error
		if err != nil {
			return fmt.Errorf("failed to sum allocations: %w", err)
		}

		if content.Weight >= sum-weightTolerance {
			return nil
		}

		if err := tx.Table(table).Where("id = ?", entityID).UpdateColumn("weight", sum).Error; err != nil {
			return fmt.Errorf("failed to raise weight: %w", err)
		}
		raised = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return raised, nil
}

// GetSiteProfile retrieves the site profile row
func (s *sqlStore) GetSiteProfile(ctx context.Context) (*schema.SiteProfile, error) {
	var profile schema.SiteProfile
	err := s.db.WithContext(ctx).Where("id = ?", schema.SiteProfileID).Take(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get site profile: %w", err)
	}
	return &profile, nil
}

// SaveSiteProfile upserts the marshmallow settings of the site profile row
func (s *sqlStore) SaveSiteProfile(ctx context.Context, settings schema.MarshmallowSettings) error {
	profile := schema.SiteProfile{
		ID:          schema.SiteProfileID,
		Marshmallow: datatypes.NewJSONType(settings),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"marshmallow", "updated_at"}),
	}).Create(&profile).Error
	if err != nil {
		return fmt.Errorf("failed to save site profile: %w", err)
	}
	return nil
}

// allocationTx implements AllocationTx on an open gorm transaction
type allocationTx struct {
	db *gorm.DB
}

// LockProfile locks the profile row of an account for the rest of the transaction
func (t *allocationTx) LockProfile(accountID uuid.UUID) (*schema.Profile, error) {
	var profile schema.Profile
	err := t.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_id = ?", accountID).
		Take(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock profile: %w", err)
	}
	return &profile, nil
}

func (t *allocationTx) GetAccount(accountID uuid.UUID) (*schema.Account, error) {
	return getAccount(t.db, accountID)
}

// LockEntity locks the target entity row for the rest of the transaction
func (t *allocationTx) LockEntity(entityType domain.EntityType, entityID uint64) (*schema.Content, error) {
	table, err := schema.TableName(entityType)
	if err != nil {
		return nil, err
	}

	var content schema.Content
	err = t.db.Table(table).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", entityID).
		Take(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock %s: %w", entityType, err)
	}
	return &content, nil
}

func (t *allocationTx) CountAllocationsSince(accountID uuid.UUID, since time.Time, scope *domain.EntityType) (int64, error) {
	return countAllocationsSince(t.db, accountID, since, scope)
}

// AppendAllocation inserts the ledger row, links it to the entity and
// increments the entity weight in place. It returns the entity weight after the increment.
func (t *allocationTx) AppendAllocation(input AppendAllocationInput) (*AppendAllocationResult, error) {
	if input.Weight < 0 {
		return nil, fmt.Errorf("allocation weight must not be negative: %f", input.Weight)
	}
	table, err := schema.TableName(input.EntityType)
	if err != nil {
		return nil, err
	}
	joinTable, _ := schema.JoinTableName(input.EntityType)

	// 1. Ledger row
	allocation := schema.Allocation{
		AccountID: input.AccountID,
		CreatedAt: input.CreatedAt.UTC(),
		Weight:    input.Weight,
	}
	if err := t.db.Omit(clause.Associations).Create(&allocation).Error; err != nil {
		return nil, fmt.Errorf("failed to create allocation: %w", err)
	}

	// 2. Link to the entity
	link := schema.EntityAllocation{
		EntityID:     input.EntityID,
		AllocationID: allocation.ID,
	}
	if err := t.db.Table(joinTable).Create(&link).Error; err != nil {
		return nil, fmt.Errorf("failed to link allocation: %w", err)
	}

	// 3. Atomic increment of the denormalized weight
	result := t.db.Table(table).
		Where("id = ?", input.EntityID).
		UpdateColumn("weight", gorm.Expr("weight + ?", input.Weight))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to increment weight: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrEntityNotFound
	}

	var weights []float64
	if err := t.db.Table(table).Where("id = ?", input.EntityID).Pluck("weight", &weights).Error; err != nil {
		return nil, fmt.Errorf("failed to read weight: %w", err)
	}
	if len(weights) == 0 {
		return nil, domain.ErrEntityNotFound
	}

	return &AppendAllocationResult{
		Allocation:   allocation,
		EntityWeight: weights[0],
	}, nil
}

// TouchProfile moves last_allocation_at forward; an older timestamp never overwrites a newer one
func (t *allocationTx) TouchProfile(accountID uuid.UUID, at time.Time) error {
	err := t.db.Model(&schema.Profile{}).
		Where("account_id = ? AND last_allocation_at < ?", accountID, at.UTC()).
		Update("last_allocation_at", at.UTC()).Error
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func getAccount(db *gorm.DB, accountID uuid.UUID) (*schema.Account, error) {
	var account schema.Account
	err := db.Where("id = ?", accountID).Take(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func countAllocationsSince(db *gorm.DB, accountID uuid.UUID, since time.Time, scope *domain.EntityType) (int64, error) {
	query := db.Model(&schema.Allocation{}).
		Where("allocations.account_id = ? AND allocations.created_at >= ?", accountID, since.UTC())

	if scope != nil {
		joinTable, err := schema.JoinTableName(*scope)
		if err != nil {
			return 0, err
		}
		query = query.Joins(fmt.Sprintf("JOIN %s ON %s.allocation_id = allocations.id", joinTable, joinTable))
	}

	var count int64
	if err := query.Distinct("allocations.id").Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count allocations: %w", err)
	}
	return count, nil
}
