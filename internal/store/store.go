package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lookaway/lookaway/internal/domain"
	"github.com/lookaway/lookaway/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore,AllocationTx=MockAllocationTx
type Store interface {
	// CreateAccount creates an account together with its profile record
	CreateAccount(ctx context.Context, input CreateAccountInput) (*schema.Account, error)
	// GetAccount retrieves an account by its ID
	GetAccount(ctx context.Context, accountID uuid.UUID) (*schema.Account, error)
	// GetProfile retrieves the allocation profile of an account
	GetProfile(ctx context.Context, accountID uuid.UUID) (*schema.Profile, error)
	// DeleteAccount deletes an account, its profile, its ledger rows and the entities it owns
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error

	// CreateEntity inserts a weighted entity with a zero weight
	CreateEntity(ctx context.Context, entity schema.Weighted) error
	// GetEntity retrieves the shared columns of a weighted entity
	GetEntity(ctx context.Context, entityType domain.EntityType, entityID uint64) (*schema.Content, error)
	// GetEntityAllocations retrieves the ledger rows linked to a weighted entity
	GetEntityAllocations(ctx context.Context, entityType domain.EntityType, entityID uint64) ([]schema.Allocation, error)
	// DeleteEntity deletes a weighted entity and its allocation links, keeping the ledger rows
	DeleteEntity(ctx context.Context, entityType domain.EntityType, entityID uint64) error

	// CountAllocationsSince counts allocations given by an account at or after since
	CountAllocationsSince(ctx context.Context, accountID uuid.UUID, since time.Time, scope *domain.EntityType) (int64, error)
	// RunAllocationTx runs fn inside a single database transaction
	RunAllocationTx(ctx context.Context, fn func(tx AllocationTx) error) error

	// CountEligible counts the entities matching the filter
	CountEligible(ctx context.Context, filter EntityFilter) (int64, error)
	// ListNewest lists the entities matching the filter, newest creation date first
	ListNewest(ctx context.Context, filter EntityFilter) ([]schema.Content, error)
	// ListTopWeighted lists the entities matching the filter, highest weight first
	ListTopWeighted(ctx context.Context, filter EntityFilter) ([]schema.Content, error)

	// ListWeightDrift lists entities whose weight differs from their ledger sum
	ListWeightDrift(ctx context.Context, entityType domain.EntityType, afterID uint64, limit int) ([]WeightDrift, error)
	// RaiseWeight raises an entity weight to its current ledger sum, never lowering it
	RaiseWeight(ctx context.Context, entityType domain.EntityType, entityID uint64) (bool, error)

	// GetSiteProfile retrieves the site profile row
	GetSiteProfile(ctx context.Context) (*schema.SiteProfile, error)
	// SaveSiteProfile upserts the marshmallow settings of the site profile row
	SaveSiteProfile(ctx context.Context, settings schema.MarshmallowSettings) error
}

// AllocationTx is the transactional view used by the allocation engine.
// Every method runs on the same transaction; locks are held until it commits or rolls back.
type AllocationTx interface {
	// LockProfile locks and returns the profile of an account, or nil when it has none
	LockProfile(accountID uuid.UUID) (*schema.Profile, error)
	// GetAccount returns an account, or nil when it does not exist
	GetAccount(accountID uuid.UUID) (*schema.Account, error)
	// LockEntity locks and returns a weighted entity, or nil when it does not exist
	LockEntity(entityType domain.EntityType, entityID uint64) (*schema.Content, error)
	// CountAllocationsSince counts allocations given by an account at or after since
	CountAllocationsSince(accountID uuid.UUID, since time.Time, scope *domain.EntityType) (int64, error)
	// AppendAllocation inserts a ledger row, links it to the entity and increments the entity weight
	AppendAllocation(input AppendAllocationInput) (*AppendAllocationResult, error)
	// TouchProfile moves last_allocation_at forward to at; earlier values are ignored
	TouchProfile(accountID uuid.UUID, at time.Time) error
}

// CreateAccountInput represents the input for creating an account
type CreateAccountInput struct {
	ID       uuid.UUID
	Username string
	JoinedAt time.Time
}

// AppendAllocationInput represents the input for appending an allocation to the ledger
type AppendAllocationInput struct {
	AccountID  uuid.UUID
	EntityType domain.EntityType
	EntityID   uint64
	Weight     float64
	CreatedAt  time.Time
}

// AppendAllocationResult is the outcome of an appended allocation
type AppendAllocationResult struct {
	Allocation   schema.Allocation
	EntityWeight float64
}

// EntityFilter represents the filter for ranking queries
type EntityFilter struct {
	Type domain.EntityType
	// Now is the instant publication dates are compared against
	Now time.Time
	// OwnerID restricts the query to one account's entities
	OwnerID *uuid.UUID
	Limit   int
	// ExcludeIDs removes specific entities from the result
	ExcludeIDs []uint64
	// PublishedBefore keeps only entities published strictly before this instant
	PublishedBefore *time.Time
}

// WeightDrift is an entity whose denormalized weight does not match its ledger sum
type WeightDrift struct {
	EntityID  uint64  `gorm:"column:id"`
	Weight    float64 `gorm:"column:weight"`
	LedgerSum float64 `gorm:"column:ledger_sum"`
}
