package schema

import (
	"time"

	"github.com/google/uuid"
)

// Allocation represents the allocations table - the append-only marshmallow ledger
// Rows are inserted once and never updated; they are removed only when the giving account is deleted.
type Allocation struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AccountID is the account that gave the allocation
	AccountID uuid.UUID `gorm:"column:account_id;not null;type:uuid;index:idx_allocations_account_created,priority:1"`
	// CreatedAt is when the allocation was made
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_allocations_account_created,priority:2"`
	// Weight is the adjusted weight carried by the allocation
	Weight float64 `gorm:"column:weight;not null"`

	// Associations
	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Allocation model
func (Allocation) TableName() string {
	return "allocations"
}

// EntityAllocation is a row of one of the per-variant join tables linking an entity to an allocation
type EntityAllocation struct {
	EntityID     uint64 `gorm:"column:entity_id;primaryKey"`
	AllocationID uint64 `gorm:"column:allocation_id;primaryKey"`
}
