package schema

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents the profiles table - per-account allocation history
// LastAllocationAt is only ever moved forward, and only by the allocation engine.
type Profile struct {
	// AccountID references the owning account (one profile per account)
	AccountID uuid.UUID `gorm:"column:account_id;primaryKey;type:uuid"`
	// LastAllocationAt is the time of the account's most recent successful allocation
	LastAllocationAt time.Time `gorm:"column:last_allocation_at;not null"`
	// UpdatedAt is the timestamp when this profile was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`

	// Associations
	Account Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}
