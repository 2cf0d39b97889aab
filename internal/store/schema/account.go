package schema

import (
	"time"

	"github.com/google/uuid"
)

// Account represents the accounts table - a registered participant that owns content and gives marshmallows
type Account struct {
	// ID is the opaque account identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// Username is the unique handle of the account
	Username string `gorm:"column:username;not null;uniqueIndex"`
	// JoinedAt is when the account registered; gates new accounts from allocating
	JoinedAt time.Time `gorm:"column:joined_at;not null"`
	// CreatedAt is the timestamp when this row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
