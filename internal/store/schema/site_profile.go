package schema

import (
	"time"

	"gorm.io/datatypes"
)

// SiteProfileID is the primary key of the single site profile row
const SiteProfileID = 1

// MarshmallowSettings is the persisted marshmallow tuning.
// Absent fields fall back to configuration, as do zero counts and multipliers.
// Cooldown and maturity are pointers so a stored zero disables them; the cooldown is kept in whole seconds.
type MarshmallowSettings struct {
	CooldownSeconds   *int64  `json:"cooldown_seconds,omitempty"`
	MaturityDays      *int    `json:"maturity_days,omitempty"`
	LookbackDays      int     `json:"lookback_days,omitempty"`
	Multiplier        float64 `json:"multiplier,omitempty"`
	ScopeByEntityType *bool   `json:"scope_by_entity_type,omitempty"`
	RankingCount      int     `json:"ranking_count,omitempty"`
}

// SiteProfile represents the site_profiles table - site-wide settings edited by administrators
type SiteProfile struct {
	ID          uint                                    `gorm:"column:id;primaryKey"`
	Title       string                                  `gorm:"column:title;not null;default:''"`
	Marshmallow datatypes.JSONType[MarshmallowSettings] `gorm:"column:marshmallow"`
	UpdatedAt   time.Time                               `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the SiteProfile model
func (SiteProfile) TableName() string {
	return "site_profiles"
}
