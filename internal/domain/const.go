package domain

import "time"

const (
	// Marshmallow defaults, overridable through config and the site profile
	DEFAULT_ALLOCATION_COOLDOWN = 300 * time.Second
	DEFAULT_ACCOUNT_MATURITY    = 30 * 24 * time.Hour
	DEFAULT_LOOKBACK_DAYS       = 30
	DEFAULT_WEIGHT_MULTIPLIER   = 5.0

	// Ranking defaults
	DEFAULT_RANKING_COUNT     = 6
	DEFAULT_MAX_RANKING_COUNT = 60
)
