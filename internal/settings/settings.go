package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lookaway/lookaway/internal/config"
	"github.com/lookaway/lookaway/internal/domain"
	"github.com/lookaway/lookaway/internal/store/schema"
)

const day = 24 * time.Hour

// Settings is the marshmallow tuning passed explicitly into the allocation and ranking services
type Settings struct {
	Cooldown          time.Duration
	Maturity          time.Duration
	LookbackDays      int
	Multiplier        float64
	ScopeByEntityType bool
	RankingCount      int
	MaxRankingCount   int
	RetryDelay        time.Duration
}

// SiteProfileStore is the part of the store the settings loader needs
type SiteProfileStore interface {
	GetSiteProfile(ctx context.Context) (*schema.SiteProfile, error)
	SaveSiteProfile(ctx context.Context, settings schema.MarshmallowSettings) error
}

// Defaults returns the built-in settings
func Defaults() Settings {
	return Settings{
		Cooldown:          domain.DEFAULT_ALLOCATION_COOLDOWN,
		Maturity:          domain.DEFAULT_ACCOUNT_MATURITY,
		LookbackDays:      domain.DEFAULT_LOOKBACK_DAYS,
		Multiplier:        domain.DEFAULT_WEIGHT_MULTIPLIER,
		ScopeByEntityType: true,
		RankingCount:      domain.DEFAULT_RANKING_COUNT,
		MaxRankingCount:   domain.DEFAULT_MAX_RANKING_COUNT,
		RetryDelay:        50 * time.Millisecond,
	}
}

// FromConfig builds settings from configuration; non-positive values keep the built-in default
func FromConfig(cfg config.MarshmallowConfig) Settings {
	s := Defaults()
	if cfg.Cooldown > 0 {
		s.Cooldown = cfg.Cooldown
	}
	if cfg.Maturity > 0 {
		s.Maturity = cfg.Maturity
	}
	if cfg.LookbackDays > 0 {
		s.LookbackDays = cfg.LookbackDays
	}
	if cfg.Multiplier > 0 {
		s.Multiplier = cfg.Multiplier
	}
	if cfg.RankingCount > 0 {
		s.RankingCount = cfg.RankingCount
	}
	if cfg.MaxRankingCount > 0 {
		s.MaxRankingCount = cfg.MaxRankingCount
	}
	if cfg.RetryDelay > 0 {
		s.RetryDelay = cfg.RetryDelay
	}
	s.ScopeByEntityType = cfg.ScopeByEntityType
	return s
}

// Load returns defaults overridden by the fields set in the stored site profile.
// A missing site profile row leaves the defaults untouched.
func Load(ctx context.Context, store SiteProfileStore, defaults Settings) (Settings, error) {
	profile, err := store.GetSiteProfile(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load site profile: %w", err)
	}
	if profile == nil {
		return defaults, defaults.Validate()
	}

	s := defaults.merge(profile.Marshmallow.Data())
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid site profile settings: %w", err)
	}
	return s, nil
}

// Save stores the settings in the site profile row
func Save(ctx context.Context, store SiteProfileStore, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return store.SaveSiteProfile(ctx, s.toSchema())
}

// Validate checks the settings are usable by the allocation engine
func (s Settings) Validate() error {
	if s.Cooldown < 0 {
		return errors.New("cooldown must not be negative")
	}
	if s.Maturity < 0 {
		return errors.New("maturity must not be negative")
	}
	if s.LookbackDays <= 0 {
		return errors.New("lookback days must be positive")
	}
	if s.Multiplier <= 0 {
		return errors.New("multiplier must be positive")
	}
	if s.RankingCount <= 0 {
		return errors.New("ranking count must be positive")
	}
	if s.MaxRankingCount < s.RankingCount {
		return fmt.Errorf("max ranking count %d is below ranking count %d", s.MaxRankingCount, s.RankingCount)
	}
	return nil
}

// Lookback returns the allocation counting window
func (s Settings) Lookback() time.Duration {
	return time.Duration(s.LookbackDays) * day
}

func (s Settings) merge(stored schema.MarshmallowSettings) Settings {
	if stored.CooldownSeconds != nil {
		s.Cooldown = time.Duration(*stored.CooldownSeconds) * time.Second
	}
	if stored.MaturityDays != nil {
		s.Maturity = time.Duration(*stored.MaturityDays) * day
	}
	if stored.LookbackDays > 0 {
		s.LookbackDays = stored.LookbackDays
	}
	if stored.Multiplier > 0 {
		s.Multiplier = stored.Multiplier
	}
	if stored.ScopeByEntityType != nil {
		s.ScopeByEntityType = *stored.ScopeByEntityType
	}
	if stored.RankingCount > 0 {
		s.RankingCount = stored.RankingCount
		if s.MaxRankingCount < s.RankingCount {
			s.MaxRankingCount = s.RankingCount
		}
	}
	return s
}

func (s Settings) toSchema() schema.MarshmallowSettings {
	scope := s.ScopeByEntityType
	cooldown := int64(s.Cooldown / time.Second)
	maturity := int(s.Maturity / day)
	return schema.MarshmallowSettings{
		CooldownSeconds:   &cooldown,
		MaturityDays:      &maturity,
		LookbackDays:      s.LookbackDays,
		Multiplier:        s.Multiplier,
		ScopeByEntityType: &scope,
		RankingCount:      s.RankingCount,
	}
}
