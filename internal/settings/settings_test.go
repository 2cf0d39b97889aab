package settings

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookaway/lookaway/internal/config"
	"github.com/lookaway/lookaway/internal/store"
	"github.com/lookaway/lookaway/internal/store/schema"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	db, err := store.Open(store.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "settings.db"), false)
	require.NoError(t, err)
	require.NoError(t, store.ConfigureConnectionPool(db, 0, 0, 0, 0))
	require.NoError(t, store.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return store.NewSQLStore(db)
}

type failingSiteProfileStore struct{}

func (failingSiteProfileStore) GetSiteProfile(context.Context) (*schema.SiteProfile, error) {
	return nil, errors.New("connection refused")
}

func (failingSiteProfileStore) SaveSiteProfile(context.Context, schema.MarshmallowSettings) error {
	return errors.New("connection refused")
}

func TestDefaults(t *testing.T) {
	s := Defaults()
	assert.Equal(t, 300*time.Second, s.Cooldown)
	assert.Equal(t, 30*24*time.Hour, s.Maturity)
	assert.Equal(t, 30, s.LookbackDays)
	assert.Equal(t, 5.0, s.Multiplier)
	assert.True(t, s.ScopeByEntityType)
	assert.Equal(t, 6, s.RankingCount)
	assert.Equal(t, 60, s.MaxRankingCount)
	assert.Equal(t, 30*24*time.Hour, s.Lookback())
	assert.NoError(t, s.Validate())
}

func TestFromConfig(t *testing.T) {
	s := FromConfig(config.MarshmallowConfig{
		Cooldown:          time.Minute,
		LookbackDays:      7,
		Multiplier:        2,
		ScopeByEntityType: false,
	})

	assert.Equal(t, time.Minute, s.Cooldown)
	assert.Equal(t, 30*24*time.Hour, s.Maturity) // default
	assert.Equal(t, 7, s.LookbackDays)
	assert.Equal(t, 2.0, s.Multiplier)
	assert.False(t, s.ScopeByEntityType)
	assert.Equal(t, 6, s.RankingCount) // default
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{name: "negative cooldown", modify: func(s *Settings) { s.Cooldown = -time.Second }},
		{name: "negative maturity", modify: func(s *Settings) { s.Maturity = -time.Hour }},
		{name: "zero lookback", modify: func(s *Settings) { s.LookbackDays = 0 }},
		{name: "zero multiplier", modify: func(s *Settings) { s.Multiplier = 0 }},
		{name: "zero ranking count", modify: func(s *Settings) { s.RankingCount = 0 }},
		{name: "max below count", modify: func(s *Settings) { s.MaxRankingCount = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.modify(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestLoad_NoSiteProfile(t *testing.T) {
	st := newTestStore(t)

	s, err := Load(context.Background(), st, Defaults())
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoad_OverridesNonZeroFields(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	scope := false
	cooldown := int64(600)
	require.NoError(t, st.SaveSiteProfile(ctx, schema.MarshmallowSettings{
		CooldownSeconds:   &cooldown,
		LookbackDays:      14,
		ScopeByEntityType: &scope,
		RankingCount:      80,
	}))

	s, err := Load(ctx, st, Defaults())
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, s.Cooldown)
	assert.Equal(t, 30*24*time.Hour, s.Maturity) // untouched
	assert.Equal(t, 14, s.LookbackDays)
	assert.Equal(t, 5.0, s.Multiplier) // untouched
	assert.False(t, s.ScopeByEntityType)
	assert.Equal(t, 80, s.RankingCount)
	assert.Equal(t, 80, s.MaxRankingCount) // raised to fit the stored count
}

func TestLoad_StoredZeroDisablesCooldownAndMaturity(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	want := Defaults()
	want.Cooldown = 0
	want.Maturity = 0
	require.NoError(t, Save(ctx, st, want))

	got, err := Load(ctx, st, Defaults())
	require.NoError(t, err)
	assert.Zero(t, got.Cooldown)
	assert.Zero(t, got.Maturity)

	// Sub-second cooldowns are stored in whole seconds
	want.Cooldown = 90*time.Second + 500*time.Millisecond
	require.NoError(t, Save(ctx, st, want))

	got, err = Load(ctx, st, Defaults())
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, got.Cooldown)
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	want := Defaults()
	want.Cooldown = 2 * time.Minute
	want.Maturity = 7 * 24 * time.Hour
	want.Multiplier = 1.5
	want.ScopeByEntityType = false
	require.NoError(t, Save(ctx, st, want))

	// Saving twice updates the single row
	want.LookbackDays = 10
	require.NoError(t, Save(ctx, st, want))

	got, err := Load(ctx, st, Defaults())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_RejectsInvalid(t *testing.T) {
	s := Defaults()
	s.Multiplier = -1
	assert.Error(t, Save(context.Background(), newTestStore(t), s))
}

func TestLoad_StoreError(t *testing.T) {
	_, err := Load(context.Background(), failingSiteProfileStore{}, Defaults())
	assert.ErrorContains(t, err, "failed to load site profile")
}
