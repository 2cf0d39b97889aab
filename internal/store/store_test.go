package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookaway/lookaway/internal/domain"
	"github.com/lookaway/lookaway/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// testNow is truncated to microseconds, the precision PostgreSQL keeps
func testNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// buildTestAccount creates an account that joined joinedAgo before now
func buildTestAccount(t *testing.T, store Store, joinedAgo time.Duration) *schema.Account {
	t.Helper()

	id := uuid.New()
	account, err := store.CreateAccount(context.Background(), CreateAccountInput{
		ID:       id,
		Username: "user-" + id.String()[:8],
		JoinedAt: testNow().Add(-joinedAgo),
	})
	require.NoError(t, err)
	require.NotNil(t, account)
	return account
}

// buildTestContent creates the shared columns of a public entity published publishedAgo before now
func buildTestContent(owner uuid.UUID, title string, publishedAgo time.Duration) schema.Content {
	now := testNow()
	pub := now.Add(-publishedAgo)
	return schema.Content{
		OwnerID:         owner,
		Title:           title,
		Slug:            title,
		IsPublic:        true,
		PublicationDate: &pub,
		CreationDate:    pub,
	}
}

// buildTestArticle creates a public article published publishedAgo before now
func buildTestArticle(t *testing.T, store Store, owner uuid.UUID, title string, publishedAgo time.Duration) *schema.Article {
	t.Helper()

	article := &schema.Article{Content: buildTestContent(owner, title, publishedAgo), Body: "body of " + title}
	require.NoError(t, store.CreateEntity(context.Background(), article))
	require.NotZero(t, article.ID)
	return article
}

// appendTestAllocation appends an allocation to an entity in its own transaction
func appendTestAllocation(t *testing.T, store Store, accountID uuid.UUID, entityType domain.EntityType, entityID uint64, weight float64, at time.Time) *AppendAllocationResult {
	t.Helper()

	var result *AppendAllocationResult
	err := store.RunAllocationTx(context.Background(), func(tx AllocationTx) error {
		var err error
		result, err = tx.AppendAllocation(AppendAllocationInput{
			AccountID:  accountID,
			EntityType: entityType,
			EntityID:   entityID,
			Weight:     weight,
			CreatedAt:  at,
		})
		return err
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

// ledgerSum sums the weights of the allocations linked to an entity
func ledgerSum(t *testing.T, store Store, entityType domain.EntityType, entityID uint64) float64 {
	t.Helper()

	allocations, err := store.GetEntityAllocations(context.Background(), entityType, entityID)
	require.NoError(t, err)

	sum := 0.0
	for _, a := range allocations {
		sum += a.Weight
	}
	return sum
}

func contentIDs(entities []schema.Content) []uint64 {
	ids := make([]uint64, len(entities))
	for i, e := range entities {
		ids[i] = e.ID
	}
	return ids
}

// =============================================================================
// Test: Accounts
// =============================================================================

func testAccounts(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create account also creates its profile", func(t *testing.T) {
		account := buildTestAccount(t, store, 60*24*time.Hour)

		got, err := store.GetAccount(ctx, account.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, account.Username, got.Username)
		assert.WithinDuration(t, account.JoinedAt, got.JoinedAt, time.Millisecond)

		profile, err := store.GetProfile(ctx, account.ID)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.WithinDuration(t, account.JoinedAt, profile.LastAllocationAt, time.Millisecond)
	})

	t.Run("missing account and profile return nil", func(t *testing.T) {
		got, err := store.GetAccount(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)

		profile, err := store.GetProfile(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		account := buildTestAccount(t, store, time.Hour)

		_, err := store.CreateAccount(ctx, CreateAccountInput{Username: account.Username})
		assert.Error(t, err)
	})

	t.Run("delete unknown account", func(t *testing.T) {
		err := store.DeleteAccount(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

// =============================================================================
// Test: Entities
// =============================================================================

func testEntities(t *testing.T, store Store) {
	ctx := context.Background()
	owner := buildTestAccount(t, store, 90*24*time.Hour)

	t.Run("every variant can be created and read back", func(t *testing.T) {
		for _, entityType := range domain.EntityTypes {
			entity, err := schema.NewEntity(entityType)
			require.NoError(t, err)

			*entity.GetContent() = buildTestContent(owner.ID, fmt.Sprintf("%s-entity", entityType), time.Hour)
			require.NoError(t, store.CreateEntity(ctx, entity))
			require.NotZero(t, entity.GetID(), entityType)

			got, err := store.GetEntity(ctx, entityType, entity.GetID())
			require.NoError(t, err)
			require.NotNil(t, got, entityType)
			assert.Equal(t, owner.ID, got.OwnerID)
			assert.True(t, got.IsPublic)
			assert.Zero(t, got.Weight)
		}
	})

	t.Run("weight always starts at zero", func(t *testing.T) {
		article := &schema.Article{Content: buildTestContent(owner.ID, "preweighted", time.Hour)}
		article.Weight = 42

		require.NoError(t, store.CreateEntity(ctx, article))

		got, err := store.GetEntity(ctx, domain.EntityTypeArticle, article.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Zero(t, got.Weight)
	})

	t.Run("missing entity returns nil", func(t *testing.T) {
		got, err := store.GetEntity(ctx, domain.EntityTypeStory, 999999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown entity type", func(t *testing.T) {
		_, err := store.GetEntity(ctx, domain.EntityType("podcast"), 1)
		assert.ErrorIs(t, err, domain.ErrUnknownEntityType)
	})
}

// =============================================================================
// Test: Allocation transaction
// =============================================================================

func testAllocationTx(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("append allocation writes ledger, link and weight", func(t *testing.T) {
		giver := buildTestAccount(t, store, 60*24*time.Hour)
		owner := buildTestAccount(t, store, 60*24*time.Hour)
		article := buildTestArticle(t, store, owner.ID, "append", time.Hour)
		now := testNow()

		first := appendTestAllocation(t, store, giver.ID, domain.EntityTypeArticle, article.ID, 150, now)
		assert.InDelta(t, 150.0, first.EntityWeight, 1e-9)
		assert.NotZero(t, first.Allocation.ID)

		second := appendTestAllocation(t, store, giver.ID, domain.EntityTypeArticle, article.ID, 75, now.Add(time.Second))
		assert.InDelta(t, 225.0, second.EntityWeight, 1e-9)

		allocations, err := store.GetEntityAllocations(ctx, domain.EntityTypeArticle, article.ID)
		require.NoError(t, err)
		require.Len(t, allocations, 2)
		assert.Equal(t, first.Allocation.ID, allocations[0].ID)
		assert.Equal(t, giver.ID, allocations[0].AccountID)
		assert.InDelta(t, 75.0, allocations[1].Weight, 1e-9)

		got, err := store.GetEntity(ctx, domain.EntityTypeArticle, article.ID)
		require.NoError(t, err)
		assert.InDelta(t, ledgerSum(t, store, domain.EntityTypeArticle, article.ID), got.Weight, 1e-9)
	})

	t.Run("lock profile and entity", func(t *testing.T) {
		account := buildTestAccount(t, store, 60*24*time.Hour)
		article := buildTestArticle(t, store, account.ID, "locked", time.Hour)

		err := store.RunAllocationTx(ctx, func(tx AllocationTx) error {
			profile, err := tx.LockProfile(account.ID)
			require.NoError(t, err)
			require.NotNil(t, profile)
			assert.Equal(t, account.ID, profile.AccountID)

			got, err := tx.GetAccount(account.ID)
			require.NoError(t, err)
			require.NotNil(t, got)

			content, err := tx.LockEntity(domain.EntityTypeArticle, article.ID)
			require.NoError(t, err)
			require.NotNil(t, content)
			assert.Equal(t, article.ID, content.ID)

			missingProfile, err := tx.LockProfile(uuid.New())
			require.NoError(t, err)
			assert.Nil(t, missingProfile)

			missingEntity, err := tx.LockEntity(domain.EntityTypeArticle, 999999)
			require.NoError(t, err)
			assert.Nil(t, missingEntity)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("count allocations since with and without scope", func(t *testing.T) {
		giver := buildTestAccount(t, store, 90*24*time.Hour)
		article := buildTestArticle(t, store, giver.ID, "counted", time.Hour)
		story := &schema.Story{Content: buildTestContent(giver.ID, "counted-story", time.Hour)}
		require.NoError(t, store.CreateEntity(ctx, story))
		now := testNow()

		appendTestAllocation(t, store, giver.ID, domain.EntityTypeArticle, article.ID, 10, now.Add(-40*24*time.Hour))
		appendTestAllocation(t, store, giver.ID, domain.EntityTypeArticle, article.ID, 10, now.Add(-2*24*time.Hour))
		appendTestAllocation(t, store, giver.ID, domain.EntityTypeStory, story.ID, 10, now.Add(-time.Hour))

		since := now.Add(-30 * 24 * time.Hour)
		total, err := store.CountAllocationsSince(ctx, giver.ID, since, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		articleScope := domain.EntityTypeArticle
		scoped, err := store.CountAllocationsSince(ctx, giver.ID, since, &articleScope)
		require.NoError(t, err)
		assert.Equal(t, int64(1), scoped)

		galleryScope := domain.EntityTypeGallery
		none, err := store.CountAllocationsSince(ctx, giver.ID, since, &galleryScope)
		require.NoError(t, err)
		assert.Zero(t, none)

		other, err := store.CountAllocationsSince(ctx, uuid.New(), since, nil)
		require.NoError(t, err)
		assert.Zero(t, other)
	})

	t.Run("touch profile only moves forward", func(t *testing.T) {
		account := buildTestAccount(t, store, 60*24*time.Hour)
		later := testNow()
		earlier := later.Add(-time.Hour)

		require.NoError(t, store.RunAllocationTx(ctx, func(tx AllocationTx) error {
			return tx.TouchProfile(account.ID, later)
		}))
		require.NoError(t, store.RunAllocationTx(ctx, func(tx AllocationTx) error {
			return tx.TouchProfile(account.ID, earlier)
		}))

		profile, err := store.GetProfile(ctx, account.ID)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.WithinDuration(t, later, profile.LastAllocationAt, time.Millisecond)
	})

	t.Run("failed transaction leaves no trace", func(t *testing.T) {
		giver := buildTestAccount(t, store, 60*24*time.Hour)
		article := buildTestArticle(t, store, giver.ID, "rolled-back", time.Hour)
		boom := errors.New("boom")
		now := testNow()

		err := store.RunAllocationTx(ctx, func(tx AllocationTx) error {
			if _, err := tx.AppendAllocation(AppendAllocationInput{
				AccountID:  giver.ID,
				EntityType: domain.EntityTypeArticle,
				EntityID:   article.ID,
				Weight:     150,
				CreatedAt:  now,
			}); err != nil {
				return err
			}
			if err := tx.TouchProfile(giver.ID, now); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		got, err := store.GetEntity(ctx, domain.EntityTypeArticle, article.ID)
		require.NoError(t, err)
		assert.Zero(t, got.Weight)

		allocations, err := store.GetEntityAllocations(ctx, domain.EntityTypeArticle, article.ID)
		require.NoError(t, err)
		assert.Empty(t, allocations)

		profile, err := store.GetProfile(ctx, giver.ID)
		require.NoError(t, err)
		assert.WithinDuration(t, giver.JoinedAt, profile.LastAllocationAt, time.Millisecond)
	})

	t.Run("append to a missing entity is rolled back", func(t *testing.T) {
		giver := buildTestAccount(t, store, 60*24*time.Hour)
		since := testNow().Add(-time.Hour)

		err := store.RunAllocationTx(ctx, func(tx AllocationTx) error {
			_, err := tx.AppendAllocation(AppendAllocationInput{
				AccountID:  giver.ID,
				EntityType: domain.EntityTypeTrack,
				EntityID:   999999,
				Weight:     150,
				CreatedAt:  testNow(),
			})
			return err
		})
		require.Error(t, err)

		count, err := store.CountAllocationsSince(ctx, giver.ID, since, nil)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("negative weight is rejected", func(t *testing.T) {
		giver := buildTestAccount(t, store, 60*24*time.Hour)
		article := buildTestArticle(t, store, giver.ID, "negative", time.Hour)

		err := store.RunAllocationTx(ctx, func(tx AllocationTx) error {
			_, err := tx.AppendAllocation(AppendAllocationInput{
				AccountID:  giver.ID,
				EntityType: domain.EntityTypeArticle,
				EntityID:   article.ID,
				Weight:     -1,
				CreatedAt:  testNow(),
			})
			return err
		})
		assert.Error(t, err)
	})
}

// =============================================================================
// Test: Deletion
// =============================================================================

func testDeletion(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("delete entity keeps the ledger rows", func(t *testing.T) {
		giver := buildTestAccount(t, store, 60*24*time.Hour)
		article := buildTestArticle(t, store, giver.ID, "doomed", time.Hour)
		since := testNow().Add(-time.Hour)
		appendTestAllocation(t, store, giver.ID, domain.EntityTypeArticle, article.ID, 150, testNow())

		require.NoError(t, store.DeleteEntity(ctx, domain.EntityTypeArticle, article.ID))

		got, err := store.GetEntity(ctx, domain.EntityTypeArticle, article.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		allocations, err := store.GetEntityAllocations(ctx, domain.EntityTypeArticle, article.ID)
		require.NoError(t, err)
		assert.Empty(t, allocations)

		count, err := store.CountAllocationsSince(ctx, giver.ID, since, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		err = store.DeleteEntity(ctx, domain.EntityTypeArticle, article.ID)
		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})

	t.Run("delete account cascades to its ledger, profile and entities", func(t *testing.T) {
		giver := buildTestAccount(t, store, 60*24*time.Hour)
		owner := buildTestAccount(t, store, 60*24*time.Hour)
		target := buildTestArticle(t, store, owner.ID, "target", time.Hour)
		owned := buildTestArticle(t, store, giver.ID, "owned", time.Hour)
		since := testNow().Add(-time.Hour)
		appendTestAllocation(t, store, giver.ID, domain.EntityTypeArticle, target.ID, 150, testNow())
		appendTestAllocation(t, store, owner.ID, domain.EntityTypeArticle, owned.ID, 30, testNow())

		require.NoError(t, store.DeleteAccount(ctx, giver.ID))

		account, err := store.GetAccount(ctx, giver.ID)
		require.NoError(t, err)
		assert.Nil(t, account)

		profile, err := store.GetProfile(ctx, giver.ID)
		require.NoError(t, err)
		assert.Nil(t, profile)

		gone, err := store.GetEntity(ctx, domain.EntityTypeArticle, owned.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		count, err := store.CountAllocationsSince(ctx, giver.ID, since, nil)
		require.NoError(t, err)
		assert.Zero(t, count)

		// The owner's allocation to the deleted entity stays in the ledger
		ownerCount, err := store.CountAllocationsSince(ctx, owner.ID, since, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), ownerCount)

		// Weight is never decremented
		kept, err := store.GetEntity(ctx, domain.EntityTypeArticle, target.ID)
		require.NoError(t, err)
		require.NotNil(t, kept)
		assert.InDelta(t, 150.0, kept.Weight, 1e-9)
		assert.Zero(t, ledgerSum(t, store, domain.EntityTypeArticle, target.ID))
	})
}

// =============================================================================
// Test: Ranking reads
// =============================================================================

func testRankingReads(t *testing.T, store Store) {
	ctx := context.Background()
	alice := buildTestAccount(t, store, 60*24*time.Hour)
	bob := buildTestAccount(t, store, 60*24*time.Hour)
	now := testNow()

	// Five public galleries, oldest first
	galleries := make([]*schema.Gallery, 5)
	for i := range galleries {
		owner := alice.ID
		if i%2 == 1 {
			owner = bob.ID
		}
		galleries[i] = &schema.Gallery{Content: buildTestContent(owner, fmt.Sprintf("gallery-%d", i), time.Duration(5-i)*time.Hour)}
		require.NoError(t, store.CreateEntity(ctx, galleries[i]))
	}

	// Hidden, unpublished and future galleries never show up
	hidden := &schema.Gallery{Content: buildTestContent(alice.ID, "hidden", time.Hour)}
	hidden.IsPublic = false
	unpublished := &schema.Gallery{Content: buildTestContent(alice.ID, "unpublished", time.Hour)}
	unpublished.PublicationDate = nil
	future := &schema.Gallery{Content: buildTestContent(alice.ID, "future", -time.Hour)}
	for _, g := range []*schema.Gallery{hidden, unpublished, future} {
		require.NoError(t, store.CreateEntity(ctx, g))
	}

	weights := []float64{30, 150, 5, 75, 150}
	for i, w := range weights {
		appendTestAllocation(t, store, alice.ID, domain.EntityTypeGallery, galleries[i].ID, w, now)
	}
	appendTestAllocation(t, store, alice.ID, domain.EntityTypeGallery, hidden.ID, 1000, now)

	t.Run("count eligible", func(t *testing.T) {
		count, err := store.CountEligible(ctx, EntityFilter{Type: domain.EntityTypeGallery, Now: now})
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)

		count, err = store.CountEligible(ctx, EntityFilter{Type: domain.EntityTypeGallery, Now: now, OwnerID: &bob.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("newest first", func(t *testing.T) {
		entities, err := store.ListNewest(ctx, EntityFilter{Type: domain.EntityTypeGallery, Now: now, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, []uint64{galleries[4].ID, galleries[3].ID, galleries[2].ID}, contentIDs(entities))
	})

	t.Run("heaviest first with ties to the latest publication", func(t *testing.T) {
		entities, err := store.ListTopWeighted(ctx, EntityFilter{Type: domain.EntityTypeGallery, Now: now})
		require.NoError(t, err)
		assert.Equal(t, []uint64{galleries[4].ID, galleries[1].ID, galleries[3].ID, galleries[0].ID, galleries[2].ID}, contentIDs(entities))
	})

	t.Run("exclusions and publication cutoff", func(t *testing.T) {
		cutoff := *galleries[3].PublicationDate
		entities, err := store.ListTopWeighted(ctx, EntityFilter{
			Type:            domain.EntityTypeGallery,
			Now:             now,
			ExcludeIDs:      []uint64{galleries[1].ID},
			PublishedBefore: &cutoff,
		})
		require.NoError(t, err)
		assert.Equal(t, []uint64{galleries[0].ID, galleries[2].ID}, contentIDs(entities))
	})

	t.Run("owner scope", func(t *testing.T) {
		entities, err := store.ListNewest(ctx, EntityFilter{Type: domain.EntityTypeGallery, Now: now, OwnerID: &bob.ID})
		require.NoError(t, err)
		assert.Equal(t, []uint64{galleries[3].ID, galleries[1].ID}, contentIDs(entities))
	})

	t.Run("future entity becomes eligible once published", func(t *testing.T) {
		count, err := store.CountEligible(ctx, EntityFilter{Type: domain.EntityTypeGallery, Now: now.Add(2 * time.Hour)})
		require.NoError(t, err)
		assert.Equal(t, int64(6), count)
	})
}

// =============================================================================
// Test: Weight drift
// =============================================================================

func testWeightDrift(t *testing.T, store Store) {
	ctx := context.Background()
	giver := buildTestAccount(t, store, 60*24*time.Hour)
	owner := buildTestAccount(t, store, 60*24*time.Hour)
	consistent := &schema.Track{Content: buildTestContent(owner.ID, "consistent", time.Hour)}
	orphaned := &schema.Track{Content: buildTestContent(owner.ID, "orphaned", time.Hour)}
	require.NoError(t, store.CreateEntity(ctx, consistent))
	require.NoError(t, store.CreateEntity(ctx, orphaned))

	appendTestAllocation(t, store, owner.ID, domain.EntityTypeTrack, consistent.ID, 30, testNow())
	appendTestAllocation(t, store, giver.ID, domain.EntityTypeTrack, orphaned.ID, 150, testNow())

	drifts, err := store.ListWeightDrift(ctx, domain.EntityTypeTrack, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, drifts)

	// Deleting the giver removes its ledger rows but never lowers the weight
	require.NoError(t, store.DeleteAccount(ctx, giver.ID))

	drifts, err = store.ListWeightDrift(ctx, domain.EntityTypeTrack, 0, 100)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, orphaned.ID, drifts[0].EntityID)
	assert.InDelta(t, 150.0, drifts[0].Weight, 1e-9)
	assert.Zero(t, drifts[0].LedgerSum)

	drifts, err = store.ListWeightDrift(ctx, domain.EntityTypeTrack, orphaned.ID, 100)
	require.NoError(t, err)
	assert.Empty(t, drifts)

	// Weight above the ledger sum is left alone
	raised, err := store.RaiseWeight(ctx, domain.EntityTypeTrack, orphaned.ID)
	require.NoError(t, err)
	assert.False(t, raised)

	got, err := store.GetEntity(ctx, domain.EntityTypeTrack, orphaned.ID)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, got.Weight, 1e-9)

	_, err = store.RaiseWeight(ctx, domain.EntityTypeTrack, 999999)
	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
}

// =============================================================================
// Test: Site profile
// =============================================================================

func testSiteProfile(t *testing.T, store Store) {
	ctx := context.Background()

	profile, err := store.GetSiteProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)

	scoped := false
	cooldown := int64(60)
	require.NoError(t, store.SaveSiteProfile(ctx, schema.MarshmallowSettings{
		CooldownSeconds:   &cooldown,
		Multiplier:        2.5,
		ScopeByEntityType: &scoped,
	}))

	profile, err = store.GetSiteProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	settings := profile.Marshmallow.Data()
	require.NotNil(t, settings.CooldownSeconds)
	assert.Equal(t, int64(60), *settings.CooldownSeconds)
	assert.InDelta(t, 2.5, settings.Multiplier, 1e-9)
	require.NotNil(t, settings.ScopeByEntityType)
	assert.False(t, *settings.ScopeByEntityType)

	// Saving again replaces the settings of the single row
	require.NoError(t, store.SaveSiteProfile(ctx, schema.MarshmallowSettings{LookbackDays: 7}))

	profile, err = store.GetSiteProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, uint(schema.SiteProfileID), profile.ID)
	assert.Equal(t, 7, profile.Marshmallow.Data().LookbackDays)
	assert.Nil(t, profile.Marshmallow.Data().CooldownSeconds)
}

// RunStoreTests runs all store tests against a store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Accounts", testAccounts},
		{"Entities", testEntities},
		{"AllocationTx", testAllocationTx},
		{"Deletion", testDeletion},
		{"RankingReads", testRankingReads},
		{"WeightDrift", testWeightDrift},
		{"SiteProfile", testSiteProfile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
