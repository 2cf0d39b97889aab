package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lookaway/lookaway/internal/adapter"
	"github.com/lookaway/lookaway/internal/domain"
	"github.com/lookaway/lookaway/internal/logger"
	"github.com/lookaway/lookaway/internal/settings"
	"github.com/lookaway/lookaway/internal/store"
	"github.com/lookaway/lookaway/internal/store/schema"
)

// Query selects the lists to build for one entity type
type Query struct {
	Type    domain.EntityType
	N       int // zero means the configured ranking count
	ShowNew bool
	ShowTop bool
	OwnerID *uuid.UUID
}

// Lists holds the "new" and "top" lists of a ranking query
type Lists struct {
	New []schema.Content
	Top []schema.Content
}

// Service builds the "new" and "top" lists shown on listing pages
//
//go:generate mockgen -source=service.go -destination=../mocks/ranking_service.go -package=mocks -mock_names=Service=MockRankingService
type Service interface {
	// NewAndTop returns the newest and the heaviest eligible entities.
	// When the eligible population is at least N, no entity appears in both lists.
	NewAndTop(ctx context.Context, query Query) (*Lists, error)
}

type service struct {
	settings settings.Settings
	store    store.Store
	clock    adapter.Clock
}

// NewService creates a new ranking service
func NewService(cfg settings.Settings, st store.Store, clock adapter.Clock) Service {
	return &service{
		settings: cfg,
		store:    st,
		clock:    clock,
	}
}

// NewAndTop returns the newest and the heaviest eligible entities
func (s *service) NewAndTop(ctx context.Context, query Query) (*Lists, error) {
	if !query.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEntityType, query.Type)
	}

	n := s.count(query.N)
	filter := store.EntityFilter{
		Type:    query.Type,
		Now:     s.clock.Now(),
		OwnerID: query.OwnerID,
		Limit:   n,
	}

	lists := &Lists{
		New: []schema.Content{},
		Top: []schema.Content{},
	}

	if query.ShowNew {
		newest, err := s.store.ListNewest(ctx, filter)
		if err != nil {
			return nil, err
		}
		lists.New = newest
	}

	if !query.ShowTop {
		return lists, nil
	}

	topFilter := filter
	if query.ShowNew && len(lists.New) > 0 {
		population, err := s.store.CountEligible(ctx, filter)
		if err != nil {
			return nil, err
		}

		// A population smaller than n is ranked whole
		if population >= int64(n) {
			topFilter.ExcludeIDs, topFilter.PublishedBefore = exclusion(lists.New)
		}
	}

	top, err := s.store.ListTopWeighted(ctx, topFilter)
	if err != nil {
		return nil, err
	}
	lists.Top = top

	logger.DebugCtx(ctx, "Built ranking lists",
		logger.EntityType(query.Type.String()),
		zap.Int("n", n),
		zap.Int("new", len(lists.New)),
		zap.Int("top", len(lists.Top)),
	)
	return lists, nil
}

// count applies the configured default and ceiling to a requested list size
func (s *service) count(requested int) int {
	n := requested
	if n <= 0 {
		n = s.settings.RankingCount
	}
	if s.settings.MaxRankingCount > 0 && n > s.settings.MaxRankingCount {
		n = s.settings.MaxRankingCount
	}
	return n
}

// exclusion returns the ids of the "new" set and the publication date of its last entry,
// the n-th newest. Entities published at or after that date stay out of the "top" list.
func exclusion(newest []schema.Content) ([]uint64, *time.Time) {
	ids := make([]uint64, 0, len(newest))
	for i := range newest {
		ids = append(ids, newest[i].ID)
	}
	return ids, newest[len(newest)-1].PublicationDate
}
