package schema

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lookaway/lookaway/internal/domain"
)

// Weighted is the capability shared by every content variant that can receive marshmallows
//
// Implementations embed Content and declare their own many2many Allocations association
// against a per-variant join table (see JoinTableName).
type Weighted interface {
	EntityType() domain.EntityType
	TableName() string
	GetID() uint64
	GetOwnerID() uuid.UUID
	GetWeight() float64
	IsPublished(now time.Time) bool
	GetContent() *Content
	GetAllocations() []Allocation
}

// Content holds the columns shared by every weighted content table
type Content struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// OwnerID is the account that created the entity
	OwnerID uuid.UUID `gorm:"column:owner_id;not null;type:uuid;index"`
	// Title is the display title
	Title string `gorm:"column:title;not null"`
	// Slug is the URL-safe name
	Slug string `gorm:"column:slug;not null;index"`
	// IsPublic gates rankings and allocations
	IsPublic bool `gorm:"column:is_public;not null;default:false"`
	// PublicationDate is when the entity goes live (nil means unpublished)
	PublicationDate *time.Time `gorm:"column:publication_date;index"`
	// CreationDate is when the entity was created; drives the "new" list
	CreationDate time.Time `gorm:"column:creation_date;not null;index"`
	// Weight is the denormalized sum of all allocation weights received
	Weight float64 `gorm:"column:weight;not null;default:0;index"`
}

func (c *Content) GetID() uint64 {
	return c.ID
}

func (c *Content) GetOwnerID() uuid.UUID {
	return c.OwnerID
}

func (c *Content) GetWeight() float64 {
	return c.Weight
}

func (c *Content) GetContent() *Content {
	return c
}

// IsPublished reports whether the entity is public and its publication date has passed
func (c *Content) IsPublished(now time.Time) bool {
	return c.IsPublic && c.PublicationDate != nil && !c.PublicationDate.After(now)
}

var entityTables = map[domain.EntityType]string{
	domain.EntityTypeArticle:  "articles",
	domain.EntityTypeStory:    "stories",
	domain.EntityTypeGallery:  "galleries",
	domain.EntityTypeVisual:   "visuals",
	domain.EntityTypeTrack:    "tracks",
	domain.EntityTypeAlbum:    "albums",
	domain.EntityTypePost:     "posts",
	domain.EntityTypeDocument: "documents",
}

// TableName returns the content table for an entity type
func TableName(t domain.EntityType) (string, error) {
	table, ok := entityTables[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownEntityType, t)
	}
	return table, nil
}

// JoinTableName returns the allocation join table for an entity type
func JoinTableName(t domain.EntityType) (string, error) {
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownEntityType, t)
	}
	return string(t) + "_allocations", nil
}

// NewEntity returns an empty model for the entity type
func NewEntity(t domain.EntityType) (Weighted, error) {
	switch t {
	case domain.EntityTypeArticle:
		return &Article{}, nil
	case domain.EntityTypeStory:
		return &Story{}, nil
	case domain.EntityTypeGallery:
		return &Gallery{}, nil
	case domain.EntityTypeVisual:
		return &Visual{}, nil
	case domain.EntityTypeTrack:
		return &Track{}, nil
	case domain.EntityTypeAlbum:
		return &Album{}, nil
	case domain.EntityTypePost:
		return &Post{}, nil
	case domain.EntityTypeDocument:
		return &Document{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEntityType, t)
	}
}

// WeightedModels lists every weighted model for migrations
func WeightedModels() []any {
	models := make([]any, 0, len(domain.EntityTypes))
	for _, t := range domain.EntityTypes {
		m, _ := NewEntity(t)
		models = append(models, m)
	}
	return models
}
