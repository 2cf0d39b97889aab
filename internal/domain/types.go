package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EntityType identifies a content variant capable of receiving marshmallows
type EntityType string

const (
	EntityTypeArticle  EntityType = "article"
	EntityTypeStory    EntityType = "story"
	EntityTypeGallery  EntityType = "gallery"
	EntityTypeVisual   EntityType = "visual"
	EntityTypeTrack    EntityType = "track"
	EntityTypeAlbum    EntityType = "album"
	EntityTypePost     EntityType = "post"
	EntityTypeDocument EntityType = "document"
)

// EntityTypes lists every weighted content variant in a stable order
var EntityTypes = []EntityType{
	EntityTypeArticle,
	EntityTypeStory,
	EntityTypeGallery,
	EntityTypeVisual,
	EntityTypeTrack,
	EntityTypeAlbum,
	EntityTypePost,
	EntityTypeDocument,
}

// plurals maps URL collection names to entity types
var plurals = map[string]EntityType{
	"articles":  EntityTypeArticle,
	"stories":   EntityTypeStory,
	"galleries": EntityTypeGallery,
	"visuals":   EntityTypeVisual,
	"tracks":    EntityTypeTrack,
	"albums":    EntityTypeAlbum,
	"posts":     EntityTypePost,
	"documents": EntityTypeDocument,
}

// Valid reports whether t is a known entity type
func (t EntityType) Valid() bool {
	for _, et := range EntityTypes {
		if et == t {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer
func (t EntityType) String() string {
	return string(t)
}

// ParseEntityType parses an entity type from its singular or plural name, case-insensitively
func ParseEntityType(s string) (EntityType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if et := EntityType(name); et.Valid() {
		return et, nil
	}
	if et, ok := plurals[name]; ok {
		return et, nil
	}
	return "", ErrUnknownEntityType
}

// IneligibleReason explains why an allocation did not happen
type IneligibleReason string

const (
	ReasonNoProfile       IneligibleReason = "no_profile"
	ReasonNewAccount      IneligibleReason = "new_account"
	ReasonCooldown        IneligibleReason = "cooldown"
	ReasonEntityNotPublic IneligibleReason = "entity_not_public"
)

// AllocationEvent is emitted after an allocation has been committed
type AllocationEvent struct {
	EventID      string     `json:"event_id"`
	AllocationID uint64     `json:"allocation_id"`
	AccountID    uuid.UUID  `json:"account_id"`
	EntityType   EntityType `json:"entity_type"`
	EntityID     uint64     `json:"entity_id"`
	Weight       float64    `json:"weight"`
	EntityWeight float64    `json:"entity_weight"`
	CreatedAt    time.Time  `json:"created_at"`
}
