package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/lookaway/lookaway/internal/domain"
	"github.com/lookaway/lookaway/internal/marshmallow"
	"github.com/lookaway/lookaway/internal/store/schema"
)

// EligibilityResponse represents the allocation eligibility of an account
type EligibilityResponse struct {
	AccountID         uuid.UUID `json:"account_id"`
	CanAllocate       bool      `json:"can_allocate"`
	IsNewAccount      bool      `json:"is_new_account"`
	NextWeight        float64   `json:"next_weight"`
	NextWeightDisplay string    `json:"next_weight_display"`
}

// AllocationResponse represents the outcome of an allocation attempt
type AllocationResponse struct {
	Allocated           bool       `json:"allocated"`
	Weight              float64    `json:"weight"`
	WeightDisplay       string     `json:"weight_display"`
	Label               string     `json:"label,omitempty"`
	Reason              string     `json:"reason,omitempty"`
	Message             string     `json:"message"`
	EntityWeight        *float64   `json:"entity_weight,omitempty"`
	EntityWeightDisplay string     `json:"entity_weight_display,omitempty"`
	AllocatedAt         *time.Time `json:"allocated_at,omitempty"`
}

// EntityResponse represents a weighted entity in a ranking list
type EntityResponse struct {
	ID              uint64            `json:"id"`
	Type            domain.EntityType `json:"type"`
	OwnerID         uuid.UUID         `json:"owner_id"`
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	PublicationDate *time.Time        `json:"publication_date,omitempty"`
	CreationDate    time.Time         `json:"creation_date"`
	Weight          float64           `json:"weight"`
	WeightDisplay   string            `json:"weight_display"`
}

// RankingsResponse represents the "new" and "top" lists of an entity type
type RankingsResponse struct {
	Type domain.EntityType `json:"type"`
	New  []EntityResponse  `json:"new"`
	Top  []EntityResponse  `json:"top"`
}

// reasonMessages are the user-facing explanations of a refused allocation
var reasonMessages = map[domain.IneligibleReason]string{
	domain.ReasonCooldown:        "You need to wait a little before giving marshmallows again.",
	domain.ReasonNewAccount:      "Your account is too new to give marshmallows.",
	domain.ReasonNoProfile:       "Your account cannot give marshmallows yet.",
	domain.ReasonEntityNotPublic: "This content is not public.",
}

// MapAllocationResult converts an allocation result to its response
func MapAllocationResult(result *marshmallow.Result) AllocationResponse {
	if !result.Allocated {
		message, ok := reasonMessages[result.Reason]
		if !ok {
			message = "Marshmallows could not be given."
		}
		return AllocationResponse{
			Allocated:     false,
			WeightDisplay: marshmallow.FormatWeight(0),
			Reason:        string(result.Reason),
			Message:       message,
		}
	}

	entityWeight := result.EntityWeight
	allocatedAt := result.AllocatedAt
	return AllocationResponse{
		Allocated:           true,
		Weight:              result.Weight,
		WeightDisplay:       marshmallow.FormatWeight(result.Weight),
		Label:               result.Label,
		Message:             "Marshmallows given: " + result.Label + ".",
		EntityWeight:        &entityWeight,
		EntityWeightDisplay: marshmallow.FormatWeight(entityWeight),
		AllocatedAt:         &allocatedAt,
	}
}

// MapEntities converts ranked entities to their responses
func MapEntities(entityType domain.EntityType, entities []schema.Content) []EntityResponse {
	out := make([]EntityResponse, len(entities))
	for i, e := range entities {
		out[i] = EntityResponse{
			ID:              e.ID,
			Type:            entityType,
			OwnerID:         e.OwnerID,
			Title:           e.Title,
			Slug:            e.Slug,
			PublicationDate: e.PublicationDate,
			CreationDate:    e.CreationDate,
			Weight:          e.Weight,
			WeightDisplay:   marshmallow.FormatWeight(e.Weight),
		}
	}
	return out
}
