package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lookaway/lookaway/internal/domain"
)

// RankingsQueryParams holds query parameters for GET /entities/:type/rankings
type RankingsQueryParams struct {
	// N is the length of each list; zero means the configured default
	N       int    `form:"n,default=0"`
	ShowNew bool   `form:"new,default=true"`
	ShowTop bool   `form:"top,default=true"`
	Owner   string `form:"owner"`

	OwnerID *uuid.UUID `form:"-"`
}

// EligibilityQueryParams holds query parameters for GET /accounts/:id/eligibility
type EligibilityQueryParams struct {
	// Type scopes the next-weight preview to one entity type
	Type string `form:"type"`

	Scope *domain.EntityType `form:"-"`
}

// ParseRankingsQuery parses query parameters for GET /entities/:type/rankings
func ParseRankingsQuery(c *gin.Context) (*RankingsQueryParams, error) {
	var params RankingsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Owner != "" {
		ownerID, err := uuid.Parse(params.Owner)
		if err != nil {
			return nil, fmt.Errorf("invalid owner: %w", err)
		}
		params.OwnerID = &ownerID
	}

	return &params, nil
}

// Validate validates the rankings query parameters
func (p *RankingsQueryParams) Validate() error {
	if p.N < 0 {
		return fmt.Errorf("n must not be negative")
	}
	return nil
}

// ParseEligibilityQuery parses query parameters for GET /accounts/:id/eligibility
func ParseEligibilityQuery(c *gin.Context) (*EligibilityQueryParams, error) {
	var params EligibilityQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Type != "" {
		entityType, err := domain.ParseEntityType(params.Type)
		if err != nil {
			return nil, fmt.Errorf("invalid type %q: %w", params.Type, err)
		}
		params.Scope = &entityType
	}

	return &params, nil
}
