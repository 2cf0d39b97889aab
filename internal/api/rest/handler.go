package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lookaway/lookaway/internal/api/middleware"
	"github.com/lookaway/lookaway/internal/api/shared/dto"
	"github.com/lookaway/lookaway/internal/domain"
	"github.com/lookaway/lookaway/internal/logger"
	"github.com/lookaway/lookaway/internal/marshmallow"
	"github.com/lookaway/lookaway/internal/ranking"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// GetEligibility reports whether an account may allocate and the weight its next allocation would carry
	// GET /api/v1/accounts/:id/eligibility?type=<entity_type>
	GetEligibility(c *gin.Context)

	// Allocate gives marshmallows from the authenticated account to an entity (requires JWT authentication)
	// POST /api/v1/entities/:type/:id/marshmallows
	// An ineligible account gets 200 with allocated=false and the reason
	Allocate(c *gin.Context)

	// GetRankings retrieves the "new" and "top" lists of an entity type
	// GET /api/v1/entities/:type/rankings?n=<count>&new=<bool>&top=<bool>&owner=<account_id>
	GetRankings(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	marshmallows marshmallow.Service
	rankings     ranking.Service
}

// NewHandler creates a new REST API handler
func NewHandler(marshmallows marshmallow.Service, rankings ranking.Service) Handler {
	return &handler{
		marshmallows: marshmallows,
		rankings:     rankings,
	}
}

// GetEligibility reports the allocation eligibility of an account
func (h *handler) GetEligibility(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid account ID")
		return
	}

	queryParams, err := ParseEligibilityQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	isNew, err := h.marshmallows.IsNewAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			respondNotFound(c, "Account not found")
			return
		}
		respondInternalError(c, err, "Failed to check account age", logger.AccountID(accountID))
		return
	}

	canAllocate, err := h.marshmallows.CanAllocate(ctx, accountID)
	if err != nil {
		respondInternalError(c, err, "Failed to check cooldown", logger.AccountID(accountID))
		return
	}

	weight, err := h.marshmallows.AdjustedWeight(ctx, accountID, queryParams.Scope)
	if err != nil {
		respondInternalError(c, err, "Failed to compute weight", logger.AccountID(accountID))
		return
	}

	c.JSON(http.StatusOK, dto.EligibilityResponse{
		AccountID:         accountID,
		CanAllocate:       canAllocate && !isNew,
		IsNewAccount:      isNew,
		NextWeight:        weight,
		NextWeightDisplay: marshmallow.FormatWeight(weight),
	})
}

// Allocate gives marshmallows from the authenticated account to an entity
func (h *handler) Allocate(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		respondForbidden(c, "An account token is required to give marshmallows")
		return
	}

	entityType, err := domain.ParseEntityType(c.Param("type"))
	if err != nil {
		respondNotFound(c, "Unknown entity type", c.Param("type"))
		return
	}

	entityID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || entityID == 0 {
		respondBadRequest(c, "Invalid entity ID")
		return
	}

	result, err := h.marshmallows.Allocate(c.Request.Context(), accountID, entityType, entityID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			respondNotFound(c, "Account not found")
		case errors.Is(err, domain.ErrEntityNotFound):
			respondNotFound(c, "Entity not found")
		case errors.Is(err, domain.ErrAllocationConflict):
			respondConflict(c, "Allocation conflicted with a concurrent request", "retry the request")
		default:
			respondInternalError(c, err, "Failed to give marshmallows",
				logger.AccountID(accountID),
				logger.EntityType(entityType.String()),
				logger.EntityID(entityID),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.MapAllocationResult(result))
}

// GetRankings retrieves the "new" and "top" lists of an entity type
func (h *handler) GetRankings(c *gin.Context) {
	entityType, err := domain.ParseEntityType(c.Param("type"))
	if err != nil {
		respondNotFound(c, "Unknown entity type", c.Param("type"))
		return
	}

	queryParams, err := ParseRankingsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	lists, err := h.rankings.NewAndTop(c.Request.Context(), ranking.Query{
		Type:    entityType,
		N:       queryParams.N,
		ShowNew: queryParams.ShowNew,
		ShowTop: queryParams.ShowTop,
		OwnerID: queryParams.OwnerID,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to rank entities", logger.EntityType(entityType.String()))
		return
	}

	c.JSON(http.StatusOK, dto.RankingsResponse{
		Type: entityType,
		New:  dto.MapEntities(entityType, lists.New),
		Top:  dto.MapEntities(entityType, lists.Top),
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
