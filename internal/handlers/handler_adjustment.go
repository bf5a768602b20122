package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fintrackr/budget-ledger/internal/core/ports/services"
	"github.com/fintrackr/budget-ledger/internal/dto"
	"github.com/fintrackr/budget-ledger/internal/middleware"
	"github.com/fintrackr/budget-ledger/internal/utils/mapping"
)

// adjustmentHandler handles HTTP requests for direct budget adjustments.
type adjustmentHandler struct {
	adjustmentService portssvc.AdjustmentSvcFacade
}

func newAdjustmentHandler(adjustmentService portssvc.AdjustmentSvcFacade) *adjustmentHandler {
	return &adjustmentHandler{adjustmentService: adjustmentService}
}

// createAdjustment godoc
// @Summary Create a direct budget adjustment
// @Description Validates and appends a journal entry transferring budget between two accounts
// @Tags adjustments
// @Accept  json
// @Produce  json
// @Param   adjustment body dto.CreateAdjustmentRequest true "Adjustment"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Validation error with failing field"
// @Failure 403 {object} map[string]string "Role lacks direct-write authority"
// @Router /adjustments [post]
func (h *adjustmentHandler) createAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createAdjustment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		logger.Error("Identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.adjustmentService.CreateAdjustment(c.Request.Context(), identity, req)
	if err != nil {
		logger.Warn("Failed to create adjustment", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapping.ToJournalEntryResponse(*entry))
}

func registerAdjustmentRoutes(group *gin.RouterGroup, adjustmentService portssvc.AdjustmentSvcFacade) {
	h := newAdjustmentHandler(adjustmentService)
	group.POST("/adjustments", h.createAdjustment)
}
