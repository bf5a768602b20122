package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
	portssvc "github.com/fintrackr/budget-ledger/internal/core/ports/services"
	"github.com/fintrackr/budget-ledger/internal/dto"
	"github.com/fintrackr/budget-ledger/internal/middleware"
	"github.com/fintrackr/budget-ledger/internal/utils/mapping"
)

type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(auditService portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: auditService}
}

// getAuditTrail godoc
// @Summary Get the audit trail
// @Description Derives the chronological audit trail from journal entries and workflow resolutions, newest first
// @Tags audit
// @Produce  json
// @Param   departmentID query string false "Department filter"
// @Param   action query string false "SUBMITTED, APPROVED or REJECTED"
// @Param   limit query int false "Maximum rows"
// @Success 200 {object} dto.AuditTrailResponse
// @Router /audit [get]
func (h *auditHandler) getAuditTrail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.AuditTrailParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getAuditTrail", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	entries, err := h.auditService.AuditTrail(c.Request.Context(), domain.AuditFilter{
		DepartmentID: params.DepartmentID,
		Action:       domain.AuditAction(params.Action),
		Limit:        params.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AuditTrailResponse{Entries: mapping.ToAuditLogEntryResponses(entries)})
}

func registerAuditRoutes(group *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)
	group.GET("/audit", h.getAuditTrail)
}
