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

// proposalHandler handles the budget proposal workflow endpoints.
type proposalHandler struct {
	proposalService portssvc.ProposalSvcFacade
}

func newProposalHandler(proposalService portssvc.ProposalSvcFacade) *proposalHandler {
	return &proposalHandler{proposalService: proposalService}
}

// submitProposal godoc
// @Summary Submit a budget proposal
// @Description Creates a PENDING proposal with its cost-element breakdown
// @Tags proposals
// @Accept  json
// @Produce  json
// @Param   proposal body dto.CreateProposalRequest true "Budget proposal"
// @Success 201 {object} dto.ProposalResponse
// @Failure 400 {object} map[string]string "Cost elements must sum to the amount"
// @Router /proposals [post]
func (h *proposalHandler) submitProposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for submitProposal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.proposalService.SubmitProposal(c.Request.Context(), identity, req)
	if err != nil {
		logger.Warn("Failed to submit proposal", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapping.ToProposalResponse(created))
}

// getProposal godoc
// @Summary Get a budget proposal
// @Tags proposals
// @Produce  json
// @Param   proposalID path string true "Proposal ID"
// @Success 200 {object} dto.ProposalResponse
// @Failure 404 {object} map[string]string
// @Router /proposals/{proposalID} [get]
func (h *proposalHandler) getProposal(c *gin.Context) {
	proposalID := c.Param("proposalID")

	proposal, err := h.proposalService.GetProposalByID(c.Request.Context(), proposalID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapping.ToProposalResponse(proposal))
}

// listProposals godoc
// @Summary List budget proposals
// @Description Non-approver callers only see their own department's proposals
// @Tags proposals
// @Produce  json
// @Param   departmentID query string false "Department filter"
// @Param   status query string false "PENDING, APPROVED or REJECTED"
// @Param   requesterID query string false "Requester filter"
// @Success 200 {object} dto.ListProposalsResponse
// @Router /proposals [get]
func (h *proposalHandler) listProposals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listProposals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	proposals, err := h.proposalService.ListProposals(c.Request.Context(), identity, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListProposalsResponse{Proposals: mapping.ToProposalResponses(proposals)})
}

// approveProposal godoc
// @Summary Approve a budget proposal
// @Description Transitions PENDING to APPROVED, records the signature and appends the granting journal entry atomically
// @Tags proposals
// @Accept  json
// @Produce  json
// @Param   proposalID path string true "Proposal ID"
// @Param   approval body dto.ApproveProposalRequest true "Approval signature"
// @Success 200 {object} dto.ProposalResponse
// @Failure 403 {object} map[string]string "Caller is not an approver"
// @Failure 409 {object} map[string]string "Proposal already resolved"
// @Router /proposals/{proposalID}/approve [post]
func (h *proposalHandler) approveProposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proposalID := c.Param("proposalID")

	var body dto.ApproveProposalRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.Error("Failed to bind JSON for approveProposal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resolved, err := h.proposalService.ApproveProposal(c.Request.Context(), identity, proposalID, body.Signature)
	if err != nil {
		logger.Warn("Failed to approve proposal",
			slog.String("proposalID", proposalID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapping.ToProposalResponse(resolved))
}

// rejectProposal godoc
// @Summary Reject a budget proposal
// @Description Transitions PENDING to REJECTED with mandatory remarks
// @Tags proposals
// @Accept  json
// @Produce  json
// @Param   proposalID path string true "Proposal ID"
// @Param   rejection body dto.RejectRequest true "Rejection remarks"
// @Success 200 {object} dto.ProposalResponse
// @Failure 400 {object} map[string]string "Missing remarks"
// @Failure 409 {object} map[string]string "Proposal already resolved"
// @Router /proposals/{proposalID}/reject [post]
func (h *proposalHandler) rejectProposal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proposalID := c.Param("proposalID")

	var body dto.RejectRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.Error("Failed to bind JSON for rejectProposal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resolved, err := h.proposalService.RejectProposal(c.Request.Context(), identity, proposalID, body.Remarks)
	if err != nil {
		logger.Warn("Failed to reject proposal",
			slog.String("proposalID", proposalID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapping.ToProposalResponse(resolved))
}

func registerProposalRoutes(group *gin.RouterGroup, proposalService portssvc.ProposalSvcFacade) {
	h := newProposalHandler(proposalService)
	group.POST("/proposals", h.submitProposal)
	group.GET("/proposals", h.listProposals)
	group.GET("/proposals/:proposalID", h.getProposal)
	group.POST("/proposals/:proposalID/approve", h.approveProposal)
	group.POST("/proposals/:proposalID/reject", h.rejectProposal)
}
