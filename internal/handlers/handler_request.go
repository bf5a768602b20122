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

// requestHandler handles the supplemental request workflow endpoints.
type requestHandler struct {
	requestService portssvc.SupplementalRequestSvcFacade
}

func newRequestHandler(requestService portssvc.SupplementalRequestSvcFacade) *requestHandler {
	return &requestHandler{requestService: requestService}
}

// submitRequest godoc
// @Summary Submit a supplemental budget request
// @Description Creates a PENDING request for extra budget, awaiting approver resolution
// @Tags requests
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateSupplementalRequest true "Supplemental request"
// @Success 201 {object} dto.SupplementalRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string "Requester outside own department"
// @Router /requests [post]
func (h *requestHandler) submitRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSupplementalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for submitRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.requestService.SubmitRequest(c.Request.Context(), identity, req)
	if err != nil {
		logger.Warn("Failed to submit request", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapping.ToSupplementalRequestResponse(created))
}

// getRequest godoc
// @Summary Get a supplemental request
// @Tags requests
// @Produce  json
// @Param   requestID path string true "Request ID"
// @Success 200 {object} dto.SupplementalRequestResponse
// @Failure 404 {object} map[string]string
// @Router /requests/{requestID} [get]
func (h *requestHandler) getRequest(c *gin.Context) {
	requestID := c.Param("requestID")

	request, err := h.requestService.GetRequestByID(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapping.ToSupplementalRequestResponse(request))
}

// listRequests godoc
// @Summary List supplemental requests
// @Description Non-approver callers only see their own department's requests
// @Tags requests
// @Produce  json
// @Param   departmentID query string false "Department filter"
// @Param   status query string false "PENDING, APPROVED or REJECTED"
// @Param   requesterID query string false "Requester filter"
// @Success 200 {object} dto.ListRequestsResponse
// @Router /requests [get]
func (h *requestHandler) listRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listRequests", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	requests, err := h.requestService.ListRequests(c.Request.Context(), identity, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListRequestsResponse{Requests: mapping.ToSupplementalRequestResponses(requests)})
}

// approveRequest godoc
// @Summary Approve a supplemental request
// @Description Transitions PENDING to APPROVED and appends the granting journal entry atomically
// @Tags requests
// @Produce  json
// @Param   requestID path string true "Request ID"
// @Success 200 {object} dto.SupplementalRequestResponse
// @Failure 403 {object} map[string]string "Caller is not an approver"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "Request already resolved"
// @Router /requests/{requestID}/approve [post]
func (h *requestHandler) approveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("requestID")

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resolved, err := h.requestService.ApproveRequest(c.Request.Context(), identity, requestID)
	if err != nil {
		logger.Warn("Failed to approve request",
			slog.String("requestID", requestID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapping.ToSupplementalRequestResponse(resolved))
}

// rejectRequest godoc
// @Summary Reject a supplemental request
// @Description Transitions PENDING to REJECTED. Remarks are mandatory; the ledger is untouched
// @Tags requests
// @Accept  json
// @Produce  json
// @Param   requestID path string true "Request ID"
// @Param   rejection body dto.RejectRequest true "Rejection remarks"
// @Success 200 {object} dto.SupplementalRequestResponse
// @Failure 400 {object} map[string]string "Missing remarks"
// @Failure 409 {object} map[string]string "Request already resolved"
// @Router /requests/{requestID}/reject [post]
func (h *requestHandler) rejectRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("requestID")

	var body dto.RejectRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.Error("Failed to bind JSON for rejectRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resolved, err := h.requestService.RejectRequest(c.Request.Context(), identity, requestID, body.Remarks)
	if err != nil {
		logger.Warn("Failed to reject request",
			slog.String("requestID", requestID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapping.ToSupplementalRequestResponse(resolved))
}

func registerRequestRoutes(group *gin.RouterGroup, requestService portssvc.SupplementalRequestSvcFacade) {
	h := newRequestHandler(requestService)
	group.POST("/requests", h.submitRequest)
	group.GET("/requests", h.listRequests)
	group.GET("/requests/:requestID", h.getRequest)
	group.POST("/requests/:requestID/approve", h.approveRequest)
	group.POST("/requests/:requestID/reject", h.rejectRequest)
}
