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

// ledgerHandler serves the read side: entry listings, budget lines, balances.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ledgerService}
}

// listEntries godoc
// @Summary List journal entries
// @Description Retrieves a filtered, token-paginated page of the ledger, newest first
// @Tags ledger
// @Produce  json
// @Param   departmentID query string false "Department filter"
// @Param   category query string false "CAPEX or OPEX"
// @Param   accountID query string false "Matches either side of a transfer"
// @Param   ticketID query string false "Budget line filter"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListEntriesResponse
// @Router /ledger [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.ledgerService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getBudgetLine godoc
// @Summary Get a budget line
// @Description Retrieves the latest-value view of a ticket plus its full entry history
// @Tags ledger
// @Produce  json
// @Param   ticketID path string true "Ticket ID"
// @Success 200 {object} dto.BudgetLineResponse
// @Failure 404 {object} map[string]string "Unknown ticket"
// @Router /ledger/tickets/{ticketID} [get]
func (h *ledgerHandler) getBudgetLine(c *gin.Context) {
	ticketID := c.Param("ticketID")

	line, err := h.ledgerService.GetBudgetLine(c.Request.Context(), ticketID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapping.ToBudgetLineResponse(line))
}

// getBalance godoc
// @Summary Project a balance
// @Description Folds the entry stream for the given scope and returns the resulting balance
// @Tags ledger
// @Produce  json
// @Param   departmentID query string false "Department scope"
// @Param   category query string false "CAPEX or OPEX"
// @Param   accountID query string false "Single-account scope"
// @Param   asOf query string false "Point-in-time projection (RFC3339)"
// @Success 200 {object} dto.BalanceResponse
// @Router /balances [get]
func (h *ledgerHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.BalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	scope := domain.EntryFilter{
		DepartmentID: params.DepartmentID,
		Category:     domain.Category(params.Category),
		AccountID:    params.AccountID,
		AsOf:         params.AsOf,
	}

	balance, err := h.ledgerService.CurrentBalance(c.Request.Context(), scope)
	if err != nil {
		respondError(c, err)
		return
	}
	byAccount, err := h.ledgerService.AccountBalances(c.Request.Context(), scope)
	if err != nil {
		respondError(c, err)
		return
	}

	formatted := make(map[string]string, len(byAccount))
	for accountID, b := range byAccount {
		formatted[accountID] = b.StringFixed(2)
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		DepartmentID: params.DepartmentID,
		Category:     params.Category,
		AccountID:    params.AccountID,
		AsOf:         params.AsOf,
		Balance:      balance.StringFixed(2),
		ByAccount:    formatted,
	})
}

func registerLedgerRoutes(group *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)
	group.GET("/ledger", h.listEntries)
	group.GET("/ledger/tickets/:ticketID", h.getBudgetLine)
	group.GET("/balances", h.getBalance)
}
