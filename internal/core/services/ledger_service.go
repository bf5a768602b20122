package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/fintrackr/budget-ledger/internal/apperrors"
	"github.com/fintrackr/budget-ledger/internal/core/domain"
	portsrepo "github.com/fintrackr/budget-ledger/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/budget-ledger/internal/core/ports/services"
	"github.com/fintrackr/budget-ledger/internal/dto"
	"github.com/fintrackr/budget-ledger/internal/utils/mapping"
)

const defaultListLimit = 20

// ledgerService is the read side of the ledger: entry listings, the budget-line
// view and the balance projections. It holds no state of its own; every call
// folds over the authoritative entry stream.
type ledgerService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewLedgerService creates a new ledger read service.
func NewLedgerService(journalRepo portsrepo.JournalRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{journalRepo: journalRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// ListEntries retrieves a filtered, token-paginated ledger page, newest first.
func (s *ledgerService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	filter := domain.EntryFilter{
		DepartmentID: params.DepartmentID,
		Category:     domain.Category(params.Category),
		AccountID:    params.AccountID,
		TicketID:     params.TicketID,
		AsOf:         params.AsOf,
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}

	resp := &dto.ListEntriesResponse{
		Entries:   mapping.ToJournalEntryResponses(entries),
		NextToken: nextToken,
	}
	s.LogDebug(ctx, "Ledger entries listed", slog.Int("count", len(entries)))
	return resp, nil
}

// GetBudgetLine returns the latest-stated-value view of a ticket plus its
// ordered history. This is deliberately distinct from the cumulative
// account-balance view: the UI needs both "ledger of transfers" and "current
// line-item amount" semantics.
func (s *ledgerService) GetBudgetLine(ctx context.Context, ticketID string) (*domain.BudgetLine, error) {
	entries, err := s.journalRepo.FindEntriesByTicket(ctx, ticketID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch entries for ticket", slog.String("ticket_id", ticketID))
		}
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrNotFound
	}

	latest := entries[len(entries)-1]
	line := &domain.BudgetLine{
		TicketID:      ticketID,
		DepartmentID:  latest.DepartmentID,
		Category:      latest.Category,
		CurrentAmount: latest.Amount,
		UpdatedAt:     latest.CreatedAt,
		History:       entries,
	}
	return line, nil
}

// CurrentBalance folds all entries matching the scope in creation order: each
// entry decreases the source account and increases the destination account.
// When the scope names a single account this yields that account's available
// balance; wider scopes yield the net position of the matching accounts.
func (s *ledgerService) CurrentBalance(ctx context.Context, scope domain.EntryFilter) (decimal.Decimal, error) {
	balances, err := s.AccountBalances(ctx, scope)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b)
	}
	return total, nil
}

// AccountBalances returns the folded balance per account within the scope.
func (s *ledgerService) AccountBalances(ctx context.Context, scope domain.EntryFilter) (map[string]decimal.Decimal, error) {
	entries, err := s.journalRepo.ListAllEntries(ctx, scope)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for balance projection")
		return nil, fmt.Errorf("failed to project balances: %w", err)
	}

	balances := make(map[string]decimal.Decimal)
	for _, e := range entries {
		// When the scope pins one account, only that account's side contributes.
		if scope.AccountID == "" || e.SourceAccountID == scope.AccountID {
			balances[e.SourceAccountID] = balances[e.SourceAccountID].Sub(e.Amount)
		}
		if scope.AccountID == "" || e.DestinationAccountID == scope.AccountID {
			balances[e.DestinationAccountID] = balances[e.DestinationAccountID].Add(e.Amount)
		}
	}
	return balances, nil
}
