package services

import (
	"context"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
	"github.com/fintrackr/budget-ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read access to the raw entry stream.
type LedgerReaderSvc interface {
	// ListEntries retrieves a filtered, paginated ledger page, newest first.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// GetBudgetLine returns the latest-value view of a ticket plus its ordered
	// entry history. Distinct from the cumulative account-balance view.
	GetBudgetLine(ctx context.Context, ticketID string) (*domain.BudgetLine, error)
}

// BalanceProjectorSvc derives balances by folding the entry stream. Pure
// read-side; never mutates state, and every call recomputes from the store.
type BalanceProjectorSvc interface {
	// CurrentBalance folds all entries matching the scope: each entry decreases
	// the source account and increases the destination account by its amount.
	CurrentBalance(ctx context.Context, scope domain.EntryFilter) (decimal.Decimal, error)

	// AccountBalances returns the folded balance per account within the scope.
	AccountBalances(ctx context.Context, scope domain.EntryFilter) (map[string]decimal.Decimal, error)
}

// LedgerSvcFacade combines the ledger read-side interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	BalanceProjectorSvc
}
