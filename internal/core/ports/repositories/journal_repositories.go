package repositories

import (
	"context"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
)

// EntryWriter defines write operations for the journal entry store.
// Append is the ONLY write: the absence of update/delete methods is what enforces
// the append-only invariant at the interface level rather than by convention.
type EntryWriter interface {
	// AppendEntry durably records a new journal entry. The EntryID acts as an
	// idempotency key: re-appending an existing ID returns apperrors.ErrDuplicate
	// so retried writes can never double-book.
	AppendEntry(ctx context.Context, entry domain.JournalEntry) error
}

// EntryReader defines read operations over the entry stream.
type EntryReader interface {
	// FindEntryByID retrieves a single entry.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindEntriesByTicket retrieves every entry sharing a ticket, oldest first.
	FindEntriesByTicket(ctx context.Context, ticketID string) ([]domain.JournalEntry, error)

	// ListEntries retrieves a filtered, token-paginated page of entries, newest first.
	ListEntries(ctx context.Context, filter domain.EntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// ListAllEntries retrieves every entry matching the filter in creation order.
	// Used by the balance and audit projections, which fold the full stream.
	ListAllEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error)
}

// JournalRepositoryFacade combines the journal store interfaces for clients that
// need both sides.
type JournalRepositoryFacade interface {
	EntryWriter
	EntryReader
}
