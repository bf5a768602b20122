package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a budget movement as capital or operating expenditure.
type Category string

const (
	CategoryCapex Category = "CAPEX"
	CategoryOpex  Category = "OPEX"
)

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	return c == CategoryCapex || c == CategoryOpex
}

// JournalEntry is a single immutable debit/credit transfer between two accounts.
// Entries are append-only: once written, no field is ever mutated or removed.
// A budget "modification" is realized as a new entry, never as an edit.
type JournalEntry struct {
	EntryID              string          `json:"entryID"`              // Primary key (UUID), doubles as idempotency key
	TicketID             string          `json:"ticketID"`             // Correlates the adjustment history of one budget line
	DepartmentID         string          `json:"departmentID"`         // FK -> departments.department_id
	Category             Category        `json:"category"`             // CAPEX or OPEX
	SourceAccountID      string          `json:"sourceAccountID"`      // Debited account
	DestinationAccountID string          `json:"destinationAccountID"` // Credited account
	Amount               decimal.Decimal `json:"amount"`               // Strictly positive
	Description          string          `json:"description"`
	CreatedAt            time.Time       `json:"createdAt"` // Time of recording, stamped at write time
	CreatedBy            string          `json:"createdBy"` // UserID of the writer
}

// BudgetLine is the derived "current state" of a budget item: the projection of all
// entries sharing a ticket, ordered by creation time. Never stored.
type BudgetLine struct {
	TicketID      string          `json:"ticketID"`
	DepartmentID  string          `json:"departmentID"`
	Category      Category        `json:"category"`
	CurrentAmount decimal.Decimal `json:"currentAmount"` // Amount of the most recent entry
	UpdatedAt     time.Time       `json:"updatedAt"`     // CreatedAt of the most recent entry
	History       []JournalEntry  `json:"history"`       // All entries, oldest first
}

// EntryFilter narrows ledger reads. Zero values mean "no constraint".
type EntryFilter struct {
	DepartmentID string
	Category     Category
	AccountID    string // Matches either side of the transfer
	TicketID     string
	AsOf         *time.Time // Only entries recorded at or before this instant
}

// Matches reports whether the entry satisfies every set constraint of the filter.
func (f EntryFilter) Matches(e JournalEntry) bool {
	if f.DepartmentID != "" && e.DepartmentID != f.DepartmentID {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.AccountID != "" && e.SourceAccountID != f.AccountID && e.DestinationAccountID != f.AccountID {
		return false
	}
	if f.TicketID != "" && e.TicketID != f.TicketID {
		return false
	}
	if f.AsOf != nil && e.CreatedAt.After(*f.AsOf) {
		return false
	}
	return true
}
