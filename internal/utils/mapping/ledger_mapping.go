package mapping

import (
	"time"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
	"github.com/fintrackr/budget-ledger/internal/dto"
)

// Amounts cross the wire with two-digit fractional precision; currency
// formatting is a presentation concern and stays out of this core.

// ToJournalEntryResponse maps a domain entry to its wire form.
func ToJournalEntryResponse(e domain.JournalEntry) dto.JournalEntryResponse {
	return dto.JournalEntryResponse{
		EntryID:              e.EntryID,
		TicketID:             e.TicketID,
		DepartmentID:         e.DepartmentID,
		Category:             string(e.Category),
		SourceAccountID:      e.SourceAccountID,
		DestinationAccountID: e.DestinationAccountID,
		Amount:               e.Amount.StringFixed(2),
		Description:          e.Description,
		CreatedAt:            e.CreatedAt.Format(time.RFC3339),
		CreatedBy:            e.CreatedBy,
	}
}

// ToJournalEntryResponses maps a slice of entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []dto.JournalEntryResponse {
	out := make([]dto.JournalEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToJournalEntryResponse(e)
	}
	return out
}

// ToBudgetLineResponse maps the derived budget line view.
func ToBudgetLineResponse(line *domain.BudgetLine) dto.BudgetLineResponse {
	return dto.BudgetLineResponse{
		TicketID:      line.TicketID,
		DepartmentID:  line.DepartmentID,
		Category:      string(line.Category),
		CurrentAmount: line.CurrentAmount.StringFixed(2),
		UpdatedAt:     line.UpdatedAt.Format(time.RFC3339),
		History:       ToJournalEntryResponses(line.History),
	}
}
