package dto

// CreateAdjustmentRequest is the payload for a direct budget adjustment.
// Amount arrives as a string so the service can report a field-level error when
// it does not parse to a positive decimal; gin binding would reject the whole
// payload without naming the field.
type CreateAdjustmentRequest struct {
	DepartmentID         string  `json:"departmentID"`
	Category             string  `json:"category"`
	SourceAccountID      string  `json:"sourceAccountID"`
	DestinationAccountID string  `json:"destinationAccountID"`
	Amount               string  `json:"amount"`
	Description          string  `json:"description"`
	TicketID             *string `json:"ticketID,omitempty"` // Reuse to amend an existing budget line
	EntryID              *string `json:"entryID,omitempty"`  // Optional idempotency key for safe retries
}

// JournalEntryResponse is the wire form of a ledger entry. Amounts are rendered
// with two fractional digits; currency formatting stays a presentation concern.
type JournalEntryResponse struct {
	EntryID              string `json:"entryID"`
	TicketID             string `json:"ticketID"`
	DepartmentID         string `json:"departmentID"`
	Category             string `json:"category"`
	SourceAccountID      string `json:"sourceAccountID"`
	DestinationAccountID string `json:"destinationAccountID"`
	Amount               string `json:"amount"`
	Description          string `json:"description"`
	CreatedAt            string `json:"createdAt"`
	CreatedBy            string `json:"createdBy"`
}
