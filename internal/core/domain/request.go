package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus is the approval state of a supplemental request or proposal.
// PENDING is the only non-terminal state; resolved requests are never re-opened
// and never deleted.
type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusApproved RequestStatus = "APPROVED"
	StatusRejected RequestStatus = "REJECTED"
)

// SupplementalRequest is a proposed budget increase that must be reviewed before
// it affects the ledger. Only the resolution fields ever change, and exactly once.
type SupplementalRequest struct {
	RequestID    string          `json:"requestID"` // Primary key (UUID)
	DisplayID    string          `json:"displayID"` // Short human-facing identifier, e.g. SR-1A2B3C4D
	DepartmentID string          `json:"departmentID"`
	Category     Category        `json:"category"`
	ProjectID    string          `json:"projectID"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason"`
	RequesterID  string          `json:"requesterID"`
	Status       RequestStatus   `json:"status"`
	SubmittedAt  time.Time       `json:"submittedAt"`

	// Resolution metadata, set exactly once when status leaves PENDING.
	ResolvedAt        *time.Time `json:"resolvedAt,omitempty"`
	ResolvedBy        *string    `json:"resolvedBy,omitempty"`
	ResolutionRemarks string     `json:"resolutionRemarks,omitempty"`
	TicketID          *string    `json:"ticketID,omitempty"` // Ledger ticket created on approval
}

// Resolution carries the metadata stamped onto a request when it is resolved.
type Resolution struct {
	Status     RequestStatus
	ResolvedAt time.Time
	ResolvedBy string
	Remarks    string
	TicketID   *string // Set for approvals that materialized a ledger entry
}

// RequestFilter narrows request listings.
type RequestFilter struct {
	DepartmentID string
	Status       RequestStatus
	RequesterID  string
}
