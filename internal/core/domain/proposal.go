package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostElement is one line of a proposal's cost breakdown.
type CostElement struct {
	CostElement   string          `json:"costElement"`
	Description   string          `json:"description"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
}

// BudgetProposal follows the same PENDING -> APPROVED | REJECTED lifecycle as a
// supplemental request, but carries a cost-element breakdown whose sum must equal
// the declared amount, and records the approver's signature at resolution time.
type BudgetProposal struct {
	ProposalID   string          `json:"proposalID"` // Primary key (UUID)
	DisplayID    string          `json:"displayID"`  // e.g. BP-1A2B3C4D
	Title        string          `json:"title"`
	DepartmentID string          `json:"departmentID"`
	Category     Category        `json:"category"`
	ProjectID    string          `json:"projectID"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason"`
	RequesterID  string          `json:"requesterID"`
	CostElements []CostElement   `json:"costElements"`
	Status       RequestStatus   `json:"status"`
	SubmittedAt  time.Time       `json:"submittedAt"`

	ResolvedAt        *time.Time `json:"resolvedAt,omitempty"`
	ResolvedBy        *string    `json:"resolvedBy,omitempty"`
	ResolutionRemarks string     `json:"resolutionRemarks,omitempty"`
	ApproverSignature string     `json:"approverSignature,omitempty"` // Recorded only at resolution
	TicketID          *string    `json:"ticketID,omitempty"`
}

// CostElementTotal sums the estimated cost of every breakdown line.
func (p BudgetProposal) CostElementTotal() decimal.Decimal {
	total := decimal.Zero
	for _, ce := range p.CostElements {
		total = total.Add(ce.EstimatedCost)
	}
	return total
}
