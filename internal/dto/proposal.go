package dto

import "github.com/shopspring/decimal"

// CostElementInput is one line of a proposal's cost breakdown.
type CostElementInput struct {
	CostElement   string          `json:"costElement" binding:"required"`
	Description   string          `json:"description"`
	EstimatedCost decimal.Decimal `json:"estimatedCost" binding:"required"`
}

// CreateProposalRequest is the payload to submit a budget proposal.
type CreateProposalRequest struct {
	Title        string             `json:"title" binding:"required"`
	DepartmentID string             `json:"departmentID" binding:"required"`
	Category     string             `json:"category" binding:"required,budgetcategory"`
	ProjectID    string             `json:"projectID" binding:"required"`
	Amount       decimal.Decimal    `json:"amount" binding:"required"`
	Reason       string             `json:"reason" binding:"required"`
	CostElements []CostElementInput `json:"costElements" binding:"required,min=1,dive"`
}

// ApproveProposalRequest carries the approver's signature artifact.
type ApproveProposalRequest struct {
	Signature string `json:"signature"`
}

// CostElementResponse mirrors CostElementInput on the way out.
type CostElementResponse struct {
	CostElement   string `json:"costElement"`
	Description   string `json:"description"`
	EstimatedCost string `json:"estimatedCost"`
}

// ProposalResponse is the wire form of a budget proposal.
type ProposalResponse struct {
	ProposalID        string                `json:"proposalID"`
	DisplayID         string                `json:"displayID"`
	Title             string                `json:"title"`
	DepartmentID      string                `json:"departmentID"`
	Category          string                `json:"category"`
	ProjectID         string                `json:"projectID"`
	Amount            string                `json:"amount"`
	Reason            string                `json:"reason"`
	RequesterID       string                `json:"requesterID"`
	CostElements      []CostElementResponse `json:"costElements"`
	Status            string                `json:"status"`
	SubmittedAt       string                `json:"submittedAt"`
	ResolvedAt        *string               `json:"resolvedAt,omitempty"`
	ResolvedBy        *string               `json:"resolvedBy,omitempty"`
	ResolutionRemarks string                `json:"resolutionRemarks,omitempty"`
	ApproverSignature string                `json:"approverSignature,omitempty"`
	TicketID          *string               `json:"ticketID,omitempty"`
}

// ListProposalsResponse is the listing envelope for proposals.
type ListProposalsResponse struct {
	Proposals []ProposalResponse `json:"proposals"`
}
