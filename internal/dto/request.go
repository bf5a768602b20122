package dto

import "github.com/shopspring/decimal"

// CreateSupplementalRequest is the payload to submit a supplemental budget request.
type CreateSupplementalRequest struct {
	DepartmentID string          `json:"departmentID" binding:"required"`
	Category     string          `json:"category" binding:"required,budgetcategory"`
	ProjectID    string          `json:"projectID" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Reason       string          `json:"reason" binding:"required"`
}

// RejectRequest carries the mandatory remarks for a rejection.
type RejectRequest struct {
	Remarks string `json:"remarks"`
}

// SupplementalRequestResponse is the wire form of a supplemental request.
type SupplementalRequestResponse struct {
	RequestID         string  `json:"requestID"`
	DisplayID         string  `json:"displayID"`
	DepartmentID      string  `json:"departmentID"`
	Category          string  `json:"category"`
	ProjectID         string  `json:"projectID"`
	Amount            string  `json:"amount"`
	Reason            string  `json:"reason"`
	RequesterID       string  `json:"requesterID"`
	Status            string  `json:"status"`
	SubmittedAt       string  `json:"submittedAt"`
	ResolvedAt        *string `json:"resolvedAt,omitempty"`
	ResolvedBy        *string `json:"resolvedBy,omitempty"`
	ResolutionRemarks string  `json:"resolutionRemarks,omitempty"`
	TicketID          *string `json:"ticketID,omitempty"`
}

// ListRequestsParams filter request listings.
type ListRequestsParams struct {
	DepartmentID string `form:"departmentID"`
	Status       string `form:"status"`
	RequesterID  string `form:"requesterID"`
}

// ListRequestsResponse is the listing envelope for supplemental requests.
type ListRequestsResponse struct {
	Requests []SupplementalRequestResponse `json:"requests"`
}
