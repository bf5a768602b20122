package mapping

import (
	"time"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
	"github.com/fintrackr/budget-ledger/internal/dto"
)

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// ToSupplementalRequestResponse maps a domain request to its wire form.
func ToSupplementalRequestResponse(r *domain.SupplementalRequest) dto.SupplementalRequestResponse {
	return dto.SupplementalRequestResponse{
		RequestID:         r.RequestID,
		DisplayID:         r.DisplayID,
		DepartmentID:      r.DepartmentID,
		Category:          string(r.Category),
		ProjectID:         r.ProjectID,
		Amount:            r.Amount.StringFixed(2),
		Reason:            r.Reason,
		RequesterID:       r.RequesterID,
		Status:            string(r.Status),
		SubmittedAt:       r.SubmittedAt.Format(time.RFC3339),
		ResolvedAt:        formatTimePtr(r.ResolvedAt),
		ResolvedBy:        r.ResolvedBy,
		ResolutionRemarks: r.ResolutionRemarks,
		TicketID:          r.TicketID,
	}
}

// ToSupplementalRequestResponses maps a slice of requests.
func ToSupplementalRequestResponses(requests []domain.SupplementalRequest) []dto.SupplementalRequestResponse {
	out := make([]dto.SupplementalRequestResponse, len(requests))
	for i := range requests {
		out[i] = ToSupplementalRequestResponse(&requests[i])
	}
	return out
}
