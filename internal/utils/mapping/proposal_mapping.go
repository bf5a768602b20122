package mapping

import (
	"time"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
	"github.com/fintrackr/budget-ledger/internal/dto"
)

// ToProposalResponse maps a domain proposal to its wire form.
func ToProposalResponse(p *domain.BudgetProposal) dto.ProposalResponse {
	elements := make([]dto.CostElementResponse, len(p.CostElements))
	for i, ce := range p.CostElements {
		elements[i] = dto.CostElementResponse{
			CostElement:   ce.CostElement,
			Description:   ce.Description,
			EstimatedCost: ce.EstimatedCost.StringFixed(2),
		}
	}

	return dto.ProposalResponse{
		ProposalID:        p.ProposalID,
		DisplayID:         p.DisplayID,
		Title:             p.Title,
		DepartmentID:      p.DepartmentID,
		Category:          string(p.Category),
		ProjectID:         p.ProjectID,
		Amount:            p.Amount.StringFixed(2),
		Reason:            p.Reason,
		RequesterID:       p.RequesterID,
		CostElements:      elements,
		Status:            string(p.Status),
		SubmittedAt:       p.SubmittedAt.Format(time.RFC3339),
		ResolvedAt:        formatTimePtr(p.ResolvedAt),
		ResolvedBy:        p.ResolvedBy,
		ResolutionRemarks: p.ResolutionRemarks,
		ApproverSignature: p.ApproverSignature,
		TicketID:          p.TicketID,
	}
}

// ToProposalResponses maps a slice of proposals.
func ToProposalResponses(proposals []domain.BudgetProposal) []dto.ProposalResponse {
	out := make([]dto.ProposalResponse, len(proposals))
	for i := range proposals {
		out[i] = ToProposalResponse(&proposals[i])
	}
	return out
}
