package services

import (
	"context"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
	"github.com/fintrackr/budget-ledger/internal/dto"
)

// SupplementalRequestSvcFacade is the approval state machine for supplemental
// budget requests: PENDING -> APPROVED | REJECTED, both terminal.
type SupplementalRequestSvcFacade interface {
	// SubmitRequest creates a PENDING request. Requesters may only submit for
	// their own department; approver roles are exempt from that gate.
	SubmitRequest(ctx context.Context, identity domain.Identity, req dto.CreateSupplementalRequest) (*domain.SupplementalRequest, error)

	// ApproveRequest transitions PENDING -> APPROVED and materializes the
	// corresponding journal entry as one logical unit. Resolving an already
	// resolved request returns apperrors.ErrInvalidState, never a silent success.
	ApproveRequest(ctx context.Context, identity domain.Identity, requestID string) (*domain.SupplementalRequest, error)

	// RejectRequest transitions PENDING -> REJECTED. Remarks are mandatory.
	// The ledger is not touched.
	RejectRequest(ctx context.Context, identity domain.Identity, requestID string, remarks string) (*domain.SupplementalRequest, error)

	// GetRequestByID retrieves a single request.
	GetRequestByID(ctx context.Context, requestID string) (*domain.SupplementalRequest, error)

	// ListRequests retrieves requests visible to the caller.
	ListRequests(ctx context.Context, identity domain.Identity, params dto.ListRequestsParams) ([]domain.SupplementalRequest, error)
}

// ProposalSvcFacade is the same state machine for budget proposals, which carry
// a cost-element breakdown and an approver signature artifact.
type ProposalSvcFacade interface {
	SubmitProposal(ctx context.Context, identity domain.Identity, req dto.CreateProposalRequest) (*domain.BudgetProposal, error)
	ApproveProposal(ctx context.Context, identity domain.Identity, proposalID string, signature string) (*domain.BudgetProposal, error)
	RejectProposal(ctx context.Context, identity domain.Identity, proposalID string, remarks string) (*domain.BudgetProposal, error)
	GetProposalByID(ctx context.Context, proposalID string) (*domain.BudgetProposal, error)
	ListProposals(ctx context.Context, identity domain.Identity, params dto.ListRequestsParams) ([]domain.BudgetProposal, error)
}
