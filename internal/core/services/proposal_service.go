package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackr/budget-ledger/internal/apperrors"
	"github.com/fintrackr/budget-ledger/internal/core/domain"
	portsrepo "github.com/fintrackr/budget-ledger/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/budget-ledger/internal/core/ports/services"
	"github.com/fintrackr/budget-ledger/internal/dto"
)

// proposalService runs budget proposals through the same PENDING -> APPROVED |
// REJECTED machine as supplemental requests, with two extras: the cost-element
// breakdown must sum to the declared amount, and the approver's signature is
// recorded at resolution time.
type proposalService struct {
	BaseService
	proposalRepo  portsrepo.ProposalRepositoryFacade
	directorySvc  portssvc.DirectorySvcFacade
	approverRoles domain.ApproverRoles
}

// NewProposalService creates the budget proposal workflow service.
func NewProposalService(proposalRepo portsrepo.ProposalRepositoryFacade, directorySvc portssvc.DirectorySvcFacade, approverRoles domain.ApproverRoles) portssvc.ProposalSvcFacade {
	return &proposalService{
		proposalRepo:  proposalRepo,
		directorySvc:  directorySvc,
		approverRoles: approverRoles,
	}
}

var _ portssvc.ProposalSvcFacade = (*proposalService)(nil)

// SubmitProposal creates a PENDING proposal after checking the breakdown.
func (s *proposalService) SubmitProposal(ctx context.Context, identity domain.Identity, req dto.CreateProposalRequest) (*domain.BudgetProposal, error) {
	if err := validateSubmission(ctx, s.directorySvc, s.approverRoles, identity, req.DepartmentID, req.Category, req.ProjectID, req.Amount); err != nil {
		return nil, err
	}
	if req.Reason == "" {
		return nil, apperrors.NewFieldError("reason", "reason is required")
	}
	if len(req.CostElements) == 0 {
		return nil, apperrors.NewFieldError("costElements", "at least one cost element is required")
	}

	elements := make([]domain.CostElement, len(req.CostElements))
	for i, ce := range req.CostElements {
		elements[i] = domain.CostElement{
			CostElement:   ce.CostElement,
			Description:   ce.Description,
			EstimatedCost: ce.EstimatedCost,
		}
	}

	proposal := domain.BudgetProposal{
		ProposalID:   uuid.NewString(),
		DisplayID:    newDisplayID("BP"),
		Title:        req.Title,
		DepartmentID: req.DepartmentID,
		Category:     domain.Category(req.Category),
		ProjectID:    req.ProjectID,
		Amount:       req.Amount,
		Reason:       req.Reason,
		RequesterID:  identity.UserID,
		CostElements: elements,
		Status:       domain.StatusPending,
		SubmittedAt:  time.Now().UTC(),
	}

	if !proposal.CostElementTotal().Equal(proposal.Amount) {
		return nil, apperrors.NewFieldError("costElements",
			fmt.Sprintf("cost elements sum to %s, expected %s", proposal.CostElementTotal().StringFixed(2), proposal.Amount.StringFixed(2)))
	}

	if err := s.proposalRepo.SaveProposal(ctx, proposal); err != nil {
		s.LogError(ctx, err, "Failed to save proposal")
		return nil, fmt.Errorf("failed to save proposal: %w", err)
	}

	s.LogInfo(ctx, "Budget proposal submitted",
		slog.String("proposal_id", proposal.ProposalID),
		slog.String("display_id", proposal.DisplayID),
		slog.String("amount", proposal.Amount.StringFixed(2)))
	return &proposal, nil
}

func (s *proposalService) requireApprover(identity domain.Identity) error {
	if !s.approverRoles.CanApprove(identity.Role) {
		return fmt.Errorf("%w: role %s may not resolve proposals", apperrors.ErrForbidden, identity.Role)
	}
	return nil
}

// ApproveProposal transitions PENDING -> APPROVED, records the signature and
// materializes the ledger entry in one database transaction.
func (s *proposalService) ApproveProposal(ctx context.Context, identity domain.Identity, proposalID string, signature string) (*domain.BudgetProposal, error) {
	if err := s.requireApprover(identity); err != nil {
		s.LogWarn(ctx, "Proposal approval denied for role", slog.String("role", string(identity.Role)))
		return nil, err
	}

	proposal, err := s.proposalRepo.FindProposalByID(ctx, proposalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load proposal for approval", slog.String("proposal_id", proposalID))
		}
		return nil, err
	}
	if proposal.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: proposal %s is already %s", apperrors.ErrInvalidState, proposal.DisplayID, proposal.Status)
	}

	now := time.Now().UTC()
	description := fmt.Sprintf("Budget proposal %s approved: %s", proposal.DisplayID, proposal.Title)
	entry, err := materializingEntry(ctx, s.directorySvc, identity, proposal.DepartmentID, proposal.Category, proposal.Amount, description, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to build materializing entry", slog.String("proposal_id", proposalID))
		return nil, err
	}

	resolution := domain.Resolution{
		Status:     domain.StatusApproved,
		ResolvedAt: now,
		ResolvedBy: identity.UserID,
		TicketID:   &entry.TicketID,
	}

	if err := s.proposalRepo.ResolveProposal(ctx, proposalID, resolution, signature, entry); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			s.LogWarn(ctx, "Proposal approval lost resolution race", slog.String("proposal_id", proposalID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to resolve proposal", slog.String("proposal_id", proposalID))
		return nil, fmt.Errorf("failed to approve proposal: %w", err)
	}

	proposal.Status = domain.StatusApproved
	proposal.ResolvedAt = &resolution.ResolvedAt
	proposal.ResolvedBy = &resolution.ResolvedBy
	proposal.ApproverSignature = signature
	proposal.TicketID = resolution.TicketID

	s.LogInfo(ctx, "Budget proposal approved",
		slog.String("proposal_id", proposalID),
		slog.String("ticket_id", entry.TicketID))
	return proposal, nil
}

// RejectProposal transitions PENDING -> REJECTED. Remarks are mandatory.
func (s *proposalService) RejectProposal(ctx context.Context, identity domain.Identity, proposalID string, remarks string) (*domain.BudgetProposal, error) {
	if err := s.requireApprover(identity); err != nil {
		s.LogWarn(ctx, "Proposal rejection denied for role", slog.String("role", string(identity.Role)))
		return nil, err
	}
	if strings.TrimSpace(remarks) == "" {
		return nil, apperrors.NewFieldError("remarks", "remarks are required to reject")
	}

	proposal, err := s.proposalRepo.FindProposalByID(ctx, proposalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load proposal for rejection", slog.String("proposal_id", proposalID))
		}
		return nil, err
	}
	if proposal.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: proposal %s is already %s", apperrors.ErrInvalidState, proposal.DisplayID, proposal.Status)
	}

	resolution := domain.Resolution{
		Status:     domain.StatusRejected,
		ResolvedAt: time.Now().UTC(),
		ResolvedBy: identity.UserID,
		Remarks:    remarks,
	}

	if err := s.proposalRepo.ResolveProposal(ctx, proposalID, resolution, "", nil); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to reject proposal", slog.String("proposal_id", proposalID))
		return nil, fmt.Errorf("failed to reject proposal: %w", err)
	}

	proposal.Status = domain.StatusRejected
	proposal.ResolvedAt = &resolution.ResolvedAt
	proposal.ResolvedBy = &resolution.ResolvedBy
	proposal.ResolutionRemarks = remarks

	s.LogInfo(ctx, "Budget proposal rejected", slog.String("proposal_id", proposalID))
	return proposal, nil
}

// GetProposalByID retrieves a proposal with its cost elements.
func (s *proposalService) GetProposalByID(ctx context.Context, proposalID string) (*domain.BudgetProposal, error) {
	proposal, err := s.proposalRepo.FindProposalByID(ctx, proposalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find proposal", slog.String("proposal_id", proposalID))
		}
		return nil, err
	}
	return proposal, nil
}

// ListProposals retrieves proposals visible to the caller.
func (s *proposalService) ListProposals(ctx context.Context, identity domain.Identity, params dto.ListRequestsParams) ([]domain.BudgetProposal, error) {
	filter := domain.RequestFilter{
		DepartmentID: params.DepartmentID,
		Status:       domain.RequestStatus(params.Status),
		RequesterID:  params.RequesterID,
	}
	if !s.approverRoles.CanApprove(identity.Role) {
		filter.DepartmentID = identity.DepartmentID
	}

	proposals, err := s.proposalRepo.ListProposals(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list proposals")
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return proposals, nil
}
