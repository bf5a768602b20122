package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackr/budget-ledger/internal/apperrors"
	"github.com/fintrackr/budget-ledger/internal/core/domain"
	portsrepo "github.com/fintrackr/budget-ledger/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/budget-ledger/internal/core/ports/services"
	"github.com/fintrackr/budget-ledger/internal/dto"
)

// newDisplayID builds a short human-facing identifier like SR-1A2B3C4D.
func newDisplayID(prefix string) string {
	return prefix + "-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// requestService is the approval state machine for supplemental budget requests.
// Requests never touch the ledger until an approver resolves them; the CAS in
// the repository guarantees exactly one resolution wins.
type requestService struct {
	BaseService
	requestRepo   portsrepo.RequestRepositoryFacade
	directorySvc  portssvc.DirectorySvcFacade
	approverRoles domain.ApproverRoles
}

// NewRequestService creates the supplemental request workflow service.
func NewRequestService(requestRepo portsrepo.RequestRepositoryFacade, directorySvc portssvc.DirectorySvcFacade, approverRoles domain.ApproverRoles) portssvc.SupplementalRequestSvcFacade {
	return &requestService{
		requestRepo:   requestRepo,
		directorySvc:  directorySvc,
		approverRoles: approverRoles,
	}
}

var _ portssvc.SupplementalRequestSvcFacade = (*requestService)(nil)

// validateSubmission runs the shared submit-time checks for requests and
// proposals: department gate, positive amount, resolvable reference fields.
func validateSubmission(ctx context.Context, directorySvc portssvc.DirectorySvcFacade, approvers domain.ApproverRoles, identity domain.Identity, departmentID, category, projectID string, amount decimal.Decimal) error {
	// A requester may only submit for their own department. Approvers may act
	// across departments.
	if !approvers.CanApprove(identity.Role) && identity.DepartmentID != departmentID {
		return fmt.Errorf("%w: cannot submit for department %s", apperrors.ErrForbidden, departmentID)
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return apperrors.NewFieldError("amount", "amount must be positive")
	}
	if !domain.ValidCategory(domain.Category(category)) {
		return apperrors.NewFieldError("category", "category must be CAPEX or OPEX")
	}
	if _, err := directorySvc.ResolveDepartment(ctx, departmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewFieldError("departmentID", "unknown department")
		}
		return err
	}
	if _, err := directorySvc.ResolveProject(ctx, projectID, departmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewFieldError("projectID", "unknown project for department")
		}
		return err
	}
	return nil
}

// materializingEntry builds the journal entry an approval writes: the request
// amount transferred from the central budget pool to the department allocation
// account.
func materializingEntry(ctx context.Context, directorySvc portssvc.DirectorySvcFacade, identity domain.Identity, departmentID string, category domain.Category, amount decimal.Decimal, description string, now time.Time) (*domain.JournalEntry, error) {
	pool, allocation, err := directorySvc.ResolveTransferAccounts(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve transfer accounts: %w", err)
	}

	entry := &domain.JournalEntry{
		EntryID:              uuid.NewString(),
		TicketID:             uuid.NewString(),
		DepartmentID:         departmentID,
		Category:             category,
		SourceAccountID:      pool.AccountID,
		DestinationAccountID: allocation.AccountID,
		Amount:               amount,
		Description:          description,
		CreatedAt:            now,
		CreatedBy:            identity.UserID,
	}
	return entry, nil
}

// SubmitRequest creates a PENDING supplemental request.
func (s *requestService) SubmitRequest(ctx context.Context, identity domain.Identity, req dto.CreateSupplementalRequest) (*domain.SupplementalRequest, error) {
	if err := validateSubmission(ctx, s.directorySvc, s.approverRoles, identity, req.DepartmentID, req.Category, req.ProjectID, req.Amount); err != nil {
		return nil, err
	}
	if req.Reason == "" {
		return nil, apperrors.NewFieldError("reason", "reason is required")
	}

	now := time.Now().UTC()
	request := domain.SupplementalRequest{
		RequestID:    uuid.NewString(),
		DisplayID:    newDisplayID("SR"),
		DepartmentID: req.DepartmentID,
		Category:     domain.Category(req.Category),
		ProjectID:    req.ProjectID,
		Amount:       req.Amount,
		Reason:       req.Reason,
		RequesterID:  identity.UserID,
		Status:       domain.StatusPending,
		SubmittedAt:  now,
	}

	if err := s.requestRepo.SaveRequest(ctx, request); err != nil {
		s.LogError(ctx, err, "Failed to save supplemental request")
		return nil, fmt.Errorf("failed to save supplemental request: %w", err)
	}

	s.LogInfo(ctx, "Supplemental request submitted",
		slog.String("request_id", request.RequestID),
		slog.String("display_id", request.DisplayID),
		slog.String("amount", request.Amount.StringFixed(2)))
	return &request, nil
}

// requireApprover is the single role gate for resolutions.
func (s *requestService) requireApprover(identity domain.Identity) error {
	if !s.approverRoles.CanApprove(identity.Role) {
		return fmt.Errorf("%w: role %s may not resolve requests", apperrors.ErrForbidden, identity.Role)
	}
	return nil
}

// ApproveRequest transitions PENDING -> APPROVED and writes the materializing
// journal entry. The repository performs both inside one database transaction:
// if the ledger write fails the request stays PENDING, and a concurrent
// approval loses with ErrInvalidState.
func (s *requestService) ApproveRequest(ctx context.Context, identity domain.Identity, requestID string) (*domain.SupplementalRequest, error) {
	if err := s.requireApprover(identity); err != nil {
		s.LogWarn(ctx, "Approval denied for role", slog.String("role", string(identity.Role)))
		return nil, err
	}

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load request for approval", slog.String("request_id", requestID))
		}
		return nil, err
	}
	if request.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: request %s is already %s", apperrors.ErrInvalidState, request.DisplayID, request.Status)
	}

	now := time.Now().UTC()
	description := fmt.Sprintf("Supplemental budget %s approved", request.DisplayID)
	entry, err := materializingEntry(ctx, s.directorySvc, identity, request.DepartmentID, request.Category, request.Amount, description, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to build materializing entry", slog.String("request_id", requestID))
		return nil, err
	}

	resolution := domain.Resolution{
		Status:     domain.StatusApproved,
		ResolvedAt: now,
		ResolvedBy: identity.UserID,
		TicketID:   &entry.TicketID,
	}

	if err := s.requestRepo.ResolveRequest(ctx, requestID, resolution, entry); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			// Lost the CAS race or a stale client retried; the ledger was not touched.
			s.LogWarn(ctx, "Approval lost resolution race", slog.String("request_id", requestID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to resolve request", slog.String("request_id", requestID))
		return nil, fmt.Errorf("failed to approve request: %w", err)
	}

	request.Status = domain.StatusApproved
	request.ResolvedAt = &resolution.ResolvedAt
	request.ResolvedBy = &resolution.ResolvedBy
	request.TicketID = resolution.TicketID

	s.LogInfo(ctx, "Supplemental request approved",
		slog.String("request_id", requestID),
		slog.String("ticket_id", entry.TicketID),
		slog.String("amount", request.Amount.StringFixed(2)))
	return request, nil
}

// RejectRequest transitions PENDING -> REJECTED without touching the ledger.
// Rejected requests remain as historical records; they are never deleted.
func (s *requestService) RejectRequest(ctx context.Context, identity domain.Identity, requestID string, remarks string) (*domain.SupplementalRequest, error) {
	if err := s.requireApprover(identity); err != nil {
		s.LogWarn(ctx, "Rejection denied for role", slog.String("role", string(identity.Role)))
		return nil, err
	}
	if strings.TrimSpace(remarks) == "" {
		return nil, apperrors.NewFieldError("remarks", "remarks are required to reject")
	}

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load request for rejection", slog.String("request_id", requestID))
		}
		return nil, err
	}
	if request.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: request %s is already %s", apperrors.ErrInvalidState, request.DisplayID, request.Status)
	}

	resolution := domain.Resolution{
		Status:     domain.StatusRejected,
		ResolvedAt: time.Now().UTC(),
		ResolvedBy: identity.UserID,
		Remarks:    remarks,
	}

	if err := s.requestRepo.ResolveRequest(ctx, requestID, resolution, nil); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to reject request", slog.String("request_id", requestID))
		return nil, fmt.Errorf("failed to reject request: %w", err)
	}

	request.Status = domain.StatusRejected
	request.ResolvedAt = &resolution.ResolvedAt
	request.ResolvedBy = &resolution.ResolvedBy
	request.ResolutionRemarks = remarks

	s.LogInfo(ctx, "Supplemental request rejected", slog.String("request_id", requestID))
	return request, nil
}

// GetRequestByID retrieves a single request.
func (s *requestService) GetRequestByID(ctx context.Context, requestID string) (*domain.SupplementalRequest, error) {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find request", slog.String("request_id", requestID))
		}
		return nil, err
	}
	return request, nil
}

// ListRequests retrieves requests visible to the caller. Non-approvers see only
// their own department.
func (s *requestService) ListRequests(ctx context.Context, identity domain.Identity, params dto.ListRequestsParams) ([]domain.SupplementalRequest, error) {
	filter := domain.RequestFilter{
		DepartmentID: params.DepartmentID,
		Status:       domain.RequestStatus(params.Status),
		RequesterID:  params.RequesterID,
	}
	if !s.approverRoles.CanApprove(identity.Role) {
		filter.DepartmentID = identity.DepartmentID
	}

	requests, err := s.requestRepo.ListRequests(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list requests")
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}
