package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackr/budget-ledger/internal/apperrors"
	"github.com/fintrackr/budget-ledger/internal/core/domain"
	portsrepo "github.com/fintrackr/budget-ledger/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/budget-ledger/internal/core/ports/services"
	"github.com/fintrackr/budget-ledger/internal/dto"
)

// adjustmentService validates and creates ordinary budget adjustments. Direct
// adjustments bypass the approval workflow, so only roles with direct-write
// authority (the configured approver set) may call it.
type adjustmentService struct {
	BaseService
	journalRepo   portsrepo.JournalRepositoryFacade
	directorySvc  portssvc.DirectorySvcFacade
	approverRoles domain.ApproverRoles
}

// NewAdjustmentService creates a new adjustment service.
func NewAdjustmentService(journalRepo portsrepo.JournalRepositoryFacade, directorySvc portssvc.DirectorySvcFacade, approverRoles domain.ApproverRoles) portssvc.AdjustmentSvcFacade {
	return &adjustmentService{
		journalRepo:   journalRepo,
		directorySvc:  directorySvc,
		approverRoles: approverRoles,
	}
}

var _ portssvc.AdjustmentSvcFacade = (*adjustmentService)(nil)

// CreateAdjustment validates the input field by field, in a fixed order so each
// failure is addressable to exactly one field, then appends the entry. The
// append is atomic: either the full entry is durably recorded or an error is
// returned, with no observable intermediate state.
func (s *adjustmentService) CreateAdjustment(ctx context.Context, identity domain.Identity, req dto.CreateAdjustmentRequest) (*domain.JournalEntry, error) {
	if !s.approverRoles.CanApprove(identity.Role) {
		s.LogWarn(ctx, "Direct adjustment denied for role", slog.String("role", string(identity.Role)))
		return nil, fmt.Errorf("%w: role %s lacks direct-write authority", apperrors.ErrForbidden, identity.Role)
	}

	// Field validation, in order; each failure names its field.
	if req.DepartmentID == "" {
		return nil, apperrors.NewFieldError("departmentID", "department is required")
	}
	if req.Category == "" {
		return nil, apperrors.NewFieldError("category", "category is required")
	}
	if req.SourceAccountID == "" {
		return nil, apperrors.NewFieldError("sourceAccountID", "source account is required")
	}
	if req.DestinationAccountID == "" {
		return nil, apperrors.NewFieldError("destinationAccountID", "destination account is required")
	}
	if req.SourceAccountID == req.DestinationAccountID {
		return nil, apperrors.NewFieldError("destinationAccountID", "source and destination accounts must differ")
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, apperrors.NewFieldError("amount", "amount must be a decimal number")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewFieldError("amount", "amount must be positive")
	}

	category := domain.Category(req.Category)
	if !domain.ValidCategory(category) {
		return nil, apperrors.NewFieldError("category", "category must be CAPEX or OPEX")
	}

	// Resolve reference data.
	if _, err := s.directorySvc.ResolveDepartment(ctx, req.DepartmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewFieldError("departmentID", "unknown department")
		}
		return nil, err
	}
	if _, err := s.directorySvc.ResolveAccount(ctx, req.SourceAccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewFieldError("sourceAccountID", "unknown account")
		}
		return nil, err
	}
	dstAccount, err := s.directorySvc.ResolveAccount(ctx, req.DestinationAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewFieldError("destinationAccountID", "unknown account")
		}
		return nil, err
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Adjustment: %s to %s", req.SourceAccountID, dstAccount.AccountID)
	}

	// New ticket starts a budget line; a supplied ticket amends an existing one.
	ticketID := uuid.NewString()
	if req.TicketID != nil && *req.TicketID != "" {
		ticketID = *req.TicketID
	}

	// A caller-supplied entry ID is the idempotency key for safe retries.
	entryID := uuid.NewString()
	if req.EntryID != nil && *req.EntryID != "" {
		entryID = *req.EntryID
	}

	entry := domain.JournalEntry{
		EntryID:              entryID,
		TicketID:             ticketID,
		DepartmentID:         req.DepartmentID,
		Category:             category,
		SourceAccountID:      req.SourceAccountID,
		DestinationAccountID: req.DestinationAccountID,
		Amount:               amount,
		Description:          description,
		CreatedAt:            time.Now().UTC(), // Recording time; callers may not backdate
		CreatedBy:            identity.UserID,
	}

	if err := s.journalRepo.AppendEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Duplicate entry append suppressed", slog.String("entry_id", entryID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to append journal entry", slog.String("ticket_id", ticketID))
		return nil, fmt.Errorf("failed to append journal entry: %w", err)
	}

	s.LogInfo(ctx, "Adjustment created",
		slog.String("entry_id", entry.EntryID),
		slog.String("ticket_id", entry.TicketID),
		slog.String("amount", amount.StringFixed(2)))
	return &entry, nil
}
