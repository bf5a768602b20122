package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
	portsrepo "github.com/fintrackr/budget-ledger/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/budget-ledger/internal/core/ports/services"
)

// auditService derives the audit trail by merging two authoritative sources:
// journal entry creations and request/proposal resolutions. Nothing is cached
// or stored, so the log can never drift from the ledger. The merge is
// order-independent over its inputs; the result is sorted once at the end.
type auditService struct {
	BaseService
	journalRepo  portsrepo.EntryReader
	requestRepo  portsrepo.RequestReader
	proposalRepo portsrepo.ProposalReader
}

// NewAuditService creates the audit trail projector.
func NewAuditService(journalRepo portsrepo.EntryReader, requestRepo portsrepo.RequestReader, proposalRepo portsrepo.ProposalReader) portssvc.AuditSvcFacade {
	return &auditService{
		journalRepo:  journalRepo,
		requestRepo:  requestRepo,
		proposalRepo: proposalRepo,
	}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// AuditTrail recomputes the merged trail, newest first.
func (s *auditService) AuditTrail(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditLogEntry, error) {
	rows := make([]domain.AuditLogEntry, 0, 64)

	entries, err := s.journalRepo.ListAllEntries(ctx, domain.EntryFilter{DepartmentID: filter.DepartmentID})
	if err != nil {
		s.LogError(ctx, err, "Failed to load journal entries for audit trail")
		return nil, fmt.Errorf("failed to derive audit trail: %w", err)
	}
	for _, e := range entries {
		rows = append(rows, domain.AuditLogEntry{
			Timestamp:    e.CreatedAt,
			SubjectID:    e.EntryID,
			Action:       domain.AuditSubmitted,
			Actor:        e.CreatedBy,
			Amount:       e.Amount,
			DepartmentID: e.DepartmentID,
			Detail:       e.Description,
		})
	}

	requests, err := s.requestRepo.ListResolvedRequests(ctx, filter.DepartmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load resolved requests for audit trail")
		return nil, fmt.Errorf("failed to derive audit trail: %w", err)
	}
	for _, r := range requests {
		rows = append(rows, resolutionRow(r.RequestID, r.Status, r.ResolvedAt, r.ResolvedBy, r.Amount, r.DepartmentID, r.ResolutionRemarks))
	}

	proposals, err := s.proposalRepo.ListResolvedProposals(ctx, filter.DepartmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load resolved proposals for audit trail")
		return nil, fmt.Errorf("failed to derive audit trail: %w", err)
	}
	for _, p := range proposals {
		rows = append(rows, resolutionRow(p.ProposalID, p.Status, p.ResolvedAt, p.ResolvedBy, p.Amount, p.DepartmentID, p.ResolutionRemarks))
	}

	if filter.Action != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if row.Action == filter.Action {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	// Single sort at the end; display order is newest first.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Timestamp.After(rows[j].Timestamp)
	})

	if filter.Limit > 0 && len(rows) > filter.Limit {
		rows = rows[:filter.Limit]
	}
	return rows, nil
}

// resolutionRow maps a resolved request or proposal to its audit row. The
// amount and department are snapshots taken at resolution time.
func resolutionRow(subjectID string, status domain.RequestStatus, resolvedAt *time.Time, resolvedBy *string, amount decimal.Decimal, departmentID, remarks string) domain.AuditLogEntry {
	action := domain.AuditApproved
	if status == domain.StatusRejected {
		action = domain.AuditRejected
	}

	row := domain.AuditLogEntry{
		SubjectID:    subjectID,
		Action:       action,
		Amount:       amount,
		DepartmentID: departmentID,
		Detail:       remarks,
	}
	if resolvedAt != nil {
		row.Timestamp = *resolvedAt
	}
	if resolvedBy != nil {
		row.Actor = *resolvedBy
	}
	return row
}
