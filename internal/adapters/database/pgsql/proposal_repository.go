package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrackr/budget-ledger/internal/apperrors"
	"github.com/fintrackr/budget-ledger/internal/core/domain"
	portsrepo "github.com/fintrackr/budget-ledger/internal/core/ports/repositories"
)

// PgxProposalRepository persists budget proposals and their cost-element
// breakdowns. Resolution follows the same CAS-in-transaction scheme as
// supplemental requests.
type PgxProposalRepository struct {
	pool *pgxpool.Pool
}

// NewPgxProposalRepository creates a new repository for budget proposals.
func NewPgxProposalRepository(pool *pgxpool.Pool) portsrepo.ProposalRepositoryFacade {
	return &PgxProposalRepository{pool: pool}
}

var _ portsrepo.ProposalRepositoryFacade = (*PgxProposalRepository)(nil)

const proposalColumns = `proposal_id, display_id, title, department_id, category, project_id, amount, reason, requester_id, status, submitted_at, resolved_at, resolved_by, resolution_remarks, approver_signature, ticket_id`

// SaveProposal persists a PENDING proposal and its cost elements atomically.
func (r *PgxProposalRepository) SaveProposal(ctx context.Context, proposal domain.BudgetProposal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", apperrors.ErrPersistence, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query := `
		INSERT INTO budget_proposals (proposal_id, display_id, title, department_id, category, project_id, amount, reason, requester_id, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, query,
		proposal.ProposalID,
		proposal.DisplayID,
		proposal.Title,
		proposal.DepartmentID,
		proposal.Category,
		proposal.ProjectID,
		proposal.Amount,
		proposal.Reason,
		proposal.RequesterID,
		proposal.Status,
		proposal.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to save proposal %s: %v", apperrors.ErrPersistence, proposal.ProposalID, err)
	}

	batch := &pgx.Batch{}
	elementQuery := `
		INSERT INTO proposal_cost_elements (proposal_id, position, cost_element, description, estimated_cost)
		VALUES ($1, $2, $3, $4, $5);
	`
	for i, ce := range proposal.CostElements {
		batch.Queue(elementQuery, proposal.ProposalID, i, ce.CostElement, ce.Description, ce.EstimatedCost)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%w: failed to save cost elements for proposal %s: %v", apperrors.ErrPersistence, proposal.ProposalID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit proposal %s: %v", apperrors.ErrPersistence, proposal.ProposalID, err)
	}
	return nil
}

func scanProposal(row pgx.Row) (*domain.BudgetProposal, error) {
	var p domain.BudgetProposal
	var remarks, signature *string
	err := row.Scan(
		&p.ProposalID,
		&p.DisplayID,
		&p.Title,
		&p.DepartmentID,
		&p.Category,
		&p.ProjectID,
		&p.Amount,
		&p.Reason,
		&p.RequesterID,
		&p.Status,
		&p.SubmittedAt,
		&p.ResolvedAt,
		&p.ResolvedBy,
		&remarks,
		&signature,
		&p.TicketID,
	)
	if err != nil {
		return nil, err
	}
	if remarks != nil {
		p.ResolutionRemarks = *remarks
	}
	if signature != nil {
		p.ApproverSignature = *signature
	}
	return &p, nil
}

func (r *PgxProposalRepository) loadCostElements(ctx context.Context, proposalID string) ([]domain.CostElement, error) {
	query := `
		SELECT cost_element, description, estimated_cost
		FROM proposal_cost_elements
		WHERE proposal_id = $1
		ORDER BY position ASC;
	`
	rows, err := r.pool.Query(ctx, query, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost elements for proposal %s: %w", proposalID, err)
	}
	defer rows.Close()

	elements := []domain.CostElement{}
	for rows.Next() {
		var ce domain.CostElement
		if err := rows.Scan(&ce.CostElement, &ce.Description, &ce.EstimatedCost); err != nil {
			return nil, fmt.Errorf("failed to scan cost element row: %w", err)
		}
		elements = append(elements, ce)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cost element rows: %w", err)
	}
	return elements, nil
}

// FindProposalByID retrieves a proposal with its cost elements.
func (r *PgxProposalRepository) FindProposalByID(ctx context.Context, proposalID string) (*domain.BudgetProposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM budget_proposals WHERE proposal_id = $1;`
	proposal, err := scanProposal(r.pool.QueryRow(ctx, query, proposalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find proposal %s: %w", proposalID, err)
	}

	elements, err := r.loadCostElements(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	proposal.CostElements = elements
	return proposal, nil
}

// ListProposals retrieves proposals matching the filter, newest first, without
// their cost-element breakdowns.
func (r *PgxProposalRepository) ListProposals(ctx context.Context, filter domain.RequestFilter) ([]domain.BudgetProposal, error) {
	clauses := []string{}
	args := []interface{}{}
	arg := 1

	add := func(clause string, value interface{}) {
		clauses = append(clauses, clause+"$"+strconv.Itoa(arg))
		args = append(args, value)
		arg++
	}

	if filter.DepartmentID != "" {
		add("department_id = ", filter.DepartmentID)
	}
	if filter.Status != "" {
		add("status = ", string(filter.Status))
	}
	if filter.RequesterID != "" {
		add("requester_id = ", filter.RequesterID)
	}

	query := `SELECT ` + proposalColumns + ` FROM budget_proposals`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY submitted_at DESC;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query proposals: %w", err)
	}
	defer rows.Close()

	return collectProposals(rows)
}

// ListResolvedProposals retrieves every resolved proposal for the audit trail.
func (r *PgxProposalRepository) ListResolvedProposals(ctx context.Context, departmentID string) ([]domain.BudgetProposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM budget_proposals WHERE status <> $1`
	args := []interface{}{domain.StatusPending}
	if departmentID != "" {
		query += " AND department_id = $2"
		args = append(args, departmentID)
	}
	query += " ORDER BY resolved_at DESC;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query resolved proposals: %w", err)
	}
	defer rows.Close()

	return collectProposals(rows)
}

func collectProposals(rows pgx.Rows) ([]domain.BudgetProposal, error) {
	proposals := []domain.BudgetProposal{}
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan proposal row: %w", err)
		}
		proposals = append(proposals, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating proposal rows: %w", err)
	}
	return proposals, nil
}

// ResolveProposal performs the CAS transition out of PENDING, records the
// approver signature and appends the materializing entry (when non-nil) in one
// transaction. Same exactly-once contract as ResolveRequest.
func (r *PgxProposalRepository) ResolveProposal(ctx context.Context, proposalID string, resolution domain.Resolution, signature string, entry *domain.JournalEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", apperrors.ErrPersistence, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	updateQuery := `
		UPDATE budget_proposals
		SET status = $2, resolved_at = $3, resolved_by = $4, resolution_remarks = $5, approver_signature = $6, ticket_id = $7
		WHERE proposal_id = $1 AND status = $8;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		proposalID,
		resolution.Status,
		resolution.ResolvedAt,
		resolution.ResolvedBy,
		resolution.Remarks,
		signature,
		resolution.TicketID,
		domain.StatusPending,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve proposal %s: %v", apperrors.ErrPersistence, proposalID, err)
	}

	if tag.RowsAffected() == 0 {
		var status domain.RequestStatus
		err := tx.QueryRow(ctx, `SELECT status FROM budget_proposals WHERE proposal_id = $1;`, proposalID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: failed to inspect proposal %s: %v", apperrors.ErrPersistence, proposalID, err)
		}
		return fmt.Errorf("%w: proposal already %s", apperrors.ErrInvalidState, status)
	}

	if entry != nil {
		entryQuery := `
			INSERT INTO journal_entries (` + entryColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`
		_, err = tx.Exec(ctx, entryQuery,
			entry.EntryID,
			entry.TicketID,
			entry.DepartmentID,
			entry.Category,
			entry.SourceAccountID,
			entry.DestinationAccountID,
			entry.Amount,
			entry.Description,
			entry.CreatedAt,
			entry.CreatedBy,
		)
		if err != nil {
			return fmt.Errorf("%w: failed to append materializing entry for proposal %s: %v", apperrors.ErrPersistence, proposalID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit resolution of proposal %s: %v", apperrors.ErrPersistence, proposalID, err)
	}
	return nil
}
