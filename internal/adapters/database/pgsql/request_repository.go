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

// PgxRequestRepository persists supplemental requests. Resolution uses a
// compare-and-set on the PENDING status inside a database transaction, so two
// concurrent resolutions on the same request cannot both succeed.
type PgxRequestRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRequestRepository creates a new repository for supplemental requests.
func NewPgxRequestRepository(pool *pgxpool.Pool) portsrepo.RequestRepositoryFacade {
	return &PgxRequestRepository{pool: pool}
}

var _ portsrepo.RequestRepositoryFacade = (*PgxRequestRepository)(nil)

const requestColumns = `request_id, display_id, department_id, category, project_id, amount, reason, requester_id, status, submitted_at, resolved_at, resolved_by, resolution_remarks, ticket_id`

// SaveRequest persists a newly submitted PENDING request.
func (r *PgxRequestRepository) SaveRequest(ctx context.Context, request domain.SupplementalRequest) error {
	query := `
		INSERT INTO supplemental_requests (request_id, display_id, department_id, category, project_id, amount, reason, requester_id, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		request.RequestID,
		request.DisplayID,
		request.DepartmentID,
		request.Category,
		request.ProjectID,
		request.Amount,
		request.Reason,
		request.RequesterID,
		request.Status,
		request.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to save request %s: %v", apperrors.ErrPersistence, request.RequestID, err)
	}
	return nil
}

func scanRequest(row pgx.Row) (*domain.SupplementalRequest, error) {
	var req domain.SupplementalRequest
	var remarks *string
	err := row.Scan(
		&req.RequestID,
		&req.DisplayID,
		&req.DepartmentID,
		&req.Category,
		&req.ProjectID,
		&req.Amount,
		&req.Reason,
		&req.RequesterID,
		&req.Status,
		&req.SubmittedAt,
		&req.ResolvedAt,
		&req.ResolvedBy,
		&remarks,
		&req.TicketID,
	)
	if err != nil {
		return nil, err
	}
	if remarks != nil {
		req.ResolutionRemarks = *remarks
	}
	return &req, nil
}

// FindRequestByID retrieves a single request.
func (r *PgxRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.SupplementalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM supplemental_requests WHERE request_id = $1;`
	req, err := scanRequest(r.pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find request %s: %w", requestID, err)
	}
	return req, nil
}

// ListRequests retrieves requests matching the filter, newest first.
func (r *PgxRequestRepository) ListRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.SupplementalRequest, error) {
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

	query := `SELECT ` + requestColumns + ` FROM supplemental_requests`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY submitted_at DESC;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

// ListResolvedRequests retrieves every resolved request for the audit trail.
func (r *PgxRequestRepository) ListResolvedRequests(ctx context.Context, departmentID string) ([]domain.SupplementalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM supplemental_requests WHERE status <> $1`
	args := []interface{}{domain.StatusPending}
	if departmentID != "" {
		query += " AND department_id = $2"
		args = append(args, departmentID)
	}
	query += " ORDER BY resolved_at DESC;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query resolved requests: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

func collectRequests(rows pgx.Rows) ([]domain.SupplementalRequest, error) {
	requests := []domain.SupplementalRequest{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request row: %w", err)
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating request rows: %w", err)
	}
	return requests, nil
}

// ResolveRequest performs the CAS transition out of PENDING and, for approvals,
// appends the materializing journal entry in the same transaction. The guarded
// UPDATE is the linearization point: if it matches zero rows the request was
// either resolved concurrently (ErrInvalidState) or never existed (ErrNotFound),
// and the ledger is untouched either way.
func (r *PgxRequestRepository) ResolveRequest(ctx context.Context, requestID string, resolution domain.Resolution, entry *domain.JournalEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", apperrors.ErrPersistence, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	updateQuery := `
		UPDATE supplemental_requests
		SET status = $2, resolved_at = $3, resolved_by = $4, resolution_remarks = $5, ticket_id = $6
		WHERE request_id = $1 AND status = $7;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		requestID,
		resolution.Status,
		resolution.ResolvedAt,
		resolution.ResolvedBy,
		resolution.Remarks,
		resolution.TicketID,
		domain.StatusPending,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve request %s: %v", apperrors.ErrPersistence, requestID, err)
	}

	if tag.RowsAffected() == 0 {
		var status domain.RequestStatus
		err := tx.QueryRow(ctx, `SELECT status FROM supplemental_requests WHERE request_id = $1;`, requestID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: failed to inspect request %s: %v", apperrors.ErrPersistence, requestID, err)
		}
		return fmt.Errorf("%w: request already %s", apperrors.ErrInvalidState, status)
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
			// Rolling back leaves the request PENDING; no partial approval is observable.
			return fmt.Errorf("%w: failed to append materializing entry for request %s: %v", apperrors.ErrPersistence, requestID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit resolution of request %s: %v", apperrors.ErrPersistence, requestID, err)
	}
	return nil
}
