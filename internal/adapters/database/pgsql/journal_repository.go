package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fintrackr/budget-ledger/internal/apperrors"
	"github.com/fintrackr/budget-ledger/internal/core/domain"
	portsrepo "github.com/fintrackr/budget-ledger/internal/core/ports/repositories"
	"github.com/fintrackr/budget-ledger/internal/utils/pagination"
)

const uniqueViolation = "23505"

// PgxJournalRepository is the append-only journal entry store. The type exposes
// no update or delete operation; the append-only invariant is enforced by the
// interface, not by convention.
type PgxJournalRepository struct {
	pool *pgxpool.Pool
}

// NewPgxJournalRepository creates a new repository for the entry stream.
func NewPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{pool: pool}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const entryColumns = `entry_id, ticket_id, department_id, category, source_account_id, destination_account_id, amount, description, created_at, created_by`

// AppendEntry durably records one entry. The entry ID is the idempotency key:
// re-inserting an existing ID maps the unique violation to ErrDuplicate so a
// retried write can never double-book.
func (r *PgxJournalRepository) AppendEntry(ctx context.Context, entry domain.JournalEntry) error {
	// Re-check the store-level invariants at the boundary.
	if entry.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: entry amount must be positive", apperrors.ErrValidation)
	}
	if entry.SourceAccountID == entry.DestinationAccountID {
		return fmt.Errorf("%w: source and destination accounts must differ", apperrors.ErrValidation)
	}

	query := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
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
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("%w: failed to append entry %s: %v", apperrors.ErrPersistence, entry.EntryID, err)
	}
	return nil
}

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(
		&e.EntryID,
		&e.TicketID,
		&e.DepartmentID,
		&e.Category,
		&e.SourceAccountID,
		&e.DestinationAccountID,
		&e.Amount,
		&e.Description,
		&e.CreatedAt,
		&e.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindEntryByID retrieves a single entry.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	entry, err := scanEntry(r.pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	return entry, nil
}

// FindEntriesByTicket retrieves every entry sharing a ticket, oldest first.
func (r *PgxJournalRepository) FindEntriesByTicket(ctx context.Context, ticketID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE ticket_id = $1
		ORDER BY created_at ASC, entry_id ASC;
	`
	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for ticket %s: %w", ticketID, err)
	}
	defer rows.Close()

	return collectEntries(rows, ticketID)
}

func collectEntries(rows pgx.Rows, scope string) ([]domain.JournalEntry, error) {
	entries := []domain.JournalEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row (%s): %w", scope, err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows (%s): %w", scope, err)
	}
	return entries, nil
}

// filterClauses builds WHERE fragments for an entry filter starting at the
// given positional argument index.
func filterClauses(filter domain.EntryFilter, startArg int) ([]string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}
	arg := startArg

	add := func(clause string, value interface{}) {
		clauses = append(clauses, clause+"$"+strconv.Itoa(arg))
		args = append(args, value)
		arg++
	}

	if filter.DepartmentID != "" {
		add("department_id = ", filter.DepartmentID)
	}
	if filter.Category != "" {
		add("category = ", string(filter.Category))
	}
	if filter.AccountID != "" {
		clauses = append(clauses, fmt.Sprintf("(source_account_id = $%d OR destination_account_id = $%d)", arg, arg))
		args = append(args, filter.AccountID)
		arg++
	}
	if filter.TicketID != "" {
		add("ticket_id = ", filter.TicketID)
	}
	if filter.AsOf != nil {
		add("created_at <= ", *filter.AsOf)
	}
	return clauses, args
}

// ListEntries retrieves a filtered page, newest first, using keyset pagination
// on (created_at, entry_id).
func (r *PgxJournalRepository) ListEntries(ctx context.Context, filter domain.EntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	clauses, args := filterClauses(filter, 1)

	if nextToken != nil && *nextToken != "" {
		cursorAt, cursorID, err := pagination.DecodeEntryToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		arg := len(args) + 1
		clauses = append(clauses, fmt.Sprintf("(created_at, entry_id) < ($%d, $%d)", arg, arg+1))
		args = append(args, cursorAt, cursorID)
	}

	query := `SELECT ` + entryColumns + ` FROM journal_entries`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, entry_id DESC LIMIT $%d;", len(args)+1)
	args = append(args, limit+1) // One extra row to detect the next page

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query ledger page: %w", err)
	}
	defer rows.Close()

	entries, err := collectEntries(rows, "ledger page")
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeEntryToken(last.CreatedAt, last.EntryID)
		token = &t
	}
	return entries, token, nil
}

// ListAllEntries retrieves every entry matching the filter in creation order.
// Projections fold over this stream.
func (r *PgxJournalRepository) ListAllEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	clauses, args := filterClauses(filter, 1)

	query := `SELECT ` + entryColumns + ` FROM journal_entries`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at ASC, entry_id ASC;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entry stream: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows, "entry stream")
}
