package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrackr/budget-ledger/internal/apperrors"
	"github.com/fintrackr/budget-ledger/internal/core/domain"
	portsrepo "github.com/fintrackr/budget-ledger/internal/core/ports/repositories"
)

// PgxDirectoryRepository reads the reference directory tables. Master data is
// maintained by an external system; this repository only ever selects.
type PgxDirectoryRepository struct {
	pool *pgxpool.Pool
}

// NewPgxDirectoryRepository creates a new read-only directory repository.
func NewPgxDirectoryRepository(pool *pgxpool.Pool) portsrepo.DirectoryReader {
	return &PgxDirectoryRepository{pool: pool}
}

var _ portsrepo.DirectoryReader = (*PgxDirectoryRepository)(nil)

func (r *PgxDirectoryRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.pool.Query(ctx, `SELECT department_id, name FROM departments ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	departments := []domain.Department{}
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.DepartmentID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (r *PgxDirectoryRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.pool.Query(ctx, `SELECT account_id, name, kind, COALESCE(department_id, '') FROM accounts ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.AccountID, &a.Name, &a.Kind, &a.DepartmentID); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *PgxDirectoryRepository) ListProjects(ctx context.Context, departmentID string) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, `SELECT project_id, department_id, name FROM projects WHERE department_id = $1 ORDER BY name;`, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ProjectID, &p.DepartmentID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *PgxDirectoryRepository) ListCategories(ctx context.Context, projectID string) ([]domain.CategoryRef, error) {
	rows, err := r.pool.Query(ctx, `SELECT category_id, project_id, name FROM categories WHERE project_id = $1 ORDER BY name;`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.CategoryRef{}
	for rows.Next() {
		var c domain.CategoryRef
		if err := rows.Scan(&c.CategoryID, &c.ProjectID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PgxDirectoryRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	var d domain.Department
	err := r.pool.QueryRow(ctx, `SELECT department_id, name FROM departments WHERE department_id = $1;`, departmentID).
		Scan(&d.DepartmentID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find department %s: %w", departmentID, err)
	}
	return &d, nil
}

func (r *PgxDirectoryRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	var a domain.Account
	err := r.pool.QueryRow(ctx, `SELECT account_id, name, kind, COALESCE(department_id, '') FROM accounts WHERE account_id = $1;`, accountID).
		Scan(&a.AccountID, &a.Name, &a.Kind, &a.DepartmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return &a, nil
}

func (r *PgxDirectoryRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	var p domain.Project
	err := r.pool.QueryRow(ctx, `SELECT project_id, department_id, name FROM projects WHERE project_id = $1;`, projectID).
		Scan(&p.ProjectID, &p.DepartmentID, &p.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	return &p, nil
}

// FindPoolAccount returns the central budget pool account.
func (r *PgxDirectoryRepository) FindPoolAccount(ctx context.Context) (*domain.Account, error) {
	var a domain.Account
	err := r.pool.QueryRow(ctx, `SELECT account_id, name, kind, COALESCE(department_id, '') FROM accounts WHERE kind = $1 LIMIT 1;`, domain.AccountPool).
		Scan(&a.AccountID, &a.Name, &a.Kind, &a.DepartmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pool account: %w", err)
	}
	return &a, nil
}

// FindAllocationAccount returns the allocation account for a department.
func (r *PgxDirectoryRepository) FindAllocationAccount(ctx context.Context, departmentID string) (*domain.Account, error) {
	var a domain.Account
	err := r.pool.QueryRow(ctx, `SELECT account_id, name, kind, COALESCE(department_id, '') FROM accounts WHERE kind = $1 AND department_id = $2 LIMIT 1;`, domain.AccountAllocation, departmentID).
		Scan(&a.AccountID, &a.Name, &a.Kind, &a.DepartmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find allocation account for department %s: %w", departmentID, err)
	}
	return &a, nil
}
