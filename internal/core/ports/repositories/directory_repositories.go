package repositories

import (
	"context"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
)

// DirectoryReader is the read-only reference directory: departments, accounts,
// projects and categories are master data maintained outside this service.
type DirectoryReader interface {
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ListProjects(ctx context.Context, departmentID string) ([]domain.Project, error)
	ListCategories(ctx context.Context, projectID string) ([]domain.CategoryRef, error)

	FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindPoolAccount returns the central budget pool account, the debit side of
	// every approved request.
	FindPoolAccount(ctx context.Context) (*domain.Account, error)

	// FindAllocationAccount returns the allocation account for a department, the
	// credit side of every approved request.
	FindAllocationAccount(ctx context.Context, departmentID string) (*domain.Account, error)
}
