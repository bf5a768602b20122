package services

import (
	"context"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
)

// DirectorySvcFacade exposes the read-only reference directory and the
// resolution helpers the validation paths rely on.
type DirectorySvcFacade interface {
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ListProjects(ctx context.Context, departmentID string) ([]domain.Project, error)
	ListCategories(ctx context.Context, projectID string) ([]domain.CategoryRef, error)

	// ResolveDepartment returns the department or apperrors.ErrNotFound.
	ResolveDepartment(ctx context.Context, departmentID string) (*domain.Department, error)

	// ResolveProject returns the project, checking it belongs to the department.
	ResolveProject(ctx context.Context, projectID, departmentID string) (*domain.Project, error)

	// ResolveAccount returns the account or apperrors.ErrNotFound.
	ResolveAccount(ctx context.Context, accountID string) (*domain.Account, error)

	// ResolveTransferAccounts returns the (pool, allocation) pair implied by a
	// department, used when an approval materializes a ledger entry.
	ResolveTransferAccounts(ctx context.Context, departmentID string) (*domain.Account, *domain.Account, error)
}
