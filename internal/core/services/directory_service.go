package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fintrackr/budget-ledger/internal/apperrors"
	"github.com/fintrackr/budget-ledger/internal/core/domain"
	portsrepo "github.com/fintrackr/budget-ledger/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/budget-ledger/internal/core/ports/services"
)

// directoryService adapts the read-only reference directory for validation and
// account resolution. It never writes; master data is maintained externally.
type directoryService struct {
	BaseService
	directoryRepo portsrepo.DirectoryReader
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(directoryRepo portsrepo.DirectoryReader) portssvc.DirectorySvcFacade {
	return &directoryService{directoryRepo: directoryRepo}
}

var _ portssvc.DirectorySvcFacade = (*directoryService)(nil)

func (s *directoryService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.directoryRepo.ListDepartments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list departments")
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

func (s *directoryService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.directoryRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *directoryService) ListProjects(ctx context.Context, departmentID string) ([]domain.Project, error) {
	projects, err := s.directoryRepo.ListProjects(ctx, departmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects", slog.String("department_id", departmentID))
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *directoryService) ListCategories(ctx context.Context, projectID string) ([]domain.CategoryRef, error) {
	categories, err := s.directoryRepo.ListCategories(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ResolveDepartment returns the department or ErrNotFound.
func (s *directoryService) ResolveDepartment(ctx context.Context, departmentID string) (*domain.Department, error) {
	dept, err := s.directoryRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve department", slog.String("department_id", departmentID))
		}
		return nil, err
	}
	return dept, nil
}

// ResolveProject returns the project, checking it belongs to the department.
func (s *directoryService) ResolveProject(ctx context.Context, projectID, departmentID string) (*domain.Project, error) {
	project, err := s.directoryRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve project", slog.String("project_id", projectID))
		}
		return nil, err
	}
	if project.DepartmentID != departmentID {
		s.LogWarn(ctx, "Project belongs to a different department",
			slog.String("project_id", projectID),
			slog.String("project_department", project.DepartmentID),
			slog.String("requested_department", departmentID))
		return nil, apperrors.ErrNotFound
	}
	return project, nil
}

// ResolveAccount returns the account or ErrNotFound.
func (s *directoryService) ResolveAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.directoryRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// ResolveTransferAccounts returns the (pool, allocation) pair implied by a
// department. Approved requests are materialized as a transfer between them.
func (s *directoryService) ResolveTransferAccounts(ctx context.Context, departmentID string) (*domain.Account, *domain.Account, error) {
	pool, err := s.directoryRepo.FindPoolAccount(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve budget pool account")
		return nil, nil, fmt.Errorf("failed to resolve budget pool account: %w", err)
	}
	allocation, err := s.directoryRepo.FindAllocationAccount(ctx, departmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve allocation account", slog.String("department_id", departmentID))
		}
		return nil, nil, err
	}
	return pool, allocation, nil
}
