package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
)

// MockJournalRepository is a mock type for the JournalRepositoryFacade interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) AppendEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindEntriesByTicket(ctx context.Context, ticketID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, filter domain.EntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockJournalRepository) ListAllEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// MockDirectoryService is a mock type for the DirectorySvcFacade interface
type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDirectoryService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockDirectoryService) ListProjects(ctx context.Context, departmentID string) ([]domain.Project, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockDirectoryService) ListCategories(ctx context.Context, projectID string) ([]domain.CategoryRef, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryRef), args.Error(1)
}

func (m *MockDirectoryService) ResolveDepartment(ctx context.Context, departmentID string) (*domain.Department, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDirectoryService) ResolveProject(ctx context.Context, projectID, departmentID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockDirectoryService) ResolveAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockDirectoryService) ResolveTransferAccounts(ctx context.Context, departmentID string) (*domain.Account, *domain.Account, error) {
	args := m.Called(ctx, departmentID)
	var pool, allocation *domain.Account
	if args.Get(0) != nil {
		pool = args.Get(0).(*domain.Account)
	}
	if args.Get(1) != nil {
		allocation = args.Get(1).(*domain.Account)
	}
	return pool, allocation, args.Error(2)
}

// MockRequestRepository is a mock type for the RequestRepositoryFacade interface
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) SaveRequest(ctx context.Context, request domain.SupplementalRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) ResolveRequest(ctx context.Context, requestID string, resolution domain.Resolution, entry *domain.JournalEntry) error {
	args := m.Called(ctx, requestID, resolution, entry)
	return args.Error(0)
}

func (m *MockRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.SupplementalRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplementalRequest), args.Error(1)
}

func (m *MockRequestRepository) ListRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.SupplementalRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplementalRequest), args.Error(1)
}

func (m *MockRequestRepository) ListResolvedRequests(ctx context.Context, departmentID string) ([]domain.SupplementalRequest, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplementalRequest), args.Error(1)
}

// MockProposalRepository is a mock type for the ProposalRepositoryFacade interface
type MockProposalRepository struct {
	mock.Mock
}

func (m *MockProposalRepository) SaveProposal(ctx context.Context, proposal domain.BudgetProposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *MockProposalRepository) ResolveProposal(ctx context.Context, proposalID string, resolution domain.Resolution, signature string, entry *domain.JournalEntry) error {
	args := m.Called(ctx, proposalID, resolution, signature, entry)
	return args.Error(0)
}

func (m *MockProposalRepository) FindProposalByID(ctx context.Context, proposalID string) (*domain.BudgetProposal, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetProposal), args.Error(1)
}

func (m *MockProposalRepository) ListProposals(ctx context.Context, filter domain.RequestFilter) ([]domain.BudgetProposal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetProposal), args.Error(1)
}

func (m *MockProposalRepository) ListResolvedProposals(ctx context.Context, departmentID string) ([]domain.BudgetProposal, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetProposal), args.Error(1)
}
