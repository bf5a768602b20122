package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackr/budget-ledger/internal/apperrors"
	"github.com/fintrackr/budget-ledger/internal/core/domain"
	portssvc "github.com/fintrackr/budget-ledger/internal/core/ports/services"
	"github.com/fintrackr/budget-ledger/internal/core/services"
	"github.com/fintrackr/budget-ledger/internal/dto"
)

type ProposalServiceTestSuite struct {
	suite.Suite
	mockProposals *MockProposalRepository
	mockDirectory *MockDirectoryService
	service       portssvc.ProposalSvcFacade
	requester     domain.Identity
	approver      domain.Identity
}

func (suite *ProposalServiceTestSuite) SetupTest() {
	suite.mockProposals = new(MockProposalRepository)
	suite.mockDirectory = new(MockDirectoryService)
	approverRoles := domain.NewApproverRoles(domain.RoleFinanceHead, domain.RoleAdmin)
	suite.service = services.NewProposalService(suite.mockProposals, suite.mockDirectory, approverRoles)
	suite.requester = domain.Identity{UserID: uuid.NewString(), DepartmentID: "dept-eng", Role: domain.RoleRequester}
	suite.approver = domain.Identity{UserID: uuid.NewString(), DepartmentID: "dept-fin", Role: domain.RoleFinanceHead}
}

func (suite *ProposalServiceTestSuite) validProposal() dto.CreateProposalRequest {
	return dto.CreateProposalRequest{
		Title:        "Test bench refresh",
		DepartmentID: "dept-eng",
		Category:     "CAPEX",
		ProjectID:    "proj-lab",
		Amount:       decimal.RequireFromString("12000.00"),
		Reason:       "Current rigs out of warranty",
		CostElements: []dto.CostElementInput{
			{CostElement: "Hardware", EstimatedCost: decimal.RequireFromString("9000.00")},
			{CostElement: "Installation", EstimatedCost: decimal.RequireFromString("3000.00")},
		},
	}
}

func (suite *ProposalServiceTestSuite) expectSubmissionResolution() {
	suite.mockDirectory.On("ResolveDepartment", mock.Anything, "dept-eng").
		Return(&domain.Department{DepartmentID: "dept-eng", Name: "Engineering"}, nil)
	suite.mockDirectory.On("ResolveProject", mock.Anything, "proj-lab", "dept-eng").
		Return(&domain.Project{ProjectID: "proj-lab", DepartmentID: "dept-eng"}, nil)
}

func pendingProposal() *domain.BudgetProposal {
	return &domain.BudgetProposal{
		ProposalID:   uuid.NewString(),
		DisplayID:    "BP-TEST0001",
		Title:        "Test bench refresh",
		DepartmentID: "dept-eng",
		Category:     domain.CategoryCapex,
		ProjectID:    "proj-lab",
		Amount:       decimal.RequireFromString("12000.00"),
		Reason:       "Current rigs out of warranty",
		RequesterID:  uuid.NewString(),
		CostElements: []domain.CostElement{
			{CostElement: "Hardware", EstimatedCost: decimal.RequireFromString("9000.00")},
			{CostElement: "Installation", EstimatedCost: decimal.RequireFromString("3000.00")},
		},
		Status:      domain.StatusPending,
		SubmittedAt: time.Now().UTC().Add(-time.Hour),
	}
}

func (suite *ProposalServiceTestSuite) TestSubmitProposal_Success() {
	ctx := context.Background()
	suite.expectSubmissionResolution()
	suite.mockProposals.On("SaveProposal", ctx, mock.AnythingOfType("domain.BudgetProposal")).Return(nil).Once()

	created, err := suite.service.SubmitProposal(ctx, suite.requester, suite.validProposal())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, created.Status)
	suite.Regexp(`^BP-[0-9A-F]{8}$`, created.DisplayID)
	suite.Len(created.CostElements, 2)
	suite.True(created.CostElementTotal().Equal(created.Amount))
	suite.mockProposals.AssertExpectations(suite.T())
}

func (suite *ProposalServiceTestSuite) TestSubmitProposal_BreakdownMustSumToAmount() {
	ctx := context.Background()
	suite.expectSubmissionResolution()

	req := suite.validProposal()
	req.CostElements[1].EstimatedCost = decimal.RequireFromString("2000.00")

	created, err := suite.service.SubmitProposal(ctx, suite.requester, req)

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	field, _ := apperrors.FieldFromError(err)
	suite.Equal("costElements", field)
	suite.mockProposals.AssertNotCalled(suite.T(), "SaveProposal", mock.Anything, mock.Anything)
}

func (suite *ProposalServiceTestSuite) TestApproveProposal_RecordsSignature() {
	ctx := context.Background()
	proposal := pendingProposal()
	suite.mockProposals.On("FindProposalByID", ctx, proposal.ProposalID).Return(proposal, nil).Once()
	suite.mockDirectory.On("ResolveTransferAccounts", mock.Anything, "dept-eng").
		Return(
			&domain.Account{AccountID: "acc-pool", Kind: domain.AccountPool},
			&domain.Account{AccountID: "acc-eng", Kind: domain.AccountAllocation, DepartmentID: "dept-eng"},
			nil,
		)

	var capturedEntry *domain.JournalEntry
	suite.mockProposals.On("ResolveProposal", ctx, proposal.ProposalID, mock.AnythingOfType("domain.Resolution"), "sig:finance-head", mock.AnythingOfType("*domain.JournalEntry")).
		Run(func(args mock.Arguments) {
			capturedEntry = args.Get(4).(*domain.JournalEntry)
		}).
		Return(nil).Once()

	resolved, err := suite.service.ApproveProposal(ctx, suite.approver, proposal.ProposalID, "sig:finance-head")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, resolved.Status)
	suite.Equal("sig:finance-head", resolved.ApproverSignature)
	suite.Require().NotNil(capturedEntry)
	suite.True(capturedEntry.Amount.Equal(proposal.Amount))
	suite.Equal("acc-pool", capturedEntry.SourceAccountID)
	suite.Equal("acc-eng", capturedEntry.DestinationAccountID)
}

func (suite *ProposalServiceTestSuite) TestApproveProposal_AlreadyResolved() {
	ctx := context.Background()
	proposal := pendingProposal()
	proposal.Status = domain.StatusApproved
	suite.mockProposals.On("FindProposalByID", ctx, proposal.ProposalID).Return(proposal, nil).Once()

	resolved, err := suite.service.ApproveProposal(ctx, suite.approver, proposal.ProposalID, "sig")

	suite.Nil(resolved)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *ProposalServiceTestSuite) TestRejectProposal_RemarksRequired() {
	ctx := context.Background()

	resolved, err := suite.service.RejectProposal(ctx, suite.approver, uuid.NewString(), "")

	suite.Nil(resolved)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProposalServiceTestSuite) TestRejectProposal_NoLedgerEntry() {
	ctx := context.Background()
	proposal := pendingProposal()
	suite.mockProposals.On("FindProposalByID", ctx, proposal.ProposalID).Return(proposal, nil).Once()
	suite.mockProposals.On("ResolveProposal", ctx, proposal.ProposalID, mock.AnythingOfType("domain.Resolution"), "", (*domain.JournalEntry)(nil)).
		Return(nil).Once()

	resolved, err := suite.service.RejectProposal(ctx, suite.approver, proposal.ProposalID, "Over budget for FY26")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusRejected, resolved.Status)
	suite.Empty(resolved.ApproverSignature)
	suite.mockProposals.AssertExpectations(suite.T())
}

func (suite *ProposalServiceTestSuite) TestListProposals_NonApproverPinnedToOwnDepartment() {
	ctx := context.Background()
	suite.mockProposals.On("ListProposals", ctx, domain.RequestFilter{DepartmentID: "dept-eng"}).
		Return([]domain.BudgetProposal{}, nil).Once()

	_, err := suite.service.ListProposals(ctx, suite.requester, dto.ListRequestsParams{DepartmentID: "dept-mkt"})

	suite.Require().NoError(err)
	suite.mockProposals.AssertExpectations(suite.T())
}

func TestProposalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProposalServiceTestSuite))
}
