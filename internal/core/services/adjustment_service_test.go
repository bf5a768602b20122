package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackr/budget-ledger/internal/apperrors"
	"github.com/fintrackr/budget-ledger/internal/core/domain"
	"github.com/fintrackr/budget-ledger/internal/core/services"
	portssvc "github.com/fintrackr/budget-ledger/internal/core/ports/services"
	"github.com/fintrackr/budget-ledger/internal/dto"
)

type AdjustmentServiceTestSuite struct {
	suite.Suite
	mockJournal   *MockJournalRepository
	mockDirectory *MockDirectoryService
	service       portssvc.AdjustmentSvcFacade
	approver      domain.Identity
}

func (suite *AdjustmentServiceTestSuite) SetupTest() {
	suite.mockJournal = new(MockJournalRepository)
	suite.mockDirectory = new(MockDirectoryService)
	approverRoles := domain.NewApproverRoles(domain.RoleFinanceHead, domain.RoleAdmin)
	suite.service = services.NewAdjustmentService(suite.mockJournal, suite.mockDirectory, approverRoles)
	suite.approver = domain.Identity{
		UserID:       uuid.NewString(),
		DepartmentID: "dept-fin",
		Role:         domain.RoleFinanceHead,
	}
}

func (suite *AdjustmentServiceTestSuite) validRequest() dto.CreateAdjustmentRequest {
	return dto.CreateAdjustmentRequest{
		DepartmentID:         "dept-eng",
		Category:             "CAPEX",
		SourceAccountID:      "acc-pool",
		DestinationAccountID: "acc-eng",
		Amount:               "2500.00",
	}
}

func (suite *AdjustmentServiceTestSuite) expectDirectoryResolution() {
	suite.mockDirectory.On("ResolveDepartment", mock.Anything, "dept-eng").
		Return(&domain.Department{DepartmentID: "dept-eng", Name: "Engineering"}, nil)
	suite.mockDirectory.On("ResolveAccount", mock.Anything, "acc-pool").
		Return(&domain.Account{AccountID: "acc-pool", Kind: domain.AccountPool}, nil)
	suite.mockDirectory.On("ResolveAccount", mock.Anything, "acc-eng").
		Return(&domain.Account{AccountID: "acc-eng", Kind: domain.AccountAllocation, DepartmentID: "dept-eng"}, nil)
}

func (suite *AdjustmentServiceTestSuite) TestCreateAdjustment_Success() {
	ctx := context.Background()
	suite.expectDirectoryResolution()
	suite.mockJournal.On("AppendEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	entry, err := suite.service.CreateAdjustment(ctx, suite.approver, suite.validRequest())

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.NotEmpty(entry.TicketID)
	suite.Equal("dept-eng", entry.DepartmentID)
	suite.Equal(domain.CategoryCapex, entry.Category)
	suite.Equal("acc-pool", entry.SourceAccountID)
	suite.Equal("acc-eng", entry.DestinationAccountID)
	suite.Equal("2500.00", entry.Amount.StringFixed(2))
	suite.Equal(suite.approver.UserID, entry.CreatedBy)
	suite.NotEmpty(entry.Description) // Defaulted when caller omits it
	suite.WithinDuration(time.Now().UTC(), entry.CreatedAt, time.Second)
	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *AdjustmentServiceTestSuite) TestCreateAdjustment_ForbiddenForRequester() {
	ctx := context.Background()
	requester := domain.Identity{UserID: uuid.NewString(), DepartmentID: "dept-eng", Role: domain.RoleRequester}

	entry, err := suite.service.CreateAdjustment(ctx, requester, suite.validRequest())

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockJournal.AssertNotCalled(suite.T(), "AppendEntry", mock.Anything, mock.Anything)
}

func (suite *AdjustmentServiceTestSuite) TestCreateAdjustment_FieldValidationOrder() {
	ctx := context.Background()

	cases := []struct {
		name     string
		mutate   func(*dto.CreateAdjustmentRequest)
		wantWord string
	}{
		{"missing department", func(r *dto.CreateAdjustmentRequest) { r.DepartmentID = "" }, "departmentID"},
		{"missing category", func(r *dto.CreateAdjustmentRequest) { r.Category = "" }, "category"},
		{"missing source", func(r *dto.CreateAdjustmentRequest) { r.SourceAccountID = "" }, "sourceAccountID"},
		{"missing destination", func(r *dto.CreateAdjustmentRequest) { r.DestinationAccountID = "" }, "destinationAccountID"},
		{"same accounts", func(r *dto.CreateAdjustmentRequest) { r.DestinationAccountID = r.SourceAccountID }, "destinationAccountID"},
		{"unparseable amount", func(r *dto.CreateAdjustmentRequest) { r.Amount = "not-a-number" }, "amount"},
		{"zero amount", func(r *dto.CreateAdjustmentRequest) { r.Amount = "0" }, "amount"},
		{"negative amount", func(r *dto.CreateAdjustmentRequest) { r.Amount = "-10" }, "amount"},
		{"bad category", func(r *dto.CreateAdjustmentRequest) { r.Category = "TRAVEL" }, "category"},
	}

	for _, tc := range cases {
		req := suite.validRequest()
		tc.mutate(&req)

		entry, err := suite.service.CreateAdjustment(ctx, suite.approver, req)

		suite.Nil(entry, tc.name)
		suite.ErrorIs(err, apperrors.ErrValidation, tc.name)
		field, ok := apperrors.FieldFromError(err)
		suite.True(ok, tc.name)
		suite.Equal(tc.wantWord, field, tc.name)
	}
	suite.mockJournal.AssertNotCalled(suite.T(), "AppendEntry", mock.Anything, mock.Anything)
}

func (suite *AdjustmentServiceTestSuite) TestCreateAdjustment_UnknownDepartment() {
	ctx := context.Background()
	suite.mockDirectory.On("ResolveDepartment", mock.Anything, "dept-eng").
		Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.CreateAdjustment(ctx, suite.approver, suite.validRequest())

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	field, _ := apperrors.FieldFromError(err)
	suite.Equal("departmentID", field)
}

func (suite *AdjustmentServiceTestSuite) TestCreateAdjustment_TicketReuseAmendsBudgetLine() {
	ctx := context.Background()
	suite.expectDirectoryResolution()
	suite.mockJournal.On("AppendEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	existingTicket := uuid.NewString()
	req := suite.validRequest()
	req.TicketID = &existingTicket
	req.Amount = "3000.00"

	entry, err := suite.service.CreateAdjustment(ctx, suite.approver, req)

	suite.Require().NoError(err)
	suite.Equal(existingTicket, entry.TicketID)
	suite.NotEqual(existingTicket, entry.EntryID)
}

func (suite *AdjustmentServiceTestSuite) TestCreateAdjustment_DuplicateEntryID() {
	ctx := context.Background()
	suite.expectDirectoryResolution()
	suite.mockJournal.On("AppendEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).
		Return(apperrors.ErrDuplicate).Once()

	entryID := uuid.NewString()
	req := suite.validRequest()
	req.EntryID = &entryID

	entry, err := suite.service.CreateAdjustment(ctx, suite.approver, req)

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func TestAdjustmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdjustmentServiceTestSuite))
}
