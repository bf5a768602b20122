package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
	portssvc "github.com/fintrackr/budget-ledger/internal/core/ports/services"
	"github.com/fintrackr/budget-ledger/internal/core/services"
)

type AuditServiceTestSuite struct {
	suite.Suite
	mockJournal   *MockJournalRepository
	mockRequests  *MockRequestRepository
	mockProposals *MockProposalRepository
	service       portssvc.AuditSvcFacade
	base          time.Time
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockJournal = new(MockJournalRepository)
	suite.mockRequests = new(MockRequestRepository)
	suite.mockProposals = new(MockProposalRepository)
	suite.service = services.NewAuditService(suite.mockJournal, suite.mockRequests, suite.mockProposals)
	suite.base = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
}

func (suite *AuditServiceTestSuite) seedSources() {
	ctx := context.Background()

	entries := []domain.JournalEntry{
		{
			EntryID:      "e1",
			TicketID:     "t1",
			DepartmentID: "dept-eng",
			Amount:       decimal.RequireFromString("1000"),
			CreatedAt:    suite.base, // oldest
			CreatedBy:    "user-a",
			Description:  "Initial allocation",
		},
	}
	suite.mockJournal.On("ListAllEntries", ctx, domain.EntryFilter{DepartmentID: ""}).Return(entries, nil)

	approvedAt := suite.base.Add(2 * time.Hour) // newest
	approvedBy := "user-b"
	requests := []domain.SupplementalRequest{
		{
			RequestID:    "r1",
			DepartmentID: "dept-eng",
			Amount:       decimal.RequireFromString("500"),
			Status:       domain.StatusApproved,
			ResolvedAt:   &approvedAt,
			ResolvedBy:   &approvedBy,
		},
	}
	suite.mockRequests.On("ListResolvedRequests", ctx, "").Return(requests, nil)

	rejectedAt := suite.base.Add(time.Hour) // middle
	rejectedBy := "user-c"
	proposals := []domain.BudgetProposal{
		{
			ProposalID:        "p1",
			DepartmentID:      "dept-mkt",
			Amount:            decimal.RequireFromString("2000"),
			Status:            domain.StatusRejected,
			ResolvedAt:        &rejectedAt,
			ResolvedBy:        &rejectedBy,
			ResolutionRemarks: "Duplicate of an existing line",
		},
	}
	suite.mockProposals.On("ListResolvedProposals", ctx, "").Return(proposals, nil)
}

func (suite *AuditServiceTestSuite) TestAuditTrail_MergesNewestFirst() {
	suite.seedSources()

	rows, err := suite.service.AuditTrail(context.Background(), domain.AuditFilter{})

	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal("r1", rows[0].SubjectID)
	suite.Equal(domain.AuditApproved, rows[0].Action)
	suite.Equal("p1", rows[1].SubjectID)
	suite.Equal(domain.AuditRejected, rows[1].Action)
	suite.Equal("Duplicate of an existing line", rows[1].Detail)
	suite.Equal("e1", rows[2].SubjectID)
	suite.Equal(domain.AuditSubmitted, rows[2].Action)
	suite.Equal("user-a", rows[2].Actor)
}

func (suite *AuditServiceTestSuite) TestAuditTrail_ActionFilter() {
	suite.seedSources()

	rows, err := suite.service.AuditTrail(context.Background(), domain.AuditFilter{Action: domain.AuditRejected})

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("p1", rows[0].SubjectID)
}

func (suite *AuditServiceTestSuite) TestAuditTrail_Limit() {
	suite.seedSources()

	rows, err := suite.service.AuditTrail(context.Background(), domain.AuditFilter{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(rows, 2)
	// The limit trims the oldest rows, never the newest.
	suite.Equal("r1", rows[0].SubjectID)
}

func (suite *AuditServiceTestSuite) TestAuditTrail_DepartmentScopePropagates() {
	ctx := context.Background()
	suite.mockJournal.On("ListAllEntries", ctx, domain.EntryFilter{DepartmentID: "dept-eng"}).
		Return([]domain.JournalEntry{}, nil).Once()
	suite.mockRequests.On("ListResolvedRequests", ctx, "dept-eng").
		Return([]domain.SupplementalRequest{}, nil).Once()
	suite.mockProposals.On("ListResolvedProposals", ctx, "dept-eng").
		Return([]domain.BudgetProposal{}, nil).Once()

	rows, err := suite.service.AuditTrail(ctx, domain.AuditFilter{DepartmentID: "dept-eng"})

	suite.Require().NoError(err)
	suite.Empty(rows)
	suite.mockJournal.AssertExpectations(suite.T())
	suite.mockRequests.AssertExpectations(suite.T())
	suite.mockProposals.AssertExpectations(suite.T())
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
