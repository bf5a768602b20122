package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackr/budget-ledger/internal/apperrors"
	"github.com/fintrackr/budget-ledger/internal/core/domain"
	portssvc "github.com/fintrackr/budget-ledger/internal/core/ports/services"
	"github.com/fintrackr/budget-ledger/internal/core/services"
	"github.com/fintrackr/budget-ledger/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockJournal *MockJournalRepository
	service     portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockJournal = new(MockJournalRepository)
	suite.service = services.NewLedgerService(suite.mockJournal)
}

// entry builds a test journal entry moving amount from src to dst.
func entry(id, ticket, dept, src, dst string, amount string, at time.Time) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:              id,
		TicketID:             ticket,
		DepartmentID:         dept,
		Category:             domain.CategoryCapex,
		SourceAccountID:      src,
		DestinationAccountID: dst,
		Amount:               decimal.RequireFromString(amount),
		CreatedAt:            at,
		CreatedBy:            "user-1",
	}
}

func (suite *LedgerServiceTestSuite) TestListEntries_DefaultsLimit() {
	ctx := context.Background()
	now := time.Now().UTC()
	entries := []domain.JournalEntry{entry("e1", "t1", "dept-eng", "acc-pool", "acc-eng", "100", now)}

	suite.mockJournal.On("ListEntries", ctx, mock.AnythingOfType("domain.EntryFilter"), 20, (*string)(nil)).
		Return(entries, nil, nil).Once()

	resp, err := suite.service.ListEntries(ctx, dto.ListEntriesParams{DepartmentID: "dept-eng"})

	suite.Require().NoError(err)
	suite.Len(resp.Entries, 1)
	suite.Nil(resp.NextToken)
	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetBudgetLine_LatestEntryWins() {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// Oldest first, as FindEntriesByTicket returns them. The budget line's current
	// amount is the most recent entry's amount, not the sum.
	history := []domain.JournalEntry{
		entry("e1", "t1", "dept-eng", "acc-pool", "acc-eng", "1000", base),
		entry("e2", "t1", "dept-eng", "acc-pool", "acc-eng", "1500", base.Add(time.Hour)),
	}
	suite.mockJournal.On("FindEntriesByTicket", ctx, "t1").Return(history, nil).Once()

	line, err := suite.service.GetBudgetLine(ctx, "t1")

	suite.Require().NoError(err)
	suite.Equal("1500", line.CurrentAmount.String())
	suite.Equal(base.Add(time.Hour), line.UpdatedAt)
	suite.Len(line.History, 2)
}

func (suite *LedgerServiceTestSuite) TestGetBudgetLine_UnknownTicket() {
	ctx := context.Background()
	suite.mockJournal.On("FindEntriesByTicket", ctx, "no-such-ticket").
		Return([]domain.JournalEntry{}, nil).Once()

	line, err := suite.service.GetBudgetLine(ctx, "no-such-ticket")

	suite.Nil(line)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestAccountBalances_FoldsBothSides() {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	entries := []domain.JournalEntry{
		entry("e1", "t1", "dept-eng", "acc-pool", "acc-eng", "1000", base),
		entry("e2", "t2", "dept-mkt", "acc-pool", "acc-mkt", "400", base.Add(time.Minute)),
		entry("e3", "t3", "dept-eng", "acc-eng", "acc-mkt", "150", base.Add(2*time.Minute)),
	}
	suite.mockJournal.On("ListAllEntries", ctx, mock.AnythingOfType("domain.EntryFilter")).
		Return(entries, nil).Once()

	balances, err := suite.service.AccountBalances(ctx, domain.EntryFilter{})

	suite.Require().NoError(err)
	suite.Equal("-1400", balances["acc-pool"].String())
	suite.Equal("850", balances["acc-eng"].String())
	suite.Equal("550", balances["acc-mkt"].String())
}

func (suite *LedgerServiceTestSuite) TestAccountBalances_PinnedAccountScope() {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// Repository already filtered to entries touching acc-eng; the fold must only
	// count the pinned account's side of each transfer.
	entries := []domain.JournalEntry{
		entry("e1", "t1", "dept-eng", "acc-pool", "acc-eng", "1000", base),
		entry("e3", "t3", "dept-eng", "acc-eng", "acc-mkt", "150", base.Add(time.Minute)),
	}
	suite.mockJournal.On("ListAllEntries", ctx, mock.AnythingOfType("domain.EntryFilter")).
		Return(entries, nil).Once()

	balances, err := suite.service.AccountBalances(ctx, domain.EntryFilter{AccountID: "acc-eng"})

	suite.Require().NoError(err)
	suite.Len(balances, 1)
	suite.Equal("850", balances["acc-eng"].String())
}

func (suite *LedgerServiceTestSuite) TestCurrentBalance_SumsScope() {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// Within one department's scope: pool debits are out of scope on the repo
	// side, so the net is what the department received minus what it spent on.
	entries := []domain.JournalEntry{
		entry("e1", "t1", "dept-eng", "acc-pool", "acc-eng", "1000", base),
		entry("e2", "t2", "dept-eng", "acc-pool", "acc-eng", "500", base.Add(time.Minute)),
	}
	suite.mockJournal.On("ListAllEntries", ctx, mock.AnythingOfType("domain.EntryFilter")).
		Return(entries, nil).Once()

	balance, err := suite.service.CurrentBalance(ctx, domain.EntryFilter{DepartmentID: "dept-eng", AccountID: "acc-eng"})

	suite.Require().NoError(err)
	suite.Equal("1500", balance.String())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
