package dto

import "time"

// ListEntriesParams are the filters and pagination inputs for ledger listings.
type ListEntriesParams struct {
	DepartmentID string     `form:"departmentID"`
	Category     string     `form:"category"`
	AccountID    string     `form:"accountID"`
	TicketID     string     `form:"ticketID"`
	AsOf         *time.Time `form:"asOf" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit        int        `form:"limit"`
	NextToken    *string    `form:"nextToken"`
}

// ListEntriesResponse is a page of ledger entries plus the continuation token.
type ListEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// BalanceParams scope a balance projection.
type BalanceParams struct {
	DepartmentID string     `form:"departmentID"`
	Category     string     `form:"category"`
	AccountID    string     `form:"accountID"`
	AsOf         *time.Time `form:"asOf" time_format:"2006-01-02T15:04:05Z07:00"`
}

// BalanceResponse reports the folded balance for one scope.
type BalanceResponse struct {
	DepartmentID string            `json:"departmentID,omitempty"`
	Category     string            `json:"category,omitempty"`
	AccountID    string            `json:"accountID,omitempty"`
	AsOf         *time.Time        `json:"asOf,omitempty"`
	Balance      string            `json:"balance"`
	ByAccount    map[string]string `json:"byAccount,omitempty"`
}

// BudgetLineResponse is the latest-value view of a ticket plus its full history.
type BudgetLineResponse struct {
	TicketID      string                 `json:"ticketID"`
	DepartmentID  string                 `json:"departmentID"`
	Category      string                 `json:"category"`
	CurrentAmount string                 `json:"currentAmount"`
	UpdatedAt     string                 `json:"updatedAt"`
	History       []JournalEntryResponse `json:"history"`
}
