package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditAction is the kind of event an audit row records.
type AuditAction string

const (
	AuditSubmitted AuditAction = "SUBMITTED"
	AuditApproved  AuditAction = "APPROVED"
	AuditRejected  AuditAction = "REJECTED"
)

// AuditLogEntry is one row of the derived audit trail. It is never stored:
// every trail is recomputed from journal entries and request resolutions, so the
// log can never drift from the ledger.
type AuditLogEntry struct {
	Timestamp    time.Time       `json:"timestamp"`
	SubjectID    string          `json:"subjectID"` // Entry, request or proposal ID
	Action       AuditAction     `json:"action"`
	Actor        string          `json:"actor"`
	Amount       decimal.Decimal `json:"amount"`       // Snapshot at the moment of the event
	DepartmentID string          `json:"departmentID"` // Snapshot at the moment of the event
	Detail       string          `json:"detail"`
}

// AuditFilter narrows the derived audit trail.
type AuditFilter struct {
	DepartmentID string
	Action       AuditAction
	Limit        int
}
