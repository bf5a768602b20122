package services

import (
	"context"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
)

// AuditSvcFacade derives the chronological audit trail from the authoritative
// sources (journal entries and request/proposal resolutions). There is no stored
// log to keep in sync; every call recomputes.
type AuditSvcFacade interface {
	// AuditTrail merges entry creations and workflow resolutions into a single
	// sequence ordered by timestamp descending.
	AuditTrail(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditLogEntry, error)
}
