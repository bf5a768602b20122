package repositories

import (
	"context"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
)

// RequestWriter defines write operations for supplemental requests.
type RequestWriter interface {
	// SaveRequest persists a newly submitted PENDING request.
	SaveRequest(ctx context.Context, request domain.SupplementalRequest) error

	// ResolveRequest performs the compare-and-set transition out of PENDING and,
	// when entry is non-nil, appends the materializing journal entry in the same
	// database transaction. Exactly one of two concurrent resolutions can win;
	// the loser observes apperrors.ErrInvalidState. A nil entry (rejection)
	// leaves the ledger untouched.
	ResolveRequest(ctx context.Context, requestID string, resolution domain.Resolution, entry *domain.JournalEntry) error
}

// RequestReader defines read operations for supplemental requests.
type RequestReader interface {
	// FindRequestByID retrieves a single request.
	FindRequestByID(ctx context.Context, requestID string) (*domain.SupplementalRequest, error)

	// ListRequests retrieves requests matching the filter, newest first.
	ListRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.SupplementalRequest, error)

	// ListResolvedRequests retrieves every resolved request; input to the audit
	// trail projection.
	ListResolvedRequests(ctx context.Context, departmentID string) ([]domain.SupplementalRequest, error)
}

// RequestRepositoryFacade combines the request repository interfaces.
type RequestRepositoryFacade interface {
	RequestWriter
	RequestReader
}
