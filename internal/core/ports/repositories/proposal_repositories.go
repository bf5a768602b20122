package repositories

import (
	"context"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
)

// ProposalWriter defines write operations for budget proposals.
type ProposalWriter interface {
	// SaveProposal persists a newly submitted PENDING proposal with its cost elements.
	SaveProposal(ctx context.Context, proposal domain.BudgetProposal) error

	// ResolveProposal performs the compare-and-set transition out of PENDING,
	// records the approver signature, and appends the materializing entry (when
	// non-nil) in the same database transaction. Same exactly-once contract as
	// RequestWriter.ResolveRequest.
	ResolveProposal(ctx context.Context, proposalID string, resolution domain.Resolution, signature string, entry *domain.JournalEntry) error
}

// ProposalReader defines read operations for budget proposals.
type ProposalReader interface {
	// FindProposalByID retrieves a proposal with its cost elements.
	FindProposalByID(ctx context.Context, proposalID string) (*domain.BudgetProposal, error)

	// ListProposals retrieves proposals matching the filter, newest first.
	ListProposals(ctx context.Context, filter domain.RequestFilter) ([]domain.BudgetProposal, error)

	// ListResolvedProposals retrieves every resolved proposal for the audit trail.
	ListResolvedProposals(ctx context.Context, departmentID string) ([]domain.BudgetProposal, error)
}

// ProposalRepositoryFacade combines the proposal repository interfaces.
type ProposalRepositoryFacade interface {
	ProposalWriter
	ProposalReader
}
