package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/fintrackr/budget-ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider creates all pgsql repositories over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Journal:   NewPgxJournalRepository(pool),
		Request:   NewPgxRequestRepository(pool),
		Proposal:  NewPgxProposalRepository(pool),
		Directory: NewPgxDirectoryRepository(pool),
	}
}
