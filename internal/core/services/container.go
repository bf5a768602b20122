package services

import (
	"github.com/fintrackr/budget-ledger/internal/core/domain"
	portsrepo "github.com/fintrackr/budget-ledger/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/budget-ledger/internal/core/ports/services"
)

// NewServiceContainer wires all services onto the repository provider.
// approverRoles is the configured role set allowed to resolve requests and
// write direct adjustments.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, approverRoles domain.ApproverRoles) *portssvc.ServiceContainer {
	directory := NewDirectoryService(repos.Directory)

	return &portssvc.ServiceContainer{
		Directory:  directory,
		Adjustment: NewAdjustmentService(repos.Journal, directory, approverRoles),
		Ledger:     NewLedgerService(repos.Journal),
		Request:    NewRequestService(repos.Request, directory, approverRoles),
		Proposal:   NewProposalService(repos.Proposal, directory, approverRoles),
		Audit:      NewAuditService(repos.Journal, repos.Request, repos.Proposal),
	}
}
