package services

import (
	"context"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
	"github.com/fintrackr/budget-ledger/internal/dto"
)

// AdjustmentSvcFacade validates and creates ordinary budget adjustments: direct,
// immediately effective journal entries written by roles with direct-write
// authority. Approval-gated changes go through the workflow services instead.
type AdjustmentSvcFacade interface {
	// CreateAdjustment validates the input field by field, builds the journal
	// entry and appends it to the store. The returned entry is the durably
	// recorded one; there is no partially-applied intermediate state.
	CreateAdjustment(ctx context.Context, identity domain.Identity, req dto.CreateAdjustmentRequest) (*domain.JournalEntry, error)
}
