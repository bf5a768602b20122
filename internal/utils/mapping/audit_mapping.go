package mapping

import (
	"time"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
	"github.com/fintrackr/budget-ledger/internal/dto"
)

// ToAuditLogEntryResponses maps derived audit rows to their wire form.
func ToAuditLogEntryResponses(rows []domain.AuditLogEntry) []dto.AuditLogEntryResponse {
	out := make([]dto.AuditLogEntryResponse, len(rows))
	for i, row := range rows {
		out[i] = dto.AuditLogEntryResponse{
			Timestamp:    row.Timestamp.Format(time.RFC3339),
			SubjectID:    row.SubjectID,
			Action:       string(row.Action),
			Actor:        row.Actor,
			Amount:       row.Amount.StringFixed(2),
			DepartmentID: row.DepartmentID,
			Detail:       row.Detail,
		}
	}
	return out
}
