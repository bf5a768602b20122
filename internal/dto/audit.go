package dto

// AuditTrailParams filter the derived audit trail.
type AuditTrailParams struct {
	DepartmentID string `form:"departmentID"`
	Action       string `form:"action"`
	Limit        int    `form:"limit"`
}

// AuditLogEntryResponse is one audit row on the wire.
type AuditLogEntryResponse struct {
	Timestamp    string `json:"timestamp"`
	SubjectID    string `json:"subjectID"`
	Action       string `json:"action"`
	Actor        string `json:"actor"`
	Amount       string `json:"amount"`
	DepartmentID string `json:"departmentID"`
	Detail       string `json:"detail,omitempty"`
}

// AuditTrailResponse is the audit listing envelope.
type AuditTrailResponse struct {
	Entries []AuditLogEntryResponse `json:"entries"`
}
