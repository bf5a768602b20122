package domain

// Reference directory types. These are read-only master data supplied externally;
// the ledger consumes them for validation and account resolution only.

// Department is an organizational unit that owns budget lines.
type Department struct {
	DepartmentID string `json:"departmentID"`
	Name         string `json:"name"`
}

// AccountKind distinguishes the synthetic ledger accounts.
type AccountKind string

const (
	AccountPool       AccountKind = "POOL"       // Central budget pool, debited on approvals
	AccountAllocation AccountKind = "ALLOCATION" // Per-department allocation account
	AccountGeneral    AccountKind = "GENERAL"
)

// Account is a ledger account. Balances are never stored on it; they are always
// projected from the entry stream.
type Account struct {
	AccountID    string      `json:"accountID"`
	Name         string      `json:"name"`
	Kind         AccountKind `json:"kind"`
	DepartmentID string      `json:"departmentID,omitempty"` // Set for ALLOCATION accounts
}

// Project groups budget activity under a department.
type Project struct {
	ProjectID    string `json:"projectID"`
	DepartmentID string `json:"departmentID"`
	Name         string `json:"name"`
}

// CategoryRef is a category row as served by the directory, scoped to a project.
type CategoryRef struct {
	CategoryID string   `json:"categoryID"`
	ProjectID  string   `json:"projectID"`
	Name       Category `json:"name"`
}
