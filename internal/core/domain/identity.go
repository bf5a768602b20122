package domain

import "fmt"

// Role is the caller's authorization role, resolved exactly once at the identity
// boundary (JWT middleware) and carried on the Identity. Call sites must not
// re-derive roles from raw claims.
type Role string

const (
	RoleRequester   Role = "REQUESTER"
	RoleFinanceHead Role = "FINANCE_HEAD"
	RoleAdmin       Role = "ADMIN"
)

// ParseRole maps a claim string to a known Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleRequester, RoleFinanceHead, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Identity is the authenticated caller: user, home department and role.
type Identity struct {
	UserID       string `json:"userID"`
	DepartmentID string `json:"departmentID"`
	Role         Role   `json:"role"`
}

// ApproverRoles is the configured set of roles allowed to resolve requests and
// proposals. The set is configuration, not code, so deployments can widen or
// narrow it without a release.
type ApproverRoles map[Role]struct{}

// NewApproverRoles builds the set from a list of roles.
func NewApproverRoles(roles ...Role) ApproverRoles {
	set := make(ApproverRoles, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// CanApprove reports whether the role may approve or reject pending requests.
func (a ApproverRoles) CanApprove(r Role) bool {
	_, ok := a[r]
	return ok
}
