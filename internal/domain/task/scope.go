package task

import "github.com/consite-dev/consite-go/internal/domain/user"

// Scope narrows a task query to the rows a caller may see. A nil Scope means
// the caller sees everything.
type Scope struct {
	Column string
	UserID uint
}

// ScopeForRole maps (role, caller id) to the visibility predicate for task
// listings: workers see tasks assigned to them, contractors see tasks they
// assigned, every other role is unscoped.
func ScopeForRole(role string, callerID uint) *Scope {
	switch role {
	case string(user.RoleWorker):
		return &Scope{Column: "assigned_to_id", UserID: callerID}
	case string(user.RoleContractor):
		return &Scope{Column: "assigned_by_id", UserID: callerID}
	default:
		return nil
	}
}
