package task

import (
	"errors"

	"github.com/consite-dev/consite-go/internal/domain/user"
)

var (
	ErrInvalidStatus     = errors.New("unknown task status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrVerifyNotAllowed  = errors.New("only engineers, site managers or admins can verify a task")
)

// forward is the only legal successor of each status. The lifecycle is strictly
// forward-only: Pending -> In Progress -> Completed -> Verified.
var forward = map[Status]Status{
	StatusPending:    StatusInProgress,
	StatusInProgress: StatusCompleted,
	StatusCompleted:  StatusVerified,
}

var verifierRoles = map[string]bool{
	string(user.RoleEngineer):    true,
	string(user.RoleSiteManager): true,
	string(user.RoleAdmin):       true,
}

// CheckTransition validates a status change requested by the given role.
// A no-op (from == to) is always allowed.
func CheckTransition(from, to Status, role string) error {
	switch to {
	case StatusPending, StatusInProgress, StatusCompleted, StatusVerified:
	default:
		return ErrInvalidStatus
	}

	if from == to {
		return nil
	}
	if forward[from] != to {
		return ErrInvalidTransition
	}
	if to == StatusVerified && !verifierRoles[role] {
		return ErrVerifyNotAllowed
	}
	return nil
}

// workerMutable are the only fields an assignee may change on their own task.
var workerMutable = map[string]bool{
	"status":          true,
	"proofImages":     true,
	"completionNotes": true,
}

// FieldsAllowed reports whether every field in the update set is mutable by the
// given role. Non-worker roles that passed the route gate may touch any field.
func FieldsAllowed(role string, fields []string) (string, bool) {
	if role != string(user.RoleWorker) {
		return "", true
	}
	for _, f := range fields {
		if !workerMutable[f] {
			return f, false
		}
	}
	return "", true
}
