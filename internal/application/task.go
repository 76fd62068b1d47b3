package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/consite-dev/consite-go/internal/domain/notification"
	"github.com/consite-dev/consite-go/internal/domain/task"
	"github.com/consite-dev/consite-go/internal/domain/user"
	"github.com/consite-dev/consite-go/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrNotTaskAssignee = errors.New("not authorized to update this task")
	ErrFieldNotAllowed = errors.New("field not allowed for this role")
)

type TaskService struct {
	Repos         *repository.Repos
	notifications *NotificationService
}

func NewTaskService(repos *repository.Repos, notifications *NotificationService) *TaskService {
	return &TaskService{Repos: repos, notifications: notifications}
}

func (s *TaskService) ListTasks(role string, callerID uint) ([]task.Task, error) {
	return s.Repos.Task.ListTasks(task.ScopeForRole(role, callerID))
}

// CreateTask persists the task, then fires a single assignment notification.
// The notification outcome never affects the create result.
func (s *TaskService) CreateTask(caller user.User, input task.CreateTaskInput) (*task.Task, error) {
	priority := task.PriorityMedium
	if input.Priority != "" {
		priority = task.Priority(input.Priority)
	}

	t := task.Task{
		Title:        input.Title,
		Description:  input.Description,
		AssignedToID: input.AssignedTo,
		AssignedByID: caller.ID,
		ProjectID:    input.ProjectID,
		Status:       task.StatusPending,
		Priority:     priority,
		DueDate:      input.DueDate,
		SiteLocation: input.SiteLocation,
	}
	if err := s.Repos.Task.CreateTask(&t); err != nil {
		return nil, err
	}

	s.notifications.Notify(
		t.AssignedToID,
		caller.ID,
		notification.TypeTaskAssigned,
		"New Task Assigned",
		fmt.Sprintf("You have been assigned a new task: %s", t.Title),
		&t.ID,
		notification.Priority(strings.ToLower(string(t.Priority))),
	)

	return &t, nil
}

// UpdateTask applies a partial update under the per-role field allow-list and
// the forward-only status transition table.
func (s *TaskService) UpdateTask(caller user.User, id uint, input task.UpdateTaskInput) (*task.Task, error) {
	t, err := s.Repos.Task.FindTaskByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if caller.Role == string(user.RoleWorker) && t.AssignedToID != caller.ID {
		return nil, ErrNotTaskAssignee
	}

	if field, ok := task.FieldsAllowed(caller.Role, input.Fields()); !ok {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotAllowed, field)
	}

	if input.Status != nil {
		if err := task.CheckTransition(t.Status, task.Status(*input.Status), caller.Role); err != nil {
			return nil, err
		}
		t.Status = task.Status(*input.Status)
	}
	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.AssignedTo != nil {
		t.AssignedToID = *input.AssignedTo
	}
	if input.Priority != nil {
		t.Priority = task.Priority(*input.Priority)
	}
	if input.DueDate != nil {
		t.DueDate = input.DueDate
	}
	if input.SiteLocation != nil {
		t.SiteLocation = *input.SiteLocation
	}
	if input.ProofImages != nil {
		raw, err := json.Marshal(input.ProofImages)
		if err != nil {
			return nil, err
		}
		t.ProofImages = raw
	}
	if input.CompletionNotes != nil {
		t.CompletionNotes = *input.CompletionNotes
	}

	// Preloaded relations must not be written back alongside the update.
	t.AssignedTo = nil
	t.AssignedBy = nil
	t.Project = nil

	if err := s.Repos.Task.SaveTask(t); err != nil {
		return nil, err
	}
	return t, nil
}
