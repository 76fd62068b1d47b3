package task

import (
	"time"

	"github.com/consite-dev/consite-go/internal/domain/project"
	"github.com/consite-dev/consite-go/internal/domain/user"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusVerified   Status = "Verified"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

func ValidPriority(p string) bool {
	switch Priority(p) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Task struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"size:100;not null" json:"title"`
	Description  string         `gorm:"size:500;not null" json:"description"`
	AssignedToID uint           `gorm:"not null;index" json:"assignedToId"`
	AssignedByID uint           `gorm:"not null" json:"assignedById"`
	ProjectID    *uint          `gorm:"index" json:"projectId"`
	Status       Status         `gorm:"type:task_status;default:'Pending'" json:"status"`
	Priority     Priority       `gorm:"type:task_priority;default:'Medium'" json:"priority"`
	DueDate      *time.Time     `json:"dueDate"`
	SiteLocation string         `gorm:"size:200;not null" json:"siteLocation"`
	ProofImages  datatypes.JSON `json:"proofImages"`
	// CompletionNotes is filled by the assignee when closing out the task.
	CompletionNotes string `gorm:"size:1000" json:"completionNotes"`

	AssignedTo *user.User       `gorm:"foreignKey:AssignedToID" json:"assignedTo,omitempty"`
	AssignedBy *user.User       `gorm:"foreignKey:AssignedByID" json:"assignedBy,omitempty"`
	Project    *project.Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
