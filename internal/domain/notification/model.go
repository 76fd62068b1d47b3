package notification

import (
	"errors"
	"time"

	"github.com/consite-dev/consite-go/internal/domain/task"
	"github.com/consite-dev/consite-go/internal/domain/user"
)

type Type string

const (
	TypeTaskAssigned    Type = "task_assigned"
	TypeTaskUpdated     Type = "task_updated"
	TypeTaskCompleted   Type = "task_completed"
	TypePaymentReceived Type = "payment_received"
	TypeSystem          Type = "system"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

const (
	MaxTitleLen   = 100
	MaxMessageLen = 500
)

var (
	ErrInvalidType    = errors.New("unknown notification type")
	ErrTitleTooLong   = errors.New("notification title exceeds 100 characters")
	ErrMessageTooLong = errors.New("notification message exceeds 500 characters")
)

func ValidType(t Type) bool {
	switch t {
	case TypeTaskAssigned, TypeTaskUpdated, TypeTaskCompleted, TypePaymentReceived, TypeSystem:
		return true
	}
	return false
}

type Notification struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	RecipientID   uint     `gorm:"not null;index:idx_recipient_read" json:"recipientId"`
	SenderID      uint     `gorm:"not null" json:"senderId"`
	Type          Type     `gorm:"type:notification_type;not null" json:"type"`
	Title         string   `gorm:"size:100;not null" json:"title"`
	Message       string   `gorm:"size:500;not null" json:"message"`
	RelatedTaskID *uint    `json:"relatedTaskId"`
	IsRead        bool     `gorm:"default:false;index:idx_recipient_read" json:"isRead"`
	Priority      Priority `gorm:"type:notification_priority;default:'medium'" json:"priority"`

	Sender      *user.User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	RelatedTask *task.Task `gorm:"foreignKey:RelatedTaskID" json:"relatedTask,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListQuery struct {
	Page       int
	Limit      int
	UnreadOnly bool
}
