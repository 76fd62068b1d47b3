package invoice

import (
	"errors"
	"time"

	"github.com/consite-dev/consite-go/internal/domain/project"
	"github.com/consite-dev/consite-go/internal/domain/user"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
	StatusPaid     Status = "Paid"
)

var (
	ErrInvalidStatus     = errors.New("unknown invoice status")
	ErrInvalidTransition = errors.New("invalid invoice status transition")
)

// transitions: Pending -> Approved | Rejected, Approved -> Paid.
// Rejected and Paid are terminal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusPaid},
}

// CheckTransition validates a status change; a no-op is always allowed.
func CheckTransition(from, to Status) error {
	switch to {
	case StatusPending, StatusApproved, StatusRejected, StatusPaid:
	default:
		return ErrInvalidStatus
	}

	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return ErrInvalidTransition
}

type Invoice struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:100;not null" json:"title"`
	Amount       float64   `gorm:"not null" json:"amount"`
	ContractorID uint      `gorm:"not null;index" json:"contractorId"`
	ProjectID    *uint     `json:"projectId"`
	Status       Status    `gorm:"type:invoice_status;default:'Pending'" json:"status"`
	Description  string    `gorm:"size:500" json:"description"`
	ImageURL     string    `gorm:"size:500;not null" json:"imageUrl"`
	Date         time.Time `gorm:"autoCreateTime" json:"date"`

	Contractor *user.User       `gorm:"foreignKey:ContractorID" json:"contractor,omitempty"`
	Project    *project.Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateInvoiceInput struct {
	Title       string  `json:"title" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl" binding:"required"`
	ProjectID   *uint   `json:"projectId"`
}

type UpdateInvoiceStatusInput struct {
	Status string `json:"status" binding:"required"`
}
