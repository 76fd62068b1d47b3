package blueprint

import (
	"time"

	"github.com/consite-dev/consite-go/internal/domain/project"
	"github.com/consite-dev/consite-go/internal/domain/user"
)

type Status string

const (
	StatusDraft    Status = "Draft"
	StatusApproved Status = "Approved"
	StatusArchived Status = "Archived"
)

type Blueprint struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"size:100;not null" json:"title"`
	ProjectID    uint   `gorm:"not null;index" json:"projectId"`
	UploadedByID uint   `gorm:"not null" json:"uploadedById"`
	Version      string `gorm:"size:20;default:'1.0'" json:"version"`
	ImageURL     string `gorm:"size:500;not null" json:"imageUrl"`
	Status       Status `gorm:"type:blueprint_status;default:'Draft'" json:"status"`
	Notes        string `gorm:"size:1000" json:"notes"`

	Project    *project.Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	UploadedBy *user.User       `gorm:"foreignKey:UploadedByID" json:"uploadedBy,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UploadBlueprintInput struct {
	Title     string `json:"title" binding:"required"`
	ProjectID uint   `json:"projectId" binding:"required"`
	ImageURL  string `json:"imageUrl" binding:"required"`
	Version   string `json:"version"`
	Notes     string `json:"notes"`
}
