package project

import "time"

// Project is a reference target for tasks, invoices and blueprints. It has no
// CRUD surface of its own.
type Project struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Location  string    `gorm:"size:200" json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
