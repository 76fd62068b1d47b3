package task

import "time"

type CreateTaskInput struct {
	Title        string     `json:"title" binding:"required,max=100"`
	Description  string     `json:"description" binding:"required,max=500"`
	AssignedTo   uint       `json:"assignedTo" binding:"required"`
	Priority     string     `json:"priority" binding:"omitempty,oneof=Low Medium High Urgent"`
	DueDate      *time.Time `json:"dueDate"`
	SiteLocation string     `json:"siteLocation" binding:"required"`
	ProjectID    *uint      `json:"projectId"`
}

// UpdateTaskInput carries a partial update; nil pointers mean "leave as is".
type UpdateTaskInput struct {
	Title           *string    `json:"title" binding:"omitempty,max=100"`
	Description     *string    `json:"description" binding:"omitempty,max=500"`
	AssignedTo      *uint      `json:"assignedTo"`
	Status          *string    `json:"status"`
	Priority        *string    `json:"priority" binding:"omitempty,oneof=Low Medium High Urgent"`
	DueDate         *time.Time `json:"dueDate"`
	SiteLocation    *string    `json:"siteLocation"`
	ProofImages     []string   `json:"proofImages"`
	CompletionNotes *string    `json:"completionNotes"`
}

// Fields names the fields present in the update, for the per-role allow-list.
func (in *UpdateTaskInput) Fields() []string {
	var fields []string
	if in.Title != nil {
		fields = append(fields, "title")
	}
	if in.Description != nil {
		fields = append(fields, "description")
	}
	if in.AssignedTo != nil {
		fields = append(fields, "assignedTo")
	}
	if in.Status != nil {
		fields = append(fields, "status")
	}
	if in.Priority != nil {
		fields = append(fields, "priority")
	}
	if in.DueDate != nil {
		fields = append(fields, "dueDate")
	}
	if in.SiteLocation != nil {
		fields = append(fields, "siteLocation")
	}
	if in.ProofImages != nil {
		fields = append(fields, "proofImages")
	}
	if in.CompletionNotes != nil {
		fields = append(fields, "completionNotes")
	}
	return fields
}
