package dto

type Attachment struct {
	File       string  `json:"file" binding:"required"`
	URL        string  `json:"url" binding:"required,url"`
	MimeType   string  `json:"mime_type"`
	Size       int64   `json:"size" binding:"gte=0"`
	UploadedBy *string `json:"uploaded_by,omitempty"`
}

type TaskItem struct {
	ID                   string       `json:"id"`
	Title                string       `json:"title"`
	Description          string       `json:"description,omitempty"`
	ProjectID            string       `json:"project_id"`
	DepartmentID         *string      `json:"department_id,omitempty"`
	AssigneeID           *string      `json:"assignee_id,omitempty"`
	Status               string       `json:"status"`
	Priority             string       `json:"priority"`
	DueDate              *string      `json:"due_date,omitempty"`
	Attachments          []Attachment `json:"attachments"`
	Tags                 []string     `json:"tags"`
	TimeEstimatedMinutes int          `json:"time_estimated_minutes"`
	TimeSpentMinutes     int          `json:"time_spent_minutes"`
	CommentsCount        int          `json:"comments_count"`
	CreatedAt            string       `json:"created_at"`
	UpdatedAt            string       `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title                string       `json:"title" binding:"required,max=255"`
	Description          string       `json:"description" binding:"omitempty,max=65535"`
	ProjectID            string       `json:"project_id" binding:"required"`
	DepartmentID         *string      `json:"department_id"`
	AssigneeID           *string      `json:"assignee_id"`
	Status               *string      `json:"status" binding:"omitempty,oneof=todo in-progress blocked done"`
	Priority             *string      `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate              *string      `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Attachments          []Attachment `json:"attachments" binding:"omitempty,dive"`
	Tags                 []string     `json:"tags"`
	TimeEstimatedMinutes int          `json:"time_estimated_minutes" binding:"gte=0"`
	TimeSpentMinutes     int          `json:"time_spent_minutes" binding:"gte=0"`
}
