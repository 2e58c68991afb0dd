package domain

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusBlocked    TaskStatus = "blocked"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusBlocked, TaskStatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Attachment struct {
	File       string  `json:"file"`
	URL        string  `json:"url"`
	MimeType   string  `json:"mimeType"`
	Size       int64   `json:"size"`
	UploadedBy *string `json:"uploadedBy,omitempty"`
}

type Task struct {
	ID                   string
	Title                string
	Description          string
	ProjectID            string
	DepartmentID         *string
	AssigneeID           *string
	Status               TaskStatus
	Priority             Priority
	DueDate              *time.Time
	Attachments          []Attachment
	Tags                 []string
	TimeEstimatedMinutes int
	TimeSpentMinutes     int
	CommentsCount        int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type CreateTaskInput struct {
	Title                string
	Description          string
	ProjectID            string
	DepartmentID         *string
	AssigneeID           *string
	Status               TaskStatus
	Priority             Priority
	DueDate              *time.Time
	Attachments          []Attachment
	Tags                 []string
	TimeEstimatedMinutes int
	TimeSpentMinutes     int
}

// NewTask builds a task with a zero comments count; the count is only ever
// changed through comment mutations.
func NewTask(in CreateTaskInput) (Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Task{}, invalid("title", "required")
	}
	if strings.TrimSpace(in.ProjectID) == "" {
		return Task{}, invalid("project", "required")
	}
	if in.TimeEstimatedMinutes < 0 || in.TimeSpentMinutes < 0 {
		return Task{}, invalid("time", "must not be negative")
	}

	t := Task{
		Title:                title,
		Description:          strings.TrimSpace(in.Description),
		ProjectID:            in.ProjectID,
		DepartmentID:         in.DepartmentID,
		AssigneeID:           in.AssigneeID,
		Status:               in.Status,
		Priority:             in.Priority,
		DueDate:              in.DueDate,
		Attachments:          in.Attachments,
		TimeEstimatedMinutes: in.TimeEstimatedMinutes,
		TimeSpentMinutes:     in.TimeSpentMinutes,
	}
	if t.Status == "" {
		t.Status = TaskStatusTodo
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if !t.Status.Valid() {
		return Task{}, invalid("status", "must be one of todo, in-progress, blocked, done")
	}
	if !t.Priority.Valid() {
		return Task{}, invalid("priority", "must be one of low, medium, high")
	}

	for _, tag := range in.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			t.Tags = append(t.Tags, tag)
		}
	}
	if t.Attachments == nil {
		t.Attachments = []Attachment{}
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}

	return t, nil
}

// CounterDrift reports a task whose stored comments count differs from the
// number of live comments referencing it.
type CounterDrift struct {
	TaskID string
	Stored int
	Actual int
}
