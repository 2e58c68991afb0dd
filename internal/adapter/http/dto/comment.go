package dto

type CommentItem struct {
	ID                   string       `json:"id"`
	TaskID               string       `json:"task_id"`
	AuthorID             string       `json:"author_id"`
	Body                 string       `json:"body"`
	Attachments          []Attachment `json:"attachments"`
	ReplyToID            *string      `json:"reply_to_id,omitempty"`
	IsDeleted            bool         `json:"is_deleted"`
	DeletedAt            *string      `json:"deleted_at,omitempty"`
	Edited               bool         `json:"edited"`
	EditedAt             *string      `json:"edited_at,omitempty"`
	TimeEstimatedMinutes int          `json:"time_estimated_minutes"`
	TimeSpentMinutes     int          `json:"time_spent_minutes"`
	CreatedAt            string       `json:"created_at"`
	UpdatedAt            string       `json:"updated_at"`
}

type CreateCommentRequest struct {
	Body                 string       `json:"body" binding:"required"`
	Attachments          []Attachment `json:"attachments" binding:"omitempty,dive"`
	ReplyToID            *string      `json:"reply_to_id"`
	TimeEstimatedMinutes int          `json:"time_estimated_minutes" binding:"gte=0"`
	TimeSpentMinutes     int          `json:"time_spent_minutes" binding:"gte=0"`
}

type EditCommentRequest struct {
	Body string `json:"body" binding:"required"`
}
