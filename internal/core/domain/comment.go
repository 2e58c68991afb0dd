package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const MaxCommentBodyLength = 2000

type Comment struct {
	ID                   string
	TaskID               string
	AuthorID             string
	Body                 string
	Attachments          []Attachment
	ReplyToID            *string
	IsDeleted            bool
	DeletedAt            *time.Time
	Edited               bool
	EditedAt             *time.Time
	TimeEstimatedMinutes int
	TimeSpentMinutes     int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type CreateCommentInput struct {
	TaskID               string
	AuthorID             string
	Body                 string
	Attachments          []Attachment
	ReplyToID            *string
	TimeEstimatedMinutes int
	TimeSpentMinutes     int
}

// NormalizeCommentBody trims body and enforces the length bounds.
func NormalizeCommentBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", invalid("body", "required")
	}
	if utf8.RuneCountInString(body) > MaxCommentBodyLength {
		return "", invalid("body", "longer than 2000 characters")
	}
	return body, nil
}

func NewComment(in CreateCommentInput) (Comment, error) {
	body, err := NormalizeCommentBody(in.Body)
	if err != nil {
		return Comment{}, err
	}
	if strings.TrimSpace(in.TaskID) == "" {
		return Comment{}, invalid("task", "required")
	}
	if strings.TrimSpace(in.AuthorID) == "" {
		return Comment{}, invalid("author", "required")
	}
	if in.TimeEstimatedMinutes < 0 || in.TimeSpentMinutes < 0 {
		return Comment{}, invalid("time", "must not be negative")
	}

	attachments := in.Attachments
	if attachments == nil {
		attachments = []Attachment{}
	}

	return Comment{
		TaskID:               in.TaskID,
		AuthorID:             in.AuthorID,
		Body:                 body,
		Attachments:          attachments,
		ReplyToID:            in.ReplyToID,
		TimeEstimatedMinutes: in.TimeEstimatedMinutes,
		TimeSpentMinutes:     in.TimeSpentMinutes,
	}, nil
}
