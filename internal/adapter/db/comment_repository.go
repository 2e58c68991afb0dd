package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

const (
	commentColumns = `
  id, task_id, author_id, body, attachments, reply_to_id, is_deleted, deleted_at, edited, edited_at,
  time_estimated_minutes, time_spent_minutes, created_at, updated_at`

	insertCommentQuery = `
INSERT INTO comments (` + commentColumns + `
) VALUES (
  :id, :task_id, :author_id, :body, :attachments, :reply_to_id, 0, NULL, 0, NULL,
  :time_estimated_minutes, :time_spent_minutes, :created_at, :updated_at
)`

	getCommentQuery = `SELECT ` + commentColumns + ` FROM comments WHERE id = ?`

	getCommentForUpdateQuery = getCommentQuery + ` FOR UPDATE`

	markCommentDeletedQuery = `
UPDATE comments
SET is_deleted = 1, deleted_at = ?, updated_at = ?
WHERE id = ? AND is_deleted = 0`

	updateCommentBodyQuery = `
UPDATE comments
SET body = ?, edited = 1, edited_at = ?, updated_at = ?
WHERE id = ? AND is_deleted = 0`

	listLiveCommentsByTaskQuery = `SELECT ` + commentColumns + `
FROM comments
WHERE task_id = ? AND is_deleted = 0
ORDER BY created_at DESC, id DESC`
)

type CommentRepository struct {
	q sqlx.ExtContext
}

type commentRow struct {
	ID                   string                          `db:"id"`
	TaskID               string                          `db:"task_id"`
	AuthorID             string                          `db:"author_id"`
	Body                 string                          `db:"body"`
	Attachments          jsonColumn[[]domain.Attachment] `db:"attachments"`
	ReplyToID            sql.NullString                  `db:"reply_to_id"`
	IsDeleted            bool                            `db:"is_deleted"`
	DeletedAt            sql.NullTime                    `db:"deleted_at"`
	Edited               bool                            `db:"edited"`
	EditedAt             sql.NullTime                    `db:"edited_at"`
	TimeEstimatedMinutes int                             `db:"time_estimated_minutes"`
	TimeSpentMinutes     int                             `db:"time_spent_minutes"`
	CreatedAt            time.Time                       `db:"created_at"`
	UpdatedAt            time.Time                       `db:"updated_at"`
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(q sqlx.ExtContext) *CommentRepository {
	return &CommentRepository{q: q}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if comment.ID == "" {
		comment.ID = newID()
	}
	now := nowFunc()
	comment.CreatedAt, comment.UpdatedAt = now, now

	_, err := sqlx.NamedExecContext(ctx, r.q, insertCommentQuery, commentRow{
		ID:                   comment.ID,
		TaskID:               comment.TaskID,
		AuthorID:             comment.AuthorID,
		Body:                 comment.Body,
		Attachments:          jsonColumn[[]domain.Attachment]{V: comment.Attachments},
		ReplyToID:            nullString(comment.ReplyToID),
		TimeEstimatedMinutes: comment.TimeEstimatedMinutes,
		TimeSpentMinutes:     comment.TimeSpentMinutes,
		CreatedAt:            comment.CreatedAt,
		UpdatedAt:            comment.UpdatedAt,
	})
	return mapWriteError(err)
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (domain.Comment, error) {
	return r.get(ctx, getCommentQuery, id)
}

func (r *CommentRepository) GetForUpdate(ctx context.Context, id string) (domain.Comment, error) {
	return r.get(ctx, getCommentForUpdateQuery, id)
}

func (r *CommentRepository) get(ctx context.Context, query, id string) (domain.Comment, error) {
	var row commentRow
	if err := sqlx.GetContext(ctx, r.q, &row, query, id); err != nil {
		return domain.Comment{}, mapReadError(err, domain.ErrCommentNotFound)
	}
	return mapCommentRow(row), nil
}

func (r *CommentRepository) MarkDeleted(ctx context.Context, id string, at time.Time) (bool, error) {
	result, err := r.q.ExecContext(ctx, markCommentDeletedQuery, at.UTC(), nowFunc(), id)
	if err != nil {
		return false, mapWriteError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *CommentRepository) UpdateBody(ctx context.Context, id string, body string, at time.Time) error {
	result, err := r.q.ExecContext(ctx, updateCommentBodyQuery, body, at.UTC(), nowFunc(), id)
	if err != nil {
		return mapWriteError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) ListLiveByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	var rows []commentRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, listLiveCommentsByTaskQuery, taskID); err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, mapCommentRow(row))
	}
	return comments, nil
}

func mapCommentRow(row commentRow) domain.Comment {
	comment := domain.Comment{
		ID:                   row.ID,
		TaskID:               row.TaskID,
		AuthorID:             row.AuthorID,
		Body:                 row.Body,
		Attachments:          row.Attachments.V,
		ReplyToID:            stringPtr(row.ReplyToID),
		IsDeleted:            row.IsDeleted,
		DeletedAt:            timePtr(row.DeletedAt),
		Edited:               row.Edited,
		EditedAt:             timePtr(row.EditedAt),
		TimeEstimatedMinutes: row.TimeEstimatedMinutes,
		TimeSpentMinutes:     row.TimeSpentMinutes,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
	if comment.Attachments == nil {
		comment.Attachments = []domain.Attachment{}
	}
	return comment
}
