package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

const (
	insertTaskQuery = `
INSERT INTO tasks (
  id, title, description, project_id, department_id, assignee_id, status, priority, due_date,
  attachments, tags, time_estimated_minutes, time_spent_minutes, comments_count, created_at, updated_at
) VALUES (
  :id, :title, :description, :project_id, :department_id, :assignee_id, :status, :priority, :due_date,
  :attachments, :tags, :time_estimated_minutes, :time_spent_minutes, 0, :created_at, :updated_at
)`

	getTaskQuery = `
SELECT
  id, title, description, project_id, department_id, assignee_id, status, priority, due_date,
  attachments, tags, time_estimated_minutes, time_spent_minutes, comments_count, created_at, updated_at
FROM tasks
WHERE id = ?`

	lockTaskQuery = `SELECT id FROM tasks WHERE id = ? FOR UPDATE`

	incrementCommentsCountQuery = `
UPDATE tasks
SET comments_count = comments_count + ?, updated_at = ?
WHERE id = ?`

	decrementCommentsCountQuery = `
UPDATE tasks
SET comments_count = comments_count - ?, updated_at = ?
WHERE id = ? AND comments_count >= ?`

	taskExistsQuery = `SELECT EXISTS(SELECT 1 FROM tasks WHERE id = ?)`

	listCommentsCountDriftQuery = `
SELECT t.id AS task_id, t.comments_count AS stored, COUNT(c.id) AS actual
FROM tasks t
LEFT JOIN comments c ON c.task_id = t.id AND c.is_deleted = 0
GROUP BY t.id, t.comments_count
HAVING stored <> actual
ORDER BY t.id`

	recountCommentsQuery = `
UPDATE tasks
SET comments_count = (SELECT COUNT(*) FROM comments WHERE task_id = ? AND is_deleted = 0), updated_at = ?
WHERE id = ?`
)

type TaskRepository struct {
	q sqlx.ExtContext
}

type taskRow struct {
	ID                   string                          `db:"id"`
	Title                string                          `db:"title"`
	Description          sql.NullString                  `db:"description"`
	ProjectID            string                          `db:"project_id"`
	DepartmentID         sql.NullString                  `db:"department_id"`
	AssigneeID           sql.NullString                  `db:"assignee_id"`
	Status               string                          `db:"status"`
	Priority             string                          `db:"priority"`
	DueDate              sql.NullTime                    `db:"due_date"`
	Attachments          jsonColumn[[]domain.Attachment] `db:"attachments"`
	Tags                 jsonColumn[[]string]            `db:"tags"`
	TimeEstimatedMinutes int                             `db:"time_estimated_minutes"`
	TimeSpentMinutes     int                             `db:"time_spent_minutes"`
	CommentsCount        int                             `db:"comments_count"`
	CreatedAt            time.Time                       `db:"created_at"`
	UpdatedAt            time.Time                       `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(q sqlx.ExtContext) *TaskRepository {
	return &TaskRepository{q: q}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if task.ID == "" {
		task.ID = newID()
	}
	now := nowFunc()
	task.CreatedAt, task.UpdatedAt = now, now
	task.CommentsCount = 0

	_, err := sqlx.NamedExecContext(ctx, r.q, insertTaskQuery, taskRow{
		ID:                   task.ID,
		Title:                task.Title,
		Description:          sql.NullString{String: task.Description, Valid: task.Description != ""},
		ProjectID:            task.ProjectID,
		DepartmentID:         nullString(task.DepartmentID),
		AssigneeID:           nullString(task.AssigneeID),
		Status:               string(task.Status),
		Priority:             string(task.Priority),
		DueDate:              nullTime(task.DueDate),
		Attachments:          jsonColumn[[]domain.Attachment]{V: task.Attachments},
		Tags:                 jsonColumn[[]string]{V: task.Tags},
		TimeEstimatedMinutes: task.TimeEstimatedMinutes,
		TimeSpentMinutes:     task.TimeSpentMinutes,
		CreatedAt:            task.CreatedAt,
		UpdatedAt:            task.UpdatedAt,
	})
	return mapWriteError(err)
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, r.q, &row, getTaskQuery, id); err != nil {
		return domain.Task{}, mapReadError(err, domain.ErrTaskNotFound)
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) LockForUpdate(ctx context.Context, id string) error {
	var lockedID string
	if err := sqlx.GetContext(ctx, r.q, &lockedID, lockTaskQuery, id); err != nil {
		return mapReadError(err, domain.ErrTaskNotFound)
	}
	return nil
}

func (r *TaskRepository) AdjustCommentsCount(ctx context.Context, id string, delta int) error {
	if delta == 0 {
		return nil
	}

	var (
		result sql.Result
		err    error
	)
	if delta > 0 {
		result, err = r.q.ExecContext(ctx, incrementCommentsCountQuery, delta, nowFunc(), id)
	} else {
		result, err = r.q.ExecContext(ctx, decrementCommentsCountQuery, -delta, nowFunc(), id, -delta)
	}
	if err != nil {
		return mapWriteError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err := sqlx.GetContext(ctx, r.q, &exists, taskExistsQuery, id); err != nil {
		return err
	}
	if !exists {
		return domain.ErrTaskNotFound
	}
	return fmt.Errorf("task %s: %w", id, domain.ErrCommentsCountUnderflow)
}

func (r *TaskRepository) ListCommentsCountDrift(ctx context.Context) ([]domain.CounterDrift, error) {
	var rows []struct {
		TaskID string `db:"task_id"`
		Stored int    `db:"stored"`
		Actual int    `db:"actual"`
	}
	if err := sqlx.SelectContext(ctx, r.q, &rows, listCommentsCountDriftQuery); err != nil {
		return nil, err
	}

	drifts := make([]domain.CounterDrift, 0, len(rows))
	for _, row := range rows {
		drifts = append(drifts, domain.CounterDrift{TaskID: row.TaskID, Stored: row.Stored, Actual: row.Actual})
	}
	return drifts, nil
}

func (r *TaskRepository) RecountComments(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, recountCommentsQuery, id, nowFunc(), id)
	return mapWriteError(err)
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:                   row.ID,
		Title:                row.Title,
		Description:          row.Description.String,
		ProjectID:            row.ProjectID,
		DepartmentID:         stringPtr(row.DepartmentID),
		AssigneeID:           stringPtr(row.AssigneeID),
		Status:               domain.TaskStatus(row.Status),
		Priority:             domain.Priority(row.Priority),
		DueDate:              timePtr(row.DueDate),
		Attachments:          row.Attachments.V,
		Tags:                 row.Tags.V,
		TimeEstimatedMinutes: row.TimeEstimatedMinutes,
		TimeSpentMinutes:     row.TimeSpentMinutes,
		CommentsCount:        row.CommentsCount,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}

	if task.Attachments == nil {
		task.Attachments = []domain.Attachment{}
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}

	return task
}
