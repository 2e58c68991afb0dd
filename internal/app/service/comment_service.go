package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
	"github.com/Abdullah-yafai/project-managment/internal/core/ports"
)

type CommentService struct {
	uow ports.UnitOfWork
	now func() time.Time
}

func NewCommentService(uow ports.UnitOfWork) *CommentService {
	return &CommentService{uow: uow, now: utcNow}
}

// Create inserts the comment and increments the task's comments count in the
// same transaction.
func (s *CommentService) Create(ctx context.Context, in domain.CreateCommentInput) (domain.Comment, error) {
	comment, err := domain.NewComment(in)
	if err != nil {
		return domain.Comment{}, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx ports.Repositories) error {
		if err := tx.Tasks().LockForUpdate(ctx, comment.TaskID); err != nil {
			return err
		}
		if _, err := tx.Users().GetByID(ctx, comment.AuthorID); err != nil {
			return err
		}
		if comment.ReplyToID != nil {
			parent, err := tx.Comments().GetByID(ctx, *comment.ReplyToID)
			if err != nil {
				return err
			}
			if parent.TaskID != comment.TaskID {
				return domain.ErrReplyOutsideTask
			}
		}

		if err := tx.Comments().Create(ctx, &comment); err != nil {
			return err
		}
		return tx.Tasks().AdjustCommentsCount(ctx, comment.TaskID, 1)
	})
	if err != nil {
		return domain.Comment{}, err
	}

	return comment, nil
}

// SoftDelete flags the comment as deleted and decrements its task's comments
// count. Deleting an already deleted comment returns it unchanged.
func (s *CommentService) SoftDelete(ctx context.Context, commentID string) (domain.Comment, error) {
	var result domain.Comment

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx ports.Repositories) error {
		current, err := tx.Comments().GetByID(ctx, commentID)
		if err != nil {
			return err
		}
		if current.IsDeleted {
			result = current
			return nil
		}

		// Task row first, then the comment row, the same order Create uses.
		if err := tx.Tasks().LockForUpdate(ctx, current.TaskID); err != nil {
			return err
		}
		locked, err := tx.Comments().GetForUpdate(ctx, commentID)
		if err != nil {
			return err
		}
		if locked.IsDeleted {
			result = locked
			return nil
		}

		deletedAt := s.now()
		changed, err := tx.Comments().MarkDeleted(ctx, commentID, deletedAt)
		if err != nil {
			return err
		}
		if !changed {
			return fmt.Errorf("%w: comment %s changed while locked", domain.ErrInternal, commentID)
		}
		if err := tx.Tasks().AdjustCommentsCount(ctx, locked.TaskID, -1); err != nil {
			return err
		}

		locked.IsDeleted = true
		locked.DeletedAt = &deletedAt
		locked.UpdatedAt = deletedAt
		result = locked
		return nil
	})
	if err != nil {
		return domain.Comment{}, err
	}

	return result, nil
}

func (s *CommentService) Edit(ctx context.Context, commentID, body string) (domain.Comment, error) {
	body, err := domain.NormalizeCommentBody(body)
	if err != nil {
		return domain.Comment{}, err
	}

	editedAt := s.now()
	if err := s.uow.Comments().UpdateBody(ctx, commentID, body, editedAt); err != nil {
		return domain.Comment{}, err
	}
	return s.uow.Comments().GetByID(ctx, commentID)
}

func (s *CommentService) Get(ctx context.Context, commentID string) (domain.Comment, error) {
	return s.uow.Comments().GetByID(ctx, commentID)
}

func (s *CommentService) ListLive(ctx context.Context, taskID string) ([]domain.Comment, error) {
	if _, err := s.uow.Tasks().GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	return s.uow.Comments().ListLiveByTask(ctx, taskID)
}

var _ ports.CommentService = (*CommentService)(nil)
