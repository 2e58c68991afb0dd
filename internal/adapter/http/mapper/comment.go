package mapper

import (
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/dto"
	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	return dto.CommentItem{
		ID:                   comment.ID,
		TaskID:               comment.TaskID,
		AuthorID:             comment.AuthorID,
		Body:                 comment.Body,
		Attachments:          ToAttachmentItems(comment.Attachments),
		ReplyToID:            copyString(comment.ReplyToID),
		IsDeleted:            comment.IsDeleted,
		DeletedAt:            formatTimePtr(comment.DeletedAt),
		Edited:               comment.Edited,
		EditedAt:             formatTimePtr(comment.EditedAt),
		TimeEstimatedMinutes: comment.TimeEstimatedMinutes,
		TimeSpentMinutes:     comment.TimeSpentMinutes,
		CreatedAt:            formatTime(comment.CreatedAt),
		UpdatedAt:            formatTime(comment.UpdatedAt),
	}
}
