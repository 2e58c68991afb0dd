package mapper

import (
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/dto"
	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

func ToTaskItem(task domain.Task) dto.TaskItem {
	tags := task.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.TaskItem{
		ID:                   task.ID,
		Title:                task.Title,
		Description:          task.Description,
		ProjectID:            task.ProjectID,
		DepartmentID:         copyString(task.DepartmentID),
		AssigneeID:           copyString(task.AssigneeID),
		Status:               string(task.Status),
		Priority:             string(task.Priority),
		DueDate:              formatDatePtr(task.DueDate),
		Attachments:          ToAttachmentItems(task.Attachments),
		Tags:                 tags,
		TimeEstimatedMinutes: task.TimeEstimatedMinutes,
		TimeSpentMinutes:     task.TimeSpentMinutes,
		CommentsCount:        task.CommentsCount,
		CreatedAt:            formatTime(task.CreatedAt),
		UpdatedAt:            formatTime(task.UpdatedAt),
	}
}

func ToAttachmentItems(attachments []domain.Attachment) []dto.Attachment {
	items := make([]dto.Attachment, 0, len(attachments))
	for _, a := range attachments {
		items = append(items, dto.Attachment{
			File:       a.File,
			URL:        a.URL,
			MimeType:   a.MimeType,
			Size:       a.Size,
			UploadedBy: copyString(a.UploadedBy),
		})
	}
	return items
}

func ToDomainAttachments(items []dto.Attachment) []domain.Attachment {
	attachments := make([]domain.Attachment, 0, len(items))
	for _, item := range items {
		attachments = append(attachments, domain.Attachment{
			File:       item.File,
			URL:        item.URL,
			MimeType:   item.MimeType,
			Size:       item.Size,
			UploadedBy: copyString(item.UploadedBy),
		})
	}
	return attachments
}
