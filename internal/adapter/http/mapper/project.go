package mapper

import (
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/dto"
	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

func ToProjectItem(project domain.Project) dto.ProjectItem {
	members := project.MemberIDs
	if members == nil {
		members = []string{}
	}
	return dto.ProjectItem{
		ID:             project.ID,
		Name:           project.Name,
		Slug:           project.Slug,
		OrganizationID: project.OrganizationID,
		DepartmentID:   copyString(project.DepartmentID),
		Description:    project.Description,
		Status:         string(project.Status),
		Priority:       string(project.Priority),
		Visibility:     string(project.Visibility),
		MemberIDs:      members,
		StartDate:      formatDatePtr(project.StartDate),
		EndDate:        formatDatePtr(project.EndDate),
		CreatedAt:      formatTime(project.CreatedAt),
		UpdatedAt:      formatTime(project.UpdatedAt),
	}
}
