package mapper

import (
	"github.com/Abdullah-yafai/project-managment/internal/adapter/http/dto"
	"github.com/Abdullah-yafai/project-managment/internal/core/domain"
)

func ToOrganizationItem(org domain.Organization) dto.OrganizationItem {
	return dto.OrganizationItem{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		Plan:         string(org.Plan),
		BillingEmail: copyString(org.BillingEmail),
		Settings: dto.OrganizationSettings{
			Timezone: org.Settings.Timezone,
			Language: org.Settings.Language,
		},
		CreatedAt: formatTime(org.CreatedAt),
		UpdatedAt: formatTime(org.UpdatedAt),
	}
}

func ToOrganizationSummaryItems(orgs []domain.OrganizationSummary) []dto.OrganizationSummaryItem {
	items := make([]dto.OrganizationSummaryItem, 0, len(orgs))
	for _, org := range orgs {
		items = append(items, dto.OrganizationSummaryItem{
			ID:   org.ID,
			Name: org.Name,
			Slug: org.Slug,
			Plan: string(org.Plan),
		})
	}
	return items
}

func ToDepartmentItem(department domain.Department) dto.DepartmentItem {
	return dto.DepartmentItem{
		ID:             department.ID,
		Name:           department.Name,
		OrganizationID: department.OrganizationID,
		ManagerID:      copyString(department.ManagerID),
		CreatedAt:      formatTime(department.CreatedAt),
		UpdatedAt:      formatTime(department.UpdatedAt),
	}
}

func ToDepartmentSummaryItems(departments []domain.DepartmentSummary) []dto.DepartmentSummaryItem {
	items := make([]dto.DepartmentSummaryItem, 0, len(departments))
	for _, department := range departments {
		items = append(items, dto.DepartmentSummaryItem{ID: department.ID, Name: department.Name})
	}
	return items
}
