package domain

import (
	"strings"
	"time"
)

type Department struct {
	ID             string
	Name           string
	OrganizationID string
	ManagerID      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DepartmentSummary is the projection used when listing an organization's departments.
type DepartmentSummary struct {
	ID   string
	Name string
}

type CreateDepartmentInput struct {
	Name           string
	OrganizationID string
	ManagerID      *string
}

func NewDepartment(in CreateDepartmentInput) (Department, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Department{}, invalid("department name", "required")
	}
	if strings.TrimSpace(in.OrganizationID) == "" {
		return Department{}, invalid("organization", "required")
	}
	return Department{
		Name:           name,
		OrganizationID: in.OrganizationID,
		ManagerID:      in.ManagerID,
	}, nil
}
