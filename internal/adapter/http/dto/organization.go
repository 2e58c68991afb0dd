package dto

type OrganizationSettings struct {
	Timezone string `json:"timezone"`
	Language string `json:"language"`
}

type OrganizationItem struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Slug         string               `json:"slug"`
	Plan         string               `json:"plan"`
	BillingEmail *string              `json:"billing_email,omitempty"`
	Settings     OrganizationSettings `json:"settings"`
	CreatedAt    string               `json:"created_at"`
	UpdatedAt    string               `json:"updated_at"`
}

type OrganizationSummaryItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Plan string `json:"plan"`
}

type DepartmentItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	OrganizationID string  `json:"organization_id"`
	ManagerID      *string `json:"manager_id,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type DepartmentSummaryItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateDepartmentRequest struct {
	Name           string  `json:"name" binding:"required,max=120"`
	OrganizationID string  `json:"organization_id" binding:"required"`
	ManagerID      *string `json:"manager_id"`
}
