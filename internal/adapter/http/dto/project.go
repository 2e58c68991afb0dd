package dto

type ProjectItem struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	OrganizationID string   `json:"organization_id"`
	DepartmentID   *string  `json:"department_id,omitempty"`
	Description    string   `json:"description,omitempty"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	Visibility     string   `json:"visibility"`
	MemberIDs      []string `json:"member_ids"`
	StartDate      *string  `json:"start_date,omitempty"`
	EndDate        *string  `json:"end_date,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

type CreateProjectRequest struct {
	Name         string   `json:"name" binding:"required,max=160"`
	Slug         string   `json:"slug" binding:"omitempty,max=160"`
	DepartmentID *string  `json:"department_id"`
	Description  string   `json:"description" binding:"omitempty,max=65535"`
	Status       *string  `json:"status" binding:"omitempty,oneof=active archived completed"`
	Priority     *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Visibility   *string  `json:"visibility" binding:"omitempty,oneof=private org public"`
	MemberIDs    []string `json:"member_ids"`
	StartDate    *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate      *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}
