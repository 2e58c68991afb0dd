package dto

type RegisterRequest struct {
	Name     string `form:"name" json:"name" binding:"required,max=120"`
	Email    string `form:"email" json:"email" binding:"required,max=254"`
	Password string `form:"password" json:"password" binding:"required,max=72"`
	Mode     string `form:"mode" json:"mode" binding:"required,oneof=create-organization join-organization"`

	OrganizationName string `form:"organization_name" json:"organization_name" binding:"omitempty,max=120"`
	OrganizationSlug string `form:"organization_slug" json:"organization_slug" binding:"omitempty,max=120"`
	BillingEmail     string `form:"billing_email" json:"billing_email" binding:"omitempty,max=254"`
	Plan             string `form:"plan" json:"plan"`

	OrganizationID string `form:"organization_id" json:"organization_id"`
	DepartmentID   string `form:"department_id" json:"department_id"`
	Role           string `form:"role" json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	OrganizationID string  `json:"organization_id"`
	DepartmentID   *string `json:"department_id,omitempty"`
	Role           string  `json:"role"`
	AvatarURL      *string `json:"avatar_url,omitempty"`
	IsActive       bool    `json:"is_active"`
	LastLoginAt    *string `json:"last_login_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type LoginResponse struct {
	User        UserItem `json:"user"`
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresAt   string   `json:"expires_at"`
}
