package domain

import (
	"io"
	"strings"
)

// Membership selects how a registering account is attached to an organization.
// It is implemented only by CreateOrganization and JoinOrganization.
type Membership interface {
	membership()
}

// CreateOrganization registers the account as owner of a brand-new organization.
type CreateOrganization struct {
	Name         string
	Slug         string
	BillingEmail string
	Plan         Plan
}

// JoinOrganization registers the account inside an existing organization and department.
type JoinOrganization struct {
	OrganizationID string
	DepartmentID   string
	Role           Role
}

func (CreateOrganization) membership() {}
func (JoinOrganization) membership()   {}

// AvatarFile is an avatar received with a registration request.
type AvatarFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadedBlob is what the blob store returns for a stored file.
type UploadedBlob struct {
	ID  string
	URL string
}

type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Avatar     *AvatarFile
	Membership Membership
}

// Normalize trims and lower-cases identity fields and validates the input,
// including the selected membership variant.
func (in RegisterInput) Normalize() (RegisterInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)

	if in.Name == "" {
		return in, invalid("name", "required")
	}
	if !IsValidEmail(in.Email) {
		return in, invalid("email", "malformed")
	}
	if len(in.Password) < MinPasswordLength {
		return in, invalid("password", "shorter than 8 characters")
	}

	switch m := in.Membership.(type) {
	case CreateOrganization:
		m.Name = strings.TrimSpace(m.Name)
		m.Slug = strings.TrimSpace(m.Slug)
		m.BillingEmail = NormalizeEmail(m.BillingEmail)
		if m.Name == "" {
			return in, invalid("organization name", "required")
		}
		if m.BillingEmail == "" {
			return in, invalid("billing email", "required")
		}
		if !m.Plan.Valid() {
			return in, invalid("plan", "must be one of free, pro, platinum")
		}
		in.Membership = m
	case JoinOrganization:
		m.OrganizationID = strings.TrimSpace(m.OrganizationID)
		m.DepartmentID = strings.TrimSpace(m.DepartmentID)
		if m.OrganizationID == "" {
			return in, invalid("organization", "required")
		}
		if m.DepartmentID == "" {
			return in, invalid("department", "required")
		}
		if !m.Role.Joinable() {
			return in, invalid("role", "must be one of admin, manager, employee")
		}
		in.Membership = m
	default:
		return in, invalid("membership", "unknown registration mode")
	}

	return in, nil
}
