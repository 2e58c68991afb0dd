package domain

import (
	"regexp"
	"strings"
	"time"
)

type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Joinable reports whether r may be requested when joining an existing organization.
func (r Role) Joinable() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

type User struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	OrganizationID string
	DepartmentID   *string
	Role           Role
	AvatarURL      *string
	IsActive       bool
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Public returns a copy of u without credential material.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
