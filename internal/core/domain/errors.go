package domain

import (
	"errors"
	"fmt"
)

var (
	ErrConflict         = errors.New("already exists")
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	ErrValidation       = errors.New("validation failed")
	ErrAccountDisabled  = errors.New("account disabled")
	ErrAuthFailed       = errors.New("invalid credentials")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrUploadFailed     = errors.New("upload failed")
	ErrInternal         = errors.New("internal error")
)

var (
	ErrEmailTaken            = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrOrganizationSlugTaken = fmt.Errorf("%w: organization slug", ErrConflict)
	ErrDepartmentNameTaken   = fmt.Errorf("%w: department name in organization", ErrConflict)
	ErrProjectSlugTaken      = fmt.Errorf("%w: project slug in organization", ErrConflict)

	ErrOrganizationNotFound = fmt.Errorf("organization %w", ErrNotFound)
	ErrDepartmentNotFound   = fmt.Errorf("department %w", ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrProjectNotFound      = fmt.Errorf("project %w", ErrNotFound)
	ErrTaskNotFound         = fmt.Errorf("task %w", ErrNotFound)
	ErrCommentNotFound      = fmt.Errorf("comment %w", ErrNotFound)

	ErrDepartmentNotInOrganization = fmt.Errorf("%w: department does not belong to organization", ErrInvalidReference)
	ErrMemberNotInOrganization     = fmt.Errorf("%w: member does not belong to organization", ErrInvalidReference)
	ErrReplyOutsideTask            = fmt.Errorf("%w: reply target belongs to another task", ErrInvalidReference)

	ErrCommentsCountUnderflow = fmt.Errorf("%w: comments count would become negative", ErrInternal)
)

// ValidationError names the offending field. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
