package domain

import (
	"strings"
	"time"
)

type Plan string

const (
	PlanFree     Plan = "free"
	PlanPro      Plan = "pro"
	PlanPlatinum Plan = "platinum"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanPro, PlanPlatinum:
		return true
	}
	return false
}

const (
	DefaultTimezone = "UTC"
	DefaultLanguage = "en"
)

type OrganizationSettings struct {
	Timezone string
	Language string
}

type Organization struct {
	ID           string
	Name         string
	Slug         string
	Plan         Plan
	BillingEmail *string
	Settings     OrganizationSettings
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrganizationSummary is the projection used by organization listings.
type OrganizationSummary struct {
	ID   string
	Name string
	Slug string
	Plan Plan
}

type CreateOrganizationInput struct {
	Name         string
	Slug         string
	Plan         Plan
	BillingEmail string
	Settings     *OrganizationSettings
}

// NewOrganization validates in and builds the organization to persist. The
// caller assigns ID and timestamps.
func NewOrganization(in CreateOrganizationInput) (Organization, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Organization{}, invalid("organization name", "required")
	}

	slug, err := ResolveSlug(strings.TrimSpace(in.Slug), name)
	if err != nil {
		return Organization{}, err
	}

	plan := in.Plan
	if plan == "" {
		plan = PlanFree
	}
	if !plan.Valid() {
		return Organization{}, invalid("plan", "must be one of free, pro, platinum")
	}

	org := Organization{
		Name: name,
		Slug: slug,
		Plan: plan,
		Settings: OrganizationSettings{
			Timezone: DefaultTimezone,
			Language: DefaultLanguage,
		},
	}

	if email := NormalizeEmail(in.BillingEmail); email != "" {
		if !IsValidEmail(email) {
			return Organization{}, invalid("billing email", "malformed")
		}
		org.BillingEmail = &email
	}

	if in.Settings != nil {
		if tz := strings.TrimSpace(in.Settings.Timezone); tz != "" {
			if _, err := time.LoadLocation(tz); err != nil {
				return Organization{}, invalid("timezone", "unknown")
			}
			org.Settings.Timezone = tz
		}
		if lang := strings.TrimSpace(in.Settings.Language); lang != "" {
			org.Settings.Language = lang
		}
	}

	return org, nil
}
