package user

import (
	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/listing"
)

// Statuses
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// Plans
const (
	PlanFree       = "Free"
	PlanPro        = "Pro"
	PlanEnterprise = "Enterprise"
)

// TotalLabel is the platform-wide user count shown in list captions.
const TotalLabel = "50,247"

var (
	StatusChoices = []listing.Choice{
		{Value: listing.All, Label: "All Status"},
		{Value: StatusActive, Label: "Active"},
		{Value: StatusInactive, Label: "Inactive"},
		{Value: StatusSuspended, Label: "Suspended"},
	}
	PlanChoices = []listing.Choice{
		{Value: listing.All, Label: "All Plans"},
		{Value: PlanFree, Label: "Free"},
		{Value: PlanPro, Label: "Pro"},
		{Value: PlanEnterprise, Label: "Enterprise"},
	}
)

type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Status       string `json:"status"`
	Plan         string `json:"plan"`
	Progress     int    `json:"progress"` // percent
	Courses      int    `json:"courses"`
	Certificates int    `json:"certificates"`
	Joined       string `json:"joined"`
	LastActive   string `json:"last_active"`
	Country      string `json:"country"`
}

// Initials returns the first letter of each name part, e.g. "SC" for "Sarah Chen".
func (u User) Initials() string {
	return core.Initials(u.Name)
}

type QueryFilter struct {
	Search string `query:"search" json:"search"`
	Status string `query:"status" json:"status"`
	Plan   string `query:"plan" json:"plan"`
}

func (f *QueryFilter) Clean() {
	f.Status = core.CleanString(f.Status)
	f.Plan = core.CleanString(f.Plan)
}

// Spec matches Search against name and email, and Status and Plan exactly.
func (f QueryFilter) Spec() listing.Spec[User] {
	return listing.Spec[User]{
		Query: f.Search,
		Search: []listing.Field[User]{
			func(u User) string { return u.Name },
			func(u User) string { return u.Email },
		},
		Facets: []listing.Facet[User]{
			{Field: func(u User) string { return u.Status }, Selected: f.Status},
			{Field: func(u User) string { return u.Plan }, Selected: f.Plan},
		},
	}
}
