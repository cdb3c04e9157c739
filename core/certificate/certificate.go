package certificate

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/listing"
)

// Statuses
const (
	StatusActive  = "active"
	StatusPending = "pending"
	StatusRevoked = "revoked"
)

// TotalLabel is the number of certificates ever issued, shown in list captions.
const TotalLabel = "3,847"

var ErrNotFound = errors.New("certificate not found")

var (
	StatusChoices = []listing.Choice{
		{Value: listing.All, Label: "All Status"},
		{Value: StatusActive, Label: "Active"},
		{Value: StatusPending, Label: "Pending"},
		{Value: StatusRevoked, Label: "Revoked"},
	}
	CourseChoices = []listing.Choice{
		{Value: listing.All, Label: "All Courses"},
		{Value: "AI Fundamentals", Label: "AI Fundamentals"},
		{Value: "Prompt Engineering", Label: "Prompt Engineering"},
		{Value: "AI for Freelancers", Label: "AI for Freelancers"},
	}
)

type Certificate struct {
	ID         string `json:"id"`
	User       string `json:"user"`
	Email      string `json:"email"`
	Course     string `json:"course"`
	IssuedDate string `json:"issued_date"`
	Status     string `json:"status"`
	Grade      string `json:"grade"`
	Verified   bool   `json:"verified"`
}

type QueryFilter struct {
	Search string `query:"search" json:"search"`
	Status string `query:"status" json:"status"`
	Course string `query:"course" json:"course"`
}

func (f *QueryFilter) Clean() {
	f.Status = core.CleanString(f.Status)
	f.Course = core.CleanString(f.Course)
}

// Spec matches Search against the holder and the certificate id.
func (f QueryFilter) Spec() listing.Spec[Certificate] {
	return listing.Spec[Certificate]{
		Query: f.Search,
		Search: []listing.Field[Certificate]{
			func(c Certificate) string { return c.User },
			func(c Certificate) string { return c.ID },
		},
		Facets: []listing.Facet[Certificate]{
			{Field: func(c Certificate) string { return c.Status }, Selected: f.Status},
			{Field: func(c Certificate) string { return c.Course }, Selected: f.Course},
		},
	}
}

type (
	Repository interface {
		QueryAllCertificates(ctx context.Context) ([]Certificate, error)
		GetCertificate(ctx context.Context, id string) (Certificate, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the certificate identified by id, ignoring case, or ErrNotFound.
func (svc *Service) Get(ctx context.Context, id string) (Certificate, error) {
	id = core.CleanString(id)
	if id == "" {
		return Certificate{}, ErrNotFound
	}
	return svc.repo.GetCertificate(ctx, id)
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) (listing.Page[Certificate], error) {
	certs, err := svc.repo.QueryAllCertificates(ctx)
	if err != nil {
		return listing.Page[Certificate]{}, errors.Wrap(err, "querying certificates")
	}
	filter.Clean()
	return listing.NewPage(listing.Filter(certs, filter.Spec()), TotalLabel), nil
}
