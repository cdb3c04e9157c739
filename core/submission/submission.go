package submission

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/listing"
)

// Statuses
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// TotalLabel is the number of submissions received, shown in list captions.
const TotalLabel = "1,247"

var StatusChoices = []listing.Choice{
	{Value: listing.All, Label: "All Status"},
	{Value: StatusPending, Label: "Pending"},
	{Value: StatusReviewed, Label: "Reviewed"},
	{Value: StatusApproved, Label: "Approved"},
	{Value: StatusRejected, Label: "Rejected"},
}

type Submission struct {
	ID        int    `json:"id"`
	User      string `json:"user"`
	Email     string `json:"email"`
	Project   string `json:"project"`
	Course    string `json:"course"`
	Submitted string `json:"submitted"`
	Status    string `json:"status"`
	Grade     string `json:"grade,omitempty"` // empty until graded
}

func (s Submission) IsGraded() bool { return s.Grade != "" }

type QueryFilter struct {
	Search string `query:"search" json:"search"`
	Status string `query:"status" json:"status"`
}

func (f *QueryFilter) Clean() {
	f.Status = core.CleanString(f.Status)
}

// Spec matches Search against the student and the project title.
func (f QueryFilter) Spec() listing.Spec[Submission] {
	return listing.Spec[Submission]{
		Query: f.Search,
		Search: []listing.Field[Submission]{
			func(s Submission) string { return s.User },
			func(s Submission) string { return s.Project },
		},
		Facets: []listing.Facet[Submission]{
			{Field: func(s Submission) string { return s.Status }, Selected: f.Status},
		},
	}
}

type (
	Repository interface {
		QueryAllSubmissions(ctx context.Context) ([]Submission, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) (listing.Page[Submission], error) {
	subs, err := svc.repo.QueryAllSubmissions(ctx)
	if err != nil {
		return listing.Page[Submission]{}, errors.Wrap(err, "querying submissions")
	}
	filter.Clean()
	return listing.NewPage(listing.Filter(subs, filter.Spec()), TotalLabel), nil
}

// Counts tallies the submissions by status.
func (svc *Service) Counts(ctx context.Context) (map[string]int, error) {
	subs, err := svc.repo.QueryAllSubmissions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying submissions")
	}
	counts := make(map[string]int, 4)
	for _, s := range subs {
		counts[s.Status]++
	}
	return counts, nil
}
