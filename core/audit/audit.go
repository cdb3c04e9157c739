// Package audit exposes the security activity log and login history.
package audit

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/listing"
)

// TotalLabel is the number of recorded events, shown in list captions.
const TotalLabel = "45,892"

// Event statuses
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ActionChoices are matched as case-insensitive substrings of Event.Action.
var ActionChoices = []listing.Choice{
	{Value: listing.All, Label: "All Actions"},
	{Value: "login", Label: "Login"},
	{Value: "update", Label: "Updates"},
	{Value: "delete", Label: "Deletions"},
}

type (
	Event struct {
		ID        int    `json:"id"`
		User      string `json:"user"`
		Action    string `json:"action"`
		IP        string `json:"ip"`
		Location  string `json:"location"`
		Device    string `json:"device"`
		Timestamp string `json:"timestamp"`
		Status    string `json:"status"`
	}

	Login struct {
		ID       int    `json:"id"`
		User     string `json:"user"`
		Email    string `json:"email"`
		Time     string `json:"time"`
		IP       string `json:"ip"`
		Device   string `json:"device"`
		Location string `json:"location"`
	}
)

func (e Event) Failed() bool { return e.Status == StatusFailed }

type QueryFilter struct {
	Search string `query:"search" json:"search"`
	Action string `query:"action" json:"action"`
}

func (f *QueryFilter) Clean() {
	f.Action = core.CleanString(f.Action)
}

// Spec matches Search against user, action and IP. Action is a substring filter:
// "login" selects both "Login" and "Failed Login".
func (f QueryFilter) Spec() listing.Spec[Event] {
	return listing.Spec[Event]{
		Query: f.Search,
		Search: []listing.Field[Event]{
			func(e Event) string { return e.User },
			func(e Event) string { return e.Action },
			func(e Event) string { return e.IP },
		},
		Facets: []listing.Facet[Event]{
			{Field: func(e Event) string { return e.Action }, Selected: f.Action, Match: listing.Contains},
		},
	}
}

type (
	Repository interface {
		QueryAllEvents(ctx context.Context) ([]Event, error)
		QueryLoginHistory(ctx context.Context) ([]Login, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) (listing.Page[Event], error) {
	events, err := svc.repo.QueryAllEvents(ctx)
	if err != nil {
		return listing.Page[Event]{}, errors.Wrap(err, "querying events")
	}
	filter.Clean()
	return listing.NewPage(listing.Filter(events, filter.Spec()), TotalLabel), nil
}

func (svc *Service) LoginHistory(ctx context.Context) ([]Login, error) {
	logins, err := svc.repo.QueryLoginHistory(ctx)
	return logins, errors.Wrap(err, "querying login history")
}
