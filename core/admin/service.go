package admin

import (
	"context"

	"github.com/pkg/errors"
)

type (
	Repository interface {
		GetOverview(ctx context.Context) (Overview, error)
		GetAnalytics(ctx context.Context) (Analytics, error)
		QueryAnnouncements(ctx context.Context) ([]Announcement, error)
		QueryNotificationHistory(ctx context.Context) ([]NotificationEvent, error)
		QueryNotificationTemplates(ctx context.Context) ([]NotificationTemplate, error)
		QueryRoles(ctx context.Context) ([]Role, error)
		QueryTeam(ctx context.Context) ([]TeamMember, error)
		GetSettings(ctx context.Context) (PlatformSettings, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Overview(ctx context.Context) (Overview, error) {
	o, err := svc.repo.GetOverview(ctx)
	return o, errors.Wrap(err, "getting overview")
}

// Analytics returns the stats and the charts of tab. Unknown tabs fall back to the overview tab.
func (svc *Service) Analytics(ctx context.Context, tab string) ([]Stat, []Chart, error) {
	a, err := svc.repo.GetAnalytics(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "getting analytics")
	}
	charts, ok := a.Charts[tab]
	if !ok {
		charts = a.Charts[AnalyticsOverview]
	}
	return a.Stats, charts, nil
}

func (svc *Service) Announcements(ctx context.Context) ([]Announcement, error) {
	as, err := svc.repo.QueryAnnouncements(ctx)
	return as, errors.Wrap(err, "querying announcements")
}

func (svc *Service) NotificationHistory(ctx context.Context) ([]NotificationEvent, error) {
	evs, err := svc.repo.QueryNotificationHistory(ctx)
	return evs, errors.Wrap(err, "querying notification history")
}

func (svc *Service) NotificationTemplates(ctx context.Context) ([]NotificationTemplate, error) {
	ts, err := svc.repo.QueryNotificationTemplates(ctx)
	return ts, errors.Wrap(err, "querying notification templates")
}

func (svc *Service) Roles(ctx context.Context) ([]Role, error) {
	roles, err := svc.repo.QueryRoles(ctx)
	return roles, errors.Wrap(err, "querying roles")
}

func (svc *Service) Team(ctx context.Context) ([]TeamMember, error) {
	team, err := svc.repo.QueryTeam(ctx)
	return team, errors.Wrap(err, "querying team")
}

// Settings returns the current platform settings. Saving is simulated: nothing is ever stored.
func (svc *Service) Settings(ctx context.Context) (PlatformSettings, error) {
	s, err := svc.repo.GetSettings(ctx)
	return s, errors.Wrap(err, "getting settings")
}
