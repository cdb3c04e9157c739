package learner

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/masterly/core/listing"
)

type (
	Repository interface {
		GetHome(ctx context.Context) (Home, error)
		QueryEnrollments(ctx context.Context) ([]Enrollment, error)
		QueryProjects(ctx context.Context) ([]Project, error)
		QueryChallenges(ctx context.Context) ([]Challenge, error)
		GetCertificates(ctx context.Context) (Certificates, error)
		// GetLesson returns the player view of a lesson. Every id resolves.
		GetLesson(ctx context.Context, id string) (Lesson, error)
	}

	Service struct {
		repo Repository
	}

	// TabCount labels a tab with the number of items it holds.
	TabCount struct {
		Key   string `json:"key"`
		Count int    `json:"count"`
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Home(ctx context.Context) (Home, error) {
	home, err := svc.repo.GetHome(ctx)
	return home, errors.Wrap(err, "getting dashboard home")
}

func courseTab(tab string) listing.Spec[Enrollment] {
	status := listing.Facet[Enrollment]{Field: func(e Enrollment) string { return e.Status }, Selected: tab}
	if tab != TabInProgress && tab != TabCompleted {
		status.Selected = listing.All
	}
	return listing.Spec[Enrollment]{Facets: []listing.Facet[Enrollment]{status}}
}

// Courses returns the enrollments shown under tab; unknown tabs show all.
func (svc *Service) Courses(ctx context.Context, tab string) ([]Enrollment, []TabCount, error) {
	all, err := svc.repo.QueryEnrollments(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "querying enrollments")
	}
	counts := make([]TabCount, 0, len(Tabs))
	for _, t := range Tabs {
		counts = append(counts, TabCount{Key: t, Count: len(listing.Filter(all, courseTab(t)))})
	}
	return listing.Filter(all, courseTab(tab)), counts, nil
}

func projectTab(tab string) listing.Spec[Project] {
	var state listing.Facet[Project]
	switch tab {
	case TabInProgress:
		state = listing.Facet[Project]{
			Field:    func(p Project) string { return boolString(p.InProgress()) },
			Selected: "true",
		}
	case TabCompleted:
		state = listing.Facet[Project]{Field: func(p Project) string { return p.Status }, Selected: StatusCompleted}
	}
	return listing.Spec[Project]{Facets: []listing.Facet[Project]{state}}
}

// Projects returns the projects shown under tab; the in-progress tab includes not-started projects.
func (svc *Service) Projects(ctx context.Context, tab string) ([]Project, []TabCount, error) {
	all, err := svc.repo.QueryProjects(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "querying projects")
	}
	counts := make([]TabCount, 0, len(Tabs))
	for _, t := range Tabs {
		counts = append(counts, TabCount{Key: t, Count: len(listing.Filter(all, projectTab(t)))})
	}
	return listing.Filter(all, projectTab(tab)), counts, nil
}

func (svc *Service) Challenges(ctx context.Context) ([]Challenge, error) {
	challenges, err := svc.repo.QueryChallenges(ctx)
	return challenges, errors.Wrap(err, "querying challenges")
}

func (svc *Service) Certificates(ctx context.Context) (Certificates, error) {
	certs, err := svc.repo.GetCertificates(ctx)
	return certs, errors.Wrap(err, "getting certificates")
}

func (svc *Service) Lesson(ctx context.Context, id string) (Lesson, error) {
	lesson, err := svc.repo.GetLesson(ctx, id)
	return lesson, errors.Wrap(err, "getting lesson")
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
