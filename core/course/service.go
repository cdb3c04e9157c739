package course

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/listing"
)

var ErrNotFound = errors.New("course not found")

type (
	Repository interface {
		// QueryAllCourses returns every course, published or not, in display order.
		QueryAllCourses(ctx context.Context) ([]Course, error)
		GetCourseBySlug(ctx context.Context, slug string) (Course, error)
		// GetCourseContent returns the editable module tree of a course.
		GetCourseContent(ctx context.Context, id int) (Course, error)
		QueryVersions(ctx context.Context, id int) ([]Version, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Query applies filter to all courses. The caption total is the number of matches.
func (svc *Service) Query(ctx context.Context, filter QueryFilter) (listing.Page[Course], error) {
	courses, err := svc.repo.QueryAllCourses(ctx)
	if err != nil {
		return listing.Page[Course]{}, errors.Wrap(err, "querying courses")
	}
	filter.Clean()
	return listing.NewPage(listing.Filter(courses, filter.Spec()), ""), nil
}

// Catalog returns the courses listed on the public site: those with a slug.
func (svc *Service) Catalog(ctx context.Context) ([]Course, error) {
	courses, err := svc.repo.QueryAllCourses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	catalog := make([]Course, 0, len(courses))
	for _, c := range courses {
		if c.Slug != "" {
			catalog = append(catalog, c)
		}
	}
	return catalog, nil
}

// Get returns the catalog course identified by slug, or ErrNotFound.
func (svc *Service) Get(ctx context.Context, slug string) (Course, error) {
	slug = core.CleanString(slug, true /* lower */)
	if slug == "" {
		return Course{}, ErrNotFound
	}
	return svc.repo.GetCourseBySlug(ctx, slug)
}

func (svc *Service) Content(ctx context.Context, id int) (Course, []Version, error) {
	c, err := svc.repo.GetCourseContent(ctx, id)
	if err != nil {
		return Course{}, nil, err
	}
	versions, err := svc.repo.QueryVersions(ctx, id)
	if err != nil {
		return Course{}, nil, errors.Wrap(err, "querying versions")
	}
	return c, versions, nil
}
