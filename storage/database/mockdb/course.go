package mockdb

import (
	"context"

	"github.com/trezcool/masterly/core/course"
)

type courseRepository struct {
	db *courseTable
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.course}
}

func (repo *courseRepository) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	if err := repo.db.check(ctx); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return cloneRows(repo.db.rows), nil
}

func (repo *courseRepository) GetCourseBySlug(ctx context.Context, slug string) (course.Course, error) {
	if err := repo.db.check(ctx); err != nil {
		return course.Course{}, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, c := range repo.db.rows {
		if c.Slug != "" && c.Slug == slug {
			return c, nil
		}
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) GetCourseContent(ctx context.Context, id int) (course.Course, error) {
	if err := repo.db.check(ctx); err != nil {
		return course.Course{}, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, c := range repo.db.rows {
		if c.ID != id {
			continue
		}
		if modules, ok := repo.db.content[id]; ok {
			c.Modules = cloneRows(modules)
		}
		return c, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) QueryVersions(ctx context.Context, id int) ([]course.Version, error) {
	if err := repo.db.check(ctx); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return cloneRows(repo.db.versions[id]), nil
}
