package mockdb

import (
	"context"

	"github.com/trezcool/masterly/core/learner"
)

type learnerRepository struct {
	db *learnerTable
}

var _ learner.Repository = (*learnerRepository)(nil) // interface compliance check

func NewLearnerRepository(db *DB) learner.Repository {
	return &learnerRepository{db: db.learner}
}

func (repo *learnerRepository) GetHome(ctx context.Context) (learner.Home, error) {
	if err := repo.db.check(ctx); err != nil {
		return learner.Home{}, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.home, nil
}

func (repo *learnerRepository) QueryEnrollments(ctx context.Context) ([]learner.Enrollment, error) {
	if err := repo.db.check(ctx); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return cloneRows(repo.db.enrollments), nil
}

func (repo *learnerRepository) QueryProjects(ctx context.Context) ([]learner.Project, error) {
	if err := repo.db.check(ctx); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return cloneRows(repo.db.projects), nil
}

func (repo *learnerRepository) QueryChallenges(ctx context.Context) ([]learner.Challenge, error) {
	if err := repo.db.check(ctx); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return cloneRows(repo.db.challenges), nil
}

func (repo *learnerRepository) GetCertificates(ctx context.Context) (learner.Certificates, error) {
	if err := repo.db.check(ctx); err != nil {
		return learner.Certificates{}, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.certificates, nil
}

// GetLesson serves the same player content for every id, tagged with the requested id.
func (repo *learnerRepository) GetLesson(ctx context.Context, id string) (learner.Lesson, error) {
	if err := repo.db.check(ctx); err != nil {
		return learner.Lesson{}, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()

	lesson := repo.db.lesson
	lesson.ID = id
	lesson.Outline = cloneRows(lesson.Outline)
	for _, ref := range lesson.Outline {
		if ref.ID == id {
			return lesson, nil // already in the outline
		}
	}
	for i := range lesson.Outline {
		if lesson.Outline[i].ID == repo.db.lesson.ID {
			lesson.Outline[i].ID = id
		}
	}
	return lesson, nil
}
