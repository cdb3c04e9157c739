package mockdb

import (
	"context"

	"github.com/trezcool/masterly/core/admin"
)

type adminRepository struct {
	db *adminTable
}

var _ admin.Repository = (*adminRepository)(nil) // interface compliance check

func NewAdminRepository(db *DB) admin.Repository {
	return &adminRepository{db: db.admin}
}

func (repo *adminRepository) GetOverview(ctx context.Context) (admin.Overview, error) {
	if err := repo.db.check(ctx); err != nil {
		return admin.Overview{}, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.overview, nil
}

func (repo *adminRepository) GetAnalytics(ctx context.Context) (admin.Analytics, error) {
	if err := repo.db.check(ctx); err != nil {
		return admin.Analytics{}, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.analytics, nil
}

func (repo *adminRepository) QueryAnnouncements(ctx context.Context) ([]admin.Announcement, error) {
	if err := repo.db.check(ctx); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return cloneRows(repo.db.announcements), nil
}

func (repo *adminRepository) QueryNotificationHistory(ctx context.Context) ([]admin.NotificationEvent, error) {
	if err := repo.db.check(ctx); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return cloneRows(repo.db.notifications), nil
}

func (repo *adminRepository) QueryNotificationTemplates(ctx context.Context) ([]admin.NotificationTemplate, error) {
	if err := repo.db.check(ctx); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return cloneRows(repo.db.templates), nil
}

func (repo *adminRepository) QueryRoles(ctx context.Context) ([]admin.Role, error) {
	if err := repo.db.check(ctx); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return cloneRows(repo.db.roles), nil
}

func (repo *adminRepository) QueryTeam(ctx context.Context) ([]admin.TeamMember, error) {
	if err := repo.db.check(ctx); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return cloneRows(repo.db.team), nil
}

func (repo *adminRepository) GetSettings(ctx context.Context) (admin.PlatformSettings, error) {
	if err := repo.db.check(ctx); err != nil {
		return admin.PlatformSettings{}, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()

	s := repo.db.settings
	s.Features = cloneRows(s.Features)
	s.Verification = cloneRows(s.Verification)
	return s, nil
}
