package mockdb

import (
	"context"
	"strings"

	"github.com/trezcool/masterly/core/audit"
	"github.com/trezcool/masterly/core/certificate"
	"github.com/trezcool/masterly/core/submission"
)

type certificateRepository struct {
	db *certificateTable
}

var _ certificate.Repository = (*certificateRepository)(nil) // interface compliance check

func NewCertificateRepository(db *DB) certificate.Repository {
	return &certificateRepository{db: db.certificate}
}

func (repo *certificateRepository) QueryAllCertificates(ctx context.Context) ([]certificate.Certificate, error) {
	if err := repo.db.check(ctx); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return cloneRows(repo.db.rows), nil
}

func (repo *certificateRepository) GetCertificate(ctx context.Context, id string) (certificate.Certificate, error) {
	if err := repo.db.check(ctx); err != nil {
		return certificate.Certificate{}, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, c := range repo.db.rows {
		if strings.EqualFold(c.ID, id) {
			return c, nil
		}
	}
	return certificate.Certificate{}, certificate.ErrNotFound
}

type submissionRepository struct {
	db *submissionTable
}

var _ submission.Repository = (*submissionRepository)(nil) // interface compliance check

func NewSubmissionRepository(db *DB) submission.Repository {
	return &submissionRepository{db: db.submission}
}

func (repo *submissionRepository) QueryAllSubmissions(ctx context.Context) ([]submission.Submission, error) {
	if err := repo.db.check(ctx); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return cloneRows(repo.db.rows), nil
}

type auditRepository struct {
	db *auditTable
}

var _ audit.Repository = (*auditRepository)(nil) // interface compliance check

func NewAuditRepository(db *DB) audit.Repository {
	return &auditRepository{db: db.audit}
}

func (repo *auditRepository) QueryAllEvents(ctx context.Context) ([]audit.Event, error) {
	if err := repo.db.check(ctx); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return cloneRows(repo.db.events), nil
}

func (repo *auditRepository) QueryLoginHistory(ctx context.Context) ([]audit.Login, error) {
	if err := repo.db.check(ctx); err != nil {
		return nil, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	return cloneRows(repo.db.logins), nil
}
