package echoweb

import (
	"github.com/pkg/errors"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/account"
	"github.com/trezcool/masterly/core/admin"
	"github.com/trezcool/masterly/core/audit"
	"github.com/trezcool/masterly/core/certificate"
	"github.com/trezcool/masterly/core/course"
	"github.com/trezcool/masterly/core/learner"
	"github.com/trezcool/masterly/core/submission"
	"github.com/trezcool/masterly/core/user"
	"github.com/trezcool/masterly/storage/database/mockdb"
)

// NewOptions wires every service on a freshly seeded database.
func NewOptions(conf *core.Config, logger core.Logger, mailSvc core.EmailService) (*Options, error) {
	db, err := mockdb.Open()
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	repos := mockdb.NewRepositories(db)
	validate, translator := core.NewValidator()
	userSvc := user.NewService(repos.User)

	return &Options{
		Conf:       conf,
		Logger:     logger,
		Validate:   validate,
		Translator: translator,
		DB:         db,

		UserSvc:        userSvc,
		CourseSvc:      course.NewService(repos.Course),
		CertificateSvc: certificate.NewService(repos.Certificate),
		SubmissionSvc:  submission.NewService(repos.Submission),
		AuditSvc:       audit.NewService(repos.Audit),
		LearnerSvc:     learner.NewService(repos.Learner),
		AdminSvc:       admin.NewService(repos.Admin),
		AccountSvc:     account.NewService(validate, core.NewSubmitter(conf.SubmitDelay), userSvc, mailSvc, logger),
	}, nil
}
