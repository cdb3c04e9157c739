// Package mockdb is the in-memory store behind every repository. It is seeded on Open and
// never written afterwards: every "save" in the apps is simulated.
package mockdb

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/admin"
	"github.com/trezcool/masterly/core/audit"
	"github.com/trezcool/masterly/core/certificate"
	"github.com/trezcool/masterly/core/course"
	"github.com/trezcool/masterly/core/learner"
	"github.com/trezcool/masterly/core/submission"
	"github.com/trezcool/masterly/core/user"
)

// ErrClosed is returned, as a core shutdown error, by every repository once the DB is closed.
var ErrClosed = core.NewShutdownError("mockdb: database is closed")

type (
	DB struct {
		conn        *conn
		user        *userTable
		course      *courseTable
		certificate *certificateTable
		submission  *submissionTable
		audit       *auditTable
		learner     *learnerTable
		admin       *adminTable
	}

	userTable struct {
		sync.RWMutex
		*conn
		rows []user.User
	}

	courseTable struct {
		sync.RWMutex
		*conn
		rows     []course.Course
		content  map[int][]course.Module // editable module tree, by course id
		versions map[int][]course.Version
	}

	certificateTable struct {
		sync.RWMutex
		*conn
		rows []certificate.Certificate
	}

	submissionTable struct {
		sync.RWMutex
		*conn
		rows []submission.Submission
	}

	auditTable struct {
		sync.RWMutex
		*conn
		events []audit.Event
		logins []audit.Login
	}

	learnerTable struct {
		sync.RWMutex
		*conn
		home         learner.Home
		enrollments  []learner.Enrollment
		projects     []learner.Project
		challenges   []learner.Challenge
		certificates learner.Certificates
		lesson       learner.Lesson
	}

	adminTable struct {
		sync.RWMutex
		*conn
		overview      admin.Overview
		analytics     admin.Analytics
		announcements []admin.Announcement
		notifications []admin.NotificationEvent
		templates     []admin.NotificationTemplate
		roles         []admin.Role
		team          []admin.TeamMember
		settings      admin.PlatformSettings
	}
)

// Open returns a freshly seeded database.
func Open() (*DB, error) {
	db := &DB{
		user:        &userTable{rows: seedUsers()},
		course:      &courseTable{rows: seedCourses(), content: seedCourseContent(), versions: seedVersions()},
		certificate: &certificateTable{rows: seedCertificates()},
		submission:  &submissionTable{rows: seedSubmissions()},
		audit:       &auditTable{events: seedEvents(), logins: seedLogins()},
		learner:     seedLearner(),
		admin:       seedAdmin(),
	}
	db.conn = &conn{}
	for _, c := range []**conn{
		&db.user.conn, &db.course.conn, &db.certificate.conn, &db.submission.conn,
		&db.audit.conn, &db.learner.conn, &db.admin.conn,
	} {
		*c = db.conn
	}
	return db, nil
}

// Close makes every repository fail with ErrClosed. It is safe to call more than once.
func (db *DB) Close() error {
	db.conn.closed.Store(true)
	return nil
}

// Repositories groups one repository per table.
type Repositories struct {
	User        user.Repository
	Course      course.Repository
	Certificate certificate.Repository
	Submission  submission.Repository
	Audit       audit.Repository
	Learner     learner.Repository
	Admin       admin.Repository
}

func NewRepositories(db *DB) Repositories {
	return Repositories{
		User:        NewUserRepository(db),
		Course:      NewCourseRepository(db),
		Certificate: NewCertificateRepository(db),
		Submission:  NewSubmissionRepository(db),
		Audit:       NewAuditRepository(db),
		Learner:     NewLearnerRepository(db),
		Admin:       NewAdminRepository(db),
	}
}

// cloneRows copies the table so callers never share its backing array.
func cloneRows[T any](rows []T) []T {
	return append(make([]T, 0, len(rows)), rows...)
}

// conn is shared by every table of a DB.
type conn struct {
	closed atomic.Bool
}

func (c *conn) check(ctx context.Context) error {
	if c.closed.Load() {
		return ErrClosed
	}
	return ctx.Err()
}
