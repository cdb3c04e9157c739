// Package learner holds the read models of the student dashboard.
package learner

// Course statuses
const (
	StatusInProgress = "in-progress"
	StatusNotStarted = "not-started"
	StatusCompleted  = "completed"
)

// Dashboard tabs
const (
	TabAll        = "all"
	TabInProgress = "in-progress"
	TabCompleted  = "completed"
)

var Tabs = []string{TabAll, TabInProgress, TabCompleted}

type (
	Profile struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Plan      string `json:"plan"`
	}

	Stat struct {
		Label string `json:"label"`
		Value string `json:"value"`
	}

	Enrollment struct {
		CourseSlug       string `json:"course_slug"`
		Title            string `json:"title"`
		Description      string `json:"description"`
		Image            string `json:"image"`
		Progress         int    `json:"progress"` // percent
		TotalLessons     int    `json:"total_lessons"`
		CompletedLessons int    `json:"completed_lessons"`
		LastAccessed     string `json:"last_accessed"`
		Status           string `json:"status"`
		CompletedDate    string `json:"completed_date,omitempty"`
		HasCertificate   bool   `json:"has_certificate"`
	}

	CurrentCourse struct {
		Enrollment
		CurrentLesson   string `json:"current_lesson"`
		CurrentLessonID string `json:"current_lesson_id"`
		TimeRemaining   string `json:"time_remaining"`
	}

	Recommendation struct {
		Title    string `json:"title"`
		Duration string `json:"duration"`
		Course   string `json:"course"`
	}

	Achievement struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	Project struct {
		ID            int    `json:"id"`
		Title         string `json:"title"`
		Course        string `json:"course"`
		Description   string `json:"description"`
		Difficulty    string `json:"difficulty"`
		Status        string `json:"status"`
		SubmittedDate string `json:"submitted_date,omitempty"`
		Grade         string `json:"grade,omitempty"`
		Feedback      string `json:"feedback,omitempty"`
		Deadline      string `json:"deadline,omitempty"`
	}

	Challenge struct {
		ID           int    `json:"id"`
		Title        string `json:"title"`
		Description  string `json:"description"`
		Participants int    `json:"participants"`
		DaysLeft     int    `json:"days_left"`
		Reward       string `json:"reward"`
	}

	EarnedCertificate struct {
		ID            int      `json:"id"`
		Title         string   `json:"title"`
		IssueDate     string   `json:"issue_date"`
		CertificateID string   `json:"certificate_id"`
		Skills        []string `json:"skills"`
		Verified      bool     `json:"verified"`
	}

	PendingCertificate struct {
		ID                  int    `json:"id"`
		Title               string `json:"title"`
		Progress            int    `json:"progress"`
		TotalLessons        int    `json:"total_lessons"`
		CompletedLessons    int    `json:"completed_lessons"`
		EstimatedCompletion string `json:"estimated_completion"`
	}

	LockedCertificate struct {
		ID          int    `json:"id"`
		Title       string `json:"title"`
		Requirement string `json:"requirement"`
	}

	Certificates struct {
		Earned     []EarnedCertificate  `json:"earned"`
		InProgress []PendingCertificate `json:"in_progress"`
		Locked     []LockedCertificate  `json:"locked"`
	}

	TranscriptLine struct {
		Time string `json:"time"`
		Text string `json:"text"`
	}

	Resource struct {
		Name string `json:"name"`
		Size string `json:"size"`
	}

	LessonRef struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Duration  string `json:"duration"`
		Completed bool   `json:"completed"`
	}

	Lesson struct {
		ID          string           `json:"id"`
		Title       string           `json:"title"`
		Duration    string           `json:"duration"`
		Description string           `json:"description"`
		Course      string           `json:"course"`
		CourseSlug  string           `json:"course_slug"`
		Module      string           `json:"module"`
		Progress    int              `json:"progress"`
		Transcript  []TranscriptLine `json:"transcript"`
		Resources   []Resource       `json:"resources"`
		Outline     []LessonRef      `json:"outline"`
		Prev        *LessonRef       `json:"prev,omitempty"`
		Next        *LessonRef       `json:"next,omitempty"`
	}

	// Home is everything shown on the dashboard landing page.
	Home struct {
		Profile         Profile          `json:"profile"`
		Stats           []Stat           `json:"stats"`
		Current         CurrentCourse    `json:"current"`
		Recommendations []Recommendation `json:"recommendations"`
		Achievements    []Achievement    `json:"achievements"`
	}
)

// InProgress reports whether the project is still open: started or not.
func (p Project) InProgress() bool {
	return p.Status == StatusInProgress || p.Status == StatusNotStarted
}

// IsCurrent reports whether ref points at lesson.
func (ref LessonRef) IsCurrent(lesson Lesson) bool { return ref.ID == lesson.ID }
