// Package admin holds the read models of the admin console pages that are not plain lists.
package admin

// Analytics tabs
const (
	AnalyticsOverview = "overview"
	AnalyticsLearning = "learning"
	AnalyticsGrowth   = "growth"
	AnalyticsAI       = "ai"
)

var (
	TimeRanges = []string{"24h", "7d", "30d", "90d"}
	Languages  = []string{"English (US)", "Spanish", "French", "German", "Japanese"}
	Timezones  = []string{
		"UTC-08:00 Pacific Time",
		"UTC-05:00 Eastern Time",
		"UTC+00:00 London",
		"UTC+01:00 Central European",
		"UTC+09:00 Tokyo",
	}
)

type (
	Stat struct {
		Label  string `json:"label"`
		Value  string `json:"value"`
		Change string `json:"change,omitempty"`
		Up     bool   `json:"up"`
	}

	// Point is one labelled value of a chart series.
	Point struct {
		Label string  `json:"label"`
		Value float64 `json:"value"`
	}

	Series struct {
		Name   string  `json:"name"`
		Points []Point `json:"points"`
	}

	Chart struct {
		Title  string   `json:"title"`
		Series []Series `json:"series"`
	}

	Activity struct {
		ID     int    `json:"id"`
		User   string `json:"user"`
		Action string `json:"action"`
		Target string `json:"target"`
		Time   string `json:"time"`
	}

	Alert struct {
		ID      int    `json:"id"`
		Type    string `json:"type"` // warning, success, info
		Message string `json:"message"`
		Time    string `json:"time"`
	}

	Overview struct {
		Stats    []Stat     `json:"stats"`
		Charts   []Chart    `json:"charts"`
		Activity []Activity `json:"activity"`
		Alerts   []Alert    `json:"alerts"`
	}

	// Analytics is keyed by tab.
	Analytics struct {
		Stats  []Stat             `json:"stats"`
		Charts map[string][]Chart `json:"charts"`
	}

	Announcement struct {
		ID           int     `json:"id"`
		Title        string  `json:"title"`
		Content      string  `json:"content"`
		Audience     string  `json:"audience"` // all, course
		TargetCourse string  `json:"target_course,omitempty"`
		Status       string  `json:"status"` // sent, scheduled, draft
		SentAt       string  `json:"sent_at,omitempty"`
		ScheduledFor string  `json:"scheduled_for,omitempty"`
		Recipients   int     `json:"recipients"`
		OpenRate     float64 `json:"open_rate"`
	}

	// NotificationTemplate is a reusable message, sent by email, in-app or both.
	NotificationTemplate struct {
		Name     string `json:"name"`
		Channel  string `json:"channel"`
		LastUsed string `json:"last_used"`
	}

	NotificationEvent struct {
		ID           int    `json:"id"`
		User         string `json:"user"`
		Action       string `json:"action"`
		Announcement string `json:"announcement"`
		Time         string `json:"time"`
	}

	Grant struct {
		Action  string `json:"action"`
		Allowed bool   `json:"allowed"`
	}

	Permission struct {
		Section string  `json:"section"`
		Label   string  `json:"label"`
		Grants  []Grant `json:"grants"`
	}

	Role struct {
		ID          int          `json:"id"`
		Name        string       `json:"name"`
		Description string       `json:"description"`
		Users       int          `json:"users"`
		Permissions []Permission `json:"permissions"`
	}

	TeamMember struct {
		ID         int    `json:"id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Role       string `json:"role"`
		LastActive string `json:"last_active"`
	}

	Toggle struct {
		Key     string `json:"key"`
		Label   string `json:"label"`
		Enabled bool   `json:"enabled"`
	}

	PlatformSettings struct {
		PlatformName     string   `json:"platform_name" form:"platform_name" validate:"required"`
		Tagline          string   `json:"tagline" form:"tagline"`
		PrimaryColor     string   `json:"primary_color" form:"primary_color" validate:"required,hexcolor"`
		SecondaryColor   string   `json:"secondary_color" form:"secondary_color" validate:"required,hexcolor"`
		Language         string   `json:"language" form:"language"`
		Timezone         string   `json:"timezone" form:"timezone"`
		FromName         string   `json:"from_name" form:"from_name" validate:"required"`
		FromEmail        string   `json:"from_email" form:"from_email" validate:"required,email"`
		ReplyToEmail     string   `json:"reply_to_email" form:"reply_to_email" validate:"omitempty,email"`
		CertificateTitle string   `json:"certificate_title" form:"certificate_title" validate:"required"`
		IssuerName       string   `json:"issuer_name" form:"issuer_name" validate:"required"`
		Features         []Toggle `json:"features" form:"-"`
		Verification     []Toggle `json:"verification" form:"-"`
	}
)

// Allowed reports whether the role grants action on section.
func (r Role) Allowed(section, action string) bool {
	for _, p := range r.Permissions {
		if p.Section != section {
			continue
		}
		for _, g := range p.Grants {
			if g.Action == action {
				return g.Allowed
			}
		}
	}
	return false
}

// Max returns the largest value of the series, for scaling bars.
func (s Series) Max() float64 {
	var max float64
	for _, p := range s.Points {
		if p.Value > max {
			max = p.Value
		}
	}
	return max
}
