package views

import (
	"net/url"
	"strings"

	"github.com/dustin/go-humanize"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/trezcool/masterly/core/account"
	"github.com/trezcool/masterly/core/learner"
	"github.com/trezcool/masterly/core/uistate"
)

var (
	LessonTabs   = []string{"transcript", "resources", "discussion"}
	SettingsTabs = []string{"profile", "password", "notifications", "billing"}
)

var tabLabels = map[string]string{
	learner.TabAll:        "All",
	learner.TabInProgress: "In Progress",
	learner.TabCompleted:  "Completed",
	"transcript":          "Transcript",
	"resources":           "Resources",
	"discussion":          "Discussion",
	"announcements":       "Announcements",
	"history":             "History",
	"templates":           "Templates",
	"profile":             "Profile",
	"password":            "Password",
	"notifications":       "Notifications",
	"billing":             "Billing",
}

func tabLabel(key string) string {
	if l, ok := tabLabels[key]; ok {
		return l
	}
	return key
}

// countedLabel appends the tab count, e.g. "In Progress (2)".
func countedLabel(counts []learner.TabCount) func(string) string {
	return func(key string) string {
		for _, c := range counts {
			if c.Key == key {
				return tabLabel(key) + " (" + humanize.Comma(int64(c.Count)) + ")"
			}
		}
		return tabLabel(key)
	}
}

func DashboardHome(meta Meta, sh uistate.Shell, home learner.Home) g.Node {
	cur := home.Current
	return DashboardPage(meta, sh, home.Profile,
		pageHeader("Welcome back, "+home.Profile.FirstName+"!", "Continue your learning journey."),
		h.Div(h.Class("stat-grid"), g.Map(home.Stats, func(s learner.Stat) g.Node {
			return statCard(s.Label, s.Value, "", true)
		})),
		h.Section(h.Class("card continue"), reveal(),
			h.P(h.Class("eyebrow"), g.Text("Continue Learning")),
			h.H2(g.Text(cur.Title)),
			h.P(h.Class("muted"), g.Textf("Next: %s · %s remaining", cur.CurrentLesson, cur.TimeRemaining)),
			progressBar(cur.Progress),
			h.P(h.Class("muted"), g.Textf("%d of %d lessons completed", cur.CompletedLessons, cur.TotalLessons)),
			h.A(h.Class("btn btn-primary"), h.Href(sh.Link("/dashboard/lesson/"+cur.CurrentLessonID)), g.Text("Resume Lesson")),
		),
		h.Div(h.Class("columns"),
			h.Section(h.Class("card"), reveal(),
				h.H2(g.Text("Recommended for you")),
				h.Ul(g.Map(home.Recommendations, func(r learner.Recommendation) g.Node {
					return h.Li(h.Strong(g.Text(r.Title)), h.Br(), h.Span(h.Class("muted"), g.Text(r.Course+" · "+r.Duration)))
				})),
			),
			h.Section(h.Class("card"), reveal(),
				h.H2(g.Text("Recent achievements")),
				h.Ul(g.Map(home.Achievements, func(a learner.Achievement) g.Node {
					return h.Li(h.Strong(g.Text(a.Title)), h.Br(), h.Span(h.Class("muted"), g.Text(a.Description)))
				})),
			),
		),
	)
}

func DashboardCourses(meta Meta, sh uistate.Shell, profile learner.Profile, tabs uistate.Tabs, counts []learner.TabCount, items []learner.Enrollment) g.Node {
	return DashboardPage(meta, sh, profile,
		pageHeader("My Courses", "Track your progress and continue learning.",
			h.A(h.Class("btn"), h.Href("/courses"), g.Text("Browse Courses")),
		),
		tabLinks(tabs, countedLabel(counts), func(key string) string { return withQuery(sh, "/dashboard/courses", "tab", key) }),
		g.If(len(items) == 0, emptyState("No courses here yet.")),
		h.Div(h.Class("card-grid"), g.Map(items, func(e learner.Enrollment) g.Node {
			return h.Article(h.Class("card enrollment"), reveal(),
				h.Img(h.Src(e.Image), h.Alt(e.Title), g.Attr("loading", "lazy")),
				badge(strings.ReplaceAll(e.Status, "-", " ")),
				h.H3(g.Text(e.Title)),
				h.P(g.Text(e.Description)),
				progressBar(e.Progress),
				h.P(h.Class("muted"), g.Textf("%d/%d lessons · %d%%", e.CompletedLessons, e.TotalLessons, e.Progress)),
				g.If(e.Status == learner.StatusCompleted,
					h.P(h.Class("muted"), g.Text("Completed "+e.CompletedDate)),
				),
				g.If(e.Status != learner.StatusCompleted,
					h.P(h.Class("muted"), g.Text("Last accessed "+e.LastAccessed)),
				),
				g.If(e.HasCertificate, h.A(h.Href(sh.Link("/dashboard/certificates")), g.Text("View Certificate"))),
				g.If(!e.HasCertificate, h.A(h.Class("btn"), h.Href(sh.Link("/dashboard/lesson/1")), g.Text(continueLabel(e)))),
			)
		})),
	)
}

func continueLabel(e learner.Enrollment) string {
	if e.Status == learner.StatusNotStarted {
		return "Start Course"
	}
	return "Continue"
}

// Lesson is the player page; tabs switch between transcript and resources.
// Lesson is the player page. The active tab and the bookmark travel in the query string.
func Lesson(meta Meta, sh uistate.Shell, profile learner.Profile, lesson learner.Lesson, tabs uistate.Tabs, bookmarked bool) g.Node {
	lessonLink := func(id string) string { return sh.Link("/dashboard/lesson/" + id) }
	state := url.Values{"tab": {tabs.Active()}}
	bookmark, bookmarkLabel := "1", "Bookmark"
	if bookmarked {
		state.Set("bookmarked", "1")
		bookmark, bookmarkLabel = "", "Bookmarked"
	}
	pageURL := func(kv ...string) string { return pageLink(sh, "/dashboard/lesson/"+lesson.ID, state, kv...) }

	var prev, next g.Node
	if lesson.Prev != nil {
		prev = h.A(h.Class("btn"), h.Href(lessonLink(lesson.Prev.ID)), g.Text("← "+lesson.Prev.Title))
	}
	if lesson.Next != nil {
		next = h.A(h.Class("btn btn-primary"), h.Href(lessonLink(lesson.Next.ID)), g.Text(lesson.Next.Title+" →"))
	}

	return DashboardPage(meta, sh, profile,
		h.Nav(h.Class("breadcrumbs"),
			h.A(h.Href(sh.Link("/dashboard/courses")), g.Text(lesson.Course)),
			g.Text(" / "+lesson.Module),
		),
		h.Div(h.Class("player-layout"),
			h.Div(h.Class("player"),
				h.Div(h.Class("video"), h.Role("img"), h.Aria("label", "Lesson video"), g.Text("▶")),
				h.Div(h.Class("row"),
					h.H1(g.Text(lesson.Title)),
					h.A(h.Class("btn bookmark"), h.Href(pageURL("bookmarked", bookmark)), h.Aria("pressed", boolAttr(bookmarked)),
						g.Text(bookmarkLabel)),
				),
				h.P(h.Class("muted"), g.Text(lesson.Duration)),
				h.P(g.Text(lesson.Description)),
				h.Div(h.Class("player-nav"), prev, next),
				tabLinks(tabs, tabLabel, func(key string) string { return pageURL("tab", key) }),
				g.If(tabs.IsActive("transcript"), h.Ol(h.Class("transcript"),
					g.Map(lesson.Transcript, func(l learner.TranscriptLine) g.Node {
						return h.Li(h.Span(h.Class("timestamp"), g.Text(l.Time)), g.Text(" "+l.Text))
					}),
				)),
				g.If(tabs.IsActive("resources"), h.Ul(h.Class("resources"),
					g.Map(lesson.Resources, func(r learner.Resource) g.Node {
						return h.Li(g.Text(r.Name), h.Span(h.Class("muted"), g.Text(" "+r.Size)))
					}),
				)),
				g.If(tabs.IsActive("discussion"), h.Div(h.Class("discussion empty-state"),
					h.H3(g.Text("Join the Discussion")),
					h.P(h.Class("muted"), g.Text("Ask questions and connect with other learners")),
					h.Button(h.Type("button"), h.Class("btn btn-primary"), g.Text("Open Discussion")),
				)),
			),
			h.Aside(h.Class("outline"),
				h.H2(g.Text("Course content")),
				progressBar(lesson.Progress),
				h.Ol(g.Map(lesson.Outline, func(ref learner.LessonRef) g.Node {
					current := ref.IsCurrent(lesson)
					cls := "outline-item"
					if ref.Completed {
						cls += " completed"
					}
					if current {
						cls += " current"
					}
					return h.Li(h.Class(cls),
						h.A(h.Href(lessonLink(ref.ID)), g.If(current, h.Aria("current", "page")), g.Text(ref.Title)),
						h.Span(h.Class("muted"), g.Text(" "+ref.Duration)),
					)
				})),
			),
		),
	)
}

func DashboardProjects(meta Meta, sh uistate.Shell, profile learner.Profile, tabs uistate.Tabs, counts []learner.TabCount, projects []learner.Project, challenges []learner.Challenge) g.Node {
	return DashboardPage(meta, sh, profile,
		pageHeader("Projects", "Build real-world AI projects and showcase your skills."),
		tabLinks(tabs, countedLabel(counts), func(key string) string { return withQuery(sh, "/dashboard/projects", "tab", key) }),
		g.If(len(projects) == 0, emptyState("No projects here yet.")),
		h.Div(h.Class("card-grid"), g.Map(projects, func(p learner.Project) g.Node {
			return h.Article(h.Class("card project"), reveal(),
				h.Div(h.Class("row"), badge(p.Difficulty), badge(strings.ReplaceAll(p.Status, "-", " "))),
				h.H3(g.Text(p.Title)),
				h.P(h.Class("muted"), g.Text(p.Course)),
				h.P(g.Text(p.Description)),
				g.If(p.Grade != "", h.P(h.Strong(g.Text("Grade: "+p.Grade)))),
				g.If(p.Feedback != "", h.BlockQuote(g.Text(p.Feedback))),
				g.If(p.SubmittedDate != "", h.P(h.Class("muted"), g.Text("Submitted "+p.SubmittedDate))),
				g.If(p.Deadline != "", h.P(h.Class("muted"), g.Text("Due "+p.Deadline))),
			)
		})),
		h.Section(h.Class("challenges"),
			h.H2(reveal(), g.Text("Active Challenges")),
			h.Div(h.Class("card-grid"), g.Map(challenges, func(c learner.Challenge) g.Node {
				return h.Article(h.Class("card challenge"), reveal(),
					h.H3(g.Text(c.Title)),
					h.P(g.Text(c.Description)),
					h.P(h.Class("muted"), g.Textf("%s participants · %d days left", humanize.Comma(int64(c.Participants)), c.DaysLeft)),
					h.P(h.Strong(g.Text("Reward: "+c.Reward))),
				)
			})),
		),
	)
}

func DashboardCertificates(meta Meta, sh uistate.Shell, profile learner.Profile, certs learner.Certificates) g.Node {
	return DashboardPage(meta, sh, profile,
		pageHeader("Certificates", "Your verified achievements."),
		h.Section(
			h.H2(g.Textf("Earned (%d)", len(certs.Earned))),
			g.If(len(certs.Earned) == 0, emptyState("Complete a course to earn your first certificate.")),
			h.Div(h.Class("card-grid"), g.Map(certs.Earned, func(c learner.EarnedCertificate) g.Node {
				return h.Article(h.Class("card certificate"), reveal(),
					h.H3(g.Text(c.Title)),
					h.P(h.Class("muted"), g.Text("Issued "+c.IssueDate)),
					h.P(h.Class("mono"), g.Text(c.CertificateID)),
					g.If(c.Verified, badge("Verified")),
					h.Ul(h.Class("chips"), g.Map(c.Skills, func(s string) g.Node { return h.Li(g.Text(s)) })),
				)
			})),
		),
		h.Section(
			h.H2(g.Textf("In Progress (%d)", len(certs.InProgress))),
			h.Div(h.Class("card-grid"), g.Map(certs.InProgress, func(c learner.PendingCertificate) g.Node {
				return h.Article(h.Class("card"), reveal(),
					h.H3(g.Text(c.Title)),
					progressBar(c.Progress),
					h.P(h.Class("muted"), g.Textf("%d/%d lessons · est. %s", c.CompletedLessons, c.TotalLessons, c.EstimatedCompletion)),
				)
			})),
		),
		h.Section(
			h.H2(g.Textf("Locked (%d)", len(certs.Locked))),
			h.Div(h.Class("card-grid"), g.Map(certs.Locked, func(c learner.LockedCertificate) g.Node {
				return h.Article(h.Class("card locked"), reveal(),
					h.H3(g.Text(c.Title)),
					h.P(h.Class("muted"), g.Text(c.Requirement)),
				)
			})),
		),
	)
}

// SettingsForm is the state of the student settings page.
type SettingsForm struct {
	Tabs    uistate.Tabs
	Profile account.ProfileForm
	Errors  map[string]string
	Flash   string
}

func DashboardSettings(meta Meta, sh uistate.Shell, profile learner.Profile, f SettingsForm) g.Node {
	action := withQuery(sh, "/dashboard/settings", "tab", f.Tabs.Active())
	tabField := h.Input(h.Type("hidden"), h.Name("tab"), h.Value(f.Tabs.Active()))

	var panel g.Node
	switch f.Tabs.Active() {
	case "password":
		panel = h.Form(h.Method("post"), h.Action(action), h.Class("stack card"),
			tabField,
			h.H2(g.Text("Change Password")),
			field("Current Password", "current_password", "password", "", f.Errors, h.AutoComplete("current-password")),
			field("New Password", "new_password", "password", "", f.Errors, h.AutoComplete("new-password")),
			field("Confirm New Password", "confirm_password", "password", "", f.Errors, h.AutoComplete("new-password")),
			submitButton("Update Password"),
		)
	case "notifications":
		panel = h.Form(h.Method("post"), h.Action(action), h.Class("stack card"),
			tabField,
			h.H2(g.Text("Notification Preferences")),
			g.Map(notificationPreferences, func(p preference) g.Node {
				return h.Div(h.Class("preference"),
					checkbox(p.Label, "notify_"+p.Key, p.Default, nil),
					h.P(h.Class("muted"), g.Text(p.Description)),
				)
			}),
			submitButton("Save Preferences"),
		)
	case "billing":
		panel = h.Div(h.Class("stack"),
			h.Section(h.Class("card plan"),
				h.P(h.Class("muted"), g.Text("Current Plan")),
				h.H2(g.Text(profile.Plan+" Membership")),
				badge("Active"),
				h.P(g.Text("$29/month · Renews on Feb 15, 2025")),
			),
			h.Section(h.Class("card"),
				h.H3(g.Text("Payment Method")),
				h.P(g.Text("VISA •••• •••• •••• 4242")),
				h.P(h.Class("muted"), g.Text("Expires 12/26")),
			),
			h.Section(h.Class("card"),
				h.H3(g.Text("Billing History")),
				table([]string{"Plan", "Date", "Amount", "Status"}, g.Map(invoices, func(inv invoice) g.Node {
					return h.Tr(
						h.Td(g.Text(profile.Plan+" Membership")),
						h.Td(g.Text(inv.Date)),
						h.Td(g.Text(inv.Amount)),
						h.Td(badge(inv.Status)),
					)
				})),
			),
		)
	default:
		p := f.Profile
		panel = h.Form(h.Method("post"), h.Action(action), h.Class("stack card"),
			tabField,
			h.H2(g.Text("Profile Information")),
			h.Div(h.Class("row"),
				field("First Name", "first_name", "text", p.FirstName, f.Errors),
				field("Last Name", "last_name", "text", p.LastName, f.Errors),
			),
			field("Email", "email", "email", p.Email, f.Errors),
			field("Phone", "phone", "tel", p.Phone, f.Errors),
			h.Div(h.Class("field"),
				h.Label(h.For("bio"), g.Text("Bio")),
				h.Textarea(h.ID("bio"), h.Name("bio"), h.Rows("3"), g.Text(p.Bio)),
			),
			h.Div(h.Class("row"),
				field("Location", "location", "text", p.Location, f.Errors),
				field("Website", "website", "url", p.Website, f.Errors),
			),
			submitButton("Save Changes"),
		)
	}

	return DashboardPage(meta, sh, profile,
		pageHeader("Settings", "Manage your account settings and preferences."),
		flash(f.Flash),
		h.Div(h.Class("settings-layout"),
			tabLinks(f.Tabs, tabLabel, func(key string) string { return withQuery(sh, "/dashboard/settings", "tab", key) }),
			panel,
		),
	)
}
