package views

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/dustin/go-humanize"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/trezcool/masterly/core/admin"
	"github.com/trezcool/masterly/core/audit"
	"github.com/trezcool/masterly/core/certificate"
	"github.com/trezcool/masterly/core/course"
	"github.com/trezcool/masterly/core/listing"
	"github.com/trezcool/masterly/core/submission"
	"github.com/trezcool/masterly/core/uistate"
	"github.com/trezcool/masterly/core/user"
)

var AnalyticsTabs = []string{admin.AnalyticsOverview, admin.AnalyticsLearning, admin.AnalyticsGrowth, admin.AnalyticsAI}

var analyticsLabels = map[string]string{
	admin.AnalyticsOverview: "Overview",
	admin.AnalyticsLearning: "Learning",
	admin.AnalyticsGrowth:   "Growth",
	admin.AnalyticsAI:       "AI Usage",
}

func AdminOverview(meta Meta, sh uistate.Shell, ov admin.Overview) g.Node {
	return AdminPage(meta, sh,
		pageHeader("Dashboard", "Welcome back! Here is what is happening with your platform."),
		adminStats(ov.Stats),
		h.Div(h.Class("chart-grid"), g.Map(ov.Charts, barChart)),
		h.Div(h.Class("columns"),
			h.Section(h.Class("card"),
				h.H2(g.Text("Recent Activity")),
				h.Ul(h.Class("activity"), g.Map(ov.Activity, func(a admin.Activity) g.Node {
					return h.Li(
						h.Strong(g.Text(a.User)), g.Text(" "+a.Action+" "), h.Em(g.Text(a.Target)),
						h.Span(h.Class("muted"), g.Text(" · "+a.Time)),
					)
				})),
			),
			h.Section(h.Class("card"),
				h.H2(g.Text("Alerts")),
				h.Ul(h.Class("alerts"), g.Map(ov.Alerts, func(a admin.Alert) g.Node {
					return h.Li(h.Class("alert alert-"+a.Type), g.Text(a.Message), h.Span(h.Class("muted"), g.Text(" · "+a.Time)))
				})),
			),
		),
	)
}

// UserList is the state of the users page.
type UserList struct {
	Filter   user.QueryFilter
	Page     listing.Page[user.User]
	Selected uistate.ToggleSet
	Detail   *user.User // shown in the details panel when set
}

func (l UserList) query() url.Values {
	q := url.Values{}
	for k, v := range map[string]string{"search": l.Filter.Search, "status": l.Filter.Status, "plan": l.Filter.Plan} {
		if v != "" {
			q.Set(k, v)
		}
	}
	if l.Selected.Len() > 0 {
		q.Set("selected", l.Selected.String())
	}
	if l.Detail != nil {
		q.Set("user", strconv.Itoa(l.Detail.ID))
	}
	return q
}

// allSelected reports whether every listed user is selected.
func (l UserList) allSelected() bool {
	for _, u := range l.Page.Items {
		if !l.Selected.Has(strconv.Itoa(u.ID)) {
			return false
		}
	}
	return len(l.Page.Items) > 0
}

func AdminUsers(meta Meta, sh uistate.Shell, l UserList) g.Node {
	state := l.query()
	link := func(kv ...string) string { return pageLink(sh, "/admin/users", state, kv...) }

	selectAll := ""
	if !l.allSelected() {
		ids := make([]string, 0, len(l.Page.Items))
		for _, u := range l.Page.Items {
			ids = append(ids, strconv.Itoa(u.ID))
		}
		selectAll = uistate.NewToggleSet(ids...).String()
	}
	checkLink := func(label, href string, checked bool) g.Node {
		mark := "☐"
		if checked {
			mark = "☑"
		}
		return h.A(h.Class("row-select"), h.Href(href), h.Role("checkbox"), h.Aria("checked", boolAttr(checked)),
			h.Aria("label", label), g.Text(mark))
	}

	return AdminPage(meta, sh,
		pageHeader("Users", "Manage your platform users."),
		filterBar("/admin/users", sh, l.Filter.Search, "Search users...",
			FacetSelect{Name: "status", Selected: l.Filter.Status, Choices: user.StatusChoices},
			FacetSelect{Name: "plan", Selected: l.Filter.Plan, Choices: user.PlanChoices},
		),
		g.If(l.Selected.Len() > 0, h.Div(h.Class("bulk-bar"), h.Role("status"),
			h.Span(g.Textf("%d selected", l.Selected.Len())),
			h.Button(h.Type("button"), h.Class("btn"), g.Text("Enroll in Course")),
			h.Button(h.Type("button"), h.Class("btn"), g.Text("Grant Certificate")),
			h.Button(h.Type("button"), h.Class("btn"), g.Text("Suspend")),
			h.A(h.Href(link("selected", "")), g.Text("Clear selection")),
		)),
		g.If(l.Page.Count == 0, emptyState("No users match your filters.")),
		g.If(l.Page.Count > 0, tableWithHead(
			g.Group([]g.Node{
				h.Th(checkLink("Select all", link("selected", selectAll), l.allSelected())),
				g.Map([]string{"User", "Status", "Plan", "Progress", "Courses", "Certificates", "Joined", "Last Active", "Country"},
					func(s string) g.Node { return h.Th(g.Text(s)) }),
			}),
			g.Map(l.Page.Items, func(u user.User) g.Node {
				id := strconv.Itoa(u.ID)
				return h.Tr(g.If(l.Selected.Has(id), h.Class("row-selected")),
					h.Td(checkLink("Select "+u.Name, link("selected", l.Selected.Toggle(id).String()), l.Selected.Has(id))),
					h.Td(h.Span(h.Class("avatar"), g.Text(u.Initials())),
						h.A(h.Href(link("user", id)), h.Strong(g.Text(u.Name))), h.Br(), h.Small(g.Text(u.Email))),
					h.Td(badge(u.Status)),
					h.Td(badge(u.Plan)),
					h.Td(progressBar(u.Progress), g.Textf("%d%%", u.Progress)),
					h.Td(g.Text(strconv.Itoa(u.Courses))),
					h.Td(g.Text(strconv.Itoa(u.Certificates))),
					h.Td(g.Text(u.Joined)),
					h.Td(g.Text(u.LastActive)),
					h.Td(g.Text(u.Country)),
				)
			}),
		)),
		caption(l.Page.Summary("users")),
		userPanel(l.Detail, link("user", "")),
	)
}

func userPanel(u *user.User, closeHref string) g.Node {
	if u == nil {
		return nil
	}
	stat := func(value, label string) g.Node {
		return h.Div(h.Class("panel-stat"), h.Strong(g.Text(value)), h.Small(g.Text(label)))
	}
	return panel("User Details", closeHref,
		h.Div(h.Class("panel-identity"),
			h.Span(h.Class("avatar avatar-lg"), g.Text(u.Initials())),
			h.Div(
				h.H3(g.Text(u.Name)),
				h.P(h.Class("muted"), g.Text(u.Email)),
				badge(u.Status), badge(u.Plan),
			),
		),
		h.Div(h.Class("panel-stats"),
			stat(fmt.Sprintf("%d%%", u.Progress), "Overall Progress"),
			stat(strconv.Itoa(u.Courses), "Courses"),
			stat(strconv.Itoa(u.Certificates), "Certificates"),
			stat(u.Country, "Location"),
		),
		h.P(h.Class("muted"), g.Textf("Joined %s · Last active %s", u.Joined, u.LastActive)),
		h.Div(h.Class("panel-actions"),
			h.Button(h.Type("button"), h.Class("btn btn-primary"), g.Text("Enroll in Course")),
			h.Button(h.Type("button"), h.Class("btn"), g.Text("Grant Certificate")),
			h.Button(h.Type("button"), h.Class("btn"), g.Text("Suspend")),
		),
	)
}

// CourseList is the state of the courses page.
type CourseList struct {
	Filter course.QueryFilter
	Page   listing.Page[course.Course]
	Form   *course.Form // the create/edit panel, when open
	Errors map[string]string
	Flash  string
}

func (l CourseList) query() url.Values {
	q := url.Values{}
	for k, v := range map[string]string{"search": l.Filter.Search, "status": l.Filter.Status, "level": l.Filter.Level} {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}

func AdminCourses(meta Meta, sh uistate.Shell, l CourseList) g.Node {
	state := l.query()
	link := func(kv ...string) string { return pageLink(sh, "/admin/courses", state, kv...) }

	return AdminPage(meta, sh,
		pageHeader("Courses", "Manage your course catalog.",
			h.A(h.Class("btn btn-primary"), h.Href(link("edit", course.NewID)), g.Text("Add Course")),
		),
		flash(l.Flash),
		filterBar("/admin/courses", sh, l.Filter.Search, "Search courses...",
			FacetSelect{Name: "status", Selected: l.Filter.Status, Choices: course.StatusChoices},
			FacetSelect{Name: "level", Selected: l.Filter.Level, Choices: course.LevelChoices},
		),
		g.If(l.Page.Count == 0, emptyState("No courses match your filters.")),
		g.If(l.Page.Count > 0, table(
			[]string{"Course", "Status", "Level", "Lessons", "Enrolled", "Rating", "Completion", "Revenue", "Updated", ""},
			g.Map(l.Page.Items, func(c course.Course) g.Node {
				return h.Tr(
					h.Td(h.Strong(g.Text(c.Title)), h.Br(), h.Small(g.Text(c.Category))),
					h.Td(badge(c.Status)),
					h.Td(g.Text(c.Level)),
					h.Td(g.Text(strconv.Itoa(c.Lessons))),
					h.Td(g.Text(humanize.Comma(int64(c.Enrolled)))),
					h.Td(g.If(c.Rating > 0, g.Textf("%.1f", c.Rating)), g.If(c.Rating == 0, g.Text("-"))),
					h.Td(g.Textf("%d%%", c.CompletionRate)),
					h.Td(g.Text(c.FormatRevenue())),
					h.Td(g.Text(c.LastUpdated)),
					h.Td(
						h.A(h.Href(link("edit", strconv.Itoa(c.ID))), g.Text("Edit")), g.Text(" · "),
						h.A(h.Href(withQuery(sh, "/admin/content", "course", strconv.Itoa(c.ID))), g.Text("Edit content")),
					),
				)
			}),
		)),
		caption(l.Page.Summary("courses")),
		coursePanel(l.Form, l.Errors, link),
	)
}

func coursePanel(f *course.Form, errs map[string]string, link func(kv ...string) string) g.Node {
	if f == nil {
		return nil
	}
	title, submit, edit := "Edit Course", "Save Changes", strconv.Itoa(f.ID)
	if f.IsNew() {
		title, submit, edit = "Create New Course", "Create Course", course.NewID
	}
	return panel(title, link("edit", ""),
		h.Form(h.Method("post"), h.Action(link("edit", edit)), h.Class("stack"),
			h.Input(h.Type("hidden"), h.Name("id"), h.Value(strconv.Itoa(f.ID))),
			field("Course Title", "title", "text", f.Title, errs, h.Required()),
			textArea("Description", "description", f.Description, errs),
			selectField("Level", "level", f.Level, stringChoices(course.Levels), errs),
			selectField("Category", "category", f.Category, stringChoices(course.Categories), errs),
			field("Duration", "duration", "text", f.Duration, errs, h.Placeholder("e.g. 6 weeks")),
			field("Total Lessons", "lessons", "number", strconv.Itoa(f.Lessons), errs, h.Min("0")),
			textArea("Learning Outcomes (one per line)", "outcomes", f.Outcomes, errs),
			h.Div(h.Class("panel-actions"),
				submitButton(submit),
				h.A(h.Class("btn"), h.Href(link("edit", "")), g.Text("Cancel")),
			),
		),
	)
}

// ContentEditor is the state of the modules & lessons page.
type ContentEditor struct {
	Course   course.Course
	Courses  []course.Course
	Versions []course.Version
	Open     uistate.ToggleSet
	History  bool               // version history panel
	Lesson   *course.LessonForm // lesson editor panel, when open
	Errors   map[string]string
	Flash    string
}

func (ed ContentEditor) query() url.Values {
	q := url.Values{}
	q.Set("course", strconv.Itoa(ed.Course.ID))
	q.Set("open", ed.Open.String())
	if ed.History {
		q.Set("history", "open")
	}
	if ed.Lesson != nil {
		q.Set("lesson", strconv.Itoa(ed.Lesson.ID))
	}
	return q
}

func AdminContent(meta Meta, sh uistate.Shell, ed ContentEditor) g.Node {
	c := ed.Course
	link := func(kv ...string) string { return pageLink(sh, "/admin/content", ed.query(), kv...) }
	moduleLink := func(m course.Module) string {
		q := ed.query()
		q.Set("open", ed.Open.Toggle(strconv.Itoa(m.ID)).String())
		return pageLink(sh, "/admin/content", q) + fmt.Sprintf("#module-%d", m.ID)
	}
	history := "open"
	if ed.History {
		history = ""
	}

	return AdminPage(meta, sh,
		pageHeader("Modules & Lessons", "Organize the content of "+c.Title+".",
			h.A(h.Class("btn"), h.Href(link("history", history)), h.Aria("expanded", boolAttr(ed.History)), g.Text("Version History")),
		),
		flash(ed.Flash),
		h.Form(h.Class("filter-bar"), h.Method("get"), h.Action("/admin/content"),
			shellInputs(sh),
			h.Select(h.Name("course"), h.Aria("label", "Course"), g.Map(ed.Courses, func(o course.Course) g.Node {
				return h.Option(h.Value(strconv.Itoa(o.ID)), g.If(o.ID == c.ID, h.Selected()), g.Text(o.Title))
			})),
			h.Button(h.Type("submit"), h.Class("btn"), g.Text("Open")),
		),
		g.If(len(c.Modules) == 0, emptyState("This course has no modules yet.")),
		g.Map(c.Modules, func(m course.Module) g.Node {
			expanded := ed.Open.Has(strconv.Itoa(m.ID))
			return h.Section(h.Class("accordion card"), h.ID(fmt.Sprintf("module-%d", m.ID)),
				h.A(h.Class("accordion-toggle"), h.Href(moduleLink(m)), h.Aria("expanded", boolAttr(expanded)),
					h.Strong(g.Text(m.Title)),
					h.Span(h.Class("muted"), g.Textf(" %d lessons · %d published · %d draft",
						len(m.Lessons), m.StatusCount(course.StatusPublished), m.StatusCount(course.StatusDraft))),
				),
				g.If(expanded, table([]string{"Lesson", "Type", "Duration", "Status", "Views"},
					g.Map(m.Lessons, func(l course.Lesson) g.Node {
						editing := ed.Lesson != nil && ed.Lesson.ID == l.ID
						return h.Tr(g.If(editing, h.Class("row-selected")),
							h.Td(h.A(h.Href(link("lesson", strconv.Itoa(l.ID))), g.Text(l.Title)), g.If(l.Free, badge("Free"))),
							h.Td(g.Text(l.Type)),
							h.Td(g.Text(l.Duration)),
							h.Td(badge(l.Status)),
							h.Td(g.Text(humanize.Comma(int64(l.Views)))),
						)
					}),
				)),
			)
		}),
		lessonPanel(ed.Lesson, ed.Errors, link),
		versionsPanel(ed.History, ed.Versions, link("history", "")),
	)
}

func lessonPanel(f *course.LessonForm, errs map[string]string, link func(kv ...string) string) g.Node {
	if f == nil {
		return nil
	}
	return panel("Edit Lesson", link("lesson", ""),
		h.Form(h.Method("post"), h.Action(link()), h.Class("stack"),
			h.Input(h.Type("hidden"), h.Name("id"), h.Value(strconv.Itoa(f.ID))),
			field("Lesson Title", "title", "text", f.Title, errs, h.Required()),
			selectField("Type", "type", f.Type, course.LessonTypes, errs),
			field("Duration", "duration", "text", f.Duration, errs),
			selectField("Status", "status", f.Status, course.LessonStatuses, errs),
			textArea("Content", "content", f.Content, errs),
			textArea("Prompt Examples", "prompts", f.Prompts, errs),
			h.Div(h.Class("panel-actions"),
				submitButton("Save Lesson"),
				h.A(h.Class("btn"), h.Href(link("lesson", "")), g.Text("Cancel")),
			),
		),
	)
}

func versionsPanel(open bool, versions []course.Version, closeHref string) g.Node {
	if !open {
		return nil
	}
	return panel("Version History", closeHref,
		g.If(len(versions) == 0, emptyState("No versions recorded.")),
		h.Ol(h.Class("versions"), g.Map(versions, func(v course.Version) g.Node {
			return h.Li(
				h.Strong(g.Text("v"+v.Version)), h.Span(h.Class("muted"), g.Text(" "+v.Date+" · "+v.Author)),
				h.P(g.Text(v.Changes)),
				h.Button(h.Type("button"), h.Class("btn btn-small"), g.Text("Restore")),
			)
		})),
	)
}

func AdminAnalytics(meta Meta, sh uistate.Shell, tabs uistate.Tabs, timeRange string, stats []admin.Stat, charts []admin.Chart) g.Node {
	return AdminPage(meta, sh,
		pageHeader("Analytics", "Track platform performance and learner engagement.",
			h.Form(h.Method("get"), h.Action("/admin/analytics"),
				shellInputs(sh),
				h.Input(h.Type("hidden"), h.Name("tab"), h.Value(tabs.Active())),
				h.Select(h.Name("range"), h.Aria("label", "Time range"), g.Map(admin.TimeRanges, func(r string) g.Node {
					return h.Option(h.Value(r), g.If(r == timeRange, h.Selected()), g.Text("Last "+r))
				})),
				h.Button(h.Type("submit"), h.Class("btn"), g.Text("Apply")),
			),
		),
		adminStats(stats),
		tabLinks(tabs, func(key string) string { return analyticsLabels[key] }, func(key string) string {
			return withQuery(sh, "/admin/analytics", "tab", key, "range", timeRange)
		}),
		h.Div(h.Class("chart-grid"), g.Map(charts, barChart)),
	)
}

// CertificateList is the state of the certifications page.
type CertificateList struct {
	Filter  certificate.QueryFilter
	Page    listing.Page[certificate.Certificate]
	Preview *certificate.Certificate // shown in the preview panel when set
}

func (l CertificateList) query() url.Values {
	q := url.Values{}
	for k, v := range map[string]string{"search": l.Filter.Search, "status": l.Filter.Status, "course": l.Filter.Course} {
		if v != "" {
			q.Set(k, v)
		}
	}
	if l.Preview != nil {
		q.Set("preview", l.Preview.ID)
	}
	return q
}

func AdminCertifications(meta Meta, sh uistate.Shell, l CertificateList) g.Node {
	state := l.query()
	link := func(kv ...string) string { return pageLink(sh, "/admin/certifications", state, kv...) }

	return AdminPage(meta, sh,
		pageHeader("Certifications", "Issue, verify and revoke certificates."),
		filterBar("/admin/certifications", sh, l.Filter.Search, "Search by name or certificate ID...",
			FacetSelect{Name: "status", Selected: l.Filter.Status, Choices: certificate.StatusChoices},
			FacetSelect{Name: "course", Selected: l.Filter.Course, Choices: certificate.CourseChoices},
		),
		g.If(l.Page.Count == 0, emptyState("No certificates match your filters.")),
		g.If(l.Page.Count > 0, table(
			[]string{"Certificate ID", "Holder", "Course", "Issued", "Grade", "Status", "Verified"},
			g.Map(l.Page.Items, func(c certificate.Certificate) g.Node {
				return h.Tr(
					h.Td(h.A(h.Href(link("preview", c.ID)), h.Code(g.Text(c.ID)))),
					h.Td(h.Strong(g.Text(c.User)), h.Br(), h.Small(g.Text(c.Email))),
					h.Td(g.Text(c.Course)),
					h.Td(g.Text(c.IssuedDate)),
					h.Td(g.Text(c.Grade)),
					h.Td(badge(c.Status)),
					h.Td(g.If(c.Verified, g.Text("✓")), g.If(!c.Verified, g.Text("-"))),
				)
			}),
		)),
		caption(l.Page.Summary("certificates")),
		certificatePanel(l.Preview, link("preview", "")),
	)
}

func certificatePanel(c *certificate.Certificate, closeHref string) g.Node {
	if c == nil {
		return nil
	}
	toggle := "Revoke"
	if c.Status != certificate.StatusActive {
		toggle = "Reactivate"
	}
	return panel("Certificate Details", closeHref,
		h.Div(h.Class("certificate-preview"),
			h.P(h.Class("certificate-title"), g.Text("Certificate of Completion")),
			h.H3(g.Text(c.Course)),
			h.P(h.Class("muted"), g.Text("This certifies that")),
			h.P(h.Class("certificate-holder"), g.Text(c.User)),
			h.P(g.Text("has successfully completed the Masterly AI program demonstrating proficiency in the subject matter.")),
			h.Dl(
				h.Dt(g.Text("Grade")), h.Dd(g.Text(c.Grade)),
				h.Dt(g.Text("Issued")), h.Dd(g.Text(c.IssuedDate)),
				h.Dt(g.Text("Certificate ID")), h.Dd(h.Code(g.Text(c.ID))),
			),
		),
		h.Div(h.Class("panel-actions"),
			h.Button(h.Type("button"), h.Class("btn btn-primary"), g.Text("Download PDF")),
			h.Button(h.Type("button"), h.Class("btn"), g.Text("Share")),
			h.Button(h.Type("button"), h.Class("btn"), g.Text(toggle)),
		),
	)
}

func AdminSubmissions(meta Meta, sh uistate.Shell, f submission.QueryFilter, page listing.Page[submission.Submission], counts map[string]int) g.Node {
	return AdminPage(meta, sh,
		pageHeader("Project Submissions", "Review and grade learner projects."),
		h.Div(h.Class("stat-grid"), g.Map(submission.StatusChoices[1:], func(c listing.Choice) g.Node {
			return statCard(c.Label, strconv.Itoa(counts[c.Value]), "", true)
		})),
		filterBar("/admin/submissions", sh, f.Search, "Search submissions...",
			FacetSelect{Name: "status", Selected: f.Status, Choices: submission.StatusChoices},
		),
		g.If(page.Count == 0, emptyState("No submissions match your filters.")),
		g.If(page.Count > 0, table(
			[]string{"Student", "Project", "Course", "Submitted", "Status", "Grade"},
			g.Map(page.Items, func(s submission.Submission) g.Node {
				grade := g.Text("-")
				if s.IsGraded() {
					grade = h.Strong(g.Text(s.Grade))
				}
				return h.Tr(
					h.Td(h.Strong(g.Text(s.User)), h.Br(), h.Small(g.Text(s.Email))),
					h.Td(g.Text(s.Project)),
					h.Td(g.Text(s.Course)),
					h.Td(g.Text(s.Submitted)),
					h.Td(badge(s.Status)),
					h.Td(grade),
				)
			}),
		)),
		caption(page.Summary("submissions")),
	)
}

var NotificationTabs = []string{"announcements", "history", "templates"}

// NotificationCenter is the state of the notifications page. Only the data of the active tab is set.
type NotificationCenter struct {
	Tabs          uistate.Tabs
	Announcements []admin.Announcement
	History       []admin.NotificationEvent
	Templates     []admin.NotificationTemplate
}

func AdminNotifications(meta Meta, sh uistate.Shell, nc NotificationCenter) g.Node {
	var body g.Node
	switch nc.Tabs.Active() {
	case "history":
		body = h.Section(
			h.H2(g.Text("Recent Activity")),
			g.If(len(nc.History) == 0, emptyState("No activity yet.")),
			g.If(len(nc.History) > 0, table([]string{"User", "Action", "Announcement", "Time"}, g.Map(nc.History, func(e admin.NotificationEvent) g.Node {
				return h.Tr(h.Td(g.Text(e.User)), h.Td(g.Text(e.Action)), h.Td(g.Text(e.Announcement)), h.Td(g.Text(e.Time)))
			}))),
		)
	case "templates":
		body = h.Div(h.Class("card-grid"), g.Map(nc.Templates, func(t admin.NotificationTemplate) g.Node {
			return h.Article(h.Class("card"), reveal(),
				h.H3(g.Text(t.Name)),
				h.P(h.Class("muted"), g.Text(t.Channel)),
				h.P(h.Class("muted"), h.Small(g.Text("Last used: "+t.LastUsed))),
			)
		}))
	default:
		body = h.Section(
			g.If(len(nc.Announcements) == 0, emptyState("No announcements yet.")),
			h.Div(h.Class("card-grid"), g.Map(nc.Announcements, func(a admin.Announcement) g.Node {
				audience := "All users"
				if a.Audience == "course" {
					audience = a.TargetCourse
				}
				when := a.SentAt
				if a.Status == "scheduled" {
					when = "Scheduled for " + a.ScheduledFor
				}
				return h.Article(h.Class("card"), reveal(),
					badge(a.Status),
					h.H3(g.Text(a.Title)),
					h.P(g.Text(a.Content)),
					h.P(h.Class("muted"), g.Text(audience)),
					g.If(when != "", h.P(h.Class("muted"), g.Text(when))),
					g.If(a.Status == "sent", h.P(h.Class("muted"),
						g.Textf("%s recipients · %.1f%% opened", humanize.Comma(int64(a.Recipients)), a.OpenRate))),
				)
			})),
		)
	}

	return AdminPage(meta, sh,
		pageHeader("Notifications", "Send announcements to your learners."),
		tabLinks(nc.Tabs, tabLabel, func(key string) string {
			return withQuery(sh, "/admin/notifications", "tab", key)
		}),
		body,
	)
}

// AdminRoles lists roles and shows the permission matrix of the selected one.
func AdminRoles(meta Meta, sh uistate.Shell, roles []admin.Role, team []admin.TeamMember, selected int) g.Node {
	var current admin.Role
	for _, r := range roles {
		if r.ID == selected {
			current = r
		}
	}
	if current.ID == 0 && len(roles) > 0 {
		current = roles[0]
	}

	return AdminPage(meta, sh,
		pageHeader("Roles & Permissions", "Control what each team member can access."),
		h.Div(h.Class("roles-layout"),
			h.Nav(h.Class("role-list"), g.Map(roles, func(r admin.Role) g.Node {
				return h.A(
					h.Href(withQuery(sh, "/admin/roles", "role", strconv.Itoa(r.ID))),
					g.If(r.ID == current.ID, h.Class("active")),
					h.Strong(g.Text(r.Name)), h.Br(),
					h.Small(g.Textf("%d users", r.Users)),
				)
			})),
			h.Section(h.Class("card"),
				h.H2(g.Text(current.Name)),
				h.P(h.Class("muted"), g.Text(current.Description)),
				g.Map(current.Permissions, func(p admin.Permission) g.Node {
					return h.Div(h.Class("permission"),
						h.H3(g.Text(p.Label)),
						h.Ul(h.Class("grants"), g.Map(p.Grants, func(gr admin.Grant) g.Node {
							mark := "✗"
							if gr.Allowed {
								mark = "✓"
							}
							return h.Li(g.If(gr.Allowed, h.Class("allowed")), g.Text(mark+" "+gr.Action))
						})),
					)
				}),
			),
		),
		h.Section(
			h.H2(g.Text("Team Members")),
			table([]string{"Name", "Email", "Role", "Last Active"}, g.Map(team, func(m admin.TeamMember) g.Node {
				return h.Tr(h.Td(g.Text(m.Name)), h.Td(g.Text(m.Email)), h.Td(badge(m.Role)), h.Td(g.Text(m.LastActive)))
			})),
		),
	)
}

func AdminSettings(meta Meta, sh uistate.Shell, s admin.PlatformSettings, errs map[string]string, msg string) g.Node {
	toggles := func(prefix string, ts []admin.Toggle) g.Node {
		return g.Map(ts, func(t admin.Toggle) g.Node {
			return checkbox(t.Label, prefix+t.Key, t.Enabled, errs)
		})
	}

	return AdminPage(meta, sh,
		pageHeader("Settings", "Configure your platform."),
		flash(msg),
		h.Form(h.Method("post"), h.Action(sh.Link("/admin/settings")), h.Class("stack"),
			h.Section(h.Class("card stack"),
				h.H2(g.Text("General")),
				field("Platform Name", "platform_name", "text", s.PlatformName, errs),
				field("Tagline", "tagline", "text", s.Tagline, errs),
				selectField("Language", "language", s.Language, stringChoices(admin.Languages), errs),
				selectField("Timezone", "timezone", s.Timezone, stringChoices(admin.Timezones), errs),
			),
			h.Section(h.Class("card stack"),
				h.H2(g.Text("Branding")),
				field("Primary Color", "primary_color", "text", s.PrimaryColor, errs),
				field("Secondary Color", "secondary_color", "text", s.SecondaryColor, errs),
			),
			h.Section(h.Class("card stack"),
				h.H2(g.Text("Email")),
				field("From Name", "from_name", "text", s.FromName, errs),
				field("From Email", "from_email", "email", s.FromEmail, errs),
				field("Reply-To Email", "reply_to_email", "email", s.ReplyToEmail, errs),
			),
			h.Section(h.Class("card stack"),
				h.H2(g.Text("Certificates")),
				field("Certificate Title", "certificate_title", "text", s.CertificateTitle, errs),
				field("Issuer Name", "issuer_name", "text", s.IssuerName, errs),
				toggles("verification_", s.Verification),
			),
			h.Section(h.Class("card stack"),
				h.H2(g.Text("Features")),
				toggles("feature_", s.Features),
			),
			submitButton("Save Settings"),
		),
	)
}

func AdminSecurity(meta Meta, sh uistate.Shell, f audit.QueryFilter, page listing.Page[audit.Event], logins []audit.Login) g.Node {
	return AdminPage(meta, sh,
		pageHeader("Security", "Monitor activity and access to your platform."),
		h.Section(
			h.H2(g.Text("Activity Log")),
			filterBar("/admin/security", sh, f.Search, "Search by user, action or IP...",
				FacetSelect{Name: "action", Selected: f.Action, Choices: audit.ActionChoices},
			),
			g.If(page.Count == 0, emptyState("No events match your filters.")),
			g.If(page.Count > 0, table(
				[]string{"User", "Action", "IP Address", "Location", "Device", "Time", "Status"},
				g.Map(page.Items, func(e audit.Event) g.Node {
					return h.Tr(g.If(e.Failed(), h.Class("row-failed")),
						h.Td(g.Text(e.User)),
						h.Td(g.Text(e.Action)),
						h.Td(h.Code(g.Text(e.IP))),
						h.Td(g.Text(e.Location)),
						h.Td(g.Text(e.Device)),
						h.Td(g.Text(e.Timestamp)),
						h.Td(badge(e.Status)),
					)
				}),
			)),
			caption(page.Summary("events")),
		),
		h.Section(
			h.H2(g.Text("Recent Logins")),
			table([]string{"User", "Time", "IP Address", "Device", "Location"}, g.Map(logins, func(l audit.Login) g.Node {
				return h.Tr(
					h.Td(h.Strong(g.Text(l.User)), h.Br(), h.Small(g.Text(l.Email))),
					h.Td(g.Text(l.Time)),
					h.Td(h.Code(g.Text(l.IP))),
					h.Td(g.Text(l.Device)),
					h.Td(g.Text(l.Location)),
				)
			})),
		),
	)
}
