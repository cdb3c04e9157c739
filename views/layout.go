// Package views renders every page of the site as gomponents nodes.
package views

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/trezcool/masterly/core"
	"github.com/trezcool/masterly/core/learner"
	"github.com/trezcool/masterly/core/uistate"
)

// Meta is what every page knows about the request it answers.
type Meta struct {
	AppName string
	Title   string
	Path    string
}

type navItem struct {
	key   string
	label string
	href  string
	items []navItem // menu group when not empty
}

var (
	publicNav = []navItem{
		{label: "Courses", href: "/courses"},
		{label: "Community", href: "/testimonials"},
		{label: "Mentors", href: "/careers"},
		{label: "Outcomes", href: "/certification"},
	}

	dashboardNav = []navItem{
		{label: "Dashboard", href: "/dashboard"},
		{label: "My Courses", href: "/dashboard/courses"},
		{label: "Projects", href: "/dashboard/projects"},
		{label: "Certificates", href: "/dashboard/certificates"},
		{label: "Settings", href: "/dashboard/settings"},
	}

	adminNav = []navItem{
		{key: "overview", label: "Overview", href: "/admin"},
		{key: "users", label: "User Management", href: "/admin/users"},
		{key: AdminContentMenu, label: "Content", items: []navItem{
			{label: "Courses", href: "/admin/courses"},
			{label: "Modules & Lessons", href: "/admin/content"},
		}},
		{key: "analytics", label: "Analytics", href: "/admin/analytics"},
		{key: "certifications", label: "Certifications", href: "/admin/certifications"},
		{key: "submissions", label: "Submissions", href: "/admin/submissions"},
		{key: "notifications", label: "Notifications", href: "/admin/notifications"},
		{key: "roles", label: "Roles & Permissions", href: "/admin/roles"},
		{key: "settings", label: "Settings", href: "/admin/settings"},
		{key: "security", label: "Security & Logs", href: "/admin/security"},
	}
)

// AdminContentMenu is the admin menu group expanded by default.
const AdminContentMenu = "content"

// isActive matches root sections exactly and the others by prefix.
func isActive(root, href, path string) bool {
	if href == root {
		return path == root
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

func document(meta Meta, bodyClass string, body ...g.Node) g.Node {
	title := meta.AppName
	if meta.Title != "" {
		title = meta.Title + " | " + meta.AppName
	}
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
				h.Script(h.Src("/static/reveal.js"), h.Defer()),
			),
			h.Body(h.Class(bodyClass), g.Group(body)),
		),
	)
}

// PublicPage wraps content with the marketing navigation and footer.
func PublicPage(meta Meta, content ...g.Node) g.Node {
	return document(meta, "public",
		h.Header(h.Class("site-nav"),
			h.A(h.Class("brand"), h.Href("/"), g.Text(meta.AppName)),
			h.Nav(h.Ul(g.Map(publicNav, func(it navItem) g.Node {
				return h.Li(h.A(
					h.Href(it.href),
					g.If(meta.Path == it.href, h.Class("active")),
					g.Text(it.label),
				))
			}))),
			h.Div(h.Class("nav-actions"),
				h.A(h.Href("/login"), g.Text("Log in")),
				h.A(h.Class("btn btn-primary"), h.Href("/signup"), g.Text("Get Started")),
			),
		),
		h.Main(g.Group(content)),
		h.Footer(h.Class("site-footer"),
			h.Div(h.Class("footer-links"),
				h.A(h.Href("/courses"), g.Text("Courses")),
				h.A(h.Href("/certification"), g.Text("Certification")),
				h.A(h.Href("/careers"), g.Text("Careers")),
				h.A(h.Href("/testimonials"), g.Text("Testimonials")),
			),
			h.P(g.Textf("© 2025 %s. All rights reserved.", meta.AppName)),
		),
	)
}

// AuthPage renders content alone, centered, for the sign-in flows.
func AuthPage(meta Meta, content ...g.Node) g.Node {
	return document(meta, "auth",
		h.Main(h.Class("auth-card"),
			h.A(h.Class("brand"), h.Href("/"), g.Text(meta.AppName)),
			g.Group(content),
		),
	)
}

// DashboardPage wraps content with the student sidebar.
func DashboardPage(meta Meta, sh uistate.Shell, profile learner.Profile, content ...g.Node) g.Node {
	return document(meta, sidebarClass("dashboard", sh),
		h.Aside(h.Class("sidebar"),
			h.A(h.Class("brand"), h.Href(sh.Link("/dashboard")), g.Text(meta.AppName)),
			h.Nav(h.Ul(g.Map(dashboardNav, func(it navItem) g.Node {
				return h.Li(h.A(
					h.Href(sh.Link(it.href)),
					g.If(isActive("/dashboard", it.href, meta.Path), h.Class("active")),
					g.Text(it.label),
				))
			}))),
			h.Div(h.Class("sidebar-profile"),
				h.Span(h.Class("avatar"), g.Text(core.Initials(profile.FirstName+" "+profile.LastName))),
				h.Div(
					h.Strong(g.Text(profile.FirstName+" "+profile.LastName)),
					h.Small(g.Text(profile.Plan+" Member")),
				),
			),
		),
		h.Div(h.Class("shell-main"),
			topBar(sh, meta.Path),
			h.Main(g.Group(content)),
		),
	)
}

// AdminPage wraps content with the admin sidebar and its expandable menu groups.
func AdminPage(meta Meta, sh uistate.Shell, content ...g.Node) g.Node {
	return document(meta, sidebarClass("admin", sh),
		h.Aside(h.Class("sidebar"),
			h.A(h.Class("brand"), h.Href(sh.Link("/admin")), g.Text(meta.AppName+" Admin")),
			h.Nav(h.Ul(g.Map(adminNav, func(it navItem) g.Node {
				return adminNavItem(it, sh, meta.Path)
			}))),
			h.A(h.Class("sidebar-exit"), h.Href("/"), g.Text("Back to site")),
		),
		h.Div(h.Class("shell-main"),
			topBar(sh, meta.Path),
			h.Main(g.Group(content)),
		),
	)
}

func adminNavItem(it navItem, sh uistate.Shell, path string) g.Node {
	if len(it.items) == 0 {
		return h.Li(h.A(
			h.Href(sh.Link(it.href)),
			g.If(isActive("/admin", it.href, path), h.Class("active")),
			g.Text(it.label),
		))
	}

	open := sh.Expanded.Has(it.key)
	childActive := false
	for _, child := range it.items {
		childActive = childActive || isActive("/admin", child.href, path)
	}
	return h.Li(h.Class("menu-group"),
		h.A(
			h.Href(sh.ToggleMenu(it.key).Link(path)),
			h.Aria("expanded", boolAttr(open)),
			g.If(childActive, h.Class("active")),
			g.Text(it.label),
		),
		g.If(open, h.Ul(g.Map(it.items, func(child navItem) g.Node {
			return h.Li(h.A(
				h.Href(sh.Link(child.href)),
				g.If(isActive("/admin", child.href, path), h.Class("active")),
				g.Text(child.label),
			))
		}))),
	)
}

func topBar(sh uistate.Shell, path string) g.Node {
	label := "Close sidebar"
	if !sh.SidebarOpen {
		label = "Open sidebar"
	}
	return h.Header(h.Class("top-bar"),
		h.A(h.Class("sidebar-toggle"), h.Href(sh.ToggleSidebar().Link(path)), h.Aria("label", label), g.Text("☰")),
	)
}

func sidebarClass(base string, sh uistate.Shell) string {
	if sh.SidebarOpen {
		return base + " sidebar-open"
	}
	return base + " sidebar-closed"
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
