package views

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/trezcool/masterly/core/course"
	"github.com/trezcool/masterly/core/uistate"
)

func Home(meta Meta, featured []course.Course) g.Node {
	return PublicPage(meta,
		h.Section(h.Class("hero"), reveal(),
			h.Span(h.Class("eyebrow"), g.Text("MASTERLY AI PROGRAM")),
			h.H1(h.Span(g.Text("Learn AI.")), h.Br(), h.Span(g.Text("Build Real Projects."))),
			h.P(h.Class("lead"), g.Text("A hands-on program that turns beginners into builders: prompt engineering, automation, and real client-ready work.")),
			h.Div(h.Class("cta"),
				h.A(h.Class("btn btn-primary"), h.Href("/signup"), g.Text("Start free")),
				h.A(h.Class("btn"), h.Href("/courses"), g.Text("View curriculum")),
			),
		),
		h.Section(h.Class("learn"),
			h.H2(reveal(), g.Text("What you will learn")),
			h.Div(h.Class("card-grid"), g.Map(learnItems, featureCard)),
		),
		h.Section(h.Class("featured-courses"),
			h.H2(reveal(), g.Text("Featured courses")),
			h.Div(h.Class("card-grid"), g.Map(featured, courseCard)),
		),
		h.Section(h.Class("quotes"),
			h.H2(reveal(), g.Text("What our learners say")),
			h.Div(h.Class("card-grid"), g.Map(testimonials[:3], quoteCard)),
			h.A(h.Href("/testimonials"), g.Text("Read more stories")),
		),
		ctaBanner(),
	)
}

func Courses(meta Meta, catalog []course.Course) g.Node {
	return PublicPage(meta,
		h.Section(h.Class("page-intro"), reveal(),
			h.Span(h.Class("eyebrow"), g.Text("COURSES")),
			h.H1(g.Text("Explore Our Courses")),
			h.P(h.Class("lead"), g.Text("From beginner fundamentals to advanced automation, find the perfect course to level up your AI skills.")),
		),
		g.If(len(catalog) == 0, emptyState("No courses yet.")),
		h.Div(h.Class("card-grid"), g.Map(catalog, courseCard)),
	)
}

// CourseDetail shows one catalog course. Open lists the expanded curriculum modules.
func CourseDetail(meta Meta, c course.Course, open uistate.ToggleSet) g.Node {
	moduleLink := func(m course.Module) string {
		return fmt.Sprintf("%s?open=%s#module-%d", c.Path(), open.Toggle(strconv.Itoa(m.ID)).String(), m.ID)
	}

	return PublicPage(meta,
		h.Section(h.Class("course-hero"), reveal(),
			h.A(h.Href("/courses"), g.Text("← Back to Courses")),
			h.H1(g.Text(c.Title)),
			h.P(h.Class("lead"), g.Text(c.Description)),
			h.Ul(h.Class("course-facts"),
				h.Li(g.Text(c.Level)),
				h.Li(g.Text(c.Duration)),
				h.Li(g.Textf("%d lessons", c.Lessons)),
				h.Li(g.Textf("%s students", humanize.Comma(int64(c.Students)))),
				h.Li(g.Textf("%.1f (%s reviews)", c.Rating, humanize.Comma(int64(c.Reviews)))),
			),
			h.A(h.Class("btn btn-primary"), h.Href("/signup"), g.Text("Enroll Now")),
		),
		h.Section(h.Class("course-about"), reveal(),
			h.H2(g.Text("About this course")),
			h.P(g.Text(c.LongDescription)),
		),
		h.Section(h.Class("course-outcomes"), reveal(),
			h.H2(g.Text("What you will learn")),
			h.Ul(g.Map(c.Outcomes, func(o string) g.Node { return h.Li(g.Text(o)) })),
		),
		h.Section(h.Class("course-curriculum"),
			h.H2(reveal(), g.Text("Curriculum")),
			h.P(h.Class("muted"), g.Textf("%d free preview lessons", c.FreeLessons())),
			g.Map(c.Modules, func(m course.Module) g.Node {
				expanded := open.Has(strconv.Itoa(m.ID))
				return h.Div(h.Class("accordion"), h.ID(fmt.Sprintf("module-%d", m.ID)),
					h.A(h.Class("accordion-toggle"), h.Href(moduleLink(m)), h.Aria("expanded", boolAttr(expanded)),
						h.Strong(g.Text(m.Title)),
						h.Span(h.Class("muted"), g.Textf(" %d lessons", len(m.Lessons))),
					),
					g.If(expanded, h.Ul(h.Class("lesson-list"), g.Map(m.Lessons, func(l course.Lesson) g.Node {
						return h.Li(
							g.Text(l.Title),
							h.Span(h.Class("muted"), g.Text(" "+l.Duration)),
							g.If(l.Free, badge("Free")),
							g.If(!l.Free, h.Span(h.Class("locked"), h.Aria("label", "locked"), g.Text(" 🔒"))),
						)
					}))),
				)
			}),
		),
		h.Section(h.Class("course-projects"), reveal(),
			h.H2(g.Text("Projects you will build")),
			h.Div(h.Class("card-grid"), g.Map(c.Projects, func(p course.Project) g.Node {
				return h.Article(h.Class("card"),
					h.H3(g.Text(p.Title)),
					h.P(g.Text(p.Description)),
					badge(p.Difficulty),
				)
			})),
		),
		h.Section(h.Class("course-tools"), reveal(),
			h.H2(g.Text("Tools you will use")),
			h.Ul(h.Class("chips"), g.Map(c.Tools, func(t string) g.Node { return h.Li(g.Text(t)) })),
		),
		ctaBanner(),
	)
}

func Certification(meta Meta) g.Node {
	return PublicPage(meta,
		h.Section(h.Class("page-intro"), reveal(),
			h.Span(h.Class("eyebrow"), g.Text("VERIFIED CREDENTIALS")),
			h.H1(g.Text("Earn a Certificate That Matters")),
			h.P(h.Class("lead"), g.Text("Complete our rigorous programs and receive industry-recognized certificates that validate your AI skills to employers worldwide.")),
			h.A(h.Class("btn btn-primary"), h.Href("/signup"), g.Text("Start Learning")),
		),
		figures(certificationFigures),
		h.Section(
			h.H2(reveal(), g.Text("How it works")),
			h.Ol(h.Class("steps"), g.Map(certificationSteps, func(s feature) g.Node {
				return h.Li(reveal(), h.H3(g.Text(s.Title)), h.P(g.Text(s.Description)))
			})),
		),
		h.Section(
			h.H2(reveal(), g.Text("Show off your achievement")),
			h.Div(h.Class("card-grid"), g.Map(certificationFeatures, featureCard)),
		),
		ctaBanner(),
	)
}

func Careers(meta Meta) g.Node {
	return PublicPage(meta,
		h.Section(h.Class("page-intro"), reveal(),
			h.Span(h.Class("eyebrow"), g.Text("CAREER OUTCOMES")),
			h.H1(g.Text("Launch Your AI Career")),
			h.P(h.Class("lead"), g.Text("Whether you want a new job, clients of your own, or your own product, there is a path for you.")),
		),
		figures(careerFigures),
		h.Section(
			h.H2(reveal(), g.Text("Choose your path")),
			h.Div(h.Class("card-grid"), g.Map(careerPaths, func(p careerPath) g.Node {
				return h.Article(h.Class("card"), reveal(),
					h.H3(g.Text(p.Title)),
					h.P(g.Text(p.Description)),
					h.Ul(h.Class("chips"), g.Map(p.Roles, func(r string) g.Node { return h.Li(g.Text(r)) })),
				)
			})),
		),
		h.Section(
			h.H2(reveal(), g.Text("Success stories")),
			h.Div(h.Class("card-grid"), g.Map(successStories, func(s story) g.Node {
				return h.Article(h.Class("card"), reveal(),
					h.BlockQuote(g.Text(s.Quote)),
					h.P(h.Strong(g.Text(s.Name)), g.Text(", "+s.Role)),
					h.P(h.Class("muted"), g.Text(s.Before+" → "+s.After)),
				)
			})),
		),
		ctaBanner(),
	)
}

func Testimonials(meta Meta) g.Node {
	return PublicPage(meta,
		h.Section(h.Class("page-intro"), reveal(),
			h.Span(h.Class("eyebrow"), g.Text("COMMUNITY")),
			h.H1(g.Text("Stories From Our Learners")),
			h.P(h.Class("lead"), g.Text("Thousands of learners have changed their careers with Masterly AI.")),
		),
		figures(testimonialFigures),
		h.Div(h.Class("card-grid"), g.Map(testimonials, quoteCard)),
		ctaBanner(),
	)
}

// NotFound is shown for every unknown path.
func NotFound(meta Meta) g.Node {
	return PublicPage(meta,
		h.Section(h.Class("page-intro not-found"),
			h.H1(g.Text("Page not found")),
			h.P(h.Class("lead"), g.Textf("Nothing lives at %s.", meta.Path)),
			h.A(h.Class("btn btn-primary"), h.Href("/"), g.Text("Back home")),
		),
	)
}

// ErrorPage is shown when a page fails to render.
func ErrorPage(meta Meta, code int, msg string) g.Node {
	return PublicPage(meta,
		h.Section(h.Class("page-intro"),
			h.H1(g.Textf("%d", code)),
			h.P(h.Class("lead"), g.Text(msg)),
		),
	)
}

func courseCard(c course.Course) g.Node {
	return h.Article(h.Class("card course-card"), reveal(),
		h.Img(h.Src(c.Image), h.Alt(c.Title), g.Attr("loading", "lazy")),
		badge(c.Level),
		h.H3(h.A(h.Href(c.Path()), g.Text(c.Title))),
		h.P(g.Text(c.Description)),
		h.P(h.Class("muted"), g.Textf("%s · %d lessons · %.1f ★", c.Duration, c.Lessons, c.Rating)),
	)
}

func featureCard(f feature) g.Node {
	return h.Article(h.Class("card"), reveal(), h.H3(g.Text(f.Title)), h.P(g.Text(f.Description)))
}

func quoteCard(s story) g.Node {
	return h.Article(h.Class("card quote"), reveal(),
		h.BlockQuote(g.Text(s.Quote)),
		h.P(h.Strong(g.Text(s.Name)), h.Br(), h.Span(h.Class("muted"), g.Text(s.Role))),
	)
}

func figures(fs []figure) g.Node {
	return h.Div(h.Class("figures"), g.Map(fs, func(f figure) g.Node {
		return h.Div(reveal(), h.P(h.Class("stat-value"), g.Text(f.Value)), h.P(h.Class("stat-label"), g.Text(f.Label)))
	}))
}

func ctaBanner() g.Node {
	return h.Section(h.Class("cta-banner"), reveal(),
		h.H2(g.Text("Ready to start building with AI?")),
		h.A(h.Class("btn btn-primary"), h.Href("/signup"), g.Text("Get Started Free")),
	)
}
