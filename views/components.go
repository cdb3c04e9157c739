package views

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/trezcool/masterly/core/admin"
	"github.com/trezcool/masterly/core/listing"
	"github.com/trezcool/masterly/core/uistate"
)

// reveal marks an element for the scroll entrance animation.
func reveal() g.Node { return h.Data("reveal", "") }

// FacetSelect is one dropdown of a filter bar.
type FacetSelect struct {
	Name     string
	Selected string
	Choices  []listing.Choice
}

// filterBar is a GET form: submitting it reloads the list with the new query.
func filterBar(action string, sh uistate.Shell, search, placeholder string, facets ...FacetSelect) g.Node {
	return h.Form(h.Class("filter-bar"), h.Method("get"), h.Action(action),
		shellInputs(sh),
		h.Input(h.Type("search"), h.Name("search"), h.Value(search), h.Placeholder(placeholder)),
		g.Map(facets, func(f FacetSelect) g.Node {
			return selectInput(f.Name, f.Selected, f.Choices)
		}),
		h.Button(h.Type("submit"), h.Class("btn"), g.Text("Filter")),
	)
}

func selectInput(name, selected string, choices []listing.Choice) g.Node {
	if selected == "" {
		selected = listing.All
	}
	return h.Select(h.Name(name), h.ID(name),
		g.Map(choices, func(c listing.Choice) g.Node {
			return h.Option(h.Value(c.Value), g.If(c.Value == selected, h.Selected()), g.Text(c.Label))
		}),
	)
}

// shellInputs carries the layout state through GET forms.
func shellInputs(sh uistate.Shell) g.Node {
	q := sh.Query()
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var nodes []g.Node
	for _, k := range keys {
		nodes = append(nodes, h.Input(h.Type("hidden"), h.Name(k), h.Value(q.Get(k))))
	}
	return g.Group(nodes)
}

// withQuery returns sh.Link(path) with extra parameters appended.
func withQuery(sh uistate.Shell, path string, kv ...string) string {
	q := sh.Query()
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	return path + "?" + q.Encode()
}

// pageLink returns sh.Link(path) carrying the page state, with kv pairs applied on top.
// A pair with an empty value removes the parameter.
func pageLink(sh uistate.Shell, path string, state url.Values, kv ...string) string {
	q := sh.Query()
	for k, vs := range state {
		q[k] = vs
	}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			q.Del(kv[i])
		} else {
			q.Set(kv[i], kv[i+1])
		}
	}
	return path + "?" + q.Encode()
}

// panel is a closable detail view shown next to a list. Closing is a plain link.
func panel(title, closeHref string, children ...g.Node) g.Node {
	return h.Aside(h.Class("card panel"), h.Role("dialog"), h.Aria("label", title),
		h.Div(h.Class("panel-header"),
			h.H2(g.Text(title)),
			h.A(h.Class("panel-close"), h.Href(closeHref), h.Aria("label", "Close"), g.Text("×")),
		),
		g.Group(children),
	)
}

func caption(text string) g.Node {
	return h.P(h.Class("list-caption"), g.Text(text))
}

func emptyState(text string) g.Node {
	return h.Div(h.Class("empty-state"), h.P(g.Text(text)))
}

func pageHeader(title, subtitle string, actions ...g.Node) g.Node {
	return h.Div(h.Class("page-header"), reveal(),
		h.Div(
			h.H1(g.Text(title)),
			g.If(subtitle != "", h.P(h.Class("muted"), g.Text(subtitle))),
		),
		g.If(len(actions) > 0, h.Div(h.Class("page-actions"), g.Group(actions))),
	)
}

func progressBar(pct int) g.Node {
	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}
	return h.Div(h.Class("progress"), h.Role("progressbar"), h.Aria("valuenow", fmt.Sprint(pct)),
		h.Div(h.Class("progress-fill"), h.Style(fmt.Sprintf("width: %d%%", pct))),
	)
}

func badge(text string) g.Node {
	cls := strings.ToLower(strings.Join(strings.Fields(text), "-"))
	return h.Span(h.Class("badge badge-"+cls), g.Text(text))
}

func statCard(label, value, change string, up bool) g.Node {
	trend := "trend-up"
	if !up {
		trend = "trend-down"
	}
	return h.Div(h.Class("stat-card"), reveal(),
		h.P(h.Class("stat-value"), g.Text(value)),
		h.P(h.Class("stat-label"), g.Text(label)),
		g.If(change != "", h.Span(h.Class(trend), g.Text(change))),
	)
}

func adminStats(stats []admin.Stat) g.Node {
	return h.Div(h.Class("stat-grid"), g.Map(stats, func(s admin.Stat) g.Node {
		return statCard(s.Label, s.Value, s.Change, s.Up)
	}))
}

// barChart draws every series as horizontal bars scaled to the chart maximum.
func barChart(c admin.Chart) g.Node {
	var max float64
	for _, s := range c.Series {
		if m := s.Max(); m > max {
			max = m
		}
	}
	return h.Div(h.Class("chart"), reveal(),
		h.H3(g.Text(c.Title)),
		g.Map(c.Series, func(s admin.Series) g.Node {
			return h.Div(h.Class("chart-series"),
				g.If(len(c.Series) > 1, h.H4(g.Text(s.Name))),
				g.Map(s.Points, func(p admin.Point) g.Node {
					width := 0.0
					if max > 0 {
						width = p.Value / max * 100
					}
					return h.Div(h.Class("bar-row"),
						h.Span(h.Class("bar-label"), g.Text(p.Label)),
						h.Span(h.Class("bar"), h.Style(fmt.Sprintf("width: %.1f%%", width))),
						h.Span(h.Class("bar-value"), g.Text(formatNumber(p.Value))),
					)
				}),
			)
		}),
	)
}

func table(headers []string, rows ...g.Node) g.Node {
	return tableWithHead(g.Map(headers, func(s string) g.Node { return h.Th(g.Text(s)) }), rows...)
}

func tableWithHead(head g.Node, rows ...g.Node) g.Node {
	return h.Div(h.Class("table-wrap"),
		h.Table(
			h.THead(h.Tr(head)),
			h.TBody(g.Group(rows)),
		),
	)
}

// tabLinks renders one link per tab; the active one is marked.
func tabLinks(tabs uistate.Tabs, label func(key string) string, href func(key string) string) g.Node {
	return h.Nav(h.Class("tabs"), g.Map(tabs.Keys(), func(key string) g.Node {
		return h.A(
			h.Href(href(key)),
			g.If(tabs.IsActive(key), h.Class("active")),
			g.If(tabs.IsActive(key), h.Aria("current", "page")),
			g.Text(label(key)),
		)
	}))
}

func flash(msg string) g.Node {
	return g.If(msg != "", h.Div(h.Class("flash"), h.Role("status"), g.Text(msg)))
}

// field is a labelled input followed by its validation error, if any.
func field(label, name, typ, value string, errs map[string]string, attrs ...g.Node) g.Node {
	msg := errs[name]
	return h.Div(h.Class("field"),
		h.Label(h.For(name), g.Text(label)),
		h.Input(h.ID(name), h.Name(name), h.Type(typ), h.Value(value),
			g.If(msg != "", h.Aria("invalid", "true")),
			g.Group(attrs),
		),
		g.If(msg != "", h.P(h.Class("field-error"), g.Text(msg))),
	)
}

func textArea(label, name, value string, errs map[string]string) g.Node {
	msg := errs[name]
	return h.Div(h.Class("field"),
		h.Label(h.For(name), g.Text(label)),
		h.Textarea(h.ID(name), h.Name(name), h.Rows("4"), g.If(msg != "", h.Aria("invalid", "true")), g.Text(value)),
		g.If(msg != "", h.P(h.Class("field-error"), g.Text(msg))),
	)
}

func selectField(label, name, selected string, choices []listing.Choice, errs map[string]string) g.Node {
	msg := errs[name]
	return h.Div(h.Class("field"),
		h.Label(h.For(name), g.Text(label)),
		selectInput(name, selected, choices),
		g.If(msg != "", h.P(h.Class("field-error"), g.Text(msg))),
	)
}

// stringChoices labels every option with its own value.
func stringChoices(options []string) []listing.Choice {
	cs := make([]listing.Choice, 0, len(options))
	for _, o := range options {
		cs = append(cs, listing.Choice{Value: o, Label: o})
	}
	return cs
}

func checkbox(label, name string, checked bool, errs map[string]string) g.Node {
	msg := errs[name]
	return h.Div(h.Class("field field-check"),
		h.Label(
			h.Input(h.Type("checkbox"), h.Name(name), h.Value("on"), g.If(checked, h.Checked())),
			g.Text(" "+label),
		),
		g.If(msg != "", h.P(h.Class("field-error"), g.Text(msg))),
	)
}

func submitButton(label string) g.Node {
	return h.Button(h.Type("submit"), h.Class("btn btn-primary"), g.Text(label))
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return humanize.Comma(int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
