package listing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type member struct {
	Name  string
	Email string
	Plan  string
}

var members = []member{
	{Name: "Sarah Chen", Email: "sarah.chen@email.com", Plan: "Pro"},
	{Name: "Marcus Johnson", Email: "marcus.j@company.com", Plan: "Free"},
	{Name: "Elena Rodriguez", Email: "elena.r@startup.io", Plan: "Free"},
	{Name: "David Kim", Email: "david.kim@tech.com", Plan: "Pro"},
}

func memberSpec(query, plan string) Spec[member] {
	return Spec[member]{
		Query: query,
		Search: []Field[member]{
			func(m member) string { return m.Name },
			func(m member) string { return m.Email },
		},
		Facets: []Facet[member]{
			{Field: func(m member) string { return m.Plan }, Selected: plan},
		},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		plan  string
		want  []member
	}{
		{name: "no filters", plan: All, want: members},
		{name: "empty facet is inactive", want: members},
		{name: "query only", query: "marcus", plan: All, want: []member{members[1]}},
		{name: "facet only", plan: "Pro", want: []member{members[0], members[3]}},
		{name: "query and facet", query: "o", plan: "Free", want: []member{members[1], members[2]}},
		{name: "case insensitive query", query: "SARAH", plan: All, want: []member{members[0]}},
		{name: "second search field", query: "startup.io", plan: All, want: []member{members[2]}},
		{name: "facet is case sensitive", plan: "pro", want: []member{}},
		{name: "no match", query: "nobody", plan: All, want: []member{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(members, memberSpec(tt.query, tt.plan))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_Example(t *testing.T) {
	users := []member{{Name: "Sarah Chen", Plan: "Pro"}, {Name: "Marcus Johnson", Plan: "Free"}}

	got := Filter(users, memberSpec("marcus", All))
	assert.Equal(t, []member{{Name: "Marcus Johnson", Plan: "Free"}}, got)

	got = Filter(users, memberSpec("", "Pro"))
	assert.Equal(t, []member{{Name: "Sarah Chen", Plan: "Pro"}}, got)
}

// every result is an order-preserving subsequence holding exactly the matching records
func TestFilter_Subsequence(t *testing.T) {
	queries := []string{"", "a", "AN", "com", "zz", " "}
	plans := []string{All, "", "Pro", "Free", "Enterprise"}

	for _, q := range queries {
		for _, p := range plans {
			spec := memberSpec(q, p)
			got := Filter(members, spec)

			i := 0
			for _, m := range members {
				if spec.Matches(m) {
					if assert.Less(t, i, len(got), "query=%q plan=%q", q, p) {
						assert.Equal(t, m, got[i], "query=%q plan=%q", q, p)
					}
					i++
				}
			}
			assert.Len(t, got, i, "query=%q plan=%q", q, p)
		}
	}
}

func TestFilter_NeverNil(t *testing.T) {
	assert.NotNil(t, Filter(nil, memberSpec("", All)))
	assert.NotNil(t, Filter(members, memberSpec("nobody", All)))
}

func TestFilter_DoesNotAlias(t *testing.T) {
	src := append([]member(nil), members...)
	got := Filter(src, memberSpec("", All))
	got[0].Name = "changed"
	assert.Equal(t, "Sarah Chen", src[0].Name)
}

func TestContains(t *testing.T) {
	type event struct{ Action string }
	events := []event{{"Login Success"}, {"Login Failed"}, {"Password Changed"}, {"API Key Generated"}}
	spec := Spec[event]{Facets: []Facet[event]{{
		Field:    func(e event) string { return e.Action },
		Selected: "login",
		Match:    Contains,
	}}}

	got := Filter(events, spec)
	assert.Equal(t, []event{{"Login Success"}, {"Login Failed"}}, got)
}

func TestPage(t *testing.T) {
	p := NewPage(members[:2], "12,847")
	assert.Equal(t, 2, p.Count)
	assert.Equal(t, "Showing 1 to 2 of 12,847 users", p.Summary("users"))

	p = NewPage[member](nil, "3,847")
	assert.Equal(t, []member{}, p.Items)
	assert.Equal(t, "Showing 0 of 3,847 certificates", p.Summary("certificates"))

	p = NewPage(members, "")
	assert.Equal(t, "Showing 1 to 4 of 4 users", p.Summary("users"))
}
