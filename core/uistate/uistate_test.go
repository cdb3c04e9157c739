package uistate

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleSet(t *testing.T) {
	s := NewToggleSet()
	assert.False(t, s.Has("content"))

	s = s.Toggle("content")
	assert.True(t, s.Has("content"))

	s2 := s.Toggle("faq-1")
	assert.Equal(t, []string{"content", "faq-1"}, s2.Keys(), "several keys may be open")
	assert.Equal(t, []string{"content"}, s.Keys(), "toggle returns a new set")

	s2 = s2.Toggle("content")
	assert.Equal(t, []string{"faq-1"}, s2.Keys())
	assert.Equal(t, 0, s2.Toggle("faq-1").Len())
}

func TestToggleSet_Involution(t *testing.T) {
	s := NewToggleSet("a", "b")
	for _, k := range []string{"a", "b", "c"} {
		assert.Equal(t, s.Has(k), s.Toggle(k).Toggle(k).Has(k), k)
	}
}

func TestParseToggleSet(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: []string{}},
		{in: "content", want: []string{"content"}},
		{in: "content, users,content,,", want: []string{"content", "users"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s := ParseToggleSet(tt.in)
			assert.Equal(t, tt.want, s.Keys())
			assert.Equal(t, s.Keys(), ParseToggleSet(s.String()).Keys())
		})
	}
}

func TestTabs(t *testing.T) {
	tabs := NewTabs("all", "in-progress", "completed")
	assert.Equal(t, "all", tabs.Active())

	tabs = tabs.Select("completed")
	assert.True(t, tabs.IsActive("completed"))
	assert.False(t, tabs.IsActive("all"))

	assert.Equal(t, "completed", tabs.Select("archived").Active(), "unknown keys are ignored")
	assert.Equal(t, "", NewTabs().Active())
}

func TestShell(t *testing.T) {
	sh := ShellFromQuery(url.Values{}, "content")
	assert.True(t, sh.SidebarOpen)
	assert.Equal(t, []string{"content"}, sh.Expanded.Keys())

	closed := sh.ToggleSidebar()
	assert.False(t, closed.SidebarOpen)
	assert.True(t, sh.SidebarOpen)

	round := ShellFromQuery(closed.ToggleMenu("content").Query(), "content")
	assert.False(t, round.SidebarOpen)
	assert.Equal(t, 0, round.Expanded.Len(), "an explicit empty list overrides the default")

	assert.Equal(t, "/admin?expanded=content", sh.Link("/admin"))
	assert.Equal(t, "/admin?expanded=content&sidebar=closed", closed.Link("/admin"))
}
