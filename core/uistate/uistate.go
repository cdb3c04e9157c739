// Package uistate holds the open/closed and selected-tab state owned by layouts and pages.
// Values are immutable: every change returns a new value.
package uistate

import (
	"net/url"
	"strings"
)

// ToggleSet is an ordered set of open keys. Any number of keys may be open at once.
type ToggleSet struct {
	keys []string
}

func NewToggleSet(keys ...string) ToggleSet {
	var s ToggleSet
	for _, k := range keys {
		if k != "" && !s.Has(k) {
			s.keys = append(s.keys, k)
		}
	}
	return s
}

// ParseToggleSet reads a comma separated list, as produced by String.
func ParseToggleSet(s string) ToggleSet {
	if s == "" {
		return ToggleSet{}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return NewToggleSet(parts...)
}

func (s ToggleSet) Has(key string) bool {
	for _, k := range s.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Toggle adds key when absent and removes it when present.
func (s ToggleSet) Toggle(key string) ToggleSet {
	keys := make([]string, 0, len(s.keys)+1)
	found := false
	for _, k := range s.keys {
		if k == key {
			found = true
			continue
		}
		keys = append(keys, k)
	}
	if !found && key != "" {
		keys = append(keys, key)
	}
	return ToggleSet{keys: keys}
}

func (s ToggleSet) Keys() []string {
	return append([]string{}, s.keys...)
}

func (s ToggleSet) Len() int { return len(s.keys) }

func (s ToggleSet) String() string {
	return strings.Join(s.keys, ",")
}

// Tabs holds a single active key among a fixed list.
type Tabs struct {
	keys   []string
	active string
}

// NewTabs activates the first key.
func NewTabs(keys ...string) Tabs {
	t := Tabs{keys: keys}
	if len(keys) > 0 {
		t.active = keys[0]
	}
	return t
}

// Select activates key. Unknown keys leave the tabs unchanged.
func (t Tabs) Select(key string) Tabs {
	for _, k := range t.keys {
		if k == key {
			return Tabs{keys: t.keys, active: key}
		}
	}
	return t
}

func (t Tabs) Active() string           { return t.active }
func (t Tabs) IsActive(key string) bool { return t.active == key }
func (t Tabs) Keys() []string           { return append([]string{}, t.keys...) }

// Shell is the state owned by a layout: sidebar visibility and expanded menu groups.
// It travels in the query string so that toggling is a plain link.
type Shell struct {
	SidebarOpen bool
	Expanded    ToggleSet
}

const (
	sidebarParam  = "sidebar"
	expandedParam = "expanded"
)

// ShellFromQuery reads the shell state, falling back to defaultExpanded when the
// expanded parameter is absent. The sidebar is open unless sidebar=closed.
func ShellFromQuery(q url.Values, defaultExpanded ...string) Shell {
	sh := Shell{SidebarOpen: q.Get(sidebarParam) != "closed"}
	if _, ok := q[expandedParam]; ok {
		sh.Expanded = ParseToggleSet(q.Get(expandedParam))
	} else {
		sh.Expanded = NewToggleSet(defaultExpanded...)
	}
	return sh
}

// Query encodes the shell state.
func (sh Shell) Query() url.Values {
	q := url.Values{}
	if !sh.SidebarOpen {
		q.Set(sidebarParam, "closed")
	}
	q.Set(expandedParam, sh.Expanded.String())
	return q
}

func (sh Shell) ToggleSidebar() Shell {
	return Shell{SidebarOpen: !sh.SidebarOpen, Expanded: sh.Expanded}
}

func (sh Shell) ToggleMenu(key string) Shell {
	return Shell{SidebarOpen: sh.SidebarOpen, Expanded: sh.Expanded.Toggle(key)}
}

// Link returns path with the shell state appended.
func (sh Shell) Link(path string) string {
	return path + "?" + sh.Query().Encode()
}
