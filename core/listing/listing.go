// Package listing implements the search-and-facet predicate shared by every list view.
package listing

import (
	"fmt"
	"strings"
)

// All is the facet value that matches every record.
const All = "all"

type (
	// Field selects one text field of a record.
	Field[T any] func(T) string

	// Matcher reports whether a record value satisfies the selected facet value.
	Matcher func(selected, value string) bool

	// Facet is a categorical filter bound to one record field.
	// It is inactive when Selected is All or empty.
	Facet[T any] struct {
		Field    Field[T]
		Selected string
		Match    Matcher // defaults to Exact
	}

	// Spec holds everything needed to filter a list.
	Spec[T any] struct {
		Query  string
		Search []Field[T]
		Facets []Facet[T]
	}
)

// Exact is the default facet matcher: case-sensitive equality.
func Exact(selected, value string) bool { return selected == value }

// Contains matches when value contains selected, ignoring case.
func Contains(selected, value string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(selected))
}

// Active reports whether the facet restricts the result.
func (f Facet[T]) Active() bool {
	return f.Selected != "" && f.Selected != All
}

func (f Facet[T]) matches(rec T) bool {
	if !f.Active() {
		return true
	}
	match := f.Match
	if match == nil {
		match = Exact
	}
	return match(f.Selected, f.Field(rec))
}

// Matches reports whether rec satisfies the search query and all active facets.
func (s Spec[T]) Matches(rec T) bool {
	if s.Query != "" {
		q := strings.ToLower(s.Query)
		found := false
		for _, fld := range s.Search {
			if strings.Contains(strings.ToLower(fld(rec)), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, f := range s.Facets {
		if !f.matches(rec) {
			return false
		}
	}
	return true
}

// Filter returns the records matching spec, in their original order.
// The result is never nil.
func Filter[T any](records []T, spec Spec[T]) []T {
	res := make([]T, 0, len(records))
	for _, rec := range records {
		if spec.Matches(rec) {
			res = append(res, rec)
		}
	}
	return res
}

// Page is a filtered list together with its pagination caption.
type Page[T any] struct {
	Items      []T    `json:"items"`
	Count      int    `json:"count"`
	TotalLabel string `json:"total_label"`
}

// NewPage wraps items. totalLabel is the display total shown in the caption;
// it is a fixed label and is not derived from len(items).
func NewPage[T any](items []T, totalLabel string) Page[T] {
	if items == nil {
		items = []T{}
	}
	if totalLabel == "" {
		totalLabel = fmt.Sprint(len(items))
	}
	return Page[T]{Items: items, Count: len(items), TotalLabel: totalLabel}
}

// Summary renders the caption, e.g. "Showing 1 to 8 of 3,847 certificates".
func (p Page[T]) Summary(noun string) string {
	if p.Count == 0 {
		return fmt.Sprintf("Showing 0 of %s %s", p.TotalLabel, noun)
	}
	return fmt.Sprintf("Showing 1 to %d of %s %s", p.Count, p.TotalLabel, noun)
}

// Choice is one selectable value of a facet, as offered by a filter dropdown.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
