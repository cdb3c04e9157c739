package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Initials returns the first letter of each space separated word of name.
func Initials(name string) string {
	var ini []rune
	for _, w := range strings.Fields(name) {
		ini = append(ini, []rune(w)[0])
	}
	return string(ini)
}
