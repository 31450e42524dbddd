// Package query filters and searches record tables. Every function returns a
// derived table and leaves its input untouched.
package query

import (
	"strings"

	"golang.org/x/text/cases"
)

// matcher tests values for a case-insensitive substring. It is not safe for
// concurrent use.
type matcher struct {
	folder cases.Caser
	needle string
}

func newMatcher(q string) *matcher {
	folder := cases.Fold()
	return &matcher{folder: folder, needle: folder.String(q)}
}

func (m *matcher) match(s string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(m.folder.String(s), m.needle)
}
