package locator

import (
	"regexp"
	"strings"
)

var (
	camelBoundaryRE = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	separatorRE     = regexp.MustCompile(`[\s.\-]+`)
	nonWordRE       = regexp.MustCompile(`[^a-z0-9_]+`)
	underscoreRunRE = regexp.MustCompile(`_+`)
)

// Normalize canonicalizes an identifier-like string for comparison: surrounding
// whitespace and quotes are trimmed, camelCase boundaries become underscores,
// runs of spaces, dots and hyphens collapse to a single underscore, and the
// result is lower-cased with leading/trailing underscores removed.
//
// Element-kind suffixes such as "_input" or "_button" are NOT stripped here;
// they are tried as alternates by the matcher instead, so that distinct
// registry keys like "submit_button" and "submit_link" stay distinct.
//
// Normalize is total: it never fails and may return an empty string.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	s = camelBoundaryRE.ReplaceAllString(s, "${1}_${2}")
	s = separatorRE.ReplaceAllString(s, "_")
	s = strings.ToLower(s)
	s = nonWordRE.ReplaceAllString(s, "_")
	s = underscoreRunRE.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
