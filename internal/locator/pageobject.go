package locator

import (
	"regexp"
	"strings"
)

// assignmentRE matches page-object attribute assignments such as
//
//	self.user_name_input = page.locator("#username")
//
// The right-hand side is captured verbatim; it is never interpreted.
var assignmentRE = regexp.MustCompile(`^\s*self\.(\w+)\s*=\s*(.+?)\s*$`)

// ParsePageObject extracts locator assignments from a programmatic
// page-object source file. Only `self.<name> = <expression>` lines are
// considered; everything else (methods, imports, comments) is skipped.
func ParsePageObject(data []byte, fw Framework) (*Registry, error) {
	reg := NewRegistry()

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		m := assignmentRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, expr := m[1], m[2]

		normalized := Normalize(name)
		if normalized == "" {
			continue
		}
		reg.Add(Entry{
			RawName:    name,
			Normalized: normalized,
			Variable:   fw.Container() + "." + name,
			Expression: expr,
		})
	}
	return reg, nil
}
