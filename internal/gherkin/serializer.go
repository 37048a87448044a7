package gherkin

import (
	"strings"
)

// Serialize renders a feature in canonical form: an optional tag line, the
// feature header, an indented description, then each scenario with its tags,
// 2-space scenario indent and 4-space step indent, scenarios separated by a
// blank line. Background blocks are re-emitted under their own header.
// Output is deterministic for a given feature.
func Serialize(f *Feature) []byte {
	var b strings.Builder

	if len(f.Tags) > 0 {
		b.WriteString(tagLine(f.Tags))
		b.WriteString("\n")
	}
	b.WriteString("Feature: " + f.Name + "\n")
	if f.Description != "" {
		b.WriteString("  " + f.Description + "\n")
	}
	b.WriteString("\n")

	for _, sc := range f.Scenarios {
		if len(sc.Tags) > 0 {
			b.WriteString("  " + tagLine(sc.Tags) + "\n")
		}
		if sc.Background {
			b.WriteString("  Background:\n")
		} else {
			b.WriteString("  Scenario: " + sc.Name + "\n")
		}
		for _, st := range sc.Steps {
			b.WriteString("    " + string(st.Keyword) + " " + st.Text + "\n")
		}
		b.WriteString("\n")
	}

	return []byte(b.String())
}

func tagLine(tags []string) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "@" + t
	}
	return strings.Join(parts, " ")
}
