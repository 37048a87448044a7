package gherkin

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"
)

const utf8BOM = "\xef\xbb\xbf"

// Parse parses feature file content. The parser is line-based and tolerant:
// unrecognized lines (docstrings, tables, prose) are skipped rather than
// rejected, matching how downstream tooling treats hand-edited files.
//
// "And"/"But" steps keep their keyword but resolve their Type to the nearest
// preceding primary keyword (Given if there is none).
func Parse(src []byte) (*Feature, error) {
	if !utf8.Valid(src) {
		return nil, errors.New("feature file contains invalid UTF-8 content")
	}
	src = bytes.TrimPrefix(src, []byte(utf8BOM))

	feature := &Feature{}
	var current *Scenario
	var pendingTags []string
	lastPrimary := StepGiven
	inFeatureHeader := false

	flush := func() {
		if current != nil {
			feature.Scenarios = append(feature.Scenarios, *current)
			current = nil
		}
	}

	for _, rawLine := range strings.Split(string(src), "\n") {
		line := strings.TrimSpace(rawLine)

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "@") {
			pendingTags = parseTags(line)
			continue
		}

		if rest, ok := cutKeyword(line, "Feature:"); ok {
			feature.Name = rest
			feature.Tags = pendingTags
			pendingTags = nil
			inFeatureHeader = true
			continue
		}

		if rest, ok := cutScenarioKeyword(line); ok {
			flush()
			current = &Scenario{Name: rest, Tags: pendingTags}
			pendingTags = nil
			lastPrimary = StepGiven
			inFeatureHeader = false
			continue
		}

		if _, ok := cutKeyword(line, "Background:"); ok {
			flush()
			current = &Scenario{Name: "Background", Background: true}
			pendingTags = nil
			lastPrimary = StepGiven
			inFeatureHeader = false
			continue
		}

		if current != nil {
			if step, ok := parseStep(line, &lastPrimary); ok {
				current.Steps = append(current.Steps, step)
			}
			continue
		}

		// Free text between "Feature:" and the first scenario is the
		// feature description.
		if inFeatureHeader {
			if feature.Description == "" {
				feature.Description = line
			} else {
				feature.Description += " " + line
			}
		}
	}
	flush()

	return feature, nil
}

// parseStep parses one step line, resolving And/But against lastPrimary.
// lastPrimary is updated when the line carries a primary keyword.
func parseStep(line string, lastPrimary *StepType) (Step, bool) {
	for _, kw := range stepKeywords {
		rest, ok := cutKeyword(line, string(kw)+" ")
		if !ok {
			continue
		}
		resolved := kw
		if kw == StepAnd || kw == StepBut {
			resolved = *lastPrimary
		} else {
			*lastPrimary = kw
		}
		return Step{Keyword: kw, Type: resolved, Text: rest}, true
	}
	return Step{}, false
}

// cutKeyword strips a case-insensitive keyword prefix and returns the
// trimmed remainder.
func cutKeyword(line, keyword string) (string, bool) {
	if len(line) < len(keyword) || !strings.EqualFold(line[:len(keyword)], keyword) {
		return "", false
	}
	return strings.TrimSpace(line[len(keyword):]), true
}

// cutScenarioKeyword handles both "Scenario:" and "Scenario Outline:".
func cutScenarioKeyword(line string) (string, bool) {
	if rest, ok := cutKeyword(line, "Scenario Outline:"); ok {
		return rest, true
	}
	return cutKeyword(line, "Scenario:")
}

func parseTags(line string) []string {
	var tags []string
	for _, field := range strings.Fields(line) {
		tags = append(tags, strings.TrimPrefix(field, "@"))
	}
	return tags
}
