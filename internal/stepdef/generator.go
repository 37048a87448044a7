// Package stepdef generates pytest-bdd step definition code from an
// enhanced feature whose steps carry embedded locator references.
package stepdef

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/phoenix-qa/stepfuse/internal/gherkin"
	"github.com/phoenix-qa/stepfuse/internal/locator"
)

// action classifies a step pattern by the automation it needs.
type action string

const (
	actionNavigate action = "navigate"
	actionEnter    action = "enter"
	actionClick    action = "click"
	actionSelect   action = "select"
	actionVerify   action = "verify"
)

// stepDef is one generated step definition.
type stepDef struct {
	Decorator string // given, when or then
	Pattern   string // anchored regex for parsers.re
	FuncName  string
	Action    action
}

// Generator renders step definition files for a target framework.
type Generator struct {
	fw locator.Framework
}

// NewGenerator creates a generator for the framework.
func NewGenerator(fw locator.Framework) *Generator {
	return &Generator{fw: fw}
}

// Generate renders the step definition file for a feature. Output is
// deterministic: definitions follow first appearance order and duplicates
// collapse to one definition.
func (g *Generator) Generate(f *gherkin.Feature) (string, error) {
	defs := collectStepDefs(f)

	tmpl := playwrightTemplate
	if g.fw == locator.FrameworkSelenium {
		tmpl = seleniumTemplate
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, struct {
		Feature string
		Defs    []stepDef
	}{Feature: f.Name, Defs: defs}); err != nil {
		return "", fmt.Errorf("render step definitions: %w", err)
	}
	return b.String(), nil
}

// collectStepDefs walks the feature in order and emits one definition per
// unique (decorator, pattern) pair.
func collectStepDefs(f *gherkin.Feature) []stepDef {
	var defs []stepDef
	seen := make(map[string]bool)
	nameCounts := make(map[string]int)

	for _, sc := range f.Scenarios {
		for _, step := range sc.Steps {
			act, ok := classify(step.Type, step.Text)
			if !ok {
				continue
			}
			decorator := strings.ToLower(string(step.Type))
			pattern := patternFromStep(step.Text)

			key := decorator + "\x00" + pattern
			if seen[key] {
				continue
			}
			seen[key] = true

			base := fmt.Sprintf("step_%s_%s", decorator, act)
			nameCounts[base]++
			name := base
			if nameCounts[base] > 1 {
				name = fmt.Sprintf("%s_%d", base, nameCounts[base])
			}

			defs = append(defs, stepDef{
				Decorator: decorator,
				Pattern:   pattern,
				FuncName:  name,
				Action:    act,
			})
		}
	}
	return defs
}

// classify picks the automation family for a step. The navigate heuristic
// ("on the" phrasing) applies to Given-steps only: a When-step like "I click
// on the ..." is an interaction, not a navigation. Steps that fit no family
// get no generated definition.
func classify(stepType gherkin.StepType, text string) (action, bool) {
	lower := strings.ToLower(text)
	if stepType == gherkin.StepGiven && (strings.Contains(lower, "navigate") || strings.Contains(lower, "on the")) {
		return actionNavigate, true
	}
	switch {
	case strings.Contains(lower, "enter") || strings.Contains(lower, "fill") || strings.Contains(lower, "type"):
		return actionEnter, true
	case strings.Contains(lower, "click") || strings.Contains(lower, "press") || strings.Contains(lower, "tap"):
		return actionClick, true
	case strings.Contains(lower, "select") || strings.Contains(lower, "choose"):
		return actionSelect, true
	case strings.Contains(lower, "see") || strings.Contains(lower, "verify") || strings.Contains(lower, "check"):
		return actionVerify, true
	}
	return "", false
}

var (
	embedRefRE  = regexp.MustCompile(`\$\{[^}]+\}`)
	quotedValRE = regexp.MustCompile(`"[^"]*"`)
)

// patternFromStep converts a step text into a regex pattern for
// parsers.re: embedded ${...} references become a named locator group,
// quoted strings become a named value group, and everything else is
// escaped literally.
func patternFromStep(text string) string {
	type span struct {
		start, end int
		replace    string
	}
	var spans []span

	for _, m := range embedRefRE.FindAllStringIndex(text, -1) {
		spans = append(spans, span{m[0], m[1], `\$\{(?P<locator>[^\s]+)\}`})
	}
	for _, m := range quotedValRE.FindAllStringIndex(text, -1) {
		spans = append(spans, span{m[0], m[1], `"(?P<value>[^"]+)"`})
	}
	// Spans never overlap (quotes cannot appear inside ${...}); sort by start.
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j].start < spans[j-1].start; j-- {
			spans[j], spans[j-1] = spans[j-1], spans[j]
		}
	}

	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(regexp.QuoteMeta(text[last:s.start]))
		b.WriteString(s.replace)
		last = s.end
	}
	b.WriteString(regexp.QuoteMeta(text[last:]))
	return b.String()
}

var playwrightTemplate = template.Must(template.New("playwright").Parse(playwrightTemplateText))

var seleniumTemplate = template.Must(template.New("selenium").Parse(seleniumTemplateText))
