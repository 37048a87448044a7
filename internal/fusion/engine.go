package fusion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phoenix-qa/stepfuse/internal/gherkin"
	"github.com/phoenix-qa/stepfuse/internal/locator"
)

// UnmatchedTokenError is the strict-mode failure: at least one token of the
// named step has no registry match. No partially enhanced feature
// accompanies it.
type UnmatchedTokenError struct {
	Feature  string
	Scenario string
	Step     string
	Tokens   []string
}

func (e *UnmatchedTokenError) Error() string {
	return fmt.Sprintf("feature %q: scenario %q: step %q: no locator found for tokens: %s",
		e.Feature, e.Scenario, e.Step, strings.Join(e.Tokens, ", "))
}

// Engine maps feature steps to locator references. It holds only
// configuration: every MapFeature call is a pure function of its inputs, so
// one engine may serve concurrent calls over independent inputs.
type Engine struct {
	cfg Config
}

// NewEngine validates the configuration and returns an engine.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// MapFeature resolves every step of the feature against the registry and
// returns an enhanced copy plus the traceability report. The input feature
// and registry are never mutated.
//
// In strict mode any unmatched token aborts the whole run with an
// *UnmatchedTokenError and no enhanced feature. In lenient mode (default)
// unmatched tokens are recorded in the report and the affected step text is
// left unrewritten for those tokens only.
func (e *Engine) MapFeature(f *gherkin.Feature, reg *locator.Registry) (*gherkin.Feature, *Report, error) {
	report := &Report{
		FeatureName:     f.Name,
		TotalSteps:      f.TotalSteps(),
		UnmatchedTokens: []string{},
		Warnings:        []string{},
	}

	enhanced := &gherkin.Feature{
		Name:        f.Name,
		Description: f.Description,
		Tags:        append([]string(nil), f.Tags...),
	}

	seenUnmatched := make(map[string]bool)

	for _, sc := range f.Scenarios {
		outSc := gherkin.Scenario{
			Name:       sc.Name,
			Tags:       append([]string(nil), sc.Tags...),
			Background: sc.Background,
		}

		for _, step := range sc.Steps {
			entry, rewritten, err := e.mapStep(f.Name, sc.Name, step, reg)
			if err != nil {
				return nil, nil, err
			}

			report.Mappings = append(report.Mappings, entry)
			switch {
			case len(entry.Tokens) == 0:
				// Excluded from both counts: there was no element
				// reference to resolve.
			case entry.Matched:
				report.MatchedSteps++
			default:
				report.UnmatchedSteps++
				for _, r := range entry.Results {
					if r.Matched || seenUnmatched[r.Token] {
						continue
					}
					seenUnmatched[r.Token] = true
					report.UnmatchedTokens = append(report.UnmatchedTokens, r.Token)
				}
				report.Warnings = append(report.Warnings, stepWarning(f.Name, sc.Name, entry))
			}
			for _, r := range entry.Results {
				if r.MatchType == MatchPartial {
					report.Warnings = append(report.Warnings,
						fmt.Sprintf("partial match: token %q resolved to %q", r.Token, r.MatchedKey))
				}
			}

			outStep := step
			outStep.Text = rewritten
			outSc.Steps = append(outSc.Steps, outStep)
		}

		enhanced.Scenarios = append(enhanced.Scenarios, outSc)
	}

	return enhanced, report, nil
}

// mapStep extracts and matches one step's tokens and returns its mapping
// entry plus the (possibly) rewritten text.
func (e *Engine) mapStep(featureName, scenarioName string, step gherkin.Step, reg *locator.Registry) (MappingEntry, string, error) {
	tokens := Extract(step.Text)

	entry := MappingEntry{
		Scenario: scenarioName,
		Keyword:  step.Keyword,
		StepType: step.Type,
		StepText: step.Text,
		Tokens:   tokens,
	}

	if len(tokens) == 0 {
		entry.MatchType = MatchNone
		return entry, step.Text, nil
	}

	var unmatched []string
	for _, token := range tokens {
		result := Match(token, reg, e.cfg.EnablePartialMatching)
		entry.Results = append(entry.Results, result)
		if !result.Matched {
			unmatched = append(unmatched, token)
		}
	}

	if len(unmatched) > 0 && e.cfg.StrictMode {
		return MappingEntry{}, "", &UnmatchedTokenError{
			Feature:  featureName,
			Scenario: scenarioName,
			Step:     step.Text,
			Tokens:   unmatched,
		}
	}

	entry.Matched = len(unmatched) == 0
	entry.MatchType = weakestMatchType(entry.Results)

	rewritten := step.Text
	for _, result := range entry.Results {
		if result.Matched {
			rewritten = rewriteToken(rewritten, result.Token, result.LocatorVariable)
		}
	}
	return entry, rewritten, nil
}

// rewriteToken replaces a matched token occurrence with its embedded locator
// reference. Quoted occurrences are replaced with the quotes; bare
// occurrences are replaced on word boundaries, case-insensitively.
func rewriteToken(text, token, variable string) string {
	ref := "${" + variable + "}"

	for _, quote := range []string{`"`, `'`} {
		quoted := quote + token + quote
		if strings.Contains(text, quoted) {
			return strings.ReplaceAll(text, quoted, ref)
		}
	}

	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
	if err != nil {
		return text
	}
	return re.ReplaceAllLiteralString(text, ref)
}

func stepWarning(featureName, scenarioName string, entry MappingEntry) string {
	var tokens []string
	for _, r := range entry.Results {
		if !r.Matched {
			tokens = append(tokens, r.Token)
		}
	}
	return fmt.Sprintf("feature %q: scenario %q: step %q: no locator found for tokens: %s",
		featureName, scenarioName, entry.StepText, strings.Join(tokens, ", "))
}
