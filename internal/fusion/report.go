package fusion

import (
	"github.com/phoenix-qa/stepfuse/internal/gherkin"
)

// MappingEntry links one step to its extraction and match outcomes. StepText
// is the pre-rewrite text; Tokens is the extraction snapshot, never mutated
// afterwards. There is one entry per step even when no tokens were
// extracted.
type MappingEntry struct {
	Scenario  string            `json:"scenario"`
	Keyword   gherkin.StepType  `json:"keyword"`
	StepType  gherkin.StepType  `json:"step_type"`
	StepText  string            `json:"step_text"`
	Tokens    []string          `json:"tokens"`
	Results   []MatchResult     `json:"results,omitempty"`
	Matched   bool              `json:"matched"`
	MatchType MatchType         `json:"match_type"`
}

// Report is the traceability record of one mapping run. It is assembled once
// by the engine and not modified afterwards.
//
// MatchedSteps + UnmatchedSteps equals the number of steps that produced at
// least one token; TotalSteps additionally counts zero-token steps.
type Report struct {
	FeatureName     string         `json:"feature_name"`
	TotalSteps      int            `json:"total_steps"`
	MatchedSteps    int            `json:"matched_steps"`
	UnmatchedSteps  int            `json:"unmatched_steps"`
	Mappings        []MappingEntry `json:"mappings"`
	UnmatchedTokens []string       `json:"unmatched_tokens"`
	Warnings        []string       `json:"warnings"`
}

// weakestMatchType folds per-token match kinds into the step-level kind:
// exact only when every token matched exactly, partial when every token
// matched but at least one partially, none otherwise.
func weakestMatchType(results []MatchResult) MatchType {
	if len(results) == 0 {
		return MatchNone
	}
	kind := MatchExact
	for _, r := range results {
		switch r.MatchType {
		case MatchNone:
			return MatchNone
		case MatchPartial:
			kind = MatchPartial
		}
	}
	return kind
}
