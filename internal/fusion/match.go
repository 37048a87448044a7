package fusion

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/phoenix-qa/stepfuse/internal/locator"
)

// MatchType classifies how a token resolved against the registry.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchPartial MatchType = "partial"
	MatchNone    MatchType = "none"
)

// suffixAlternates are the element-kind suffixes tried, in this order, when
// a token's normalized form is not itself a registry key.
var suffixAlternates = []string{
	"_input", "_button", "_locator", "_selector", "_field", "_title",
}

// MatchResult is the outcome for one token. Absence of a match is a normal
// result, not an error.
type MatchResult struct {
	Token           string    `json:"token"`
	Matched         bool      `json:"matched"`
	LocatorVariable string    `json:"locator_variable,omitempty"`
	MatchedKey      string    `json:"matched_key,omitempty"`
	MatchType       MatchType `json:"match_type"`
	Suggestion      string    `json:"suggestion,omitempty"`
}

// Match resolves a token against the registry. Strategies are tried in
// order, first success wins: exact key, suffix-alternate exact, then —
// if enabled — partial (lexical overlap, nearest length, first registered
// wins on ties). Unmatched tokens get an advisory fuzzy suggestion that
// never affects matching or counts.
func Match(token string, reg *locator.Registry, enablePartial bool) MatchResult {
	normalized := locator.Normalize(token)
	if normalized == "" {
		return MatchResult{Token: token, MatchType: MatchNone}
	}

	if entry, ok := reg.Get(normalized); ok {
		return exactResult(token, entry)
	}

	for _, suffix := range suffixAlternates {
		if entry, ok := reg.Get(normalized + suffix); ok {
			return exactResult(token, entry)
		}
	}

	if enablePartial {
		if entry, ok := partialMatch(normalized, reg); ok {
			return MatchResult{
				Token:           token,
				Matched:         true,
				LocatorVariable: entry.Variable,
				MatchedKey:      entry.Normalized,
				MatchType:       MatchPartial,
			}
		}
	}

	return MatchResult{
		Token:      token,
		MatchType:  MatchNone,
		Suggestion: suggest(normalized, reg),
	}
}

func exactResult(token string, entry locator.Entry) MatchResult {
	return MatchResult{
		Token:           token,
		Matched:         true,
		LocatorVariable: entry.Variable,
		MatchedKey:      entry.Normalized,
		MatchType:       MatchExact,
	}
}

// partialMatch scans registry keys in insertion order. A key is a candidate
// when one side is a substring of the other, or when the two share at least
// one underscore-separated segment. Among candidates the smallest length
// difference from the query wins; a strict comparison keeps the first
// registered candidate on ties, which makes the result deterministic.
func partialMatch(normalized string, reg *locator.Registry) (locator.Entry, bool) {
	var (
		best     locator.Entry
		bestDiff = -1
	)
	for _, key := range reg.Keys() {
		if !isPartialCandidate(normalized, key) {
			continue
		}
		diff := len(key) - len(normalized)
		if diff < 0 {
			diff = -diff
		}
		if bestDiff == -1 || diff < bestDiff {
			entry, _ := reg.Get(key)
			best, bestDiff = entry, diff
		}
	}
	return best, bestDiff != -1
}

func isPartialCandidate(normalized, key string) bool {
	if strings.Contains(key, normalized) || strings.Contains(normalized, key) {
		return true
	}
	return sharesSegment(normalized, key)
}

// sharesSegment reports whether the two names have any underscore-separated
// segment in common.
func sharesSegment(a, b string) bool {
	segs := make(map[string]bool)
	for _, s := range strings.Split(a, "_") {
		if s != "" {
			segs[s] = true
		}
	}
	for _, s := range strings.Split(b, "_") {
		if s != "" && segs[s] {
			return true
		}
	}
	return false
}

// suggest returns the closest registry key by fuzzy ranking, or "" when
// nothing ranks. Purely advisory: surfaced in reports to help users fix
// their locator files.
func suggest(normalized string, reg *locator.Registry) string {
	ranks := fuzzy.RankFindFold(normalized, reg.Keys())
	if len(ranks) == 0 {
		return ""
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Distance < ranks[j].Distance })
	return ranks[0].Target
}
