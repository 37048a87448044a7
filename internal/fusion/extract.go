package fusion

import (
	"regexp"
	"strings"
)

// embedPrefix marks an already-resolved locator reference embedded in step
// text. Candidates carrying it are never re-extracted, so re-running the
// engine over an enhanced feature is a no-op for resolved steps.
const embedPrefix = "${"

// candidate is a token with its position in the step text, used to order
// multi-token extractions by appearance.
type candidate struct {
	pos   int
	token string
}

// extractRule is one phrase-pattern rule. Rules are tried in a fixed order;
// the first rule that yields candidates wins for a given step.
type extractRule interface {
	extract(text string) []candidate
}

// extractRules is the rule priority list: quoted literals first, bare
// verb-keyword phrases as the fallback. New verb families are added here
// without touching matching logic.
var extractRules = []extractRule{
	quotedLiteralRule{},
	bareKeywordRule{},
}

// Extract returns the ordered element-referring tokens of a step text.
// Order follows appearance in the text; duplicates keep their first
// occurrence. A step with no recognizable pattern yields nil, which is a
// normal result, not an error.
func Extract(text string) []string {
	for _, rule := range extractRules {
		if cands := rule.extract(text); len(cands) > 0 {
			return dedupeInOrder(cands)
		}
	}
	return nil
}

// quotedLiteralRule takes any text enclosed in matching double or single
// quotes, verbatim with quotes stripped, in left-to-right order.
type quotedLiteralRule struct{}

var quotedRE = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)

func (quotedLiteralRule) extract(text string) []candidate {
	var cands []candidate
	for _, m := range quotedRE.FindAllStringSubmatchIndex(text, -1) {
		lit := firstGroup(text, m)
		if lit == "" || strings.Contains(lit, embedPrefix) {
			continue
		}
		cands = append(cands, candidate{pos: m[0], token: lit})
	}
	return cands
}

// bareKeywordRule matches verb phrases and takes the word immediately
// following the phrase as the token. Applied only when no quoted literal
// exists in the step.
type bareKeywordRule struct{}

var verbREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\benter\s+(?:text\s+)?(?:into\s+)?(?:the\s+)?(\S+)`),
	regexp.MustCompile(`(?i)\bfill\s+(?:in\s+)?(?:the\s+)?(\S+)`),
	regexp.MustCompile(`(?i)\btype\s+(?:in\s+)?(?:to\s+)?(?:the\s+)?(\S+)`),
	regexp.MustCompile(`(?i)\binput\s+(?:text\s+)?(?:into\s+)?(?:the\s+)?(\S+)`),
	regexp.MustCompile(`(?i)\bclick\s+(?:on\s+)?(?:the\s+)?(\S+)`),
	regexp.MustCompile(`(?i)\bpress\s+(?:the\s+)?(\S+)`),
	regexp.MustCompile(`(?i)\btap\s+(?:on\s+)?(?:the\s+)?(\S+)`),
	regexp.MustCompile(`(?i)\bselect\s+(?:the\s+)?(\S+)`),
	regexp.MustCompile(`(?i)\bchoose\s+(?:the\s+)?(\S+)`),
	regexp.MustCompile(`(?i)\bsee\s+(?:the\s+)?(\S+)`),
	regexp.MustCompile(`(?i)\bverify\s+(?:the\s+)?(\S+)`),
	regexp.MustCompile(`(?i)\bcheck\s+(?:the\s+)?(\S+)`),
}

var wordRE = regexp.MustCompile(`^\w+$`)

func (bareKeywordRule) extract(text string) []candidate {
	var cands []candidate
	for _, re := range verbREs {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			word := text[m[2]:m[3]]
			word = strings.Trim(word, `.,;:!?`)
			// Only identifier-like words can name an element; articles and
			// already-embedded references are skipped.
			if !wordRE.MatchString(word) || isStopWord(word) {
				continue
			}
			cands = append(cands, candidate{pos: m[2], token: word})
		}
	}
	sortCandidates(cands)
	return cands
}

// stopWords are common words that follow an extraction verb without naming
// an element ("click on the ...", "see a message").
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "that": true, "this": true,
	"to": true, "in": true, "into": true, "on": true, "text": true,
}

func isStopWord(w string) bool {
	return stopWords[strings.ToLower(w)]
}

func sortCandidates(cands []candidate) {
	// Insertion sort: candidate lists are tiny and stability keeps the
	// verb-rule order for identical positions.
	for i := 1; i < len(cands); i++ {
		for j := i; j > 0 && cands[j].pos < cands[j-1].pos; j-- {
			cands[j], cands[j-1] = cands[j-1], cands[j]
		}
	}
}

func dedupeInOrder(cands []candidate) []string {
	seen := make(map[string]bool, len(cands))
	var tokens []string
	for _, c := range cands {
		if seen[c.token] {
			continue
		}
		seen[c.token] = true
		tokens = append(tokens, c.token)
	}
	return tokens
}

// firstGroup returns the text of the first non-empty capture group of a
// FindAllStringSubmatchIndex match.
func firstGroup(text string, m []int) string {
	for i := 2; i+1 < len(m); i += 2 {
		if m[i] >= 0 {
			return text[m[i]:m[i+1]]
		}
	}
	return ""
}
