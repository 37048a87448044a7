// Package gherkin models behavior-style feature files and converts them to
// and from their textual form.
package gherkin

// StepType is a step keyword family.
type StepType string

const (
	StepGiven StepType = "Given"
	StepWhen  StepType = "When"
	StepThen  StepType = "Then"
	StepAnd   StepType = "And"
	StepBut   StepType = "But"
)

// primaryKeywords are the step families that "And"/"But" inherit from.
var stepKeywords = []StepType{StepGiven, StepWhen, StepThen, StepAnd, StepBut}

// Step is one line of a scenario.
//
// Keyword is the keyword as written ("And", "But", or a primary keyword).
// Type is the resolved family: for "And"/"But" it is the family of the
// nearest preceding primary keyword, so consumers never need to walk back.
type Step struct {
	Keyword StepType `json:"keyword"`
	Type    StepType `json:"step_type"`
	Text    string   `json:"text"`
}

// Scenario is an ordered sequence of steps describing one test case.
// Background marks a "Background:" block, which serializes back under that
// header rather than as a scenario.
type Scenario struct {
	Name       string   `json:"name"`
	Tags       []string `json:"tags,omitempty"`
	Background bool     `json:"background,omitempty"`
	Steps      []Step   `json:"steps"`
}

// Feature is a named collection of scenarios. Scenario and step order is
// meaningful and preserved through parsing, mapping, and serialization.
type Feature struct {
	Name        string     `json:"feature_name"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Scenarios   []Scenario `json:"scenarios"`
}

// TotalSteps returns the number of steps across all scenarios.
func (f *Feature) TotalSteps() int {
	n := 0
	for _, sc := range f.Scenarios {
		n += len(sc.Steps)
	}
	return n
}
