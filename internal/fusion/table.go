package fusion

import (
	"github.com/phoenix-qa/stepfuse/internal/gherkin"
	"github.com/phoenix-qa/stepfuse/internal/locator"
)

// MappingTable is the exported traceability table: per scenario, per step,
// which tokens resolved to which locator variables and expressions.
type MappingTable struct {
	Feature   string                 `json:"feature"`
	Scenarios []ScenarioMappingTable `json:"scenarios"`
}

type ScenarioMappingTable struct {
	Scenario string             `json:"scenario"`
	Steps    []StepMappingTable `json:"steps"`
}

type StepMappingTable struct {
	StepType        gherkin.StepType `json:"step_type"`
	StepText        string           `json:"step_text"`
	Tokens          []string         `json:"tokens"`
	MatchedLocators []LocatorBinding `json:"matched_locators"`
}

// LocatorBinding pairs a token with the locator it resolved to, including
// the opaque expression for audit purposes.
type LocatorBinding struct {
	Token             string `json:"token"`
	LocatorVariable   string `json:"locator_variable"`
	LocatorExpression string `json:"locator_expression"`
}

// BuildMappingTable builds the traceability table for a feature against a
// registry. Only exact (direct or suffix-alternate) resolutions are listed;
// the table documents firm bindings, not partial guesses.
func BuildMappingTable(f *gherkin.Feature, reg *locator.Registry) *MappingTable {
	table := &MappingTable{Feature: f.Name}

	for _, sc := range f.Scenarios {
		scTable := ScenarioMappingTable{Scenario: sc.Name}

		for _, step := range sc.Steps {
			tokens := Extract(step.Text)
			stepTable := StepMappingTable{
				StepType:        step.Type,
				StepText:        step.Text,
				Tokens:          tokens,
				MatchedLocators: []LocatorBinding{},
			}

			for _, token := range tokens {
				result := Match(token, reg, false)
				if result.MatchType != MatchExact {
					continue
				}
				entry, _ := reg.Get(result.MatchedKey)
				stepTable.MatchedLocators = append(stepTable.MatchedLocators, LocatorBinding{
					Token:             token,
					LocatorVariable:   entry.Variable,
					LocatorExpression: entry.Expression,
				})
			}

			scTable.Steps = append(scTable.Steps, stepTable)
		}

		table.Scenarios = append(table.Scenarios, scTable)
	}

	return table
}
