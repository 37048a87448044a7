// Package fusion binds behavior-style scenario steps to known UI element
// locators: it extracts element-referring tokens from step text, matches them
// against a locator registry, rewrites step text with resolved references,
// and produces a traceability report.
package fusion

import (
	"fmt"

	"github.com/phoenix-qa/stepfuse/internal/locator"
)

// OutputFormat values are passed through to exporters; the engine never
// interprets them.
const (
	OutputFeature = "feature"
	OutputSteps   = "steps"
	OutputBoth    = "both"
)

// Config controls one mapping run. It is passed explicitly into the engine —
// there is no process-global state — so independent runs can proceed
// concurrently.
type Config struct {
	Framework             locator.Framework `json:"framework"`
	EnablePartialMatching bool              `json:"enable_partial_matching"`
	StrictMode            bool              `json:"strict_mode"`
	OutputFormat          string            `json:"output_format"`
}

// DefaultConfig returns the default configuration: playwright conventions,
// partial matching on, lenient mode.
func DefaultConfig() Config {
	return Config{
		Framework:             locator.FrameworkPlaywright,
		EnablePartialMatching: true,
		StrictMode:            false,
		OutputFormat:          OutputBoth,
	}
}

// Validate reports configuration errors. An unsupported framework is a
// caller error surfaced at call time, never silently defaulted.
func (c Config) Validate() error {
	if _, err := locator.ParseFramework(string(c.Framework)); err != nil {
		return fmt.Errorf("invalid fusion config: %w", err)
	}
	return nil
}
