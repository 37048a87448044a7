package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phoenix-qa/stepfuse/internal/gherkin"
)

// FeatureReader reads feature files for the parse command.
type FeatureReader interface {
	ReadFeature(path string) ([]byte, error)
}

// parseOutput is the JSON output schema for the parse command.
type parseOutput struct {
	Version string           `json:"version"`
	Feature *gherkin.Feature `json:"feature"`
}

// NewParseCmd creates the parse subcommand.
func NewParseCmd(reader FeatureReader) *cobra.Command {
	return &cobra.Command{
		Use:          "parse <feature-file>",
		Short:        "Parse a feature file and output JSON",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := reader.ReadFeature(args[0])
			if err != nil {
				return fmt.Errorf("reading feature: %w", err)
			}
			feature, err := gherkin.Parse(src)
			if err != nil {
				return fmt.Errorf("parsing feature: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(parseOutput{Version: "1", Feature: feature})
		},
	}
}
