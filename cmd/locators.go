package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/phoenix-qa/stepfuse/internal/locator"
)

// LocatorReader reads locator files for the locators command.
type LocatorReader interface {
	ReadLocators(path string) ([]byte, error)
}

// locatorsOutput is the JSON output schema for the locators command.
type locatorsOutput struct {
	Version  string          `json:"version"`
	Count    int             `json:"count"`
	Locators []locator.Entry `json:"locators"`
}

// NewLocatorsCmd creates the locators subcommand.
func NewLocatorsCmd(reader LocatorReader) *cobra.Command {
	var (
		framework string
		jsonMode  bool
	)

	cmd := &cobra.Command{
		Use:          "locators <locator-file>",
		Short:        "Parse a locator file and list its entries",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fw, err := locator.ParseFramework(framework)
			if err != nil {
				return err
			}

			data, err := reader.ReadLocators(args[0])
			if err != nil {
				return fmt.Errorf("reading locator file: %w", err)
			}
			registry, err := locator.Parse(args[0], data, fw)
			if err != nil {
				return err
			}

			entries := make([]locator.Entry, 0, registry.Len())
			for _, key := range registry.Keys() {
				entry, _ := registry.Get(key)
				entries = append(entries, entry)
			}

			if jsonMode {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(locatorsOutput{Version: "1", Count: len(entries), Locators: entries})
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Name", "Variable", "Expression"})
			for _, e := range entries {
				t.AppendRow(table.Row{e.Normalized, e.Variable, e.Expression})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&framework, "framework", "playwright", "target framework (playwright or selenium)")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "emit machine-readable JSON instead of the table")

	return cmd
}
