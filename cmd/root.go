// Package cmd implements the stepfuse CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root stepfuse command with all subcommands
// registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stepfuse",
		Short: "stepfuse - bind BDD feature steps to UI element locators",
		Long: "stepfuse fuses behavior-style feature files with UI element locator\n" +
			"files: step texts are rewritten with resolved locator references and a\n" +
			"traceability report records what matched and what did not.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          rootRunE,
	}
	root.PersistentFlags().String("config", "", "config file path (default: .stepfuse.yaml in CWD or $HOME)")
	root.AddCommand(NewFuseCmd(newDefaultFuseIO()))
	root.AddCommand(NewParseCmd(newDefaultFeatureReader()))
	root.AddCommand(NewLocatorsCmd(newDefaultLocatorReader()))
	return root
}

func rootRunE(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}
