package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/phoenix-qa/stepfuse/internal/fusion"
	"github.com/phoenix-qa/stepfuse/internal/gherkin"
	"github.com/phoenix-qa/stepfuse/internal/locator"
	"github.com/phoenix-qa/stepfuse/internal/stepdef"
)

// FuseIO handles I/O for the fuse command.
type FuseIO interface {
	// ReadFile reads a feature or locator source file.
	ReadFile(path string) ([]byte, error)
	// Exporter opens the output tree rooted at dir.
	Exporter(dir string) (FusionExporter, error)
}

// FusionExporter writes the outputs of one fusion run.
type FusionExporter interface {
	ExportFeature(f *gherkin.Feature) (string, error)
	ExportStepDefinitions(code, featureName string) (string, error)
	ExportReport(report *fusion.Report) (string, error)
	ExportMappingTable(t *fusion.MappingTable) (string, error)
}

// fuseOutput is the JSON output schema for one fused feature.
type fuseOutput struct {
	Version string            `json:"version"`
	Feature string            `json:"feature"`
	Outputs map[string]string `json:"outputs"`
	Report  *fusion.Report    `json:"report"`
}

// NewFuseCmd creates the fuse subcommand.
func NewFuseCmd(fio FuseIO) *cobra.Command {
	var (
		locatorPath  string
		framework    string
		outputDir    string
		outputFormat string
		strictMode   bool
		partial      bool
		jsonMode     bool
	)

	cmd := &cobra.Command{
		Use:          "fuse <feature-file>...",
		Short:        "Map feature steps to locators and export enhanced outputs",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			fileCfg, err := loadFileConfig(configPath)
			if err != nil {
				return err
			}

			// Explicitly set flags win over config file and environment.
			if !cmd.Flags().Changed("framework") {
				framework = fileCfg.Framework
			}
			if !cmd.Flags().Changed("output-dir") {
				outputDir = fileCfg.OutputDir
			}
			if !cmd.Flags().Changed("output-format") {
				outputFormat = fileCfg.OutputFormat
			}
			if !cmd.Flags().Changed("strict") {
				strictMode = fileCfg.StrictMode
			}
			if !cmd.Flags().Changed("partial") {
				partial = fileCfg.PartialMatching
			}

			fw, err := locator.ParseFramework(framework)
			if err != nil {
				return err
			}
			switch outputFormat {
			case fusion.OutputFeature, fusion.OutputSteps, fusion.OutputBoth:
			default:
				return fmt.Errorf("unsupported output format %q (expected %q, %q or %q)",
					outputFormat, fusion.OutputFeature, fusion.OutputSteps, fusion.OutputBoth)
			}
			cfg := fusion.Config{
				Framework:             fw,
				EnablePartialMatching: partial,
				StrictMode:            strictMode,
				OutputFormat:          outputFormat,
			}
			engine, err := fusion.NewEngine(cfg)
			if err != nil {
				return err
			}

			locatorData, err := fio.ReadFile(locatorPath)
			if err != nil {
				return fmt.Errorf("reading locator file: %w", err)
			}
			registry, err := locator.Parse(locatorPath, locatorData, fw)
			if err != nil {
				return err
			}

			exporter, err := fio.Exporter(outputDir)
			if err != nil {
				return err
			}

			var failed int
			for _, featurePath := range args {
				if err := fuseOne(cmd, fio, exporter, engine, registry, featurePath, jsonMode); err != nil {
					var unmatched *fusion.UnmatchedTokenError
					if errors.As(err, &unmatched) {
						return err
					}
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "error: failed to process %s: %v\n", featurePath, err)
				}
			}
			if failed == len(args) {
				return fmt.Errorf("no feature file could be processed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&locatorPath, "locators", "l", "", "locator file (.json, .yaml or .py)")
	cmd.Flags().StringVar(&framework, "framework", "playwright", "target framework (playwright or selenium)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "output", "output directory")
	cmd.Flags().StringVar(&outputFormat, "output-format", "both", "outputs to export (feature, steps or both)")
	cmd.Flags().BoolVar(&strictMode, "strict", false, "fail on any unmatched token")
	cmd.Flags().BoolVar(&partial, "partial", true, "enable partial matching")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "emit machine-readable JSON instead of the summary")
	_ = cmd.MarkFlagRequired("locators")

	return cmd
}

// fuseOne runs the whole pipeline for a single feature file.
func fuseOne(cmd *cobra.Command, fio FuseIO, exporter FusionExporter, engine *fusion.Engine, registry *locator.Registry, featurePath string, jsonMode bool) error {
	src, err := fio.ReadFile(featurePath)
	if err != nil {
		return fmt.Errorf("reading feature: %w", err)
	}
	feature, err := gherkin.Parse(src)
	if err != nil {
		return fmt.Errorf("parsing feature: %w", err)
	}

	enhanced, report, err := engine.MapFeature(feature, registry)
	if err != nil {
		var unmatched *fusion.UnmatchedTokenError
		if errors.As(err, &unmatched) {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: unmatched tokens in strict mode: %s\n", tokensLine(unmatched.Tokens))
		}
		return err
	}

	outputs := make(map[string]string)
	format := engine.Config().OutputFormat

	if format != fusion.OutputSteps {
		path, err := exporter.ExportFeature(enhanced)
		if err != nil {
			return err
		}
		outputs["feature"] = path
	}
	if format != fusion.OutputFeature {
		code, err := stepdef.NewGenerator(engine.Config().Framework).Generate(enhanced)
		if err != nil {
			return err
		}
		path, err := exporter.ExportStepDefinitions(code, enhanced.Name)
		if err != nil {
			return err
		}
		outputs["step_definitions"] = path
	}

	reportPath, err := exporter.ExportReport(report)
	if err != nil {
		return err
	}
	outputs["fusion_report"] = reportPath

	tablePath, err := exporter.ExportMappingTable(fusion.BuildMappingTable(feature, registry))
	if err != nil {
		return err
	}
	outputs["mapping_table"] = tablePath

	if jsonMode {
		out := fuseOutput{Version: "1", Feature: feature.Name, Outputs: outputs, Report: report}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
	}

	printSummary(cmd.OutOrStdout(), registry, report, outputs)
	return nil
}

// printSummary renders the human-readable run summary: a colored match
// ratio, the per-step mapping table, and the produced files.
func printSummary(w io.Writer, registry *locator.Registry, report *fusion.Report, outputs map[string]string) {
	fmt.Fprintf(w, "Feature: %s\n", report.FeatureName)
	fmt.Fprintf(w, "Locators: %d\n", registry.Len())

	ratio := color.New(color.FgGreen)
	if report.UnmatchedSteps > 0 {
		ratio = color.New(color.FgYellow)
	}
	ratio.Fprintf(w, "Matched %d/%d steps (%d with no element reference)\n",
		report.MatchedSteps, report.TotalSteps, report.TotalSteps-report.MatchedSteps-report.UnmatchedSteps)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Step", "Tokens", "Match"})
	for i, m := range report.Mappings {
		t.AppendRow(table.Row{i + 1, m.StepText, tokensLine(m.Tokens), string(m.MatchType)})
	}
	t.Render()

	if len(report.UnmatchedTokens) > 0 {
		color.New(color.FgRed).Fprintf(w, "Unmatched tokens: %s\n", tokensLine(report.UnmatchedTokens))
	}
	for _, warning := range report.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}

	fmt.Fprintln(w, "Outputs:")
	for _, key := range []string{"feature", "step_definitions", "fusion_report", "mapping_table"} {
		if path, ok := outputs[key]; ok {
			fmt.Fprintf(w, "  %s: %s\n", key, path)
		}
	}
}

func tokensLine(tokens []string) string {
	if len(tokens) == 0 {
		return "-"
	}
	line := tokens[0]
	for _, t := range tokens[1:] {
		line += ", " + t
	}
	return line
}
