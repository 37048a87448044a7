package export_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-qa/stepfuse/internal/export"
	"github.com/phoenix-qa/stepfuse/internal/fusion"
	"github.com/phoenix-qa/stepfuse/internal/gherkin"
)

func TestNewExporter_CreatesTree(t *testing.T) {
	base := t.TempDir()

	_, err := export.NewExporter(base)
	require.NoError(t, err)

	for _, sub := range []string{"merged_feature_files", "python_tests", "fusion_reports"} {
		info, err := os.Stat(filepath.Join(base, sub))
		require.NoError(t, err, "subdirectory %s", sub)
		assert.True(t, info.IsDir())
	}
}

func TestExportFeature(t *testing.T) {
	base := t.TempDir()
	exporter, err := export.NewExporter(base)
	require.NoError(t, err)

	f := &gherkin.Feature{
		Name: "User Login",
		Scenarios: []gherkin.Scenario{
			{Name: "S", Steps: []gherkin.Step{{Keyword: gherkin.StepGiven, Type: gherkin.StepGiven, Text: "a step"}}},
		},
	}

	path, err := exporter.ExportFeature(f)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "merged_feature_files", "user_login.feature"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(gherkin.Serialize(f)), string(data))
}

func TestExportStepDefinitions(t *testing.T) {
	base := t.TempDir()
	exporter, err := export.NewExporter(base)
	require.NoError(t, err)

	path, err := exporter.ExportStepDefinitions("# generated\n", "User Login")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "python_tests", "test_user_login_steps.py"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# generated\n", string(data))
}

func TestExportReport(t *testing.T) {
	base := t.TempDir()
	exporter, err := export.NewExporter(base)
	require.NoError(t, err)

	report := &fusion.Report{
		FeatureName:     "Login",
		TotalSteps:      2,
		MatchedSteps:    1,
		UnmatchedSteps:  1,
		UnmatchedTokens: []string{"mystery"},
		Warnings:        []string{},
	}

	path, err := exporter.ExportReport(report)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "fusion_reports", "login_fusion_report.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got fusion.Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, report.FeatureName, got.FeatureName)
	assert.Equal(t, report.UnmatchedTokens, got.UnmatchedTokens)
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestExportMappingTable(t *testing.T) {
	base := t.TempDir()
	exporter, err := export.NewExporter(base)
	require.NoError(t, err)

	table := &fusion.MappingTable{Feature: "Login"}

	path, err := exporter.ExportMappingTable(table)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "fusion_reports", "login_mapping_table.json"), path)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "spaces to underscores", in: "User Login", want: "user_login"},
		{name: "punctuation stripped", in: "Login: valid/invalid!", want: "login_validinvalid"},
		{name: "hyphens collapse", in: "login - page", want: "login_page"},
		{name: "already safe", in: "checkout", want: "checkout"},
		{name: "empty falls back", in: "", want: "feature"},
		{name: "only punctuation falls back", in: "!!!", want: "feature"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, export.SanitizeFilename(tt.in))
		})
	}
}
