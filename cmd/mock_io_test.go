package cmd

import (
	"fmt"

	"github.com/phoenix-qa/stepfuse/internal/fusion"
	"github.com/phoenix-qa/stepfuse/internal/gherkin"
)

// mockFuseIO serves fixture files from memory and hands out a recording
// exporter.
type mockFuseIO struct {
	files       map[string][]byte
	exporter    *mockExporter
	exporterErr error
	exporterDir string
}

func (m *mockFuseIO) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file", path)
	}
	return data, nil
}

func (m *mockFuseIO) Exporter(dir string) (FusionExporter, error) {
	if m.exporterErr != nil {
		return nil, m.exporterErr
	}
	m.exporterDir = dir
	return m.exporter, nil
}

// mockExporter records everything exported and returns synthetic paths.
type mockExporter struct {
	features []*gherkin.Feature
	stepdefs []string
	reports  []*fusion.Report
	tables   []*fusion.MappingTable
}

func (m *mockExporter) ExportFeature(f *gherkin.Feature) (string, error) {
	m.features = append(m.features, f)
	return "merged_feature_files/out.feature", nil
}

func (m *mockExporter) ExportStepDefinitions(code, featureName string) (string, error) {
	m.stepdefs = append(m.stepdefs, code)
	return "python_tests/test_out_steps.py", nil
}

func (m *mockExporter) ExportReport(report *fusion.Report) (string, error) {
	m.reports = append(m.reports, report)
	return "fusion_reports/out_fusion_report.json", nil
}

func (m *mockExporter) ExportMappingTable(t *fusion.MappingTable) (string, error) {
	m.tables = append(m.tables, t)
	return "fusion_reports/out_mapping_table.json", nil
}

// mockFeatureReader serves a single feature file from memory.
type mockFeatureReader struct {
	data []byte
	err  error
}

func (m *mockFeatureReader) ReadFeature(path string) ([]byte, error) {
	return m.data, m.err
}

// mockLocatorReader serves a single locator file from memory.
type mockLocatorReader struct {
	data []byte
	err  error
}

func (m *mockLocatorReader) ReadLocators(path string) ([]byte, error) {
	return m.data, m.err
}
