// Package export writes fusion outputs — enhanced features, step
// definitions, reports and mapping tables — into a fixed output tree.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/phoenix-qa/stepfuse/internal/fusion"
	"github.com/phoenix-qa/stepfuse/internal/gherkin"
)

// Subdirectories of the output tree.
const (
	featuresDir = "merged_feature_files"
	testsDir    = "python_tests"
	reportsDir  = "fusion_reports"
)

// Exporter writes output files under a base directory. The subdirectory
// layout is created up front so partial runs leave a predictable tree.
type Exporter struct {
	baseDir string
}

// NewExporter creates the output tree rooted at baseDir.
func NewExporter(baseDir string) (*Exporter, error) {
	for _, sub := range []string{featuresDir, testsDir, reportsDir} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	return &Exporter{baseDir: baseDir}, nil
}

// ExportFeature writes the enhanced feature file and returns its path.
func (e *Exporter) ExportFeature(f *gherkin.Feature) (string, error) {
	path := filepath.Join(e.baseDir, featuresDir, SanitizeFilename(f.Name)+".feature")
	if err := os.WriteFile(path, gherkin.Serialize(f), 0o644); err != nil {
		return "", fmt.Errorf("write feature file: %w", err)
	}
	return path, nil
}

// ExportStepDefinitions writes generated step definition code and returns
// its path.
func (e *Exporter) ExportStepDefinitions(code, featureName string) (string, error) {
	path := filepath.Join(e.baseDir, testsDir, "test_"+SanitizeFilename(featureName)+"_steps.py")
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return "", fmt.Errorf("write step definitions: %w", err)
	}
	return path, nil
}

// ExportReport writes the fusion report as indented JSON and returns its
// path.
func (e *Exporter) ExportReport(report *fusion.Report) (string, error) {
	path := filepath.Join(e.baseDir, reportsDir, SanitizeFilename(report.FeatureName)+"_fusion_report.json")
	if err := writeJSON(path, report); err != nil {
		return "", err
	}
	return path, nil
}

// ExportMappingTable writes the traceability table as indented JSON and
// returns its path.
func (e *Exporter) ExportMappingTable(table *fusion.MappingTable) (string, error) {
	path := filepath.Join(e.baseDir, reportsDir, SanitizeFilename(table.Feature)+"_mapping_table.json")
	if err := writeJSON(path, table); err != nil {
		return "", err
	}
	return path, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

var (
	filenameStripRE    = regexp.MustCompile(`[^\w\s-]`)
	filenameCollapseRE = regexp.MustCompile(`[-\s]+`)
)

// SanitizeFilename derives a safe lower-case filename stem from a feature
// name. Empty names fall back to "feature".
func SanitizeFilename(name string) string {
	name = filenameStripRE.ReplaceAllString(name, "")
	name = filenameCollapseRE.ReplaceAllString(name, "_")
	name = strings.ToLower(strings.Trim(name, "_"))
	if name == "" {
		return "feature"
	}
	return name
}
