package locator

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Parse parses locator file data, auto-detecting the format from the path
// extension. Supported formats: .json (scanner or simple key/value), .yaml
// and .yml (key/value), .py (page-object class).
func Parse(path string, data []byte, fw Framework) (*Registry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data, fw)
	case ".yaml", ".yml":
		return ParseYAML(data, fw)
	case ".py":
		return ParsePageObject(data, fw)
	default:
		return nil, fmt.Errorf("unsupported locator file format: %s", filepath.Ext(path))
	}
}
