package cmd

import (
	"os"

	"github.com/phoenix-qa/stepfuse/internal/export"
)

// osFuseIO is the default FuseIO backed by the OS filesystem. It is an Impl
// type: it performs real file operations and is exercised end to end rather
// than unit tested.
type osFuseIO struct{}

func newDefaultFuseIO() FuseIO {
	return osFuseIO{}
}

func (osFuseIO) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osFuseIO) Exporter(dir string) (FusionExporter, error) {
	return export.NewExporter(dir)
}

// osFeatureReader is the default FeatureReader backed by the OS filesystem.
type osFeatureReader struct{}

func newDefaultFeatureReader() FeatureReader {
	return osFeatureReader{}
}

func (osFeatureReader) ReadFeature(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// osLocatorReader is the default LocatorReader backed by the OS filesystem.
type osLocatorReader struct{}

func newDefaultLocatorReader() LocatorReader {
	return osLocatorReader{}
}

func (osLocatorReader) ReadLocators(path string) ([]byte, error) {
	return os.ReadFile(path)
}
