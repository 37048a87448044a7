package locator

import (
	"fmt"
	"strings"
)

// Framework identifies the target automation framework. It affects only the
// conventions used when constructing variable names and synthesized locator
// expressions; matching logic never branches on it.
type Framework string

const (
	FrameworkPlaywright Framework = "playwright"
	FrameworkSelenium   Framework = "selenium"
)

// ParseFramework validates a framework name. Unknown values are a caller
// error, never silently defaulted.
func ParseFramework(s string) (Framework, error) {
	switch Framework(s) {
	case FrameworkPlaywright, FrameworkSelenium:
		return Framework(s), nil
	}
	return "", fmt.Errorf("unsupported framework %q (expected %q or %q)", s, FrameworkPlaywright, FrameworkSelenium)
}

// Container returns the page-object container prefix used when building
// locator variables (e.g. "self" in "self.user_name_input").
func (f Framework) Container() string {
	return "self"
}

// Variable builds the page-object variable reference for a raw element name.
func (f Framework) Variable(rawName string) string {
	return f.Container() + "." + Normalize(rawName)
}

// Expression synthesizes a locator expression for a scanned element whose
// source file carries only a selector kind and value. Declared expressions
// are always passed through verbatim; this is used only for scanner-format
// files that do not declare one.
func (f Framework) Expression(kind, value string) string {
	if f == FrameworkSelenium {
		return fmt.Sprintf("driver.find_element(By.CSS_SELECTOR, %q)", value)
	}
	switch {
	case containsFold(kind, "role"):
		return fmt.Sprintf("page.get_by_role(%q)", value)
	case containsFold(kind, "text"):
		return fmt.Sprintf("page.get_by_text(%q)", value)
	default:
		return fmt.Sprintf("page.locator(%q)", value)
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
