package locator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenix-qa/stepfuse/internal/locator"
)

func TestParseJSON_SimpleStringFormat(t *testing.T) {
	data := []byte(`{
		"user_name": "page.locator('#username')",
		"password": "page.locator('#password')"
	}`)

	reg, err := locator.ParseJSON(data, locator.FrameworkPlaywright)
	require.NoError(t, err)

	assert.Equal(t, []string{"user_name", "password"}, reg.Keys())

	entry, ok := reg.Get("user_name")
	require.True(t, ok)
	assert.Equal(t, "user_name", entry.RawName)
	assert.Equal(t, "self.user_name", entry.Variable)
	assert.Equal(t, "page.locator('#username')", entry.Expression)
}

func TestParseJSON_SimpleObjectFormat(t *testing.T) {
	data := []byte(`{
		"user_name": {"variable": "self.user_name_input", "locator": "page.locator('#username')"},
		"submit": {"expression": "page.get_by_role('button')"}
	}`)

	reg, err := locator.ParseJSON(data, locator.FrameworkPlaywright)
	require.NoError(t, err)

	entry, ok := reg.Get("user_name")
	require.True(t, ok)
	assert.Equal(t, "self.user_name_input", entry.Variable)
	assert.Equal(t, "page.locator('#username')", entry.Expression)

	entry, ok = reg.Get("submit")
	require.True(t, ok)
	assert.Equal(t, "self.submit", entry.Variable)
	assert.Equal(t, "page.get_by_role('button')", entry.Expression)
}

// TestParseJSON_SimpleFormatKeyOrder verifies that registry insertion order
// follows declaration order in the file, which the partial matcher's
// tie-break depends on.
func TestParseJSON_SimpleFormatKeyOrder(t *testing.T) {
	data := []byte(`{"c": "3", "a": "1", "b": "2"}`)

	reg, err := locator.ParseJSON(data, locator.FrameworkPlaywright)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, reg.Keys())
}

func TestParseJSON_ScannerFormat(t *testing.T) {
	data := []byte(`{
		"locators": [
			{"custom_name": "User Name", "locator_value": "#username", "locator_type": "CSS Selector"},
			{"custom_name": "submitBtn", "locator_value": "button", "locator_type": "Role"},
			{"custom_name": "", "locator_value": "#skipped", "locator_type": "CSS Selector"}
		],
		"metadata": {"source": "scan"}
	}`)

	reg, err := locator.ParseJSON(data, locator.FrameworkPlaywright)
	require.NoError(t, err)
	require.Equal(t, []string{"user_name", "submit_btn"}, reg.Keys())

	entry, _ := reg.Get("user_name")
	assert.Equal(t, "self.user_name", entry.Variable)
	assert.Equal(t, `page.locator("#username")`, entry.Expression)

	entry, _ = reg.Get("submit_btn")
	assert.Equal(t, `page.get_by_role("button")`, entry.Expression)
}

func TestParseJSON_ScannerFormatSelenium(t *testing.T) {
	data := []byte(`{"locators": [{"custom_name": "user_name", "locator_value": "#username", "locator_type": "CSS Selector"}]}`)

	reg, err := locator.ParseJSON(data, locator.FrameworkSelenium)
	require.NoError(t, err)

	entry, _ := reg.Get("user_name")
	assert.Equal(t, `driver.find_element(By.CSS_SELECTOR, "#username")`, entry.Expression)
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := locator.ParseJSON([]byte(`[1, 2]`), locator.FrameworkPlaywright)
	assert.Error(t, err)
}

func TestParseYAML_KeyValue(t *testing.T) {
	data := []byte(`
user_name: "page.locator('#username')"
submit:
  variable: self.submit_button
  locator: "page.get_by_role('button')"
`)

	reg, err := locator.ParseYAML(data, locator.FrameworkPlaywright)
	require.NoError(t, err)
	assert.Equal(t, []string{"user_name", "submit"}, reg.Keys())

	entry, _ := reg.Get("user_name")
	assert.Equal(t, "self.user_name", entry.Variable)
	assert.Equal(t, "page.locator('#username')", entry.Expression)

	entry, _ = reg.Get("submit")
	assert.Equal(t, "self.submit_button", entry.Variable)
	assert.Equal(t, "page.get_by_role('button')", entry.Expression)
}

func TestParseYAML_Empty(t *testing.T) {
	reg, err := locator.ParseYAML(nil, locator.FrameworkPlaywright)
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
}

func TestParseYAML_NonMappingRoot(t *testing.T) {
	_, err := locator.ParseYAML([]byte("- a\n- b\n"), locator.FrameworkPlaywright)
	assert.Error(t, err)
}

func TestParsePageObject(t *testing.T) {
	data := []byte(`
class LoginPage:
    def __init__(self, page):
        # element handles
        self.user_name_input = page.locator("#username")
        self.password_input = page.locator("#password")
        self.submit_button = page.get_by_role("button", name="Sign in")
        self.page = page

    def login(self):
        self.user_name_input.fill("admin")
`)

	reg, err := locator.ParsePageObject(data, locator.FrameworkPlaywright)
	require.NoError(t, err)
	assert.Equal(t, []string{"user_name_input", "password_input", "submit_button", "page"}, reg.Keys())

	entry, _ := reg.Get("user_name_input")
	assert.Equal(t, "self.user_name_input", entry.Variable)
	assert.Equal(t, `page.locator("#username")`, entry.Expression)
}

func TestParse_AutoDetect(t *testing.T) {
	tests := []struct {
		name string
		path string
		data []byte
	}{
		{name: "json", path: "locators.json", data: []byte(`{"user_name": "x"}`)},
		{name: "yaml", path: "locators.yaml", data: []byte("user_name: x\n")},
		{name: "yml", path: "locators.yml", data: []byte("user_name: x\n")},
		{name: "page object", path: "page.py", data: []byte(`self.user_name = x`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := locator.Parse(tt.path, tt.data, locator.FrameworkPlaywright)
			require.NoError(t, err)
			_, ok := reg.Get("user_name")
			assert.True(t, ok)
		})
	}
}

func TestParse_UnsupportedExtension(t *testing.T) {
	_, err := locator.Parse("locators.txt", []byte("x"), locator.FrameworkPlaywright)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported locator file format")
}
