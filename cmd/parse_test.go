package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewParseCmd_JSONOutput(t *testing.T) {
	reader := &mockFeatureReader{
		data: []byte(`Feature: Login
  Scenario: Valid login
    Given I am on the login page
    When I enter "user_name"
`),
	}
	c := NewParseCmd(reader)
	out := new(bytes.Buffer)
	c.SetOut(out)
	c.SetArgs([]string{"login.feature"})

	if err := c.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var output parseOutput
	if err := json.Unmarshal(out.Bytes(), &output); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if output.Version != "1" {
		t.Errorf("Version = %q, want %q", output.Version, "1")
	}
	if output.Feature == nil || output.Feature.Name != "Login" {
		t.Errorf("Feature = %+v, want name Login", output.Feature)
	}
	if len(output.Feature.Scenarios) != 1 {
		t.Fatalf("len(Scenarios) = %d, want 1", len(output.Feature.Scenarios))
	}
	if got := len(output.Feature.Scenarios[0].Steps); got != 2 {
		t.Errorf("len(Steps) = %d, want 2", got)
	}
}

func TestNewParseCmd_ReadError(t *testing.T) {
	reader := &mockFeatureReader{err: errors.New("disk error")}
	c := NewParseCmd(reader)
	out := new(bytes.Buffer)
	c.SetOut(out)
	c.SetErr(new(bytes.Buffer))
	c.SetArgs([]string{"login.feature"})

	if err := c.Execute(); err == nil {
		t.Error("expected error when ReadFeature fails")
	}
	if out.Len() > 0 {
		t.Errorf("expected no stdout on read error, got: %s", out.String())
	}
}

func TestNewParseCmd_InvalidUTF8(t *testing.T) {
	reader := &mockFeatureReader{data: []byte{0xff, 0xfe}}
	c := NewParseCmd(reader)
	c.SetOut(new(bytes.Buffer))
	c.SetErr(new(bytes.Buffer))
	c.SetArgs([]string{"login.feature"})

	if err := c.Execute(); err == nil {
		t.Error("expected error for invalid UTF-8 content")
	}
}

func TestNewParseCmd_NoArgs(t *testing.T) {
	c := NewParseCmd(&mockFeatureReader{})
	c.SetOut(new(bytes.Buffer))
	c.SetErr(new(bytes.Buffer))
	c.SetArgs([]string{})

	if err := c.Execute(); err == nil {
		t.Error("expected error when no feature file is given")
	}
}
