package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRootCmd_ShowsHelp(t *testing.T) {
	c := NewRootCmd()
	out := new(bytes.Buffer)
	c.SetOut(out)
	c.SetErr(new(bytes.Buffer))
	c.SetArgs([]string{})

	if err := c.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, sub := range []string{"fuse", "parse", "locators"} {
		if !strings.Contains(out.String(), sub) {
			t.Errorf("help output missing subcommand %q, got:\n%s", sub, out.String())
		}
	}
}

func TestNewRootCmd_UnknownCommand(t *testing.T) {
	c := NewRootCmd()
	c.SetOut(new(bytes.Buffer))
	c.SetErr(new(bytes.Buffer))
	c.SetArgs([]string{"frobnicate"})

	if err := c.Execute(); err == nil {
		t.Error("expected error for unknown subcommand")
	}
}
