package main

import (
	"bytes"
	"strings"
	"testing"
)

// runCLI executes the root command with the given arguments and returns
// everything it wrote.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output %q does not contain %q", haystack, needle)
	}
}

// newTestLibrary initializes a library in a fresh temp dir and isolates
// the alias registry from the developer's real one.
func newTestLibrary(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	if _, err := runCLI(t, "init", dir); err != nil {
		t.Fatalf("init: %v", err)
	}
	return dir
}
