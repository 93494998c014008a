package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cratekeeper/internal/library"
)

func TestRootShowsHelp(t *testing.T) {
	out, err := runCLI(t)
	if err != nil {
		t.Fatalf("bare invocation: %v", err)
	}
	for _, sub := range []string{"init", "add", "process", "tag", "deposit"} {
		requireContains(t, out, sub)
	}
}

func TestInitCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sets")
	out, err := runCLI(t, "init", dir)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	requireContains(t, out, "Initialized library at")

	if !library.IsLibrary(dir) {
		t.Error("init should leave a recognizable library behind")
	}
	if _, err := os.Stat(filepath.Join(dir, ".cratekeeper", "config.toml")); err != nil {
		t.Errorf("config file: %v", err)
	}

	// Repeating init is harmless.
	if _, err := runCLI(t, "init", dir); err != nil {
		t.Fatalf("second init: %v", err)
	}
}

func TestShowCommand(t *testing.T) {
	dir := newTestLibrary(t)

	out, err := runCLI(t, "show", dir)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Library "+dir)
	requireContains(t, out, "Queued: 0 entries")
	requireContains(t, out, "auto_tag")
	requireContains(t, out, "drop")
	requireContains(t, out, "download, tag, deposit")
}

func TestShowRejectsUninitialized(t *testing.T) {
	_, err := runCLI(t, "show", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "not a library") {
		t.Fatalf("err = %v, want a hint to run init", err)
	}
}

func TestAliasCommands(t *testing.T) {
	dir := newTestLibrary(t)

	out, err := runCLI(t, "alias", dir, "techno")
	if err != nil {
		t.Fatalf("alias set: %v", err)
	}
	requireContains(t, out, "Registered alias techno")

	// The alias now resolves as a LIBRARY argument.
	out, err = runCLI(t, "show", "techno")
	if err != nil {
		t.Fatalf("show via alias: %v", err)
	}
	requireContains(t, out, "Aliases: techno")

	out, err = runCLI(t, "alias", dir)
	if err != nil {
		t.Fatalf("alias list: %v", err)
	}
	requireContains(t, out, "techno")

	out, err = runCLI(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "techno")
	requireContains(t, out, dir)

	out, err = runCLI(t, "alias", "--remove", "techno")
	if err != nil {
		t.Fatalf("alias remove: %v", err)
	}
	requireContains(t, out, "Removed alias techno")

	if _, err := runCLI(t, "show", "techno"); err == nil {
		t.Error("a removed alias should no longer resolve")
	}
}

func TestAliasRemoveUnknown(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, err := runCLI(t, "alias", "--remove", "nope")
	if err == nil || !strings.Contains(err.Error(), "no alias named") {
		t.Fatalf("err = %v", err)
	}
}

func TestListCommandEmpty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	out, err := runCLI(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "No aliases registered")
}

func TestAddCommand(t *testing.T) {
	dir := newTestLibrary(t)

	out, err := runCLI(t, "add", dir, "aphex", "twin", "windowlicker")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	requireContains(t, out, "Queued 1 line(s)")

	if _, err := runCLI(t, "add", dir, "https://www.youtube.com/watch?v=abc123"); err != nil {
		t.Fatalf("add url: %v", err)
	}

	lib, err := library.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	queue, err := lib.Queue()
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	want := []string{
		"ytsearch:aphex twin windowlicker",
		"https://www.youtube.com/watch?v=abc123",
	}
	if len(queue) != len(want) {
		t.Fatalf("queue = %v, want %v", queue, want)
	}
	for i := range want {
		if queue[i] != want[i] {
			t.Errorf("queue[%d] = %q, want %q", i, queue[i], want[i])
		}
	}
}

func TestAddRequiresTerms(t *testing.T) {
	dir := newTestLibrary(t)
	if _, err := runCLI(t, "add", dir); err == nil {
		t.Error("add without terms should fail")
	}
}
