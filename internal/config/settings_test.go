package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cratekeeper/internal/deposit"
	"cratekeeper/internal/errs"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	defaults := DefaultSettings()
	if settings.InputDir != defaults.InputDir {
		t.Errorf("InputDir = %q, want %q", settings.InputDir, defaults.InputDir)
	}
	if settings.TitleTemplate != defaults.TitleTemplate {
		t.Errorf("TitleTemplate = %q, want %q", settings.TitleTemplate, defaults.TitleTemplate)
	}
	if !settings.ClearInput {
		t.Error("ClearInput should default to true")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
description = "club sets"
steps = ["tag", "deposit"]
organize = "a-z"
verbose = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if settings.Description != "club sets" {
		t.Errorf("Description = %q", settings.Description)
	}
	if len(settings.Steps) != 2 || settings.Steps[0] != "tag" {
		t.Errorf("Steps = %v, want [tag deposit]", settings.Steps)
	}
	if settings.Organize != "a-z" {
		t.Errorf("Organize = %q", settings.Organize)
	}
	if !settings.Verbose {
		t.Error("Verbose should be true")
	}
	// Untouched keys keep their defaults.
	if settings.InputDir != "in" {
		t.Errorf("InputDir = %q, want in", settings.InputDir)
	}
}

func TestLoad_BlankedKeysFallBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
input_dir = ""
title_template = ""
search_limit = 0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.InputDir != "in" {
		t.Errorf("InputDir = %q, want in", settings.InputDir)
	}
	if settings.TitleTemplate != "{title} ({feat}) [{remix}]" {
		t.Errorf("TitleTemplate = %q", settings.TitleTemplate)
	}
	if settings.SearchLimit != 5 {
		t.Errorf("SearchLimit = %d, want 5", settings.SearchLimit)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("steps = [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, errs.ErrConfig) {
		t.Errorf("Load error = %v, want ErrConfig", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	settings := DefaultSettings()
	settings.Description = "field recordings"
	settings.Organize = "date"
	settings.AutoTag = true

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Description != "field recordings" {
		t.Errorf("Description = %q", loaded.Description)
	}
	if loaded.Organize != "date" {
		t.Errorf("Organize = %q", loaded.Organize)
	}
	if !loaded.AutoTag {
		t.Error("AutoTag should survive the round trip")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(s *Settings) {}, false},
		{"unknown step", func(s *Settings) { s.Steps = []string{"download", "shuffle"} }, true},
		{"unknown layout", func(s *Settings) { s.Organize = "genre" }, true},
		{"bad title template", func(s *Settings) { s.TitleTemplate = "{nope}" }, true},
		{"bad filename template", func(s *Settings) { s.FilenameTemplate = "{title" }, true},
		{"negative artwork edge", func(s *Settings) { s.ArtworkMaxEdge = -1 }, true},
		{"negative search limit", func(s *Settings) { s.SearchLimit = -3 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultSettings()
			tt.mutate(settings)

			err := settings.Validate()
			if tt.wantErr {
				if !errors.Is(err, errs.ErrConfig) {
					t.Errorf("Validate() = %v, want ErrConfig", err)
				}
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestStepList(t *testing.T) {
	settings := DefaultSettings()
	steps, err := settings.StepList()
	if err != nil {
		t.Fatalf("StepList failed: %v", err)
	}
	want := []Step{StepDownload, StepTag, StepDeposit}
	if len(steps) != len(want) {
		t.Fatalf("StepList() = %v, want %v", steps, want)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("steps[%d] = %q, want %q", i, steps[i], want[i])
		}
	}
}

func TestMode(t *testing.T) {
	settings := DefaultSettings()
	settings.Organize = "a-z"
	mode, err := settings.Mode()
	if err != nil {
		t.Fatalf("Mode failed: %v", err)
	}
	if mode != deposit.ModeAlphabetical {
		t.Errorf("Mode() = %v, want ModeAlphabetical", mode)
	}
}

func TestPathResolution(t *testing.T) {
	settings := DefaultSettings()

	if got := settings.InputPath("/lib"); got != filepath.Join("/lib", "in") {
		t.Errorf("InputPath = %q", got)
	}
	if got := settings.TargetPath("/lib"); got != filepath.Join("/lib", "out") {
		t.Errorf("TargetPath = %q", got)
	}

	settings.TargetDir = "/mnt/music"
	if got := settings.TargetPath("/lib"); got != "/mnt/music" {
		t.Errorf("absolute TargetPath = %q", got)
	}
}

func TestToResolver(t *testing.T) {
	settings := DefaultSettings()
	if _, err := settings.ToResolver(); err != nil {
		t.Fatalf("ToResolver failed on defaults: %v", err)
	}

	settings.TitleTemplate = "{bogus}"
	if _, err := settings.ToResolver(); !errors.Is(err, errs.ErrConfig) {
		t.Errorf("ToResolver error = %v, want ErrConfig", err)
	}
}
