package main

import (
	"github.com/spf13/cobra"

	"cratekeeper/internal/config"
	"cratekeeper/internal/library"
)

// withLockedLibrary opens the library named by arg, layers any flag
// overrides over its settings and holds the lock while fn runs.
func withLockedLibrary(cmd *cobra.Command, arg string, fn func(*library.Library) error) error {
	lib, err := library.Open(arg)
	if err != nil {
		return err
	}
	applyOverrides(cmd, lib.Settings)

	if err := lib.Lock(); err != nil {
		return err
	}
	defer lib.Unlock()

	return fn(lib)
}

// applyOverrides copies explicitly set flags into the settings. Flags a
// command doesn't declare are simply not consulted.
func applyOverrides(cmd *cobra.Command, settings *config.Settings) {
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		settings.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("auto-tag") {
		settings.AutoTag, _ = flags.GetBool("auto-tag")
	}
	if flags.Changed("auto-overwrite") {
		settings.AutoOverwrite, _ = flags.GetBool("auto-overwrite")
	}
	if flags.Changed("auto-scrape") {
		settings.AutoScrape, _ = flags.GetBool("auto-scrape")
	}
	if flags.Changed("override-artist") {
		settings.OverrideArtist, _ = flags.GetBool("override-artist")
	}
	if flags.Changed("organize") {
		settings.Organize, _ = flags.GetString("organize")
	}
	if flags.Changed("input-dir") {
		settings.InputDir, _ = flags.GetString("input-dir")
	}
	if flags.Changed("target-dir") {
		settings.TargetDir, _ = flags.GetString("target-dir")
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
