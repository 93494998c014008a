// Package config provides per-library configuration for cratekeeper.
//
// This package handles:
//   - Loading and saving settings from TOML files
//   - Default configuration values
//   - Validation of steps, layouts and templates before a run starts
//   - Conversion to the resolver and tagger used by the processing steps
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Steps: download, tag, deposit
//	// Input in "in", deposits in "out"
//	// Title template "{title} ({feat}) [{remix}]"
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Validation
//
// Validate surfaces template and enum mistakes as configuration errors
// before any file is touched:
//
//	if err := settings.Validate(); err != nil {
//	    // errs.Fatal(err) is true, the run aborts
//	}
package config
