// Package ioutils provides the file system utilities behind the
// pipeline steps.
//
// This package contains functions for:
//   - File copying and moving (including across file systems)
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation and empty-directory cleanup
//   - Deterministic file listing
//
// # File Operations
//
//	// Move a file; falls back to copy+remove across devices
//	err := ioutils.MoveFile("/in/song.mp3", "/out/A/Artist/song.mp3")
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/out/A/Artist")
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames and
// from path segments built out of tag values:
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// # Listing
//
// FileNames returns the regular files directly inside a directory in
// lexicographic order, which keeps batch processing deterministic:
//
//	names, err := ioutils.FileNames("/library/in")
package ioutils
