// Package deposit decides where organized files belong.
//
// # Planning
//
// Destination is a pure function from a tag record, a file name, an
// organization mode and a date to a relative path under the target
// root:
//
//	Drop           file.mp3
//	AlphaByArtist  A/Artist/Album/file.mp3
//	Chronological  2024/04/file.mp3
//
// Alphabetical shelving buckets by the first character of the artist,
// or of the file name when no artist is tagged. Anything outside A-Z
// lands in the shared "0-9#" bucket. Image files never get an album
// subfolder, so cover art sits next to the album folder it belongs to.
//
// # Conflicts
//
// ResolveConflict applies the overwrite policy for an existing
// destination. Without an interactive collaborator it always resolves
// to Skip; existing files are never silently replaced.
package deposit
