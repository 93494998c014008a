// Package resolve merges embedded and parsed tags into the final
// record and its standardized title and filename.
//
// # Merge Policy
//
// Embedded values win: every field absent in the embedded record is
// filled from the parsed fragment. The one exception is the artist
// when override is enabled, for sources that stuff an uploader name
// into the artist field while the real artist is only recoverable from
// the title text.
//
// # Rendering
//
// After the merge the title template produces the standardized display
// title, and the filename template runs over a copy of the record whose
// title has been replaced by that rendered title. A merge that cannot
// produce any title fails; nothing is written or renamed for that file.
package resolve
