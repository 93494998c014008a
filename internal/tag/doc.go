// Package tag provides the structured metadata record passed between
// every stage of the pipeline.
//
// # Records
//
// A Record maps a fixed, closed set of tag names to optional values.
// Fields are present or absent; an empty string is never stored. Values
// are normalized (NFC) and stripped of the reserved list separator on
// the way in, so a stored value can always be written back to a tag
// container or a filename template verbatim.
//
// # Tag Names
//
// The nine recognized names form a closed set:
//
//	album, album_artist, artist, feat, genre, remix, title, track, year
//
// Name lookups are case-insensitive via ParseName. Components that
// accept user-supplied names (templates, the tag editor) reject
// anything outside this set at construction time rather than at use
// time.
//
// # Featured Artists
//
// The feat field holds an ordered list of secondary artist names,
// distinct from the primary artist. For display the list is joined by
// JoinNames:
//
//	JoinNames([]string{"B"})           // "B"
//	JoinNames([]string{"B", "C"})      // "B & C"
//	JoinNames([]string{"B", "C", "D"}) // "B, C & D"
package tag
