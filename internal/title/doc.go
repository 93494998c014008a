// Package title infers structured tags from free-form title strings.
//
// # Parsing
//
// Parse runs a fixed pipeline over the input, each step removing the
// text it matched before the next step runs:
//
//  1. Featured artists, introduced by "ft.", "feat." or "featuring"
//     (case-insensitive), captured up to the next " - ", "(" or "[".
//  2. A parenthesized 4-digit year.
//  3. The first remaining "[...]" group, taken as a remix descriptor.
//  4. A split on the first " - " into artist and title; without a
//     separator the whole remainder is the title.
//
// Parsing is heuristic and never fails: input without recognizable
// structure simply becomes the title. Unmatched brackets stay in the
// title as literal text.
//
//	rec := title.Parse("ArtistA ft. B - Song (2024) [Club Mix]")
//	// artist: "ArtistA", feat: ["B"], title: "Song",
//	// year: "2024", remix: "Club Mix"
package title
