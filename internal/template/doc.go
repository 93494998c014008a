// Package template renders tag records through fixed-grammar format
// strings.
//
// # Grammar
//
// A template mixes literal text with placeholder groups. A group is
// either a bare placeholder naming one tag, or a placeholder wrapped in
// a single pair of delimiters, "(...)" or "[...]", optionally preceded
// by one whitespace character that belongs to the group:
//
//	{artist} - {title} ({feat}) [{year}]
//
// Templates are parsed once into an immutable segment list and reused
// for every file in a batch. A placeholder naming an unrecognized tag,
// or a "{" without its "}", fails at parse time, never at render time.
//
// # Omission
//
// A group whose tag is absent renders as nothing at all: a delimited
// group drops its delimiters and its leading whitespace along with the
// value. The template above renders "A - Song [2024]" when feat is
// absent, and "A - Song" when year is absent too.
//
// An opening delimiter not wrapping exactly one placeholder is plain
// literal text.
package template
