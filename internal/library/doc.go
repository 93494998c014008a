// Package library locates and manages cratekeeper libraries.
//
// A library is any directory carrying a .cratekeeper marker directory,
// which holds the per-library config, the download queue and the lock
// file. Short names for libraries live in a single alias registry under
// the user config dir.
//
// # Resolving
//
// A LIBRARY argument that contains a path separator or names an existing
// directory is treated as a path; anything else is looked up as an
// alias:
//
//	lib, err := library.Open("techno")       // alias
//	lib, err := library.Open("~/music/sets") // path
//
// Open refuses directories that were never initialized, so a mistyped
// alias cannot silently create a new library.
//
// # Locking
//
// Mutating commands hold the library's file lock for the duration of the
// run:
//
//	if err := lib.Lock(); err != nil {
//	    return err // already in use
//	}
//	defer lib.Unlock()
package library
