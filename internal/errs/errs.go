// Package errs defines the error taxonomy shared across the pipeline.
//
// Errors are classified by wrapping one of the sentinel markers below;
// callers test with errors.Is to decide between aborting the run
// (ErrConfig) and skipping a single file (everything else).
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig marks configuration problems. Fatal for the run,
	// reported before any file is touched.
	ErrConfig = errors.New("configuration error")

	// ErrMissingTag marks a file whose tags cannot produce a title.
	// The file is skipped, the batch continues.
	ErrMissingTag = errors.New("missing required tag")

	// ErrIO marks a read/write/move failure on a single file. The
	// file is skipped, the batch continues.
	ErrIO = errors.New("io failure")

	// ErrConflict marks a destination that already exists and was not
	// overwritten. Reported, never fatal.
	ErrConflict = errors.New("destination conflict")

	// ErrExternalTool marks a failure of an external program such as
	// the downloader.
	ErrExternalTool = errors.New("external tool failure")
)

// Wrap classifies err under the given marker, prefixed with the failing
// operation. A nil err produces a marker-classified error from the
// operation text alone.
func Wrap(marker error, operation string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", marker, operation)
	}
	return fmt.Errorf("%w: %s: %w", marker, operation, err)
}

// Wrapf classifies a formatted message under the given marker.
func Wrapf(marker error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", marker, fmt.Sprintf(format, args...))
}

// Fatal reports whether err should abort the run instead of skipping a
// single file.
func Fatal(err error) bool {
	return errors.Is(err, ErrConfig)
}
