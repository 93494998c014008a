package errs

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestWrap_PreservesMarkerAndCause(t *testing.T) {
	cause := os.ErrNotExist
	err := Wrap(ErrIO, "read tags", cause)

	if !errors.Is(err, ErrIO) {
		t.Error("wrapped error lost its marker")
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error lost its cause")
	}
	want := "io failure: read tags: file does not exist"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap_NilCause(t *testing.T) {
	err := Wrap(ErrConflict, "target exists", nil)
	if !errors.Is(err, ErrConflict) {
		t.Error("wrapped error lost its marker")
	}
	if err.Error() != "destination conflict: target exists" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrConfig, "unknown organize mode %q", "alpha")
	if !errors.Is(err, ErrConfig) {
		t.Error("wrapped error lost its marker")
	}
	if err.Error() != `configuration error: unknown organize mode "alpha"` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"config", Wrap(ErrConfig, "parse template", nil), true},
		{"wrapped config", fmt.Errorf("outer: %w", Wrap(ErrConfig, "x", nil)), true},
		{"io", Wrap(ErrIO, "move", nil), false},
		{"missing tag", Wrap(ErrMissingTag, "resolve", nil), false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fatal(tt.err); got != tt.want {
				t.Errorf("Fatal() = %v, want %v", got, tt.want)
			}
		})
	}
}
