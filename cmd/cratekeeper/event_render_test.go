package main

import (
	"bytes"
	"strings"
	"testing"

	"cratekeeper/internal/process"
)

func TestRenderEventPlainWithoutColor(t *testing.T) {
	levels := []process.Level{
		process.LevelInfo,
		process.LevelVerbose,
		process.LevelWarning,
		process.LevelError,
		process.LevelSuccess,
	}
	for _, level := range levels {
		e := process.Event{Message: "hello", Level: level}
		if got := renderEvent(e, false); got != "hello" {
			t.Errorf("renderEvent(level %v) = %q, want the bare message", level, got)
		}
	}
}

func TestEventPrinterVerboseGating(t *testing.T) {
	var out bytes.Buffer
	p := &eventPrinter{out: &out}
	p.print(process.Event{Message: "kept", Level: process.LevelInfo})
	p.print(process.Event{Message: "dropped", Level: process.LevelVerbose})

	if !strings.Contains(out.String(), "kept") {
		t.Error("info events should always print")
	}
	if strings.Contains(out.String(), "dropped") {
		t.Error("verbose events should be dropped by default")
	}

	out.Reset()
	p.verbose = true
	p.print(process.Event{Message: "dropped", Level: process.LevelVerbose})
	if !strings.Contains(out.String(), "dropped") {
		t.Error("verbose events should print when enabled")
	}
}

func TestShouldColorizeBuffer(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Error("a plain buffer is never a terminal")
	}
}
