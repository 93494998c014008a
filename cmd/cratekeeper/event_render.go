package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"cratekeeper/internal/process"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

// eventPrinter writes pipeline events as lines, colored when the
// output is a terminal.
type eventPrinter struct {
	out      io.Writer
	verbose  bool
	colorize bool
}

func newEventPrinter(out io.Writer, verbose bool) *eventPrinter {
	return &eventPrinter{out: out, verbose: verbose, colorize: shouldColorize(out)}
}

func (p *eventPrinter) print(e process.Event) {
	if e.Level == process.LevelVerbose && !p.verbose {
		return
	}
	fmt.Fprintln(p.out, renderEvent(e, p.colorize))
}

func renderEvent(e process.Event, colorize bool) string {
	if !colorize {
		return e.Message
	}
	switch e.Level {
	case process.LevelError:
		return errorStyle.Render(e.Message)
	case process.LevelWarning:
		return warningStyle.Render(e.Message)
	case process.LevelSuccess:
		return successStyle.Render(e.Message)
	case process.LevelVerbose:
		return dimStyle.Render(e.Message)
	default:
		return e.Message
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// interactiveTerminal reports whether prompts can be answered.
func interactiveTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
