package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cratekeeper/internal/process"
	"cratekeeper/internal/scrape"
	"cratekeeper/internal/tag"
)

// consoleInteraction answers the pipeline's questions through terminal
// prompts. An empty answer, or input running out, takes each prompt's
// capitalized default.
type consoleInteraction struct {
	in       *bufio.Reader
	out      io.Writer
	colorize bool
}

func newConsoleInteraction(in io.Reader, out io.Writer) *consoleInteraction {
	return &consoleInteraction{
		in:       bufio.NewReader(in),
		out:      out,
		colorize: shouldColorize(out),
	}
}

// ask prints the question and reads one trimmed line. ok is false once
// input is exhausted.
func (c *consoleInteraction) ask(question string) (string, bool) {
	fmt.Fprint(c.out, question)
	line, err := c.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		fmt.Fprintln(c.out)
		return "", false
	}
	return line, true
}

func (c *consoleInteraction) Proposal(p *process.Proposal) process.Decision {
	fmt.Fprintln(c.out, renderProposal(p))
	answer, ok := c.ask("Apply? [y/N/a/e] ")
	if !ok {
		return process.DecisionNo
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return process.DecisionYes
	case "a", "all":
		return process.DecisionAll
	case "e", "edit":
		return process.DecisionEdit
	default:
		return process.DecisionNo
	}
}

func (c *consoleInteraction) Edit(rec *tag.Record) {
	fmt.Fprintln(c.out, "Editing tags; 'h' for help, 'q' when done")
	for {
		line, ok := c.ask("edit> ")
		if !ok {
			return
		}
		switch line {
		case "":
			continue
		case "q":
			return
		case "h":
			fmt.Fprint(c.out, editorHelp)
			continue
		}
		if err := applyEditCommand(rec, line); err != nil {
			e := process.Event{Message: err.Error(), Level: process.LevelWarning}
			fmt.Fprintln(c.out, renderEvent(e, c.colorize))
		}
	}
}

func (c *consoleInteraction) Pick(query string, results []scrape.Result) (scrape.Result, bool) {
	fmt.Fprintf(c.out, "Results for %q:\n", query)
	for i, r := range results {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, r.Title)
	}

	for {
		answer, ok := c.ask("Pick a number, or enter to skip: ")
		if !ok || answer == "" || strings.EqualFold(answer, "s") {
			return scrape.Result{}, false
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(results) {
			fmt.Fprintf(c.out, "Enter a number between 1 and %d\n", len(results))
			continue
		}
		return results[n-1], true
	}
}

func (c *consoleInteraction) Keep(fileName string) process.KeepChoice {
	answer, ok := c.ask(fmt.Sprintf("Keep %s? [Y/a/d] ", fileName))
	if !ok {
		return process.KeepYes
	}
	switch strings.ToLower(answer) {
	case "a", "all":
		return process.KeepAll
	case "d", "delete":
		return process.KeepDelete
	default:
		return process.KeepYes
	}
}

func (c *consoleInteraction) Overwrite(target string) bool {
	answer, ok := c.ask(fmt.Sprintf("%s exists, overwrite? [y/N] ", target))
	if !ok {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
