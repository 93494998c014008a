package process

import (
	"context"
	"fmt"
	"os"

	"cratekeeper/internal/audio"
	"cratekeeper/internal/config"
	"cratekeeper/internal/deposit"
	"cratekeeper/internal/download"
	ioutils "cratekeeper/internal/io"
	"cratekeeper/internal/library"
	"cratekeeper/internal/resolve"
	"cratekeeper/internal/scrape"
	"cratekeeper/internal/tag"
)

// scrapeWorkers caps concurrent YouTube searches when resolving a
// whole queue at once.
const scrapeWorkers = 4

// Decision is the answer to a tag proposal.
type Decision int

const (
	// DecisionNo leaves the file untouched.
	DecisionNo Decision = iota
	// DecisionYes applies the proposal.
	DecisionYes
	// DecisionAll applies this and every following proposal.
	DecisionAll
	// DecisionEdit asks for the record to be edited and the proposal
	// rebuilt.
	DecisionEdit
)

// KeepChoice is the answer to a keep-or-delete question about a
// freshly downloaded file.
type KeepChoice int

const (
	// KeepYes keeps the file.
	KeepYes KeepChoice = iota
	// KeepAll keeps this and every following file.
	KeepAll
	// KeepDelete removes the file again.
	KeepDelete
)

// Interaction answers the questions an interactive run asks. A nil
// Interaction declines proposals, skips occupied destinations and
// keeps every downloaded file, so unattended runs never block.
type Interaction interface {
	// Proposal decides what happens to a tag proposal.
	Proposal(p *Proposal) Decision

	// Edit lets the user adjust a record before its proposal is
	// rebuilt. Called after Proposal returned DecisionEdit.
	Edit(rec *tag.Record)

	// Pick chooses one search result for a query. Returning false
	// skips the query.
	Pick(query string, results []scrape.Result) (scrape.Result, bool)

	// Keep decides whether a downloaded file stays in the input
	// directory.
	Keep(fileName string) KeepChoice

	// Overwrite reports whether an occupied destination may be
	// replaced.
	Overwrite(target string) bool
}

// Summary aggregates per-file outcomes across a run.
type Summary struct {
	Changed int // files tagged, moved or downloaded, directories removed
	Skipped int // files looked at and left alone
	Failed  int // per-file failures
}

// Failures reports whether any file failed. Used for the exit status:
// a run that completes but fails individual files is not clean.
func (s *Summary) Failures() bool {
	return s.Failed > 0
}

// Processor runs the pipeline steps against one library.
type Processor struct {
	lib      *library.Library
	resolver *resolve.Resolver
	tagger   *audio.Tagger
	mode     deposit.Mode
	dl       download.Downloader
	yt       *scrape.YouTube
	interact Interaction
	onEvent  func(Event)
}

// New builds a processor for the library. The settings are validated
// here so every step can rely on them. interact may be nil for
// unattended runs and onEvent may be nil to discard progress.
func New(lib *library.Library, dl download.Downloader, interact Interaction, onEvent func(Event)) (*Processor, error) {
	if err := lib.Settings.Validate(); err != nil {
		return nil, err
	}

	resolver, err := lib.Settings.ToResolver()
	if err != nil {
		return nil, err
	}
	mode, err := lib.Settings.Mode()
	if err != nil {
		return nil, err
	}

	p := &Processor{
		lib:      lib,
		resolver: resolver,
		tagger:   lib.Settings.ToTagger(),
		mode:     mode,
		dl:       dl,
		yt:       scrape.NewYouTube(scrape.NewClient()),
		interact: interact,
		onEvent:  onEvent,
	}
	p.tagger.OnWarning = func(message string) { p.emit(message, LevelWarning) }
	return p, nil
}

// Run executes the given steps in order and reports the combined
// outcome. Per-file problems are reported as events and counted; only
// configuration errors and a cancelled context abort the run.
func (p *Processor) Run(ctx context.Context, steps []config.Step) (*Summary, error) {
	sum := &Summary{}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		var err error
		switch step {
		case config.StepDownload:
			err = p.downloadStep(ctx, sum)
		case config.StepTag:
			err = p.tagStep(ctx, sum)
		case config.StepDeposit:
			err = p.depositStep(ctx, sum)
		case config.StepClean:
			err = p.cleanStep(sum)
		default:
			return sum, fmt.Errorf("unknown step %q", step)
		}
		if err != nil {
			return sum, err
		}
	}
	return sum, nil
}

func (p *Processor) emit(message string, level Level) {
	if p.onEvent != nil {
		p.onEvent(Event{Message: message, Level: level})
	}
}

// inputFiles lists the files in the input directory. A missing input
// directory is not an error, it just means there is nothing to do.
func (p *Processor) inputFiles() ([]string, error) {
	names, err := ioutils.FileNames(p.lib.InputDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return names, nil
}
