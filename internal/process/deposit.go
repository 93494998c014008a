package process

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cratekeeper/internal/audio"
	"cratekeeper/internal/deposit"
	"cratekeeper/internal/errs"
	ioutils "cratekeeper/internal/io"
	"cratekeeper/internal/tag"
)

// depositStep files everything from the input directory into the
// organized target tree. Files whose tags cannot be read still move,
// they just land in the fallback spots.
func (p *Processor) depositStep(ctx context.Context, sum *Summary) error {
	files, err := p.inputFiles()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		p.emit("Nothing to deposit, the input directory is empty", LevelInfo)
		return nil
	}

	inputDir := p.lib.InputDir()
	targetRoot := p.lib.TargetDir()
	if err := ioutils.EnsureDir(targetRoot); err != nil {
		return errs.Wrap(errs.ErrIO, "create target directory", err)
	}
	moved, skipped, failed := 0, 0, 0

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		src := filepath.Join(inputDir, name)
		rec := tag.NewRecord()
		var date time.Time

		if audio.Supported(name) {
			if ft, err := audio.ReadTags(src); err != nil {
				p.emit(fmt.Sprintf("Could not read tags from %s: %v", name, err), LevelVerbose)
			} else {
				rec = ft.Record
				date = ft.Date
			}
		}
		if date.IsZero() {
			if info, err := os.Stat(src); err == nil {
				date = info.ModTime()
			}
		}

		plan := deposit.PlanFile(rec, src, targetRoot, p.mode, date)
		if plan.Target == plan.Source {
			p.emit(fmt.Sprintf("Skipping %s: already in place", name), LevelVerbose)
			skipped++
			continue
		}

		var ask func() bool
		if p.interact != nil {
			ask = func() bool { return p.interact.Overwrite(plan.Target) }
		}
		if deposit.ResolveConflict(ioutils.Exists(plan.Target), p.lib.Settings.AutoOverwrite, ask) == deposit.ActionSkip {
			p.emit(fmt.Sprintf("%s already exists, skipping %s", plan.Target, name), LevelWarning)
			skipped++
			continue
		}

		if plan.CreateDir {
			if err := ioutils.EnsureDir(filepath.Dir(plan.Target)); err != nil {
				p.emit(fmt.Sprintf("Error creating directory for %s: %v", name, err), LevelError)
				failed++
				continue
			}
		}
		if err := ioutils.MoveFile(plan.Source, plan.Target); err != nil {
			p.emit(fmt.Sprintf("Error moving %s: %v", name, err), LevelError)
			failed++
			continue
		}

		moved++
		if rel, err := filepath.Rel(targetRoot, plan.Target); err == nil {
			p.emit(fmt.Sprintf("Deposited %s", rel), LevelVerbose)
		}
	}

	p.emit(fmt.Sprintf("Deposit step: %d moved, %d skipped, %d failed", moved, skipped, failed), LevelInfo)
	sum.Changed += moved
	sum.Skipped += skipped
	sum.Failed += failed
	return nil
}
