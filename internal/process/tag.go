package process

import (
	"context"
	"fmt"
	"path/filepath"

	"cratekeeper/internal/audio"
	ioutils "cratekeeper/internal/io"
	"cratekeeper/internal/resolve"
	"cratekeeper/internal/tag"
	"cratekeeper/internal/title"
)

// FieldChange is one tag's current and proposed value.
type FieldChange struct {
	Name tag.Name
	Old  string
	New  string
}

// Proposal is the set of changes the tag step wants to apply to one
// file: the new tag values and possibly a new file name.
type Proposal struct {
	File    string
	NewFile string
	Fields  []FieldChange
}

// Changed reports whether applying the proposal would alter anything.
func (p *Proposal) Changed() bool {
	if p.File != p.NewFile {
		return true
	}
	for _, f := range p.Fields {
		if f.Old != f.New {
			return true
		}
	}
	return false
}

// buildProposal compares the embedded record against a resolution
// result. The title row compares against the display title since that
// is what lands in the file.
func buildProposal(fileName string, embedded *tag.Record, res *resolve.Result) *Proposal {
	prop := &Proposal{File: fileName, NewFile: fileName}
	if base := ioutils.SanitizeFileName(res.Filename); base != "" {
		prop.NewFile = base + filepath.Ext(fileName)
	}

	for _, name := range tag.Names {
		old, _ := embedded.Get(name)
		now, _ := res.Record.Get(name)
		if name == tag.Title {
			now = res.Title
		}
		if old == "" && now == "" {
			continue
		}
		prop.Fields = append(prop.Fields, FieldChange{Name: name, Old: old, New: now})
	}
	return prop
}

// tagStep parses every supported file's embedded title, merges the
// pieces with the other embedded tags and applies the outcome, asking
// first unless auto-tag is on.
func (p *Processor) tagStep(ctx context.Context, sum *Summary) error {
	files, err := p.inputFiles()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		p.emit("Nothing to tag, the input directory is empty", LevelInfo)
		return nil
	}

	inputDir := p.lib.InputDir()
	applyAll := p.lib.Settings.AutoTag
	tagged, skipped, failed := 0, 0, 0

fileLoop:
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !audio.Supported(name) {
			p.emit(fmt.Sprintf("Skipping %s: not a supported audio file", name), LevelVerbose)
			skipped++
			continue
		}

		path := filepath.Join(inputDir, name)
		ft, err := audio.ReadTags(path)
		if err != nil {
			p.emit(fmt.Sprintf("Error reading tags from %s: %v", name, err), LevelError)
			failed++
			continue
		}
		embedded := ft.Record

		raw, ok := embedded.Get(tag.Title)
		if !ok {
			p.emit(fmt.Sprintf("Skipping %s: no embedded title to parse", name), LevelVerbose)
			skipped++
			continue
		}

		// The raw title is the parser's input. Withhold it from the
		// merge so the parsed fields take its place; an embedded
		// title would otherwise win and undo the parse.
		forMerge := embedded.Clone()
		forMerge.Clear(tag.Title)

		res, err := p.resolver.Resolve(forMerge, title.Parse(raw))
		if err != nil {
			p.emit(fmt.Sprintf("Error resolving %s: %v", name, err), LevelError)
			failed++
			continue
		}

		proposal := buildProposal(name, embedded, res)
		if !proposal.Changed() {
			p.emit(fmt.Sprintf("Skipping %s: nothing to change", name), LevelVerbose)
			skipped++
			continue
		}

		applied := false
		if applyAll {
			applied = true
		} else if p.interact != nil {
			decision := p.interact.Proposal(proposal)
			for decision == DecisionEdit {
				p.interact.Edit(res.Record)
				if !res.Record.Has(tag.Title) {
					p.emit(fmt.Sprintf("Skipping %s: record has no title after editing", name), LevelWarning)
					failed++
					continue fileLoop
				}
				res.Title, res.Filename = p.resolver.Render(res.Record)
				proposal = buildProposal(name, embedded, res)
				decision = p.interact.Proposal(proposal)
			}
			switch decision {
			case DecisionYes:
				applied = true
			case DecisionAll:
				applyAll = true
				applied = true
			}
		}

		if !applied {
			p.emit(fmt.Sprintf("Skipping %s", name), LevelVerbose)
			skipped++
			continue
		}

		if err := p.tagger.WriteTags(path, res.Record, res.Title); err != nil {
			p.emit(fmt.Sprintf("Error tagging %s: %v", name, err), LevelError)
			failed++
			continue
		}

		finalName := name
		if proposal.NewFile != name {
			target := filepath.Join(inputDir, proposal.NewFile)
			if ioutils.Exists(target) {
				p.emit(fmt.Sprintf("Keeping name of %s: %s already exists", name, proposal.NewFile), LevelWarning)
			} else if err := ioutils.MoveFile(path, target); err != nil {
				p.emit(fmt.Sprintf("Error renaming %s: %v", name, err), LevelError)
				failed++
				continue
			} else {
				finalName = proposal.NewFile
			}
		}

		tagged++
		p.emit(fmt.Sprintf("Tagged: %s", finalName), LevelSuccess)
	}

	p.emit(fmt.Sprintf("Tag step: %d tagged, %d skipped, %d failed", tagged, skipped, failed), LevelInfo)
	sum.Changed += tagged
	sum.Skipped += skipped
	sum.Failed += failed
	return nil
}
