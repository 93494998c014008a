package process

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cratekeeper/internal/errs"
	ioutils "cratekeeper/internal/io"
)

// searchPrefix marks a queue entry as a search term rather than a URL.
// yt-dlp understands the same prefix, so unresolved terms can be
// handed straight through.
const searchPrefix = "ytsearch:"

// partitionQueue splits queue entries into direct URLs and search
// queries. Explicitly prefixed search terms have their prefix and
// quoting stripped so all queries look the same from here on.
func partitionQueue(entries []string) (urls, queries []string) {
	for _, entry := range entries {
		switch {
		case strings.HasPrefix(entry, "http://"), strings.HasPrefix(entry, "https://"):
			urls = append(urls, entry)
		case strings.HasPrefix(entry, searchPrefix):
			rest := strings.TrimPrefix(entry, searchPrefix)
			if unquoted, err := strconv.Unquote(rest); err == nil {
				rest = unquoted
			}
			queries = append(queries, rest)
		default:
			queries = append(queries, entry)
		}
	}
	return urls, queries
}

// resolveTargets turns the queue into concrete download targets.
// Queries become watch URLs via search, either automatically or by
// letting the user pick; without either, yt-dlp searches for itself.
func (p *Processor) resolveTargets(ctx context.Context, urls, queries []string) []string {
	targets := append([]string(nil), urls...)
	if len(queries) == 0 {
		return targets
	}

	switch {
	case p.lib.Settings.AutoScrape:
		for _, r := range p.yt.ResolveQueries(ctx, queries, scrapeWorkers) {
			if r.Err != nil {
				p.emit(fmt.Sprintf("%v, skipping", r.Err), LevelWarning)
				continue
			}
			p.emit(fmt.Sprintf("Found %s for %q", r.Result.URL, r.Query), LevelVerbose)
			targets = append(targets, r.Result.URL)
		}
	case p.interact != nil:
		for _, q := range queries {
			results, err := p.yt.Search(ctx, q, p.lib.Settings.SearchLimit)
			if err != nil {
				p.emit(fmt.Sprintf("%v, skipping", err), LevelWarning)
				continue
			}
			r, ok := p.interact.Pick(q, results)
			if !ok {
				p.emit(fmt.Sprintf("Skipped %q", q), LevelVerbose)
				continue
			}
			targets = append(targets, r.URL)
		}
	default:
		for _, q := range queries {
			targets = append(targets, searchPrefix+q)
		}
	}
	return targets
}

// downloadStep fetches everything in the queue into the input
// directory and offers to delete files that turn out unwanted.
func (p *Processor) downloadStep(ctx context.Context, sum *Summary) error {
	entries, err := p.lib.Queue()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		p.emit("Nothing to download, the queue is empty", LevelInfo)
		return nil
	}

	urls, queries := partitionQueue(entries)
	targets := p.resolveTargets(ctx, urls, queries)
	if len(targets) == 0 {
		p.emit("No downloadable targets in the queue", LevelWarning)
		return nil
	}

	inputDir := p.lib.InputDir()
	if err := ioutils.EnsureDir(inputDir); err != nil {
		return errs.Wrap(errs.ErrIO, "create input directory", err)
	}

	before, err := p.inputFiles()
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(before))
	for _, name := range before {
		known[name] = true
	}

	p.emit(fmt.Sprintf("Downloading %d target(s)", len(targets)), LevelInfo)
	dlErr := p.dl.Download(ctx, targets, inputDir, func(line string) {
		p.emit(line, LevelVerbose)
	})
	if dlErr != nil {
		p.emit(fmt.Sprintf("Download failed: %v", dlErr), LevelError)
		sum.Failed++
	}

	after, err := p.inputFiles()
	if err != nil {
		return err
	}

	kept, deleted := 0, 0
	keepAll := p.interact == nil
	for _, name := range after {
		if known[name] {
			continue
		}
		if !keepAll {
			switch p.interact.Keep(name) {
			case KeepAll:
				keepAll = true
			case KeepDelete:
				if err := os.Remove(filepath.Join(inputDir, name)); err != nil {
					p.emit(fmt.Sprintf("Error deleting %s: %v", name, err), LevelError)
					sum.Failed++
				} else {
					p.emit(fmt.Sprintf("Deleted %s", name), LevelVerbose)
					deleted++
				}
				continue
			}
		}
		kept++
	}

	p.emit(fmt.Sprintf("Download step: %d new file(s), %d deleted", kept, deleted), LevelInfo)
	sum.Changed += kept

	// The queue survives a failed download so the next run can retry.
	if p.lib.Settings.ClearInput && dlErr == nil {
		if err := p.lib.ClearQueue(); err != nil {
			return err
		}
		p.emit("Cleared the download queue", LevelVerbose)
	}
	return nil
}
