package process

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"cratekeeper/internal/config"
	ioutils "cratekeeper/internal/io"
)

// stubDownloader records the batch it was given and fakes the result
// by dropping files into the destination directory.
type stubDownloader struct {
	targets []string
	destDir string
	lines   []string
	files   []string
	err     error
}

func (s *stubDownloader) Download(ctx context.Context, targets []string, destDir string, output func(line string)) error {
	s.targets = append([]string(nil), targets...)
	s.destDir = destDir
	for _, line := range s.lines {
		if output != nil {
			output(line)
		}
	}
	for _, name := range s.files {
		if err := os.WriteFile(filepath.Join(destDir, name), []byte("x"), 0644); err != nil {
			return err
		}
	}
	return s.err
}

func TestPartitionQueue(t *testing.T) {
	urls, queries := partitionQueue([]string{
		"https://www.youtube.com/watch?v=abc",
		"http://example.com/mix.mp3",
		`ytsearch:"Quoted Query"`,
		"ytsearch:bare query",
		"Artist - Song",
	})

	wantURLs := []string{
		"https://www.youtube.com/watch?v=abc",
		"http://example.com/mix.mp3",
	}
	wantQueries := []string{"Quoted Query", "bare query", "Artist - Song"}

	if !reflect.DeepEqual(urls, wantURLs) {
		t.Errorf("urls = %v, want %v", urls, wantURLs)
	}
	if !reflect.DeepEqual(queries, wantQueries) {
		t.Errorf("queries = %v, want %v", queries, wantQueries)
	}
}

func TestDownloadStep_PassesQueueThrough(t *testing.T) {
	lib := testLibrary(t)
	if err := lib.AppendQueue([]string{
		"https://www.youtube.com/watch?v=abc",
		"Artist - Song",
	}); err != nil {
		t.Fatal(err)
	}

	dl := &stubDownloader{files: []string{"new.mp3"}, lines: []string{"[download] 100%"}}
	var events []Event
	proc, err := New(lib, dl, nil, func(e Event) { events = append(events, e) })
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	sum, err := proc.Run(context.Background(), []config.Step{config.StepDownload})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"https://www.youtube.com/watch?v=abc", "ytsearch:Artist - Song"}
	if !reflect.DeepEqual(dl.targets, want) {
		t.Errorf("targets = %v, want %v", dl.targets, want)
	}
	if dl.destDir != lib.InputDir() {
		t.Errorf("destDir = %q, want %q", dl.destDir, lib.InputDir())
	}
	if sum.Changed != 1 {
		t.Errorf("summary = %+v, want 1 changed", *sum)
	}
	if !hasEvent(events, LevelVerbose, "[download] 100%") {
		t.Errorf("tool output should surface as verbose events, got %v", events)
	}

	// clear_input defaults on, so a clean run empties the queue.
	left, err := lib.Queue()
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 0 {
		t.Errorf("queue = %v, want empty", left)
	}
}

func TestDownloadStep_EmptyQueue(t *testing.T) {
	lib := testLibrary(t)
	dl := &stubDownloader{}
	proc, err := New(lib, dl, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	sum, err := proc.Run(context.Background(), []config.Step{config.StepDownload})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sum.Changed != 0 {
		t.Errorf("summary = %+v, want nothing changed", *sum)
	}
	if dl.targets != nil {
		t.Errorf("downloader should not run, got targets %v", dl.targets)
	}
}

func TestDownloadStep_FailureKeepsQueue(t *testing.T) {
	lib := testLibrary(t)
	if err := lib.AppendQueue([]string{"https://www.youtube.com/watch?v=abc"}); err != nil {
		t.Fatal(err)
	}

	dl := &stubDownloader{err: errors.New("exit status 1")}
	var events []Event
	proc, err := New(lib, dl, nil, func(e Event) { events = append(events, e) })
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	sum, err := proc.Run(context.Background(), []config.Step{config.StepDownload})
	if err != nil {
		t.Fatalf("Run() error = %v, download failures should not abort", err)
	}
	if sum.Failed != 1 {
		t.Errorf("summary = %+v, want 1 failed", *sum)
	}
	if !hasEvent(events, LevelError, "Download failed") {
		t.Errorf("expected a download failure event, got %v", events)
	}

	left, err := lib.Queue()
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 1 {
		t.Errorf("queue = %v, should survive a failed download", left)
	}
}

func TestDownloadStep_KeepAndDelete(t *testing.T) {
	lib := testLibrary(t)
	if err := lib.AppendQueue([]string{"https://www.youtube.com/watch?v=abc"}); err != nil {
		t.Fatal(err)
	}
	writeTrack(t, lib.InputDir(), "old.mp3", "")

	dl := &stubDownloader{files: []string{"bad.opus", "good.mp3"}}
	script := &scriptedInteraction{keeps: []KeepChoice{KeepDelete, KeepYes}}
	proc, err := New(lib, dl, script, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	sum, err := proc.Run(context.Background(), []config.Step{config.StepDownload})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if ioutils.Exists(filepath.Join(lib.InputDir(), "bad.opus")) {
		t.Error("deleted download should be gone")
	}
	if !ioutils.Exists(filepath.Join(lib.InputDir(), "good.mp3")) {
		t.Error("kept download should remain")
	}
	if !ioutils.Exists(filepath.Join(lib.InputDir(), "old.mp3")) {
		t.Error("files that were already there are not up for deletion")
	}
	if sum.Changed != 1 {
		t.Errorf("summary = %+v, want 1 changed", *sum)
	}
}
