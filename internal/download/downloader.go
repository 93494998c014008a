package download

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"cratekeeper/internal/errs"
)

// Downloader fetches a batch of targets into a directory.
//
// Targets are whatever yt-dlp accepts on its command line: plain URLs
// and ytsearch: terms. Output lines from the tool are streamed to the
// output callback as they appear.
type Downloader interface {
	Download(ctx context.Context, targets []string, destDir string, output func(line string)) error
}

// YtDlp runs the yt-dlp executable.
//
// Example usage:
//
//	dl := download.NewYtDlp("yt-dlp", "/lib/.cratekeeper/yt-dlp.conf")
//	err := dl.Download(ctx, targets, inputDir, func(line string) {
//	    fmt.Println(line)
//	})
type YtDlp struct {
	// Path is the executable name or full path.
	Path string

	// ConfigPath is passed via --config-location when non-empty.
	ConfigPath string
}

// NewYtDlp creates a yt-dlp runner. configPath may be empty.
func NewYtDlp(path, configPath string) *YtDlp {
	return &YtDlp{Path: path, ConfigPath: configPath}
}

// Download invokes yt-dlp once for all targets, downloading into
// destDir. stdout and stderr are interleaved onto the output callback
// line by line. A non-zero exit or a missing executable is an external
// tool failure.
func (y *YtDlp) Download(ctx context.Context, targets []string, destDir string, output func(line string)) error {
	if len(targets) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, y.Path, y.args(destDir, targets)...)
	w := &lineWriter{out: output}
	cmd.Stdout = w
	cmd.Stderr = w

	err := cmd.Run()
	w.flush()
	if err != nil {
		return errs.Wrap(errs.ErrExternalTool, "yt-dlp", err)
	}
	return nil
}

// args builds the yt-dlp command line.
func (y *YtDlp) args(destDir string, targets []string) []string {
	args := make([]string, 0, len(targets)+4)
	if y.ConfigPath != "" {
		args = append(args, "--config-location", y.ConfigPath)
	}
	args = append(args, "--paths", destDir)
	return append(args, targets...)
}

// lineWriter splits a byte stream into lines and hands each to a
// callback. yt-dlp writes progress with carriage returns, so trailing
// \r is stripped.
type lineWriter struct {
	out func(string)
	buf []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i == -1 {
			break
		}
		line := strings.TrimRight(string(w.buf[:i]), "\r")
		w.buf = w.buf[i+1:]
		if w.out != nil {
			w.out(line)
		}
	}
	return len(p), nil
}

// flush emits any unterminated final line.
func (w *lineWriter) flush() {
	if len(w.buf) > 0 && w.out != nil {
		w.out(strings.TrimRight(string(w.buf), "\r"))
	}
	w.buf = nil
}
