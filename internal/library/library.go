package library

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"cratekeeper/internal/config"
	"cratekeeper/internal/errs"
)

const (
	markerDir  = ".cratekeeper"
	configName = "config.toml"
	inputName  = "input.txt"
	ytDlpName  = "yt-dlp.conf"
	lockName   = "lock"
)

// Library is a resolved music library directory with its settings loaded.
type Library struct {
	Root     string
	Settings *config.Settings

	lock *flock.Flock
}

// Resolve turns a LIBRARY argument into an absolute root path. A string
// containing a path separator, or naming an existing directory, resolves
// as a path; anything else is looked up as an alias.
func Resolve(arg string) (string, error) {
	if arg == "" {
		return "", errs.Wrap(errs.ErrConfig, "no library given", nil)
	}

	if strings.ContainsRune(arg, os.PathSeparator) || strings.ContainsRune(arg, '/') {
		return absolute(arg)
	}
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		return absolute(arg)
	}

	root, found, err := LookupAlias(arg)
	if err != nil {
		return "", err
	}
	if !found {
		return "", errs.Wrapf(errs.ErrConfig, "unknown library %q: not a path or a registered alias", arg)
	}
	return root, nil
}

func absolute(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errs.Wrap(errs.ErrIO, "resolve home directory", err)
		}
		path = filepath.Join(home, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errs.Wrap(errs.ErrIO, "resolve library path", err)
	}
	return abs, nil
}

// IsLibrary reports whether path carries the library marker directory.
func IsLibrary(path string) bool {
	info, err := os.Stat(filepath.Join(path, markerDir))
	return err == nil && info.IsDir()
}

// Open resolves a LIBRARY argument and loads its settings. The library
// must have been initialized before.
func Open(arg string) (*Library, error) {
	root, err := Resolve(arg)
	if err != nil {
		return nil, err
	}
	if !IsLibrary(root) {
		return nil, errs.Wrapf(errs.ErrConfig, "%s is not a library (no %s directory), run init first", root, markerDir)
	}

	settings, err := config.Load(filepath.Join(root, markerDir, configName))
	if err != nil {
		return nil, err
	}

	return &Library{Root: root, Settings: settings}, nil
}

// Init creates the library directory and its marker, with a default
// config and an empty download queue. Re-running it on an existing
// library leaves the files alone.
func Init(arg string) (*Library, error) {
	root, err := absolute(arg)
	if err != nil {
		return nil, err
	}

	marker := filepath.Join(root, markerDir)
	if err := os.MkdirAll(marker, 0755); err != nil {
		return nil, errs.Wrap(errs.ErrIO, "create library", err)
	}

	configPath := filepath.Join(marker, configName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := config.DefaultSettings().Save(configPath); err != nil {
			return nil, err
		}
	}

	inputPath := filepath.Join(marker, inputName)
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		if err := os.WriteFile(inputPath, nil, 0644); err != nil {
			return nil, errs.Wrap(errs.ErrIO, "create download queue", err)
		}
	}

	return Open(root)
}

// MarkerPath returns the .cratekeeper directory of the library.
func (l *Library) MarkerPath() string {
	return filepath.Join(l.Root, markerDir)
}

// ConfigPath returns the library's config.toml location.
func (l *Library) ConfigPath() string {
	return filepath.Join(l.MarkerPath(), configName)
}

// InputFile returns the download queue location.
func (l *Library) InputFile() string {
	return filepath.Join(l.MarkerPath(), inputName)
}

// YtDlpConf returns the yt-dlp config location and whether it exists.
func (l *Library) YtDlpConf() (string, bool) {
	path := filepath.Join(l.MarkerPath(), ytDlpName)
	_, err := os.Stat(path)
	return path, err == nil
}

// InputDir returns the resolved input directory.
func (l *Library) InputDir() string {
	return l.Settings.InputPath(l.Root)
}

// TargetDir returns the resolved deposit target directory.
func (l *Library) TargetDir() string {
	return l.Settings.TargetPath(l.Root)
}

// Lock takes the library's non-blocking file lock, failing when another
// invocation is already working on this library.
func (l *Library) Lock() error {
	l.lock = flock.New(filepath.Join(l.MarkerPath(), lockName))
	ok, err := l.lock.TryLock()
	if err != nil {
		return errs.Wrap(errs.ErrIO, "acquire library lock", err)
	}
	if !ok {
		return errs.Wrapf(errs.ErrConfig, "library %s is in use by another process", l.Root)
	}
	return nil
}

// Unlock releases the library lock. Safe to call without a prior Lock.
func (l *Library) Unlock() error {
	if l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}

// Queue returns the download queue, one trimmed entry per line, with
// blank lines dropped and duplicates removed in first-seen order.
func (l *Library) Queue() ([]string, error) {
	data, err := os.ReadFile(l.InputFile())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.Wrap(errs.ErrIO, "read download queue", err)
	}

	seen := make(map[string]bool)
	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		entries = append(entries, line)
	}
	return entries, nil
}

// AppendQueue adds entries to the download queue.
func (l *Library) AppendQueue(entries []string) error {
	if len(entries) == 0 {
		return nil
	}

	f, err := os.OpenFile(l.InputFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errs.Wrap(errs.ErrIO, "open download queue", err)
	}
	defer f.Close()

	for _, entry := range entries {
		if _, err := f.WriteString(entry + "\n"); err != nil {
			return errs.Wrap(errs.ErrIO, "append to download queue", err)
		}
	}
	return nil
}

// ClearQueue truncates the download queue.
func (l *Library) ClearQueue() error {
	if err := os.WriteFile(l.InputFile(), nil, 0644); err != nil {
		return errs.Wrap(errs.ErrIO, "clear download queue", err)
	}
	return nil
}
