package deposit

import (
	"path/filepath"
	"strings"
	"time"

	"cratekeeper/internal/errs"
	ioutils "cratekeeper/internal/io"
	"cratekeeper/internal/tag"
)

// Mode selects the organization policy for deposited files.
type Mode int

const (
	// ModeDrop places files directly under the target root.
	ModeDrop Mode = iota
	// ModeAlphabetical shelves files by artist letter.
	ModeAlphabetical
	// ModeChronological shelves files by year and month.
	ModeChronological
)

// NumericBucket is the shelf for names that don't start with an ASCII
// letter.
const NumericBucket = "0-9#"

// ParseMode resolves a configuration value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drop":
		return ModeDrop, nil
	case "a-z":
		return ModeAlphabetical, nil
	case "date":
		return ModeChronological, nil
	}
	return ModeDrop, errs.Wrapf(errs.ErrConfig, "unknown organize mode %q", s)
}

func (m Mode) String() string {
	switch m {
	case ModeAlphabetical:
		return "a-z"
	case ModeChronological:
		return "date"
	default:
		return "drop"
	}
}

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

func isImage(fileName string) bool {
	return imageExts[strings.ToLower(filepath.Ext(fileName))]
}

// Destination computes the relative path for one file under the target
// root. Purely a function of its inputs; the date is only consulted by
// ModeChronological and must carry the file's resolved date (embedded
// tag or modification time).
func Destination(rec *tag.Record, fileName string, mode Mode, date time.Time) string {
	switch mode {
	case ModeAlphabetical:
		return alphabetical(rec, fileName)
	case ModeChronological:
		return filepath.Join(date.Format("2006"), date.Format("01"), fileName)
	default:
		return fileName
	}
}

func alphabetical(rec *tag.Record, fileName string) string {
	if rec == nil {
		rec = tag.NewRecord()
	}

	artist, hasArtist := rec.Get(tag.Artist)
	if !hasArtist {
		return filepath.Join(bucketFor(fileName), fileName)
	}

	parts := []string{bucketFor(artist), ioutils.SanitizeFileName(artist)}
	if album, ok := rec.Get(tag.Album); ok && !isImage(fileName) {
		parts = append(parts, ioutils.SanitizeFileName(album))
	}
	return filepath.Join(append(parts, fileName)...)
}

// bucketFor picks the alphabetical shelf from the first character of a
// name. Only ASCII letters get their own shelf; digits, punctuation and
// non-Latin scripts share the numeric bucket.
func bucketFor(name string) string {
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			return string(r)
		case r >= 'a' && r <= 'z':
			return string(r - 'a' + 'A')
		}
		return NumericBucket
	}
	return NumericBucket
}

// DestinationPlan pairs one file with its computed target. CreateDir
// reports whether the target sits below intermediate directories that
// may have to be created first.
type DestinationPlan struct {
	Source    string
	Target    string
	CreateDir bool
}

// PlanFile builds the full destination plan for one source file.
func PlanFile(rec *tag.Record, sourcePath, targetRoot string, mode Mode, date time.Time) DestinationPlan {
	rel := Destination(rec, filepath.Base(sourcePath), mode, date)
	return DestinationPlan{
		Source:    sourcePath,
		Target:    filepath.Join(targetRoot, rel),
		CreateDir: filepath.Dir(rel) != ".",
	}
}
