package audio

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bogem/id3v2"

	"cratekeeper/internal/tag"
)

// Supported reports whether a file's tag container can be read and
// written. Only ID3v2 carriers (MP3) are handled.
func Supported(fileName string) bool {
	return strings.EqualFold(filepath.Ext(fileName), ".mp3")
}

// FileTags is everything read from one file's tag container.
type FileTags struct {
	// Record holds the embedded tags. Fields the container doesn't
	// carry are absent.
	Record *tag.Record

	// Date is the recording date when the container carries one with
	// at least year and month precision; zero otherwise.
	Date time.Time
}

// ReadTags reads the embedded tag record from an MP3 file.
//
// Frames map onto the record as follows:
//   - TPE1 → artist, TPE2 → album_artist
//   - TALB → album, TCON → genre
//   - TIT2 → title, TRCK → track
//   - TYER/TDRC → year (first 4-digit value wins)
//
// Featured artists and remix descriptors have no frame of their own;
// they live inside the title text and are recovered by parsing it.
func ReadTags(path string) (*FileTags, error) {
	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3.Close()

	rec := tag.NewRecord()
	set := func(name tag.Name, value string) {
		if strings.TrimSpace(value) != "" {
			_ = rec.Set(name, value)
		}
	}

	set(tag.Artist, id3.Artist())
	set(tag.AlbumArtist, id3.GetTextFrame("TPE2").Text)
	set(tag.Album, id3.Album())
	set(tag.Genre, id3.Genre())
	set(tag.Title, id3.Title())
	set(tag.Track, id3.GetTextFrame("TRCK").Text)

	tdrc := strings.TrimSpace(id3.GetTextFrame("TDRC").Text)
	if year := yearOf(id3.GetTextFrame("TYER").Text); year != "" {
		set(tag.Year, year)
	} else {
		set(tag.Year, yearOf(tdrc))
	}

	tags := &FileTags{Record: rec}
	if date, ok := parseDate(tdrc); ok {
		tags.Date = date
	}
	return tags, nil
}

// Tagger writes finalized records back into MP3 files.
//
// Example:
//
//	tagger := NewTagger(true, 800)
//	err := tagger.WriteTags("/in/song.mp3", res.Record, res.Title)
type Tagger struct {
	normalizeArtwork bool
	artworkMaxEdge   int

	// OnWarning, when set, receives problems that do not fail the
	// write, such as artwork that cannot be decoded.
	OnWarning func(message string)
}

// NewTagger creates a Tagger. With normalizeArtwork set, embedded
// front-cover art is downsized to maxEdge pixels and re-encoded as
// JPEG on every write.
func NewTagger(normalizeArtwork bool, maxEdge int) *Tagger {
	return &Tagger{normalizeArtwork: normalizeArtwork, artworkMaxEdge: maxEdge}
}

// WriteTags rewrites the file's container from the record. The display
// title goes into TIT2, not the record's raw title; featured artists
// and remix are already rendered into it. Fields absent from the record
// have their frames removed, so an edit that cleared a tag clears the
// file too. The album artist frame falls back to the artist when the
// record has none.
func (t *Tagger) WriteTags(path string, rec *tag.Record, displayTitle string) error {
	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer id3.Close()

	artist, _ := rec.Get(tag.Artist)

	setFrame(id3, "TPE1", artist)
	setFrame(id3, "TALB", first(rec, tag.Album))
	setFrame(id3, "TCON", first(rec, tag.Genre))
	setFrame(id3, "TRCK", first(rec, tag.Track))
	setFrame(id3, "TIT2", displayTitle)

	albumArtist := first(rec, tag.AlbumArtist)
	if albumArtist == "" {
		albumArtist = artist
	}
	setFrame(id3, "TPE2", albumArtist)

	year := first(rec, tag.Year)
	setFrame(id3, "TYER", year)
	setFrame(id3, "TDRC", year)

	if t.normalizeArtwork {
		t.refreshArtwork(id3, path)
	}

	return id3.Save()
}

// refreshArtwork replaces an existing front cover with its normalized
// form. Artwork that fails to decode is reported through OnWarning and
// left untouched.
func (t *Tagger) refreshArtwork(id3 *id3v2.Tag, path string) {
	frames := id3.GetFrames(id3.CommonID("Attached picture"))
	if len(frames) == 0 {
		return
	}
	pic, ok := frames[0].(id3v2.PictureFrame)
	if !ok {
		return
	}

	normalized, changed, err := NormalizeArtwork(pic.Picture, t.artworkMaxEdge)
	if err != nil {
		t.warn("Keeping artwork of %s: %v", filepath.Base(path), err)
		return
	}
	if !changed {
		return
	}

	id3.DeleteFrames(id3.CommonID("Attached picture"))
	id3.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     normalized,
	})
}

func (t *Tagger) warn(format string, args ...any) {
	if t.OnWarning != nil {
		t.OnWarning(fmt.Sprintf(format, args...))
	}
}

func setFrame(id3 *id3v2.Tag, frameID, value string) {
	if value == "" {
		id3.DeleteFrames(frameID)
		return
	}
	id3.AddTextFrame(frameID, id3v2.EncodingUTF8, value)
}

func first(rec *tag.Record, name tag.Name) string {
	v, _ := rec.Get(name)
	return v
}

// yearOf extracts a leading 4-digit year from a frame value, which for
// TDRC may carry a full timestamp.
func yearOf(text string) string {
	text = strings.TrimSpace(text)
	if len(text) < 4 {
		return ""
	}
	year := text[:4]
	for _, c := range year {
		if c < '0' || c > '9' {
			return ""
		}
	}
	return year
}

// parseDate reads a TDRC value with at least year-month precision. A
// bare year is not enough to shelve a file chronologically, so it
// reports false and the caller falls back to the file's mtime.
func parseDate(text string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if len(text) < len(layout) {
			continue
		}
		if d, err := time.Parse(layout, text[:len(layout)]); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
