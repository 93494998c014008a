package tag

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Name identifies one field of a Record.
type Name string

const (
	Album       Name = "album"
	AlbumArtist Name = "album_artist"
	Artist      Name = "artist"
	Feat        Name = "feat"
	Genre       Name = "genre"
	Remix       Name = "remix"
	Title       Name = "title"
	Track       Name = "track"
	Year        Name = "year"
)

// Names lists every recognized tag name in display order.
var Names = []Name{Album, AlbumArtist, Artist, Feat, Genre, Remix, Title, Track, Year}

// ListSeparator is reserved for separating multiple values in user
// input (e.g. "artist;guest"). Stored values never contain it.
const ListSeparator = ";"

// ParseName resolves a user-supplied tag name, case-insensitively.
func ParseName(s string) (Name, bool) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Names {
		if n == known {
			return known, true
		}
	}
	return "", false
}

// Record holds the metadata of a single media file. Fields are
// optional; the zero value is a record with every field absent.
type Record struct {
	album       string
	albumArtist string
	artist      string
	feat        []string
	genre       string
	remix       string
	title       string
	track       string
	year        string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{}
}

// Set stores a sanitized value for the named tag. An empty value (after
// trimming) clears the tag. Setting feat splits the value on the list
// separator; setting year rejects anything but a 4-digit value.
func (r *Record) Set(name Name, value string) error {
	switch name {
	case Feat:
		r.SetFeat(strings.Split(value, ListSeparator))
		return nil
	case Year:
		v := strings.TrimSpace(value)
		if v == "" {
			r.year = ""
			return nil
		}
		if !isYear(v) {
			return fmt.Errorf("year must be a 4-digit value, got %q", value)
		}
		r.year = v
		return nil
	}

	v := sanitize(value)
	switch name {
	case Album:
		r.album = v
	case AlbumArtist:
		r.albumArtist = v
	case Artist:
		r.artist = v
	case Genre:
		r.genre = v
	case Remix:
		r.remix = v
	case Title:
		r.title = v
	case Track:
		r.track = v
	default:
		return fmt.Errorf("unknown tag name %q", string(name))
	}
	return nil
}

// Get returns the display value of the named tag and whether it is
// present. The feat list is joined per JoinNames.
func (r *Record) Get(name Name) (string, bool) {
	var v string
	switch name {
	case Album:
		v = r.album
	case AlbumArtist:
		v = r.albumArtist
	case Artist:
		v = r.artist
	case Feat:
		v = JoinNames(r.feat)
	case Genre:
		v = r.genre
	case Remix:
		v = r.remix
	case Title:
		v = r.title
	case Track:
		v = r.track
	case Year:
		v = r.year
	}
	return v, v != ""
}

// Has reports whether the named tag is present.
func (r *Record) Has(name Name) bool {
	_, ok := r.Get(name)
	return ok
}

// Clear removes the named tag.
func (r *Record) Clear(name Name) {
	if name == Feat {
		r.feat = nil
		return
	}
	// Set with an empty value clears every single-valued field, and
	// the year path accepts empty explicitly.
	_ = r.Set(name, "")
}

// Feat returns a copy of the featured-artist list.
func (r *Record) Feat() []string {
	if len(r.feat) == 0 {
		return nil
	}
	out := make([]string, len(r.feat))
	copy(out, r.feat)
	return out
}

// SetFeat replaces the featured-artist list. Entries are sanitized and
// empties dropped; order is preserved.
func (r *Record) SetFeat(names []string) {
	r.feat = nil
	for _, n := range names {
		r.AddFeat(n)
	}
}

// AddFeat appends one featured artist, unless sanitizing leaves nothing.
func (r *Record) AddFeat(name string) {
	if v := sanitize(name); v != "" {
		r.feat = append(r.feat, v)
	}
}

// DropFeat removes feat entries matching the given name,
// case-insensitively. Used to keep feat distinct from artist.
func (r *Record) DropFeat(name string) {
	if len(r.feat) == 0 {
		return
	}
	kept := r.feat[:0]
	for _, f := range r.feat {
		if !strings.EqualFold(f, name) {
			kept = append(kept, f)
		}
	}
	r.feat = kept
	if len(r.feat) == 0 {
		r.feat = nil
	}
}

// Clone returns an independent copy of the record.
func (r *Record) Clone() *Record {
	out := *r
	out.feat = r.Feat()
	return &out
}

// FillFrom copies every field absent in r from other. Present fields,
// including a non-empty feat list, are left alone.
func (r *Record) FillFrom(other *Record) {
	if other == nil {
		return
	}
	for _, name := range Names {
		if name == Feat {
			if len(r.feat) == 0 && len(other.feat) > 0 {
				r.feat = other.Feat()
			}
			continue
		}
		if r.Has(name) {
			continue
		}
		if v, ok := other.Get(name); ok {
			_ = r.Set(name, v)
		}
	}
}

// Equal reports whether both records hold the same values.
func (r *Record) Equal(other *Record) bool {
	if other == nil {
		return false
	}
	for _, name := range Names {
		a, aok := r.Get(name)
		b, bok := other.Get(name)
		if aok != bok || a != b {
			return false
		}
	}
	return true
}

// JoinNames renders a name list for display: one name stands alone, two
// are joined by an ampersand, three or more are comma-separated with an
// ampersand before the final name.
func JoinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " & " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " & " + names[len(names)-1]
	}
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// sanitize normalizes a value for storage: NFC form, the reserved list
// separator replaced by a comma, surrounding whitespace trimmed.
func sanitize(v string) string {
	v = norm.NFC.String(v)
	v = strings.ReplaceAll(v, ListSeparator, ",")
	return strings.TrimSpace(v)
}
