package deposit

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"cratekeeper/internal/errs"
	"cratekeeper/internal/tag"
)

func record(t *testing.T, artist, album string) *tag.Record {
	t.Helper()
	r := tag.NewRecord()
	if artist != "" {
		if err := r.Set(tag.Artist, artist); err != nil {
			t.Fatal(err)
		}
	}
	if album != "" {
		if err := r.Set(tag.Album, album); err != nil {
			t.Fatal(err)
		}
	}
	return r
}

func TestDestination_Drop(t *testing.T) {
	got := Destination(record(t, "Artist", "Album"), "song.mp3", ModeDrop, time.Time{})
	if got != "song.mp3" {
		t.Errorf("Destination = %q, want %q", got, "song.mp3")
	}
}

func TestDestination_Alphabetical(t *testing.T) {
	tests := []struct {
		name     string
		artist   string
		album    string
		fileName string
		want     string
	}{
		{
			name:     "artist and album",
			artist:   "Artist",
			album:    "Album",
			fileName: "song.mp3",
			want:     filepath.Join("A", "Artist", "Album", "song.mp3"),
		},
		{
			name:     "artist without album",
			artist:   "Artist",
			fileName: "song.mp3",
			want:     filepath.Join("A", "Artist", "song.mp3"),
		},
		{
			name:     "image never gets the album folder",
			artist:   "Artist",
			album:    "Album",
			fileName: "cover.jpg",
			want:     filepath.Join("A", "Artist", "cover.jpg"),
		},
		{
			name:     "no artist buckets by file name",
			fileName: "hello.mp3",
			want:     filepath.Join("H", "hello.mp3"),
		},
		{
			name:     "lowercase artist is uppercased for the bucket",
			artist:   "artist",
			fileName: "song.mp3",
			want:     filepath.Join("A", "artist", "song.mp3"),
		},
		{
			name:     "digit-leading artist",
			artist:   "42 Crew",
			fileName: "song.mp3",
			want:     filepath.Join(NumericBucket, "42 Crew", "song.mp3"),
		},
		{
			name:     "punctuation-leading artist",
			artist:   ".band.",
			fileName: "song.mp3",
			want:     filepath.Join(NumericBucket, ".band", "song.mp3"),
		},
		{
			name:     "non-latin artist",
			artist:   "アーティスト",
			fileName: "song.mp3",
			want:     filepath.Join(NumericBucket, "アーティスト", "song.mp3"),
		},
		{
			name:     "artist with path characters is sanitized",
			artist:   "AC/DC",
			album:    "Back: Black",
			fileName: "song.mp3",
			want:     filepath.Join("A", "AC_DC", "Back_ Black", "song.mp3"),
		},
		{
			name:     "no artist, digit-leading file name",
			fileName: "01 intro.mp3",
			want:     filepath.Join(NumericBucket, "01 intro.mp3"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record(t, tt.artist, tt.album)
			got := Destination(rec, tt.fileName, ModeAlphabetical, time.Time{})
			if got != tt.want {
				t.Errorf("Destination = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDestination_Chronological(t *testing.T) {
	date := time.Date(2024, time.April, 17, 12, 0, 0, 0, time.UTC)
	got := Destination(tag.NewRecord(), "song.mp3", ModeChronological, date)
	want := filepath.Join("2024", "04", "song.mp3")
	if got != want {
		t.Errorf("Destination = %q, want %q", got, want)
	}
}

func TestPlanFile(t *testing.T) {
	rec := record(t, "Artist", "")
	date := time.Time{}

	plan := PlanFile(rec, filepath.Join("in", "song.mp3"), "out", ModeAlphabetical, date)
	if plan.Source != filepath.Join("in", "song.mp3") {
		t.Errorf("Source = %q", plan.Source)
	}
	if plan.Target != filepath.Join("out", "A", "Artist", "song.mp3") {
		t.Errorf("Target = %q", plan.Target)
	}
	if !plan.CreateDir {
		t.Error("CreateDir = false, want true for a nested target")
	}

	flat := PlanFile(rec, filepath.Join("in", "song.mp3"), "out", ModeDrop, date)
	if flat.CreateDir {
		t.Error("CreateDir = true for a drop placement")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"drop", ModeDrop, false},
		{"", ModeDrop, false},
		{"a-z", ModeAlphabetical, false},
		{"A-Z", ModeAlphabetical, false},
		{"date", ModeChronological, false},
		{"alphabetical", ModeDrop, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errs.ErrConfig) {
					t.Errorf("error = %v, want configuration class", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
