package main

import (
	"fmt"
	"strings"

	"cratekeeper/internal/tag"
)

const editorHelp = `Commands:
  NAME VALUE  set a tag; artist takes a ;-separated list whose first
              entry is the artist and whose rest become feat
  NAME        clear a tag
  h           show this help
  q           finish editing

Tags: album, album_artist, artist, feat, genre, remix, title, track, year
`

// applyEditCommand applies one editor line to the record. The first
// word names the tag, the remainder is the value; no value clears the
// tag. Unknown names and invalid values leave the record untouched.
func applyEditCommand(rec *tag.Record, line string) error {
	nameText, value, _ := strings.Cut(strings.TrimSpace(line), " ")
	name, ok := tag.ParseName(nameText)
	if !ok {
		return fmt.Errorf("unknown tag %q", nameText)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		rec.Clear(name)
		return nil
	}

	if name == tag.Artist {
		parts := strings.Split(value, tag.ListSeparator)
		if err := rec.Set(tag.Artist, parts[0]); err != nil {
			return err
		}
		rec.SetFeat(parts[1:])
		return nil
	}
	return rec.Set(name, value)
}
