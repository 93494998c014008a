package title

import (
	"regexp"
	"strings"

	"cratekeeper/internal/tag"
)

// separator splits artist from title. A bare hyphen is not structural,
// so hyphenated names survive the split.
const separator = " - "

var (
	featMarker = regexp.MustCompile(`(?i)\b(?:ft\.|feat\.|featuring)`)
	yearGroup  = regexp.MustCompile(`\((\d{4})\)`)
	remixGroup = regexp.MustCompile(`\[([^\[\]]*)\]`)
	nameSplit  = regexp.MustCompile(`[,&;]`)
)

// Parse extracts a tag fragment from a raw title string. It never
// fails: with no recognizable structure the result carries the trimmed
// input as its title and nothing else.
func Parse(raw string) *tag.Record {
	rec := tag.NewRecord()
	working := raw

	working = extractFeat(working, rec)
	working = extractYear(working, rec)
	working = extractRemix(working, rec)
	splitArtistTitle(working, rec)

	return rec
}

// extractFeat captures the names after the first feat marker, up to the
// next structural separator. Later markers are left in place and end up
// as literal title text.
func extractFeat(text string, rec *tag.Record) string {
	loc := featMarker.FindStringIndex(text)
	if loc == nil {
		return text
	}

	rest := text[loc[1]:]
	end := len(rest)
	for _, stop := range []string{separator, "(", "["} {
		if i := strings.Index(rest, stop); i >= 0 && i < end {
			end = i
		}
	}

	for _, name := range nameSplit.Split(rest[:end], -1) {
		rec.AddFeat(cleanName(name))
	}

	return cut(text, loc[0], loc[1]+end)
}

func extractYear(text string, rec *tag.Record) string {
	loc := yearGroup.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	_ = rec.Set(tag.Year, text[loc[2]:loc[3]])
	return cut(text, loc[0], loc[1])
}

func extractRemix(text string, rec *tag.Record) string {
	loc := remixGroup.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	_ = rec.Set(tag.Remix, text[loc[2]:loc[3]])
	return cut(text, loc[0], loc[1])
}

func splitArtistTitle(text string, rec *tag.Record) {
	if i := strings.Index(text, separator); i >= 0 {
		_ = rec.Set(tag.Artist, text[:i])
		_ = rec.Set(tag.Title, text[i+len(separator):])
		return
	}
	_ = rec.Set(tag.Title, text)
}

// cut removes text[from:to], merging a doubled space left behind at the
// seam so the artist/title separator stays intact for later steps.
func cut(text string, from, to int) string {
	left, right := text[:from], text[to:]
	if strings.HasSuffix(left, " ") && strings.HasPrefix(right, " ") {
		right = right[1:]
	}
	return left + right
}

// cleanName trims a captured artist name and drops trailing closing
// brackets that have no opening counterpart, which appear when a feat
// clause sits inside parentheses.
func cleanName(name string) string {
	name = strings.TrimSpace(name)
	for len(name) > 0 {
		last := name[len(name)-1]
		if last == ')' && !strings.Contains(name, "(") {
			name = strings.TrimSpace(name[:len(name)-1])
			continue
		}
		if last == ']' && !strings.Contains(name, "[") {
			name = strings.TrimSpace(name[:len(name)-1])
			continue
		}
		break
	}
	return name
}
