package scrape

import (
	"testing"
)

// renderer builds a videoRenderer JSON fragment as it appears in the
// results page initial data.
func renderer(id, title string) string {
	return `{"videoRenderer":{"videoId":"` + id +
		`","thumbnail":{"thumbnails":[{"url":"https://i.ytimg.com/vi/` + id + `/default.jpg"}]},` +
		`"title":{"runs":[{"text":"` + title + `"}],"accessibility":{"accessibilityData":{"label":"` + title + `"}}}}}`
}

func TestParseResults(t *testing.T) {
	page := `{"contents":[` +
		renderer("dQw4w9WgXcQ", "First Song") + "," +
		renderer("abc123def45", "Second Song") + `]}`

	results := parseResults(page, 0)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Title != "First Song" {
		t.Errorf("results[0].Title = %q", results[0].Title)
	}
	if results[0].URL != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("results[0].URL = %q", results[0].URL)
	}
	if results[1].Title != "Second Song" {
		t.Errorf("results[1].Title = %q", results[1].Title)
	}
}

func TestParseResults_DuplicatesFiltered(t *testing.T) {
	page := renderer("same9same90", "A") + renderer("same9same90", "A again") + renderer("other1other", "B")

	results := parseResults(page, 0)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}

func TestParseResults_Limit(t *testing.T) {
	page := renderer("aaaaaaaaaa1", "A") + renderer("bbbbbbbbbb2", "B") + renderer("cccccccccc3", "C")

	results := parseResults(page, 2)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[1].Title != "B" {
		t.Errorf("results[1].Title = %q, want B", results[1].Title)
	}
}

func TestParseResults_EscapedTitle(t *testing.T) {
	page := renderer("aaaaaaaaaa1", `Drum & Bass \"Mix\"`)

	results := parseResults(page, 0)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Title != `Drum & Bass "Mix"` {
		t.Errorf("Title = %q", results[0].Title)
	}
}

func TestParseResults_SkipsTitlelessRenderer(t *testing.T) {
	broken := `{"videoRenderer":{"videoId":"notitle1234","thumbnail":{}}}`
	page := broken + renderer("withtitle12", "Kept")

	results := parseResults(page, 0)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Title != "Kept" {
		t.Errorf("Title = %q, want Kept", results[0].Title)
	}
}

func TestParseResults_EmptyPage(t *testing.T) {
	if results := parseResults("<html>nothing embedded</html>", 0); len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestUnescapeJSON(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`plain`, "plain"},
		{`a \"quote\"`, `a "quote"`},
		{`ampersand & co`, "ampersand & co"},
		{`broken \`, `broken \`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := unescapeJSON(tt.input); got != tt.want {
				t.Errorf("unescapeJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
