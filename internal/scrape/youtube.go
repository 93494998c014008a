package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrNoResults is returned when a search yields no video results.
//
// This typically occurs when:
//   - The query matches nothing
//   - The results page HTML structure has changed unexpectedly
var ErrNoResults = errors.New("no results found")

// Result is one video hit from a YouTube search.
type Result struct {
	Title string
	URL   string
}

// Resolved pairs a search query with its best hit, or the error that
// prevented finding one.
type Resolved struct {
	Query  string
	Result Result
	Err    error
}

// YouTube searches YouTube by scraping its results pages.
//
// The results page embeds all data as JSON in an initial-data blob.
// Each hit appears as a videoRenderer object:
//
//	"videoRenderer":{"videoId":"ID",...,"title":{"runs":[{"text":"TITLE"}],...}
//
// Search cuts the page into one chunk per renderer and extracts the ID
// and title from each.
//
// Example usage:
//
//	yt := NewYouTube(NewClient())
//	results, err := yt.Search(ctx, "artist - song", 5)
type YouTube struct {
	client *Client
}

// NewYouTube creates a YouTube search scraper on the given client.
func NewYouTube(client *Client) *YouTube {
	return &YouTube{client: client}
}

const (
	resultsURL    = "https://www.youtube.com/results?search_query="
	watchURL      = "https://www.youtube.com/watch?v="
	rendererStart = `"videoRenderer":{"videoId":"`
)

var titlePattern = regexp.MustCompile(`"title":\{"runs":\[\{"text":"((?:[^"\\]|\\.)*)"`)

// Search fetches the results page for a query and returns up to limit
// unique videos in page order.
func (y *YouTube) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	page, err := y.client.GetString(ctx, resultsURL+url.QueryEscape(query))
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	results := parseResults(page, limit)
	if len(results) == 0 {
		return nil, fmt.Errorf("search %q: %w", query, ErrNoResults)
	}
	return results, nil
}

// First returns the top hit for a query.
func (y *YouTube) First(ctx context.Context, query string) (Result, error) {
	results, err := y.Search(ctx, query, 1)
	if err != nil {
		return Result{}, err
	}
	return results[0], nil
}

// ResolveQueries finds the top hit for each query, preserving input
// order. Lookups run concurrently, at most workers at a time; a failed
// lookup is recorded on its entry and does not stop the others.
func (y *YouTube) ResolveQueries(ctx context.Context, queries []string, workers int) []Resolved {
	resolved := make([]Resolved, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, query := range queries {
		i, query := i, query // capture
		g.Go(func() error {
			result, err := y.First(ctx, query)
			resolved[i] = Resolved{Query: query, Result: result, Err: err}
			return nil // Continue with other queries
		})
	}

	_ = g.Wait()
	return resolved
}

// parseResults extracts unique videos from a results page.
func parseResults(page string, limit int) []Result {
	seen := make(map[string]bool)
	var results []Result

	rest := page
	for {
		start := strings.Index(rest, rendererStart)
		if start == -1 {
			break
		}
		rest = rest[start+len(rendererStart):]

		idEnd := strings.IndexByte(rest, '"')
		if idEnd == -1 {
			break
		}
		id := rest[:idEnd]

		// The title lives in the same renderer, before the next one starts.
		chunk := rest
		if next := strings.Index(rest, rendererStart); next != -1 {
			chunk = rest[:next]
		}

		title := ""
		if m := titlePattern.FindStringSubmatch(chunk); m != nil {
			title = unescapeJSON(m[1])
		}

		if id == "" || title == "" || seen[id] {
			continue
		}
		seen[id] = true
		results = append(results, Result{Title: title, URL: watchURL + id})
		if limit > 0 && len(results) >= limit {
			break
		}
	}

	return results
}

// unescapeJSON undoes JSON string escapes in a regex capture.
func unescapeJSON(text string) string {
	unquoted, err := strconv.Unquote(`"` + text + `"`)
	if err != nil {
		return text
	}
	return unquoted
}
