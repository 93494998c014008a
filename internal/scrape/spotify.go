package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrNoTracks is returned when no tracks can be found on a Spotify page.
//
// This typically occurs when:
//   - The collection is empty or region-locked
//   - The embed page HTML structure has changed unexpectedly
var ErrNoTracks = errors.New("no tracks found on page")

// Spotify turns playlist and album URLs into YouTube search queries.
//
// Spotify streams are DRM protected, so the tracks cannot be downloaded
// directly. Instead the collection's embed page is scraped; it carries a
// trackList JSON array with one entry per track:
//
//	{"uri":"spotify:track:ID","uid":"...","title":"Song","subtitle":"Artist1, Artist2",...}
//
// Each entry becomes a ytsearch query for the downloader.
//
// Example usage:
//
//	sp := NewSpotify(NewClient())
//	queries, err := sp.CollectionQueries(ctx, "https://open.spotify.com/playlist/37i9dQ")
type Spotify struct {
	client *Client
}

// NewSpotify creates a Spotify collection scraper on the given client.
func NewSpotify(client *Client) *Spotify {
	return &Spotify{client: client}
}

const embedBase = "https://open.spotify.com/embed/"

var trackPattern = regexp.MustCompile(
	`"uri":"spotify:track:[^"]*"[^{}]*?"title":"((?:[^"\\]|\\.)*)","subtitle":"((?:[^"\\]|\\.)*)"`)

// IsCollectionURL reports whether raw points at a Spotify playlist or
// album.
func IsCollectionURL(raw string) bool {
	_, ok := embedURL(raw)
	return ok
}

// embedURL converts an open.spotify.com collection URL to its embed
// form, which serves the track list without scripting.
func embedURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host != "open.spotify.com" {
		return "", false
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+1 < len(parts); i++ {
		if (parts[i] == "playlist" || parts[i] == "album") && parts[i+1] != "" {
			return embedBase + parts[i] + "/" + parts[i+1], true
		}
	}
	return "", false
}

// CollectionQueries scrapes the collection behind raw and returns one
// ytsearch:"<title> <artists>" query per track, in page order.
func (s *Spotify) CollectionQueries(ctx context.Context, raw string) ([]string, error) {
	embed, ok := embedURL(raw)
	if !ok {
		return nil, fmt.Errorf("%s is not a Spotify playlist or album URL", raw)
	}

	page, err := s.client.GetString(ctx, embed)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", embed, err)
	}

	queries := parseTrackQueries(page)
	if len(queries) == 0 {
		return nil, fmt.Errorf("%s: %w", raw, ErrNoTracks)
	}
	return queries, nil
}

// parseTrackQueries extracts the trackList entries from an embed page
// and formats each as a ytsearch query.
func parseTrackQueries(page string) []string {
	matches := trackPattern.FindAllStringSubmatch(page, -1)

	queries := make([]string, 0, len(matches))
	for _, m := range matches {
		title := unescapeJSON(m[1])
		artists := unescapeJSON(m[2])
		queries = append(queries, fmt.Sprintf("ytsearch:%q", strings.TrimSpace(title+" "+artists)))
	}
	return queries
}
