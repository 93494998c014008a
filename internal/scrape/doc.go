// Package scrape resolves search queries and Spotify collections into
// downloadable YouTube URLs.
//
// The package handles two main use cases:
//
//  1. Searching YouTube for a query and extracting the video results
//  2. Expanding a Spotify playlist or album into per-track search queries
//
// # YouTube Search
//
// Use YouTube to find candidate videos for a query:
//
//	yt := scrape.NewYouTube(scrape.NewClient())
//	results, err := yt.Search(ctx, "artist - song", 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    fmt.Printf("%s | %s\n", r.Title, r.URL)
//	}
//
// Batches of queries resolve concurrently with ResolveQueries.
//
// # Spotify Collections
//
// Spotify tracks cannot be downloaded directly because of DRM, so a
// collection URL is expanded into one ytsearch query per track:
//
//	sp := scrape.NewSpotify(scrape.NewClient())
//	queries, err := sp.CollectionQueries(ctx, playlistURL)
//
// # Page Formats
//
// Both scrapers work off JSON embedded in the fetched pages: the YouTube
// results page carries videoRenderer objects in its initial-data blob,
// and the Spotify embed page carries a trackList array. The extraction
// is anchored on those shapes and fails soft (ErrNoResults, ErrNoTracks)
// when a page stops matching them.
package scrape
