package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cratekeeper/internal/library"
	"cratekeeper/internal/scrape"
)

func newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add LIBRARY TERM...",
		Short: "Queue URLs or search terms for download",
		Long: `Append terms to the library's download queue. URLs are queued as
they are, except Spotify playlist and album URLs, which are scraped
into one search query per track. Anything that is not a URL is joined
into a single search query.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLockedLibrary(cmd, args[0], func(lib *library.Library) error {
				entries, err := expandTerms(cmd.Context(), args[1:], cmd.OutOrStdout())
				if err != nil {
					return err
				}
				if err := lib.AppendQueue(entries); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Queued %d line(s)\n", len(entries))
				return nil
			})
		},
	}
}

// expandTerms turns command arguments into queue lines. Spotify
// collections fan out into per-track queries; loose words collapse
// into one query.
func expandTerms(ctx context.Context, terms []string, out io.Writer) ([]string, error) {
	var entries []string
	var words []string
	spotify := scrape.NewSpotify(scrape.NewClient())

	for _, term := range terms {
		switch {
		case !strings.HasPrefix(term, "http://") && !strings.HasPrefix(term, "https://"):
			words = append(words, term)
		case scrape.IsCollectionURL(term):
			queries, err := spotify.CollectionQueries(ctx, term)
			if err != nil {
				return nil, err
			}
			fmt.Fprintf(out, "Scraped %d track(s) from %s\n", len(queries), term)
			entries = append(entries, queries...)
		default:
			entries = append(entries, term)
		}
	}

	if len(words) > 0 {
		entries = append(entries, "ytsearch:"+strings.Join(words, " "))
	}
	return entries, nil
}
