package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cratekeeper/internal/library"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show LIBRARY",
		Short: "Show a library's settings and queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := library.Open(args[0])
			if err != nil {
				return err
			}
			queue, err := lib.Queue()
			if err != nil {
				return err
			}
			aliases, err := library.AliasesFor(lib.Root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Library %s\n", lib.Root)
			if lib.Settings.Description != "" {
				fmt.Fprintln(out, lib.Settings.Description)
			}
			if len(aliases) > 0 {
				fmt.Fprintf(out, "Aliases: %s\n", strings.Join(aliases, ", "))
			}
			fmt.Fprintf(out, "Queued: %d entries\n", len(queue))
			fmt.Fprintln(out)

			s := lib.Settings
			rows := [][]string{
				{"steps", strings.Join(s.Steps, ", ")},
				{"input_dir", s.InputDir},
				{"target_dir", s.TargetDir},
				{"organize", s.Organize},
				{"override_artist", yesNo(s.OverrideArtist)},
				{"auto_tag", yesNo(s.AutoTag)},
				{"auto_overwrite", yesNo(s.AutoOverwrite)},
				{"auto_scrape", yesNo(s.AutoScrape)},
				{"clear_input", yesNo(s.ClearInput)},
				{"verbose", yesNo(s.Verbose)},
				{"title_template", s.TitleTemplate},
				{"filename_template", s.FilenameTemplate},
				{"normalize_artwork", yesNo(s.NormalizeArtwork)},
				{"artwork_max_edge", strconv.Itoa(s.ArtworkMaxEdge)},
				{"yt_dlp_path", s.YtDlpPath},
				{"search_limit", strconv.Itoa(s.SearchLimit)},
			}
			fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, rows))
			return nil
		},
	}
}
