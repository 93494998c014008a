package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cratekeeper/internal/config"
	"cratekeeper/internal/download"
	"cratekeeper/internal/library"
	"cratekeeper/internal/process"
)

func newProcessCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process LIBRARY",
		Short: "Run the library's configured steps in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSteps(cmd, args[0], nil)
		},
	}
	cmd.Flags().Bool("auto-tag", false, "Apply tag proposals without asking")
	cmd.Flags().Bool("auto-overwrite", false, "Replace occupied destinations without asking")
	cmd.Flags().Bool("auto-scrape", false, "Resolve search queries without asking")
	cmd.Flags().Bool("override-artist", false, "Prefer the parsed artist over the embedded one")
	cmd.Flags().String("organize", "", "Organization mode: drop, a-z or date")
	cmd.Flags().String("input-dir", "", "Override the input directory")
	cmd.Flags().String("target-dir", "", "Override the target directory")
	return cmd
}

func newDownloadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download LIBRARY",
		Short: "Fetch the queued downloads into the input directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSteps(cmd, args[0], []config.Step{config.StepDownload})
		},
	}
	cmd.Flags().Bool("auto-scrape", false, "Resolve search queries without asking")
	cmd.Flags().String("input-dir", "", "Override the input directory")
	return cmd
}

func newTagCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag LIBRARY",
		Short: "Standardize tags and file names in the input directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSteps(cmd, args[0], []config.Step{config.StepTag})
		},
	}
	cmd.Flags().Bool("auto-tag", false, "Apply tag proposals without asking")
	cmd.Flags().Bool("override-artist", false, "Prefer the parsed artist over the embedded one")
	cmd.Flags().String("input-dir", "", "Override the input directory")
	return cmd
}

func newDepositCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit LIBRARY",
		Short: "Move files from the input directory into the organized tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSteps(cmd, args[0], []config.Step{config.StepDeposit})
		},
	}
	cmd.Flags().Bool("auto-overwrite", false, "Replace occupied destinations without asking")
	cmd.Flags().String("organize", "", "Organization mode: drop, a-z or date")
	cmd.Flags().String("input-dir", "", "Override the input directory")
	cmd.Flags().String("target-dir", "", "Override the target directory")
	return cmd
}

func newCleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean LIBRARY",
		Short: "Remove empty directories under the library root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSteps(cmd, args[0], []config.Step{config.StepClean})
		},
	}
}

// runSteps opens and locks the library, then runs the given steps, or
// the configured ones when steps is nil. Per-file failures flow into
// the exit status through the returned error.
func runSteps(cmd *cobra.Command, libArg string, steps []config.Step) error {
	return withLockedLibrary(cmd, libArg, func(lib *library.Library) error {
		printer := newEventPrinter(cmd.OutOrStdout(), lib.Settings.Verbose)

		var interact process.Interaction
		if interactiveTerminal() {
			interact = newConsoleInteraction(cmd.InOrStdin(), cmd.OutOrStdout())
		}

		conf, ok := lib.YtDlpConf()
		if !ok {
			conf = ""
		}
		dl := download.NewYtDlp(lib.Settings.YtDlpPath, conf)

		proc, err := process.New(lib, dl, interact, printer.print)
		if err != nil {
			return err
		}

		if steps == nil {
			steps, err = lib.Settings.StepList()
			if err != nil {
				return err
			}
		}
		sum, err := proc.Run(cmd.Context(), steps)
		if err != nil {
			return err
		}
		if sum.Failures() {
			return fmt.Errorf("completed with %d failure(s)", sum.Failed)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Done: %d changed, %d skipped\n", sum.Changed, sum.Skipped)
		return nil
	})
}
