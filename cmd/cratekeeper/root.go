package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cratekeeper",
		Short:         "Download, tag and shelve a music library",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show verbose output")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newAliasCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newDownloadCommand())
	rootCmd.AddCommand(newTagCommand())
	rootCmd.AddCommand(newDepositCommand())
	rootCmd.AddCommand(newProcessCommand())
	rootCmd.AddCommand(newCleanCommand())

	return rootCmd
}
