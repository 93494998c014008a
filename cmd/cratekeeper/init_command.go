package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cratekeeper/internal/library"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init LIBRARY",
		Short: "Create a library with default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := library.Init(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized library at %s\n", lib.Root)
			fmt.Fprintf(cmd.OutOrStdout(), "Edit %s to adjust its settings\n", lib.ConfigPath())
			return nil
		},
	}
}
