package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"cratekeeper/internal/library"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered library aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			aliases, err := library.LoadAliases()
			if err != nil {
				return err
			}
			if len(aliases) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No aliases registered")
				return nil
			}

			names := make([]string, 0, len(aliases))
			for name := range aliases {
				names = append(names, name)
			}
			sort.Strings(names)

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				root := aliases[name]
				rows = append(rows, []string{name, root, yesNo(library.IsLibrary(root))})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Alias", "Path", "Valid"}, rows))
			return nil
		},
	}
}
