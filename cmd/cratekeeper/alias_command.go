package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cratekeeper/internal/errs"
	"cratekeeper/internal/library"
)

func newAliasCommand() *cobra.Command {
	var removeFlag string

	cmd := &cobra.Command{
		Use:   "alias LIBRARY [NAME]",
		Short: "Register or inspect library aliases",
		Long: `Register a short name for a library:

  cratekeeper alias ~/music/sets techno

With only a library argument, alias prints the names registered for it.
Remove an alias with --remove NAME.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if removeFlag != "" {
				removed, err := library.RemoveAlias(removeFlag)
				if err != nil {
					return err
				}
				if !removed {
					return errs.Wrapf(errs.ErrConfig, "no alias named %q", removeFlag)
				}
				fmt.Fprintf(out, "Removed alias %s\n", removeFlag)
				return nil
			}

			if len(args) == 0 {
				return cmd.Help()
			}

			lib, err := library.Open(args[0])
			if err != nil {
				return err
			}

			if len(args) == 1 {
				names, err := library.AliasesFor(lib.Root)
				if err != nil {
					return err
				}
				if len(names) == 0 {
					fmt.Fprintf(out, "No aliases for %s\n", lib.Root)
					return nil
				}
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			if err := library.SetAlias(args[1], lib.Root); err != nil {
				return err
			}
			fmt.Fprintf(out, "Registered alias %s for %s\n", args[1], lib.Root)
			return nil
		},
	}

	cmd.Flags().StringVar(&removeFlag, "remove", "", "Remove the named alias")
	return cmd
}
