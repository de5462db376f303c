package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRmCommand creates the rm command.
func newRmCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME",
		Short: "Remove every cookie with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jar, err := a.loadJar()
			if err != nil {
				return err
			}

			before := jar.Len()
			jar.RemoveAll(args[0])
			if err := a.saveJar(jar); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cookie(s)\n", before-jar.Len())
			return nil
		},
	}
}

// newClearCommand creates the clear command.
func newClearCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cookies from the jar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jar, err := a.loadJar()
			if err != nil {
				return err
			}
			jar.Clear()
			return a.saveJar(jar)
		},
	}
}
