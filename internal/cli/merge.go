package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artpar/crumb/internal/cookies"
	"github.com/artpar/crumb/internal/netscape"
)

// newMergeCommand creates the merge command.
func newMergeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "merge FILE",
		Short: "Merge another cookie file into the jar",
		Long: "Load a second Netscape cookie file and merge it into the jar.\n" +
			"Duplicate cookies are reconciled by recency: the later-expiring,\n" +
			"non-empty record wins.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(a, cmd, args[0])
		},
	}
}

func runMerge(a *app, cmd *cobra.Command, otherPath string) error {
	jar, err := a.loadJar()
	if err != nil {
		return err
	}

	other := cookies.NewJar()
	if err := netscape.Load(a.fs, otherPath, other); err != nil {
		return err
	}

	merged := cookies.Merge(jar, other)
	if err := a.saveJar(merged); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Merged %d cookie(s) into %d\n", other.Len(), merged.Len())
	return nil
}
