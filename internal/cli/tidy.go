package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artpar/crumb/internal/cookies"
)

// newTidyCommand creates the tidy command.
func newTidyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tidy",
		Short: "Deduplicate the jar and drop expired cookies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTidy(a, cmd)
		},
	}
}

func runTidy(a *app, cmd *cobra.Command) error {
	jar, err := a.loadJar()
	if err != nil {
		return err
	}
	before := jar.Len()

	merged := cookies.Merge(jar, jar)
	tidied := cookies.NewJar()
	tidied.SetDefaultDomain(jar.DefaultDomain())
	for _, c := range merged.All() {
		if c.IsExpired() {
			continue
		}
		tidied.Add(c)
	}

	if err := a.saveJar(tidied); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Dropped %d cookie(s), %d left\n", before-tidied.Len(), tidied.Len())
	return nil
}
