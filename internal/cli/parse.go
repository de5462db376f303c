package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newParseCommand creates the parse command.
func newParseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse SET-COOKIE...",
		Short: "Parse Set-Cookie strings into the jar",
		Long: "Parse one or more Set-Cookie style attribute strings and append the\n" +
			"resulting cookies to the jar file. A malformed string rejects the whole run.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(a, cmd, args)
		},
	}
}

func runParse(a *app, cmd *cobra.Command, raws []string) error {
	jar, err := a.loadJar()
	if err != nil {
		return err
	}

	before := jar.Len()
	for _, raw := range raws {
		if err := jar.Parse(raw); err != nil {
			return err
		}
	}

	if err := a.saveJar(jar); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %d cookie(s)\n", jar.Len()-before)
	return nil
}
