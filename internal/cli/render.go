package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRenderCommand creates the render command.
func newRenderCommand(a *app) *cobra.Command {
	var https bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the Cookie request header line",
		Long: "Self-merge the jar and print the Cookie header value. Empty, expired\n" +
			"and (without --https) secure cookies are left out.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jar, err := a.loadJar()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), jar.HeaderLine(https))
			return nil
		},
	}

	cmd.Flags().BoolVar(&https, "https", false, "Render for an encrypted connection (include secure cookies)")

	return cmd
}
