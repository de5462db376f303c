package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// newListCommand creates the list command.
func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the cookies in the jar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(a, cmd)
		},
	}
}

func runList(a *app, cmd *cobra.Command) error {
	jar, err := a.loadJar()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVALUE\tDOMAIN\tPATH\tEXPIRES\tSECURE\tHTTPONLY")
	for _, c := range jar.All() {
		expires := "session"
		if !c.IsSession() {
			expires = c.Expires.UTC().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\t%t\n",
			c.Name, c.Value, c.Domain, c.Path, expires, c.Secure, c.HttpOnly)
	}
	return w.Flush()
}
