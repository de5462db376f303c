package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artpar/crumb/internal/cookies"
)

// GetOptions holds options for the get command.
type GetOptions struct {
	Domain  string
	Path    string
	FullKey bool
}

// newGetCommand creates the get command.
func newGetCommand(a *app) *cobra.Command {
	opts := &GetOptions{}

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Print the value of a cookie",
		Long: "Print the value of the first matching cookie. With --full-key the\n" +
			"lookup matches name, domain and path exactly; otherwise name alone.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(a, cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Domain, "domain", "", "Domain for the full-key lookup")
	cmd.Flags().StringVar(&opts.Path, "path", "", "Path for the full-key lookup")
	cmd.Flags().BoolVar(&opts.FullKey, "full-key", false, "Match name, domain and path exactly")

	return cmd
}

func runGet(a *app, cmd *cobra.Command, name string, opts *GetOptions) error {
	jar, err := a.loadJar()
	if err != nil {
		return err
	}

	var (
		record cookies.Cookie
		ok     bool
	)
	if opts.FullKey {
		record, ok = jar.Find(name, opts.Domain, opts.Path)
	} else {
		record, ok = jar.FindByName(name)
	}
	if !ok {
		return fmt.Errorf("cookie %q not found", name)
	}

	fmt.Fprintln(cmd.OutOrStdout(), record.Value)
	return nil
}
