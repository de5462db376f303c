package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/artpar/crumb/internal/cookies"
)

// SetOptions holds options for the set command.
type SetOptions struct {
	Domain   string
	Path     string
	Expires  string
	Secure   bool
	HttpOnly bool
}

// newSetCommand creates the set command.
func newSetCommand(a *app) *cobra.Command {
	opts := &SetOptions{}

	cmd := &cobra.Command{
		Use:   "set NAME VALUE",
		Short: "Add a cookie to the jar",
		Long:  "Add a cookie record to the jar file. Duplicates are kept until tidy or render merges them.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(a, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Domain, "domain", "", "Cookie domain (empty matches any domain)")
	cmd.Flags().StringVar(&opts.Path, "path", "/", "Cookie path")
	cmd.Flags().StringVar(&opts.Expires, "expires", "", "Expiry time, RFC 3339 (empty means session cookie)")
	cmd.Flags().BoolVar(&opts.Secure, "secure", false, "Only send over HTTPS")
	cmd.Flags().BoolVar(&opts.HttpOnly, "httponly", false, "Mark the cookie HttpOnly")

	return cmd
}

func runSet(a *app, name, value string, opts *SetOptions) error {
	if name == "" {
		return fmt.Errorf("cookie name must not be empty")
	}

	c := cookies.Cookie{
		Name:     name,
		Value:    value,
		Domain:   opts.Domain,
		Path:     opts.Path,
		Secure:   opts.Secure,
		HttpOnly: opts.HttpOnly,
	}
	if opts.Expires != "" {
		t, err := time.Parse(time.RFC3339, opts.Expires)
		if err != nil {
			return fmt.Errorf("invalid --expires value: %w", err)
		}
		c.Expires = t
	}

	jar, err := a.loadJar()
	if err != nil {
		return err
	}
	jar.Add(c)
	return a.saveJar(jar)
}
