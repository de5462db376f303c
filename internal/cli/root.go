// Package cli implements the crumb command line interface over a
// Netscape cookie file.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/artpar/crumb/internal/config"
	"github.com/artpar/crumb/internal/cookies"
	"github.com/artpar/crumb/internal/netscape"
)

// app bundles the state shared by every subcommand.
type app struct {
	fs            afero.Fs
	configPath    string
	jarPath       string
	defaultDomain string
	dbPath        string
}

// NewRootCommand creates the root command.
func NewRootCommand(version string) *cobra.Command {
	return newRootCommand(version, afero.NewOsFs())
}

// newRootCommand wires the command tree against an explicit filesystem,
// which lets tests run on an in-memory one.
func newRootCommand(version string, fsys afero.Fs) *cobra.Command {
	a := &app{fs: fsys}

	cmd := &cobra.Command{
		Use:   "crumb",
		Short: "Crumb - a cookie jar for HTTP clients",
		Long: "Crumb manages a curl-compatible Netscape cookie file: it parses\n" +
			"Set-Cookie strings into it, merges jars, and renders Cookie request headers.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to the config file")
	cmd.PersistentFlags().StringVar(&a.jarPath, "jar", "", "Path to the Netscape cookie file")
	cmd.PersistentFlags().StringVar(&a.defaultDomain, "default-domain", "", "Domain applied to cookies that do not set one")

	cmd.AddCommand(
		newSetCommand(a),
		newParseCommand(a),
		newGetCommand(a),
		newListCommand(a),
		newRenderCommand(a),
		newRmCommand(a),
		newClearCommand(a),
		newMergeCommand(a),
		newTidyCommand(a),
		newArchiveCommand(a),
		newRestoreCommand(a),
	)

	return cmd
}

// loadConfig fills any setting not given as a flag from the config file.
func (a *app) loadConfig() error {
	path := a.configPath
	if path == "" {
		path = config.Path()
	}

	cfg, err := config.Load(a.fs, path)
	if err != nil {
		return err
	}

	if a.jarPath == "" {
		a.jarPath = cfg.JarPath
	}
	if a.defaultDomain == "" {
		a.defaultDomain = cfg.DefaultDomain
	}
	if a.dbPath == "" {
		a.dbPath = cfg.DBPath
	}
	return nil
}

// loadJar reads the jar file; a missing file yields an empty jar.
func (a *app) loadJar() (*cookies.Jar, error) {
	jar := cookies.NewJar()
	jar.SetDefaultDomain(a.defaultDomain)

	exists, err := afero.Exists(a.fs, a.jarPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check cookie file: %w", err)
	}
	if !exists {
		return jar, nil
	}

	if err := netscape.Load(a.fs, a.jarPath, jar); err != nil {
		return nil, err
	}
	return jar, nil
}

// saveJar rewrites the jar file in place.
func (a *app) saveJar(jar *cookies.Jar) error {
	if dir := filepath.Dir(a.jarPath); dir != "." {
		if err := a.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cookie file directory: %w", err)
		}
	}
	return netscape.Write(a.fs, a.jarPath, jar)
}
