package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artpar/crumb/internal/cookies"
	"github.com/artpar/crumb/internal/cookies/sqlite"
)

// newArchiveCommand creates the archive command.
func newArchiveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Save the jar into the SQLite archive",
		Long: "Write every cookie in the jar to the SQLite archive database.\n" +
			"Cookies sharing a (name, domain, path) key replace the archived row.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArchive(a, cmd)
		},
	}

	cmd.Flags().StringVar(&a.dbPath, "db", "", "Path to the archive database")

	return cmd
}

func runArchive(a *app, cmd *cobra.Command) error {
	jar, err := a.loadJar()
	if err != nil {
		return err
	}

	store, err := sqlite.New(a.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	if err := cookies.Archive(ctx, store, jar); err != nil {
		return fmt.Errorf("failed to archive cookies: %w", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Archived %d cookie(s), %d in database\n", jar.Len(), count)
	return nil
}

// newRestoreCommand creates the restore command.
func newRestoreCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Merge archived cookies back into the jar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(a, cmd)
		},
	}

	cmd.Flags().StringVar(&a.dbPath, "db", "", "Path to the archive database")

	return cmd
}

func runRestore(a *app, cmd *cobra.Command) error {
	jar, err := a.loadJar()
	if err != nil {
		return err
	}

	store, err := sqlite.New(a.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	archived := cookies.NewJar()
	if err := cookies.Restore(cmd.Context(), store, archived); err != nil {
		return fmt.Errorf("failed to restore cookies: %w", err)
	}

	merged := cookies.Merge(jar, archived)
	if err := a.saveJar(merged); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Restored %d cookie(s), jar holds %d\n", archived.Len(), merged.Len())
	return nil
}
