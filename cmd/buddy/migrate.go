package main

import (
	"fmt"

	"github.com/Veraticus/shopping-buddy/internal/cli"
	"github.com/Veraticus/shopping-buddy/internal/common"
	"github.com/Veraticus/shopping-buddy/internal/config"
	"github.com/Veraticus/shopping-buddy/internal/storage"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Bring the SQLite database schema up to date, or show its version.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			settings, err := config.Load()
			if err != nil {
				return err
			}
			if storage.Backend(settings.Storage.Backend) != storage.BackendSQLite {
				return common.NewUserError(
					fmt.Sprintf("Migrations only apply to the sqlite backend (current: %s)", settings.Storage.Backend), nil)
			}

			store, err := storage.NewSQLiteStorage(settings.Storage.DatabasePath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if status {
				version, err := store.SchemaVersion(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Database: %s\n", store.Path())
				fmt.Fprintf(out, "Schema version: %d\n", version)
				if version >= 2 {
					revision, err := store.Revision(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "Saved revisions: %d\n", revision)
				}
				return nil
			}

			if err := store.Migrate(ctx); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			version, err := store.SchemaVersion(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Database is at schema version %d", version)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "show the schema version without migrating")

	return cmd
}
