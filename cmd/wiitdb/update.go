package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZaparooProject/go-wiitdb"
)

func newUpdateCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Rebuild the local cache from GameTDB",
		Long: `Download (or read with --source) the GameTDB database, resolve the version
and disc layout of every title and rewrite the cache file.`,
		Example: `  wiitdb update
  wiitdb update --source ./wiitdb.zip --cache ~/.cache/wiitdb/wiitdb.json.zst`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := wiitdb.New(app.options())
			if err != nil {
				return err
			}
			if err := db.Update(cmd.Context()); err != nil {
				return fmt.Errorf("update failed: %w", err)
			}

			stats := db.Stats()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d titles (%d unresolved) and %d digests to %s\n",
				stats.Titles, stats.Unresolved, stats.Hashes, db.CachePath())
			return err
		},
	}
}
