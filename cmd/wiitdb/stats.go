package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ZaparooProject/go-wiitdb/store"
)

func newStatsCommand(app *appContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the local cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := app.openDB(cmd.Context())
			if err != nil {
				return err
			}

			stats := db.Stats()
			if jsonOutput {
				return writeJSON(cmd, stats)
			}

			rows := [][]string{
				{"Titles", humanize.Comma(int64(stats.Titles))},
				{"Resolved", humanize.Comma(int64(stats.Resolved))},
				{"Unresolved", humanize.Comma(int64(stats.Unresolved))},
				{"Versions", humanize.Comma(int64(stats.Versions))},
				{"Discs", humanize.Comma(int64(stats.Discs))},
				{"Digests", humanize.Comma(int64(stats.Hashes))},
			}
			for _, platform := range slices.Sorted(maps.Keys(stats.Platforms)) {
				rows = append(rows, []string{"Platform " + platform, strconv.Itoa(stats.Platforms[platform])})
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "Cache: %s (%s)\n", db.CachePath(), store.Compression(db.CachePath())); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, renderTable([]string{"", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
			return err
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
