package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ZaparooProject/go-wiitdb/catalog"
)

var errNoMatch = errors.New("no matching game")

func newLookupCommand(app *appContext) *cobra.Command {
	var (
		query      catalog.Query
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "lookup [GAMEID]",
		Short: "Look a title up by game ID or disc digest",
		Long: `Look a title up by game ID and/or disc digests. A digest found in the index
overrides the game ID; sha1 wins over md5, which wins over crc.`,
		Example: `  wiitdb lookup GK7E08
  wiitdb lookup --sha1 84318b312fa6138e106da3661154716fb906ba0c --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				query.GameID = args[0]
			}
			if query == (catalog.Query{}) {
				return errors.New("give a game ID or at least one of --crc, --md5, --sha1")
			}

			db, err := app.openDB(cmd.Context())
			if err != nil {
				return err
			}

			record, ok := db.GetGameData(query.GameID, query.CRC, query.MD5, query.SHA1)
			if !ok {
				return errNoMatch
			}

			if jsonOutput {
				return writeJSON(cmd, record)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatRecord(record))
			return err
		},
	}

	cmd.Flags().StringVar(&query.CRC, "crc", "", "CRC32 of the disc image")
	cmd.Flags().StringVar(&query.MD5, "md5", "", "MD5 of the disc image")
	cmd.Flags().StringVar(&query.SHA1, "sha1", "", "SHA1 of the disc image")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func formatRecord(record *catalog.GameRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", record.GameID, record.Title)
	fmt.Fprintf(&b, "Region: %s  Platform: %s\n", record.Region, record.Platform)

	versions, ok := record.Versions.Map()
	if !ok {
		b.WriteString("Versions: unknown (database labels could not be resolved)")
		return b.String()
	}

	var rows [][]string
	for _, version := range slices.Sorted(maps.Keys(versions)) {
		slots := versions[version]
		for _, slot := range slices.Sorted(maps.Keys(slots)) {
			info := slots[slot]
			size := info.Size
			if n, ok := info.Bytes(); ok {
				size = humanize.IBytes(uint64(n)) //nolint:gosec // sizes are non-negative
			}
			rows = append(rows, []string{displayVersion(version), string(slot), size, info.CRC, info.SHA1})
		}
	}

	b.WriteString(renderTable(
		[]string{"Version", "Disc", "Size", "CRC32", "SHA1"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	))
	return b.String()
}

func displayVersion(version string) string {
	if version == "" {
		return "(empty)"
	}
	return version
}
