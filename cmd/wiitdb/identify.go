package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ZaparooProject/go-wiitdb"
)

// identifyOutput is the JSON shape of one identified file.
type identifyOutput struct {
	Path     string `json:"path"`
	GameID   string `json:"gameid,omitempty"`
	Title    string `json:"title,omitempty"`
	Platform string `json:"platform,omitempty"`
	Version  string `json:"version,omitempty"`
	Disc     string `json:"disc,omitempty"`
	Match    string `json:"match,omitempty"`
	Size     int64  `json:"size"`
	CRC      string `json:"crc,omitempty"`
	MD5      string `json:"md5,omitempty"`
	SHA1     string `json:"sha1,omitempty"`
	Error    string `json:"error,omitempty"`
}

func newIdentifyOutput(path string, id *wiitdb.Identification, err error) identifyOutput {
	out := identifyOutput{Path: path}
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Size = id.Size
	out.CRC, out.MD5, out.SHA1 = id.Hashes.CRC, id.Hashes.MD5, id.Hashes.SHA1
	out.Match = string(id.MatchBy)
	out.Version = id.Version
	out.Disc = string(id.Slot)
	if id.Header != nil {
		out.GameID = id.Header.GameID
		out.Title = id.Header.InternalTitle
		out.Platform = string(id.Header.Platform)
	}
	if id.Record != nil {
		out.GameID = id.Record.GameID
		out.Title = id.Record.Title
		out.Platform = id.Record.Platform
	}
	return out
}

func writeIdentified(cmd *cobra.Command, outputs []identifyOutput, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(cmd, outputs)
	}

	rows := make([][]string, 0, len(outputs))
	for _, o := range outputs {
		status := o.Match
		switch {
		case o.Error != "":
			status = "error: " + o.Error
		case status == "":
			status = "unknown"
		}
		rows = append(rows, []string{o.Path, o.GameID, o.Title, o.Version, o.Disc, humanize.IBytes(uint64(o.Size)), status}) //nolint:gosec // sizes are non-negative
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"File", "Game ID", "Title", "Version", "Disc", "Size", "Match"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	))
	return err
}

func newIdentifyCommand(app *appContext) *cobra.Command {
	var (
		noHash     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "identify FILE...",
		Short: "Identify disc images",
		Long: `Identify GameCube and Wii disc images by digest and disc header. FILE may be
a raw image (.iso, .gcm), a block device or an archive such as games.zip or
games.zip/disc.iso.`,
		Example: `  wiitdb identify "killer7 (Disc 1).iso"
  wiitdb identify --no-hash /dev/sr0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := app.openDB(cmd.Context())
			if err != nil {
				return err
			}

			var opts []wiitdb.IdentifyOption
			if noHash {
				opts = append(opts, wiitdb.WithoutHashing())
			}

			outputs := make([]identifyOutput, 0, len(args))
			for _, path := range args {
				id, idErr := db.IdentifyFile(cmd.Context(), path, opts...)
				outputs = append(outputs, newIdentifyOutput(path, id, idErr))
			}
			return writeIdentified(cmd, outputs, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&noHash, "no-hash", false, "Identify by disc header only")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newScanCommand(app *appContext) *cobra.Command {
	var (
		noHash     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "scan DIR",
		Short: "Identify every disc image under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := app.openDB(cmd.Context())
			if err != nil {
				return err
			}

			var opts []wiitdb.IdentifyOption
			if noHash {
				opts = append(opts, wiitdb.WithoutHashing())
			}

			results, err := db.Scan(cmd.Context(), args[0], opts...)
			if err != nil {
				return err
			}

			outputs := make([]identifyOutput, 0, len(results))
			for _, r := range results {
				outputs = append(outputs, newIdentifyOutput(r.Path, r.Identification, r.Err))
			}
			return writeIdentified(cmd, outputs, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&noHash, "no-hash", false, "Identify by disc header only")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
