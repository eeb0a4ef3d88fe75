package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ZaparooProject/go-wiitdb"
	"github.com/ZaparooProject/go-wiitdb/internal/config"
	"github.com/ZaparooProject/go-wiitdb/internal/logger"
	"github.com/ZaparooProject/go-wiitdb/source"
)

// appContext carries persistent flags and lazily loaded state shared by all
// subcommands.
type appContext struct {
	configFile string
	cachePath  string
	sourcePath string
	logFile    string
	verbosity  int

	cfg *config.Configuration
}

func newRootCommand() *cobra.Command {
	app := &appContext{}

	rootCmd := &cobra.Command{
		Use:   "wiitdb",
		Short: "Look up and identify GameCube and Wii discs",
		Long: `wiitdb keeps a local, resolved copy of the GameTDB database and uses it to
look up titles by game ID or disc digest and to identify disc images.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return app.init()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&app.configFile, "config", "c", "", "Config file (default: user config dir)")
	flags.StringVar(&app.cachePath, "cache", "", "Cache file; .gz, .zst or .xz enable compression")
	flags.StringVar(&app.sourcePath, "source", "", "Local wiitdb.zip/.7z/.rar or wiitdb.xml instead of downloading")
	flags.StringVarP(&app.logFile, "log", "l", "", "Log file")
	flags.CountVarP(&app.verbosity, "verbose", "v", "Verbose level")

	rootCmd.AddCommand(newUpdateCommand(app))
	rootCmd.AddCommand(newLookupCommand(app))
	rootCmd.AddCommand(newIdentifyCommand(app))
	rootCmd.AddCommand(newScanCommand(app))
	rootCmd.AddCommand(newStatsCommand(app))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (a *appContext) init() error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.cachePath != "" {
		cfg.Cache.Path = a.cachePath
	}
	if a.sourcePath != "" {
		cfg.Source.Path = a.sourcePath
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}
	a.cfg = cfg

	return logger.Init(logger.Config{
		Verbosity: a.verbosity,
		Level:     cfg.Log.Level,
		File:      cfg.Log.File,
	})
}

func (a *appContext) options() wiitdb.Options {
	return wiitdb.Options{
		CachePath: a.cfg.Cache.Path,
		Source: source.Options{
			URL:     a.cfg.Source.URL,
			Path:    a.cfg.Source.Path,
			Timeout: a.cfg.Source.Timeout,
			Retries: a.cfg.Source.Retries,
		},
		Denylist: a.cfg.Resolver.Denylist,
	}
}

// openDB returns a DB with its catalog loaded, building the cache on first use.
func (a *appContext) openDB(ctx context.Context) (*wiitdb.DB, error) {
	return wiitdb.Open(ctx, a.options())
}
