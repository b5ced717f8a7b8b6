// Package main provides the zotref CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matsen/zotref/internal/config"
	"github.com/matsen/zotref/internal/library"
)

// Version is set at build time via ldflags
var Version = "dev"

// dbPath optionally overrides the configured Zotero database path.
var dbPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zotref",
	Short: "Citation-key resolver backed by a Zotero database",
	Long: `zotref reads a Zotero sqlite database, derives stable citation keys,
and answers editor requests: ranked citation-key completion, CSL YAML
reference blocks, and attachment lookup.

The database is read from a disposable snapshot, so Zotero can keep
running while zotref answers queries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to zotero.sqlite (overrides config)")
	rootCmd.Version = Version
}

// resolveConfig builds the effective config, applying the --db override.
// Exits with a config error when no database can be found.
func resolveConfig() *config.Config {
	if dbPath != "" {
		os.Setenv(config.EnvSQLitePath, dbPath)
	}
	cfg, err := config.Resolve()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return cfg
}

// openLibrary loads the database into memory. Exits on failure; there is
// no degraded mode without a readable database.
func openLibrary(cfg *config.Config) *library.Library {
	lib, err := library.Open(library.Options{
		SQLitePath:   cfg.SQLitePath,
		CacheDir:     cfg.CacheDir,
		CiteTemplate: cfg.CiteTemplate,
		BannedWords:  cfg.BannedWords,
	})
	if err != nil {
		exitWithError(ExitError, "loading zotero database: %v", err)
	}
	return lib
}
