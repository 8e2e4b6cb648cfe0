// Package cmd provides CLI commands for csv2bib.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var verbosity string

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "", "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (use DEBUG, INFO, WARN or ERROR)", s)
	}
}

// setupLogger installs the default logger. The level comes from level if
// set, else from LOG_LEVEL.
func setupLogger(level string) error {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{
		Level: lvl,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	slog.SetDefault(slog.New(handler))
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "csv2bib",
	Short: "Convert CSV exports to BibTeX/BibLaTeX",
	Long: `csv2bib converts tabular exports (CSV, TSV) from literature databases
into BibTeX or BibLaTeX entries.

Output fields are filled from templates that reference CSV columns with
[[Column Name]] placeholders. A default mapping covers common column names,
and profiles bundle mappings for well-known exports.

Examples:
  csv2bib convert refs.csv refs.bib
  csv2bib convert -f 'pages=[[Start Page]]--[[End Page]]' -f 'title=[[Document Title]]' export.csv out.bib
  csv2bib convert --profile wos savedrecs.txt out.bib --bibtex
  csv2bib profiles list`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger(verbosity)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Load .env file if present (for LOG_LEVEL and CSV2BIB_PROFILE_DIR)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVarP(&verbosity, "verbosity", "v", "", "Log level: DEBUG, INFO, WARN or ERROR (default $LOG_LEVEL or INFO)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(defaultsCmd)
}
