package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/quotienthq/quotient/session"
	"github.com/quotienthq/quotient/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "quotient",
	Short: "Quotient CLI - quotation history and version management",
	Long: `Quotient maintains undo/redo history and durable named versions of a
quotation document, and computes structural diffs between versions.

State lives in a single JSON file. Point every command at it with
--file (or QUOTIENT_FILE).

Examples:
  # Save a version before sending the PDF
  quotient --file mehta.json save -m "sent to client"

  # List saved versions
  quotient --file mehta.json versions

  # What changed between versions 1 and 2?
  quotient --file mehta.json compare 1 2 --format markdown`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cfg.GetString("log-level"))
	},
}

var cfg = viper.New()

func init() {
	rootCmd.PersistentFlags().StringP("file", "f", "quotation.json", "path to the quotation store file")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug|info|warn|error")
	rootCmd.PersistentFlags().Int("history-cap", 0, "undo history cap (0 = default)")

	// Flags are overridable by QUOTIENT_* env vars and a config file.
	cfg.SetConfigName("quotient")
	cfg.SetConfigType("yaml")
	cfg.AddConfigPath(".")
	cfg.AddConfigPath("$HOME/.quotient")
	cfg.AutomaticEnv()
	cfg.SetEnvPrefix("QUOTIENT")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	_ = cfg.ReadInConfig()
	_ = cfg.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(setCmd)
}

// openSession opens the session over the configured store file.
// Callers must Close it so pending debounced writes flush.
func openSession() (*session.Session, error) {
	path := cfg.GetString("file")
	if path == "" {
		return nil, fmt.Errorf("store file path is required")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid store path: %w", err)
	}

	opts := []session.Option{}
	if cap := cfg.GetInt("history-cap"); cap > 0 {
		opts = append(opts, session.WithHistoryCap(cap))
	}
	return session.New(storage.NewJSONStorage(absPath), opts...), nil
}
