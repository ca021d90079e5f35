// Package cmd provides the ledgerctl commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SscSPs/erp_ledger/internal/platform/config"
)

var (
	cfg         *config.Config
	storageFlag string
	rulesFlag   string
	debug       bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Operate the ERP ledger from the command line",
	Long: `ledgerctl runs ledger maintenance jobs against the configured storage.

Configuration is read from the environment and an optional .env file,
the same way the HTTP server reads it.

Example:
  ledgerctl reconcile --from 2024-01-01 --to 2024-01-31
  ledgerctl verify
  ledgerctl migrate up`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if storageFlag != "" {
			loaded.StorageBackend = storageFlag
		}
		if rulesFlag != "" {
			loaded.PostingRulesFile = rulesFlag
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storageFlag, "storage", "", "storage backend, postgres or memory (default from LEDGER_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&rulesFlag, "rules", "", "posting rules file (default from LEDGER_POSTING_RULES_FILE)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
}
