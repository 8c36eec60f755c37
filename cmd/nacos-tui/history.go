package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/nacos-tui/internal/history"
	"github.com/muurk/nacos-tui/internal/ui"
)

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent admin actions taken from this machine",
	Long: `Show recent admin actions taken from this machine.

Creates, updates and deletes issued from the console or the subcommands are
kept in a local database. No server connection is needed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.History.Enabled {
			return fmt.Errorf("action history is disabled (history.enabled = false)")
		}

		ctx := cmd.Context()
		store, err := history.Open(ctx, cfg.History.Path)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		entries, err := store.Recent(ctx, historyLimit)
		if err != nil {
			return err
		}
		if entries == nil {
			entries = []history.Entry{}
		}
		return printOutput(cmd.OutOrStdout(), entries, func() string {
			if len(entries) == 0 {
				return "No actions recorded yet."
			}
			if ui.IsTerminal(os.Stdout) {
				return ui.HistoryTable(entries)
			}
			return history.FormatTable(entries)
		})
	},
}
