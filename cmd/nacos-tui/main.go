// Nacos-tui is a terminal console for a Nacos configuration server.
//
// Running without arguments logs in and opens the interactive console,
// where namespaces can be listed, created, edited and deleted and config
// entries browsed per namespace. Subcommands expose the same operations
// for scripting.
//
// Usage:
//
//	nacos-tui [command] [flags]
//
// See 'nacos-tui --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/nacos-tui/internal/nacos"
	"github.com/muurk/nacos-tui/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if alreadyReported(err) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hints := nacos.TroubleshootingHint(err); len(hints) > 0 {
			fmt.Fprintln(os.Stderr, "\nTroubleshooting:")
			for _, h := range hints {
				fmt.Fprintf(os.Stderr, "  - %s\n", h)
			}
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nacos-tui",
	Short: "Terminal console for Nacos configuration management",
	Long: `A terminal console for a Nacos configuration server.

Without a subcommand it logs in, loads the namespace list and the configs of
the first namespace, and opens the interactive console. Startup fails if any
of these calls fail.

Keys on the main screen:
  1 / 2 / 3      switch between Config, Service and Namespace
  ↑↓ or k/j      move the selection
  a / e / d      add, edit or delete a namespace
  tab / shift+tab switch the namespace whose configs are shown
  enter          view the selected config
  q or ctrl+c    quit`,
	Version:       version.Get().Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConsole,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputFormat == formatTable {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "nacos-tui %s\n", version.Full())
			return err
		}
		return printOutput(cmd.OutOrStdout(), version.Get(), nil)
	},
}
