package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/nacos-tui/internal/console"
	"github.com/muurk/nacos-tui/internal/logging"
	"github.com/muurk/nacos-tui/internal/nacos"
	"github.com/muurk/nacos-tui/internal/session"
	"github.com/muurk/nacos-tui/internal/tui"
	"github.com/muurk/nacos-tui/internal/ui"
)

// bootstrapCalls is the number of remote calls made before the console opens
const bootstrapCalls = 3

func runConsole(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal(os.Stdout) || !ui.IsTerminal(os.Stdin) {
		return errors.New("the console needs a terminal; use a subcommand such as 'nacos-tui namespace list' for scripted access")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := initLogging(cfg, true); err != nil {
		return err
	}
	defer logging.Sync()

	if err := ensurePassword(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	client := nacos.NewClient(cfg.Nacos.URL)
	client.SetTimeout(cfg.Nacos.Timeout)

	ctx := cmd.Context()
	bootCtx, cancel := context.WithTimeout(ctx, bootstrapCalls*cfg.Nacos.Timeout)
	sess, err := session.Bootstrap(bootCtx, client, cfg.Nacos.URL, session.Credentials{
		Username: cfg.Nacos.Username,
		Password: cfg.Nacos.Password,
	})
	cancel()
	if err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}

	dispatcher := console.NewDispatcher(client, sess.AccessToken, cfg.Nacos.Timeout)
	if store := openHistory(ctx, cfg); store != nil {
		defer func() { _ = store.Close() }()
		dispatcher.Recorder = tui.HistoryRecorder{Store: store}
	}

	if err := tui.Run(ctx, sess, dispatcher); err != nil {
		return fmt.Errorf("console error: %w", err)
	}
	return nil
}
