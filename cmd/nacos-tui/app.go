package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/muurk/nacos-tui/internal/config"
	"github.com/muurk/nacos-tui/internal/history"
	"github.com/muurk/nacos-tui/internal/logging"
	"github.com/muurk/nacos-tui/internal/nacos"
)

// Output formats
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// Global flags
var (
	configFile   string
	serverURL    string
	username     string
	password     string
	outputFormat string
	logLevel     string
	logFile      string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default config/$APP_ENV.yaml, then the user config file)")
	flags.StringVar(&serverURL, "url", "", "Server URL, e.g. http://127.0.0.1:8848")
	flags.StringVarP(&username, "username", "u", "", "Account to log in with")
	flags.StringVarP(&password, "password", "p", "", "Password (prompted when empty and stdin is a terminal)")
	flags.StringVarP(&outputFormat, "format", "o", formatTable, "Output format (table, json, yaml)")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")
	flags.StringVar(&logFile, "log-file", "", "Log file (the console always logs to a file)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		switch outputFormat {
		case formatTable, formatJSON, formatYAML:
			return nil
		}
		return fmt.Errorf("unknown --format %q (want table, json or yaml)", outputFormat)
	}
}

// loadConfig resolves configuration with the global flags as the top layer
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.Options{
		File: configFile,
		Overrides: map[string]string{
			"nacos.url":      serverURL,
			"nacos.username": username,
			"nacos.password": password,
			"log.level":      logLevel,
			"log.file":       logFile,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// initLogging starts the global logger. The interactive console owns the
// terminal and always logs to the configured file; one-shot commands log to
// stderr unless --log-file is given.
func initLogging(cfg *config.Config, interactive bool) error {
	opts := logging.Options{Level: cfg.Log.Level}
	if interactive || logFile != "" {
		opts.File = cfg.Log.File
	}
	return logging.InitializeWithOptions(opts)
}

// remote is a logged-in client for one-shot commands
type remote struct {
	cfg     *config.Config
	client  *nacos.Client
	token   string
	history *history.Store
}

// connect loads configuration, logs in and opens the action history
func connect(ctx context.Context) (*remote, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := initLogging(cfg, false); err != nil {
		return nil, err
	}
	if err := ensurePassword(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	client := nacos.NewClient(cfg.Nacos.URL)
	client.SetTimeout(cfg.Nacos.Timeout)

	login, err := client.Login(ctx, cfg.Nacos.Username, cfg.Nacos.Password)
	if err != nil {
		return nil, fmt.Errorf("login as %s: %w", cfg.Nacos.Username, err)
	}

	return &remote{
		cfg:     cfg,
		client:  client,
		token:   login.AccessToken,
		history: openHistory(ctx, cfg),
	}, nil
}

// Close releases the history store and flushes logs
func (r *remote) Close() {
	if r.history != nil {
		_ = r.history.Close()
	}
	logging.Sync()
}

// record appends a CLI action to the history; failures are only logged
func (r *remote) record(ctx context.Context, action, namespace, target string, actionErr error) {
	if r.history == nil {
		return
	}
	e := history.Entry{
		Source:    history.SourceCLI,
		Action:    action,
		Namespace: namespace,
		Target:    target,
		Success:   actionErr == nil,
	}
	if actionErr != nil {
		e.Error = actionErr.Error()
	}
	if err := r.history.Record(ctx, e); err != nil {
		logging.Warn("Failed to record action", zap.String("action", action), zap.Error(err))
	}
}

// openHistory opens the action history, or returns nil when disabled or unavailable
func openHistory(ctx context.Context, cfg *config.Config) *history.Store {
	if !cfg.History.Enabled {
		return nil
	}
	store, err := history.Open(ctx, cfg.History.Path)
	if err != nil {
		logging.Warn("Action history unavailable", zap.String("path", cfg.History.Path), zap.Error(err))
		return nil
	}
	return store
}

// ensurePassword prompts for the password when none is configured and stdin is a terminal
func ensurePassword(cfg *config.Config) error {
	if cfg.Nacos.Password != "" || cfg.Nacos.Username == "" {
		return nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	fmt.Fprintf(os.Stderr, "Password for %s: ", cfg.Nacos.Username)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	cfg.Nacos.Password = strings.TrimRight(string(pw), "\r\n")
	return nil
}

// printOutput writes v in the selected format. table renders the table form;
// a nil table falls back to YAML.
func printOutput(w io.Writer, v any, table func() string) error {
	switch outputFormat {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatTable:
		if table != nil {
			_, err := fmt.Fprintln(w, table())
			return err
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}

// errCancelled is returned when the user declines a confirmation
var errCancelled = errors.New("cancelled")
