package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"time"
)

// Config is the resolved application configuration
type Config struct {
	Nacos   NacosConfig   `koanf:"nacos" yaml:"nacos"`
	Log     LogConfig     `koanf:"log" yaml:"log"`
	History HistoryConfig `koanf:"history" yaml:"history"`

	// File is the configuration file that was loaded, empty when none was found
	File string `koanf:"-" yaml:"-"`
}

// NacosConfig locates the server and the account to log in with
type NacosConfig struct {
	URL      string        `koanf:"url" yaml:"url"`
	Username string        `koanf:"username" yaml:"username"`
	Password string        `koanf:"password" yaml:"password,omitempty"`
	Timeout  time.Duration `koanf:"timeout" yaml:"timeout"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	// Level is empty for silent operation
	Level string `koanf:"level" yaml:"level,omitempty"`
	// File receives log output; the console always logs to a file
	File string `koanf:"file" yaml:"file,omitempty"`
}

// HistoryConfig controls the local action history
type HistoryConfig struct {
	Enabled bool   `koanf:"enabled" yaml:"enabled"`
	Path    string `koanf:"path" yaml:"path,omitempty"`
}

const (
	// DefaultURL is the server address used when none is configured
	DefaultURL = "http://127.0.0.1:8848"

	// DefaultTimeout bounds every remote call
	DefaultTimeout = 10 * time.Second

	historyFile = "history.db"
	logFile     = "nacos-tui.log"
)

// defaults returns the lowest-priority configuration layer
func defaults() map[string]any {
	return map[string]any{
		"nacos": map[string]any{
			"url":     DefaultURL,
			"timeout": DefaultTimeout.String(),
		},
		"history": map[string]any{
			"enabled": true,
		},
	}
}

// fillPaths sets file locations left empty to entries of the config directory
func (c *Config) fillPaths(configDir string) {
	if c.Log.File == "" {
		c.Log.File = filepath.Join(configDir, logFile)
	}
	if c.History.Path == "" {
		c.History.Path = filepath.Join(configDir, historyFile)
	}
}

// Validate checks that the configuration can be used to log in
func (c *Config) Validate() error {
	var errs []error

	if c.Nacos.URL == "" {
		errs = append(errs, errors.New("nacos.url is required"))
	} else if u, err := url.Parse(c.Nacos.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("nacos.url %q is not an absolute URL", c.Nacos.URL))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Errorf("nacos.url scheme must be http or https, got %q", u.Scheme))
	}

	if c.Nacos.Username == "" {
		errs = append(errs, errors.New("nacos.username is required"))
	}
	if c.Nacos.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("nacos.timeout must be positive, got %s", c.Nacos.Timeout))
	}

	return errors.Join(errs...)
}
