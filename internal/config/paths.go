package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "nacos-tui"
	configFile = "config.yaml"

	// EnvVar selects config/<APP_ENV>.yaml in the working directory
	EnvVar = "APP_ENV"

	// DefaultEnv is used when APP_ENV is unset
	DefaultEnv = "local"
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/nacos-tui or $HOME/.config/nacos-tui
//   - macOS: $HOME/.config/nacos-tui (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\nacos-tui
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the user configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// ResolveFile picks the configuration file to load.
//
// An explicit path must exist. Otherwise config/<APP_ENV>.yaml in the working
// directory wins over the user configuration file. An empty result means no
// file is loaded.
func ResolveFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	env := os.Getenv(EnvVar)
	if env == "" {
		env = DefaultEnv
	}
	local := filepath.Join("config", env+".yaml")
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	userPath, err := GetConfigPath()
	if err != nil {
		return "", nil
	}
	if _, err := os.Stat(userPath); err == nil {
		return userPath, nil
	}
	return "", nil
}

// WriteStarter writes a starter configuration file to path.
// The password is never written. Existing files are left alone unless force is set.
// Performs an atomic write to prevent corruption on crash.
func WriteStarter(path string, nacos NacosConfig, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	nacos.Password = ""
	if nacos.URL == "" {
		nacos.URL = DefaultURL
	}
	if nacos.Timeout <= 0 {
		nacos.Timeout = DefaultTimeout
	}
	starter := Config{
		Nacos:   nacos,
		History: HistoryConfig{Enabled: true},
	}

	data, err := yaml.Marshal(&starter)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# nacos-tui configuration file
#
# The password is not stored here. Set NACOS_TUI_NACOS_PASSWORD or pass
# --password instead.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
