// Package config resolves the console's configuration.
//
// Values are layered with koanf, later sources overriding earlier ones:
//
//  1. built-in defaults (server http://127.0.0.1:8848, 10s timeout, history on)
//  2. a YAML file: --config, else config/<APP_ENV>.yaml in the working
//     directory (APP_ENV defaults to "local"), else the user config file
//  3. environment variables prefixed NACOS_TUI_, for example
//     NACOS_TUI_NACOS_PASSWORD or NACOS_TUI_LOG_LEVEL
//  4. command-line flags
//
// # Configuration File Location
//
// The user configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/nacos-tui/config.yaml or $HOME/.config/nacos-tui/config.yaml
//   - macOS: $HOME/.config/nacos-tui/config.yaml
//   - Windows: %LOCALAPPDATA%\nacos-tui\config.yaml
//
// The log file and history database default to the same directory.
//
// # Security
//
// WriteStarter never stores the password. Supply it through the environment
// or a flag.
package config
