package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
// NACOS_TUI_NACOS_URL sets nacos.url, NACOS_TUI_LOG_LEVEL sets log.level.
const EnvPrefix = "NACOS_TUI_"

// Options selects the sources Load reads
type Options struct {
	// File is an explicit configuration file; empty means look in the usual places
	File string

	// Overrides are dotted keys set from command-line flags. Empty strings are skipped.
	Overrides map[string]string
}

// Load resolves the configuration.
// Sources, later overriding earlier: defaults, YAML file, NACOS_TUI_* environment, flags.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(mapProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	path, err := ResolveFile(opts.File)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	overrides := make(map[string]any, len(opts.Overrides))
	for key, v := range opts.Overrides {
		if v != "" {
			overrides[key] = v
		}
	}
	if len(overrides) > 0 {
		if err := k.Load(mapProvider(overrides), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.File = path

	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	cfg.fillPaths(dir)

	return &cfg, nil
}

// envKey maps NACOS_TUI_SECTION_KEY to section.key
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "_", ".")
}
