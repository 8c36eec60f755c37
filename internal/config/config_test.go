package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// isolate points every config lookup at a fresh temporary directory
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("LOCALAPPDATA", dir)
	t.Setenv(EnvVar, "")
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, EnvPrefix) {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestGetConfigDir(t *testing.T) {
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() failed: %v", err)
	}
	if dir == "" {
		t.Error("GetConfigDir() returned empty string")
	}
	if filepath.Base(dir) != appName {
		t.Errorf("GetConfigDir() = %s, should end with %q", dir, appName)
	}
}

func TestGetConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg", appName) {
		t.Errorf("GetConfigDir() = %s", dir)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Nacos.URL != DefaultURL {
		t.Errorf("URL = %q, want %q", cfg.Nacos.URL, DefaultURL)
	}
	if cfg.Nacos.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Nacos.Timeout, DefaultTimeout)
	}
	if !cfg.History.Enabled {
		t.Error("history should be enabled by default")
	}
	if cfg.File != "" {
		t.Errorf("File = %q, want empty", cfg.File)
	}
	if runtime.GOOS == "linux" {
		if want := filepath.Join(dir, appName, historyFile); cfg.History.Path != want {
			t.Errorf("History.Path = %q, want %q", cfg.History.Path, want)
		}
		if want := filepath.Join(dir, appName, logFile); cfg.Log.File != want {
			t.Errorf("Log.File = %q, want %q", cfg.Log.File, want)
		}
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `nacos:
  url: http://file:8848
  username: file-user
  password: file-pass
  timeout: 3s
log:
  level: debug
history:
  enabled: false
`)
	t.Setenv("NACOS_TUI_NACOS_USERNAME", "env-user")
	t.Setenv("NACOS_TUI_NACOS_PASSWORD", "env-pass")

	cfg, err := Load(Options{
		File: path,
		Overrides: map[string]string{
			"nacos.password": "flag-pass",
			"nacos.url":      "",
		},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.File != path {
		t.Errorf("File = %q, want %q", cfg.File, path)
	}
	if cfg.Nacos.URL != "http://file:8848" {
		t.Errorf("URL = %q, empty flag must not override file", cfg.Nacos.URL)
	}
	if cfg.Nacos.Username != "env-user" {
		t.Errorf("Username = %q, env should override file", cfg.Nacos.Username)
	}
	if cfg.Nacos.Password != "flag-pass" {
		t.Errorf("Password = %q, flag should override env", cfg.Nacos.Password)
	}
	if cfg.Nacos.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Nacos.Timeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.History.Enabled {
		t.Error("history should be disabled by file")
	}
}

func TestLoadEnvBoolAndDuration(t *testing.T) {
	isolate(t)
	t.Setenv("NACOS_TUI_HISTORY_ENABLED", "false")
	t.Setenv("NACOS_TUI_NACOS_TIMEOUT", "250ms")
	t.Setenv("NACOS_TUI_LOG_LEVEL", "warn")

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.History.Enabled {
		t.Error("history should be disabled by env")
	}
	if cfg.Nacos.Timeout != 250*time.Millisecond {
		t.Errorf("Timeout = %v", cfg.Nacos.Timeout)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestResolveFileOrder(t *testing.T) {
	dir := isolate(t)

	if got, err := ResolveFile(""); err != nil || got != "" {
		t.Fatalf("ResolveFile() = %q, %v; want empty", got, err)
	}

	userPath, err := GetConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, userPath, "nacos:\n  username: u\n")
	if got, _ := ResolveFile(""); got != userPath {
		t.Errorf("ResolveFile() = %q, want user file %q", got, userPath)
	}

	writeFile(t, filepath.Join(dir, "config", "local.yaml"), "nacos:\n  username: local\n")
	if got, _ := ResolveFile(""); got != filepath.Join("config", "local.yaml") {
		t.Errorf("ResolveFile() = %q, want config/local.yaml", got)
	}

	t.Setenv(EnvVar, "prod")
	if got, _ := ResolveFile(""); got != userPath {
		t.Errorf("ResolveFile() with APP_ENV=prod = %q, want user file", got)
	}
	writeFile(t, filepath.Join(dir, "config", "prod.yaml"), "nacos:\n  username: prod\n")
	if got, _ := ResolveFile(""); got != filepath.Join("config", "prod.yaml") {
		t.Errorf("ResolveFile() = %q, want config/prod.yaml", got)
	}
}

func TestResolveFileExplicitMissing(t *testing.T) {
	isolate(t)
	if _, err := ResolveFile("does-not-exist.yaml"); err == nil {
		t.Error("expected error for missing explicit file")
	}
	if _, err := Load(Options{File: "does-not-exist.yaml"}); err == nil {
		t.Error("Load() should fail for missing explicit file")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{Nacos: NacosConfig{URL: "http://localhost:8848", Username: "nacos", Timeout: time.Second}}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"missing url", func(c *Config) { c.Nacos.URL = "" }, "nacos.url is required"},
		{"relative url", func(c *Config) { c.Nacos.URL = "localhost:8848/x" }, "not an absolute URL"},
		{"bad scheme", func(c *Config) { c.Nacos.URL = "ftp://host" }, "scheme"},
		{"missing username", func(c *Config) { c.Nacos.Username = "" }, "nacos.username is required"},
		{"zero timeout", func(c *Config) { c.Nacos.Timeout = 0 }, "timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestWriteStarter(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "sub", "config.yaml")

	err := WriteStarter(path, NacosConfig{URL: "http://h:8848", Username: "nacos", Password: "secret"}, false)
	if err != nil {
		t.Fatalf("WriteStarter() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if strings.Contains(text, "secret") {
		t.Error("password must not be written")
	}
	if !strings.HasPrefix(text, "# nacos-tui configuration file") {
		t.Error("missing header comment")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be gone")
	}
	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("mode = %v, want 0600", info.Mode().Perm())
		}
	}

	cfg, err := Load(Options{File: path})
	if err != nil {
		t.Fatalf("Load() of starter error = %v", err)
	}
	if cfg.Nacos.URL != "http://h:8848" || cfg.Nacos.Username != "nacos" || cfg.Nacos.Timeout != DefaultTimeout {
		t.Errorf("round trip = %+v", cfg.Nacos)
	}

	if err := WriteStarter(path, NacosConfig{}, false); err == nil {
		t.Error("expected error when file exists without force")
	}
	if err := WriteStarter(path, NacosConfig{Username: "other"}, true); err != nil {
		t.Errorf("WriteStarter(force) error = %v", err)
	}
}
