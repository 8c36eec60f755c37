package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedactToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://h/nacos/v1/console/namespaces", "http://h/nacos/v1/console/namespaces"},
		{"http://h/x?accessToken=abc", "http://h/x?accessToken=REDACTED"},
		{"http://h/x?accessToken=abc&tenant=dev", "http://h/x?accessToken=REDACTED&tenant=dev"},
		{"http://h/x?tenant=dev&accessToken=abc", "http://h/x?tenant=dev&accessToken=REDACTED"},
	}
	for _, tt := range tests {
		if got := RedactToken(tt.in); got != tt.want {
			t.Errorf("RedactToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected nop logger when no level is configured")
	}
}

func TestInitializeWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nacos-tui.log")
	if err := InitializeWithOptions(Options{Level: "info", File: path}); err != nil {
		t.Fatalf("InitializeWithOptions() error = %v", err)
	}
	defer SetLogger(nil)

	Info("hello file")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file = %q, want it to contain the message", data)
	}
}

func TestLogRequestRedactsToken(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogRequest("GET", "http://h/x?accessToken=secret", 200, time.Millisecond, nil)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if u := entries[0].ContextMap()["url"]; strings.Contains(u.(string), "secret") {
		t.Errorf("url field %q leaks the token", u)
	}
}

func TestLogIntentLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogIntent("create-namespace", "dev", nil)
	LogIntent("delete-namespace", "dev", errors.New("boom"))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel {
		t.Errorf("success level = %v, want info", entries[0].Level)
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("failure level = %v, want warn", entries[1].Level)
	}
}
