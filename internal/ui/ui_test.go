package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/muurk/nacos-tui/internal/history"
	"github.com/muurk/nacos-tui/internal/nacos"
)

func TestConfirmDeletion(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		input string
		want  bool
	}{
		{"exact id", "dev", "dev\n", true},
		{"surrounding space", "dev", "  dev  \n", true},
		{"no trailing newline", "dev", "dev", true},
		{"wrong id", "dev", "prod\n", false},
		{"yes is not enough", "dev", "y\n", false},
		{"empty input", "dev", "", false},
		{"empty id never confirms", "", "\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := ConfirmDeletion("namespace", tt.id, []string{"configs are removed"}, strings.NewReader(tt.input), &out)
			if got != tt.want {
				t.Errorf("ConfirmDeletion() = %v, want %v", got, tt.want)
			}
			if tt.id != "" && !strings.Contains(out.String(), "DELETE NAMESPACE") {
				t.Errorf("output missing title: %q", out.String())
			}
			if !tt.want && tt.id != "" && !strings.Contains(out.String(), "Operation cancelled") {
				t.Errorf("output missing cancellation: %q", out.String())
			}
		})
	}
}

func TestResultKeepsDetailOrder(t *testing.T) {
	out := NewSuccessResult("Namespace created",
		Detail{Key: "ID", Value: "dev"},
		Detail{Key: "Name", Value: "Development"},
	).SetWidth(80).AddDetail("Duration", "5ms").Render()

	id := strings.Index(out, "dev")
	name := strings.Index(out, "Development")
	dur := strings.Index(out, "5ms")
	if id < 0 || name < 0 || dur < 0 || !(id < name && name < dur) {
		t.Errorf("details out of order:\n%s", out)
	}
	if !strings.Contains(out, "SUCCESS") {
		t.Errorf("missing SUCCESS marker:\n%s", out)
	}
}

func TestFailureResult(t *testing.T) {
	out := NewFailureResult("Publish failed", errors.New("boom"), []string{"check the server"}).SetWidth(80).Render()
	for _, want := range []string{"FAILED", "Error: boom", "Troubleshooting:", "check the server"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRunner(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var out bytes.Buffer
		r := NewRunner(RunnerConfig{
			Title:   "Delete Namespace",
			Command: "nacos-tui namespace delete",
			Params:  []Detail{{Key: "Namespace", Value: "dev"}},
			Output:  &out,
		}).SetWidth(80)

		err := r.Run(context.Background(), func(ctx context.Context, onStep StepCallback) ([]Detail, error) {
			onStep("Deleting namespace", StepRunning)
			onStep("Deleting namespace", StepComplete)
			return []Detail{{Key: "ID", Value: "dev"}}, nil
		})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		text := out.String()
		for _, want := range []string{"DELETE NAMESPACE", "nacos-tui namespace delete", StepMarkerComplete + " Deleting namespace", "Delete Namespace complete", "Duration"} {
			if !strings.Contains(text, want) {
				t.Errorf("missing %q in:\n%s", want, text)
			}
		}
	})

	t.Run("failure", func(t *testing.T) {
		var out bytes.Buffer
		want := errors.New("rejected")
		r := NewRunner(RunnerConfig{Title: "Publish Config", Output: &out, Troubleshooting: []string{"retry"}}).SetWidth(80)

		err := r.Run(context.Background(), func(ctx context.Context, onStep StepCallback) ([]Detail, error) {
			onStep("Publishing", StepFailed)
			return nil, want
		})
		if !errors.Is(err, want) {
			t.Fatalf("Run() error = %v, want %v", err, want)
		}
		if !strings.Contains(out.String(), "Publish Config failed") {
			t.Errorf("missing failure box:\n%s", out.String())
		}
	})
}

func TestTables(t *testing.T) {
	desc := "team sandbox"
	ns := NamespaceTable([]nacos.Namespace{
		{ID: "", Name: "public", Quota: 200, Kind: nacos.KindDefault},
		{ID: "dev", Name: "Development", Description: &desc, Quota: 200, ConfigCount: 3, Kind: nacos.KindUserCreated},
	})
	for _, want := range []string{"NAME", "public", "Development", "team sandbox", "custom"} {
		if !strings.Contains(ns, want) {
			t.Errorf("namespace table missing %q:\n%s", want, ns)
		}
	}

	cfg := ConfigTable([]nacos.ConfigEntry{{DataID: "app.yaml", Group: "DEFAULT_GROUP"}})
	if !strings.Contains(cfg, "app.yaml") || !strings.Contains(cfg, "text") {
		t.Errorf("config table:\n%s", cfg)
	}

	hist := HistoryTable([]history.Entry{
		{Time: time.Now(), Source: history.SourceCLI, Action: "delete-namespace", Target: "dev", Success: false, Error: "denied"},
	})
	if !strings.Contains(hist, "delete-namespace") || !strings.Contains(hist, "denied") {
		t.Errorf("history table:\n%s", hist)
	}
}
