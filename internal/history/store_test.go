package history

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Time: base, Source: SourceTUI, Action: "create-namespace", Target: "dev", Success: true},
		{Time: base.Add(time.Minute), Source: SourceCLI, Action: "delete-namespace", Target: "dev", Success: false, Error: "boom"},
		{Time: base.Add(2 * time.Minute), Source: SourceCLI, Action: "publish-config", Namespace: "qa", Target: "app.yaml", Success: true},
	}
	for _, e := range entries {
		if err := s.Record(ctx, e); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Action != "publish-config" || got[0].Namespace != "qa" {
		t.Errorf("newest = %+v", got[0])
	}
	if got[1].Success || got[1].Error != "boom" || got[1].Source != SourceCLI {
		t.Errorf("second = %+v", got[1])
	}
	if !got[1].Time.Equal(base.Add(time.Minute)) {
		t.Errorf("Time = %v, want %v", got[1].Time, base.Add(time.Minute))
	}
}

func TestRecordDefaultsTime(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	if err := s.Record(ctx, Entry{Source: SourceTUI, Action: "update-namespace", Target: "dev", Success: true}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	got, err := s.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 1 || !got[0].Time.Equal(fixed) {
		t.Errorf("got %+v", got)
	}
	if got[0].Error != "" {
		t.Errorf("Error = %q, want empty", got[0].Error)
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := s.Record(ctx, Entry{Source: SourceCLI, Action: "delete-config", Target: "x", Success: true}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	defer func() { _ = s.Close() }()

	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestFormatTable(t *testing.T) {
	entries := []Entry{
		{Time: time.Now(), Source: SourceCLI, Action: "delete-config", Namespace: "dev", Target: "app.yaml", Success: true},
		{Time: time.Now(), Source: SourceTUI, Action: "create-namespace", Target: "qa", Error: "name taken"},
	}

	out := FormatTable(entries)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "TIME") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "delete-config") || !strings.HasSuffix(lines[1], "ok") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "failed: name taken") {
		t.Errorf("row 2 = %q", lines[2])
	}
}
