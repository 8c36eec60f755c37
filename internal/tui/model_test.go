package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/nacos-tui/internal/console"
	"github.com/muurk/nacos-tui/internal/history"
	"github.com/muurk/nacos-tui/internal/nacos"
	"github.com/muurk/nacos-tui/internal/session"
)

// stubRunner answers every intent with a canned result
type stubRunner struct {
	ran     []console.Intent
	err     error
	content string
}

func (s *stubRunner) Run(ctx context.Context, intent console.Intent) console.Result {
	s.ran = append(s.ran, intent)
	return console.Result{Intent: intent, Content: s.content, Err: s.err}
}

func testModel(runner Runner) Model {
	sess := &session.Session{
		BaseURL:  "http://127.0.0.1:8848",
		Username: "nacos",
		Namespaces: []nacos.Namespace{
			{ID: "", Name: "public", Quota: 200, Kind: nacos.KindDefault},
			{ID: "dev", Name: "Development", Quota: 200, ConfigCount: 1, Kind: nacos.KindUserCreated},
		},
		Configs: []nacos.ConfigEntry{
			{DataID: "plainvalue", Group: "DEFAULT_GROUP"},
		},
	}
	m := New(context.Background(), sess, runner)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func runes(s string) []tea.KeyMsg {
	var keys []tea.KeyMsg
	for _, r := range s {
		keys = append(keys, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return keys
}

// drain runs cmd and feeds any intent result back into the model
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	var msgs []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			if c != nil {
				msgs = append(msgs, c())
			}
		}
	default:
		msgs = append(msgs, msg)
	}

	found := false
	for _, msg := range msgs {
		if res, ok := msg.(intentResultMsg); ok {
			found = true
			updated, _ := m.Update(res)
			m = updated.(Model)
		}
	}
	if !found {
		t.Fatal("command produced no intent result")
	}
	return m
}

func TestAddNamespaceThroughProgram(t *testing.T) {
	runner := &stubRunner{}
	m := testModel(runner)
	m.Machine.SetIDGenerator(func() string { return "generated" })

	keys := append([]tea.KeyMsg{runes("3")[0], runes("a")[0], {Type: tea.KeyTab}}, runes("QA")...)
	keys = append(keys, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := press(t, m, keys...)

	if m.Machine.Pending == nil {
		t.Fatal("create should be pending")
	}
	if !strings.Contains(m.View(), "Creating namespace generated") {
		t.Error("pending spinner label not rendered")
	}

	m = drain(t, m, cmd)
	if m.Machine.Screen != console.ScreenMain {
		t.Errorf("Screen = %s, want main", m.Machine.Screen)
	}
	if n := len(m.Session.Namespaces); n != 3 {
		t.Fatalf("namespaces = %d, want 3", n)
	}
	if got := m.Session.Namespaces[2]; got.ID != "generated" || got.Name != "QA" {
		t.Errorf("appended %+v", got)
	}
	if len(runner.ran) != 1 {
		t.Errorf("ran %d intents, want 1", len(runner.ran))
	}
}

func TestDeleteFailureKeepsList(t *testing.T) {
	runner := &stubRunner{err: nacos.NewRequestError("delete namespace", 500, "boom")}
	m := testModel(runner)

	m, cmd := press(t, m, runes("3j")...)
	m, _ = press(t, m, runes("d")...)
	if m.Machine.Screen != console.ScreenNamespaceDeleteConfirm {
		t.Fatalf("Screen = %s", m.Machine.Screen)
	}
	if !strings.Contains(m.View(), "DELETE NAMESPACE") {
		t.Error("delete modal not rendered")
	}

	m, cmd = press(t, m, runes("y")...)
	m = drain(t, m, cmd)

	if len(m.Session.Namespaces) != 2 {
		t.Errorf("list changed after failed delete")
	}
	if m.Machine.Err == "" {
		t.Error("expected error message")
	}
	if !strings.Contains(m.View(), "boom") {
		t.Error("error not shown in footer")
	}
}

func TestDeleteShownNamespaceRefetchesConfigs(t *testing.T) {
	runner := &stubRunner{}
	m := testModel(runner)
	m.Session.ConfigNamespace = "dev"
	m.Machine.ConfigTab = 1

	m, _ = press(t, m, runes("3jd")...)
	m, cmd := press(t, m, runes("y")...)
	if cmd == nil {
		t.Fatal("delete should dispatch")
	}

	var res tea.Msg
	for _, c := range cmd().(tea.BatchMsg) {
		if msg := c(); msg != nil {
			if _, ok := msg.(intentResultMsg); ok {
				res = msg
			}
		}
	}
	updated, next := m.Update(res)
	m = updated.(Model)

	if _, ok := m.Machine.Pending.(console.ListConfigs); !ok {
		t.Fatalf("Pending = %#v, want ListConfigs", m.Machine.Pending)
	}
	m.Machine.Menu = console.MenuConfig
	if !strings.Contains(m.View(), "Loading configs...") {
		t.Error("stale config list should show the reload in progress")
	}

	m = drain(t, m, next)
	if got := runner.ran[len(runner.ran)-1]; got != (console.ListConfigs{Tab: 0, NamespaceID: ""}) {
		t.Errorf("follow-up ran %#v", got)
	}
	if m.Session.ConfigsStale || m.Machine.Pending != nil {
		t.Errorf("stale %v pending %v after refetch", m.Session.ConfigsStale, m.Machine.Pending)
	}
}

func TestStaleConfigsView(t *testing.T) {
	m := testModel(&stubRunner{})
	m.Session.DropConfigs()
	view := m.View()
	if !strings.Contains(view, "Configs not loaded") || strings.Contains(view, "plainvalue") {
		t.Errorf("stale view:\n%s", view)
	}
}

func TestPasteCommandReturned(t *testing.T) {
	m := testModel(&stubRunner{})
	m, _ = press(t, m, runes("3a")...)
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlV})
	if cmd == nil {
		t.Error("ctrl+v in a form should return the clipboard command")
	}
}

func TestLongListsFollowCursor(t *testing.T) {
	m := testModel(&stubRunner{})
	m.Session.Configs = nil
	for i := 0; i < 50; i++ {
		m.Session.Configs = append(m.Session.Configs, nacos.ConfigEntry{DataID: fmt.Sprintf("cfg-%02d", i), Group: "G"})
	}
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	m = updated.(Model)

	m.Machine.ConfigLine = 40
	view := m.View()
	if !strings.Contains(view, "cfg-40") || strings.Contains(view, "cfg-00") {
		t.Errorf("config list not scrolled to the cursor:\n%s", view)
	}

	m.Session.Namespaces = nil
	for i := 0; i < 40; i++ {
		m.Session.Namespaces = append(m.Session.Namespaces, nacos.Namespace{ID: fmt.Sprintf("id%02d", i), Name: fmt.Sprintf("n%02d", i)})
	}
	m, _ = press(t, m, runes("3")...)
	m.Machine.NamespaceLine = 35
	view = m.View()
	if !strings.Contains(view, "n35 (") || strings.Contains(view, "n00 (") {
		t.Errorf("namespace list not scrolled to the cursor:\n%s", view)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		n, cursor, size int
		start, end      int
	}{
		{0, 0, 10, 0, 0},
		{5, 4, 10, 0, 5},
		{20, 0, 5, 0, 5},
		{20, 10, 5, 8, 13},
		{20, 19, 5, 15, 20},
		{20, 3, 0, 3, 4},
	}
	for _, tt := range tests {
		start, end := window(tt.n, tt.cursor, tt.size)
		if start != tt.start || end != tt.end {
			t.Errorf("window(%d, %d, %d) = %d, %d, want %d, %d", tt.n, tt.cursor, tt.size, start, end, tt.start, tt.end)
		}
		if tt.n > 0 && (tt.cursor < start || tt.cursor >= end) {
			t.Errorf("window(%d, %d, %d) hides the cursor", tt.n, tt.cursor, tt.size)
		}
	}
}

func TestForceQuitWhilePending(t *testing.T) {
	m := testModel(&stubRunner{})
	m, _ = press(t, m, runes("3r")...)
	if m.Machine.Pending == nil {
		t.Fatal("refresh should be pending")
	}

	_, cmd := press(t, m, runes("q")...)
	if cmd != nil {
		t.Error("q must be ignored while pending")
	}

	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c did not return tea.Quit")
	}
}

func TestConfigViewer(t *testing.T) {
	runner := &stubRunner{content: "line one\nline two"}
	m := testModel(runner)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = drain(t, m, cmd)

	if m.Machine.Screen != console.ScreenConfigView {
		t.Fatalf("Screen = %s, want config-view", m.Machine.Screen)
	}
	view := m.View()
	if !strings.Contains(view, "line one") || !strings.Contains(view, "plainvalue") {
		t.Errorf("viewer content missing:\n%s", view)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Machine.Screen != console.ScreenConfigView {
		t.Error("scrolling left the viewer")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Machine.Screen != console.ScreenMain || m.Machine.Viewer != nil {
		t.Error("esc should close the viewer")
	}
}

func TestHelpToggle(t *testing.T) {
	m := testModel(&stubRunner{})
	m, _ = press(t, m, runes("?")...)
	if !m.Help.ShowAll {
		t.Error("? should expand help")
	}
	m, _ = press(t, m, runes("?")...)
	if m.Help.ShowAll {
		t.Error("? should collapse help")
	}
}

func TestSpinnerStopsWhenIdle(t *testing.T) {
	m := testModel(&stubRunner{})
	_, cmd := m.Update(m.Spinner.Tick())
	if cmd != nil {
		t.Error("spinner should not tick while idle")
	}
}

func TestViewScreens(t *testing.T) {
	m := testModel(&stubRunner{})
	if !strings.Contains(m.View(), "plainvalue") {
		t.Error("config menu should list configs")
	}
	m, _ = press(t, m, runes("2")...)
	if !strings.Contains(m.View(), "not available") {
		t.Error("service menu placeholder missing")
	}
	m, _ = press(t, m, runes("3")...)
	if !strings.Contains(m.View(), "Development") {
		t.Error("namespace list missing")
	}
	m, _ = press(t, m, runes("a")...)
	if !strings.Contains(m.View(), "NEW NAMESPACE") {
		t.Error("form modal missing")
	}
}

func TestHighlightContent(t *testing.T) {
	raw := `{"a": 1}`
	if got := highlightContent(raw, "json", "app.json"); got == raw || !strings.Contains(got, "\x1b[") {
		t.Errorf("json not highlighted: %q", got)
	}
	if got := highlightContent("name: app", "", "app.yaml"); !strings.Contains(got, "\x1b[") {
		t.Errorf("extension fallback not highlighted: %q", got)
	}
	if got := highlightContent("", "yaml", "x.yaml"); got != "" {
		t.Errorf("empty content = %q", got)
	}
}

func TestHistoryRecorder(t *testing.T) {
	ctx := context.Background()
	store, err := history.Open(ctx, filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = store.Close() }()

	rec := HistoryRecorder{Store: store}
	rec.RecordIntent(ctx, console.CreateNamespace{ID: "dev", Name: "Dev"}, nil)
	rec.RecordIntent(ctx, console.DeleteNamespace{ID: "qa"}, errors.New("denied"))

	got, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2", len(got))
	}
	for _, e := range got {
		if e.Source != history.SourceTUI {
			t.Errorf("Source = %s", e.Source)
		}
		if e.Action == "delete-namespace" && (e.Success || e.Error != "denied") {
			t.Errorf("failed delete recorded as %+v", e)
		}
	}

	HistoryRecorder{}.RecordIntent(ctx, console.DeleteNamespace{ID: "x"}, nil)
}
