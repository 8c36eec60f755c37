package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/nacos-tui/internal/console"
	"github.com/muurk/nacos-tui/internal/session"
)

// intentResultMsg carries a finished intent back into the update loop
type intentResultMsg struct {
	result console.Result
}

// Runner executes intents; *console.Dispatcher satisfies it
type Runner interface {
	Run(ctx context.Context, intent console.Intent) console.Result
}

// Model is the bubbletea model of the console.
// Machine and Session are mutated only from Update.
type Model struct {
	Machine *console.Machine
	Session *session.Session
	Runner  Runner

	// UI state
	Width  int
	Height int

	Help     help.Model
	Spinner  spinner.Model
	Viewport viewport.Model

	ctx context.Context
}

// New creates the console model for an authenticated session
func New(ctx context.Context, sess *session.Session, runner Runner) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		Machine:  console.NewMachine(),
		Session:  sess,
		Runner:   runner,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Help:     help.New(),
		Spinner:  s,
		Viewport: viewport.New(DefaultWidth-6, DefaultHeight-8),
		ctx:      ctx,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("nacos-tui")
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width - 6
		m.resizeViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case intentResultMsg:
		next := m.Machine.Apply(m.Session, msg.result)
		if _, ok := msg.result.Intent.(console.GetConfig); ok && m.Machine.Viewer != nil {
			doc := m.Machine.Viewer
			m.Viewport.SetContent(highlightContent(doc.Content, doc.Entry.Type, doc.Entry.DataID))
			m.Viewport.GotoTop()
		}
		if next != nil {
			return m, tea.Batch(m.dispatch(next), m.Spinner.Tick)
		}
		return m, nil

	case spinner.TickMsg:
		// Stop ticking once nothing is pending
		if m.Machine.Pending == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	// Messages produced by field commands, such as clipboard pastes
	return m, m.Machine.RouteInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mach := m.Machine
	idle := mach.Pending == nil

	if idle && mach.Screen == console.ScreenMain && key.Matches(msg, mach.Keys.Help) {
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil
	}
	if idle && mach.Screen == console.ScreenConfigView && key.Matches(msg, mach.Keys.Scroll) {
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}

	intent := mach.HandleKey(m.Session, msg)
	if mach.Quitting() {
		return m, tea.Quit
	}
	if intent == nil {
		return m, mach.TakeInputCmd()
	}
	return m, tea.Batch(m.dispatch(intent), m.Spinner.Tick)
}

// dispatch runs intent off the update loop and reports back with intentResultMsg
func (m Model) dispatch(intent console.Intent) tea.Cmd {
	ctx, runner := m.ctx, m.Runner
	return func() tea.Msg {
		return intentResultMsg{result: runner.Run(ctx, intent)}
	}
}

func (m *Model) resizeViewport() {
	w := m.Width - 6
	h := m.Height - 10
	if w < 20 {
		w = 20
	}
	if h < 3 {
		h = 3
	}
	m.Viewport.Width = w
	m.Viewport.Height = h
}

// Run starts the console and blocks until the user quits
func Run(ctx context.Context, sess *session.Session, runner Runner, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(ctx, sess, runner), opts...)
	_, err := p.Run()
	return err
}
