package console

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/muurk/nacos-tui/internal/nacos"
	"github.com/muurk/nacos-tui/internal/session"
)

// ConfigDocument is the content shown on the config viewer
type ConfigDocument struct {
	NamespaceID string
	Entry       nacos.ConfigEntry
	Content     string
}

// Machine is the console state machine.
//
// HandleKey and Apply are its only transitions. Neither performs I/O:
// HandleKey may return an Intent, which the caller runs and feeds back
// through Apply. The session is passed into both and never stored.
type Machine struct {
	Screen Screen
	Menu   Menu

	// NamespaceLine is the highlighted row of the namespace list
	NamespaceLine int

	// ConfigLine is the highlighted row of the config list
	ConfigLine int

	// ConfigTab is the index of the namespace whose configs are shown
	ConfigTab int

	// Form exists only on the add and edit screens
	Form *Form

	// Pending is the intent in flight; input is ignored until it completes
	Pending Intent

	// Err is the last error shown to the user
	Err string

	// Status is the last success message shown to the user
	Status string

	// Viewer is the document open on the config viewer
	Viewer *ConfigDocument

	Keys KeyMap

	newID    func() string
	inputCmd tea.Cmd
}

// NewMachine returns a machine on the main screen with the config menu selected
func NewMachine() *Machine {
	return &Machine{
		Screen: ScreenMain,
		Menu:   MenuConfig,
		Keys:   DefaultKeyMap(),
		newID:  uuid.NewString,
	}
}

// SetIDGenerator replaces the generator used for namespaces added with an empty id
func (m *Machine) SetIDGenerator(gen func() string) {
	m.newID = gen
}

// Quitting reports whether the machine reached its terminal state
func (m *Machine) Quitting() bool {
	return m.Screen == ScreenQuitting
}

// SelectedNamespace returns the highlighted namespace
func (m *Machine) SelectedNamespace(sess *session.Session) (nacos.Namespace, bool) {
	if m.NamespaceLine < 0 || m.NamespaceLine >= len(sess.Namespaces) {
		return nacos.Namespace{}, false
	}
	return sess.Namespaces[m.NamespaceLine], true
}

// SelectedConfig returns the highlighted config entry
func (m *Machine) SelectedConfig(sess *session.Session) (nacos.ConfigEntry, bool) {
	if m.ConfigLine < 0 || m.ConfigLine >= len(sess.Configs) {
		return nacos.ConfigEntry{}, false
	}
	return sess.Configs[m.ConfigLine], true
}

// HandleKey applies one key event and returns the intent it raises, if any.
// While an intent is pending every key except the force-quit binding is ignored.
func (m *Machine) HandleKey(sess *session.Session, msg tea.KeyMsg) Intent {
	m.inputCmd = nil
	if m.Screen == ScreenQuitting {
		return nil
	}
	if key.Matches(msg, m.Keys.ForceQuit) {
		m.Screen = ScreenQuitting
		return nil
	}
	if m.Pending != nil {
		return nil
	}

	switch m.Screen {
	case ScreenMain:
		return m.handleMain(sess, msg)
	case ScreenNamespaceAdd, ScreenNamespaceEdit:
		return m.handleForm(sess, msg)
	case ScreenNamespaceDeleteConfirm:
		return m.handleDeleteConfirm(sess, msg)
	case ScreenConfigView:
		return m.handleViewer(msg)
	}
	return nil
}

func (m *Machine) handleMain(sess *session.Session, msg tea.KeyMsg) Intent {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Screen = ScreenQuitting
		return nil
	case key.Matches(msg, m.Keys.MenuConfig):
		m.selectMenu(MenuConfig)
		return nil
	case key.Matches(msg, m.Keys.MenuService):
		m.selectMenu(MenuService)
		return nil
	case key.Matches(msg, m.Keys.MenuNamespace):
		m.selectMenu(MenuNamespace)
		return nil
	}

	switch m.Menu {
	case MenuNamespace:
		return m.handleNamespaceMenu(sess, msg)
	case MenuConfig:
		return m.handleConfigMenu(sess, msg)
	}
	return nil
}

func (m *Machine) selectMenu(menu Menu) {
	m.Menu = menu
	m.Err = ""
	m.Status = ""
}

func (m *Machine) handleNamespaceMenu(sess *session.Session, msg tea.KeyMsg) Intent {
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.NamespaceLine = clamp(m.NamespaceLine-1, len(sess.Namespaces))
	case key.Matches(msg, m.Keys.Down):
		m.NamespaceLine = clamp(m.NamespaceLine+1, len(sess.Namespaces))

	case key.Matches(msg, m.Keys.Add):
		m.openForm(ScreenNamespaceAdd, NewForm(FormAdd, AddFormSpecs()))

	case key.Matches(msg, m.Keys.Edit):
		ns, ok := m.SelectedNamespace(sess)
		if !ok {
			return nil
		}
		if ns.IsDefault() {
			m.Err = "The public namespace cannot be edited"
			return nil
		}
		m.openForm(ScreenNamespaceEdit, NewForm(FormEdit, EditFormSpecs(ns.Name, ns.DescriptionText())))

	case key.Matches(msg, m.Keys.Delete):
		ns, ok := m.SelectedNamespace(sess)
		if !ok {
			return nil
		}
		if ns.IsDefault() {
			m.Err = "The public namespace cannot be deleted"
			return nil
		}
		m.Err = ""
		m.Status = ""
		m.Screen = ScreenNamespaceDeleteConfirm

	case key.Matches(msg, m.Keys.Refresh):
		return m.begin(ListNamespaces{})
	}
	return nil
}

func (m *Machine) handleConfigMenu(sess *session.Session, msg tea.KeyMsg) Intent {
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.ConfigLine = clamp(m.ConfigLine-1, len(sess.Configs))
	case key.Matches(msg, m.Keys.Down):
		m.ConfigLine = clamp(m.ConfigLine+1, len(sess.Configs))

	case key.Matches(msg, m.Keys.NextTab):
		return m.switchTab(sess, 1)
	case key.Matches(msg, m.Keys.PrevTab):
		return m.switchTab(sess, -1)

	case key.Matches(msg, m.Keys.Refresh):
		return m.switchTab(sess, 0)

	case key.Matches(msg, m.Keys.Open):
		entry, ok := m.SelectedConfig(sess)
		if !ok {
			return nil
		}
		return m.begin(GetConfig{NamespaceID: sess.ConfigNamespace, Entry: entry})
	}
	return nil
}

// switchTab requests the configs of the namespace delta tabs away from the current one
func (m *Machine) switchTab(sess *session.Session, delta int) Intent {
	n := len(sess.Namespaces)
	if n == 0 {
		return nil
	}
	tab := ((m.ConfigTab+delta)%n + n) % n
	return m.begin(ListConfigs{Tab: tab, NamespaceID: sess.Namespaces[tab].ID})
}

func (m *Machine) openForm(screen Screen, form *Form) {
	m.Err = ""
	m.Status = ""
	m.Form = form
	m.Screen = screen
}

// closeForm returns to the main screen and discards any form
func (m *Machine) closeForm() {
	m.Form = nil
	m.Screen = ScreenMain
}

func (m *Machine) handleForm(sess *session.Session, msg tea.KeyMsg) Intent {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.Err = ""
		m.closeForm()
		return nil
	case key.Matches(msg, m.Keys.NextField):
		m.Form.AdvanceFocus()
		return nil
	case key.Matches(msg, m.Keys.PrevField):
		m.Form.RetreatFocus()
		return nil
	case key.Matches(msg, m.Keys.Submit):
		return m.submitForm(sess)
	}

	m.inputCmd = m.Form.Route(msg)
	return nil
}

// TakeInputCmd returns and clears the command left by the last key routed
// into a form field
func (m *Machine) TakeInputCmd() tea.Cmd {
	cmd := m.inputCmd
	m.inputCmd = nil
	return cmd
}

// RouteInput forwards a non-key message, such as a finished paste, to the
// focused form field. It is dropped when no form is open or an intent is
// pending.
func (m *Machine) RouteInput(msg tea.Msg) tea.Cmd {
	if m.Form == nil || m.Pending != nil {
		return nil
	}
	switch m.Screen {
	case ScreenNamespaceAdd, ScreenNamespaceEdit:
		return m.Form.Route(msg)
	}
	return nil
}

func (m *Machine) submitForm(sess *session.Session) Intent {
	values := m.Form.Collect()
	name := values[FieldName]
	var desc *string
	if d, ok := values[FieldDescription]; ok {
		desc = &d
	}

	if err := nacos.ValidateNamespaceName(name); err != nil {
		m.Err = nacos.ShortMessage(err)
		return nil
	}

	switch m.Form.Kind {
	case FormAdd:
		id := values[FieldID]
		if err := nacos.ValidateNamespaceID(id); err != nil {
			m.Err = nacos.ShortMessage(err)
			return nil
		}
		if id == "" {
			id = m.newID()
		}
		if sess.NamespaceIndex(id) >= 0 {
			m.Err = fmt.Sprintf("Namespace %s already exists", id)
			return nil
		}
		return m.begin(CreateNamespace{ID: id, Name: name, Description: desc})

	case FormEdit:
		ns, ok := m.SelectedNamespace(sess)
		if !ok {
			m.Err = "No namespace selected"
			return nil
		}
		return m.begin(UpdateNamespace{ID: ns.ID, Name: name, Description: desc})
	}
	return nil
}

func (m *Machine) handleDeleteConfirm(sess *session.Session, msg tea.KeyMsg) Intent {
	switch {
	case key.Matches(msg, m.Keys.Yes):
		m.Screen = ScreenMain
		ns, ok := m.SelectedNamespace(sess)
		if !ok {
			return nil
		}
		return m.begin(DeleteNamespace{ID: ns.ID})
	case key.Matches(msg, m.Keys.No), key.Matches(msg, m.Keys.Cancel):
		m.Screen = ScreenMain
	}
	return nil
}

func (m *Machine) handleViewer(msg tea.KeyMsg) Intent {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.Viewer = nil
		m.Screen = ScreenMain
	case key.Matches(msg, m.Keys.Copy):
		if m.Viewer == nil {
			return nil
		}
		return m.begin(CopyContent{Content: m.Viewer.Content})
	}
	return nil
}

// begin marks intent as pending and returns it
func (m *Machine) begin(intent Intent) Intent {
	m.Err = ""
	m.Status = ""
	m.Pending = intent
	return intent
}

// clamp bounds i to [0, n-1], or 0 for an empty list
func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
