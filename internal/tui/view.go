package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/nacos-tui/internal/console"
	"github.com/muurk/nacos-tui/internal/nacos"
)

// View renders the current screen
func (m Model) View() string {
	mach := m.Machine
	if mach.Quitting() {
		return ""
	}

	switch mach.Screen {
	case console.ScreenNamespaceAdd, console.ScreenNamespaceEdit:
		return placeModal(m.renderFormModal(), m.Width, m.Height)
	case console.ScreenNamespaceDeleteConfirm:
		return placeModal(m.renderDeleteModal(), m.Width, m.Height)
	}

	footer := m.renderFooter()
	var content string
	if mach.Screen == console.ScreenConfigView {
		content = m.renderConfigView()
	} else {
		content = m.renderMain(bodyHeight(m.Height, footer))
	}

	header := headerLine(m.Session.BaseURL, m.Session.Username)
	return renderContainer(header, content, footer, m.Width, m.Height)
}

// renderFooter shows the in-flight spinner or the last message, then help
func (m Model) renderFooter() string {
	mach := m.Machine
	var status string
	switch {
	case mach.Pending != nil:
		status = m.Spinner.View() + " " + pendingLabel(mach.Pending)
	case mach.Err != "":
		status = renderError(mach.Err)
	case mach.Status != "":
		status = renderOK(mach.Status)
	}

	helpView := m.Help.View(mach.Keys.HelpFor(mach.Screen, mach.Menu))
	if status == "" {
		return helpView
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, helpView)
}

func pendingLabel(intent console.Intent) string {
	switch in := intent.(type) {
	case console.CreateNamespace:
		return "Creating namespace " + in.ID + "..."
	case console.UpdateNamespace:
		return "Updating namespace " + in.ID + "..."
	case console.DeleteNamespace:
		return "Deleting namespace " + in.ID + "..."
	case console.ListNamespaces:
		return "Loading namespaces..."
	case console.ListConfigs:
		return "Loading configs..."
	case console.GetConfig:
		return "Fetching " + in.Entry.DataID + "..."
	case console.CopyContent:
		return "Copying..."
	}
	return "Working..."
}

func (m Model) renderMenuBar() string {
	var tabs []string
	for i, menu := range console.Menus {
		label := fmt.Sprintf("%d %s", i+1, menu)
		if menu == m.Machine.Menu {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderMain draws the menu bar and the selected list into height lines
func (m Model) renderMain(height int) string {
	bar := m.renderMenuBar()
	height -= lipgloss.Height(bar) + 1

	var body string
	switch m.Machine.Menu {
	case console.MenuNamespace:
		body = m.renderNamespaces(height)
	case console.MenuConfig:
		body = m.renderConfigs(height)
	default:
		body = subtleStyle.Render("Service browsing is not available in this console.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, "", body)
}

func (m Model) renderNamespaces(height int) string {
	namespaces := m.Session.Namespaces
	if len(namespaces) == 0 {
		return subtleStyle.Render("No namespaces. Press a to add one.")
	}

	var details string
	if ns, ok := m.Machine.SelectedNamespace(m.Session); ok {
		details = detailsBoxStyle.Render(strings.TrimRight(ns.FormatDetails(), "\n"))
		height -= lipgloss.Height(details) + 1
	}

	start, end := window(len(namespaces), m.Machine.NamespaceLine, height)
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, renderRow(namespaces[i].Summary(), i == m.Machine.NamespaceLine))
	}

	list := strings.Join(rows, "\n")
	if details != "" {
		return lipgloss.JoinVertical(lipgloss.Left, list, "", details)
	}
	return list
}

func (m Model) renderNamespaceTabs() string {
	var tabs []string
	for i, ns := range m.Session.Namespaces {
		label := ns.Name
		if label == "" {
			label = ns.DisplayID()
		}
		if i == m.Machine.ConfigTab && !m.Session.ConfigsStale {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderConfigs(height int) string {
	tabs := m.renderNamespaceTabs()
	if m.Session.ConfigsStale {
		msg := "Configs not loaded. Press r to reload."
		if _, ok := m.Machine.Pending.(console.ListConfigs); ok {
			msg = "Loading configs..."
		}
		return lipgloss.JoinVertical(lipgloss.Left, tabs, "", subtleStyle.Render(msg))
	}

	configs := m.Session.Configs
	if len(configs) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, tabs, "", subtleStyle.Render("No configs in this namespace."))
	}

	start, end := window(len(configs), m.Machine.ConfigLine, height-lipgloss.Height(tabs)-1)
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		e := configs[i]
		line := fmt.Sprintf("%-48s %s", e.Summary(), e.FormatLastModified())
		rows = append(rows, renderRow(line, i == m.Machine.ConfigLine))
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabs, "", strings.Join(rows, "\n"))
}

// bodyHeight is the number of content lines renderContainer leaves between
// the header band and a band holding footer
func bodyHeight(height int, footer string) int {
	return max(height-5-lipgloss.Height(footer), 1)
}

// window returns the bounds of the size rows of an n row list to draw,
// keeping cursor inside and roughly centered
func window(n, cursor, size int) (start, end int) {
	size = max(size, 1)
	if n <= size {
		return 0, n
	}
	start = max(0, min(cursor-size/2, n-size))
	return start, start + size
}

func (m Model) renderConfigView() string {
	doc := m.Machine.Viewer
	if doc == nil {
		return ""
	}
	ns := doc.NamespaceID
	if ns == "" {
		ns = nacos.PublicNamespaceLabel
	}
	title := titleStyle.Render(fmt.Sprintf("%s  [%s]", doc.Entry.DataID, doc.Entry.Group))
	sub := subtleStyle.Render(fmt.Sprintf("namespace %s • %d bytes", ns, len(doc.Content)))
	return lipgloss.JoinVertical(lipgloss.Left, title, sub, "", m.Viewport.View())
}

func (m Model) renderFormModal() string {
	mach := m.Machine
	form := mach.Form
	if form == nil {
		return ""
	}

	title := "NEW NAMESPACE"
	if form.Kind == console.FormEdit {
		if ns, ok := mach.SelectedNamespace(m.Session); ok {
			title = "EDIT NAMESPACE " + ns.DisplayID()
		} else {
			title = "EDIT NAMESPACE"
		}
	}

	width := modalWidth(60, m.Width)
	lines := []string{titleStyle.Render(title)}
	for i, f := range form.Fields {
		label := f.Label
		if form.Spec(i).Optional {
			label += " (optional)"
		}
		if form.Kind == console.FormAdd && form.Spec(i).Key == console.FieldID {
			label += " (blank for generated)"
		}

		lbl, box := labelStyle, inputBoxStyle
		if f.Focused() {
			lbl, box = focusedLabelStyle, focusedInputBoxStyle
		}
		lines = append(lines, lbl.Render(label), box.Width(width-8).Render(f.View()))
	}

	if mach.Pending != nil {
		lines = append(lines, "", m.Spinner.View()+" "+pendingLabel(mach.Pending))
	} else if mach.Err != "" {
		lines = append(lines, "", renderError(mach.Err))
	}
	lines = append(lines, "", m.Help.ShortHelpView(mach.Keys.HelpFor(mach.Screen, mach.Menu).ShortHelp()))

	return modalStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderDeleteModal() string {
	mach := m.Machine
	ns, _ := mach.SelectedNamespace(m.Session)
	width := modalWidth(56, m.Width)

	title := warningTitleStyle.Render("⚠ DELETE NAMESPACE")
	body := fmt.Sprintf("Delete %s (%s)?\nIts %d configs become unreachable.", ns.Name, ns.DisplayID(), ns.ConfigCount)
	prompt := m.Help.ShortHelpView(mach.Keys.HelpFor(mach.Screen, mach.Menu).ShortHelp())

	return warningModalStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", prompt))
}
