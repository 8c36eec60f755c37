package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/nacos-tui/internal/version"
)

// AppName is shown in the console header
const AppName = "NACOS CONSOLE"

// Layout
const (
	MinTerminalWidth = 72
	DefaultWidth     = 80 // until the first WindowSizeMsg arrives
	DefaultHeight    = 24

	minModalWidth = 40
)

var (
	colorAccent  = lipgloss.Color("#4A90E2")
	colorOK      = lipgloss.Color("#43BF6D")
	colorWarning = lipgloss.Color("#FFA500")
	colorError   = lipgloss.Color("#FF5555")
	colorText    = lipgloss.Color("#FFFFFF")
	colorSubtle  = lipgloss.Color("#626262")
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).MarginBottom(1)
	subtleStyle = lipgloss.NewStyle().Foreground(colorSubtle).Italic(true)

	// Menu bar and namespace tabs share the same look
	tabStyle       = lipgloss.NewStyle().Foreground(colorSubtle).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorAccent).Bold(true).Padding(0, 1)

	rowStyle         = lipgloss.NewStyle().Foreground(colorText).PaddingLeft(2)
	selectedRowStyle = lipgloss.NewStyle().Foreground(colorOK).Bold(true)
	detailsBoxStyle  = lipgloss.NewStyle().
				Foreground(colorSubtle).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSubtle).
				Padding(0, 1)

	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(colorOK)
	spinnerStyle = lipgloss.NewStyle().Foreground(colorAccent)

	modalStyle        = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(colorAccent).Padding(1, 2)
	warningModalStyle = modalStyle.BorderForeground(colorWarning)
	warningTitleStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)

	labelStyle           = lipgloss.NewStyle().Foreground(colorSubtle)
	focusedLabelStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	inputBoxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSubtle).Padding(0, 1)
	focusedInputBoxStyle = inputBoxStyle.BorderForeground(colorAccent)
)

func renderRow(text string, selected bool) string {
	if selected {
		return selectedRowStyle.Render("→ " + text)
	}
	return rowStyle.Render(text)
}

func renderError(text string) string {
	return errorStyle.Render("✗ " + text)
}

func renderOK(text string) string {
	return okStyle.Render("✓ " + text)
}

// headerLine names the console and the account it is logged in with
func headerLine(server, user string) string {
	left := lipgloss.NewStyle().Foreground(colorText).Bold(true).
		Render(AppName + " " + version.Get().Version)
	right := lipgloss.NewStyle().Foreground(colorSubtle).Render(user + " @ " + server)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// renderContainer draws the full-screen panel with the footer pinned to the bottom.
// The content area gets whatever height the header and footer leave.
func renderContainer(header, content, footer string, width, height int) string {
	width = max(width, MinTerminalWidth)
	inner := width - 4

	band := func(border lipgloss.Border) lipgloss.Style {
		return lipgloss.NewStyle().BorderStyle(border).BorderForeground(colorAccent).Width(inner).Padding(0, 1)
	}
	top := band(lipgloss.Border{Bottom: "─"}).Render(header)
	bottom := band(lipgloss.Border{Top: "─"}).Render(footer)

	bodyHeight := max(height-2-lipgloss.Height(top)-lipgloss.Height(bottom), 1)
	body := lipgloss.NewStyle().Width(inner).Height(bodyHeight).MaxHeight(bodyHeight).Render(content)

	panel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorAccent).
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, top, body, bottom))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, panel)
}

// modalWidth fits want into the terminal, never below minModalWidth
func modalWidth(want, termWidth int) int {
	return min(want, max(termWidth-4, minModalWidth))
}

// placeModal centres a modal over a shaded background
func placeModal(modal string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}
