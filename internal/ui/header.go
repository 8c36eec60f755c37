package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header is the banner printed before a mutating command runs,
// so the target server object is visible before anything changes.
type Header struct {
	Title   string   // e.g. "Delete Namespace"
	Command string   // e.g. "nacos-tui namespace delete"
	Params  []Detail // target of the operation
	Width   int
}

// NewHeader creates a header sized to the terminal
func NewHeader(title, command string, params ...Detail) *Header {
	return &Header{Title: title, Command: command, Params: params, Width: GetTerminalWidth()}
}

// SetWidth overrides the detected terminal width
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	lines := []string{
		textStyle.Bold(true).Render(strings.ToUpper(h.Title)),
		mutedStyle.Render(h.Command),
	}
	if len(h.Params) > 0 {
		rule := strings.Repeat("─", max(h.Width-8, 10))
		lines = append(lines, toneInfo.style().Render(rule))
		lines = append(lines, detailLines(h.Params)...)
	}
	return frame(toneInfo, lipgloss.RoundedBorder(), h.Width, lines)
}

func (h *Header) String() string {
	return h.Render()
}
