package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// tone picks the accent colour of a box, banner or step line
type tone int

const (
	toneInfo tone = iota
	toneSuccess
	toneFailure
	toneWarning
)

var (
	colorAccent  = lipgloss.Color("#4A90E2")
	colorSuccess = lipgloss.Color("#43BF6D")
	colorFailure = lipgloss.Color("#FF5555")
	colorWarning = lipgloss.Color("#FFA500")
	colorMuted   = lipgloss.Color("#626262")
	colorText    = lipgloss.Color("#FFFFFF")
)

func (t tone) color() lipgloss.Color {
	switch t {
	case toneSuccess:
		return colorSuccess
	case toneFailure:
		return colorFailure
	case toneWarning:
		return colorWarning
	}
	return colorAccent
}

func (t tone) style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.color())
}

// Width bounds for boxed output
const (
	MinTerminalWidth = 60
	MaxContentWidth  = 100
)

// Markers used in step lines, banners and tables
const (
	StepMarkerComplete = "✓"
	StepMarkerRunning  = "●"
	SuccessMarker      = "✓"
	FailureMarker      = "✗"
	WarningMarker      = "⚠"
)

var (
	textStyle  = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	keyStyle   = mutedStyle.Width(15)

	tableHeaderStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Padding(0, 1)
	tableCellStyle   = textStyle.Padding(0, 1)
)

// GetTerminalWidth returns the stdout width capped to [MinTerminalWidth, MaxContentWidth]
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth
	}
	return min(max(width, MinTerminalWidth), MaxContentWidth)
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
