package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Result is the box printed after a command finishes
type Result struct {
	Title           string
	Details         []Detail
	Err             error    // set for failures
	Troubleshooting []string // shown under a failure
	Width           int
}

// NewSuccessResult creates a success box listing details in order
func NewSuccessResult(title string, details ...Detail) *Result {
	return &Result{Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure box for err with optional tips
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{Title: title, Err: err, Troubleshooting: troubleshooting, Width: GetTerminalWidth()}
}

// SetWidth overrides the detected terminal width
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a key/value line
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Detail{Key: key, Value: value})
	return r
}

// Render returns the styled box
func (r *Result) Render() string {
	t, marker, label := toneSuccess, SuccessMarker, "SUCCESS"
	if r.Err != nil {
		t, marker, label = toneFailure, FailureMarker, "FAILED"
	}

	lines := []string{"", banner(t, marker, label, r.Title), ""}
	if len(r.Details) > 0 {
		lines = append(lines, detailLines(r.Details)...)
		lines = append(lines, "")
	}
	if r.Err != nil {
		lines = append(lines, toneFailure.style().Render(" Error: "+r.Err.Error()), "")
		if len(r.Troubleshooting) > 0 {
			tips := append([]string{mutedStyle.Bold(true).Render("Troubleshooting:"), ""}, bullets(mutedStyle, r.Troubleshooting)...)
			inner := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1).
				Render(lipgloss.JoinVertical(lipgloss.Left, tips...))
			lines = append(lines, inner, "")
		}
	}
	return frame(t, lipgloss.DoubleBorder(), r.Width, lines)
}

func (r *Result) String() string {
	return r.Render()
}
