package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Detail is one key/value line in a header or result box
type Detail struct {
	Key   string
	Value string
}

// frame draws lines inside a border of tone t. width never drops below MinTerminalWidth.
func frame(t tone, border lipgloss.Border, width int, lines []string) string {
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(t.color()).
		Width(max(width, MinTerminalWidth)-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// banner is the bold opening line of a box, e.g. "✓  SUCCESS  ─  Namespace created"
func banner(t tone, marker, label, title string) string {
	return t.style().Bold(true).Render(fmt.Sprintf(" %s  %s  ─  %s", marker, label, title))
}

// detailLines renders details as aligned key/value lines
func detailLines(details []Detail) []string {
	lines := make([]string, 0, len(details))
	for _, d := range details {
		lines = append(lines, keyStyle.Render(" "+d.Key+":")+" "+textStyle.Render(d.Value))
	}
	return lines
}

// bullets renders items as an indented list in style s
func bullets(s lipgloss.Style, items []string) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, s.Render("  • "+item))
	}
	return lines
}
