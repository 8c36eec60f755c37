package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmDeletion prints a warning box for the kind/id about to be deleted and
// reads one line from in. It returns true only when that line is id.
func ConfirmDeletion(kind, id string, warnings []string, in io.Reader, out io.Writer) bool {
	if id == "" {
		return false
	}

	lines := []string{"", banner(toneWarning, WarningMarker, "DELETE "+strings.ToUpper(kind), id), ""}
	lines = append(lines, bullets(textStyle, warnings)...)
	lines = append(lines, "")
	_, _ = fmt.Fprintln(out, frame(toneWarning, lipgloss.DoubleBorder(), GetTerminalWidth(), lines))
	_, _ = fmt.Fprintln(out)

	prompt := toneWarning.style().Bold(true).Render(fmt.Sprintf("To proceed, type %q and press Enter: ", id))
	_, _ = fmt.Fprint(out, prompt)

	input, err := bufio.NewReader(in).ReadString('\n')
	_, _ = fmt.Fprintln(out)
	if (err == nil || input != "") && strings.TrimSpace(input) == id {
		return true
	}

	_, _ = fmt.Fprintln(out, mutedStyle.Render("  Operation cancelled."))
	return false
}
