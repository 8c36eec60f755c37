package console

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field is a single-line text editor with a label
type Field struct {
	Label string
	input textinput.Model
}

// NewField creates a field holding initial with the cursor at the end
func NewField(label, initial string) Field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	f := Field{Label: label, input: ti}
	f.Initialize(initial)
	return f
}

// Initialize replaces the content and moves the cursor to the end
func (f *Field) Initialize(text string) {
	f.input.SetValue(text)
	f.input.CursorEnd()
}

// Apply feeds one event to the editor and returns its command.
// Keys that do not edit text leave the content unchanged. ctrl+v returns a
// command that reads the clipboard; its result must be fed back through Apply.
func (f *Field) Apply(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// String returns the current content
func (f Field) String() string {
	return f.input.Value()
}

// Focused reports whether the field receives key events
func (f Field) Focused() bool {
	return f.input.Focused()
}

// Position returns the cursor offset in runes
func (f Field) Position() int {
	return f.input.Position()
}

// View renders the editor line including the cursor
func (f Field) View() string {
	return f.input.View()
}

func (f *Field) focus() {
	_ = f.input.Focus()
}

func (f *Field) blur() {
	f.input.Blur()
}
