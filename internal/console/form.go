package console

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FieldKey names the remote-call parameter a form field maps to
type FieldKey string

const (
	FieldID          FieldKey = "id"
	FieldName        FieldKey = "name"
	FieldDescription FieldKey = "description"
)

// FieldSpec describes one field of a form
type FieldSpec struct {
	Key      FieldKey
	Label    string
	Initial  string
	Optional bool
}

// FormKind identifies which namespace form is open
type FormKind int

const (
	// FormAdd creates a namespace: id, name, description
	FormAdd FormKind = iota
	// FormEdit changes a namespace: name, description
	FormEdit
)

// String returns the form title
func (k FormKind) String() string {
	if k == FormAdd {
		return "New Namespace"
	}
	return "Edit Namespace"
}

// Keys returns the field keys of the kind in display order
func (k FormKind) Keys() []FieldKey {
	if k == FormAdd {
		return []FieldKey{FieldID, FieldName, FieldDescription}
	}
	return []FieldKey{FieldName, FieldDescription}
}

// AddFormSpecs returns the specs of an empty add form
func AddFormSpecs() []FieldSpec {
	return []FieldSpec{
		{Key: FieldID, Label: "Namespace ID", Optional: true},
		{Key: FieldName, Label: "Name"},
		{Key: FieldDescription, Label: "Description", Optional: true},
	}
}

// EditFormSpecs returns the specs of an edit form pre-filled with name and description
func EditFormSpecs(name, description string) []FieldSpec {
	return []FieldSpec{
		{Key: FieldName, Label: "Name", Initial: name},
		{Key: FieldDescription, Label: "Description", Initial: description, Optional: true},
	}
}

// Form is an ordered group of fields with one focused field
type Form struct {
	Kind   FormKind
	Fields []Field
	Focus  int

	specs []FieldSpec
}

// NewForm creates one field per spec and focuses the first
func NewForm(kind FormKind, specs []FieldSpec) *Form {
	f := &Form{Kind: kind, specs: specs}
	for _, s := range specs {
		f.Fields = append(f.Fields, NewField(s.Label, s.Initial))
	}
	if len(f.Fields) > 0 {
		f.Fields[0].focus()
	}
	return f
}

// AdvanceFocus moves focus to the next field, wrapping around
func (f *Form) AdvanceFocus() {
	f.setFocus((f.Focus + 1) % len(f.Fields))
}

// RetreatFocus moves focus to the previous field, wrapping around
func (f *Form) RetreatFocus() {
	f.setFocus((f.Focus - 1 + len(f.Fields)) % len(f.Fields))
}

func (f *Form) setFocus(i int) {
	f.Fields[f.Focus].blur()
	f.Focus = i
	f.Fields[f.Focus].focus()
}

// Route sends an event to the focused field only
func (f *Form) Route(msg tea.Msg) tea.Cmd {
	return f.Fields[f.Focus].Apply(msg)
}

// Spec returns the spec of field i
func (f *Form) Spec(i int) FieldSpec {
	return f.specs[i]
}

// Value returns the content of the field with key, or "" when absent
func (f *Form) Value(key FieldKey) string {
	for i, s := range f.specs {
		if s.Key == key {
			return f.Fields[i].String()
		}
	}
	return ""
}

// Collect returns field contents by key.
// Empty optional fields are left out.
func (f *Form) Collect() map[FieldKey]string {
	values := make(map[FieldKey]string, len(f.Fields))
	for i, s := range f.specs {
		v := f.Fields[i].String()
		if v == "" && s.Optional {
			continue
		}
		values[s.Key] = v
	}
	return values
}
