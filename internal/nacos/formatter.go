package nacos

import (
	"fmt"
	"strings"
	"time"
)

// PublicNamespaceLabel is shown in place of the empty id of the public namespace
const PublicNamespaceLabel = "public"

// DisplayID returns the id shown to users; the public namespace has an empty id
func (n Namespace) DisplayID() string {
	if n.ID == "" {
		return PublicNamespaceLabel
	}
	return n.ID
}

// Summary returns a one-line summary of the namespace
func (n Namespace) Summary() string {
	return fmt.Sprintf("%s (%s) %d/%d configs", n.Name, n.DisplayID(), n.ConfigCount, n.Quota)
}

// FormatDetails returns a multi-line description of the namespace
func (n Namespace) FormatDetails() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("ID:          %s\n", n.DisplayID()))
	b.WriteString(fmt.Sprintf("Name:        %s\n", n.Name))
	if n.Description != nil {
		b.WriteString(fmt.Sprintf("Description: %s\n", *n.Description))
	} else {
		b.WriteString("Description: (none)\n")
	}
	b.WriteString(fmt.Sprintf("Configs:     %d / %d\n", n.ConfigCount, n.Quota))
	b.WriteString(fmt.Sprintf("Kind:        %s\n", n.Kind))

	return b.String()
}

// Summary returns a one-line summary of the config entry
func (e ConfigEntry) Summary() string {
	t := e.Type
	if t == "" {
		t = "text"
	}
	return fmt.Sprintf("%s [%s] %s", e.DataID, e.Group, t)
}

// FormatLastModified renders the modification time, or "-" when unknown
func (e ConfigEntry) FormatLastModified() string {
	if e.LastModified.IsZero() {
		return "-"
	}
	return e.LastModified.Local().Format(time.DateTime)
}

// ContentText returns the content or an empty string when not loaded
func (e ConfigEntry) ContentText() string {
	if e.Content == nil {
		return ""
	}
	return *e.Content
}

// FormatNamespaceTable renders namespaces as fixed-width plain text rows
func FormatNamespaceTable(namespaces []Namespace) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%-38s %-24s %-8s %s\n", "ID", "NAME", "CONFIGS", "DESCRIPTION"))
	for _, n := range namespaces {
		b.WriteString(fmt.Sprintf("%-38s %-24s %-8s %s\n",
			n.DisplayID(), n.Name, fmt.Sprintf("%d/%d", n.ConfigCount, n.Quota), n.DescriptionText()))
	}

	return b.String()
}

// FormatConfigTable renders config entries as fixed-width plain text rows
func FormatConfigTable(entries []ConfigEntry) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%-40s %-20s %-10s %s\n", "DATA ID", "GROUP", "TYPE", "MODIFIED"))
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%-40s %-20s %-10s %s\n", e.DataID, e.Group, e.Type, e.FormatLastModified()))
	}

	return b.String()
}
