package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/nacos-tui/internal/history"
	"github.com/muurk/nacos-tui/internal/nacos"
)

// newTable returns a bordered table with the shared header and cell styles
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorAccent)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...)
}

// NamespaceTable renders namespaces as a table
func NamespaceTable(namespaces []nacos.Namespace) string {
	t := newTable("ID", "NAME", "CONFIGS", "QUOTA", "KIND", "DESCRIPTION")
	for _, ns := range namespaces {
		t.Row(
			ns.DisplayID(),
			ns.Name,
			strconv.Itoa(ns.ConfigCount),
			strconv.Itoa(ns.Quota),
			ns.Kind.String(),
			ns.DescriptionText(),
		)
	}
	return t.Render()
}

// ConfigTable renders config entries as a table
func ConfigTable(entries []nacos.ConfigEntry) string {
	t := newTable("DATA ID", "GROUP", "TYPE", "APP", "MODIFIED")
	for _, e := range entries {
		typ := e.Type
		if typ == "" {
			typ = "text"
		}
		t.Row(e.DataID, e.Group, typ, e.AppName, e.FormatLastModified())
	}
	return t.Render()
}

// HistoryTable renders recorded actions as a table
func HistoryTable(entries []history.Entry) string {
	t := newTable("TIME", "SOURCE", "ACTION", "NAMESPACE", "TARGET", "RESULT")
	for _, e := range entries {
		result := SuccessMarker
		if !e.Success {
			result = FailureMarker + " " + e.Error
		}
		t.Row(
			e.Time.Local().Format("2006-01-02 15:04:05"),
			string(e.Source),
			e.Action,
			e.Namespace,
			e.Target,
			result,
		)
	}
	return t.Render()
}
