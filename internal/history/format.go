package history

import (
	"fmt"
	"strings"
)

// FormatTable renders entries as fixed-width plain text rows
func FormatTable(entries []Entry) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%-19s %-6s %-18s %-20s %-30s %s\n", "TIME", "SOURCE", "ACTION", "NAMESPACE", "TARGET", "RESULT"))
	for _, e := range entries {
		result := "ok"
		if !e.Success {
			result = "failed: " + e.Error
		}
		b.WriteString(fmt.Sprintf("%-19s %-6s %-18s %-20s %-30s %s\n",
			e.Time.Local().Format("2006-01-02 15:04:05"), e.Source, e.Action, e.Namespace, e.Target, result))
	}

	return b.String()
}
