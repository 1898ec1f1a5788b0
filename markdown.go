package tabconv

import (
	"io"
	"strings"
)

// writeMarkdown emits a pipe table with one "---" divider per header column.
// Cells are written as-is; pipes inside cells are not escaped.
func writeMarkdown(w io.Writer, t Table) error {
	divider := make([]string, len(t.Header()))
	for i := range divider {
		divider[i] = "---"
	}
	out := make([]string, 0, len(t)+1)
	out = append(out, markdownRow(t.Header()), markdownRow(divider))
	for _, row := range t.Body() {
		out = append(out, markdownRow(row))
	}
	_, err := io.WriteString(w, strings.Join(out, "\n"))
	return err
}

func markdownRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}
