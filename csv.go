package tabconv

import (
	"io"
	"strings"
)

// writeCSV quotes every cell, needed or not, so the output always reads back
// through the quote-aware scanner with the comma separator.
func writeCSV(w io.Writer, t Table) error {
	out := make([]string, len(t))
	for i, row := range t {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
		}
		out[i] = strings.Join(cells, ",")
	}
	_, err := io.WriteString(w, strings.Join(out, "\n"))
	return err
}
