package tabconv

import (
	"io"
	"strings"
)

const (
	tableClass = "table-auto border-collapse w-full text-sm"
	theadClass = "bg-gray-100 dark:bg-gray-700"
	thClass    = "px-4 py-2 border dark:border-gray-600 text-left"
	tdClass    = "px-4 py-2 border dark:border-gray-700"
)

// writeHTML renders row 0 as a styled <thead> and the remaining rows as a
// <tbody>. Cell text is inserted verbatim and is NOT escaped.
func writeHTML(w io.Writer, t Table) error {
	var sb strings.Builder
	sb.WriteString(`<table class="` + tableClass + `">`)
	sb.WriteString(`<thead class="` + theadClass + `"><tr>`)
	for _, cell := range t.Header() {
		sb.WriteString(`<th class="` + thClass + `">` + cell + `</th>`)
	}
	sb.WriteString(`</tr></thead><tbody>`)
	for _, row := range t.Body() {
		sb.WriteString(`<tr>`)
		for _, cell := range row {
			sb.WriteString(`<td class="` + tdClass + `">` + cell + `</td>`)
		}
		sb.WriteString(`</tr>`)
	}
	sb.WriteString(`</tbody></table>`)
	_, err := io.WriteString(w, sb.String())
	return err
}
