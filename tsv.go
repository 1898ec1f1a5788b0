package tabconv

import (
	"io"
	"strings"
)

func writeTSV(w io.Writer, t Table) error {
	out := make([]string, len(t))
	for i, row := range t {
		out[i] = strings.Join(row, "\t")
	}
	_, err := io.WriteString(w, strings.Join(out, "\n"))
	return err
}
