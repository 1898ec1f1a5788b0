package tabconv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook decodes an xlsx workbook and returns its first sheet as CSV
// text, ready for [Detect]. Rows are padded to the widest row so the sheet
// stays rectangular. Other sheets are ignored.
func ReadWorkbook(r io.Reader) (string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: no sheets", ErrWorkbook)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("%w: sheet %q: %v", ErrWorkbook, sheets[0], err)
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("%w: sheet %q is empty", ErrWorkbook, sheets[0])
	}

	width := Table(rows).Width()
	var sb strings.Builder
	cw := csv.NewWriter(&sb)
	for _, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		if err := cw.Write(padded); err != nil {
			return "", fmt.Errorf("%w: %v", ErrWorkbook, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWorkbook, err)
	}
	return sb.String(), nil
}
