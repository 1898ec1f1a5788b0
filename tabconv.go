package tabconv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrNoContent         = errors.New("no table content to convert")
	ErrUndetected        = errors.New("could not detect table format")
	ErrWorkbook          = errors.New("invalid workbook")
)

// Format names a tabular text format. The same names tag detection results
// and select generator targets.
type Format string

const (
	Unknown  Format = "unknown"
	JSON     Format = "json"
	HTML     Format = "html"
	Excel    Format = "excel"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	YAML     Format = "yaml"
	Pretty   Format = "table"
)

var formats = []Format{Markdown, Excel, HTML, CSV, JSON, YAML, Pretty}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all generator targets.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a generator target name. "tsv" is accepted as an alias
// for [Excel].
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "tsv" {
		return Excel, nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Table is the canonical in-memory form every parser produces and every
// generator consumes. Row 0 is the header; the rest are data rows. Rows may
// differ in length.
type Table [][]string

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t) == 0 }

// Header returns row 0, or nil for an empty table.
func (t Table) Header() []string {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Body returns the data rows.
func (t Table) Body() [][]string {
	if len(t) < 2 {
		return nil
	}
	return t[1:]
}

// Cell returns the cell at row r, column c, or "" when out of range.
func (t Table) Cell(r, c int) string {
	if r < 0 || r >= len(t) || c < 0 || c >= len(t[r]) {
		return ""
	}
	return t[r][c]
}

// Width returns the length of the longest row.
func (t Table) Width() int {
	n := 0
	for _, row := range t {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Rower provides row data for [FromRows].
type Rower interface {
	Row() []string
}

// Headed provides the header row for [FromRows].
type Headed interface {
	Header() []string
}

// FromRows builds a Table from values. When the first item implements
// [Headed] its header becomes row 0.
func FromRows[T Rower](items ...T) Table {
	var t Table
	if len(items) > 0 {
		if h, ok := any(items[0]).(Headed); ok {
			t = append(t, cloneRow(h.Header()))
		}
	}
	for _, item := range items {
		t = append(t, cloneRow(item.Row()))
	}
	return t
}

func cloneRow(row []string) []string {
	out := make([]string, len(row))
	copy(out, row)
	return out
}

// Write renders t in format f and writes it to w.
func Write(w io.Writer, f Format, t Table) error {
	if t.Empty() {
		return ErrNoContent
	}
	switch f {
	case Markdown:
		return writeMarkdown(w, t)
	case Excel:
		return writeTSV(w, t)
	case HTML:
		return writeHTML(w, t)
	case CSV:
		return writeCSV(w, t)
	case JSON:
		return writeJSON(w, t)
	case YAML:
		return writeYAML(w, t)
	case Pretty:
		return writeTable(w, t, BorderRounded)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t in format f and returns the bytes.
func Marshal(f Format, t Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Generate renders t in format f. It returns [ErrNoContent] when there is
// nothing to convert.
func Generate(f Format, t Table) (string, error) {
	b, err := Marshal(f, t)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Convert detects the format of raw and renders it in format f.
func Convert(raw string, f Format) (string, error) {
	return NewDetector(nil).Convert(raw, f)
}

// Convert is like the package-level [Convert] but logs through d.
func (d *Detector) Convert(raw string, f Format) (string, error) {
	return Generate(f, d.Detect(raw).Table)
}
