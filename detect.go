package tabconv

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"
)

// Detection is the outcome of classifying raw text.
type Detection struct {
	Format Format
	Table  Table
	// Separator is the winning field separator. Set only for CSV.
	Separator rune
}

// Label returns the display name of the detected format, e.g. "CSV (;)" or
// "MARKDOWN".
func (d Detection) Label() string {
	if d.Format == CSV {
		return fmt.Sprintf("CSV (%c)", d.Separator)
	}
	return strings.ToUpper(string(d.Format))
}

// candidate is one step of the detection chain. match is a cheap structural
// precheck on the trimmed input; parse does the work and reports whether the
// result is plausible.
type candidate struct {
	format Format
	match  func(text string) bool
	parse  func(text string) (Table, rune, bool)
}

// Order matters: Markdown and CSV both use '|', and a pasted HTML table may
// contain tabs.
var candidates = []candidate{
	{format: JSON, match: looksLikeJSON, parse: parseJSON},
	{format: HTML, match: looksLikeHTML, parse: parseHTML},
	{format: Excel, match: looksLikeTSV, parse: parseTSV},
	{format: Markdown, match: looksLikeMarkdown, parse: parseMarkdown},
	{format: CSV, match: func(string) bool { return true }, parse: parseDelimited},
}

// Detector classifies raw text. The zero value is ready to use and discards
// its logs.
type Detector struct {
	logger *slog.Logger
}

// NewDetector returns a Detector that reports rejected candidates to logger
// at debug level. A nil logger discards output.
func NewDetector(logger *slog.Logger) *Detector {
	return &Detector{logger: logger}
}

func (d *Detector) log() *slog.Logger {
	if d == nil || d.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.logger
}

// Detect classifies raw and parses it into a Table. It never fails: text that
// matches nothing yields an [Unknown] detection with a nil table.
func (d *Detector) Detect(raw string) Detection {
	text := trim(raw)
	if text == "" {
		return Detection{Format: Unknown}
	}
	log := d.log()
	for _, c := range candidates {
		if !c.match(text) {
			continue
		}
		t, sep, ok := c.parse(text)
		if !ok {
			log.Debug("candidate rejected", "format", c.format)
			continue
		}
		log.Debug("format detected", "format", c.format, "rows", len(t))
		return Detection{Format: c.format, Table: t, Separator: sep}
	}
	log.Debug("no format matched", "bytes", len(text))
	return Detection{Format: Unknown}
}

// Detect classifies raw with a detector that discards its logs.
func Detect(raw string) Detection {
	var d Detector
	return d.Detect(raw)
}

func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// lines splits text on '\n', dropping blank lines and one trailing '\r'.
func lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
