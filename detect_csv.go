package tabconv

import "strings"

// separators are tried in order; the first wins a tie.
var separators = []rune{',', ';', '|', '\t'}

// parseDelimited is the fallback for CSV-like text. The separator is chosen
// from the first line alone, then every line is scanned with it. The result
// is accepted when rows average at least two fields.
func parseDelimited(text string) (Table, rune, bool) {
	ls := lines(text)
	if len(ls) == 0 {
		return nil, 0, false
	}
	sep := chooseSeparator(ls[0])
	t := make(Table, len(ls))
	fields := 0
	for i, line := range ls {
		t[i] = splitQuoted(line, sep)
		fields += len(t[i])
	}
	if float64(fields)/float64(len(t)) < 2 {
		return nil, 0, false
	}
	return t, sep, true
}

// chooseSeparator counts plain, quote-unaware splits of line.
func chooseSeparator(line string) rune {
	best, most := separators[0], 0
	for _, sep := range separators {
		if n := strings.Count(line, string(sep)) + 1; n > most {
			best, most = sep, n
		}
	}
	return best
}

// splitQuoted splits line on sep outside double quotes. A doubled quote inside
// a quoted run emits one literal quote. Each field is trimmed and loses one
// wrapping pair of quotes.
func splitQuoted(line string, sep rune) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case r == sep && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())
	for i, f := range fields {
		fields[i] = unquote(strings.TrimSpace(f))
	}
	return fields
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
