package tabconv

import "strings"

func looksLikeTSV(text string) bool { return strings.Contains(text, "\t") }

// parseTSV accepts any tab-bearing text. Column counts are not checked.
func parseTSV(text string) (Table, rune, bool) {
	var t Table
	for _, line := range lines(text) {
		t = append(t, strings.Split(line, "\t"))
	}
	return t, 0, len(t) > 0
}
