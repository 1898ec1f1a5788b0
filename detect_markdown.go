package tabconv

import (
	"regexp"
	"strings"
)

var dividerCell = regexp.MustCompile(`^:?-+:?$`)

func looksLikeMarkdown(text string) bool { return strings.Contains(text, "|") }

// parseMarkdown keeps the pipe-led lines of text and drops the header/body
// divider. Lines not starting with '|' are ignored.
func parseMarkdown(text string) (Table, rune, bool) {
	var t Table
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") {
			continue
		}
		line = strings.TrimPrefix(line, "|")
		if strings.HasSuffix(line, "|") {
			line = strings.TrimSpace(strings.TrimSuffix(line, "|"))
		}
		cells := strings.Split(line, "|")
		for i, c := range cells {
			cells[i] = strings.TrimSpace(c)
		}
		if isDivider(cells) {
			continue
		}
		t = append(t, cells)
	}
	return t, 0, len(t) > 0
}

func isDivider(cells []string) bool {
	for _, c := range cells {
		if !dividerCell.MatchString(c) {
			return false
		}
	}
	return true
}
