package tabconv

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls the border characters of the [Pretty] table.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[string]BorderStyle{
	"rounded": BorderRounded,
	"none":    BorderNone,
	"ascii":   BorderASCII,
	"heavy":   BorderHeavy,
	"double":  BorderDouble,
}

// ParseBorder parses a border style name.
func ParseBorder(s string) (BorderStyle, error) {
	b, ok := borderNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("%w: border %q", ErrUnsupportedFormat, s)
	}
	return b, nil
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// WriteTable renders t as a terminal table with the given border. Columns are
// padded to the display width of their widest cell; short rows are padded
// with empty cells.
func WriteTable(w io.Writer, t Table, style BorderStyle) error {
	if t.Empty() {
		return ErrNoContent
	}
	return writeTable(w, t, style)
}

func writeTable(w io.Writer, t Table, style BorderStyle) error {
	widths := computeWidths(t)
	var out []string
	if style == BorderNone {
		out = plainTable(t, widths)
	} else {
		bc, ok := borderSets[style]
		if !ok {
			bc = borderSets[BorderRounded]
		}
		out = borderedTable(t, widths, bc)
	}
	_, err := io.WriteString(w, strings.Join(out, "\n"))
	return err
}

func computeWidths(t Table) []int {
	widths := make([]int, t.Width())
	for _, row := range t {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// --- Plain table (BorderNone) ---

func plainTable(t Table, widths []int) []string {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	out := []string{plainRow(t, 0, widths), strings.Join(sep, "  ")}
	for r := 1; r < len(t); r++ {
		out = append(out, plainRow(t, r, widths))
	}
	return out
}

func plainRow(t Table, r int, widths []int) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = padCell(t.Cell(r, i), width)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// --- Bordered table ---

func borderedTable(t Table, widths []int, bc borderChars) []string {
	out := []string{
		hLine(widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight),
		borderedRow(t, 0, widths, bc.vertical),
	}
	if len(t) > 1 {
		out = append(out, hLine(widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee))
	}
	for r := 1; r < len(t); r++ {
		out = append(out, borderedRow(t, r, widths, bc.vertical))
	}
	return append(out, hLine(widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight))
}

func hLine(widths []int, left, fill, mid, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	return sb.String()
}

func borderedRow(t Table, r int, widths []int, vert string) string {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(padCell(t.Cell(r, i), width))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	return sb.String()
}

func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
