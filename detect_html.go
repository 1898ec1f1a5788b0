package tabconv

import (
	"iter"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var htmlMarkers = []string{"<table", "<tr", "<td", "<th"}

func looksLikeHTML(text string) bool {
	for _, m := range htmlMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// parseHTML parses text as the inner HTML of a <div>, the way a browser
// treats pasted markup, and collects the cells of every <tr> in document
// order. Cells of nested tables are collected by each enclosing row too.
func parseHTML(text string) (Table, rune, bool) {
	div := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(text), div)
	if err != nil {
		return nil, 0, false
	}
	var t Table
	for _, n := range nodes {
		for tr := range descendants(n) {
			if tr.Type != html.ElementNode || tr.DataAtom != atom.Tr {
				continue
			}
			row := []string{}
			for cell := range descendants(tr) {
				if cell == tr || cell.Type != html.ElementNode {
					continue
				}
				if cell.DataAtom == atom.Th || cell.DataAtom == atom.Td {
					row = append(row, strings.TrimSpace(textContent(cell)))
				}
			}
			t = append(t, row)
		}
	}
	if len(t) == 0 {
		return nil, 0, false
	}
	return t, 0, true
}

// descendants yields n and every node below it in document order.
func descendants(n *html.Node) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		walk(n, yield)
	}
}

func walk(n *html.Node, yield func(*html.Node) bool) bool {
	if !yield(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, yield) {
			return false
		}
	}
	return true
}

// textContent concatenates every text node below n.
func textContent(n *html.Node) string {
	var sb strings.Builder
	for d := range descendants(n) {
		if d.Type == html.TextNode {
			sb.WriteString(d.Data)
		}
	}
	return sb.String()
}
