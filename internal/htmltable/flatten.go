// Package htmltable flattens HTML documents into the line-oriented table
// markup the extraction cascade understands. Tables become TABLE blocks
// with a HEADER line and one ROW line per data row; remaining text nodes
// are appended as plain lines.
package htmltable

import (
	"strings"

	"golang.org/x/net/html"
)

// Flatten parses the HTML fragment and renders it as marked-up plain text.
// Unparseable input yields an empty string; the caller still has the plain
// text of the document.
func Flatten(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	walk(doc, &sb)
	return strings.TrimSpace(sb.String())
}

func walk(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && n.Data == "table" {
		renderTable(n, sb)
		return
	}
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "head":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, sb)
	}
}

func renderTable(table *html.Node, sb *strings.Builder) {
	sb.WriteString("TABLE:\n")
	for _, row := range collectRows(table) {
		cells, header := rowCells(row)
		if len(cells) == 0 {
			continue
		}
		marker := "ROW: "
		if header {
			marker = "HEADER: "
		}
		sb.WriteString(marker)
		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func collectRows(n *html.Node) []*html.Node {
	var rows []*html.Node
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			rows = append(rows, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return rows
}

// rowCells extracts cell texts from a tr. The row counts as a header when
// every cell is a th.
func rowCells(tr *html.Node) (cells []string, header bool) {
	header = true
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "th":
			cells = append(cells, nodeText(c))
		case "td":
			header = false
			cells = append(cells, nodeText(c))
		}
	}
	if len(cells) == 0 {
		header = false
	}
	return cells, header
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
