package export

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/tabgrid/model"
)

// HTML writes each table as an HTML table element. Row labels are row
// header cells; sections are kept in a data-section attribute.
func HTML(w io.Writer, tables []*model.Table) error {
	for _, t := range tables {
		if err := html.Render(w, tableNode(t)); err != nil {
			return fmt.Errorf("html render: %w", err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func tableNode(t *model.Table) *html.Node {
	table := element(atom.Table, html.Attribute{Key: "data-table-id", Val: t.ID})
	if t.Name != "" {
		caption := element(atom.Caption)
		caption.AppendChild(text(t.Name))
		table.AppendChild(caption)
	}

	thead := element(atom.Thead)
	tr := element(atom.Tr)
	tr.AppendChild(element(atom.Th))
	for _, h := range t.Headers {
		th := element(atom.Th, html.Attribute{Key: "scope", Val: "col"})
		th.AppendChild(text(h))
		tr.AppendChild(th)
	}
	thead.AppendChild(tr)
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, r := range t.Rows {
		var attrs []html.Attribute
		if r.Section != "" {
			attrs = append(attrs, html.Attribute{Key: "data-section", Val: r.Section})
		}
		tr := element(atom.Tr, attrs...)
		th := element(atom.Th, html.Attribute{Key: "scope", Val: "row"})
		th.AppendChild(text(r.Label))
		tr.AppendChild(th)
		for _, h := range t.Headers {
			td := element(atom.Td)
			if v, ok := r.Values[h]; ok {
				td.AppendChild(text(v))
			}
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)
	return table
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// ReadHTML parses the tables of an HTML document back into tables. The
// first row of each table supplies the headers and every later row's first
// cell is its label. Empty cells are treated as absent values.
func ReadHTML(r io.Reader) ([]*model.Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("html parse: %w", err)
	}

	var tables []*model.Table
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Table {
			if t := parseTable(n, len(tables)); t != nil {
				tables = append(tables, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return tables, nil
}

type parsedRow struct {
	section string
	cells   []string
}

// parseTable reads one table element. It returns nil for a table without
// rows.
func parseTable(n *html.Node, index int) *model.Table {
	var name string
	var rows []parsedRow

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Caption:
			name = textContent(c)
		case atom.Thead, atom.Tbody, atom.Tfoot:
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && tr.DataAtom == atom.Tr {
					rows = append(rows, parseRow(tr))
				}
			}
		case atom.Tr:
			rows = append(rows, parseRow(c))
		}
	}
	if len(rows) == 0 {
		return nil
	}

	var headers []string
	if len(rows[0].cells) > 1 {
		headers = rows[0].cells[1:]
	}
	table := model.NewTable(index, name, headers)
	for _, row := range rows[1:] {
		if len(row.cells) == 0 {
			continue
		}
		values := make(map[string]string)
		for i, h := range headers {
			if i+1 < len(row.cells) && row.cells[i+1] != "" {
				values[h] = row.cells[i+1]
			}
		}
		table.AddRow(row.cells[0], row.section, values)
	}
	return table
}

func parseRow(tr *html.Node) parsedRow {
	row := parsedRow{section: attr(tr, "data-section")}
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
			row.cells = append(row.cells, textContent(c))
		}
	}
	return row
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent extracts all text content from a node and its descendants.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var rec func(*html.Node)
	rec = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	rec(n)
	return strings.TrimSpace(sb.String())
}
