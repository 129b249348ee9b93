package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownHeader is returned by Validate when a row carries a value for
// a column that is not one of the table's headers.
var ErrUnknownHeader = errors.New("row value keyed by unknown header")

// Table is a reconstructed table. Headers never include the label column.
type Table struct {
	ID      string      `json:"id"`
	Name    string      `json:"name,omitempty"`
	Headers []string    `json:"headers"`
	Rows    []RowRecord `json:"rows"`
}

// RowRecord is one data row of a Table. Label is the text of the label
// column; Values maps header text to cell text.
type RowRecord struct {
	ID      string            `json:"id"`
	Label   string            `json:"label"`
	Section string            `json:"section,omitempty"`
	Values  map[string]string `json:"values"`
}

// NewTable creates a table with the given headers and a stable ID.
func NewTable(index int, name string, headers []string) *Table {
	return &Table{
		ID:      TableID(index, headers),
		Name:    name,
		Headers: headers,
		Rows:    make([]RowRecord, 0),
	}
}

// AddRow appends a row with the given label and values, assigning it a
// stable ID derived from the table's ID.
func (t *Table) AddRow(label, section string, values map[string]string) {
	if values == nil {
		values = make(map[string]string)
	}
	t.Rows = append(t.Rows, RowRecord{
		ID:      RowID(t.ID, len(t.Rows), label),
		Label:   label,
		Section: section,
		Values:  values,
	})
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// HeaderIndex returns the position of header in Headers, or -1.
func (t *Table) HeaderIndex(header string) int {
	for i, h := range t.Headers {
		if h == header {
			return i
		}
	}
	return -1
}

// FindRow returns the first row with the given label.
func (t *Table) FindRow(label string) (RowRecord, bool) {
	for _, r := range t.Rows {
		if r.Label == label {
			return r, true
		}
	}
	return RowRecord{}, false
}

// Value answers a point query: the cell for header in the row labelled
// label. It reports false when the row or the cell is absent.
func (t *Table) Value(label, header string) (string, bool) {
	row, ok := t.FindRow(label)
	if !ok {
		return "", false
	}
	v, ok := row.Values[header]
	return v, ok
}

// Validate checks that every row value is keyed by one of the headers.
func (t *Table) Validate() error {
	known := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		known[h] = true
	}
	for _, r := range t.Rows {
		for k := range r.Values {
			if !known[k] {
				return fmt.Errorf("row %q: %w: %q", r.Label, ErrUnknownHeader, k)
			}
		}
	}
	return nil
}

// Grid returns the table as a rectangular string grid: a header line with
// an empty label cell followed by one line per row.
func (t *Table) Grid() [][]string {
	grid := make([][]string, 0, len(t.Rows)+1)

	head := make([]string, 0, len(t.Headers)+1)
	head = append(head, "")
	head = append(head, t.Headers...)
	grid = append(grid, head)

	for _, r := range t.Rows {
		line := make([]string, 0, len(t.Headers)+1)
		line = append(line, r.Label)
		for _, h := range t.Headers {
			line = append(line, r.Values[h])
		}
		grid = append(grid, line)
	}
	return grid
}

// GetText returns the table as tab-separated lines.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Grid() {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToMarkdown converts the table to markdown format
func (t *Table) ToMarkdown() string {
	grid := t.Grid()
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	var sb strings.Builder

	writeLine := func(cells []string) {
		for _, cell := range cells {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell, "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	// Header row
	writeLine(grid[0])

	// Separator
	for range grid[0] {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")

	// Data rows
	for _, line := range grid[1:] {
		writeLine(line)
	}

	return sb.String()
}

// ToCSV converts the table to CSV format
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Grid() {
		for j, text := range row {
			// Escape quotes and wrap in quotes if necessary
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
