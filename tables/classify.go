package tables

import (
	"fmt"
	"strings"

	"github.com/tsawler/tabgrid/internal/textutil"
	"github.com/tsawler/tabgrid/model"
)

// RatioClassifier picks the first of the leading rows where the share of
// non-empty, non-label cells that are non-numeric exceeds config.HeaderRatio.
type RatioClassifier struct{}

// Name returns the classifier's identifier ("ratio").
func (RatioClassifier) Name() string { return "ratio" }

// HeaderIndex returns the header row index, falling back to 0.
func (RatioClassifier) HeaderIndex(mapped [][]string, config Config) int {
	for i := 0; i < len(mapped) && i < config.HeaderScanRows; i++ {
		filled, text := countTextCells(mapped[i])
		if filled == 0 {
			continue
		}
		if float64(text)/float64(filled) > config.HeaderRatio {
			return i
		}
	}
	return 0
}

// FirstNonNumericClassifier picks the first of the leading rows whose
// non-empty, non-label cells are all non-numeric.
type FirstNonNumericClassifier struct{}

// Name returns the classifier's identifier ("first-non-numeric").
func (FirstNonNumericClassifier) Name() string { return "first-non-numeric" }

// HeaderIndex returns the header row index, falling back to 0.
func (FirstNonNumericClassifier) HeaderIndex(mapped [][]string, config Config) int {
	for i := 0; i < len(mapped) && i < config.HeaderScanRows; i++ {
		filled, text := countTextCells(mapped[i])
		if filled > 0 && text == filled {
			return i
		}
	}
	return 0
}

// countTextCells counts the non-empty cells after the label column and how
// many of them are non-numeric.
func countTextCells(row []string) (filled, text int) {
	if len(row) < 2 {
		return 0, 0
	}
	for _, cell := range row[1:] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		filled++
		if !textutil.IsNumeric(cell) {
			text++
		}
	}
	return filled, text
}

// IsDataRow reports whether a mapped row below the header holds data. Rows
// with a missing or one-character label are rejected, as are rows whose
// label is text while fewer than config.MinNumericShare of the remaining
// cells are numeric; the latter are sub-section headings.
func IsDataRow(row []string, config Config) bool {
	if len(row) == 0 {
		return false
	}
	label := strings.TrimSpace(row[0])
	if textutil.Len(label) < 2 {
		return false
	}
	if textutil.IsNumeric(label) {
		return true
	}

	rest := row[1:]
	if len(rest) == 0 {
		return false
	}
	numeric := 0
	for _, cell := range rest {
		if textutil.IsNumeric(strings.TrimSpace(cell)) {
			numeric++
		}
	}
	return float64(numeric)/float64(len(rest)) >= config.MinNumericShare
}

// column pairs a mapped column index with its header text.
type column struct {
	index  int
	header string
}

// headerColumns names the non-label columns of the header row. Empty cells
// and generic "Column N" cells are left out. Repeated names get a numeric
// suffix so each header stays unique.
func headerColumns(header []string) []column {
	var cols []column
	var names model.HeaderNames
	for j := 1; j < len(header); j++ {
		name := strings.TrimSpace(header[j])
		if name == "" || model.IsPlaceholderHeader(name) {
			continue
		}
		cols = append(cols, column{index: j, header: names.Unique(name)})
	}
	return cols
}

// BuildTable turns a mapped segment into a table using headerIndex as the
// header row. It returns nil when no data row survives.
func BuildTable(index int, mapped [][]string, headerIndex int, config Config) *model.Table {
	if headerIndex < 0 || headerIndex >= len(mapped) {
		return nil
	}

	cols := headerColumns(mapped[headerIndex])
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.header
	}

	table := model.NewTable(index, fmt.Sprintf("Table %d", index+1), headers)
	for _, row := range mapped[headerIndex+1:] {
		if !IsDataRow(row, config) {
			continue
		}
		values := make(map[string]string)
		for _, c := range cols {
			if c.index >= len(row) {
				continue
			}
			if v := strings.TrimSpace(row[c.index]); v != "" {
				values[c.header] = v
			}
		}
		table.AddRow(strings.TrimSpace(row[0]), "", values)
	}

	if table.RowCount() == 0 {
		return nil
	}
	return table
}
