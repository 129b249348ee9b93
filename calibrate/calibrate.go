// Package calibrate builds a table from raw rows using a header row and a
// label column chosen by a person, with no geometric inference.
//
// It is the supervised counterpart of the heuristics in package tables:
// when header detection picks the wrong row, a user inspects the raw rows
// and names the right indices.
//
//	raw := tables.RawRows(fragments, tables.DefaultConfig())
//	table, err := calibrate.Project(raw, 2, 0)
package calibrate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/tabgrid/model"
)

var (
	// ErrHeaderRowOutOfRange is returned when the header row index does not
	// name one of the raw rows.
	ErrHeaderRowOutOfRange = errors.New("header row index out of range")

	// ErrLabelColumnOutOfRange is returned when the label column index does
	// not name a cell of the header row.
	ErrLabelColumnOutOfRange = errors.New("label column index out of range")
)

// Project builds a table whose headers are the cells of raw[headerRow]
// except the label column, and whose rows are every later raw row. Each
// row's label is its cell at labelColumn; its values pair the headers with
// the cells at the same positions. Missing cells become empty strings.
//
// Every header cell keeps its column: an empty cell is named by its
// position ("Column N", counting from 1) and a repeated text gets a " (n)"
// suffix, so no two columns share a value key.
func Project(raw []model.RawRow, headerRow, labelColumn int) (*model.Table, error) {
	if headerRow < 0 || headerRow >= len(raw) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrHeaderRowOutOfRange, headerRow, len(raw))
	}
	header := raw[headerRow]
	if labelColumn < 0 || labelColumn >= len(header.Cells) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrLabelColumnOutOfRange, labelColumn, len(header.Cells))
	}

	var positions []int
	var headers []string
	var names model.HeaderNames
	for i, cell := range header.Cells {
		if i == labelColumn {
			continue
		}
		name := strings.TrimSpace(cell)
		if name == "" {
			name = model.PlaceholderHeader(i)
		}
		positions = append(positions, i)
		headers = append(headers, names.Unique(name))
	}

	table := model.NewTable(0, "Calibrated", headers)
	for _, row := range raw[headerRow+1:] {
		values := make(map[string]string, len(headers))
		for k, pos := range positions {
			values[headers[k]] = strings.TrimSpace(row.Cell(pos))
		}
		table.AddRow(strings.TrimSpace(row.Cell(labelColumn)), "", values)
	}
	return table, nil
}
