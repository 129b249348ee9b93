package tables

import (
	"math"
	"strings"

	"github.com/tsawler/tabgrid/model"
)

// MapCells assigns each fragment of row to the anchor nearest its X and
// returns one cell per anchor. Fragments sharing an anchor are joined with
// a single space in left-to-right order; on an exact tie the leftmost anchor
// wins. There is no distance cap, so a stray fragment is still placed in
// its nearest column.
func MapCells(row model.Row, anchors []model.ColumnAnchor) []string {
	if len(anchors) == 0 {
		return nil
	}

	parts := make([][]string, len(anchors))
	for _, frag := range row.Fragments {
		col := nearestAnchor(frag.X, anchors)
		parts[col] = append(parts[col], frag.Text)
	}

	cells := make([]string, len(anchors))
	for i, p := range parts {
		cells[i] = strings.Join(p, " ")
	}
	return cells
}

// MapRows applies MapCells to every row.
func MapRows(rows []model.Row, anchors []model.ColumnAnchor) [][]string {
	mapped := make([][]string, len(rows))
	for i, row := range rows {
		mapped[i] = MapCells(row, anchors)
	}
	return mapped
}

// nearestAnchor returns the index of the anchor closest to x.
func nearestAnchor(x float64, anchors []model.ColumnAnchor) int {
	best := 0
	bestDist := math.Abs(x - float64(anchors[0]))
	for i := 1; i < len(anchors); i++ {
		if d := math.Abs(x - float64(anchors[i])); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
