package tables

import (
	"math"
	"sort"

	"github.com/tsawler/tabgrid/model"
)

// GroupRows clusters fragments into rows. Fragments are walked top to
// bottom; one joins the current row while its Y is within yTolerance of
// the row's running mean Y. Each row is returned sorted ascending by X.
func GroupRows(fragments []model.TextFragment, yTolerance float64) []model.Row {
	if len(fragments) == 0 {
		return nil
	}

	sorted := make([]model.TextFragment, len(fragments))
	copy(sorted, fragments)

	// Sort by Y position (top to bottom), left to right within equal Y
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows []model.Row
	current := []model.TextFragment{sorted[0]}
	sumY := sorted[0].Y
	meanY := sorted[0].Y

	for _, frag := range sorted[1:] {
		if math.Abs(frag.Y-meanY) <= yTolerance {
			current = append(current, frag)
			sumY += frag.Y
			meanY = sumY / float64(len(current))
			continue
		}

		rows = append(rows, closeRow(current, meanY))
		current = []model.TextFragment{frag}
		sumY = frag.Y
		meanY = frag.Y
	}

	return append(rows, closeRow(current, meanY))
}

// closeRow orders a finished row left to right.
func closeRow(fragments []model.TextFragment, meanY float64) model.Row {
	sort.SliceStable(fragments, func(i, j int) bool {
		return fragments[i].X < fragments[j].X
	})
	return model.Row{Y: meanY, Fragments: fragments}
}

// FlattenRows returns the fragments of rows in row order.
func FlattenRows(rows []model.Row) []model.TextFragment {
	var out []model.TextFragment
	for _, r := range rows {
		out = append(out, r.Fragments...)
	}
	return out
}
