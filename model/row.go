package model

import "math"

// Row is an ordered group of fragments believed to share one vertical band.
// Fragments are sorted ascending by X.
type Row struct {
	// Y is the representative Y of the row (the mean of its fragments' Y).
	Y         float64
	Fragments []TextFragment
}

// Len returns the number of fragments in the row.
func (r Row) Len() int {
	return len(r.Fragments)
}

// MinY returns the smallest fragment Y in the row, or 0 for an empty row.
func (r Row) MinY() float64 {
	if len(r.Fragments) == 0 {
		return 0
	}
	min := math.Inf(1)
	for _, f := range r.Fragments {
		if f.Y < min {
			min = f.Y
		}
	}
	return min
}

// Texts returns the fragment texts in left-to-right order.
func (r Row) Texts() []string {
	texts := make([]string, len(r.Fragments))
	for i, f := range r.Fragments {
		texts[i] = f.Text
	}
	return texts
}

// XPositions returns the fragment X positions in left-to-right order.
func (r Row) XPositions() []float64 {
	xs := make([]float64, len(r.Fragments))
	for i, f := range r.Fragments {
		xs[i] = f.X
	}
	return xs
}

// ColumnAnchor is an inferred canonical X position of a table column.
type ColumnAnchor float64

// RawRow is a row flattened to ordered cell strings, independent of column
// anchor inference. It is the input of the calibration path.
type RawRow struct {
	Y     float64  `json:"y"`
	Cells []string `json:"cells"`
}

// Cell returns the cell at index i, or "" when the row is shorter.
func (r RawRow) Cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}
