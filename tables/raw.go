package tables

import (
	"strings"

	"github.com/tsawler/tabgrid/model"
)

// RawRows groups fragments into rows and flattens each row to strings
// without inferring column anchors. Neighbouring fragments whose horizontal
// gap is at most config.CellMergeGap are merged into one cell, so a word
// split into runs by kerning stays one cell.
func RawRows(fragments []model.TextFragment, config Config) []model.RawRow {
	rows := GroupRows(fragments, config.YTolerance)
	raw := make([]model.RawRow, 0, len(rows))
	for _, row := range rows {
		raw = append(raw, model.RawRow{
			Y:     model.Round2(row.Y),
			Cells: mergeCells(row.Fragments, config.CellMergeGap),
		})
	}
	return raw
}

// mergeCells joins X-ordered fragments that nearly touch. The gap is
// measured from the right edge of everything merged so far, so a long run
// that overlaps its successor never opens a new cell.
func mergeCells(fragments []model.TextFragment, maxGap float64) []string {
	if len(fragments) == 0 {
		return nil
	}

	var cells []string
	current := []string{fragments[0].Text}
	extent := fragments[0].BBox()

	for _, frag := range fragments[1:] {
		box := frag.BBox()
		if box.Left()-extent.Right() > maxGap {
			cells = append(cells, strings.Join(current, " "))
			current = []string{frag.Text}
			extent = box
			continue
		}
		current = append(current, frag.Text)
		extent = extent.Union(box)
	}
	return append(cells, strings.Join(current, " "))
}
