package tables

import "github.com/tsawler/tabgrid/model"

// Segment splits rows into independent tables. A new segment starts when
// the distance between the top of a row and the top of the previous row is
// strictly greater than gapThreshold. Segments with fewer than minRows rows
// are dropped.
func Segment(rows []model.Row, gapThreshold float64, minRows int) [][]model.Row {
	if len(rows) == 0 {
		return nil
	}

	var segments [][]model.Row
	flush := func(seg []model.Row) {
		if len(seg) >= minRows {
			segments = append(segments, seg)
		}
	}

	current := []model.Row{rows[0]}
	for i := 1; i < len(rows); i++ {
		gap := rows[i].MinY() - rows[i-1].MinY()
		if gap > gapThreshold {
			flush(current)
			current = []model.Row{rows[i]}
			continue
		}
		current = append(current, rows[i])
	}
	flush(current)

	return segments
}
