package tables

import (
	"sort"

	"github.com/tsawler/tabgrid/model"
)

// MedianDetector places each column anchor at the median X of that column
// position across the rows whose length equals the typical column count.
// Rows with merged or split cells do not have the typical length and so do
// not skew the anchors.
type MedianDetector struct{}

// Name returns the detector's identifier ("median").
func (MedianDetector) Name() string { return "median" }

// Detect returns the median anchors, or nil when no row has at least
// config.MinColumns fragments.
func (MedianDetector) Detect(rows []model.Row, config Config) []model.ColumnAnchor {
	typical := TypicalColumnCount(rows, config.MinColumns)
	if typical == 0 {
		return nil
	}

	var consistent []model.Row
	for _, row := range rows {
		if row.Len() == typical {
			consistent = append(consistent, row)
		}
	}
	if len(consistent) == 0 {
		return nil
	}

	anchors := make([]model.ColumnAnchor, 0, typical)
	column := make([]float64, len(consistent))
	for i := 0; i < typical; i++ {
		for j, row := range consistent {
			column[j] = row.Fragments[i].X
		}
		anchors = append(anchors, model.ColumnAnchor(median(column)))
	}

	return strictlyAscending(anchors)
}

// GapClusterDetector sorts every fragment X on the page segment and starts a
// new column wherever two consecutive positions are more than
// config.XTolerance apart. Each anchor is the rounded mean of its cluster.
type GapClusterDetector struct{}

// Name returns the detector's identifier ("gap").
func (GapClusterDetector) Name() string { return "gap" }

// Detect returns one anchor per cluster in ascending X order.
func (GapClusterDetector) Detect(rows []model.Row, config Config) []model.ColumnAnchor {
	var xs []float64
	for _, row := range rows {
		xs = append(xs, row.XPositions()...)
	}
	if len(xs) == 0 {
		return nil
	}
	sort.Float64s(xs)

	var anchors []model.ColumnAnchor
	cluster := []float64{xs[0]}
	for _, x := range xs[1:] {
		if x-cluster[len(cluster)-1] <= config.XTolerance {
			cluster = append(cluster, x)
			continue
		}
		anchors = append(anchors, model.ColumnAnchor(model.Round2(mean(cluster))))
		cluster = []float64{x}
	}
	anchors = append(anchors, model.ColumnAnchor(model.Round2(mean(cluster))))

	return strictlyAscending(anchors)
}

// AutoDetector runs MedianDetector and falls back to GapClusterDetector when
// the median strategy finds no anchors.
type AutoDetector struct{}

// Name returns the detector's identifier ("auto").
func (AutoDetector) Name() string { return "auto" }

// Detect returns the median anchors, or the gap-clustered ones as fallback.
func (AutoDetector) Detect(rows []model.Row, config Config) []model.ColumnAnchor {
	if anchors := (MedianDetector{}).Detect(rows, config); len(anchors) > 0 {
		return anchors
	}
	return GapClusterDetector{}.Detect(rows, config)
}

// TypicalColumnCount returns the most frequent row length among rows with at
// least minColumns fragments, or 0 when there is none. On a tie the length
// seen first wins.
func TypicalColumnCount(rows []model.Row, minColumns int) int {
	counts := make(map[int]int)
	var order []int
	for _, row := range rows {
		n := row.Len()
		if n < minColumns || n == 0 {
			continue
		}
		if counts[n] == 0 {
			order = append(order, n)
		}
		counts[n]++
	}

	best, bestCount := 0, 0
	for _, n := range order {
		if counts[n] > bestCount {
			best, bestCount = n, counts[n]
		}
	}
	return best
}

// strictlyAscending drops anchors that are not greater than their
// predecessor, which happens when fragments of different columns share an X.
func strictlyAscending(anchors []model.ColumnAnchor) []model.ColumnAnchor {
	if len(anchors) == 0 {
		return anchors
	}
	out := anchors[:1]
	for _, a := range anchors[1:] {
		if a > out[len(out)-1] {
			out = append(out, a)
		}
	}
	return out
}

// median computes the median of values without reordering the input.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// mean computes the arithmetic mean of a slice of float64 values.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
