package tables

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/tabgrid/model"
)

func row(y float64, xs ...float64) model.Row {
	r := model.Row{Y: y}
	for _, x := range xs {
		r.Fragments = append(r.Fragments, frag("v", x, y))
	}
	return r
}

func TestTypicalColumnCount(t *testing.T) {
	tests := []struct {
		name    string
		lengths []int
		min     int
		want    int
	}{
		{"single length", []int{3, 3, 3}, 2, 3},
		{"most frequent", []int{3, 4, 4, 2}, 2, 4},
		{"tie keeps first seen", []int{3, 4, 4, 3}, 2, 3},
		{"short rows ignored", []int{1, 1, 1, 2}, 2, 2},
		{"none reach minimum", []int{1, 1}, 2, 0},
		{"no rows", nil, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rows []model.Row
			for i, n := range tt.lengths {
				xs := make([]float64, n)
				for j := range xs {
					xs[j] = float64(j * 100)
				}
				rows = append(rows, row(float64(i*20), xs...))
			}
			if got := TypicalColumnCount(rows, tt.min); got != tt.want {
				t.Errorf("TypicalColumnCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMedianDetector(t *testing.T) {
	rows := []model.Row{
		row(100, 20, 150, 220),
		row(120, 21, 152, 221),
		row(140, 19, 149, 260), // outlier in the last column
		row(160, 20, 185),      // merged cells, not consistent
	}

	anchors := MedianDetector{}.Detect(rows, DefaultConfig())
	want := []model.ColumnAnchor{20, 150, 221}
	if diff := cmp.Diff(want, anchors); diff != "" {
		t.Errorf("Detect() mismatch (-want +got):\n%s", diff)
	}
}

func TestMedianDetector_EvenCount(t *testing.T) {
	rows := []model.Row{row(0, 10, 100), row(20, 12, 104)}
	anchors := MedianDetector{}.Detect(rows, DefaultConfig())
	want := []model.ColumnAnchor{11, 102}
	if diff := cmp.Diff(want, anchors); diff != "" {
		t.Errorf("Detect() mismatch (-want +got):\n%s", diff)
	}
}

func TestMedianDetector_NoRowReachesMinimum(t *testing.T) {
	rows := []model.Row{row(0, 10), row(20, 100)}
	if anchors := (MedianDetector{}).Detect(rows, DefaultConfig()); len(anchors) != 0 {
		t.Errorf("Detect() = %v, want no anchors", anchors)
	}
}

func TestGapClusterDetector(t *testing.T) {
	rows := []model.Row{
		row(0, 20, 150, 300),
		row(20, 22, 151),
	}
	config := DefaultConfig()
	config.XTolerance = 15

	anchors := GapClusterDetector{}.Detect(rows, config)
	want := []model.ColumnAnchor{21, 150.5, 300}
	if diff := cmp.Diff(want, anchors); diff != "" {
		t.Errorf("Detect() mismatch (-want +got):\n%s", diff)
	}
}

func TestGapClusterDetector_Empty(t *testing.T) {
	if anchors := (GapClusterDetector{}).Detect(nil, DefaultConfig()); anchors != nil {
		t.Errorf("Detect(nil) = %v, want nil", anchors)
	}
}

func TestAutoDetector_FallsBackToGapClustering(t *testing.T) {
	// Every row has a single fragment, so the median strategy has nothing
	// to work with.
	rows := []model.Row{row(0, 20), row(20, 150), row(40, 22)}

	anchors := AutoDetector{}.Detect(rows, DefaultConfig())
	want := []model.ColumnAnchor{21, 150}
	if diff := cmp.Diff(want, anchors); diff != "" {
		t.Errorf("Detect() mismatch (-want +got):\n%s", diff)
	}
}

func TestAnchorsStrictlyAscending(t *testing.T) {
	rows := []model.Row{
		row(0, 20, 20, 150), // two fragments sharing an X
		row(20, 20, 20, 151),
		row(40, 5, 90, 91, 400),
	}
	config := DefaultConfig()
	for _, d := range []ColumnDetector{MedianDetector{}, GapClusterDetector{}, AutoDetector{}} {
		anchors := d.Detect(rows, config)
		for i := 1; i < len(anchors); i++ {
			if anchors[i] <= anchors[i-1] {
				t.Errorf("%s anchors not strictly ascending: %v", d.Name(), anchors)
				break
			}
		}
	}
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	if m := median(values); m != 2 {
		t.Errorf("median() = %v, want 2", m)
	}
	if values[0] != 3 {
		t.Error("median() reordered its input")
	}
	if median(nil) != 0 || mean(nil) != 0 {
		t.Error("median/mean of empty input should be 0")
	}
}
