package calibrate

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/tabgrid/model"
)

func rawRows() []model.RawRow {
	return []model.RawRow{
		{Y: 80, Cells: []string{"Nutrition Information"}},
		{Y: 100, Cells: []string{"Calories", "Item", "Fat"}},
		{Y: 115, Cells: []string{"290", "Cheese Pizza", "12"}},
		{Y: 130, Cells: []string{"Toppings"}},
		{Y: 145, Cells: []string{"40", "Pepperoni"}},
	}
}

func TestProject(t *testing.T) {
	table, err := Project(rawRows(), 1, 1)
	if err != nil {
		t.Fatalf("Project() failed: %v", err)
	}

	if diff := cmp.Diff([]string{"Calories", "Fat"}, table.Headers); diff != "" {
		t.Errorf("Headers mismatch (-want +got):\n%s", diff)
	}

	type row struct {
		Label  string
		Values map[string]string
	}
	var got []row
	for _, r := range table.Rows {
		got = append(got, row{r.Label, r.Values})
	}
	want := []row{
		{"Cheese Pizza", map[string]string{"Calories": "290", "Fat": "12"}},
		{"", map[string]string{"Calories": "Toppings", "Fat": ""}},
		{"Pepperoni", map[string]string{"Calories": "40", "Fat": ""}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
	if err := table.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestProject_DuplicateHeaders(t *testing.T) {
	raw := []model.RawRow{
		{Y: 100, Cells: []string{"Item", "Fat", "Fat", ""}},
		{Y: 115, Cells: []string{"Pizza", "1", "2", "3"}},
	}
	table, err := Project(raw, 0, 0)
	if err != nil {
		t.Fatalf("Project() failed: %v", err)
	}

	if diff := cmp.Diff([]string{"Fat", "Fat (2)", "Column 4"}, table.Headers); diff != "" {
		t.Errorf("Headers mismatch (-want +got):\n%s", diff)
	}
	want := map[string]string{"Fat": "1", "Fat (2)": "2", "Column 4": "3"}
	if diff := cmp.Diff(want, table.Rows[0].Values); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
	if got := table.ToMarkdown(); !strings.Contains(got, "| Pizza | 1 | 2 | 3 |") {
		t.Errorf("ToMarkdown() = %q, want every cell once", got)
	}
}

func TestProject_LastRowAsHeader(t *testing.T) {
	raw := rawRows()
	table, err := Project(raw, len(raw)-1, 0)
	if err != nil {
		t.Fatalf("Project() failed: %v", err)
	}
	if table.RowCount() != 0 {
		t.Errorf("RowCount() = %d, want 0", table.RowCount())
	}
}

func TestProject_OutOfRange(t *testing.T) {
	tests := []struct {
		name        string
		headerRow   int
		labelColumn int
		want        error
	}{
		{"negative header row", -1, 0, ErrHeaderRowOutOfRange},
		{"header row past end", 5, 0, ErrHeaderRowOutOfRange},
		{"negative label column", 1, -1, ErrLabelColumnOutOfRange},
		{"label column past header width", 1, 3, ErrLabelColumnOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Project(rawRows(), tt.headerRow, tt.labelColumn)
			if !errors.Is(err, tt.want) {
				t.Errorf("Project() error = %v, want %v", err, tt.want)
			}
			if table != nil {
				t.Error("Project() should return a nil table on error")
			}
		})
	}
}

func TestProject_Empty(t *testing.T) {
	if _, err := Project(nil, 0, 0); !errors.Is(err, ErrHeaderRowOutOfRange) {
		t.Errorf("Project(nil) error = %v, want ErrHeaderRowOutOfRange", err)
	}
}
