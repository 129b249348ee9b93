package tables

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRatioClassifier(t *testing.T) {
	config := DefaultConfig()

	tests := []struct {
		name   string
		mapped [][]string
		want   int
	}{
		{
			name: "header first",
			mapped: [][]string{
				{"Item", "Calories", "Fat"},
				{"Cheese Pizza", "290", "12g"},
			},
			want: 0,
		},
		{
			name: "title row above header",
			mapped: [][]string{
				{"Nutrition", "", ""},
				{"Item", "Calories", "Fat"},
				{"Cheese Pizza", "290", "12"},
			},
			want: 1,
		},
		{
			// "12g" is not numeric, so the data row sits exactly at 0.5,
			// which does not exceed the ratio.
			name: "half text is not enough",
			mapped: [][]string{
				{"Cheese Pizza", "290", "12g"},
				{"Item", "Calories", "Fat"},
			},
			want: 1,
		},
		{
			name: "no header falls back to zero",
			mapped: [][]string{
				{"A", "1", "2"},
				{"B", "3", "4"},
			},
			want: 0,
		},
		{
			name: "header beyond scan window",
			mapped: [][]string{
				{"a", "1"}, {"b", "2"}, {"c", "3"}, {"d", "4"}, {"e", "5"},
				{"Item", "Calories"},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (RatioClassifier{}).HeaderIndex(tt.mapped, config); got != tt.want {
				t.Errorf("HeaderIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFirstNonNumericClassifier(t *testing.T) {
	mapped := [][]string{
		{"", "Menu", "12g", "3"},
		{"Item", "Calories", "Fat", "Sodium"},
		{"Cheese Pizza", "290", "12", "640"},
	}
	config := DefaultConfig()

	if got := (RatioClassifier{}).HeaderIndex(mapped, config); got != 0 {
		t.Errorf("RatioClassifier.HeaderIndex() = %d, want 0", got)
	}
	if got := (FirstNonNumericClassifier{}).HeaderIndex(mapped, config); got != 1 {
		t.Errorf("FirstNonNumericClassifier.HeaderIndex() = %d, want 1", got)
	}
	if got := (FirstNonNumericClassifier{}).HeaderIndex(mapped[2:], config); got != 0 {
		t.Errorf("FirstNonNumericClassifier.HeaderIndex() fallback = %d, want 0", got)
	}
}

func TestIsDataRow(t *testing.T) {
	config := DefaultConfig()

	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"regular data row", []string{"Cheese Pizza", "290", "12"}, true},
		{"one numeric of three", []string{"Cheese Pizza", "290", "12g", "<1"}, true},
		{"sub-section heading", []string{"Toppings", "", ""}, false},
		{"text row with few numbers", []string{"Note", "see", "below", "later", "1"}, false},
		{"empty label", []string{"", "290", "12"}, false},
		{"one character label", []string{"A", "290", "12"}, false},
		{"numeric label kept", []string{"12", "", ""}, true},
		{"label only", []string{"Cheese Pizza"}, false},
		{"empty row", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDataRow(tt.row, config); got != tt.want {
				t.Errorf("IsDataRow(%q) = %v, want %v", tt.row, got, tt.want)
			}
		})
	}
}

func TestBuildTable(t *testing.T) {
	mapped := [][]string{
		{"Item", "Calories", "Column 3", "Fat", ""},
		{"Cheese Pizza", "290", "7", "12", "1"},
		{"Toppings", "", "", "", ""},
		{"Pepperoni", "40", "", "3.5", ""},
	}

	table := BuildTable(0, mapped, 0, DefaultConfig())
	if table == nil {
		t.Fatal("BuildTable() returned nil")
	}

	if diff := cmp.Diff([]string{"Calories", "Fat"}, table.Headers); diff != "" {
		t.Errorf("Headers mismatch (-want +got):\n%s", diff)
	}
	if table.RowCount() != 2 {
		t.Fatalf("RowCount() = %d, want 2", table.RowCount())
	}

	want := map[string]string{"Calories": "40", "Fat": "3.5"}
	if diff := cmp.Diff(want, table.Rows[1].Values); diff != "" {
		t.Errorf("Pepperoni values mismatch (-want +got):\n%s", diff)
	}
	if _, ok := table.Rows[0].Values["Column 3"]; ok {
		t.Error("placeholder column must not appear in values")
	}
	if err := table.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if table.Name != "Table 1" {
		t.Errorf("Name = %q, want %q", table.Name, "Table 1")
	}
}

func TestBuildTable_DuplicateHeaders(t *testing.T) {
	mapped := [][]string{
		{"Item", "Fat", "% DV", "Sodium", "% DV"},
		{"Cheese Pizza", "12", "15", "640", "27"},
	}
	table := BuildTable(0, mapped, 0, DefaultConfig())
	if table == nil {
		t.Fatal("BuildTable() returned nil")
	}
	want := []string{"Fat", "% DV", "Sodium", "% DV (2)"}
	if diff := cmp.Diff(want, table.Headers); diff != "" {
		t.Errorf("Headers mismatch (-want +got):\n%s", diff)
	}
	if v, _ := table.Value("Cheese Pizza", "% DV (2)"); v != "27" {
		t.Errorf("Value() = %q, want 27", v)
	}
}

func TestBuildTable_NoDataRows(t *testing.T) {
	mapped := [][]string{
		{"Item", "Calories"},
		{"Toppings", ""},
	}
	if table := BuildTable(0, mapped, 0, DefaultConfig()); table != nil {
		t.Errorf("BuildTable() = %+v, want nil", table)
	}
	if table := BuildTable(0, mapped, 5, DefaultConfig()); table != nil {
		t.Error("BuildTable() with out-of-range header should return nil")
	}
}

func TestBuildTable_PlaceholderAtAnyPosition(t *testing.T) {
	mapped := [][]string{
		{"Item", "Column 5", "Calories", "Column 12"},
		{"Cheese Pizza", "7", "290", "1"},
	}
	table := BuildTable(0, mapped, 0, DefaultConfig())
	if table == nil {
		t.Fatal("BuildTable() returned nil")
	}
	if diff := cmp.Diff([]string{"Calories"}, table.Headers); diff != "" {
		t.Errorf("Headers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"Calories": "290"}, table.Rows[0].Values); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
}
