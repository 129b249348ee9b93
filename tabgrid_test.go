package tabgrid

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/tabgrid/calibrate"
	"github.com/tsawler/tabgrid/config"
	"github.com/tsawler/tabgrid/model"
	"github.com/tsawler/tabgrid/source"
	"github.com/tsawler/tabgrid/tables"
)

func frag(text string, x, y, width float64) model.TextFragment {
	return model.TextFragment{Text: text, X: x, Y: y, Width: width, Height: 9}
}

// menuPage is one nutrition table with a section marker row.
func menuPage() []model.TextFragment {
	return []model.TextFragment{
		frag("Item", 20, 100, 25),
		frag("Calories", 150, 100, 40),
		frag("Fat", 220, 100, 20),
		frag("Cheese Pizza", 20, 115, 60),
		frag("290", 150, 115, 18),
		frag("12", 220, 115, 12),
		frag("Toppings", 20, 130, 45),
		frag("Pepperoni", 20, 145, 50),
		frag("40", 150, 145, 12),
		frag("3.5", 220, 145, 18),
	}
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFromFragments_Tables(t *testing.T) {
	result, warnings, err := FromFragments(menuPage()).Logger(quiet()).Tables()
	if err != nil {
		t.Fatalf("Tables() failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %s", FormatWarnings(warnings))
	}
	if len(result) != 1 {
		t.Fatalf("Tables() returned %d tables, want 1", len(result))
	}

	table := result[0]
	if diff := cmp.Diff([]string{"Calories", "Fat"}, table.Headers); diff != "" {
		t.Errorf("Headers mismatch (-want +got):\n%s", diff)
	}
	if v, ok := table.Value("Cheese Pizza", "Calories"); !ok || v != "290" {
		t.Errorf("Value(Cheese Pizza, Calories) = %q, %v", v, ok)
	}
	if _, ok := table.FindRow("Toppings"); ok {
		t.Error("a label without values is not a data row")
	}
}

func TestTables_NilFragments(t *testing.T) {
	result, warnings, err := FromFragments(nil).Tables()
	if err != nil {
		t.Fatalf("Tables() failed: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Tables() returned %d tables, want 0", len(result))
	}
	if !HasWarning(warnings, WarnNoTables) || !HasWarning(warnings, WarnEmptyPage) {
		t.Errorf("warnings = %s, want NO_TABLES and EMPTY_PAGE", FormatWarnings(warnings))
	}
}

func TestTables_CharacterLevelWarning(t *testing.T) {
	var frags []model.TextFragment
	for i, r := range "Cheese Pizza" {
		frags = append(frags, frag(string(r), 20+float64(i)*5, 100, 5))
	}
	_, warnings, err := FromFragments(frags).Tables()
	if err != nil {
		t.Fatal(err)
	}
	if !HasWarning(warnings, WarnCharacterLevel) {
		t.Errorf("warnings = %s, want CHARACTER_LEVEL", FormatWarnings(warnings))
	}
}

func TestTables_InvalidConfig(t *testing.T) {
	_, _, err := FromFragments(menuPage()).MinTableRows(0).Tables()
	if !errors.Is(err, tables.ErrInvalidConfig) {
		t.Errorf("Tables() error = %v, want ErrInvalidConfig", err)
	}

	_, _, err = FromFragments(menuPage()).ColumnStrategy("magic").Tables()
	if !errors.Is(err, tables.ErrInvalidConfig) {
		t.Errorf("Tables() error = %v, want ErrInvalidConfig", err)
	}
}

func TestPreset(t *testing.T) {
	if _, _, err := FromFragments(menuPage()).Preset("huge").Tables(); !errors.Is(err, config.ErrUnknownPreset) {
		t.Errorf("Tables() error = %v, want ErrUnknownPreset", err)
	}

	result, _, err := FromFragments(menuPage()).Preset("tight").Logger(quiet()).Tables()
	if err != nil {
		t.Fatalf("Tables() failed: %v", err)
	}
	if len(result) != 1 {
		t.Errorf("Tables() returned %d tables, want 1", len(result))
	}
}

func TestSettings(t *testing.T) {
	s := config.Default()
	s.Tables.ColumnStrategy = "gap"
	result, _, err := FromFragments(menuPage()).Settings(s).Logger(quiet()).Tables()
	if err != nil {
		t.Fatalf("Tables() failed: %v", err)
	}
	if len(result) != 1 || len(result[0].Headers) != 2 {
		t.Errorf("Tables() = %v", result)
	}
}

func TestExtractorIsImmutable(t *testing.T) {
	base := FromFragments(menuPage())
	tight := base.YTolerance(1).HeaderKeywords("sugar")

	if base.options.settings.Tables.YTolerance != 3 {
		t.Errorf("base YTolerance changed to %v", base.options.settings.Tables.YTolerance)
	}
	if tight.options.settings.Tables.YTolerance != 1 {
		t.Errorf("derived YTolerance = %v, want 1", tight.options.settings.Tables.YTolerance)
	}
	if len(base.options.settings.Lookup.HeaderKeywords) == 1 {
		t.Error("base header keywords were replaced")
	}
}

func TestContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := FromFragments(menuPage()).Context(ctx).Tables()
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Tables() error = %v, want context.Canceled", err)
	}
}

func TestDeadlineExceeded(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := FromFragments(menuPage()).Context(ctx).Logger(quiet()).LookupTable()
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("LookupTable() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestTimeoutDisabled(t *testing.T) {
	result, _, err := FromFragments(menuPage()).Timeout(0).Logger(quiet()).Tables()
	if err != nil || len(result) != 1 {
		t.Errorf("Tables() = %d tables, %v", len(result), err)
	}
}

func TestRawRowsAndCalibrate(t *testing.T) {
	ext := FromFragments(menuPage())

	raw, _, err := ext.RawRows()
	if err != nil {
		t.Fatalf("RawRows() failed: %v", err)
	}
	var cells [][]string
	for _, r := range raw {
		cells = append(cells, r.Cells)
	}
	want := [][]string{
		{"Item", "Calories", "Fat"},
		{"Cheese Pizza", "290", "12"},
		{"Toppings"},
		{"Pepperoni", "40", "3.5"},
	}
	if diff := cmp.Diff(want, cells); diff != "" {
		t.Errorf("RawRows() mismatch (-want +got):\n%s", diff)
	}

	table, _, err := ext.Calibrate(0, 0)
	if err != nil {
		t.Fatalf("Calibrate() failed: %v", err)
	}
	if table.RowCount() != 3 {
		t.Errorf("RowCount() = %d, want 3", table.RowCount())
	}
	if v, _ := table.Value("Pepperoni", "Fat"); v != "3.5" {
		t.Errorf("Value(Pepperoni, Fat) = %q, want 3.5", v)
	}

	if _, _, err := ext.Calibrate(9, 0); !errors.Is(err, calibrate.ErrHeaderRowOutOfRange) {
		t.Errorf("Calibrate(9, 0) error = %v, want ErrHeaderRowOutOfRange", err)
	}
}

func TestLookup(t *testing.T) {
	ext := FromFragments(menuPage())

	headers, err := ext.Headers()
	if err != nil {
		t.Fatal(err)
	}
	if len(headers) != 2 || headers[0].Text != "Calories" || headers[1].Text != "Fat" {
		t.Errorf("Headers() = %v", headers)
	}

	rows, err := ext.RowLabels()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[1].Text != "Pepperoni" || rows[1].Section != "Toppings" {
		t.Errorf("RowLabels() = %v", rows)
	}

	v, ok, err := ext.CellValue("Calories", "Cheese Pizza")
	if err != nil || !ok || v != "290" {
		t.Errorf("CellValue() = %q, %v, %v, want 290", v, ok, err)
	}
	if _, ok, _ := ext.CellValue("Sodium", "Cheese Pizza"); ok {
		t.Error("CellValue() found a value for an absent header")
	}

	values, err := ext.RowValues("pepperoni")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]string{"Calories": "40", "Fat": "3.5"}, values); diff != "" {
		t.Errorf("RowValues() mismatch (-want +got):\n%s", diff)
	}
	if values, _ := ext.RowValues("Calzone"); values != nil {
		t.Errorf("RowValues(Calzone) = %v, want nil", values)
	}

	table, err := ext.LookupTable()
	if err != nil {
		t.Fatal(err)
	}
	if table.RowCount() != 2 || table.Rows[1].Section != "Toppings" {
		t.Errorf("LookupTable() = %+v", table)
	}
}

func TestLookup_InvalidConfig(t *testing.T) {
	if _, err := FromFragments(menuPage()).HeaderKeywords().Headers(); err == nil {
		t.Error("Headers() should fail without header keywords")
	}
}

func TestOpen_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := source.WriteJSON(f, menuPage()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	frags, _, err := Open(path).Fragments()
	if err != nil {
		t.Fatalf("Fragments() failed: %v", err)
	}
	if diff := cmp.Diff(menuPage(), frags); diff != "" {
		t.Errorf("Fragments() mismatch (-want +got):\n%s", diff)
	}

	result, _, err := Open(path).Logger(quiet()).Tables()
	if err != nil || len(result) != 1 {
		t.Errorf("Tables() = %d tables, %v", len(result), err)
	}
}

func TestOpen_Errors(t *testing.T) {
	if _, _, err := Open("menu.docx").Tables(); !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("Tables() error = %v, want ErrUnsupportedSource", err)
	}
	if _, _, err := Open(filepath.Join(t.TempDir(), "missing.json")).Tables(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Tables() error = %v, want os.ErrNotExist", err)
	}
	if _, _, err := Open(filepath.Join(t.TempDir(), "missing.pdf")).Tables(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Tables() error = %v, want os.ErrNotExist", err)
	}
}

func TestOpen_DetectsByContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.txt")
	data, err := json.Marshal(menuPage())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	e := Open(path)
	if e.kind != source.JSON {
		t.Fatalf("kind = %v, want json", e.kind)
	}
	if _, _, err := e.Logger(quiet()).Tables(); err != nil {
		t.Errorf("Tables() failed: %v", err)
	}
}

func TestMust(t *testing.T) {
	table := Must(FromFragments(menuPage()).LookupTable())
	if table == nil {
		t.Fatal("Must() returned nil")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustTables() should panic on error")
		}
	}()
	MustTables(FromFragments(nil).MinColumns(0).Tables())
}

func TestFormatWarnings(t *testing.T) {
	got := FormatWarnings([]Warning{
		{Code: WarnNoTables, Message: "none"},
		{Code: WarnEmptyPage, Message: "empty"},
	})
	if got != "NO_TABLES: none; EMPTY_PAGE: empty" {
		t.Errorf("FormatWarnings() = %q", got)
	}
	if !strings.HasPrefix(Warning{Code: WarnCharacterLevel}.String(), "CHARACTER_LEVEL") {
		t.Error("String() should start with the code")
	}
}
