package tabgrid

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tsawler/tabgrid/calibrate"
	"github.com/tsawler/tabgrid/config"
	"github.com/tsawler/tabgrid/lookup"
	"github.com/tsawler/tabgrid/model"
	"github.com/tsawler/tabgrid/ocr"
	"github.com/tsawler/tabgrid/source"
	"github.com/tsawler/tabgrid/tables"
)

// ErrUnsupportedSource is returned by Open for a file extension no reader
// handles.
var ErrUnsupportedSource = errors.New("unsupported source format")

// Extractor provides a fluent interface for reconstructing tables from one
// page of fragments. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	path      string
	kind      source.Kind
	fragments []model.TextFragment
	loaded    bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// Fragments are shared; nothing mutates them after loading.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		path:      e.path,
		kind:      e.kind,
		fragments: e.fragments,
		loaded:    e.loaded,
		options:   e.options.clone(),
		err:       e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// YTolerance sets the row grouping tolerance in points.
func (e *Extractor) YTolerance(v float64) *Extractor {
	newExt := e.clone()
	newExt.options.settings.Tables.YTolerance = v
	return newExt
}

// XTolerance sets the gap clustering tolerance in points.
func (e *Extractor) XTolerance(v float64) *Extractor {
	newExt := e.clone()
	newExt.options.settings.Tables.XTolerance = v
	return newExt
}

// GapThreshold sets the vertical gap that separates two tables.
func (e *Extractor) GapThreshold(v float64) *Extractor {
	newExt := e.clone()
	newExt.options.settings.Tables.TableGapThreshold = v
	return newExt
}

// MinTableRows sets the minimum number of rows, header included, a table
// must have.
func (e *Extractor) MinTableRows(n int) *Extractor {
	newExt := e.clone()
	newExt.options.settings.Tables.MinTableRows = n
	return newExt
}

// MinColumns sets the minimum number of columns, label included, a table
// must have.
func (e *Extractor) MinColumns(n int) *Extractor {
	newExt := e.clone()
	newExt.options.settings.Tables.MinColumns = n
	return newExt
}

// ColumnStrategy selects a registered column detector by name.
//
// Example:
//
//	tables, _, err := tabgrid.Open("menu.pdf").ColumnStrategy("gap").Tables()
func (e *Extractor) ColumnStrategy(name string) *Extractor {
	newExt := e.clone()
	newExt.options.settings.Tables.ColumnStrategy = name
	return newExt
}

// HeaderStrategy selects a registered header classifier by name.
func (e *Extractor) HeaderStrategy(name string) *Extractor {
	newExt := e.clone()
	newExt.options.settings.Tables.HeaderStrategy = name
	return newExt
}

// HeaderKeywords replaces the keywords that mark header fragments on the
// lookup path.
func (e *Extractor) HeaderKeywords(keywords ...string) *Extractor {
	newExt := e.clone()
	newExt.options.settings.Lookup.HeaderKeywords = append([]string(nil), keywords...)
	return newExt
}

// SectionKeywords replaces the labels treated as section markers on the
// lookup path.
func (e *Extractor) SectionKeywords(keywords ...string) *Extractor {
	newExt := e.clone()
	newExt.options.settings.Lookup.SectionKeywords = append([]string(nil), keywords...)
	return newExt
}

// Settings replaces all reconstruction parameters.
//
// Example:
//
//	s, err := config.Load("tabgrid.yaml")
//	tables, _, err := tabgrid.Open("menu.pdf").Settings(s).Tables()
func (e *Extractor) Settings(s config.Settings) *Extractor {
	newExt := e.clone()
	newExt.options.settings = s
	newExt.options = newExt.options.clone()
	return newExt
}

// Preset replaces all reconstruction parameters with a named preset. An
// unknown name fails every terminal operation.
func (e *Extractor) Preset(name string) *Extractor {
	newExt := e.clone()
	s, err := config.Preset(name)
	if err != nil {
		if newExt.err == nil {
			newExt.err = err
		}
		return newExt
	}
	newExt.options.settings = s
	return newExt
}

// Page selects the PDF page to read (1-indexed). Other sources ignore it.
func (e *Extractor) Page(n int) *Extractor {
	newExt := e.clone()
	newExt.options.page = n
	return newExt
}

// Timeout sets the wall-clock budget for one terminal operation. Zero or a
// negative value disables the budget.
func (e *Extractor) Timeout(d time.Duration) *Extractor {
	newExt := e.clone()
	newExt.options.timeout = d
	return newExt
}

// Context bounds terminal operations by ctx in addition to the timeout.
func (e *Extractor) Context(ctx context.Context) *Extractor {
	newExt := e.clone()
	newExt.options.ctx = ctx
	return newExt
}

// Logger sets the logger used by reconstruction. The default is
// slog.Default().
func (e *Extractor) Logger(logger *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = logger
	return newExt
}

// OCROptions sets how recognized words become fragments for image sources.
func (e *Extractor) OCROptions(opts ocr.Options) *Extractor {
	newExt := e.clone()
	newExt.options.ocr = opts
	return newExt
}

// PDFOptions sets how glyphs become fragments for PDF sources.
func (e *Extractor) PDFOptions(opts source.PDFOptions) *Extractor {
	newExt := e.clone()
	newExt.options.pdf = opts
	return newExt
}

// ============================================================================
// Terminal Operations (execute reconstruction and return results)
// ============================================================================

// Tables reconstructs every table on the page with the geometric pipeline.
//
// Returns the tables, any warnings encountered during processing, and an
// error if the source could not be read, the configuration is invalid or
// the budget expired. A page without tables is not an error: it yields a
// NO_TABLES warning.
//
// Example:
//
//	tables, warnings, err := tabgrid.Open("menu.pdf").Tables()
//	for _, t := range tables {
//	    fmt.Println(t.ToMarkdown())
//	}
func (e *Extractor) Tables() ([]*model.Table, []Warning, error) {
	var warnings []Warning
	result, err := run(e, func(frags []model.TextFragment) ([]*model.Table, error) {
		r, err := tables.NewReconstructor(e.options.settings.Tables, e.options.log())
		if err != nil {
			return nil, err
		}
		return r.Detect(frags), nil
	}, &warnings)
	if err != nil {
		return nil, warnings, err
	}
	if len(result) == 0 {
		warnings = append(warnings, Warning{Code: WarnNoTables, Message: "no table found on the page"})
	}
	return result, warnings, nil
}

// RawRows returns the page as rows of merged cells, without column or
// header inference. Use it to pick indices for Calibrate.
func (e *Extractor) RawRows() ([]model.RawRow, []Warning, error) {
	var warnings []Warning
	rows, err := run(e, func(frags []model.TextFragment) ([]model.RawRow, error) {
		if err := e.options.settings.Tables.Validate(); err != nil {
			return nil, err
		}
		return tables.RawRows(frags, e.options.settings.Tables), nil
	}, &warnings)
	return rows, warnings, err
}

// Calibrate builds a table from the raw rows using a user-chosen header row
// and label column (both 0-indexed).
//
// Example:
//
//	table, _, err := tabgrid.Open("menu.pdf").Calibrate(2, 0)
func (e *Extractor) Calibrate(headerRow, labelColumn int) (*model.Table, []Warning, error) {
	var warnings []Warning
	table, err := run(e, func(frags []model.TextFragment) (*model.Table, error) {
		if err := e.options.settings.Tables.Validate(); err != nil {
			return nil, err
		}
		return calibrate.Project(tables.RawRows(frags, e.options.settings.Tables), headerRow, labelColumn)
	}, &warnings)
	return table, warnings, err
}

// Headers returns the header candidates found by keyword, left to right.
func (e *Extractor) Headers() ([]model.HeaderCandidate, error) {
	return runLookup(e, func(f *lookup.Finder) ([]model.HeaderCandidate, error) {
		return f.Headers(), nil
	})
}

// RowLabels returns the row label candidates below the headers, top to
// bottom, with their sections.
func (e *Extractor) RowLabels() ([]model.RowCandidate, error) {
	return runLookup(e, func(f *lookup.Finder) ([]model.RowCandidate, error) {
		return f.Rows(f.Headers()), nil
	})
}

// CellValue answers "value of header for row" by name. Names match exactly,
// then case-insensitively, then as substrings. ok is false when the header,
// the row or the cell cannot be found.
//
// Example:
//
//	v, ok, err := tabgrid.Open("menu.json").CellValue("Calories", "Cheese Pizza")
func (e *Extractor) CellValue(header, row string) (value string, ok bool, err error) {
	type answer struct {
		value string
		ok    bool
	}
	a, err := runLookup(e, func(f *lookup.Finder) (answer, error) {
		v, ok := f.Query(row, header)
		return answer{v, ok}, nil
	})
	return a.value, a.ok, err
}

// RowValues returns every header's value for the row matching label. The
// map is nil when no row matches.
func (e *Extractor) RowValues(label string) (map[string]string, error) {
	return runLookup(e, func(f *lookup.Finder) (map[string]string, error) {
		row, ok := f.Row(label)
		if !ok {
			return nil, nil
		}
		return f.RowValues(f.Headers(), row), nil
	})
}

// LookupTable assembles every header and row found by keyword into one
// table. Rows carry their section.
func (e *Extractor) LookupTable() (*model.Table, error) {
	return runLookup(e, func(f *lookup.Finder) (*model.Table, error) {
		return f.Table(), nil
	})
}

// Fragments returns the page's fragments as read from the source.
func (e *Extractor) Fragments() ([]model.TextFragment, []Warning, error) {
	var warnings []Warning
	frags, err := run(e, func(frags []model.TextFragment) ([]model.TextFragment, error) {
		return frags, nil
	}, &warnings)
	return frags, warnings, err
}

// ============================================================================
// Execution
// ============================================================================

// run loads the fragments and applies fn under the configured budget. The
// work itself has no checkpoints: on expiry its result is abandoned and the
// context error returned.
func run[T any](e *Extractor, fn func([]model.TextFragment) (T, error), warnings *[]Warning) (T, error) {
	var zero T
	if e.err != nil {
		return zero, e.err
	}

	ctx := e.options.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if e.options.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.options.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("reconstruction not started: %w", err)
	}

	type result struct {
		value    T
		warnings []Warning
		err      error
	}
	done := make(chan result, 1)
	start := time.Now()

	go func() {
		frags, err := e.load()
		if err != nil {
			done <- result{err: err}
			return
		}
		value, err := fn(frags)
		done <- result{value: value, warnings: fragmentWarnings(frags), err: err}
	}()

	select {
	case r := <-done:
		if warnings != nil {
			*warnings = append(*warnings, r.warnings...)
		}
		return r.value, r.err
	case <-ctx.Done():
		e.options.log().Warn("reconstruction abandoned",
			"source", e.describe(),
			"elapsed_ms", time.Since(start).Milliseconds())
		return zero, fmt.Errorf("reconstruction abandoned: %w", ctx.Err())
	}
}

// runLookup runs fn against a Finder over the page's fragments.
func runLookup[T any](e *Extractor, fn func(*lookup.Finder) (T, error)) (T, error) {
	return run(e, func(frags []model.TextFragment) (T, error) {
		f, err := lookup.New(frags, e.options.settings.Lookup)
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(f)
	}, nil)
}

// load returns the fragments, reading them from the source if needed.
func (e *Extractor) load() ([]model.TextFragment, error) {
	if e.loaded {
		return e.fragments, nil
	}
	if e.path == "" {
		return nil, fmt.Errorf("no source specified")
	}

	var frags []model.TextFragment
	var err error
	switch e.kind {
	case source.JSON:
		frags, err = source.ReadJSONFile(e.path)
	case source.PDF:
		frags, err = source.ReadPDF(e.path, e.options.page, e.options.pdf)
	case source.Image:
		frags, err = e.recognize()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, filepath.Ext(e.path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", e.kind, err)
	}

	e.options.log().Debug("fragments loaded", "source", e.describe(), "fragments", len(frags))
	return frags, nil
}

// recognize runs OCR over an image file.
func (e *Extractor) recognize() ([]model.TextFragment, error) {
	data, err := os.ReadFile(e.path)
	if err != nil {
		return nil, err
	}
	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()
	return client.RecognizeFragments(data, e.options.ocr)
}

func (e *Extractor) describe() string {
	if e.path == "" {
		return "memory"
	}
	return e.path
}
