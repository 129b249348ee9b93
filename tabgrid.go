// Package tabgrid provides a fluent API for reconstructing tables from
// positioned text fragments.
//
// Basic usage:
//
//	tables, warnings, err := tabgrid.Open("menu.pdf").Tables()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", tabgrid.FormatWarnings(warnings))
//	}
//
// With options:
//
//	tables, _, err := tabgrid.FromFragments(fragments).
//	    YTolerance(2.5).
//	    ColumnStrategy("gap").
//	    Timeout(5 * time.Second).
//	    Tables()
//
// Point queries use the keyword lookup path:
//
//	calories, ok, err := tabgrid.Open("menu.json").CellValue("Calories", "Cheese Pizza")
//
// The tables, lookup and calibrate packages expose each stage directly.
package tabgrid

import (
	"github.com/tsawler/tabgrid/model"
	"github.com/tsawler/tabgrid/source"
)

// Open returns an Extractor reading fragments from the file at path. The
// source is chosen by extension, falling back to the file's leading bytes:
// .json fragment arrays, .pdf pages, or images recognized with OCR.
//
// Example:
//
//	tables, warnings, err := tabgrid.Open("menu.pdf").Page(2).Tables()
func Open(path string) *Extractor {
	return &Extractor{
		path:    path,
		kind:    source.DetectFile(path),
		options: defaultOptions(),
	}
}

// FromFragments returns an Extractor over fragments already in memory. A
// nil slice is treated as a page without text.
//
// Example:
//
//	tables, _, err := tabgrid.FromFragments(frags).Tables()
func FromFragments(fragments []model.TextFragment) *Extractor {
	return &Extractor{
		fragments: append([]model.TextFragment(nil), fragments...),
		loaded:    true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	table := tabgrid.Must(tabgrid.Open("menu.json").LookupTable())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustTables is a helper that wraps a call to Tables(), RawRows() or
// Fragments() and panics if the error is non-nil. It discards warnings and
// returns just the value.
//
// Example:
//
//	tables := tabgrid.MustTables(tabgrid.Open("menu.pdf").Tables())
func MustTables[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
