// integration.go runs the table pipeline over every page of a document
package tabgrid

import (
	"context"
	"errors"
	"fmt"

	"github.com/tsawler/tabgrid/config"
	"github.com/tsawler/tabgrid/lookup"
	"github.com/tsawler/tabgrid/model"
	"github.com/tsawler/tabgrid/source"
	"github.com/tsawler/tabgrid/tables"
)

// PageTables holds the tables reconstructed from one page. Table IDs are
// unique within a page.
type PageTables struct {
	Number   int            `json:"page"`
	Tables   []*model.Table `json:"tables"`
	Warnings []Warning      `json:"warnings,omitempty"`
}

// AnalyzeDocument reconstructs the tables of every page of the file at
// path with default settings.
//
// Example:
//
//	pages, err := tabgrid.AnalyzeDocument("menu.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range pages {
//	    fmt.Printf("Page %d: %d tables\n", p.Number, len(p.Tables))
//	}
func AnalyzeDocument(path string) ([]PageTables, error) {
	return Open(path).AllPages()
}

// AllPages runs Tables on every page of a PDF source, ignoring the Page
// option. Other sources have a single page. A page that cannot be read is
// reported with a PAGE_SKIPPED warning; invalid configuration and an
// expired budget stop the run.
func (e *Extractor) AllPages() ([]PageTables, error) {
	if e.err != nil {
		return nil, e.err
	}

	count := 1
	if !e.loaded && e.kind == source.PDF {
		n, err := source.PDFPageCount(e.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read pdf: %w", err)
		}
		count = n
	}

	pages := make([]PageTables, 0, count)
	for i := 1; i <= count; i++ {
		result, warnings, err := e.Page(i).Tables()
		switch {
		case err == nil:
		case count > 1 && !fatal(err):
			e.options.log().Warn("page skipped", "source", e.describe(), "page", i, "error", err)
			warnings = append(warnings, Warning{Code: WarnPageSkipped, Message: err.Error()})
		default:
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, PageTables{Number: i, Tables: result, Warnings: warnings})
	}
	return pages, nil
}

// fatal reports errors that would fail every page alike.
func fatal(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, source.ErrPageOutOfRange) ||
		isConfigError(err)
}

func isConfigError(err error) bool {
	return errors.Is(err, tables.ErrInvalidConfig) ||
		errors.Is(err, lookup.ErrInvalidConfig) ||
		errors.Is(err, config.ErrUnknownPreset)
}
