package tables

import (
	"log/slog"

	"github.com/tsawler/tabgrid/model"
)

// Reconstructor rebuilds tables from text fragments using the configured
// column and header strategies. It holds no state between calls and is safe
// for concurrent use.
type Reconstructor struct {
	config     Config
	columns    ColumnDetector
	classifier HeaderClassifier
	logger     *slog.Logger
}

// NewReconstructor creates a reconstructor. A nil logger uses slog.Default().
func NewReconstructor(config Config, logger *slog.Logger) (*Reconstructor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Reconstructor{logger: logger}
	if err := r.Configure(config); err != nil {
		return nil, err
	}
	return r, nil
}

// Name returns the reconstructor's identifier ("geometric").
func (r *Reconstructor) Name() string {
	return "geometric"
}

// Config returns the active configuration.
func (r *Reconstructor) Config() Config {
	return r.config
}

// Configure validates and installs config.
func (r *Reconstructor) Configure(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	r.config = config
	r.columns = GetColumnDetector(config.ColumnStrategy)
	r.classifier = GetHeaderClassifier(config.HeaderStrategy)
	return nil
}

// Detect reconstructs every table found in fragments. An empty result is
// not an error; the caller decides how to report a page without tables.
func (r *Reconstructor) Detect(fragments []model.TextFragment) []*model.Table {
	if len(fragments) == 0 {
		return nil
	}

	// Step 1: Group fragments into rows
	rows := GroupRows(fragments, r.config.YTolerance)

	// Step 2: Split rows into table segments
	segments := Segment(rows, r.config.TableGapThreshold, r.config.MinTableRows)

	var tables []*model.Table
	for i, seg := range segments {
		if table := r.detectInSegment(len(tables), seg); table != nil {
			tables = append(tables, table)
			continue
		}
		r.logger.Debug("segment discarded", "segment", i, "rows", len(seg), "top", seg[0].MinY())
	}

	r.logger.Debug("reconstruction finished",
		"fragments", len(fragments),
		"rows", len(rows),
		"segments", len(segments),
		"tables", len(tables))

	return tables
}

// detectInSegment runs anchor detection, cell mapping and classification on
// one segment. It returns nil when the segment does not hold a table.
func (r *Reconstructor) detectInSegment(index int, rows []model.Row) *model.Table {
	// Step 3: Infer column anchors
	anchors := r.columns.Detect(rows, r.config)
	if len(anchors) < r.config.MinColumns {
		return nil
	}

	// Step 4: Map fragments to cells
	mapped := MapRows(rows, anchors)

	// Step 5: Pick the header and keep the data rows
	header := r.classifier.HeaderIndex(mapped, r.config)
	return BuildTable(index, mapped, header, r.config)
}

// Mapped returns the cell grid of every kept segment, before header
// classification. It exposes the intermediate state for debugging.
func (r *Reconstructor) Mapped(fragments []model.TextFragment) [][][]string {
	rows := GroupRows(fragments, r.config.YTolerance)
	var out [][][]string
	for _, seg := range Segment(rows, r.config.TableGapThreshold, r.config.MinTableRows) {
		anchors := r.columns.Detect(seg, r.config)
		if len(anchors) < r.config.MinColumns {
			continue
		}
		out = append(out, MapRows(seg, anchors))
	}
	return out
}
