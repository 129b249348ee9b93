package tables

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid table configuration")

// Config holds reconstruction parameters
type Config struct {
	// Maximum vertical distance from a row's mean Y for a fragment to join it (points)
	YTolerance float64 `yaml:"y_tolerance" json:"y_tolerance"`

	// Maximum gap between sorted X positions in one gap-clustered column (points)
	XTolerance float64 `yaml:"x_tolerance" json:"x_tolerance"`

	// Vertical distance between consecutive rows that starts a new table (points)
	TableGapThreshold float64 `yaml:"table_gap_threshold" json:"table_gap_threshold"`

	// Minimum rows, header included, for a segment to be kept
	MinTableRows int `yaml:"min_table_rows" json:"min_table_rows"`

	// Minimum columns, label included, for a segment to be kept
	MinColumns int `yaml:"min_columns" json:"min_columns"`

	// Number of leading rows searched for the header
	HeaderScanRows int `yaml:"header_scan_rows" json:"header_scan_rows"`

	// Share of non-numeric cells a row must exceed to be the header (0-1)
	HeaderRatio float64 `yaml:"header_ratio" json:"header_ratio"`

	// Share of numeric cells a row with a text label needs to count as data (0-1)
	MinNumericShare float64 `yaml:"min_numeric_share" json:"min_numeric_share"`

	// Maximum horizontal gap between fragments merged into one raw cell (points)
	CellMergeGap float64 `yaml:"cell_merge_gap" json:"cell_merge_gap"`

	// Registered column detector name
	ColumnStrategy string `yaml:"column_strategy" json:"column_strategy"`

	// Registered header classifier name
	HeaderStrategy string `yaml:"header_strategy" json:"header_strategy"`
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		YTolerance:        3.0,
		XTolerance:        15.0,
		TableGapThreshold: 50.0,
		MinTableRows:      2,
		MinColumns:        2,
		HeaderScanRows:    5,
		HeaderRatio:       0.5,
		MinNumericShare:   1.0 / 3.0,
		CellMergeGap:      3.0,
		ColumnStrategy:    "auto",
		HeaderStrategy:    "ratio",
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.YTolerance < 0:
		return fmt.Errorf("%w: y_tolerance must be >= 0, got %v", ErrInvalidConfig, c.YTolerance)
	case c.XTolerance < 0:
		return fmt.Errorf("%w: x_tolerance must be >= 0, got %v", ErrInvalidConfig, c.XTolerance)
	case c.TableGapThreshold < 0:
		return fmt.Errorf("%w: table_gap_threshold must be >= 0, got %v", ErrInvalidConfig, c.TableGapThreshold)
	case c.MinTableRows < 1:
		return fmt.Errorf("%w: min_table_rows must be >= 1, got %d", ErrInvalidConfig, c.MinTableRows)
	case c.MinColumns < 1:
		return fmt.Errorf("%w: min_columns must be >= 1, got %d", ErrInvalidConfig, c.MinColumns)
	case c.HeaderScanRows < 1:
		return fmt.Errorf("%w: header_scan_rows must be >= 1, got %d", ErrInvalidConfig, c.HeaderScanRows)
	case c.HeaderRatio < 0 || c.HeaderRatio > 1:
		return fmt.Errorf("%w: header_ratio must be within [0,1], got %v", ErrInvalidConfig, c.HeaderRatio)
	case c.MinNumericShare < 0 || c.MinNumericShare > 1:
		return fmt.Errorf("%w: min_numeric_share must be within [0,1], got %v", ErrInvalidConfig, c.MinNumericShare)
	case c.CellMergeGap < 0:
		return fmt.Errorf("%w: cell_merge_gap must be >= 0, got %v", ErrInvalidConfig, c.CellMergeGap)
	}
	if GetColumnDetector(c.ColumnStrategy) == nil {
		return fmt.Errorf("%w: unknown column strategy %q", ErrInvalidConfig, c.ColumnStrategy)
	}
	if GetHeaderClassifier(c.HeaderStrategy) == nil {
		return fmt.Errorf("%w: unknown header strategy %q", ErrInvalidConfig, c.HeaderStrategy)
	}
	return nil
}
