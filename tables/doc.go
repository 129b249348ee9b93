// Package tables reconstructs tables from positioned text fragments.
//
// The page has no grid lines or markup available; structure is inferred
// from glyph coordinates alone.
//
// # Pipeline
//
// [Reconstructor.Detect] runs the following steps:
//
//  1. Row grouping - fragments sharing a vertical band become a [model.Row]
//  2. Segmentation - a large vertical gap between rows starts a new table
//  3. Column anchors - a [ColumnDetector] infers one X position per column
//  4. Cell mapping - every fragment goes to its nearest anchor
//  5. Classification - a [HeaderClassifier] picks the header row, and rows
//     that do not look like data are dropped
//
// Segments that fail a step are discarded individually; the rest of the page
// is still returned.
//
//	r, err := tables.NewReconstructor(tables.DefaultConfig(), nil)
//	if err != nil {
//	    // invalid configuration
//	}
//	found := r.Detect(fragments)
//
// # Strategies
//
// Column detection and header classification are pluggable and selected by
// name through [Config]:
//
//   - "median" - median X of each column over rows of the typical length
//   - "gap" - greedy clustering of all X positions
//   - "auto" - median, falling back to gap clustering (default)
//   - "ratio" - first row whose non-label cells are mostly non-numeric (default)
//   - "first-non-numeric" - first row whose non-label cells are all non-numeric
//
// Custom strategies can be added with [RegisterColumnDetector] and
// [RegisterHeaderClassifier].
//
// # Configuration
//
// Every threshold lives in [Config], so the same engine can be tuned per
// document class:
//
//	config := tables.DefaultConfig()
//	config.YTolerance = 2.5
//	config.TableGapThreshold = 40
//
// # Raw rows
//
// [RawRows] flattens grouped rows to strings without any anchor inference.
// It feeds the calibration path in package calibrate.
package tables
