// Package model provides the data types shared by every tabgrid component.
//
// All values in this package are derived from one parse request and are
// never mutated after construction. A parse produces them, a caller reads
// them, and they are discarded.
//
// # Fragments
//
// A [TextFragment] is one positioned run of text as emitted by an external
// extractor. Coordinates use a top-left origin and are rounded to two
// decimal places:
//
//	frag, ok := model.NewTextFragment(" 290 ", 150, 130.004, 18, 9)
//	// frag.Text == "290", frag.Y == 130, ok == true
//
// # Rows
//
// A [Row] is an X-ordered group of fragments sharing one vertical band.
// A [RawRow] is the same row flattened to strings for the calibration path.
//
// # Tables
//
// A [Table] holds ordered header names and a list of [RowRecord] values.
// The label column is never part of Headers, and every key of a record's
// Values map is one of the headers:
//
//	v, ok := table.Value("Cheese Pizza", "Calories")
//
// Tables can be rendered with [Table.ToMarkdown] and [Table.ToCSV].
//
// # Candidates
//
// [HeaderCandidate] and [RowCandidate] are produced by the keyword lookup
// path and only live for one query.
package model
