// Package lookup answers point queries without reconstructing a grid.
//
// Headers are found by a domain keyword dictionary, row labels by their
// position in the left margin below the headers, and a cell value by a
// nearest-neighbour search over every fragment on the page:
//
//	f, err := lookup.New(fragments, lookup.DefaultConfig())
//	if err != nil {
//	    // invalid configuration
//	}
//	headers := f.Headers()
//	rows := f.Rows(headers)
//	value, ok := f.CellValue(headers[0].Fragment, rows[0].Fragment)
//
// The search is deliberately unscoped: it considers the whole fragment list
// rather than the row's band, so on dense tables it may pick a value from
// a neighbouring row. Tighten XTolerance and YTolerance for such documents.
//
// # Section markers
//
// Short left-margin labels that match a section keyword ("Toppings",
// "SIDES", "Pizza Toppings") are not rows. They set the Section of every
// row candidate that follows them until the next marker.
package lookup
