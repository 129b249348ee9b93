package lookup

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/tabgrid/internal/textutil"
	"github.com/tsawler/tabgrid/model"
)

// Finder runs keyword lookups over one page of fragments. Candidates are
// recomputed on every call; a Finder only holds its input.
type Finder struct {
	fragments []model.TextFragment
	config    Config
}

// New creates a Finder over fragments.
func New(fragments []model.TextFragment, config Config) (*Finder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Finder{fragments: fragments, config: config}, nil
}

// Headers returns the fragments whose text contains a header keyword,
// deduplicated by text (first occurrence wins) and ordered left to right.
func (f *Finder) Headers() []model.HeaderCandidate {
	var headers []model.HeaderCandidate
	seen := make(map[string]bool)

	for _, frag := range f.fragments {
		text := strings.TrimSpace(frag.Text)
		if textutil.Len(text) < f.config.MinHeaderLength || seen[text] {
			continue
		}
		if !textutil.ContainsAny(text, f.config.HeaderKeywords) {
			continue
		}
		seen[text] = true
		headers = append(headers, model.HeaderCandidate{Text: text, Fragment: frag})
	}

	sort.SliceStable(headers, func(i, j int) bool {
		return headers[i].Fragment.X < headers[j].Fragment.X
	})
	return headers
}

// Rows returns the row labels in the left margin below headers, top to
// bottom, deduplicated by text. Section markers are not returned; they set
// the Section of the rows that follow. Deduplication comes first, so a
// marker repeated further down does not reopen its section. With no headers
// every fragment is considered.
func (f *Finder) Rows(headers []model.HeaderCandidate) []model.RowCandidate {
	pool := f.belowHeaders(headers)
	if len(pool) == 0 {
		return nil
	}

	// Step 1: Keep the left margin band
	minX := math.Inf(1)
	for _, frag := range pool {
		minX = math.Min(minX, frag.X)
	}
	var band []model.TextFragment
	for _, frag := range pool {
		if frag.X < minX+f.config.LabelBandWidth && textutil.Len(strings.TrimSpace(frag.Text)) >= f.config.MinLabelLength {
			band = append(band, frag)
		}
	}

	// Step 2: Walk top to bottom, tracking the current section
	sort.SliceStable(band, func(i, j int) bool {
		return band[i].Y < band[j].Y
	})

	var rows []model.RowCandidate
	seen := make(map[string]bool)
	section := ""
	for _, frag := range band {
		text := strings.TrimSpace(frag.Text)
		if seen[text] {
			continue
		}
		seen[text] = true
		if f.IsSectionMarker(text) {
			section = text
			continue
		}
		rows = append(rows, model.RowCandidate{Text: text, Fragment: frag, Section: section})
	}
	return rows
}

// belowHeaders returns the fragments starting more than HeaderRowEpsilon
// below the topmost header.
func (f *Finder) belowHeaders(headers []model.HeaderCandidate) []model.TextFragment {
	if len(headers) == 0 {
		return f.fragments
	}
	minY := math.Inf(1)
	for _, h := range headers {
		minY = math.Min(minY, h.Fragment.Y)
	}

	var pool []model.TextFragment
	for _, frag := range f.fragments {
		if frag.Y > minY+f.config.HeaderRowEpsilon {
			pool = append(pool, frag)
		}
	}
	return pool
}

// IsSectionMarker reports whether text is a section heading: shorter than
// MaxSectionLength and equal to a section keyword, starting with the keyword
// and a space, ending with a space and the keyword, or equal to the keyword
// in upper case.
func (f *Finder) IsSectionMarker(text string) bool {
	if textutil.Len(text) >= f.config.MaxSectionLength {
		return false
	}
	for _, kw := range f.config.SectionKeywords {
		if kw == "" {
			continue
		}
		if text == kw ||
			strings.HasPrefix(text, kw+" ") ||
			strings.HasSuffix(text, " "+kw) ||
			text == textutil.Upper(kw) {
			return true
		}
	}
	return false
}

// CellValue returns the text of the fragment nearest to the intersection of
// header's column and row's line: within XTolerance of the header's X and
// YTolerance of the row's Y, minimising |dx|+|dy|. The whole page is
// searched. It reports false when no fragment qualifies.
func (f *Finder) CellValue(header, row model.TextFragment) (string, bool) {
	target := model.Point{X: header.X, Y: row.Y}

	best := -1
	bestDist := math.Inf(1)
	for i, frag := range f.fragments {
		if strings.TrimSpace(frag.Text) == "" {
			continue
		}
		if math.Abs(frag.X-header.X) >= f.config.XTolerance || math.Abs(frag.Y-row.Y) >= f.config.YTolerance {
			continue
		}
		if d := frag.Position().Manhattan(target); d < bestDist {
			best, bestDist = i, d
		}
	}

	if best < 0 {
		return "", false
	}
	return f.fragments[best].Text, true
}

// RowValues looks up the row's value under every header. Headers without a
// value are absent from the result.
func (f *Finder) RowValues(headers []model.HeaderCandidate, row model.RowCandidate) map[string]string {
	values := make(map[string]string, len(headers))
	for _, h := range headers {
		if v, ok := f.CellValue(h.Fragment, row.Fragment); ok {
			values[h.Text] = v
		}
	}
	return values
}

// Header returns the discovered header best matching name. Names match
// exactly first, then case-insensitively, then as a case-insensitive
// substring.
func (f *Finder) Header(name string) (model.HeaderCandidate, bool) {
	return matchHeader(f.Headers(), name)
}

// Row returns the discovered row label best matching label, using the same
// matching order as Header.
func (f *Finder) Row(label string) (model.RowCandidate, bool) {
	return matchRow(f.Rows(f.Headers()), label)
}

// Query answers "value of column for row" by name.
func (f *Finder) Query(rowLabel, column string) (string, bool) {
	headers := f.Headers()
	h, ok := matchHeader(headers, column)
	if !ok {
		return "", false
	}
	r, ok := matchRow(f.Rows(headers), rowLabel)
	if !ok {
		return "", false
	}
	return f.CellValue(h.Fragment, r.Fragment)
}

// Table assembles every discovered header and row into one table. Rows keep
// their section. The table may have no rows.
func (f *Finder) Table() *model.Table {
	headers := f.Headers()
	names := make([]string, len(headers))
	for i, h := range headers {
		names[i] = h.Text
	}

	table := model.NewTable(0, "Keyword lookup", names)
	for _, row := range f.Rows(headers) {
		table.AddRow(row.Text, row.Section, f.RowValues(headers, row))
	}
	return table
}

func matchHeader(headers []model.HeaderCandidate, name string) (model.HeaderCandidate, bool) {
	texts := make([]string, len(headers))
	for i, h := range headers {
		texts[i] = h.Text
	}
	if i := matchName(texts, name); i >= 0 {
		return headers[i], true
	}
	return model.HeaderCandidate{}, false
}

func matchRow(rows []model.RowCandidate, name string) (model.RowCandidate, bool) {
	texts := make([]string, len(rows))
	for i, r := range rows {
		texts[i] = r.Text
	}
	if i := matchName(texts, name); i >= 0 {
		return rows[i], true
	}
	return model.RowCandidate{}, false
}

// matchName returns the index of the best match for name in texts, or -1.
func matchName(texts []string, name string) int {
	name = strings.TrimSpace(name)
	if name == "" {
		return -1
	}
	for i, t := range texts {
		if t == name {
			return i
		}
	}
	folded := textutil.Fold(name)
	for i, t := range texts {
		if textutil.Fold(t) == folded {
			return i
		}
	}
	for i, t := range texts {
		if strings.Contains(textutil.Fold(t), folded) {
			return i
		}
	}
	return -1
}
