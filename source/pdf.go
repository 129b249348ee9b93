package source

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"rsc.io/pdf"

	"github.com/tsawler/tabgrid/model"
)

var (
	// ErrPageOutOfRange is returned for a page number outside the document.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrUnreadablePDF is returned when the PDF decoder fails on a page.
	ErrUnreadablePDF = errors.New("unreadable PDF")
)

// defaultPageHeight is US Letter, used when a page has no MediaBox.
const defaultPageHeight = 792.0

// PDFOptions controls how glyphs are merged into fragments.
type PDFOptions struct {
	// Horizontal gap, in multiples of the font size, that ends a run
	MaxGapEm float64

	// Horizontal gap, in multiples of the font size, rendered as a space
	SpaceGapEm float64

	// Baseline drift, in multiples of the font size, tolerated within a run
	BaselineEm float64
}

// DefaultPDFOptions returns default merge options
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		MaxGapEm:   1.0,
		SpaceGapEm: 0.15,
		BaselineEm: 0.3,
	}
}

// PDFPageCount returns the number of pages in the PDF at path.
func PDFPageCount(path string) (int, error) {
	var n int
	err := withPDF(path, func(r *pdf.Reader) error {
		n = r.NumPage()
		return nil
	})
	return n, err
}

// ReadPDF returns the fragments of one page (1-based) of the PDF at path.
func ReadPDF(path string, page int, opts PDFOptions) ([]model.TextFragment, error) {
	var frags []model.TextFragment
	err := withPDF(path, func(r *pdf.Reader) error {
		var err error
		frags, err = readPage(r, page, opts)
		return err
	})
	return frags, err
}

// ReadPDFFrom is ReadPDF over an already open document.
func ReadPDFFrom(ra io.ReaderAt, size int64, page int, opts PDFOptions) (frags []model.TextFragment, err error) {
	defer recoverPDF(&err)
	r, err := pdf.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}
	return readPage(r, page, opts)
}

func withPDF(path string, fn func(*pdf.Reader) error) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	defer recoverPDF(&err)
	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}
	return fn(r)
}

// recoverPDF turns a decoder panic into ErrUnreadablePDF.
func recoverPDF(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrUnreadablePDF, r)
	}
}

func readPage(r *pdf.Reader, page int, opts PDFOptions) ([]model.TextFragment, error) {
	if page < 1 || page > r.NumPage() {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrPageOutOfRange, page, r.NumPage())
	}
	p := r.Page(page)
	if p.V.IsNull() {
		return nil, fmt.Errorf("%w: page %d", ErrPageOutOfRange, page)
	}
	return MergeGlyphs(p.Content().Text, pageHeight(p.V), opts), nil
}

// pageHeight reads the MediaBox, which pages may inherit from their parents.
func pageHeight(v pdf.Value) float64 {
	for !v.IsNull() {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			return math.Abs(box.Index(3).Float64() - box.Index(1).Float64())
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}

// run is a sequence of glyphs on one baseline.
type run struct {
	text     strings.Builder
	x, right float64
	baseline float64
	size     float64
}

// MergeGlyphs joins glyphs drawn next to each other on the same baseline into
// fragments. Glyph coordinates use the PDF bottom-left origin; fragments use
// a top-left origin on a page of the given height.
func MergeGlyphs(glyphs []pdf.Text, pageHeight float64, opts PDFOptions) []model.TextFragment {
	var frags []model.TextFragment
	var cur *run

	flush := func() {
		if cur == nil {
			return
		}
		top := pageHeight - cur.baseline - cur.size
		if f, ok := model.NewTextFragment(cur.text.String(), cur.x, top, cur.right-cur.x, cur.size); ok {
			frags = append(frags, f)
		}
		cur = nil
	}

	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		size := math.Abs(g.FontSize)
		if size == 0 {
			size = 1
		}

		if cur != nil {
			gap := g.X - cur.right
			sameLine := math.Abs(g.Y-cur.baseline) <= opts.BaselineEm*cur.size
			if !sameLine || gap > opts.MaxGapEm*cur.size || gap < -opts.MaxGapEm*cur.size {
				flush()
			} else if gap > opts.SpaceGapEm*cur.size && g.S != " " && !strings.HasSuffix(cur.text.String(), " ") {
				cur.text.WriteByte(' ')
			}
		}

		if cur == nil {
			if strings.TrimSpace(g.S) == "" {
				continue
			}
			cur = &run{x: g.X, right: g.X, baseline: g.Y, size: size}
		}
		cur.text.WriteString(g.S)
		cur.right = math.Max(cur.right, g.X+g.W)
		cur.size = math.Max(cur.size, size)
	}
	flush()
	return frags
}
