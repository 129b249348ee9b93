package ocr

import (
	"image"
	"strings"

	"github.com/tsawler/tabgrid/model"
)

// PageSegMode represents page segmentation modes for OCR.
// These control how Tesseract analyzes the page layout.
type PageSegMode int

// Page segmentation modes, numbered as in Tesseract.
const (
	PSM_OSD_ONLY               PageSegMode = 0  // Orientation and script detection only
	PSM_AUTO_OSD               PageSegMode = 1  // Automatic with OSD
	PSM_AUTO_ONLY              PageSegMode = 2  // Automatic, no OSD or OCR
	PSM_AUTO                   PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_COLUMN          PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK_VERT_TEXT PageSegMode = 5  // Single uniform block of vertically aligned text
	PSM_SINGLE_BLOCK           PageSegMode = 6  // Single uniform block of text
	PSM_SINGLE_LINE            PageSegMode = 7  // Single text line
	PSM_SINGLE_WORD            PageSegMode = 8  // Single word
	PSM_CIRCLE_WORD            PageSegMode = 9  // Single word in a circle
	PSM_SINGLE_CHAR            PageSegMode = 10 // Single character
	PSM_SPARSE_TEXT            PageSegMode = 11 // Find as much text as possible
	PSM_SPARSE_TEXT_OSD        PageSegMode = 12 // Sparse text with OSD
	PSM_RAW_LINE               PageSegMode = 13 // Treat image as single text line
)

// LineKey identifies the text line a word was recognized on.
type LineKey struct {
	Block, Paragraph, Line int
}

// Word is one recognized word and its box in image pixels.
type Word struct {
	Text       string
	Box        image.Rectangle
	Line       LineKey
	Confidence float64
}

// Options controls how recognized words become fragments.
type Options struct {
	// Words below this confidence (0-100) are dropped
	MinConfidence float64

	// Adjacent words on one line merge when the gap between them is at most
	// this multiple of the line height
	MaxGapRatio float64

	// Multiplier from pixels to fragment units; 72/DPI converts to points
	Scale float64
}

// DefaultOptions returns default options
func DefaultOptions() Options {
	return Options{
		MinConfidence: 30,
		MaxGapRatio:   0.6,
		Scale:         1,
	}
}

// MergeWords joins adjacent words of the same line into phrase fragments,
// so that a label like "Cheese Pizza" becomes one fragment while cells
// separated by column whitespace stay apart. Word order is preserved.
func MergeWords(words []Word, opts Options) []model.TextFragment {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	var frags []model.TextFragment
	var text []string
	var box image.Rectangle
	var line LineKey

	flush := func() {
		if len(text) == 0 {
			return
		}
		f, ok := model.NewTextFragment(strings.Join(text, " "),
			float64(box.Min.X)*scale, float64(box.Min.Y)*scale,
			float64(box.Dx())*scale, float64(box.Dy())*scale)
		if ok {
			frags = append(frags, f)
		}
		text = nil
	}

	for _, w := range words {
		word := strings.TrimSpace(w.Text)
		if word == "" || w.Confidence < opts.MinConfidence {
			continue
		}

		if len(text) > 0 {
			height := max(box.Dy(), w.Box.Dy())
			gap := w.Box.Min.X - box.Max.X
			if w.Line != line || gap < 0 || float64(gap) > opts.MaxGapRatio*float64(height) {
				flush()
			}
		}

		if len(text) == 0 {
			box, line = w.Box, w.Line
		} else {
			box = box.Union(w.Box)
		}
		text = append(text, word)
	}
	flush()
	return frags
}
