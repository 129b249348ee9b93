package model

import (
	"fmt"
	"strings"
)

// TextFragment is one positioned run of text. X and Y locate the top-left
// corner of the run; Y grows downwards.
type TextFragment struct {
	Text   string  `json:"text"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewTextFragment builds a fragment with trimmed text and coordinates
// rounded to two decimals. It reports false when the text is empty or
// whitespace-only; such runs are never valid fragments.
func NewTextFragment(text string, x, y, width, height float64) (TextFragment, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return TextFragment{}, false
	}
	return TextFragment{
		Text:   text,
		X:      Round2(x),
		Y:      Round2(y),
		Width:  Round2(width),
		Height: Round2(height),
	}, true
}

// BBox returns the fragment's bounding box.
func (f TextFragment) BBox() BBox {
	return BBox{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height}
}

// Position returns the fragment's anchor point (its top-left corner).
func (f TextFragment) Position() Point {
	return Point{X: f.X, Y: f.Y}
}

// Right returns the X coordinate of the fragment's right edge.
func (f TextFragment) Right() float64 {
	return f.BBox().Right()
}

func (f TextFragment) String() string {
	return fmt.Sprintf("%q@(%.2f,%.2f)", f.Text, f.X, f.Y)
}

// CleanFragments drops whitespace-only fragments and normalizes the rest
// the same way NewTextFragment does. The input slice is not modified.
func CleanFragments(frags []TextFragment) []TextFragment {
	out := make([]TextFragment, 0, len(frags))
	for _, f := range frags {
		if clean, ok := NewTextFragment(f.Text, f.X, f.Y, f.Width, f.Height); ok {
			out = append(out, clean)
		}
	}
	return out
}
