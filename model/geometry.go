package model

import "math"

// Point is a position on the page.
type Point struct {
	X, Y float64
}

// Manhattan returns |dx| + |dy| between two points.
func (p Point) Manhattan(other Point) float64 {
	return math.Abs(p.X-other.X) + math.Abs(p.Y-other.Y)
}

// BBox is an axis-aligned box with a top-left origin: Y grows downwards, so
// Top() <= Bottom().
type BBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (b BBox) Left() float64   { return b.X }
func (b BBox) Right() float64  { return b.X + b.Width }
func (b BBox) Top() float64    { return b.Y }
func (b BBox) Bottom() float64 { return b.Y + b.Height }

// Union returns the smallest box covering both b and other.
func (b BBox) Union(other BBox) BBox {
	left := math.Min(b.Left(), other.Left())
	top := math.Min(b.Top(), other.Top())
	return BBox{
		X:      left,
		Y:      top,
		Width:  math.Max(b.Right(), other.Right()) - left,
		Height: math.Max(b.Bottom(), other.Bottom()) - top,
	}
}

// Round2 rounds v to two decimal places, the precision fragments are
// reported in.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
