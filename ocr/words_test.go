package ocr

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/tabgrid/model"
)

func word(text string, x0, y0, x1, y1 int, line int, conf float64) Word {
	return Word{
		Text:       text,
		Box:        image.Rect(x0, y0, x1, y1),
		Line:       LineKey{Block: 1, Paragraph: 1, Line: line},
		Confidence: conf,
	}
}

func TestMergeWords(t *testing.T) {
	words := []Word{
		word("Cheese", 10, 10, 60, 30, 1, 95),
		word("Pizza", 66, 10, 110, 30, 1, 92),
		word("290", 300, 10, 330, 30, 1, 90),
		word("xx", 400, 10, 420, 30, 1, 10),
		word("12", 10, 40, 25, 60, 2, 88),
		word(" ", 30, 40, 35, 60, 2, 99),
	}

	got := MergeWords(words, DefaultOptions())
	want := []model.TextFragment{
		{Text: "Cheese Pizza", X: 10, Y: 10, Width: 100, Height: 20},
		{Text: "290", X: 300, Y: 10, Width: 30, Height: 20},
		{Text: "12", X: 10, Y: 40, Width: 15, Height: 20},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeWords() mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeWords_LineBreaksRun(t *testing.T) {
	// Touching boxes on different lines never merge.
	words := []Word{
		word("Total", 10, 10, 50, 30, 1, 90),
		word("Fat", 52, 10, 80, 30, 2, 90),
	}
	if got := MergeWords(words, DefaultOptions()); len(got) != 2 {
		t.Errorf("MergeWords() = %v, want 2 fragments", got)
	}
}

func TestMergeWords_Scale(t *testing.T) {
	opts := DefaultOptions()
	opts.Scale = 0.5
	got := MergeWords([]Word{word("Calories", 300, 100, 380, 120, 1, 90)}, opts)
	want := []model.TextFragment{{Text: "Calories", X: 150, Y: 50, Width: 40, Height: 10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeWords() mismatch (-want +got):\n%s", diff)
	}
}
