package lookup

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid lookup configuration")

// DefaultHeaderKeywords are the nutrition-table column keywords.
var DefaultHeaderKeywords = []string{
	"calorie", "fat", "sodium", "carb", "protein", "sugar", "fiber",
	"serving", "weight", "cholesterol", "vitamin", "calcium", "iron",
}

// DefaultSectionKeywords are menu sub-headings that group rows.
var DefaultSectionKeywords = []string{
	"Toppings", "Sides", "Desserts", "Beverages", "Drinks", "Salads",
	"Sandwiches", "Breakfast", "Sauces", "Dressings", "Appetizers",
	"Entrees", "Kids Menu", "Wings", "Crusts", "Dips",
}

// Config holds keyword lookup parameters
type Config struct {
	// Case-insensitive substrings marking a header fragment
	HeaderKeywords []string `yaml:"header_keywords" json:"header_keywords"`

	// Labels that mark a section rather than a row
	SectionKeywords []string `yaml:"section_keywords" json:"section_keywords"`

	// Maximum horizontal distance between a header and its cell (exclusive, points)
	XTolerance float64 `yaml:"x_tolerance" json:"x_tolerance"`

	// Maximum vertical distance between a row label and its cell (exclusive, points)
	YTolerance float64 `yaml:"y_tolerance" json:"y_tolerance"`

	// Rows must start this far below the topmost header (points)
	HeaderRowEpsilon float64 `yaml:"header_row_epsilon" json:"header_row_epsilon"`

	// Width of the left margin band holding row labels (points)
	LabelBandWidth float64 `yaml:"label_band_width" json:"label_band_width"`

	// Minimum header text length in runes
	MinHeaderLength int `yaml:"min_header_length" json:"min_header_length"`

	// Minimum row label length in runes
	MinLabelLength int `yaml:"min_label_length" json:"min_label_length"`

	// Section markers are shorter than this many runes
	MaxSectionLength int `yaml:"max_section_length" json:"max_section_length"`
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		HeaderKeywords:   append([]string(nil), DefaultHeaderKeywords...),
		SectionKeywords:  append([]string(nil), DefaultSectionKeywords...),
		XTolerance:       40,
		YTolerance:       15,
		HeaderRowEpsilon: 5,
		LabelBandWidth:   100,
		MinHeaderLength:  2,
		MinLabelLength:   3,
		MaxSectionLength: 25,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case len(c.HeaderKeywords) == 0:
		return fmt.Errorf("%w: header_keywords must not be empty", ErrInvalidConfig)
	case c.XTolerance <= 0:
		return fmt.Errorf("%w: x_tolerance must be > 0, got %v", ErrInvalidConfig, c.XTolerance)
	case c.YTolerance <= 0:
		return fmt.Errorf("%w: y_tolerance must be > 0, got %v", ErrInvalidConfig, c.YTolerance)
	case c.LabelBandWidth <= 0:
		return fmt.Errorf("%w: label_band_width must be > 0, got %v", ErrInvalidConfig, c.LabelBandWidth)
	case c.MinHeaderLength < 0 || c.MinLabelLength < 0 || c.MaxSectionLength < 0:
		return fmt.Errorf("%w: lengths must be >= 0", ErrInvalidConfig)
	}
	return nil
}
