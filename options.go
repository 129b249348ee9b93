package tabgrid

import (
	"context"
	"log/slog"
	"time"

	"github.com/tsawler/tabgrid/config"
	"github.com/tsawler/tabgrid/ocr"
	"github.com/tsawler/tabgrid/source"
)

// DefaultTimeout bounds one reconstruction when no other budget is set.
const DefaultTimeout = 30 * time.Second

// ExtractOptions holds configuration for reconstruction.
type ExtractOptions struct {
	settings config.Settings

	// Page selection for PDF sources (1-indexed)
	page int

	// Budget
	timeout time.Duration
	ctx     context.Context

	logger *slog.Logger

	// Source decoding
	pdf source.PDFOptions
	ocr ocr.Options
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		settings: config.Default(),
		page:     1,
		timeout:  DefaultTimeout,
		pdf:      source.DefaultPDFOptions(),
		ocr:      ocr.DefaultOptions(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o

	// Deep copy keyword slices
	newOpts.settings.Lookup.HeaderKeywords = append([]string(nil), o.settings.Lookup.HeaderKeywords...)
	newOpts.settings.Lookup.SectionKeywords = append([]string(nil), o.settings.Lookup.SectionKeywords...)

	return newOpts
}

// log returns the configured logger or the default one.
func (o ExtractOptions) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.Default()
}
