// Package export writes reconstructed tables in several formats.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/tabgrid/model"
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
var ErrUnknownFormat = errors.New("unknown export format")

// Format names an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatHTML     Format = "html"
	FormatXLSX     Format = "xlsx"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatCSV, FormatJSON, FormatHTML, FormatXLSX}
}

// ParseFormat maps a format name or common alias to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt", "tsv":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "html", "htm":
		return FormatHTML, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Binary reports whether the format's output is not text.
func (f Format) Binary() bool {
	return f == FormatXLSX
}

// Write renders tables to w in the given format. Text formats separate
// tables with a blank line.
func Write(w io.Writer, format Format, tables []*model.Table) error {
	switch format {
	case FormatJSON:
		return JSON(w, tables)
	case FormatHTML:
		return HTML(w, tables)
	case FormatXLSX:
		b, err := XLSX(tables)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case FormatText, FormatMarkdown, FormatCSV:
		for i, t := range tables {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, render(format, t)); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func render(format Format, t *model.Table) string {
	switch format {
	case FormatMarkdown:
		if t.Name == "" {
			return t.ToMarkdown()
		}
		return "## " + t.Name + "\n\n" + t.ToMarkdown()
	case FormatCSV:
		return t.ToCSV()
	default:
		return t.GetText()
	}
}

// JSON writes tables as an indented JSON array.
func JSON(w io.Writer, tables []*model.Table) error {
	if tables == nil {
		tables = []*model.Table{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tables)
}
