package tabgrid

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/tabgrid/model"
)

// WarningCode classifies a Warning.
type WarningCode string

const (
	// WarnNoTables means reconstruction finished without finding a table.
	WarnNoTables WarningCode = "NO_TABLES"

	// WarnCharacterLevel means most fragments hold a single character, so
	// words were not assembled upstream and cells will be fragmented.
	WarnCharacterLevel WarningCode = "CHARACTER_LEVEL"

	// WarnEmptyPage means the source produced no fragments.
	WarnEmptyPage WarningCode = "EMPTY_PAGE"

	// WarnPageSkipped means one page of a document could not be read and
	// was left out of a document-wide result.
	WarnPageSkipped WarningCode = "PAGE_SKIPPED"
)

// Warning is a non-fatal issue: the operation succeeded but its result may
// be empty or imperfect.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return string(w.Code) + ": " + w.Message
}

// FormatWarnings joins warnings into one line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// HasWarning reports whether warnings contains code.
func HasWarning(warnings []Warning, code WarningCode) bool {
	for _, w := range warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// isCharacterLevel detects if fragments appear to be character-level
// (one character per fragment).
// Returns true if more than 60% of fragments contain single characters.
func isCharacterLevel(fragments []model.TextFragment) bool {
	if len(fragments) < 10 {
		return false // Not enough data to determine
	}

	singleCharCount := 0
	for _, frag := range fragments {
		if utf8.RuneCountInString(strings.TrimSpace(frag.Text)) <= 1 {
			singleCharCount++
		}
	}

	return float64(singleCharCount)/float64(len(fragments)) > 0.6
}

// fragmentWarnings inspects loaded fragments for problems worth reporting.
func fragmentWarnings(fragments []model.TextFragment) []Warning {
	if len(fragments) == 0 {
		return []Warning{{Code: WarnEmptyPage, Message: "no text fragments on the page"}}
	}
	if isCharacterLevel(fragments) {
		return []Warning{{Code: WarnCharacterLevel, Message: "most fragments hold a single character; cells may be split"}}
	}
	return nil
}
