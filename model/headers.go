package model

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`^Column \d+$`)

// PlaceholderHeader returns the generic name of the column at index,
// counting the label column as "Column 1".
func PlaceholderHeader(index int) string {
	return fmt.Sprintf("Column %d", index+1)
}

// IsPlaceholderHeader reports whether name is a generic "Column N" name.
func IsPlaceholderHeader(name string) bool {
	return placeholderPattern.MatchString(strings.TrimSpace(name))
}

// HeaderNames hands out unique header names for one table. A repeated name
// gets the first free " (n)" suffix, starting at 2.
type HeaderNames struct {
	used map[string]bool
}

// Unique returns name, or name with a suffix if it was handed out before.
func (h *HeaderNames) Unique(name string) string {
	if h.used == nil {
		h.used = make(map[string]bool)
	}
	candidate := name
	for n := 2; h.used[candidate]; n++ {
		candidate = fmt.Sprintf("%s (%d)", name, n)
	}
	h.used[candidate] = true
	return candidate
}
