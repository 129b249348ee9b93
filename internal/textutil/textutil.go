// Package textutil holds the text predicates shared by the grid and lookup
// paths: numeric detection and case-insensitive keyword matching.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// numberPattern matches a signed decimal number after cleaning.
var numberPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// StripNumeric removes currency symbols, thousands separators, percent signs
// and whitespace from s.
func StripNumeric(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == ',' || r == '%':
			return -1
		case unicode.IsSpace(r):
			return -1
		case unicode.Is(unicode.Sc, r):
			return -1
		}
		return r
	}, s)
}

// IsNumeric reports whether s is a number once currency symbols, commas,
// percent signs and whitespace are stripped. "1,250", "$3.50" and "15 %"
// are numeric; "12g" and "<1" are not.
func IsNumeric(s string) bool {
	return numberPattern.MatchString(StripNumeric(s))
}

// Len returns the number of runes in s.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Normalize applies NFKC normalization and trims surrounding whitespace, so
// ligatures and full-width digits compare equal to their plain forms.
func Normalize(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

// Fold returns a case-folded, normalized form of s for keyword matching.
// A Caser is stateful, so a new one is built per call.
func Fold(s string) string {
	return cases.Fold().String(Normalize(s))
}

// Upper returns the upper-case form of s.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// ContainsAny reports whether the folded form of s contains the folded form
// of any keyword.
func ContainsAny(s string, keywords []string) bool {
	folded := Fold(s)
	for _, kw := range keywords {
		k := Fold(kw)
		if k != "" && strings.Contains(folded, k) {
			return true
		}
	}
	return false
}
