package model

// HeaderCandidate is a fragment recognised as a column header by keyword.
type HeaderCandidate struct {
	Text     string       `json:"text"`
	Fragment TextFragment `json:"fragment"`
}

// RowCandidate is a fragment recognised as a row label in the left margin.
// Section holds the most recent section marker above the row, if any.
type RowCandidate struct {
	Text     string       `json:"text"`
	Fragment TextFragment `json:"fragment"`
	Section  string       `json:"section,omitempty"`
}
