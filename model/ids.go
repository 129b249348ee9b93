package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// namespace roots every generated ID so tables from separate parses of the
// same input receive the same identifiers.
var namespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("tabgrid"))

// TableID derives a stable identifier from a table's position on the page
// and its headers.
func TableID(index int, headers []string) string {
	key := fmt.Sprintf("table:%d:%s", index, strings.Join(headers, "\x1f"))
	return uuid.NewSHA1(namespace, []byte(key)).String()
}

// RowID derives a stable identifier for the index-th row of a table.
func RowID(tableID string, index int, label string) string {
	parent, err := uuid.Parse(tableID)
	if err != nil {
		parent = namespace
	}
	key := fmt.Sprintf("row:%d:%s", index, label)
	return uuid.NewSHA1(parent, []byte(key)).String()
}
