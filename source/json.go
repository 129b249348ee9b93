package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tsawler/tabgrid/model"
)

// ErrInvalidFragments is returned when JSON input does not describe an
// array of fragments.
var ErrInvalidFragments = errors.New("invalid fragment document")

// FragmentSchema is the JSON Schema fragment documents must satisfy.
const FragmentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["text", "x", "y"],
    "properties": {
      "text":   {"type": "string"},
      "x":      {"type": "number"},
      "y":      {"type": "number"},
      "width":  {"type": "number", "minimum": 0},
      "height": {"type": "number", "minimum": 0}
    }
  }
}`

var fragmentSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("fragments.json", strings.NewReader(FragmentSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("fragments.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
})

// ReadJSON decodes a fragment array from r. Whitespace-only fragments are
// dropped and coordinates are rounded to two decimals.
func ReadJSON(r io.Reader) ([]model.TextFragment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read fragments: %w", err)
	}

	schema, err := fragmentSchema()
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFragments, err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFragments, err)
	}

	var frags []model.TextFragment
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&frags); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFragments, err)
	}
	return model.CleanFragments(frags), nil
}

// ReadJSONFile is ReadJSON over the file at path.
func ReadJSONFile(path string) ([]model.TextFragment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes frags as an indented fragment array.
func WriteJSON(w io.Writer, frags []model.TextFragment) error {
	if frags == nil {
		frags = []model.TextFragment{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(frags)
}
