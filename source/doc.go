// Package source reads text fragments from documents.
//
// Two readers are provided: JSON files holding a fragment array, validated
// against a JSON Schema before decoding, and PDF pages, whose glyphs are
// merged into runs and converted to a top-left origin. Image input goes
// through package ocr. Detect and DetectFile pick the reader for a path.
package source
