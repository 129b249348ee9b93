package source

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Kind identifies the reader for a source file.
type Kind int

const (
	// Unknown indicates an unrecognized source.
	Unknown Kind = iota
	// JSON indicates a fragment array document.
	JSON
	// PDF indicates a PDF document.
	PDF
	// Image indicates a raster image read through OCR.
	Image
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case JSON:
		return "json"
	case PDF:
		return "pdf"
	case Image:
		return "image"
	default:
		return "unknown"
	}
}

// Detect determines the source kind from the filename extension.
func Detect(filename string) Kind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON
	case ".pdf":
		return PDF
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp", ".gif", ".webp":
		return Image
	default:
		return Unknown
	}
}

var imageMagic = [][]byte{
	{0x89, 'P', 'N', 'G'},
	{0xFF, 0xD8, 0xFF},
	{'I', 'I', 0x2A, 0x00},
	{'M', 'M', 0x00, 0x2A},
	[]byte("GIF8"),
	[]byte("BM"),
}

// DetectFromMagic determines the source kind from the leading bytes of a
// file. JSON is recognized by an opening bracket after optional whitespace.
func DetectFromMagic(data []byte) Kind {
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}
	for _, m := range imageMagic {
		if bytes.HasPrefix(data, m) {
			return Image
		}
	}
	if len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")) {
		return Image
	}
	if trimmed := bytes.TrimLeft(data, " \t\r\n\uFEFF"); len(trimmed) > 0 && trimmed[0] == '[' {
		return JSON
	}
	return Unknown
}

// DetectFile determines the kind of the file at path, by extension first and
// by content when the extension is not recognized. A file that cannot be
// read is Unknown.
func DetectFile(path string) Kind {
	if k := Detect(path); k != Unknown {
		return k
	}

	f, err := os.Open(path)
	if err != nil {
		return Unknown
	}
	defer f.Close()

	magic := make([]byte, 512)
	n, err := f.Read(magic)
	if err != nil && err != io.EOF {
		return Unknown
	}
	return DetectFromMagic(magic[:n])
}
