package figfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/geopar/figure"
)

var (
	// ErrSyntax indicates input that does not follow the file grammar.
	ErrSyntax = errors.New("figfile: syntax error")

	// ErrInvalid indicates a well-formed YAML document with invalid values.
	ErrInvalid = errors.New("figfile: invalid document")
)

const commentPrefix = "#"

// Format is a figure file encoding.
type Format int

const (
	FormatText Format = iota // "N DIM" header and one triangle per line
	FormatYAML               // unknowns + triangles document
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}

	return "text"
}

// FormatOf picks the format from the file extension: ".yaml" and ".yml"
// are YAML, anything else is text.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Read decodes a figure in format f.
func Read(r io.Reader, f Format) (*figure.Mesh, error) {
	if f == FormatYAML {
		return ReadYAML(r)
	}

	return ReadText(r)
}

// Write encodes m in format f.
func Write(w io.Writer, m *figure.Mesh, f Format) error {
	if f == FormatYAML {
		return WriteYAML(w, m)
	}

	return WriteText(w, m)
}

// Load reads the figure stored at path, choosing the format with FormatOf.
// Errors carry the path.
func Load(path string) (*figure.Mesh, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	m, err := Read(fh, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
