package figfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/geopar/angle"
	"github.com/katalvlaran/geopar/figure"
)

// maxPrealloc bounds the slice reserved from the header count.
const maxPrealloc = 1024

// ReadText parses the line-oriented format:
//
//	# comment
//	N DIM
//	p1, p2, p3; a1, a2, a3
//	...
//
// N is the number of triangle lines that follow and DIM the angle
// dimension. Each angle is "x" or DIM space-separated coefficients.
// Blank lines and lines starting with '#' are skipped anywhere.
func ReadText(r io.Reader) (*figure.Mesh, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, commentPrefix) {
				continue
			}
			return line, true
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("missing header: %w", ErrSyntax)
	}
	n, dim, err := parseHeader(header)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo, err)
	}

	// n is untrusted; the count check below catches a short file.
	triangles := make([]*figure.Triangle, 0, min(n, maxPrealloc))
	for len(triangles) < n {
		line, ok := next()
		if !ok {
			break
		}
		t, err := parseTriangle(line, dim)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		triangles = append(triangles, t)
	}
	if extra, ok := next(); ok {
		return nil, fmt.Errorf("line %d: %q after %d triangles: %w", lineNo, extra, n, ErrSyntax)
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if len(triangles) != n {
		return nil, fmt.Errorf("header announces %d triangles, found %d: %w", n, len(triangles), ErrSyntax)
	}

	if n == 0 {
		return figure.Build(dim, nil)
	}

	return figure.NewMesh(triangles...)
}

func parseHeader(line string) (n, dim int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("header %q: want \"N DIM\": %w", line, ErrSyntax)
	}
	if n, err = strconv.Atoi(fields[0]); err != nil || n < 0 {
		return 0, 0, fmt.Errorf("header %q: bad triangle count: %w", line, ErrSyntax)
	}
	if dim, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("header %q: bad dimension: %w", line, ErrSyntax)
	}
	if dim < 1 || dim > angle.MaxDimension {
		return 0, 0, fmt.Errorf("header %q: %w", line, angle.ErrBadDimension)
	}

	return n, dim, nil
}

func parseTriangle(line string, dim int) (*figure.Triangle, error) {
	parts := strings.Split(line, ";")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%q: want \"p1, p2, p3; a1, a2, a3\": %w", line, ErrSyntax)
	}

	vs := strings.Split(parts[0], ",")
	if len(vs) != 3 {
		return nil, fmt.Errorf("%q: want 3 vertices, got %d: %w", line, len(vs), ErrSyntax)
	}
	vertices := make([]int, 3)
	for i, s := range vs {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || v < 0 {
			return nil, fmt.Errorf("vertex %q: %w", strings.TrimSpace(s), ErrSyntax)
		}
		vertices[i] = v
	}

	as := strings.Split(parts[1], ",")
	if len(as) != 3 {
		return nil, fmt.Errorf("%q: want 3 angles, got %d: %w", line, len(as), ErrSyntax)
	}
	angles := make([]angle.Angle, 3)
	for i, s := range as {
		a, err := angle.Parse(s, dim)
		if err != nil {
			return nil, err
		}
		angles[i] = a
	}

	return figure.NewTriangle(vertices, angles)
}

// WriteText writes m in the format read by ReadText. Unknown angles are
// written as "x", so a partly solved figure reads back unchanged.
func WriteText(w io.Writer, m *figure.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", m.Len(), max(m.Dim(), 1))
	for _, t := range m.Triangles() {
		vs, as := t.Vertices(), t.Angles()
		fmt.Fprintf(bw, "%d, %d, %d; %s, %s, %s\n",
			vs[0], vs[1], vs[2], as[0].Tokens(), as[1].Tokens(), as[2].Tokens())
	}

	return bw.Flush()
}
