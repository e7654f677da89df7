package figure

import (
	"errors"

	"github.com/katalvlaran/geopar/angle"
)

// Sentinel errors for figure operations.
var (
	// ErrBadVertexCount indicates a triangle without exactly three distinct,
	// non-negative vertex labels (or without exactly three angles).
	ErrBadVertexCount = errors.New("figure: triangle needs three distinct non-negative vertices")

	// ErrVertexNotFound indicates a vertex that the triangle or mesh does not contain.
	ErrVertexNotFound = errors.New("figure: vertex not found")

	// ErrBadIndex indicates an angle slot index outside 0..2.
	ErrBadIndex = errors.New("figure: angle index out of range")

	// ErrTriangleNotFound indicates no triangle has the requested vertex set.
	ErrTriangleNotFound = errors.New("figure: triangle not found")

	// ErrDuplicateTriangle indicates two triangles over the same vertex set.
	ErrDuplicateTriangle = errors.New("figure: duplicate triangle")

	// ErrMalformedMesh indicates triangles that do not form a single, consistently
	// oriented triangulation, or a vertex whose triangles do not form one fan.
	ErrMalformedMesh = errors.New("figure: malformed mesh")
)

// Triangle holds three vertex labels in clockwise order and the angle at
// each of them. Vertices never change; angle slots are overwritten as
// angles get deduced.
type Triangle struct {
	vertices [3]int
	angles   [3]angle.Angle
	dim      int
}

// Mesh is a triangulated figure: a fixed set of triangles sharing one angle
// dimension. Its structure never changes after NewMesh; only angle slots
// inside its triangles do.
type Mesh struct {
	triangles []*Triangle
	dim       int
}

// TriangleSpec is one raw input tuple: three clockwise vertices and the
// text of the angle at each (see angle.Parse).
type TriangleSpec struct {
	A, B, C                int
	AngleA, AngleB, AngleC string
}
