package figure

import (
	"fmt"

	"github.com/katalvlaran/geopar/angle"
)

// NewTriangle builds a triangle from clockwise vertices and the angles at
// those vertices, position by position.
//
// Returns ErrBadVertexCount unless there are exactly three distinct
// non-negative vertices and three angles, angle.ErrBadDimension for zero
// Angles, and angle.ErrDimensionMismatch if the angles disagree on dimension.
func NewTriangle(vertices []int, angles []angle.Angle) (*Triangle, error) {
	if len(vertices) != 3 || len(angles) != 3 {
		return nil, fmt.Errorf("NewTriangle(%v): %w", vertices, ErrBadVertexCount)
	}
	for _, v := range vertices {
		if v < 0 {
			return nil, fmt.Errorf("NewTriangle(%v): negative vertex %d: %w", vertices, v, ErrBadVertexCount)
		}
	}
	if vertices[0] == vertices[1] || vertices[1] == vertices[2] || vertices[0] == vertices[2] {
		return nil, fmt.Errorf("NewTriangle(%v): repeated vertex: %w", vertices, ErrBadVertexCount)
	}

	dim := angles[0].Dim()
	if dim < 1 {
		return nil, fmt.Errorf("NewTriangle(%v): %w", vertices, angle.ErrBadDimension)
	}
	for _, a := range angles[1:] {
		if a.Dim() != dim {
			return nil, fmt.Errorf("NewTriangle(%v): %w: %d != %d",
				vertices, angle.ErrDimensionMismatch, a.Dim(), dim)
		}
	}

	t := &Triangle{dim: dim}
	copy(t.vertices[:], vertices)
	copy(t.angles[:], angles)

	return t, nil
}

// NewConstTriangle builds a fully known triangle of dimension 1 from plain
// degree values.
func NewConstTriangle(vertices []int, degrees ...int64) (*Triangle, error) {
	if len(degrees) != 3 {
		return nil, fmt.Errorf("NewConstTriangle(%v): %d angles: %w", vertices, len(degrees), ErrBadVertexCount)
	}
	angles := make([]angle.Angle, 3)
	for i, d := range degrees {
		a, err := angle.FromInts(d)
		if err != nil {
			return nil, err
		}
		angles[i] = a
	}

	return NewTriangle(vertices, angles)
}

// Vertices returns the clockwise vertex labels.
func (t *Triangle) Vertices() [3]int { return t.vertices }

// Angles returns the angles in vertex order.
func (t *Triangle) Angles() [3]angle.Angle { return t.angles }

// Dim returns the angle dimension shared by all three slots.
func (t *Triangle) Dim() int { return t.dim }

// Has reports whether v is a vertex of t.
func (t *Triangle) Has(v int) bool {
	return t.vertices[0] == v || t.vertices[1] == v || t.vertices[2] == v
}

// HasAll reports whether t has exactly the vertex set {a, b, c}.
func (t *Triangle) HasAll(a, b, c int) bool {
	if a == b || b == c || a == c {
		return false
	}

	return t.Has(a) && t.Has(b) && t.Has(c)
}

// IndexOf returns the slot position of v.
func (t *Triangle) IndexOf(v int) (int, error) {
	for i, u := range t.vertices {
		if u == v {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%v: vertex %d: %w", t.vertices, v, ErrVertexNotFound)
}

// AngleAt returns the angle at vertex v.
func (t *Triangle) AngleAt(v int) (angle.Angle, error) {
	i, err := t.IndexOf(v)
	if err != nil {
		return angle.Angle{}, err
	}

	return t.angles[i], nil
}

// Following returns the vertex after v in clockwise order.
func (t *Triangle) Following(v int) (int, error) {
	i, err := t.IndexOf(v)
	if err != nil {
		return -1, err
	}

	return t.vertices[(i+1)%3], nil
}

// Preceding returns the vertex before v in clockwise order.
func (t *Triangle) Preceding(v int) (int, error) {
	i, err := t.IndexOf(v)
	if err != nil {
		return -1, err
	}

	return t.vertices[(i+2)%3], nil
}

// SetAngleAt overwrites the angle at vertex v.
func (t *Triangle) SetAngleAt(v int, a angle.Angle) error {
	i, err := t.IndexOf(v)
	if err != nil {
		return err
	}

	return t.SetAngleAtIndex(i, a)
}

// SetAngleAtIndex overwrites the angle in slot i (0..2).
func (t *Triangle) SetAngleAtIndex(i int, a angle.Angle) error {
	if i < 0 || i > 2 {
		return fmt.Errorf("%v: index %d: %w", t.vertices, i, ErrBadIndex)
	}
	if a.Dim() != t.dim {
		return fmt.Errorf("%v: %w: %d != %d", t.vertices, angle.ErrDimensionMismatch, a.Dim(), t.dim)
	}
	t.angles[i] = a

	return nil
}

// CountKnown returns how many of the three angles are known.
func (t *Triangle) CountKnown() int {
	n := 0
	for _, a := range t.angles {
		if a.IsKnown() {
			n++
		}
	}

	return n
}

// HasUnknown reports whether any angle of t is still unknown.
func (t *Triangle) HasUnknown() bool { return t.CountKnown() != 3 }

// CompleteBySumRule applies the 180° rule: when exactly two angles are
// known, the third becomes 180 minus their sum. The result may still
// involve unknowns if the two known angles do.
// Reports whether a slot was written; with 0, 1 or 3 known angles it does nothing.
func (t *Triangle) CompleteBySumRule() (bool, error) {
	if t.CountKnown() != 2 {
		return false, nil
	}

	missing := -1
	known := make([]angle.Angle, 0, 2)
	for i, a := range t.angles {
		if a.IsKnown() {
			known = append(known, a)
		} else {
			missing = i
		}
	}
	sum, err := angle.Sum(t.dim, known...)
	if err != nil {
		return false, fmt.Errorf("%v: %w", t.vertices, err)
	}
	third, err := sum.Embed(180).Sub(sum)
	if err != nil {
		return false, fmt.Errorf("%v: %w", t.vertices, err)
	}
	t.angles[missing] = third

	return true, nil
}

// String renders t as "Triangle: Vertices 1, 2, 3; Angles 30, x, α + 20".
func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle: Vertices %d, %d, %d; Angles %s, %s, %s",
		t.vertices[0], t.vertices[1], t.vertices[2],
		t.angles[0], t.angles[1], t.angles[2])
}
