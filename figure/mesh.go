package figure

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/geopar/angle"
)

// edge is a directed clockwise edge From→To of one triangle.
type edge struct{ from, to int }

// NewMesh assembles triangles into a mesh and checks its structure:
//
//   - all triangles share one angle dimension (angle.ErrDimensionMismatch);
//   - no two triangles have the same vertex set (ErrDuplicateTriangle);
//   - every directed clockwise edge occurs once, so an inner edge is shared by
//     exactly two consistently oriented triangles (ErrMalformedMesh);
//   - the triangles are connected through shared edges (ErrMalformedMesh).
//
// An empty mesh is valid. The triangles are held by reference.
// Complexity: O(T) expected time and memory.
func NewMesh(triangles ...*Triangle) (*Mesh, error) {
	m := &Mesh{triangles: make([]*Triangle, 0, len(triangles))}
	sets := make(map[[3]int]int, len(triangles))
	edges := make(map[edge]int, 3*len(triangles))

	for i, t := range triangles {
		if t == nil {
			return nil, fmt.Errorf("NewMesh: triangle %d is nil: %w", i, ErrMalformedMesh)
		}
		if i == 0 {
			m.dim = t.dim
		} else if t.dim != m.dim {
			return nil, fmt.Errorf("NewMesh: triangle %d: %w: %d != %d",
				i, angle.ErrDimensionMismatch, t.dim, m.dim)
		}

		key := sortedVertices(t)
		if j, ok := sets[key]; ok {
			return nil, fmt.Errorf("NewMesh: triangles %d and %d over %v: %w", j, i, key, ErrDuplicateTriangle)
		}
		sets[key] = i

		for k := 0; k < 3; k++ {
			e := edge{t.vertices[k], t.vertices[(k+1)%3]}
			if j, ok := edges[e]; ok {
				return nil, fmt.Errorf("NewMesh: edge %d→%d used by triangles %d and %d: %w",
					e.from, e.to, j, i, ErrMalformedMesh)
			}
			edges[e] = i
		}
		m.triangles = append(m.triangles, t)
	}

	if comps := m.Components(); len(comps) > 1 {
		return nil, fmt.Errorf("NewMesh: %d disconnected parts: %w", len(comps), ErrMalformedMesh)
	}

	return m, nil
}

// Build parses raw input tuples into a mesh of the given angle dimension.
// Angle texts follow angle.Parse; structural checks follow NewMesh. An empty
// mesh keeps dim.
func Build(dim int, specs []TriangleSpec) (*Mesh, error) {
	if dim < 1 || dim > angle.MaxDimension {
		return nil, fmt.Errorf("Build: %w: %d", angle.ErrBadDimension, dim)
	}
	triangles := make([]*Triangle, 0, len(specs))
	for i, s := range specs {
		angles := make([]angle.Angle, 3)
		for k, text := range [3]string{s.AngleA, s.AngleB, s.AngleC} {
			a, err := angle.Parse(text, dim)
			if err != nil {
				return nil, fmt.Errorf("Build: triangle %d: %w", i, err)
			}
			angles[k] = a
		}
		t, err := NewTriangle([]int{s.A, s.B, s.C}, angles)
		if err != nil {
			return nil, fmt.Errorf("Build: triangle %d: %w", i, err)
		}
		triangles = append(triangles, t)
	}

	m, err := NewMesh(triangles...)
	if err != nil {
		return nil, err
	}
	m.dim = dim

	return m, nil
}

// Len returns the number of triangles.
func (m *Mesh) Len() int { return len(m.triangles) }

// IsEmpty reports whether m has no triangles.
func (m *Mesh) IsEmpty() bool { return len(m.triangles) == 0 }

// Dim returns the shared angle dimension. An empty mesh from NewMesh has 0.
func (m *Mesh) Dim() int { return m.dim }

// Triangles returns the triangles in input order. The slice is a copy;
// the triangles are shared.
func (m *Mesh) Triangles() []*Triangle {
	out := make([]*Triangle, len(m.triangles))
	copy(out, m.triangles)

	return out
}

// Vertices returns the sorted union of all triangle vertices.
func (m *Mesh) Vertices() []int {
	seen := make(map[int]struct{})
	for _, t := range m.triangles {
		for _, v := range t.vertices {
			seen[v] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// AllAnglesKnown reports whether every angle slot is known.
func (m *Mesh) AllAnglesKnown() bool {
	return m.UnknownCount() == 0
}

// UnknownCount returns the number of unknown angle slots in the mesh.
func (m *Mesh) UnknownCount() int {
	n := 0
	for _, t := range m.triangles {
		n += 3 - t.CountKnown()
	}

	return n
}

// find returns the triangle with exactly the vertex set {v1, v2, v3}.
func (m *Mesh) find(v1, v2, v3 int) (*Triangle, error) {
	for _, t := range m.triangles {
		if t.HasAll(v1, v2, v3) {
			return t, nil
		}
	}

	return nil, fmt.Errorf("{%d, %d, %d}: %w", v1, v2, v3, ErrTriangleNotFound)
}

// AngleAt returns the angle at v2 inside the triangle {v1, v2, v3}.
func (m *Mesh) AngleAt(v1, v2, v3 int) (angle.Angle, error) {
	t, err := m.find(v1, v2, v3)
	if err != nil {
		return angle.Angle{}, err
	}

	return t.AngleAt(v2)
}

// SetAngleAt overwrites the angle at v2 inside the triangle {v1, v2, v3}.
func (m *Mesh) SetAngleAt(v1, v2, v3 int, a angle.Angle) error {
	t, err := m.find(v1, v2, v3)
	if err != nil {
		return err
	}

	return t.SetAngleAt(v2, a)
}

// UnknownCountAt returns how many triangles still have an unknown angle at v.
func (m *Mesh) UnknownCountAt(v int) (int, error) {
	n, found := 0, false
	for _, t := range m.triangles {
		i, err := t.IndexOf(v)
		if err != nil {
			continue
		}
		found = true
		if !t.angles[i].IsKnown() {
			n++
		}
	}
	if !found {
		return 0, fmt.Errorf("UnknownCountAt(%d): %w", v, ErrVertexNotFound)
	}

	return n, nil
}

// SumOfKnownAnglesAt adds up the known angles at v over all triangles
// containing v. With no known angle the result is the zero constant.
func (m *Mesh) SumOfKnownAnglesAt(v int) (angle.Angle, error) {
	var known []angle.Angle
	found := false
	for _, t := range m.triangles {
		i, err := t.IndexOf(v)
		if err != nil {
			continue
		}
		found = true
		if t.angles[i].IsKnown() {
			known = append(known, t.angles[i])
		}
	}
	if !found {
		return angle.Angle{}, fmt.Errorf("SumOfKnownAnglesAt(%d): %w", v, ErrVertexNotFound)
	}

	return angle.Sum(m.dim, known...)
}

// String renders one triangle per line.
func (m *Mesh) String() string {
	var sb strings.Builder
	for _, t := range m.triangles {
		sb.WriteString(t.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

func sortedVertices(t *Triangle) [3]int {
	k := t.vertices
	sort.Ints(k[:])

	return k
}
