package figure

import (
	"fmt"

	"github.com/katalvlaran/geopar/angle"
)

// Corner names one angle slot: the angle of Triangle at Vertex.
type Corner struct {
	Triangle *Triangle
	Vertex   int
}

// Angle returns the current value of the slot.
func (c Corner) Angle() angle.Angle {
	a, _ := c.Triangle.AngleAt(c.Vertex)

	return a
}

// Set overwrites the slot.
func (c Corner) Set(a angle.Angle) error {
	return c.Triangle.SetAngleAt(c.Vertex, a)
}

// Wheel is the clockwise fan around Center with its corners split by role.
// For the i-th triangle of Fan:
//
//	Apex[i]     is the angle at Center,
//	Forward[i]  is the angle at the vertex following Center,
//	Backward[i] is the angle at the vertex preceding Center.
type Wheel struct {
	Center   int
	Fan      []*Triangle
	Apex     []Corner
	Forward  []Corner
	Backward []Corner
}

// Fan returns the triangles containing v in clockwise order.
//
// The order is rebuilt from local adjacency only: starting from one
// triangle, a remaining triangle is put in front when its vertex preceding
// v is the head's vertex following v, or at the back when its vertex
// following v is the tail's vertex preceding v. A closed fan comes back
// starting at an arbitrary triangle.
//
// Returns ErrVertexNotFound if no triangle holds v, and ErrMalformedMesh if
// the triangles around v do not form a single contiguous fan.
// Complexity: O(T + k²) for a fan of k triangles.
func (m *Mesh) Fan(v int) ([]*Triangle, error) {
	var members []*Triangle
	for _, t := range m.triangles {
		if t.Has(v) {
			members = append(members, t)
		}
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("Fan(%d): %w", v, ErrVertexNotFound)
	}

	ordered := make([]*Triangle, 0, len(members))
	ordered = append(ordered, members[0])
	remaining := append([]*Triangle(nil), members[1:]...)

	for len(remaining) > 0 {
		_, headNext := ordered[0].around(v)
		tailPrev, _ := ordered[len(ordered)-1].around(v)

		placed := false
		for i, t := range remaining {
			prev, next := t.around(v)
			switch {
			case prev == headNext:
				ordered = append([]*Triangle{t}, ordered...)
				placed = true
			case next == tailPrev:
				ordered = append(ordered, t)
				placed = true
			}
			if placed {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
		if !placed {
			return nil, fmt.Errorf("Fan(%d): %d of %d triangles do not continue the fan: %w",
				v, len(remaining), len(members), ErrMalformedMesh)
		}
	}

	return ordered, nil
}

// Wheel returns the fan around v together with its apex, forward and
// backward corners.
func (m *Mesh) Wheel(v int) (*Wheel, error) {
	fan, err := m.Fan(v)
	if err != nil {
		return nil, err
	}
	w := &Wheel{
		Center:   v,
		Fan:      fan,
		Apex:     make([]Corner, len(fan)),
		Forward:  make([]Corner, len(fan)),
		Backward: make([]Corner, len(fan)),
	}
	for i, t := range fan {
		prev, next := t.around(v)
		w.Apex[i] = Corner{Triangle: t, Vertex: v}
		w.Forward[i] = Corner{Triangle: t, Vertex: next}
		w.Backward[i] = Corner{Triangle: t, Vertex: prev}
	}

	return w, nil
}

// IsInterior reports whether v is enclosed by its fan: more than two
// triangles that together touch exactly as many other vertices as there are
// triangles, which happens only when the fan closes on itself.
func (m *Mesh) IsInterior(v int) (bool, error) {
	fan, err := m.Fan(v)
	if err != nil {
		return false, err
	}
	if len(fan) <= 2 {
		return false, nil
	}
	others := make(map[int]struct{}, len(fan)+1)
	for _, t := range fan {
		for _, u := range t.vertices {
			if u != v {
				others[u] = struct{}{}
			}
		}
	}

	return len(others) == len(fan), nil
}

// InteriorVertices returns the interior vertices of m in ascending order.
// Any vertex with a malformed fan fails the whole query with ErrMalformedMesh.
func (m *Mesh) InteriorVertices() ([]int, error) {
	var out []int
	for _, v := range m.Vertices() {
		ok, err := m.IsInterior(v)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, v)
		}
	}

	return out, nil
}

// Components groups triangle indices into parts connected through shared
// edges. Each part lists indices in discovery order.
// Time: O(T) expected; Memory: O(T).
func (m *Mesh) Components() [][]int {
	byEdge := make(map[edge][]int, 3*len(m.triangles))
	for i, t := range m.triangles {
		for k := 0; k < 3; k++ {
			key := undirected(t.vertices[k], t.vertices[(k+1)%3])
			byEdge[key] = append(byEdge[key], i)
		}
	}

	seen := make([]bool, len(m.triangles))
	var comps [][]int
	for i0 := range m.triangles {
		if seen[i0] {
			continue
		}
		// BFS over edge-adjacent triangles
		queue := []int{i0}
		seen[i0] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			t := m.triangles[u]
			for k := 0; k < 3; k++ {
				key := undirected(t.vertices[k], t.vertices[(k+1)%3])
				for _, w := range byEdge[key] {
					if !seen[w] {
						seen[w] = true
						queue = append(queue, w)
					}
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// around returns the vertices preceding and following v. The caller
// guarantees v is a vertex of t.
func (t *Triangle) around(v int) (prev, next int) {
	for i, u := range t.vertices {
		if u == v {
			return t.vertices[(i+2)%3], t.vertices[(i+1)%3]
		}
	}

	return -1, -1
}

func undirected(a, b int) edge {
	if a > b {
		a, b = b, a
	}

	return edge{a, b}
}
