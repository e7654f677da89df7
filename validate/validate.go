// Package validate re-checks the three angle invariants on a figure.Mesh:
//
//   - TriangleSum: every triangle's angles add up to 180.
//   - VertexSum:   the angles at every interior vertex add up to 360.
//   - Pairing:     around every interior vertex, the forward angles and the
//     backward angles form equal multisets.
//
// The checks never modify the mesh. They compare angle values, so an
// unknown angle anywhere they look is reported as angle.ErrUnknownOperand
// rather than as a failed rule. An empty (or nil) mesh is ErrEmptyMesh.
package validate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/geopar/angle"
	"github.com/katalvlaran/geopar/figure"
)

// ErrEmptyMesh indicates a mesh without triangles.
var ErrEmptyMesh = errors.New("validate: mesh has no triangles")

// Report holds the outcome of each rule.
type Report struct {
	TriangleSum bool
	VertexSum   bool
	Pairing     bool
}

// OK reports whether all three rules hold.
func (r Report) OK() bool {
	return r.TriangleSum && r.VertexSum && r.Pairing
}

// TriangleSum reports whether every triangle's three angles add up to 180.
func TriangleSum(m *figure.Mesh) (bool, error) {
	if err := nonEmpty(m); err != nil {
		return false, err
	}
	for _, t := range m.Triangles() {
		as := t.Angles()
		sum, err := angle.Sum(m.Dim(), as[:]...)
		if err != nil {
			return false, fmt.Errorf("TriangleSum %v: %w", t.Vertices(), err)
		}
		ok, err := sum.EqualInt(180)
		if err != nil {
			return false, fmt.Errorf("TriangleSum %v: %w", t.Vertices(), err)
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// VertexSum reports whether the angles around every interior vertex add up to 360.
func VertexSum(m *figure.Mesh) (bool, error) {
	wheels, err := interiorWheels(m)
	if err != nil {
		return false, fmt.Errorf("VertexSum: %w", err)
	}
	for _, w := range wheels {
		sum, err := angle.Sum(m.Dim(), values(w.Apex)...)
		if err != nil {
			return false, fmt.Errorf("VertexSum at %d: %w", w.Center, err)
		}
		ok, err := sum.EqualInt(360)
		if err != nil {
			return false, fmt.Errorf("VertexSum at %d: %w", w.Center, err)
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// Pairing reports whether, around every interior vertex, the multiset of
// forward angles equals the multiset of backward angles.
func Pairing(m *figure.Mesh) (bool, error) {
	wheels, err := interiorWheels(m)
	if err != nil {
		return false, fmt.Errorf("Pairing: %w", err)
	}
	for _, w := range wheels {
		forward, backward := values(w.Forward), values(w.Backward)
		for _, a := range append(append([]angle.Angle(nil), forward...), backward...) {
			if !a.IsKnown() {
				return false, fmt.Errorf("Pairing at %d: %w", w.Center, angle.ErrUnknownOperand)
			}
		}
		if !angle.SameMultiset(forward, backward) {
			return false, nil
		}
	}

	return true, nil
}

// AllRules reports whether TriangleSum, VertexSum and Pairing all hold,
// checking them in that order and stopping at the first that fails.
func AllRules(m *figure.Mesh) (bool, error) {
	for _, check := range []func(*figure.Mesh) (bool, error){TriangleSum, VertexSum, Pairing} {
		ok, err := check(m)
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}

// Check runs all three rules without short-circuiting.
func Check(m *figure.Mesh) (Report, error) {
	var r Report
	var err error
	if r.TriangleSum, err = TriangleSum(m); err != nil {
		return r, err
	}
	if r.VertexSum, err = VertexSum(m); err != nil {
		return r, err
	}
	if r.Pairing, err = Pairing(m); err != nil {
		return r, err
	}

	return r, nil
}

func nonEmpty(m *figure.Mesh) error {
	if m == nil || m.IsEmpty() {
		return ErrEmptyMesh
	}

	return nil
}

func interiorWheels(m *figure.Mesh) ([]*figure.Wheel, error) {
	if err := nonEmpty(m); err != nil {
		return nil, err
	}
	interior, err := m.InteriorVertices()
	if err != nil {
		return nil, err
	}
	out := make([]*figure.Wheel, 0, len(interior))
	for _, v := range interior {
		w, err := m.Wheel(v)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}

	return out, nil
}

func values(cs []figure.Corner) []angle.Angle {
	out := make([]angle.Angle, len(cs))
	for i, c := range cs {
		out[i] = c.Angle()
	}

	return out
}
