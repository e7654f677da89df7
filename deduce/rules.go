package deduce

import (
	"fmt"

	"github.com/katalvlaran/geopar/angle"
	"github.com/katalvlaran/geopar/figure"
)

// ApplySumRule runs the 180° rule once over every triangle of m and returns
// the slots it wrote. Pass is left zero.
func ApplySumRule(m *figure.Mesh) ([]Deduction, error) {
	var out []Deduction
	for _, t := range m.Triangles() {
		before := t.Angles()
		changed, err := t.CompleteBySumRule()
		if err != nil {
			return out, fmt.Errorf("180 rule: %w", err)
		}
		if !changed {
			continue
		}
		after := t.Angles()
		for i := range after {
			if !before[i].IsKnown() && after[i].IsKnown() {
				out = append(out, Deduction{
					Rule:     RuleTriangleSum,
					Triangle: t,
					Vertex:   t.Vertices()[i],
					Value:    after[i],
				})
			}
		}
	}

	return out, nil
}

// ApplyVertexRule runs the 360° rule once over every interior vertex of m:
// when exactly one apex angle around the vertex is unknown it becomes 360
// minus the sum of the others.
func ApplyVertexRule(m *figure.Mesh) ([]Deduction, error) {
	interior, err := m.InteriorVertices()
	if err != nil {
		return nil, fmt.Errorf("360 rule: %w", err)
	}

	var out []Deduction
	for _, v := range interior {
		w, err := m.Wheel(v)
		if err != nil {
			return out, fmt.Errorf("360 rule: %w", err)
		}

		known, missing := split(w.Apex)
		if len(missing) != 1 {
			continue
		}

		sum, err := angle.Sum(m.Dim(), known...)
		if err != nil {
			return out, fmt.Errorf("360 rule at %d: %w", v, err)
		}
		value, err := sum.Embed(360).Sub(sum)
		if err != nil {
			return out, fmt.Errorf("360 rule at %d: %w", v, err)
		}
		if err = missing[0].Set(value); err != nil {
			return out, fmt.Errorf("360 rule at %d: %w", v, err)
		}
		out = append(out, Deduction{
			Rule:     RuleVertexSum,
			Triangle: missing[0].Triangle,
			Vertex:   missing[0].Vertex,
			Value:    value,
		})
	}

	return out, nil
}

// ApplyPairingRule runs the pairing rule once over every interior vertex of
// m. For a fan of k triangles, when exactly two of its forward and backward
// angles are unknown and the known forward angles equal the known backward
// angles as multisets, both unknowns become
//
//	((k − 2)·180 − sum of the known forward and backward angles) / 2.
func ApplyPairingRule(m *figure.Mesh) ([]Deduction, error) {
	interior, err := m.InteriorVertices()
	if err != nil {
		return nil, fmt.Errorf("pairing rule: %w", err)
	}

	var out []Deduction
	for _, v := range interior {
		w, err := m.Wheel(v)
		if err != nil {
			return out, fmt.Errorf("pairing rule: %w", err)
		}

		forward, fwdMissing := split(w.Forward)
		backward, bwdMissing := split(w.Backward)
		missing := append(fwdMissing, bwdMissing...)
		if len(missing) != 2 || !angle.SameMultiset(forward, backward) {
			continue
		}

		known := append(forward, backward...)
		sum, err := angle.Sum(m.Dim(), known...)
		if err != nil {
			return out, fmt.Errorf("pairing rule at %d: %w", v, err)
		}
		both, err := sum.Embed(int64(len(w.Fan)-2) * 180).Sub(sum)
		if err != nil {
			return out, fmt.Errorf("pairing rule at %d: %w", v, err)
		}
		value, err := both.DivInt(2)
		if err != nil {
			return out, fmt.Errorf("pairing rule at %d: %w", v, err)
		}
		for _, c := range missing {
			if err = c.Set(value); err != nil {
				return out, fmt.Errorf("pairing rule at %d: %w", v, err)
			}
			out = append(out, Deduction{
				Rule:     RulePairing,
				Triangle: c.Triangle,
				Vertex:   c.Vertex,
				Value:    value,
			})
		}
	}

	return out, nil
}

// split separates the known angles of corners from the corners still unknown.
func split(corners []figure.Corner) ([]angle.Angle, []figure.Corner) {
	var known []angle.Angle
	var missing []figure.Corner
	for _, c := range corners {
		if a := c.Angle(); a.IsKnown() {
			known = append(known, a)
		} else {
			missing = append(missing, c)
		}
	}

	return known, missing
}
