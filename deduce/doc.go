// Package deduce fills unknown angles of a figure.Mesh by applying three
// inference rules until nothing new follows.
//
// Rules:
//
//   - 180° (RuleTriangleSum): a triangle with two known angles gets its third.
//   - 360° (RuleVertexSum): an interior vertex with one unknown apex angle
//     gets it as 360 minus the others.
//   - Pairing (RulePairing): around an interior vertex with k triangles, if
//     exactly two forward/backward angles are unknown and the known forward
//     and backward angles match as multisets, both unknowns get
//     ((k−2)·180 − known sum) / 2.
//
// Driver:
//
//	stage 1: passes of 180°, 360°               until a pass writes nothing
//	stage 2: passes of 180°, 360°, pairing      (only WithPairing(true) and
//	                                             unknowns left)
//
// Each rule reports the slots it wrote; the driver sums them to decide
// whether to run another pass. Termination follows from monotonicity: a
// rule writes only unknown slots, and there are finitely many.
//
// Options:
//
//   - WithPairing(bool)       enable stage 2.
//   - WithLogger(*zap.Logger) debug events per pass and per deduction.
//   - WithOnDeduce(fn)        hook called for every written slot.
//
// Errors:
//
//   - ErrNilMesh              nil mesh.
//   - figure.ErrMalformedMesh a vertex fan cannot be rebuilt.
//   - angle errors            only on broken invariants (mixed dimensions).
package deduce
