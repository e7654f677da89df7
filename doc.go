// Package geopar deduces unknown angles of triangulated plane figures with
// exact, symbolic arithmetic.
//
// What is in the box?
//
//	angle/       exact angles: rational coefficients over unknowns α, β, γ, …
//	figure/      triangles, the mesh, clockwise fans and interior vertices
//	deduce/      the 180°, 360° and pairing rules driven to a fixpoint
//	validate/    re-checks the three rules on a completed figure
//	solve/       the whole procedure and its verdict (1B, 1A, 2, INCONCLUSIVE)
//	figfile/     text and YAML figure files
//	cmd/geopar/  command-line front end
//
// Quick ASCII example: six triangles around vertex 0, every base angle 60°.
//
//	  2───3
//	 / \ / \
//	1───0───4
//	 \ / \ /
//	  6───5
//
// The 180° rule gives each apex at 0 the value 60°, the 360° rule is then
// satisfied at 0, and the figure is a unique consequence of its premises:
//
//	geopar solve hexagon.txt
//
// Angles are never floating point: "1/3 90" in a dimension-2 figure is
// (1/3)α + 90, and every sum, difference and halving stays exact.
package geopar
