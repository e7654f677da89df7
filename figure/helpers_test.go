package figure_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geopar/angle"
	"github.com/katalvlaran/geopar/figure"
)

// constTriangle builds a dimension-1 triangle or fails the test.
func constTriangle(t *testing.T, vs []int, degrees ...int64) *figure.Triangle {
	t.Helper()
	tr, err := figure.NewConstTriangle(vs, degrees...)
	require.NoError(t, err)

	return tr
}

// textTriangle builds a triangle from angle texts of dimension dim.
func textTriangle(t *testing.T, dim int, vs []int, texts ...string) *figure.Triangle {
	t.Helper()
	angles := make([]angle.Angle, len(texts))
	for i, s := range texts {
		a, err := angle.Parse(s, dim)
		require.NoError(t, err)
		angles[i] = a
	}
	tr, err := figure.NewTriangle(vs, angles)
	require.NoError(t, err)

	return tr
}

func mustMesh(t *testing.T, ts ...*figure.Triangle) *figure.Mesh {
	t.Helper()
	m, err := figure.NewMesh(ts...)
	require.NoError(t, err)

	return m
}

// sevenTriangles is a fully known figure: outer triangle 1-2-3 split into
// seven triangles around the inner points 4, 5 and 6.
func sevenTriangles(t *testing.T) *figure.Mesh {
	t.Helper()

	return mustMesh(t,
		constTriangle(t, []int{1, 2, 5}, 20, 10, 150),
		constTriangle(t, []int{5, 2, 6}, 80, 10, 90),
		constTriangle(t, []int{6, 2, 3}, 140, 10, 30),
		constTriangle(t, []int{4, 6, 3}, 80, 70, 30),
		constTriangle(t, []int{1, 4, 3}, 20, 130, 30),
		constTriangle(t, []int{1, 5, 4}, 20, 70, 90),
		constTriangle(t, []int{4, 5, 6}, 60, 60, 60),
	)
}

// hexagon builds six triangles [0, i, i+1] around centre 0 with the
// given angle texts (centre, following, preceding) for every triangle.
func hexagon(t *testing.T, apex, base string) *figure.Mesh {
	t.Helper()
	ts := make([]*figure.Triangle, 0, 6)
	for i := 1; i <= 6; i++ {
		next := i%6 + 1
		ts = append(ts, textTriangle(t, 1, []int{0, i, next}, apex, base, base))
	}

	return mustMesh(t, ts...)
}

func vertexSet(tr *figure.Triangle) []int {
	vs := tr.Vertices()

	return vs[:]
}
