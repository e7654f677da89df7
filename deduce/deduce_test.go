package deduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/geopar/deduce"
	"github.com/katalvlaran/geopar/figure"
	"github.com/katalvlaran/geopar/validate"
)

// EngineSuite exercises the fixpoint driver on small figures.
type EngineSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

// wheel builds k triangles [0, i, i+1] around centre 0; each row holds the
// (apex, forward, backward) angle texts.
func (s *EngineSuite) wheel(dim int, rows ...[3]string) *figure.Mesh {
	k := len(rows)
	specs := make([]figure.TriangleSpec, k)
	for i, r := range rows {
		specs[i] = figure.TriangleSpec{
			A: 0, B: i + 1, C: (i+1)%k + 1,
			AngleA: r[0], AngleB: r[1], AngleC: r[2],
		}
	}
	m, err := figure.Build(dim, specs)
	s.Require().NoError(err)

	return m
}

func (s *EngineSuite) angleAt(m *figure.Mesh, v1, v2, v3 int) string {
	a, err := m.AngleAt(v1, v2, v3)
	s.Require().NoError(err)

	return a.String()
}

func (s *EngineSuite) allRulesHold(m *figure.Mesh) bool {
	ok, err := validate.AllRules(m)
	s.Require().NoError(err)

	return ok
}

// TestTwoTriangles deduces the last angle of the second triangle by the 180° rule.
func (s *EngineSuite) TestTwoTriangles() {
	m, err := figure.Build(1, []figure.TriangleSpec{
		{A: 1, B: 3, C: 2, AngleA: "30", AngleB: "20", AngleC: "130"},
		{A: 2, B: 3, C: 4, AngleA: "25", AngleB: "35", AngleC: "x"},
	})
	s.Require().NoError(err)

	res, err := deduce.Run(m)
	s.Require().NoError(err)
	s.Equal("120", s.angleAt(m, 2, 4, 3))
	s.Equal(1, res.Applied[deduce.RuleTriangleSum])
	s.Equal(0, res.Remaining)
	s.False(res.PairingUsed)
	s.True(s.allRulesHold(m))
}

// TestHexagon resolves six apex angles of 60° around one interior vertex.
func (s *EngineSuite) TestHexagon() {
	rows := make([][3]string, 6)
	for i := range rows {
		rows[i] = [3]string{"x", "60", "60"}
	}
	m := s.wheel(1, rows...)

	res, err := deduce.Run(m)
	s.Require().NoError(err)
	for i := 1; i <= 6; i++ {
		s.Equal("60", s.angleAt(m, i, 0, i%6+1), "apex of triangle %d", i)
	}
	s.Equal(6, res.Total())
	s.True(m.AllAnglesKnown())
	s.True(s.allRulesHold(m))
}

// TestHexagon_InconsistentPremise keeps 20° base angles: the 180° rule
// forces 140° apexes and the validator rejects the 360° sum.
func (s *EngineSuite) TestHexagon_InconsistentPremise() {
	rows := make([][3]string, 6)
	for i := range rows {
		rows[i] = [3]string{"x", "20", "20"}
	}
	m := s.wheel(1, rows...)

	_, err := deduce.Run(m)
	s.Require().NoError(err)
	s.Equal("140", s.angleAt(m, 1, 0, 2))
	s.True(m.AllAnglesKnown())

	ok, err := validate.VertexSum(m)
	s.Require().NoError(err)
	s.False(ok)
}

// TestCascade needs the 360° rule to unlock a last 180° step.
func (s *EngineSuite) TestCascade() {
	rows := make([][3]string, 6)
	for i := 0; i < 5; i++ {
		rows[i] = [3]string{"x", "60", "60"}
	}
	rows[5] = [3]string{"x", "x", "60"}
	m := s.wheel(1, rows...)

	res, err := deduce.Run(m)
	s.Require().NoError(err)
	s.Equal(6, res.Applied[deduce.RuleTriangleSum])
	s.Equal(1, res.Applied[deduce.RuleVertexSum])
	s.Equal(3, res.Passes)
	s.Equal("60", s.angleAt(m, 1, 6, 0))
	s.True(s.allRulesHold(m))

	// The 360° deduction comes from pass 1, the final 180° one from pass 2.
	var vertexRule deduce.Deduction
	for _, d := range res.Deductions {
		if d.Rule == deduce.RuleVertexSum {
			vertexRule = d
		}
	}
	s.Equal(1, vertexRule.Pass)
	s.Equal(0, vertexRule.Vertex)
	s.Equal(2, res.Deductions[len(res.Deductions)-1].Pass)
}

// TestVertexRule checks 360° closure on a single application.
func (s *EngineSuite) TestVertexRule() {
	m := s.wheel(1,
		[3]string{"100", "40", "40"},
		[3]string{"80", "50", "50"},
		[3]string{"90", "45", "45"},
		[3]string{"x", "x", "x"},
	)
	ds, err := deduce.ApplyVertexRule(m)
	s.Require().NoError(err)
	s.Require().Len(ds, 1)
	s.Equal(0, ds[0].Vertex)
	s.Equal("90", ds[0].Value.String())
	s.Equal("90", s.angleAt(m, 4, 0, 1))

	ds, err = deduce.ApplyVertexRule(m)
	s.Require().NoError(err)
	s.Empty(ds)
}

func (s *EngineSuite) pairingFigure(lastForward, lastBackward string) *figure.Mesh {
	return s.wheel(1,
		[3]string{"90", "x", "x"},
		[3]string{"90", "30", "60"},
		[3]string{"90", "60", "30"},
		[3]string{"90", lastForward, lastBackward},
	)
}

// TestPairing resolves two base angles only once the pairing rule is enabled.
func (s *EngineSuite) TestPairing() {
	m := s.pairingFigure("45", "45")
	res, err := deduce.Run(m)
	s.Require().NoError(err)
	s.Equal(2, res.Remaining)
	s.Equal(1, res.Passes)
	s.False(res.PairingUsed)

	res, err = deduce.Run(m, deduce.WithPairing(true))
	s.Require().NoError(err)
	s.True(res.PairingUsed)
	s.Equal(2, res.Applied[deduce.RulePairing])
	s.Equal(0, res.Remaining)
	s.Equal("45", s.angleAt(m, 0, 1, 2))
	s.Equal("45", s.angleAt(m, 0, 2, 1))
	s.True(s.allRulesHold(m))
}

// TestPairing_BagsDiffer leaves the figure alone when the known forward and
// backward angles do not match.
func (s *EngineSuite) TestPairing_BagsDiffer() {
	m := s.pairingFigure("40", "50")
	res, err := deduce.Run(m, deduce.WithPairing(true))
	s.Require().NoError(err)
	s.True(res.PairingUsed)
	s.Equal(0, res.Total())
	s.Equal(2, res.Remaining)
}

// TestSymbolic carries one unknown α through both cheap rules.
func (s *EngineSuite) TestSymbolic() {
	m := s.wheel(2,
		[3]string{"x", "1 0", "0 60"},
		[3]string{"0 120", "0 30", "0 30"},
		[3]string{"x", "x", "0 30"},
	)
	_, err := deduce.Run(m)
	s.Require().NoError(err)
	s.Equal("-α + 120", s.angleAt(m, 1, 0, 2))
	s.Equal("α + 120", s.angleAt(m, 3, 0, 1))
	s.Equal("-α + 30", s.angleAt(m, 0, 3, 1))

	ok, err := validate.TriangleSum(m)
	s.Require().NoError(err)
	s.True(ok)
	ok, err = validate.VertexSum(m)
	s.Require().NoError(err)
	s.True(ok)
}

// TestIdempotent runs the engine twice; the second run changes nothing.
func (s *EngineSuite) TestIdempotent() {
	rows := make([][3]string, 6)
	for i := 0; i < 5; i++ {
		rows[i] = [3]string{"x", "60", "60"}
	}
	rows[5] = [3]string{"x", "x", "60"}
	m := s.wheel(1, rows...)

	_, err := deduce.Run(m, deduce.WithPairing(true))
	s.Require().NoError(err)
	snapshot := m.String()

	res, err := deduce.Run(m, deduce.WithPairing(true))
	s.Require().NoError(err)
	s.Equal(0, res.Total())
	s.Equal(1, res.Passes)
	s.False(res.PairingUsed, "nothing left to pair")
	s.Equal(snapshot, m.String())
}

// TestHooksAndLogging checks that every deduction reaches the hook and the logger.
func (s *EngineSuite) TestHooksAndLogging() {
	core, logs := observer.New(zapcore.DebugLevel)
	var seen []deduce.Deduction

	rows := make([][3]string, 6)
	for i := range rows {
		rows[i] = [3]string{"x", "60", "60"}
	}
	m := s.wheel(1, rows...)

	eng := deduce.New(
		deduce.WithLogger(zap.New(core)),
		deduce.WithOnDeduce(func(d deduce.Deduction) { seen = append(seen, d) }),
	)
	res, err := eng.Run(m)
	s.Require().NoError(err)
	s.Len(seen, res.Total())
	s.Equal(res.Total(), logs.FilterMessage("angle deduced").Len())
	s.Equal(1, logs.FilterMessage("fixpoint reached").Len())
}

func (s *EngineSuite) TestErrors() {
	_, err := deduce.Run(nil)
	s.ErrorIs(err, deduce.ErrNilMesh)

	bowtie := make([]*figure.Triangle, 0, 5)
	for _, vs := range [][]int{{0, 1, 2}, {0, 3, 4}, {2, 1, 5}, {4, 3, 5}, {1, 4, 5}} {
		tr, err := figure.NewConstTriangle(vs, 60, 60, 60)
		s.Require().NoError(err)
		bowtie = append(bowtie, tr)
	}
	m, err := figure.NewMesh(bowtie...)
	s.Require().NoError(err)
	_, err = deduce.Run(m)
	s.ErrorIs(err, figure.ErrMalformedMesh)
}

func TestDefaultOptions(t *testing.T) {
	o := deduce.New(deduce.WithLogger(nil)).Options()
	require.False(t, o.Pairing)
	require.NotNil(t, o.Logger)
	require.Nil(t, o.OnDeduce)
	require.Equal(t, "pairing", deduce.RulePairing.String())
	require.Equal(t, "180", deduce.RuleTriangleSum.String())
	require.Equal(t, "360", deduce.RuleVertexSum.String())
}
