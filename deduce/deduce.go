package deduce

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/geopar/figure"
)

// ErrNilMesh is returned when Run receives a nil mesh.
var ErrNilMesh = errors.New("deduce: mesh is nil")

// applyFn is one rule applied once over the whole mesh.
type applyFn struct {
	rule  Rule
	apply func(*figure.Mesh) ([]Deduction, error)
}

var (
	cheapRules = []applyFn{
		{RuleTriangleSum, ApplySumRule},
		{RuleVertexSum, ApplyVertexRule},
	}
	allRules = []applyFn{
		{RuleTriangleSum, ApplySumRule},
		{RuleVertexSum, ApplyVertexRule},
		{RulePairing, ApplyPairingRule},
	}
)

// Engine drives the inference rules over a mesh to a fixpoint.
// An Engine holds no per-run state and may be reused.
type Engine struct {
	opts Options
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return &Engine{opts: o}
}

// Options returns a copy of the engine settings.
func (e *Engine) Options() Options { return e.opts }

// Run deduces angles of m in place.
//
// Stage 1 repeats passes of the 180° and 360° rules until a pass writes
// nothing. If pairing is enabled and unknowns remain, stage 2 repeats
// passes of the 180°, 360° and pairing rules, in that order, until a pass
// writes nothing. Every rule only ever fills unknown slots, so each stage
// ends after at most (unknown slots + 1) passes.
//
// A fixpoint with unknowns left is a normal outcome, not an error.
func (e *Engine) Run(m *figure.Mesh) (*Result, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	res := &Result{Applied: make(map[Rule]int, 3)}
	log := e.opts.Logger

	if err := e.stage(m, res, cheapRules); err != nil {
		return res, err
	}
	if e.opts.Pairing && !m.AllAnglesKnown() {
		res.PairingUsed = true
		log.Debug("enabling pairing rule", zap.Int("unknown", m.UnknownCount()))
		if err := e.stage(m, res, allRules); err != nil {
			return res, err
		}
	}
	res.Remaining = m.UnknownCount()
	log.Debug("fixpoint reached",
		zap.Int("passes", res.Passes),
		zap.Int("deduced", res.Total()),
		zap.Int("remaining", res.Remaining),
		zap.Bool("pairing", res.PairingUsed))

	return res, nil
}

// stage repeats passes of rules until one pass writes nothing.
func (e *Engine) stage(m *figure.Mesh, res *Result, rules []applyFn) error {
	for {
		res.Passes++
		written := 0
		for _, r := range rules {
			ds, err := r.apply(m)
			e.record(res, ds)
			if err != nil {
				return fmt.Errorf("pass %d: %w", res.Passes, err)
			}
			written += len(ds)
		}
		e.opts.Logger.Debug("pass done", zap.Int("pass", res.Passes), zap.Int("written", written))
		if written == 0 {
			return nil
		}
	}
}

func (e *Engine) record(res *Result, ds []Deduction) {
	for _, d := range ds {
		d.Pass = res.Passes
		res.Applied[d.Rule]++
		res.Deductions = append(res.Deductions, d)
		e.opts.Logger.Debug("angle deduced",
			zap.Stringer("rule", d.Rule),
			zap.Int("pass", d.Pass),
			zap.Ints("triangle", vertices(d.Triangle)),
			zap.Int("vertex", d.Vertex),
			zap.Stringer("value", d.Value))
		if e.opts.OnDeduce != nil {
			e.opts.OnDeduce(d)
		}
	}
}

// Run is shorthand for New(opts...).Run(m).
func Run(m *figure.Mesh, opts ...Option) (*Result, error) {
	return New(opts...).Run(m)
}

func vertices(t *figure.Triangle) []int {
	vs := t.Vertices()

	return vs[:]
}
