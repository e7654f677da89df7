package deduce

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/geopar/angle"
	"github.com/katalvlaran/geopar/figure"
)

// Rule identifies one of the three inference rules.
type Rule int

const (
	// RuleTriangleSum is the 180° rule: the angles of a triangle add up to 180.
	RuleTriangleSum Rule = iota + 1
	// RuleVertexSum is the 360° rule: the angles around an interior vertex add up to 360.
	RuleVertexSum
	// RulePairing is the pairing rule: around an interior vertex the forward
	// and backward angles form equal multisets.
	RulePairing
)

// String returns a short name for r.
func (r Rule) String() string {
	switch r {
	case RuleTriangleSum:
		return "180"
	case RuleVertexSum:
		return "360"
	case RulePairing:
		return "pairing"
	default:
		return "unknown"
	}
}

// Deduction records one angle slot written by a rule.
type Deduction struct {
	Rule     Rule
	Pass     int              // 1-based pass number across both stages
	Triangle *figure.Triangle // triangle whose slot was written
	Vertex   int              // vertex of the written slot
	Value    angle.Angle      // value written
}

// Result summarises a Run.
type Result struct {
	// Passes counts full passes over the enabled rules, including the final
	// pass that found nothing new.
	Passes int
	// Applied counts written slots per rule.
	Applied map[Rule]int
	// PairingUsed reports whether the pairing stage ran.
	PairingUsed bool
	// Remaining is the number of unknown slots left at the fixpoint.
	Remaining int
	// Deductions lists every written slot in order.
	Deductions []Deduction
}

// Total returns the number of slots written by all rules.
func (r *Result) Total() int {
	return len(r.Deductions)
}

// Option configures an Engine.
type Option func(*Options)

// Options holds Engine settings.
type Options struct {
	// Pairing enables the pairing stage once the 180° and 360° rules stall.
	Pairing bool
	// Logger receives debug events per pass and per deduction. Never nil after New.
	Logger *zap.Logger
	// OnDeduce, if non-nil, is called after every written slot.
	OnDeduce func(Deduction)
}

// DefaultOptions returns Options with pairing disabled, a no-op logger and no hook.
func DefaultOptions() Options {
	return Options{
		Pairing:  false,
		Logger:   zap.NewNop(),
		OnDeduce: nil,
	}
}

// WithPairing enables or disables the pairing stage.
func WithPairing(enabled bool) Option {
	return func(o *Options) {
		o.Pairing = enabled
	}
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnDeduce installs fn as a per-deduction hook.
func WithOnDeduce(fn func(Deduction)) Option {
	return func(o *Options) {
		o.OnDeduce = fn
	}
}
