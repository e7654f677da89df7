package solve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/geopar/deduce"
	"github.com/katalvlaran/geopar/figure"
	"github.com/katalvlaran/geopar/validate"
)

var (
	// ErrNoDecider is returned when PairingAsk is selected without a Decider.
	ErrNoDecider = errors.New("solve: pairing policy is ask but no decider is set")

	// ErrBadPolicy indicates an unrecognised pairing policy name.
	ErrBadPolicy = errors.New("solve: unknown pairing policy")
)

// Policy selects whether the pairing rule is tried once the 180° and 360°
// rules stall with unknowns left.
type Policy int

const (
	PairingAsk    Policy = iota // consult the Decider
	PairingAlways               // apply pairing without asking
	PairingNever                // stop after the 180° and 360° rules
)

var policyNames = map[Policy]string{
	PairingAsk:    "ask",
	PairingAlways: "always",
	PairingNever:  "never",
}

// String returns the flag spelling of p.
func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// Set parses s into p. Together with String and Type it lets *Policy serve
// as a command-line flag value.
func (p *Policy) Set(s string) error {
	v, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// Type names the flag value type.
func (p *Policy) Type() string { return "policy" }

// ParsePolicy maps "ask", "always" or "never" (any case) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for p, name := range policyNames {
		if name == want {
			return p, nil
		}
	}

	return PairingAsk, fmt.Errorf("%q: %w", s, ErrBadPolicy)
}

// Outcome classifies a solved figure.
type Outcome int

const (
	// OutcomeUnique: every angle follows from the 180° and 360° rules and
	// the completed figure satisfies all three rules.
	OutcomeUnique Outcome = iota
	// OutcomeConsequence: pairing was needed, and afterwards every angle is
	// known and all three rules hold.
	OutcomeConsequence
	// OutcomeInconclusive: neither of the above; see Reason.
	OutcomeInconclusive
)

// String returns a short name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeUnique:
		return "unique all-angle consequence of the premises"
	case OutcomeConsequence:
		return "a consequence of the premises"
	case OutcomeInconclusive:
		return "inconclusive"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Reason explains an inconclusive outcome.
type Reason int

const (
	ReasonNone       Reason = iota // the outcome is conclusive
	ReasonRulesFail                // all angles known but a rule is violated
	ReasonDeclined                 // unknowns left and pairing was declined
	ReasonUnresolved               // unknowns left even after pairing
)

// String describes r.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonRulesFail:
		return "rules violated"
	case ReasonDeclined:
		return "pairing declined"
	case ReasonUnresolved:
		return "unknown angles remain"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Report is the result of Solve.
type Report struct {
	Outcome Outcome
	Reason  Reason
	// Stage is 1 when the outcome was decided after the 180° and 360° rules
	// alone, 2 when the pairing stage ran.
	Stage int
	// Check holds the validator verdict. It is set only when every angle
	// ended up known.
	Check *validate.Report
	// Rules is the first engine run (180° and 360° rules).
	Rules *deduce.Result
	// Pairing is the second engine run, nil unless pairing was applied.
	Pairing *deduce.Result
	// Remaining counts unknown angle slots left in the mesh.
	Remaining int
}

// Label returns the classic short verdict: "1B" (unique), "1A" (pairing
// declined), "2" (consequence with pairing), or "INCONCLUSIVE (1)" and
// "INCONCLUSIVE (2)" for a failed check after stage 1 or stage 2.
func (r *Report) Label() string {
	switch {
	case r.Outcome == OutcomeUnique:
		return "1B"
	case r.Outcome == OutcomeConsequence:
		return "2"
	case r.Reason == ReasonDeclined:
		return "1A"
	default:
		return fmt.Sprintf("INCONCLUSIVE (%d)", r.Stage)
	}
}

// Deduced returns the number of angle slots filled over both runs.
func (r *Report) Deduced() int {
	n := 0
	if r.Rules != nil {
		n += r.Rules.Total()
	}
	if r.Pairing != nil {
		n += r.Pairing.Total()
	}

	return n
}

// Decider is asked whether to apply the pairing rule to m, which has
// unknown angles left after the 180° and 360° rules. It may block.
type Decider func(ctx context.Context, m *figure.Mesh) (bool, error)

// Option configures Solve.
type Option func(*Options)

// Options holds Solve settings.
type Options struct {
	// Ctx is checked between stages and handed to the Decider.
	// Defaults to context.Background().
	Ctx context.Context
	// Pairing selects the pairing policy. Default PairingAsk.
	Pairing Policy
	// Decider answers PairingAsk. Required for that policy.
	Decider Decider
	// Logger receives info events per stage; it is passed on to the engine.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a background context, the ask policy,
// no decider and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Pairing: PairingAsk,
		Decider: nil,
		Logger:  zap.NewNop(),
	}
}

// WithContext sets the context. A nil ctx keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPairing sets the pairing policy.
func WithPairing(p Policy) Option {
	return func(o *Options) {
		o.Pairing = p
	}
}

// WithDecider sets the function consulted under PairingAsk.
func WithDecider(d Decider) Option {
	return func(o *Options) {
		o.Decider = d
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
