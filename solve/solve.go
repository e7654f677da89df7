package solve

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/geopar/deduce"
	"github.com/katalvlaran/geopar/figure"
	"github.com/katalvlaran/geopar/validate"
)

// Solve deduces the angles of m in place and classifies the result.
//
// Stage 1 runs the 180° and 360° rules to a fixpoint. If every angle is
// then known, the figure is validated and the outcome is OutcomeUnique or
// OutcomeInconclusive (ReasonRulesFail). Otherwise the pairing policy is
// consulted; a refusal ends with ReasonDeclined. Stage 2 reruns the engine
// with pairing enabled and classifies the figure as OutcomeConsequence or
// OutcomeInconclusive (ReasonUnresolved or ReasonRulesFail).
//
// An inconclusive outcome is a normal result. Errors are reserved for bad
// input, a failing Decider and context cancellation; on error m may have
// been partly filled.
func Solve(m *figure.Mesh, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if _, ok := policyNames[o.Pairing]; !ok {
		return nil, fmt.Errorf("Solve: %v: %w", o.Pairing, ErrBadPolicy)
	}
	if o.Pairing == PairingAsk && o.Decider == nil {
		return nil, ErrNoDecider
	}
	if m == nil || m.IsEmpty() {
		return nil, fmt.Errorf("Solve: %w", validate.ErrEmptyMesh)
	}
	log := o.Logger

	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}
	rules, err := deduce.Run(m, deduce.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("Solve stage 1: %w", err)
	}
	rep := &Report{Stage: 1, Rules: rules, Remaining: rules.Remaining}
	log.Info("rules 180/360 done",
		zap.Int("deduced", rules.Total()),
		zap.Int("remaining", rules.Remaining))

	if m.AllAnglesKnown() {
		if err = classify(m, rep, OutcomeUnique); err != nil {
			return nil, err
		}
		log.Info("solved", zap.String("label", rep.Label()))
		return rep, nil
	}

	apply, err := decide(o, m)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if !apply {
		rep.Outcome, rep.Reason = OutcomeInconclusive, ReasonDeclined
		log.Info("pairing declined", zap.String("label", rep.Label()))
		return rep, nil
	}

	if err = o.Ctx.Err(); err != nil {
		return nil, err
	}
	pairing, err := deduce.Run(m, deduce.WithPairing(true), deduce.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("Solve stage 2: %w", err)
	}
	rep.Stage, rep.Pairing, rep.Remaining = 2, pairing, pairing.Remaining
	log.Info("pairing done",
		zap.Int("deduced", pairing.Total()),
		zap.Int("remaining", pairing.Remaining))

	if !m.AllAnglesKnown() {
		rep.Outcome, rep.Reason = OutcomeInconclusive, ReasonUnresolved
	} else if err = classify(m, rep, OutcomeConsequence); err != nil {
		return nil, err
	}
	log.Info("solved", zap.String("label", rep.Label()))

	return rep, nil
}

// classify validates a fully known m and sets the outcome to success or to
// an inconclusive rules failure.
func classify(m *figure.Mesh, rep *Report, success Outcome) error {
	check, err := validate.Check(m)
	if err != nil {
		return fmt.Errorf("Solve stage %d: %w", rep.Stage, err)
	}
	rep.Check = &check
	if check.OK() {
		rep.Outcome, rep.Reason = success, ReasonNone
	} else {
		rep.Outcome, rep.Reason = OutcomeInconclusive, ReasonRulesFail
	}

	return nil
}

func decide(o Options, m *figure.Mesh) (bool, error) {
	switch o.Pairing {
	case PairingAlways:
		return true, nil
	case PairingNever:
		return false, nil
	default:
		return o.Decider(o.Ctx, m)
	}
}
