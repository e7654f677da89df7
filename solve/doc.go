// Package solve runs the whole deduction procedure on a figure and
// classifies what it found.
//
// Procedure:
//
//  1. Apply the 180° and 360° rules until nothing new follows.
//  2. All angles known: validate, giving OutcomeUnique ("1B") or
//     OutcomeInconclusive ("INCONCLUSIVE (1)").
//  3. Unknowns left: ask the pairing Policy. Declining gives
//     OutcomeInconclusive with ReasonDeclined ("1A").
//  4. Apply the 180°, 360° and pairing rules until nothing new follows,
//     then validate: OutcomeConsequence ("2") or OutcomeInconclusive
//     ("INCONCLUSIVE (2)").
//
// Options:
//
//   - WithPairing(Policy)   PairingAsk (default), PairingAlways, PairingNever.
//   - WithDecider(Decider)  answers PairingAsk; may prompt a user.
//   - WithContext(ctx)      checked between stages, passed to the Decider.
//   - WithLogger(*zap.Logger)
//
// *Policy implements String, Set and Type, so it can be bound directly as
// a command-line flag.
package solve
