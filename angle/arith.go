package angle

import (
	"fmt"
	"math/big"
)

// Add returns a + b.
func (a Angle) Add(b Angle) (Angle, error) {
	if err := binaryCheck("Add", a, b); err != nil {
		return Angle{}, err
	}
	out := make([]*big.Rat, a.dim)
	for i := range out {
		out[i] = new(big.Rat).Add(a.coeffs[i], b.coeffs[i])
	}

	return Angle{coeffs: out, dim: a.dim, known: true}, nil
}

// Sub returns a - b.
func (a Angle) Sub(b Angle) (Angle, error) {
	if err := binaryCheck("Sub", a, b); err != nil {
		return Angle{}, err
	}
	out := make([]*big.Rat, a.dim)
	for i := range out {
		out[i] = new(big.Rat).Sub(a.coeffs[i], b.coeffs[i])
	}

	return Angle{coeffs: out, dim: a.dim, known: true}, nil
}

// Neg returns -a.
func (a Angle) Neg() (Angle, error) {
	return a.Scale(big.NewRat(-1, 1))
}

// Scale returns k·a.
func (a Angle) Scale(k *big.Rat) (Angle, error) {
	if !a.known {
		return Angle{}, fmt.Errorf("Scale: %w", ErrUnknownOperand)
	}
	if k == nil {
		return Angle{}, fmt.Errorf("Scale: nil factor: %w", ErrBadNumber)
	}
	out := make([]*big.Rat, a.dim)
	for i, c := range a.coeffs {
		out[i] = new(big.Rat).Mul(c, k)
	}

	return Angle{coeffs: out, dim: a.dim, known: true}, nil
}

// ScaleInt returns k·a.
func (a Angle) ScaleInt(k int64) (Angle, error) {
	return a.Scale(new(big.Rat).SetInt64(k))
}

// Div returns a / k. Returns ErrDivisionByZero when k is zero.
func (a Angle) Div(k *big.Rat) (Angle, error) {
	if !a.known {
		return Angle{}, fmt.Errorf("Div: %w", ErrUnknownOperand)
	}
	if k == nil {
		return Angle{}, fmt.Errorf("Div: nil divisor: %w", ErrBadNumber)
	}
	if k.Sign() == 0 {
		return Angle{}, fmt.Errorf("Div: %w", ErrDivisionByZero)
	}

	return a.Scale(new(big.Rat).Inv(k))
}

// DivInt returns a / k.
func (a Angle) DivInt(k int64) (Angle, error) {
	return a.Div(new(big.Rat).SetInt64(k))
}

// Equal reports whether a and b have identical coefficient vectors.
// Comparing with an Unknown is an error, not false.
func (a Angle) Equal(b Angle) (bool, error) {
	if err := binaryCheck("Equal", a, b); err != nil {
		return false, err
	}
	for i := range a.coeffs {
		if a.coeffs[i].Cmp(b.coeffs[i]) != 0 {
			return false, nil
		}
	}

	return true, nil
}

// EqualInt compares a with the number v embedded at a's dimension.
func (a Angle) EqualInt(v int64) (bool, error) {
	return a.Equal(a.Embed(v))
}

// Sum adds the given angles onto the zero constant of dimension dim.
// An empty list yields that zero.
func Sum(dim int, as ...Angle) (Angle, error) {
	acc, err := Const(dim, 0)
	if err != nil {
		return Angle{}, fmt.Errorf("Sum: %w", err)
	}
	for _, a := range as {
		if acc, err = acc.Add(a); err != nil {
			return Angle{}, err
		}
	}

	return acc, nil
}

// binaryCheck enforces the shared preconditions of binary operations:
// matching dimensions first, then known operands.
func binaryCheck(op string, a, b Angle) error {
	if a.dim != b.dim {
		return fmt.Errorf("%s: %w: %d != %d", op, ErrDimensionMismatch, a.dim, b.dim)
	}
	if !a.known || !b.known {
		return fmt.Errorf("%s: %w", op, ErrUnknownOperand)
	}

	return nil
}
