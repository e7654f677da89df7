package angle

import (
	"errors"
	"math/big"
)

// Capacity of the unknown alphabet.
const (
	// MaxUnknowns is the number of named unknowns an Angle can carry.
	MaxUnknowns = 15
	// MaxDimension is the longest coefficient vector: all unknowns plus the constant.
	MaxDimension = MaxUnknowns + 1
	// UnknownMarker is the text form of an Unknown angle.
	UnknownMarker = "x"
)

// alphabet names the unknowns in coefficient order.
var alphabet = []rune("αβγδεηθλπρστμφω")

// Sentinel errors for angle operations.
var (
	// ErrBadDimension indicates a dimension outside [1, MaxDimension].
	ErrBadDimension = errors.New("angle: dimension out of range")

	// ErrDimensionMismatch indicates operands (or parsed tokens) of differing dimension.
	ErrDimensionMismatch = errors.New("angle: dimension mismatch")

	// ErrUnknownOperand indicates an operation that requires known values received an Unknown.
	ErrUnknownOperand = errors.New("angle: unknown operand")

	// ErrDivisionByZero indicates Div or DivInt by zero.
	ErrDivisionByZero = errors.New("angle: division by zero")

	// ErrBadToken indicates a coefficient token that is not a rational literal.
	ErrBadToken = errors.New("angle: malformed coefficient token")

	// ErrBadNumber indicates a NaN or infinite float coefficient.
	ErrBadNumber = errors.New("angle: coefficient is not a finite number")
)

// Angle is an exact linear form over named unknowns, or Unknown.
//
// The zero value is not a valid Angle; build one with New, FromInts,
// FromFloats, Const, Unknown or Parse. Angles are immutable: coeffs is
// never written after construction and never handed out.
type Angle struct {
	coeffs []*big.Rat // len == dim when known, nil when unknown
	dim    int
	known  bool
}

// Letter returns the display name of the i-th unknown (0-based).
// Returns '?' when i is outside the alphabet.
func Letter(i int) rune {
	if i < 0 || i >= len(alphabet) {
		return '?'
	}

	return alphabet[i]
}
