package angle

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// tokenPattern is the rational-token grammar accepted by Parse.
var tokenPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$|^-?\d+/\d+$`)

// New builds a known Angle from the given coefficients, the last one being
// the constant term. The inputs are copied.
// Returns ErrBadDimension if len(coeffs) is outside [1, MaxDimension].
func New(coeffs ...*big.Rat) (Angle, error) {
	if err := checkDim(len(coeffs)); err != nil {
		return Angle{}, fmt.Errorf("New: %w", err)
	}
	out := make([]*big.Rat, len(coeffs))
	for i, c := range coeffs {
		if c == nil {
			out[i] = new(big.Rat)
			continue
		}
		out[i] = new(big.Rat).Set(c)
	}

	return Angle{coeffs: out, dim: len(out), known: true}, nil
}

// FromInts builds a known Angle from integer coefficients.
func FromInts(vals ...int64) (Angle, error) {
	if err := checkDim(len(vals)); err != nil {
		return Angle{}, fmt.Errorf("FromInts: %w", err)
	}
	out := make([]*big.Rat, len(vals))
	for i, v := range vals {
		out[i] = new(big.Rat).SetInt64(v)
	}

	return Angle{coeffs: out, dim: len(out), known: true}, nil
}

// FromFloats builds a known Angle from float coefficients. Each float is
// taken through its shortest decimal form, so 0.1 becomes exactly 1/10.
// Returns ErrBadNumber for NaN or infinities.
func FromFloats(vals ...float64) (Angle, error) {
	if err := checkDim(len(vals)); err != nil {
		return Angle{}, fmt.Errorf("FromFloats: %w", err)
	}
	out := make([]*big.Rat, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Angle{}, fmt.Errorf("FromFloats: coefficient %d: %w", i, ErrBadNumber)
		}
		r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'g', -1, 64))
		if !ok {
			return Angle{}, fmt.Errorf("FromFloats: coefficient %d: %w", i, ErrBadNumber)
		}
		out[i] = r
	}

	return Angle{coeffs: out, dim: len(out), known: true}, nil
}

// Unknown returns the Unknown angle of dimension dim.
func Unknown(dim int) (Angle, error) {
	if err := checkDim(dim); err != nil {
		return Angle{}, fmt.Errorf("Unknown: %w", err)
	}

	return Angle{dim: dim}, nil
}

// Const returns the constant-only angle 0·α + … + v of dimension dim.
func Const(dim int, v int64) (Angle, error) {
	return ConstRat(dim, new(big.Rat).SetInt64(v))
}

// ConstRat is Const for a rational constant.
func ConstRat(dim int, v *big.Rat) (Angle, error) {
	if err := checkDim(dim); err != nil {
		return Angle{}, fmt.Errorf("Const: %w", err)
	}

	return constant(dim, v), nil
}

// Parse reads an Angle of dimension dim from text. The text is either
// UnknownMarker or exactly dim whitespace-separated rational tokens
// ("90", "-1/3", "12.5").
func Parse(text string, dim int) (Angle, error) {
	if err := checkDim(dim); err != nil {
		return Angle{}, fmt.Errorf("Parse(%q): %w", text, err)
	}
	text = strings.TrimSpace(text)
	if text == UnknownMarker {
		return Angle{dim: dim}, nil
	}

	fields := strings.Fields(text)
	if len(fields) != dim {
		return Angle{}, fmt.Errorf("Parse(%q): %w: %d tokens for dimension %d",
			text, ErrDimensionMismatch, len(fields), dim)
	}
	out := make([]*big.Rat, dim)
	for i, tok := range fields {
		if !tokenPattern.MatchString(tok) {
			return Angle{}, fmt.Errorf("Parse(%q): %w: %q", text, ErrBadToken, tok)
		}
		// SetString rejects a zero denominator.
		r, ok := new(big.Rat).SetString(tok)
		if !ok {
			return Angle{}, fmt.Errorf("Parse(%q): %w: %q", text, ErrBadToken, tok)
		}
		out[i] = r
	}

	return Angle{coeffs: out, dim: dim, known: true}, nil
}

// Must returns a or panics on err. It is meant for literals in tests and
// examples, like template.Must.
func Must(a Angle, err error) Angle {
	if err != nil {
		panic(err)
	}

	return a
}

// Dim returns the coefficient vector length, constant term included.
func (a Angle) Dim() int { return a.dim }

// IsKnown reports whether a holds a value.
func (a Angle) IsKnown() bool { return a.known }

// Coefficients returns a copy of the coefficient vector, or nil when a is Unknown.
func (a Angle) Coefficients() []*big.Rat {
	if !a.known {
		return nil
	}
	out := make([]*big.Rat, len(a.coeffs))
	for i, c := range a.coeffs {
		out[i] = new(big.Rat).Set(c)
	}

	return out
}

// Constant returns a copy of the constant term, or nil when a is Unknown.
func (a Angle) Constant() *big.Rat {
	if !a.known {
		return nil
	}

	return new(big.Rat).Set(a.coeffs[a.dim-1])
}

// IsConstant reports whether a is known and every unknown's coefficient is zero.
func (a Angle) IsConstant() bool {
	if !a.known {
		return false
	}
	for _, c := range a.coeffs[:a.dim-1] {
		if c.Sign() != 0 {
			return false
		}
	}

	return true
}

// Embed lifts the number v into a constant-only angle of a's dimension.
// This is the single conversion used wherever a number meets an Angle.
// Embedding into the zero Angle yields the zero Angle.
func (a Angle) Embed(v int64) Angle {
	if checkDim(a.dim) != nil {
		return Angle{}
	}

	return constant(a.dim, new(big.Rat).SetInt64(v))
}

// constant builds a known angle without validating dim.
func constant(dim int, v *big.Rat) Angle {
	out := make([]*big.Rat, dim)
	for i := 0; i < dim-1; i++ {
		out[i] = new(big.Rat)
	}
	out[dim-1] = new(big.Rat).Set(v)

	return Angle{coeffs: out, dim: dim, known: true}
}

func checkDim(dim int) error {
	if dim < 1 || dim > MaxDimension {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrBadDimension, dim, MaxDimension)
	}

	return nil
}
