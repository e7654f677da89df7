package angle

import (
	"math/big"
	"strconv"
	"strings"
)

// String renders a in canonical form: zero terms are omitted, a unit
// coefficient is not printed before a letter, and the sign of the first
// term is attached to it ("-α + 2β - 1/3"). A known zero renders as "0",
// an Unknown as UnknownMarker.
func (a Angle) String() string {
	if !a.known {
		return UnknownMarker
	}

	var sb strings.Builder
	for i, c := range a.coeffs {
		sign := c.Sign()
		if sign == 0 {
			continue
		}
		if sign > 0 {
			sb.WriteString(" + ")
		} else {
			sb.WriteString(" - ")
		}
		abs := new(big.Rat).Abs(c)
		last := i == a.dim-1
		if last || !isOne(abs) {
			sb.WriteString(abs.RatString())
		}
		if !last {
			sb.WriteRune(Letter(i))
		}
	}

	out := sb.String()
	switch {
	case out == "":
		return "0"
	case strings.HasPrefix(out, " - "):
		return "-" + out[3:]
	default:
		return out[3:]
	}
}

// Key returns a string that is equal for two Angles exactly when they have
// the same dimension and the same coefficients (or are both Unknown).
// It does not depend on how the Angles were built.
func (a Angle) Key() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(a.dim))
	sb.WriteByte(':')
	if !a.known {
		sb.WriteString(UnknownMarker)
		return sb.String()
	}
	for i, c := range a.coeffs {
		if i > 0 {
			sb.WriteByte(',')
		}
		// RatString is normalized: big.Rat keeps fractions in lowest terms.
		sb.WriteString(c.RatString())
	}

	return sb.String()
}

// Tokens renders a in the grammar accepted by Parse, so that
// Parse(a.Tokens(), a.Dim()) reproduces a.
func (a Angle) Tokens() string {
	if !a.known {
		return UnknownMarker
	}
	parts := make([]string, len(a.coeffs))
	for i, c := range a.coeffs {
		parts[i] = c.RatString()
	}

	return strings.Join(parts, " ")
}

func isOne(r *big.Rat) bool {
	return r.IsInt() && r.Num().IsInt64() && r.Num().Int64() == 1
}
