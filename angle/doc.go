// Package angle implements exact symbolic angles: linear forms
//
//	c₁·α + c₂·β + … + cₙ₋₁·ω + cₙ
//
// over up to fifteen named unknowns plus a constant term, with every
// coefficient held as an exact rational (math/big.Rat).
//
// What:
//
//   - Angle is an immutable value. It is either Known (a coefficient vector)
//     or Unknown (only a dimension). Both carry their dimension, the length
//     of the coefficient vector including the constant term.
//   - Arithmetic (Add, Sub, Neg, Scale, Div) and comparison (Equal) always
//     return new values and never round.
//   - Plain numbers are lifted through Embed / Const into a constant-only
//     angle of the matching dimension before any arithmetic.
//
// Text forms:
//
//   - Parse accepts "x" (Unknown) or whitespace-separated tokens matching
//     -?\d+(\.\d+)? or -?\d+/\d+, exactly dim of them.
//   - String renders the canonical form, e.g. "α - 2β + 1/3", "x", "0".
//   - Tokens renders the Parse form back, e.g. "1 -2 1/3".
//   - Key is an equality key for multiset (bag) comparisons.
//
// Errors:
//
//   - ErrBadDimension      dimension outside [1, MaxDimension].
//   - ErrDimensionMismatch operands of different dimension.
//   - ErrUnknownOperand    an operation needs a known value.
//   - ErrDivisionByZero    Div / DivInt by zero.
//   - ErrBadToken          malformed token in Parse.
//   - ErrBadNumber         NaN or infinite float.
package angle
