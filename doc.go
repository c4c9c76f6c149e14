// Package calc implements a calculator for arithmetic on float64 values.
//
// Expressions use +, -, *, and / with the usual precedence, parentheses for
// grouping, and unary minus, which may repeat: "--5" is 5. Number literals are
// decimal digits with an optional fractional part, like "2", "2.5", or "2.";
// there are no signs, exponents, or leading dots in literals.
//
// Evaluation happens while parsing, so nothing is retained between calls, and
// it is safe to evaluate many expressions concurrently. Every error caused by
// bad input is an *errors.Error from gopkg.in/src-d/go-errors.v1 whose kind
// is one of the Err variables, so ErrDivisionByZero.Is(err) and the like
// classify it, as does KindOf. Its cause is an InputError holding the column,
// which InputErrorOf retrieves.
package calc
