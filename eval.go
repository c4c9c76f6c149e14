package calc

import (
	"io"
	"strings"
)

// Eval scans, parses, and evaluates an expression from src in one pass over
// its tokens. The given options are applied in order.
//
// An error from Eval is either one of the package's Err kinds, caused by an
// InputError locating the invalid input, or an error from src other than
// io.EOF.
func Eval(src io.RuneScanner, opts ...ParseOption) (float64, error) {
	toks, end, err := tokenize(src)
	if err != nil {
		return 0, err
	}
	return evaltoks(toks, end, applyopts(opts))
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}
