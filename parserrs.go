package calc

import (
	"strconv"
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrInvalidCharacter is returned when the input contains a rune that
	// cannot start any token.
	ErrInvalidCharacter = errors.NewKind("invalid character %s")
	// ErrUnmatchedParen is returned when an open parenthesis has no matching
	// close parenthesis.
	ErrUnmatchedParen = errors.NewKind("open parenthesis with no close parenthesis")
	// ErrUnexpectedToken is returned when a token that cannot begin a term
	// appears where one is required.
	ErrUnexpectedToken = errors.NewKind("unexpected %s")
	// ErrUnexpectedEndOfInput is returned when the input ends where a term is
	// required.
	ErrUnexpectedEndOfInput = errors.NewKind("unexpected end of input")
	// ErrDivisionByZero is returned when a divisor evaluates to zero.
	ErrDivisionByZero = errors.NewKind("division by zero")
	// ErrTrailingTokens is returned when input remains after a complete
	// expression.
	ErrTrailingTokens = errors.NewKind("unexpected %s after end of expression")
	// ErrTooDeep is returned when parentheses or negations nest beyond the
	// configured limit.
	ErrTooDeep = errors.NewKind("expression nested too deeply at %s")
)

// kinds lists every error kind the package returns.
var kinds = []*errors.Kind{
	ErrInvalidCharacter,
	ErrUnmatchedParen,
	ErrUnexpectedToken,
	ErrUnexpectedEndOfInput,
	ErrDivisionByZero,
	ErrTrailingTokens,
	ErrTooDeep,
}

// LexError is the cause of an ErrInvalidCharacter error. It implements
// InputError.
type LexError struct {
	// Char is the invalid rune.
	Char rune
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	return colmsg(err.Col)
}

func (err *LexError) Pos() int {
	return err.Col
}

// ParseError is the cause of an error from parsing or evaluating a token
// sequence. It implements InputError.
type ParseError struct {
	// Kind classifies the error. It is one of the package's Err kinds other
	// than ErrInvalidCharacter.
	Kind *errors.Kind
	// Col is the position of the token that caused the error, or the position
	// just past the end of the input.
	Col int
	// Token is the text of the token that caused the error, or the empty
	// string at the end of the input.
	Token string
}

func (err *ParseError) Error() string {
	return colmsg(err.Col)
}

func (err *ParseError) Pos() int {
	return err.Col
}

// lexerr creates the error for an invalid rune.
func lexerr(r rune, col int) error {
	return ErrInvalidCharacter.Wrap(&LexError{Char: r, Col: col}, fmtquote(strconv.QuoteRune(r)))
}

// parseerr creates the error for a parse failure of kind k at tok.
func parseerr(k *errors.Kind, col int, tok string) error {
	cause := &ParseError{Kind: k, Col: col, Token: tok}
	switch k {
	case ErrUnexpectedToken, ErrTrailingTokens, ErrTooDeep:
		return k.Wrap(cause, fmtquote(strconv.Quote(tok)))
	default:
		return k.Wrap(cause)
	}
}

// fmtquote escapes a quoted value for use as a Kind argument. Wrapped errors
// format their message a second time to add the cause.
func fmtquote(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

// KindOf returns the kind of an error returned from this package, or nil if
// err is of some other kind. It is equivalent to testing each Err kind's Is.
func KindOf(err error) *errors.Kind {
	for _, k := range kinds {
		if k.Is(err) {
			return k
		}
	}
	return nil
}

// InputErrorOf returns the positional cause of an error returned from this
// package, or nil if there is none.
func InputErrorOf(err error) InputError {
	for err != nil {
		if ie, ok := err.(InputError); ok {
			return ie
		}
		c, ok := err.(interface{ Cause() error })
		if !ok {
			return nil
		}
		err = c.Cause()
	}
	return nil
}

// colmsg is a shortcut to create an error message for a position.
func colmsg(pos int) string {
	return "column " + strconv.Itoa(pos)
}

// InputError is the cause of every error resulting from invalid input. It
// holds the position of the error.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
)
