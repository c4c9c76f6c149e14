package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a single lexical unit of an expression.
type Token struct {
	// Kind is the token's kind.
	Kind TokenKind
	// Value is the value of a TokenNum. It is zero for other kinds.
	Value float64
	// Col is the 1-based rune column at which the token starts.
	Col int
}

func (t Token) String() string {
	if t.Kind == TokenNum {
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	return t.Kind.String()
}

// TokenKind is the kind of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a number literal.
	TokenNum
	// TokenPlus is +.
	TokenPlus
	// TokenMinus is -, either binary or unary.
	TokenMinus
	// TokenStar is *.
	TokenStar
	// TokenSlash is /.
	TokenSlash
	// TokenOpen is (.
	TokenOpen
	// TokenClose is ).
	TokenClose
)

// Operators contains the runes which lex to operator and bracket tokens, in
// the same order as their kinds starting at TokenPlus.
const Operators = "+-*/()"

func (k TokenKind) String() string {
	switch k {
	case TokenNum:
		return "number"
	case TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenOpen, TokenClose:
		return Operators[k-TokenPlus : k-TokenPlus+1]
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// result is io.EOF.
func (l *lexer) next() (Token, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		tok := Token{Col: l.rune}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			v, err := l.scanNum()
			if err != nil {
				return Token{}, err
			}
			tok.Kind = TokenNum
			tok.Value = v
			return tok, nil
		default:
			k := strings.IndexRune(Operators, r)
			if k < 0 {
				return Token{}, lexerr(r, l.rune)
			}
			tok.Kind = TokenPlus + TokenKind(k)
			return tok, nil
		}
	}
}

// scanNum scans digits, then an optional dot followed by more digits. The
// caller guarantees that the first rune is a digit.
func (l *lexer) scanNum() (float64, error) {
	defer l.buf.Reset()
	dot := false
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		if r == '.' && !dot {
			dot = true
			l.buf.WriteRune(r)
			continue
		}
		if r < '0' || r > '9' {
			// Whatever follows is the start of the next token, even a second
			// dot, which then fails to lex on its own.
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	v, err := strconv.ParseFloat(l.buf.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("calc: invalid number: " + l.buf.String() + " (" + err.Error() + ")")
	}
	// On ErrRange, ParseFloat gives ±Inf, which is the native result.
	return v, nil
}

// Tokenize scans all tokens from src. If any rune is not part of a token, the
// result is nil and an error of kind ErrInvalidCharacter caused by a
// *LexError.
func Tokenize(src io.RuneScanner) ([]Token, error) {
	toks, _, err := tokenize(src)
	return toks, err
}

// TokenizeString is a shortcut to tokenize a string.
func TokenizeString(src string) ([]Token, error) {
	return Tokenize(strings.NewReader(src))
}

// tokenize scans all tokens from src and also returns the column just past
// the end of the input.
func tokenize(src io.RuneScanner) ([]Token, int, error) {
	l := lex(src)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, l.rune + 1, nil
			}
			return nil, 0, err
		}
		toks = append(toks, tok)
	}
}
