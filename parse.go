package calc

// Expr = Term { ('+' | '-') Term }
// Term = Factor { ('*' | '/') Factor }
// Factor = num | '(' Expr ')' | '-' Factor

// parser evaluates a token sequence while parsing it.
type parser struct {
	toks []Token
	// cur is the index of the next token to consume.
	cur int
	// end is the column just past the end of the input.
	end int
	// depth is the current nesting of parentheses and negations.
	depth int
	// open is the innermost open parenthesis, if depth includes one.
	open *Token
	p    parsectx
}

// EvalTokens parses and evaluates a token sequence as produced by Tokenize.
func EvalTokens(toks []Token, opts ...ParseOption) (float64, error) {
	end := 1
	if len(toks) > 0 {
		end = toks[len(toks)-1].Col + 1
	}
	return evaltoks(toks, end, applyopts(opts))
}

func evaltoks(toks []Token, end int, p parsectx) (float64, error) {
	ps := parser{toks: toks, end: end, p: p}
	r, err := ps.expr()
	if err != nil {
		return 0, err
	}
	if tok, ok := ps.peek(); ok && !p.trailing {
		return 0, parseerr(ErrTrailingTokens, tok.Col, tok.String())
	}
	return r, nil
}

// peek returns the next token without consuming it. The second result is false
// at the end of the input.
func (ps *parser) peek() (Token, bool) {
	if ps.cur >= len(ps.toks) {
		return Token{}, false
	}
	return ps.toks[ps.cur], true
}

// expr parses and evaluates a sum of terms.
func (ps *parser) expr() (float64, error) {
	r, err := ps.term()
	if err != nil {
		return 0, err
	}
	for {
		tok, ok := ps.peek()
		if !ok || (tok.Kind != TokenPlus && tok.Kind != TokenMinus) {
			return r, nil
		}
		ps.cur++
		rhs, err := ps.term()
		if err != nil {
			return 0, err
		}
		if tok.Kind == TokenPlus {
			r += rhs
		} else {
			r -= rhs
		}
	}
}

// term parses and evaluates a product of factors.
func (ps *parser) term() (float64, error) {
	r, err := ps.factor()
	if err != nil {
		return 0, err
	}
	for {
		tok, ok := ps.peek()
		if !ok || (tok.Kind != TokenStar && tok.Kind != TokenSlash) {
			return r, nil
		}
		ps.cur++
		rhs, err := ps.factor()
		if err != nil {
			return 0, err
		}
		if tok.Kind == TokenStar {
			r *= rhs
			continue
		}
		// Checked per division, so 0/0 and x/-0 are errors too.
		if rhs == 0 {
			return 0, parseerr(ErrDivisionByZero, tok.Col, tok.String())
		}
		r /= rhs
	}
}

// factor parses and evaluates a number, a parenthesized expression, or a
// negated factor.
func (ps *parser) factor() (float64, error) {
	tok, ok := ps.peek()
	if !ok {
		if ps.open != nil {
			// An expression cut off inside a group is better reported as the
			// group being unclosed.
			return 0, parseerr(ErrUnmatchedParen, ps.open.Col, ps.open.String())
		}
		return 0, parseerr(ErrUnexpectedEndOfInput, ps.end, "")
	}
	switch tok.Kind {
	case TokenNum:
		ps.cur++
		return tok.Value, nil
	case TokenOpen:
		if err := ps.descend(tok); err != nil {
			return 0, err
		}
		outer := ps.open
		ps.open = &tok
		r, err := ps.expr()
		if err != nil {
			return 0, err
		}
		if end, ok := ps.peek(); !ok || end.Kind != TokenClose {
			return 0, parseerr(ErrUnmatchedParen, tok.Col, tok.String())
		}
		ps.cur++
		ps.open = outer
		ps.depth--
		return r, nil
	case TokenMinus:
		if err := ps.descend(tok); err != nil {
			return 0, err
		}
		r, err := ps.factor()
		if err != nil {
			return 0, err
		}
		ps.depth--
		return -r, nil
	default:
		return 0, parseerr(ErrUnexpectedToken, tok.Col, tok.String())
	}
}

// descend consumes tok and enters one more level of nesting.
func (ps *parser) descend(tok Token) error {
	if ps.p.maxdepth > 0 && ps.depth >= ps.p.maxdepth {
		return parseerr(ErrTooDeep, tok.Col, tok.String())
	}
	ps.cur++
	ps.depth++
	return nil
}
