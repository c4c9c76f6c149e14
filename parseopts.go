package calc

// DefaultMaxDepth is the nesting limit used when no MaxDepth option is given.
const DefaultMaxDepth = 1000

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	trailopt bool
	depthopt int
)

// parsectx holds general data for parsing. It is also a ParseOption.
type parsectx struct {
	// trailing indicates that tokens after a complete expression are ignored
	// rather than rejected.
	trailing bool
	// maxdepth is the nesting limit. Zero or less means no limit.
	maxdepth int
}

func defaultctx() parsectx {
	return parsectx{maxdepth: DefaultMaxDepth}
}

// AllowTrailing tells the parser to evaluate the longest complete expression
// at the start of the input and ignore any tokens after it. By default,
// leftover tokens are an error with kind ErrTrailingTokens.
func AllowTrailing() ParseOption {
	return trailopt(true)
}

func (o trailopt) parseOption(p parsectx) parsectx {
	p.trailing = bool(o)
	return p
}

// MaxDepth sets the number of nested parentheses and negations allowed in an
// expression. If n is zero or negative, there is no limit, and deeply nested
// inputs consume stack in proportion to their depth.
func MaxDepth(n int) ParseOption {
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}

// ParsingPreset combines parsing options into a single option that can be
// reused for many calls. A preset panics when it would change any option from
// the default, but it is safe to apply other options after a preset.
func ParsingPreset(opts ...ParseOption) ParseOption {
	p := defaultctx()
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p != defaultctx() {
		panic("calc: preset applied to non-default parse config")
	}
	return *o
}

func applyopts(opts []ParseOption) parsectx {
	p := defaultctx()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return p
}
