package parse

import "github.com/signadot/xj/token"

// DefaultMaxDepth bounds element nesting. Recursion tracks nesting
// depth, so the bound keeps adversarial documents from exhausting the
// call stack.
const DefaultMaxDepth = 1024

type parseOpts struct {
	maxDepth int
	trim     bool
}

type ParseOption func(*parseOpts)

// MaxDepth overrides DefaultMaxDepth. Values < 1 leave the default in
// place.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n >= 1 {
			o.maxDepth = n
		}
	}
}

// KeepSpace disables trimming of surrounding whitespace in text runs.
func KeepSpace() ParseOption {
	return func(o *parseOpts) { o.trim = false }
}

func (o *parseOpts) TokenOpts() []token.TokenOpt {
	return []token.TokenOpt{token.Trim(o.trim)}
}
