package token

type tokenOpts struct {
	trim bool
}

type TokenOpt func(*tokenOpts)

// Trim controls whether surrounding whitespace is stripped from text
// runs before they are emitted. Runs that become empty are suppressed
// entirely. The default is true.
func Trim(v bool) TokenOpt {
	return func(o *tokenOpts) { o.trim = v }
}
