// Package parsec implements a Parsec-style parser combinator algebra over
// UTF-8 text: parsers built by algebraic composition of smaller parsers,
// with precise error reporting, selective backtracking controlled by Try,
// and the four-way success/failure × consumed/epsilon result discipline
// that makes OrElse and Bind behave predictably.
//
// The package does not implement UTF-8 iteration beyond what Cursor
// needs, does not format errors for a terminal, and does not define any
// concrete grammar (identifiers, numerals, keywords) — those are left to
// callers built on top of this core.
package parsec

// Parser is a function from a Cursor to a Result. Parsers are plain
// values: cheaply composable, sharing no mutable state, and safe to call
// concurrently from multiple goroutines since running one only reads its
// Cursor argument.
type Parser[O any] func(Cursor) Result[O]

// Pure returns an okEps result carrying value without touching the
// cursor. It is the monadic unit: Bind(Pure(a), q) ≡ q(a).
func Pure[O any](value O) Parser[O] {
	return func(c Cursor) Result[O] {
		return mkEps(value, c)
	}
}

// Failure always fails at epsilon with unexpected = "failure". It is the
// identity element of OrElse: `Failure[O]() <|> p ≡ p`.
func Failure[O any]() Parser[O] {
	return func(c Cursor) Result[O] {
		return errEps[O](mkMessage(c, "failure"))
	}
}

// Unexpected raises a user error at the current cursor with the given
// description and an empty expected-set.
func Unexpected[O any](description string) Parser[O] {
	return func(c Cursor) Result[O] {
		return errEps[O](mkMessage(c, description))
	}
}

// UnexpectedAt raises a user error anchored at an arbitrary cursor
// rather than the one the parser receives, so a failure discovered via
// lookahead can be reported at a chosen position without letting that
// lookahead's own cursor leak into the message.
func UnexpectedAt[O any](at Cursor, description string) Parser[O] {
	return func(Cursor) Result[O] {
		return errEps[O](mkMessage(at, description))
	}
}

// Error is an alias of Unexpected kept for parity with the capability
// contract's naming (callers reading for "how do I fail with a message"
// will look for either name).
func Error[O any](description string) Parser[O] {
	return Unexpected[O](description)
}
