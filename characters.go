package parsec

import "fmt"

// Satisfy is the fundamental single-character primitive (spec §4.2): it
// fails at epsilon on end of input or on a character the predicate
// rejects, and succeeds consuming exactly one character otherwise.
// label names the predicate in the expected-set of a failure.
func Satisfy(label string, pred func(rune) bool) Parser[rune] {
	return func(c Cursor) Result[rune] {
		r, ok := c.Peek()
		if !ok {
			return errEps[rune](mkMessage(c, "end of input", label))
		}
		if !pred(r) {
			return errEps[rune](mkMessage(c, printableRune(r, true), label))
		}
		return okConsumed(r, c.Advance())
	}
}

// Ch parses a single specific character.
func Ch(want rune) Parser[rune] {
	return Satisfy(printableRune(want, true), func(r rune) bool { return r == want })
}

// Curr peeks at the current character without consuming it. It fails at
// epsilon on end of input.
func Curr() Parser[rune] {
	return func(c Cursor) Result[rune] {
		r, ok := c.Peek()
		if !ok {
			return errEps[rune](mkMessage(c, "end of input", "any character"))
		}
		return okEps(r, c, noExpected())
	}
}

// Any parses any single character.
func Any() Parser[rune] {
	return Satisfy("any character", func(rune) bool { return true })
}

// Alpha parses a single ASCII letter, a-z or A-Z.
func Alpha() Parser[rune] {
	return Satisfy("alpha", func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
}

// Upper parses a single uppercase ASCII letter.
func Upper() Parser[rune] {
	return Satisfy("uppercase letter", func(r rune) bool { return r >= 'A' && r <= 'Z' })
}

// Lower parses a single lowercase ASCII letter.
func Lower() Parser[rune] {
	return Satisfy("lowercase letter", func(r rune) bool { return r >= 'a' && r <= 'z' })
}

// Digit parses a single decimal digit, 0-9.
func Digit() Parser[rune] {
	return Satisfy("digit", func(r rune) bool { return r >= '0' && r <= '9' })
}

// Range parses any single character in the inclusive range [lo, hi],
// grounded in bshepherdson-psec's Range primitive.
func Range(lo, hi rune) Parser[rune] {
	label := fmt.Sprintf("range(%c..%c)", lo, hi)
	return Satisfy(label, func(r rune) bool { return lo <= r && r <= hi })
}

// LF parses a line feed.
func LF() Parser[rune] {
	return Satisfy("line feed", func(r rune) bool { return r == '\n' })
}

// CR parses a carriage return.
func CR() Parser[rune] {
	return Satisfy("carriage return", func(r rune) bool { return r == '\r' })
}

// Space parses a single space character.
func Space() Parser[rune] {
	return Satisfy("space", func(r rune) bool { return r == ' ' })
}

// Tab parses a single tab character.
func Tab() Parser[rune] {
	return Satisfy("tab", func(r rune) bool { return r == '\t' })
}
