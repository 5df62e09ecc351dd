package parsec

import (
	"fmt"
	"strconv"
	"strings"
)

// Str parses a provided string exactly, all-or-nothing: it matches every
// character of s in order or leaves the cursor completely unchanged,
// never mid-word. This is a deliberate departure from a naive sequential
// compose of Ch, which would leave the cursor advanced past whatever
// prefix happened to match. Preserving that contract is what keeps
// `Str("let") <|> Str("letter")` from silently breaking (spec §9).
func Str(s string) Parser[string] {
	runes := []rune(s)
	quoted := fmt.Sprintf("%q", s)

	return func(c Cursor) Result[string] {
		if len(runes) == 0 {
			return mkEps(s, c)
		}

		cur := c
		for _, want := range runes {
			r, ok := cur.Peek()
			if !ok || r != want {
				return errEps[string](mkMessage(c, printableRune(r, ok), quoted))
			}
			cur = cur.Advance()
		}
		return okConsumed(s, cur)
	}
}

// Take consumes exactly n characters, or fails with errConsumed at end
// of input. Take(0) always succeeds at epsilon with "".
func Take(n int) Parser[string] {
	return func(c Cursor) Result[string] {
		if n == 0 {
			return mkEps("", c)
		}

		cur := c
		var sb strings.Builder
		for i := 0; i < n; i++ {
			r, ok := cur.Peek()
			if !ok {
				return errConsumed[string](mkMessage(cur, "end of input", fmt.Sprintf("%d more characters", n-i)))
			}
			sb.WriteRune(r)
			cur = cur.Advance()
		}
		return okConsumed(sb.String(), cur)
	}
}

// TakeWhile greedily consumes characters satisfying pred. It never
// fails: zero matches succeeds at epsilon with "".
func TakeWhile(pred func(rune) bool) Parser[string] {
	return func(c Cursor) Result[string] {
		cur := c
		var sb strings.Builder
		for {
			r, ok := cur.Peek()
			if !ok || !pred(r) {
				break
			}
			sb.WriteRune(r)
			cur = cur.Advance()
		}
		if cur.Equal(c) {
			return mkEps("", c)
		}
		return okConsumed(sb.String(), cur)
	}
}

// TakeWhile1 requires at least one matching character, labeling the
// failure when there are none.
func TakeWhile1(label string, pred func(rune) bool) Parser[string] {
	return Bind(Satisfy(label, pred), func(first rune) Parser[string] {
		return Bind(TakeWhile(pred), func(rest string) Parser[string] {
			return Pure(string(first) + rest)
		})
	})
}

// TakeUntil greedily consumes characters until stop holds (or input is
// exhausted), never failing. It is TakeWhile over the negated predicate.
func TakeUntil(stop func(rune) bool) Parser[string] {
	return TakeWhile(func(r rune) bool { return !stop(r) })
}

// TakeUntil1 is TakeUntil requiring at least one character.
func TakeUntil1(label string, stop func(rune) bool) Parser[string] {
	return TakeWhile1(label, func(r rune) bool { return !stop(r) })
}

// Eoi succeeds at epsilon iff no input remains.
func Eoi() Parser[struct{}] {
	return func(c Cursor) Result[struct{}] {
		if c.AtEnd() {
			return mkEps(struct{}{}, c)
		}
		r, _ := c.Peek()
		return errEps[struct{}](mkMessage(c, printableRune(r, true), "end of input"))
	}
}

// LeftOver inspects the remainder of the input without consuming it.
func LeftOver() Parser[string] {
	return func(c Cursor) Result[string] { return mkEps(c.LeftOver(), c) }
}

// Position is the (line, column, byte offset) Pos reports.
type Position struct {
	Line, Col, Offset int
}

// Pos inspects the cursor's current position without consuming input.
func Pos() Parser[Position] {
	return func(c Cursor) Result[Position] {
		line, col := c.LineCol()
		return mkEps(Position{Line: line, Col: col, Offset: c.Offset()}, c)
	}
}

// Remaining inspects the number of characters left in the input without
// consuming it.
func Remaining() Parser[int] {
	return func(c Cursor) Result[int] { return mkEps(c.Remaining(), c) }
}

// Whitespace consumes a run of spaces and tabs. Always succeeds,
// possibly at epsilon.
func Whitespace() Parser[string] {
	return Label(TakeWhile(func(r rune) bool { return r == ' ' || r == '\t' }), "whitespace")
}

// Lexeme runs p and then consumes (and discards) trailing trivia, e.g.
// Whitespace(). It generalizes gomme's hardwired space/tab
// DiscardAll into an arbitrary trailing-trivia parser.
func Lexeme[T, O any](p Parser[O], trivia Parser[T]) Parser[O] {
	return SequenceLeft(p, trivia)
}

// Num parses a run of decimal digits into an int.
func Num() Parser[int] {
	return Bind(TakeWhile1("digit", isDigit), func(s string) Parser[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Unexpected[int](fmt.Sprintf("invalid number %q", s))
		}
		return Pure(n)
	})
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Concat joins a parsed slice of runes into a string, grounded in
// bshepherdson-psec's Stringify helper.
func Concat(p Parser[[]rune]) Parser[string] {
	return MapParser(p, func(rs []rune) string { return string(rs) })
}
