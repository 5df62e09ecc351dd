package parsec

import "fmt"

// Bind sequences p and q, reconciling their four-case outcomes as the
// central contract of the algebra (spec §4.3):
//
//	p            q            output
//	okConsumed   ok*          okConsumed, expected none      (consumed dominates)
//	okConsumed   error        errConsumed                    (promoted)
//	okEps(ex1)   okConsumed   okConsumed, expected none
//	okEps(ex1)   okEps(ex2)   okEps, expected ex1 ∪ ex2
//	okEps(ex1)   errEps(ex2)  errEps, expected ex1 ∪ ex2
//	okEps(ex1)   errConsumed  errConsumed, unchanged
//	error        —            propagated unchanged
func Bind[A, B any](p Parser[A], q func(A) Parser[B]) Parser[B] {
	return func(c Cursor) Result[B] {
		r1 := p(c)
		if r1.Err != nil {
			return resultAsError[A, B](r1)
		}

		if r1.Consumed {
			r2 := q(r1.Output)(r1.Cursor)
			if r2.Err != nil {
				return errConsumed[B](r2.Err)
			}
			return okConsumed(r2.Output, r2.Cursor)
		}

		// r1 is okEps: q runs on the very same cursor c.
		ex1 := r1.Expected
		r2 := q(r1.Output)(c)
		switch {
		case r2.Err == nil && r2.Consumed:
			return okConsumed(r2.Output, r2.Cursor)
		case r2.Err == nil:
			return okEps(r2.Output, r2.Cursor, ex1.Concat(r2.Expected))
		case !r2.Consumed:
			return errEps[B](&Message{
				Cursor:     r2.Err.Cursor,
				Unexpected: r2.Err.Unexpected,
				Expected:   ex1.Concat(r2.Err.Expected),
				Custom:     r2.Err.Custom,
			})
		default:
			return errConsumed[B](r2.Err)
		}
	}
}

// Then sequences p then q, discarding p's value (p *> q).
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Bind(p, func(A) Parser[B] { return q })
}

// SequenceLeft sequences p then q, keeping p's value (p <* q).
func SequenceLeft[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Bind(p, func(a A) Parser[A] {
		return Bind(q, func(B) Parser[A] { return Pure(a) })
	})
}

// MapParser applies a pure function to a successful parse's output
// without disturbing its consumed/epsilon classification. Built on top
// of Bind, it is the ordinary functor map every combinator library this
// size ends up needing even when the source spec doesn't name it
// directly (Concat is expressed through it).
func MapParser[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return Bind(p, func(a A) Parser[B] { return Pure(f(a)) })
}

// OrElse tries p; if p succeeded, or failed having consumed input, its
// result is returned as-is — no backtracking across consumed input. Only
// when p fails at epsilon is q tried, on the *original* cursor (spec
// §4.4):
//
//	q            output
//	okConsumed   unchanged
//	okEps(ex2)   okEps, expected msg1.expected ∪ ex2
//	errEps(ex2)  errEps(merge(msg1, msg2))
//	errConsumed  unchanged
func OrElse[O any](p, q Parser[O]) Parser[O] {
	return func(c Cursor) Result[O] {
		r1 := p(c)
		if r1.Err == nil || r1.Consumed {
			return r1
		}

		r2 := q(c)
		switch {
		case r2.Err == nil && r2.Consumed:
			return r2
		case r2.Err == nil:
			return okEps(r2.Output, r2.Cursor, r1.Err.Expected.Concat(r2.Expected))
		case !r2.Consumed:
			return errEps[O](merge(r1.Err, r2.Err))
		default:
			return r2
		}
	}
}

// Try rewrites an errConsumed outcome of p into errEps, so that OrElse
// can backtrack to an alternative. Every other outcome, including
// okConsumed, passes through unchanged — Try never turns a consuming
// success into an epsilon one.
func Try[O any](p Parser[O]) Parser[O] {
	return func(c Cursor) Result[O] {
		r := p(c)
		if r.Err != nil && r.Consumed {
			return errEps[O](r.Err)
		}
		return r
	}
}

// Lookahead runs p; on success (of either kind) it returns the value but
// rewinds to the original cursor with an empty expected-set, so the
// lookahead itself is invisible to its caller's consumed/epsilon
// classification. Failures pass through unchanged.
func Lookahead[O any](p Parser[O]) Parser[O] {
	return func(c Cursor) Result[O] {
		r := p(c)
		if r.Err != nil {
			return r
		}
		return okEps(r.Output, c, noExpected())
	}
}

// Labels overrides p's expected-set with lbls. On okEps it replaces the
// "would have expected" set; on errEps it replaces the failure's
// expected-set. Consumed outcomes (okConsumed, errConsumed) pass through
// unchanged: once input has been consumed, relabeling would mislead
// about what was actually committed to.
func Labels[O any](p Parser[O], lbls ...string) Parser[O] {
	expected := newExpected(lbls...)
	return func(c Cursor) Result[O] {
		r := p(c)
		switch {
		case r.Err == nil && !r.Consumed:
			r.Expected = expected
			return r
		case r.Err != nil && !r.Consumed:
			return errEps[O](&Message{
				Cursor:     r.Err.Cursor,
				Unexpected: r.Err.Unexpected,
				Expected:   expected,
				Custom:     r.Err.Custom,
			})
		default:
			return r
		}
	}
}

// Label is Labels with a single replacement label; the idiomatic spelling
// of the source's `<?>` operator, which Go has no syntax for.
func Label[O any](p Parser[O], lbl string) Parser[O] {
	return Labels(p, lbl)
}

// Hidden suppresses p's expected-set entirely (Labels with no labels).
func Hidden[O any](p Parser[O]) Parser[O] {
	return Labels[O](p)
}

// NotFollowedBy succeeds (consuming nothing) iff p would fail at the
// current position; it fails with description iff p would succeed.
// Implemented exactly as the source prescribes: lookahead over a Try'd p
// so that p's own consumption never leaks into the outer parse.
func NotFollowedBy[O any](p Parser[O], description string) Parser[struct{}] {
	return func(c Cursor) Result[struct{}] {
		r := Lookahead(Try(p))(c)
		if r.Err == nil {
			return errEps[struct{}](mkMessage(c, description))
		}
		return mkEps(struct{}{}, c)
	}
}

// Ensure refines p with a predicate over its already-parsed value: if
// pred holds the value passes through unchanged, otherwise the parse
// fails labeled failLabel. Because it's expressed with Bind, a consuming
// p that fails Ensure correctly becomes an errConsumed outcome rather
// than a silently-backtrackable one.
func Ensure[O any](p Parser[O], pred func(O) bool, failLabel string) Parser[O] {
	return Bind(p, func(v O) Parser[O] {
		if pred(v) {
			return Pure(v)
		}
		return Labels(Unexpected[O](fmt.Sprintf("%v", v)), failLabel)
	})
}
