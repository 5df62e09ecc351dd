package parsec

// Many1 applies p one or more times, collecting outputs into a slice.
// Termination is guaranteed by an explicit fuel counter equal to the
// remaining character count at entry (spec §4.9): each iteration that
// consumes input strictly reduces what's left, and zero-progress
// iterations (p capable of epsilon success, e.g. TakeWhile) exhaust the
// counter instead of looping forever. The loop is written iteratively
// rather than as the literal recursive definition
// `p then (many1 p <|> pure [])` to avoid unbounded native recursion
// depth on large inputs, per spec §9's explicit continuation-queue note;
// the consumed/epsilon/expected-set bookkeeping below reproduces exactly
// what that recursive definition would produce.
//
// Crucially, an errConsumed failure partway through the run is NOT
// recoverable: it discards every output collected so far and fails the
// whole Many1, exactly as `p then (many1 p <|> pure [])` would (the
// failing inner call's errConsumed is promoted by Bind and can't be
// caught by the inner OrElse, since OrElse never retries on consumed
// failure). Callers that want a recoverable element parser should wrap
// it in Try themselves.
func Many1[O any](p Parser[O]) Parser[[]O] {
	return func(c Cursor) Result[[]O] {
		first := p(c)
		if first.Err != nil {
			return resultAsError[O, []O](first)
		}

		results := []O{first.Output}
		cur := first.Cursor
		consumed := first.Consumed
		var epsExpected ExpectedSet
		if !consumed {
			epsExpected = first.Expected
		}

		fuel := c.Remaining()
		for i := 0; i < fuel; i++ {
			r := p(cur)
			if r.Err != nil {
				if r.Consumed {
					return errConsumed[[]O](r.Err)
				}
				if !consumed {
					epsExpected = epsExpected.Concat(r.Err.Expected)
				}
				break
			}

			results = append(results, r.Output)
			cur = r.Cursor
			if r.Consumed {
				consumed = true
			} else if !consumed {
				epsExpected = epsExpected.Concat(r.Expected)
			}
		}

		if consumed {
			return okConsumed(results, cur)
		}
		return okEps(results, cur, epsExpected)
	}
}

// Many applies p zero or more times: `many1 p <|> pure []`.
func Many[O any](p Parser[O]) Parser[[]O] {
	return func(c Cursor) Result[[]O] {
		return OrElse(Many1(p), Pure([]O{}))(c)
	}
}

// SepBy1 parses one or more occurrences of p separated by sep:
// `p followed by many (sep *> p)`.
func SepBy1[O, S any](p Parser[O], sep Parser[S]) Parser[[]O] {
	return Bind(p, func(first O) Parser[[]O] {
		return Bind(Many(Then(sep, p)), func(rest []O) Parser[[]O] {
			return Pure(append([]O{first}, rest...))
		})
	})
}

// SepBy parses zero or more occurrences of p separated by sep:
// `sepBy1 p sep <|> pure []`.
func SepBy[O, S any](p Parser[O], sep Parser[S]) Parser[[]O] {
	return func(c Cursor) Result[[]O] {
		return OrElse(SepBy1(p, sep), Pure([]O{}))(c)
	}
}

// FoldR parses zero or more occurrences of p and right-folds f over
// them starting from b.
func FoldR[O, B any](p Parser[O], b B, f func(O, B) B) Parser[B] {
	return Bind(Many(p), func(items []O) Parser[B] {
		acc := b
		for i := len(items) - 1; i >= 0; i-- {
			acc = f(items[i], acc)
		}
		return Pure(acc)
	})
}

// FoldL parses zero or more occurrences of p and left-folds f over them
// starting from a.
func FoldL[O, B any](a B, p Parser[O], f func(B, O) B) Parser[B] {
	return Bind(Many(p), func(items []O) Parser[B] {
		acc := a
		for _, it := range items {
			acc = f(acc, it)
		}
		return Pure(acc)
	})
}

// Fix supports defining simple recursive parsers without tying a
// self-referential knot in the Go type system: `fix f` is
// `f(f(f(...f(error "no progress")...)))`, unrolled fuel = remaining+1
// times, where f is given "the rest of the recursion" and decides how
// (or whether) to call it. The unrolling happens once per call to the
// parser Fix returns; actual execution only descends as deep into the
// tower as the grammar genuinely recurses, capped by fuel.
func Fix[O any](f func(Parser[O]) Parser[O]) Parser[O] {
	return func(c Cursor) Result[O] {
		fuel := c.Remaining() + 1
		var p Parser[O] = func(at Cursor) Result[O] {
			return errEps[O](mkMessage(at, "no progress", "fix base case"))
		}
		for i := 0; i < fuel; i++ {
			p = f(p)
		}
		return p(c)
	}
}
