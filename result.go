package parsec

// Result is the outcome of applying a Parser to a Cursor. It encodes the
// library's central four-way invariant as a single flat struct: an
// ok/error tag (Err == nil iff success) crossed with a consumed/epsilon
// discriminator (Consumed).
//
//	okConsumed:  Err == nil, Consumed == true,  Expected == nil
//	okEps:       Err == nil, Consumed == false, Expected != nil
//	errConsumed: Err != nil, Consumed == true
//	errEps:      Err != nil, Consumed == false
//
// Expected is non-nil exactly on okEps: it records the labels that would
// have been reported had the epsilon success not happened, so that
// OrElse can still blame both branches when both abstain. On okConsumed
// it is nil ("none"), never a populated-but-unused set.
type Result[O any] struct {
	Output   O
	Cursor   Cursor
	Consumed bool
	Err      *Message
	Expected ExpectedSet
}

// Ok reports whether the result represents a successful parse.
func (r Result[O]) Ok() bool { return r.Err == nil }

func okConsumed[O any](output O, cursor Cursor) Result[O] {
	return Result[O]{Output: output, Cursor: cursor, Consumed: true}
}

func okEps[O any](output O, cursor Cursor, expected ExpectedSet) Result[O] {
	if expected == nil {
		expected = noExpected()
	}
	return Result[O]{Output: output, Cursor: cursor, Consumed: false, Expected: expected}
}

func errConsumed[O any](msg *Message) Result[O] {
	return Result[O]{Err: msg, Consumed: true}
}

func errEps[O any](msg *Message) Result[O] {
	return Result[O]{Err: msg, Consumed: false}
}

// mkEps constructs an okEps result with an empty expected-set, per
// spec §4.1.
func mkEps[O any](output O, cursor Cursor) Result[O] {
	return okEps(output, cursor, noExpected())
}

// resultAsError rebuilds a Result[O] of a different output type from an
// error Result, preserving its Err/Consumed discriminator. Used where
// combinators must propagate a failure across a type-changing boundary
// (e.g. Bind, where p's and q's output types differ).
func resultAsError[A, B any](r Result[A]) Result[B] {
	if r.Consumed {
		return errConsumed[B](r.Err)
	}
	return errEps[B](r.Err)
}
