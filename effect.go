package parsec

// Effect is the capability contract spec §4.12 asks any ambient monad M
// to satisfy in order to host this package's parsers: the ability to
// lift a pure cursor→result function into M, and the ability to map a
// transformation over M while preserving its outer structure. Any
// reader/state/exception transformer that implements Effect for its own
// M automatically inherits Try, Labels, and friends via TryIn/LabelsIn
// below, without those combinators needing to know anything about M's
// internals — this is what "inherits parser capability automatically"
// means in a language without higher-kinded polymorphism: the contract
// is spelled out as two concrete methods instead of a type class.
type Effect[M any, O any] interface {
	// Lift embeds a pure parser function into M.
	Lift(p Parser[O]) M
	// Map transforms the Result a parser run inside M would produce,
	// while leaving M's own effectful structure (the reader environment,
	// the state thread, whatever M actually is) untouched.
	Map(m M, transform func(Result[O]) Result[O]) M
}

// TryIn is Try expressed purely in terms of the Effect contract, so it
// composes over any M a caller has made liftable and mappable.
func TryIn[M any, O any](eff Effect[M, O], m M) M {
	return eff.Map(m, demoteConsumedError[O])
}

func demoteConsumedError[O any](r Result[O]) Result[O] {
	if r.Err != nil && r.Consumed {
		return errEps[O](r.Err)
	}
	return r
}

// LabelsIn is Labels expressed over the Effect contract.
func LabelsIn[M any, O any](eff Effect[M, O], m M, lbls ...string) M {
	expected := newExpected(lbls...)
	return eff.Map(m, func(r Result[O]) Result[O] {
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
	})
}

// IdentityEffect hosts a Parser[O] in itself: Lift is the identity and
// Map just wraps the transform around a direct call. It witnesses that
// the bare algebra already satisfies its own capability contract — the
// degenerate case of "a target language lacking higher-kinded
// abstraction exposes this as two concrete entry points: one for pure
// parsing, one with a user-supplied interpret callback" (spec §9). Parse
// and friends (run.go) are the pure entry point; a caller wanting a
// reader/state/exception stack implements Effect for their own M and
// gets Try/Labels over it via TryIn/LabelsIn.
type IdentityEffect[O any] struct{}

// Lift returns p unchanged.
func (IdentityEffect[O]) Lift(p Parser[O]) Parser[O] { return p }

// Map composes transform after running m.
func (IdentityEffect[O]) Map(m Parser[O], transform func(Result[O]) Result[O]) Parser[O] {
	return func(c Cursor) Result[O] { return transform(m(c)) }
}
