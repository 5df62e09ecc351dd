package parsec

// Parse is the main entry point (spec §6): it runs p against input and
// returns either the parsed value or the failure Message (which
// implements error, and renders via its Render method / Error string in
// the canonical format). filename is optional and carried on the
// Message's cursor for a caller's own diagnostics; it plays no part in
// the canonical render.
func Parse[O any](p Parser[O], input string, filename ...string) (O, error) {
	var zero O
	c := newEntryCursor(filename, input)
	r := p(c)
	if r.Err != nil {
		return zero, r.Err
	}
	return r.Output, nil
}

// ParseCustom is Parse for callers who attached a custom payload to
// their error-raising parsers (via WithCustom / UnexpectedCustom) and
// plan to recover it with CustomPayload from the returned error.
func ParseCustom[O any](p Parser[O], input string, filename ...string) (O, error) {
	return Parse(p, input, filename...)
}

// ParseWithEoi is `parse(p <* eoi, …)`: it additionally requires the
// entire input be consumed.
func ParseWithEoi[O any](p Parser[O], input string, filename ...string) (O, error) {
	return Parse(SequenceLeft(p, Eoi()), input, filename...)
}

// ParseWithLeftOver runs p and returns both its value and whatever
// input remains unconsumed.
func ParseWithLeftOver[O any](p Parser[O], input string, filename ...string) (O, string, error) {
	var zero O
	c := newEntryCursor(filename, input)
	r := p(c)
	if r.Err != nil {
		return zero, "", r.Err
	}
	return r.Output, r.Cursor.LeftOver(), nil
}

func newEntryCursor(filename []string, input string) Cursor {
	fn := ""
	if len(filename) > 0 {
		fn = filename[0]
	}
	return NewCursor(fn, input)
}

// UnexpectedCustom is Unexpected with a custom payload attached to the
// resulting Message, recoverable later via CustomPayload.
func UnexpectedCustom[O any](description string, custom any) Parser[O] {
	return func(c Cursor) Result[O] {
		return errEps[O](mkMessage(c, description).WithCustom(custom))
	}
}
