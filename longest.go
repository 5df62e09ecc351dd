package parsec

// LongestMatch runs every parser in ps independently from the same
// starting cursor (each wrapped in Try so a consumed failure in one
// candidate can never poison another — spec calls this running each
// "via lookahead∘try" in isolation; since Cursor is an immutable value,
// isolation falls out automatically from simply never threading one
// candidate's resulting cursor into the next trial).
//
// Among the candidates that succeeded, the one reaching the furthest end
// offset wins; ties keep the earliest parser in ps. Among candidates
// that failed (when none succeeded), the error with the furthest cursor
// wins; ties merge the tied messages together rather than picking one
// arbitrarily (spec §9's open question on this explicitly asks for
// merge-on-tie, to avoid turning a recoverable error chain into an
// unrecoverable one by discarding information). On success the returned
// cursor is the winner's end cursor; on failure the merged message's
// cursor is the furthest failing one. Either way, the outcome is marked
// consumed iff that furthest offset is past the start.
func LongestMatch[O any](ps ...Parser[O]) Parser[O] {
	return func(c Cursor) Result[O] {
		if len(ps) == 0 {
			return errEps[O](mkMessage(c, "", "at least one alternative"))
		}

		trials := make([]Result[O], len(ps))
		for i, p := range ps {
			trials[i] = Try(p)(c)
		}

		bestIdx, bestOffset := -1, -1
		for i, r := range trials {
			if r.Err != nil {
				continue
			}
			if off := r.Cursor.Offset(); off > bestOffset {
				bestOffset, bestIdx = off, i
			}
		}

		if bestIdx >= 0 {
			win := trials[bestIdx]
			if win.Cursor.Offset() > c.Offset() {
				return okConsumed(win.Output, win.Cursor)
			}
			return okEps(win.Output, win.Cursor, win.Expected)
		}

		var merged *Message
		bestOffset = -1
		for _, r := range trials {
			off := r.Err.Cursor.Offset()
			switch {
			case off > bestOffset:
				bestOffset = off
				merged = r.Err
			case off == bestOffset:
				merged = merge(merged, r.Err)
			}
		}

		if bestOffset > c.Offset() {
			return errConsumed[O](merged)
		}
		return errEps[O](merged)
	}
}
