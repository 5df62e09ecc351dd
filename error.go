package parsec

import "fmt"

// ExpectedSet is a difference-list accumulation of production labels.
// Concatenation (via Concat) is O(1): it just composes two closures.
// The actual slice work only happens once, when Labels materializes the
// set for rendering. A nil ExpectedSet means "no set at all" (the
// okConsumed case); a non-nil ExpectedSet that produces zero labels
// still means "some empty set" (the okEps case for e.g. Pure).
type ExpectedSet func(tail []string) []string

// noExpected is the empty-but-present expected-set: "some []", not "none".
func noExpected() ExpectedSet {
	return func(tail []string) []string { return tail }
}

// newExpected builds an expected-set out of one or more labels.
func newExpected(labels ...string) ExpectedSet {
	if len(labels) == 0 {
		return noExpected()
	}
	cp := append([]string(nil), labels...)
	return func(tail []string) []string { return append(cp, tail...) }
}

// Concat appends two expected-sets in O(1); materialization is deferred.
func (a ExpectedSet) Concat(b ExpectedSet) ExpectedSet {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(tail []string) []string { return a(b(tail)) }
}

// Labels materializes the set: de-duplicated, in first-seen order.
func (a ExpectedSet) Labels() []string {
	if a == nil {
		return nil
	}
	raw := a(nil)
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// Message is everything a parser failure carries (an epsilon success
// records what it *would* have expected in Result.Expected instead): the
// cursor at which it occurred, a human description of what was actually seen, an
// accumulating set of expected labels, and an optional custom payload a
// caller can attach and later type-assert back out via CustomPayload.
type Message struct {
	Cursor     Cursor
	Unexpected string
	Expected   ExpectedSet
	Custom     any
}

// mkMessage builds a Message with the given expected labels (zero or more).
func mkMessage(cursor Cursor, unexpected string, expected ...string) *Message {
	return &Message{Cursor: cursor, Unexpected: unexpected, Expected: newExpected(expected...)}
}

// merge combines two messages that refer to the same cursor: their
// expected-sets are concatenated, m1's cursor and unexpected text win.
func merge(m1, m2 *Message) *Message {
	if m1 == nil {
		return m2
	}
	if m2 == nil {
		return m1
	}
	return &Message{
		Cursor:     m1.Cursor,
		Unexpected: m1.Unexpected,
		Expected:   m1.Expected.Concat(m2.Expected),
		Custom:     m1.Custom,
	}
}

// CustomPayload type-asserts a Message's custom payload, if any was set.
func CustomPayload[U any](m *Message) (U, bool) {
	var zero U
	if m == nil || m.Custom == nil {
		return zero, false
	}
	u, ok := m.Custom.(U)
	return u, ok
}

// WithCustom returns a copy of the message carrying the given payload.
func (m *Message) WithCustom(payload any) *Message {
	cp := *m
	cp.Custom = payload
	return &cp
}

// Render formats a Message in the library's canonical, terminal-agnostic
// shape:
//
//	error at line <L>, column <C>:
//	unexpected <u>
//	expected <e1>, <e2>, … or <en>
//
// The unexpected line is omitted when Unexpected is empty; the expected
// line is omitted when the expected-set is empty.
func (m *Message) Render() string {
	line, col := m.Cursor.LineCol()
	out := fmt.Sprintf("error at line %d, column %d:\n", line, col)
	if m.Unexpected != "" {
		out += fmt.Sprintf("unexpected %s\n", m.Unexpected)
	}
	if labels := m.Expected.Labels(); len(labels) > 0 {
		out += fmt.Sprintf("expected %s\n", joinExpected(labels))
	}
	return out
}

// Error satisfies the standard error interface.
func (m *Message) Error() string {
	return m.Render()
}

func joinExpected(labels []string) string {
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	default:
		head := labels[:len(labels)-1]
		last := labels[len(labels)-1]
		out := ""
		for i, l := range head {
			if i > 0 {
				out += ", "
			}
			out += l
		}
		return out + " or " + last
	}
}

// printableRune renders a rune the way "unexpected" descriptions quote
// it, e.g. 'a' or end of input.
func printableRune(r rune, ok bool) string {
	if !ok {
		return "end of input"
	}
	return fmt.Sprintf("%q", r)
}
