package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrAllOrNothing(t *testing.T) {
	t.Parallel()

	r := Str("let")(NewCursor("", "letter"))
	assert.Nil(t, r.Err)
	assert.Equal(t, "let", r.Output)
	assert.Equal(t, 3, r.Cursor.Offset())
}

func TestStrFailsAtEpsilonLeavingCursorUntouched(t *testing.T) {
	t.Parallel()

	c := NewCursor("", "lex")
	r := Str("let")(c)
	assert.NotNil(t, r.Err)
	assert.False(t, r.Consumed)
	assert.True(t, r.Err.Cursor.Equal(c))
}

func TestStrLetVsLetterAlternative(t *testing.T) {
	t.Parallel()

	p := OrElse(Try(SequenceLeft(Str("let"), Eoi())), Str("letter"))
	r := p(NewCursor("", "letter"))
	assert.Nil(t, r.Err)
	assert.Equal(t, "letter", r.Output)
}

func TestStrEmptyAlwaysSucceedsAtEpsilon(t *testing.T) {
	t.Parallel()

	c := NewCursor("", "abc")
	r := Str("")(c)
	assert.Nil(t, r.Err)
	assert.False(t, r.Consumed)
	assert.True(t, r.Cursor.Equal(c))
}

func TestTakeExactCount(t *testing.T) {
	t.Parallel()

	r := Take(3)(NewCursor("", "abcdef"))
	assert.Nil(t, r.Err)
	assert.Equal(t, "abc", r.Output)
	assert.Equal(t, 3, r.Cursor.Offset())
}

func TestTakeFailsConsumedOnShortInput(t *testing.T) {
	t.Parallel()

	r := Take(5)(NewCursor("", "ab"))
	assert.NotNil(t, r.Err)
	assert.True(t, r.Consumed)
}

func TestTakeZeroIsEpsilon(t *testing.T) {
	t.Parallel()

	r := Take(0)(NewCursor("", "abc"))
	assert.Nil(t, r.Err)
	assert.False(t, r.Consumed)
	assert.Equal(t, "", r.Output)
}

func TestTakeWhileNeverFails(t *testing.T) {
	t.Parallel()

	r := TakeWhile(isDigit)(NewCursor("", "abc"))
	assert.Nil(t, r.Err)
	assert.False(t, r.Consumed)
	assert.Equal(t, "", r.Output)

	r2 := TakeWhile(isDigit)(NewCursor("", "123abc"))
	assert.Nil(t, r2.Err)
	assert.True(t, r2.Consumed)
	assert.Equal(t, "123", r2.Output)
	assert.Equal(t, 3, r2.Cursor.Offset())
}

func TestTakeWhile1RequiresOneMatch(t *testing.T) {
	t.Parallel()

	r := TakeWhile1("digit", isDigit)(NewCursor("", "abc"))
	assert.NotNil(t, r.Err)
	assert.False(t, r.Consumed)

	r2 := TakeWhile1("digit", isDigit)(NewCursor("", "1a"))
	assert.Nil(t, r2.Err)
	assert.Equal(t, "1", r2.Output)
}

func TestTakeUntilAndTakeUntil1(t *testing.T) {
	t.Parallel()

	isComma := func(r rune) bool { return r == ',' }

	r := TakeUntil(isComma)(NewCursor("", "abc,def"))
	assert.Nil(t, r.Err)
	assert.Equal(t, "abc", r.Output)

	r2 := TakeUntil1("field", isComma)(NewCursor("", ",def"))
	assert.NotNil(t, r2.Err)
}

func TestEoi(t *testing.T) {
	t.Parallel()

	r := Eoi()(NewCursor("", ""))
	assert.Nil(t, r.Err)
	assert.False(t, r.Consumed)

	r2 := Eoi()(NewCursor("", "x"))
	assert.NotNil(t, r2.Err)
	assert.Equal(t, []string{"end of input"}, r2.Err.Expected.Labels())
}

func TestLeftOverAndPosAndRemainingDoNotConsume(t *testing.T) {
	t.Parallel()

	c := NewCursor("", "ab\ncd").Advance().Advance().Advance()

	lo := LeftOver()(c)
	assert.Equal(t, "cd", lo.Output)
	assert.False(t, lo.Consumed)

	pos := Pos()(c)
	assert.Equal(t, Position{Line: 2, Col: 1, Offset: 3}, pos.Output)

	rem := Remaining()(c)
	assert.Equal(t, 2, rem.Output)
}

func TestWhitespaceConsumesSpacesAndTabs(t *testing.T) {
	t.Parallel()

	r := Whitespace()(NewCursor("", "  \t x"))
	assert.Nil(t, r.Err)
	assert.Equal(t, "  \t ", r.Output)
	assert.Equal(t, 4, r.Cursor.Offset())
}

func TestLexemeDiscardsTrailingTrivia(t *testing.T) {
	t.Parallel()

	p := Lexeme[string, rune](Ch('a'), Whitespace())
	r := p(NewCursor("", "a   b"))
	assert.Nil(t, r.Err)
	assert.Equal(t, 'a', r.Output)
	assert.Equal(t, 4, r.Cursor.Offset())
}

func TestNumParsesDigitsIntoInt(t *testing.T) {
	t.Parallel()

	r := Num()(NewCursor("", "123abc"))
	assert.Nil(t, r.Err)
	assert.Equal(t, 123, r.Output)
	assert.Equal(t, 3, r.Cursor.Offset())
}

func TestNumFailsWithoutDigits(t *testing.T) {
	t.Parallel()

	r := Num()(NewCursor("", "abc"))
	assert.NotNil(t, r.Err)
}

func TestConcatJoinsRunes(t *testing.T) {
	t.Parallel()

	p := Concat(Many1(Alpha()))
	r := p(NewCursor("", "abc123"))
	assert.Nil(t, r.Err)
	assert.Equal(t, "abc", r.Output)
}
