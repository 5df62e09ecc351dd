package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityEffectLiftIsIdentity(t *testing.T) {
	t.Parallel()

	eff := IdentityEffect[rune]{}
	p := Ch('a')
	lifted := eff.Lift(p)

	c := NewCursor("", "abc")
	assertSameResult(t, p(c), lifted(c))
}

func TestTryInDemotesConsumedErrorOverIdentityEffect(t *testing.T) {
	t.Parallel()

	eff := IdentityEffect[rune]{}
	p := eff.Lift(Then(Ch('a'), Ch('b')))
	wrapped := TryIn[Parser[rune], rune](eff, p)

	r := wrapped(NewCursor("", "ac"))
	assert.NotNil(t, r.Err)
	assert.False(t, r.Consumed)
}

func TestTryInLeavesSuccessUntouched(t *testing.T) {
	t.Parallel()

	eff := IdentityEffect[rune]{}
	p := eff.Lift(Ch('a'))
	wrapped := TryIn[Parser[rune], rune](eff, p)

	r := wrapped(NewCursor("", "abc"))
	assert.Nil(t, r.Err)
	assert.True(t, r.Consumed)
	assert.Equal(t, 'a', r.Output)
}

func TestLabelsInReplacesExpectedOnEpsilonOutcomes(t *testing.T) {
	t.Parallel()

	eff := IdentityEffect[rune]{}
	p := eff.Lift(Ch('a'))
	wrapped := LabelsIn[Parser[rune], rune](eff, p, "letter a")

	r := wrapped(NewCursor("", "z"))
	assert.NotNil(t, r.Err)
	assert.Equal(t, []string{"letter a"}, r.Err.Expected.Labels())
}

func TestLabelsInLeavesConsumedFailureAlone(t *testing.T) {
	t.Parallel()

	eff := IdentityEffect[rune]{}
	p := eff.Lift(Then(Ch('a'), Ch('b')))
	wrapped := LabelsIn[Parser[rune], rune](eff, p, "replacement")

	r := wrapped(NewCursor("", "ac"))
	assert.NotNil(t, r.Err)
	assert.Equal(t, []string{"'b'"}, r.Err.Expected.Labels())
}
