package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObservingNeverFails(t *testing.T) {
	t.Parallel()

	c := NewCursor("", "x")
	r := Observing(Ch('a'))(c)

	assert.Nil(t, r.Err)
	assert.False(t, r.Consumed)
	assert.True(t, r.Cursor.Equal(c))
	assert.False(t, r.Output.IsOk())
	assert.NotNil(t, r.Output.Err)
}

func TestObservingReportsSuccessAsData(t *testing.T) {
	t.Parallel()

	c := NewCursor("", "abc")
	r := Observing(Then(Ch('a'), Ch('b')))(c)

	assert.Nil(t, r.Err)
	assert.False(t, r.Consumed)
	assert.True(t, r.Cursor.Equal(c))
	assert.True(t, r.Output.IsOk())
	assert.Equal(t, 'b', r.Output.Value)
}
