package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	var blank Value
	assert.Equal(t, Blank, blank.Kind())
	assert.True(t, blank.IsBlank())
	assert.Equal(t, ".", blank.String())

	mine := mineValue()
	assert.Equal(t, Mine, mine.Kind())
	assert.True(t, mine.IsMine())
	_, ok := mine.Number()
	assert.False(t, ok)
	assert.Equal(t, "*", mine.String())

	for i := 1; i <= 8; i++ {
		v := numberValue(i)
		assert.Equal(t, Number, v.Kind())
		n, ok := v.Number()
		assert.True(t, ok)
		assert.Equal(t, i, n)
		assert.False(t, v.IsBlank())
		assert.False(t, v.IsMine())
	}

	assert.Panics(t, func() { numberValue(9) })
	assert.Panics(t, func() { numberValue(-1) })
}

func TestCellReveal(t *testing.T) {
	c := cell{}
	c.flag()
	assert.ErrorIs(t, c.reveal(false), ErrCellFlagged)
	assert.False(t, c.revealed)

	assert.NoError(t, c.reveal(true))
	assert.True(t, c.revealed)
	assert.True(t, c.flagged)
}
