package securityquestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomNumberStaysInRange(t *testing.T) {
	h := New(3, 7)
	for i := 0; i < 500; i++ {
		n := h.RandomNumber()
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 7)
	}
}

func TestRandomNumberSingleValueRange(t *testing.T) {
	h := New(5, 5)
	assert.Equal(t, 5, h.RandomNumber())
}

func TestNewSwapsReversedBounds(t *testing.T) {
	h := New(9, 2)
	h.intN = func(n int) int { return n - 1 }
	assert.Equal(t, 9, h.RandomNumber())

	h.intN = func(int) int { return 0 }
	assert.Equal(t, 2, h.RandomNumber())
}
