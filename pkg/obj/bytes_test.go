package obj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataRangeWithinBounds(t *testing.T) {
	data := []byte("hello, world")

	got, ok := DataRange(data, 0x1000, 0x1002, 5)
	assert.True(t, ok)
	assert.Equal(t, []byte("llo, "), got)
}

func TestDataRangeExactFit(t *testing.T) {
	data := []byte("abcdef")

	got, ok := DataRange(data, 0, 0, uint64(len(data)))
	assert.True(t, ok)
	assert.Equal(t, data, got)
}

func TestDataRangeBeforeBase(t *testing.T) {
	data := []byte("abcdef")

	_, ok := DataRange(data, 0x1000, 0x0FFF, 1)
	assert.False(t, ok)
}

func TestDataRangePastEnd(t *testing.T) {
	data := []byte("abcdef")

	_, ok := DataRange(data, 0, 4, 4)
	assert.False(t, ok)
}

func TestDataRangeOverflowNeverPanics(t *testing.T) {
	data := []byte("abcdef")

	assert.NotPanics(t, func() {
		_, ok := DataRange(data, 0, math.MaxUint64-2, math.MaxUint64-2)
		assert.False(t, ok)
	})
}
