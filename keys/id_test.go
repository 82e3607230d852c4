package keys

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberIDOrdering(t *testing.T) {
	values := []int64{math.MinInt64, -1000, -1, 0, 1, 7, 1000, math.MaxInt64}
	for i := 1; i < len(values); i++ {
		a := NumberID(values[i-1])
		b := NumberID(values[i])
		assert.Negative(t, a.Compare(b), "%d must sort before %d", values[i-1], values[i])
	}
}

func TestNumberIDRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 12345, math.MaxInt64, math.MinInt64} {
		got, err := NumberID(v).AsLong()
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := Id([]byte{1, 2}).AsLong()
	assert.Error(t, err)
}

func TestIndexIDValueOrdering(t *testing.T) {
	label := NumberID(3)
	values := []int64{0, 15, 18, 20, 25, 1 << 40}
	for i := 1; i < len(values); i++ {
		a, err := IndexID(RangeIndex, label, values[i-1])
		assert.NoError(t, err)
		b, err := IndexID(RangeIndex, label, values[i])
		assert.NoError(t, err)
		assert.Negative(t, a.Compare(b))
	}
}

func TestIndexIDFloatOrdering(t *testing.T) {
	label := NumberID(3)
	values := []float64{math.Inf(-1), -12.5, -0.1, 0, 0.1, 1.5, 99.9, math.Inf(1)}
	for i := 1; i < len(values); i++ {
		a, err := IndexID(RangeIndex, label, values[i-1])
		assert.NoError(t, err)
		b, err := IndexID(RangeIndex, label, values[i])
		assert.NoError(t, err)
		assert.Negative(t, a.Compare(b))
	}
}

func TestIndexIDLabelPartitioning(t *testing.T) {
	// a smaller label with a huge value still sorts before a bigger label
	a, err := IndexID(RangeIndex, NumberID(1), int64(math.MaxInt64))
	assert.NoError(t, err)
	b, err := IndexID(RangeIndex, NumberID(2), int64(math.MinInt64))
	assert.NoError(t, err)
	assert.Negative(t, a.Compare(b))
}

func TestIndexIDBadLabel(t *testing.T) {
	_, err := IndexID(RangeIndex, Id([]byte{1}), int64(1))
	assert.Error(t, err)
}

func TestIndexIDDeterministic(t *testing.T) {
	label := NumberID(7)
	a, err := IndexID(SecondaryIndex, label, "jackie")
	assert.NoError(t, err)
	b, err := IndexID(SecondaryIndex, label, "jackie")
	assert.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := IndexID(SecondaryIndex, label, "rose")
	assert.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestSecondaryIndexIDFoldsLongValues(t *testing.T) {
	label := NumberID(7)
	long := strings.Repeat("x", 10*MaxStringIndexLen)
	id, err := IndexID(SecondaryIndex, label, long)
	assert.NoError(t, err)
	assert.Len(t, id.Bytes(), 8+8)

	again, err := IndexID(SecondaryIndex, label, long)
	assert.NoError(t, err)
	assert.True(t, id.Equal(again))
}

func TestIndexIDUnsupportedValue(t *testing.T) {
	_, err := IndexID(RangeIndex, NumberID(1), struct{}{})
	assert.ErrorIs(t, err, ErrUnsupportedValue)

	_, err = IndexID(Vertex, NumberID(1), int64(1))
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}
