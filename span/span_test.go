package span_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/span"
)

func TestPackRoundTrip(t *testing.T) {
	s := span.New(12, 40)
	packed := span.Pack(s)
	assert.Equal(t, s, packed.Unpack())
}

func TestNewPanicsOnInvertedRange(t *testing.T) {
	require.Panics(t, func() {
		span.New(10, 2)
	})
}

func TestContainsAndOverlaps(t *testing.T) {
	outer := span.New(0, 100)
	inner := span.New(10, 20)
	disjoint := span.New(200, 210)

	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
	assert.True(t, outer.Overlaps(inner))
	assert.False(t, outer.Overlaps(disjoint))
}

func TestJoin(t *testing.T) {
	a := span.New(5, 10)
	b := span.New(20, 30)
	assert.Equal(t, span.New(5, 30), span.Join(a, b))
	assert.Equal(t, a, span.Join(span.Span{}, a))
}

func TestShift(t *testing.T) {
	packed := span.Pack(span.New(10, 20))
	shifted := packed.Shift(5)
	assert.Equal(t, span.New(15, 25), shifted.Unpack())
}
