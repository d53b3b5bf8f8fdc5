package fact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/fact"
	"github.com/zztool/zz/span"
)

func TestAppendIsMonotonic(t *testing.T) {
	var s fact.Store
	id1 := s.Append(fact.Fact{Subject: span.Pack(span.New(0, 5)), Predicate: fact.IsToken})
	id2 := s.Append(fact.Fact{Subject: span.Pack(span.New(5, 10)), Predicate: fact.IsToken})

	require.Less(t, id1, id2)
	assert.Equal(t, fact.ID(1), id1)
	assert.Equal(t, fact.ID(2), id2)
	assert.Equal(t, 2, s.Len())
}

func TestIterByPredicate(t *testing.T) {
	var s fact.Store
	boundary := s.Append(fact.Fact{Subject: span.Pack(span.New(0, 20)), Predicate: fact.IsBoundary})
	s.Append(fact.Fact{Subject: span.Pack(span.New(2, 4)), Predicate: fact.IsToken})
	s.Append(fact.Fact{
		Subject:   span.Pack(span.New(2, 4)),
		Predicate: fact.HasParent,
		Object:    fact.FactRefValue(boundary),
	})

	boundaries := s.IterByPredicate(fact.IsBoundary)
	require.Len(t, boundaries, 1)
	assert.Equal(t, boundary, boundaries[0])

	parents := s.IterByPredicate(fact.HasParent)
	require.Len(t, parents, 1)
	assert.Equal(t, boundary, s.Get(parents[0]).Object.FactRef())
}

func TestIterBySpan(t *testing.T) {
	var s fact.Store
	id := s.Append(fact.Fact{Subject: span.Pack(span.New(10, 20)), Predicate: fact.IsBoundary})

	hits := s.IterBySpan(19)
	require.Contains(t, hits, id)

	// The span is half-open: its own end offset, and anything beyond, is
	// not covered.
	assert.Empty(t, s.IterBySpan(20))
	assert.Empty(t, s.IterBySpan(1000))
}

func TestGeneration(t *testing.T) {
	var s fact.Store
	assert.Equal(t, uint32(0), s.Generation())
	s.Append(fact.Fact{Subject: span.Pack(span.New(0, 1)), Predicate: fact.IsToken})
	assert.Equal(t, uint32(1), s.Generation())
}

func TestCompactDropsLowConfidenceAndRenumbers(t *testing.T) {
	var s fact.Store
	s.Append(fact.Fact{Subject: span.Pack(span.New(0, 1)), Predicate: fact.IsToken, Confidence: 0.95})
	s.Append(fact.Fact{Subject: span.Pack(span.New(1, 2)), Predicate: fact.IsToken, Confidence: 0.1})
	s.Append(fact.Fact{Subject: span.Pack(span.New(2, 3)), Predicate: fact.IsToken, Confidence: 1.0})

	s.Compact(fact.Certain)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, span.New(0, 1), s.Get(fact.ID(1)).Subject.Unpack())
	assert.Equal(t, span.New(2, 3), s.Get(fact.ID(2)).Subject.Unpack())
}

func TestGetPanicsOnInvalidID(t *testing.T) {
	var s fact.Store
	assert.Panics(t, func() { s.Get(fact.ID(42)) })
}
