package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/fact"
	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/scanner"
)

func TestScanNestedBoundaries(t *testing.T) {
	src := []byte(`{"a":[1,2]}`)
	stream := lexer.Tokenize(rule.LangJSON, src)
	store := &fact.Store{}

	errs := scanner.Scan(src, stream.Tokens, store)
	require.Empty(t, errs)

	var boundaries, parents int
	for i := 0; i < store.Len(); i++ {
		f := store.Get(fact.ID(i + 1))
		switch f.Predicate {
		case fact.IsBoundary:
			boundaries++
		case fact.HasParent:
			parents++
		}
	}
	assert.Equal(t, 2, boundaries, "object and array each get one boundary fact")
	assert.Equal(t, 1, parents, "the array boundary has the object boundary as parent")
}

func TestScanOuterBoundarySpansWholeInput(t *testing.T) {
	src := []byte(`{"a":1}`)
	stream := lexer.Tokenize(rule.LangJSON, src)
	store := &fact.Store{}

	scanner.Scan(src, stream.Tokens, store)

	found := false
	for i := 0; i < store.Len(); i++ {
		f := store.Get(fact.ID(i + 1))
		if f.Predicate != fact.IsBoundary {
			continue
		}
		sp := f.Subject.Unpack()
		if sp.Start == 0 && int(sp.End) == len(src) {
			found = true
		}
	}
	assert.True(t, found, "outermost boundary should span the entire input")
}

func TestScanUnmatchedCloserProducesError(t *testing.T) {
	src := []byte(`}`)
	stream := lexer.Tokenize(rule.LangJSON, src)
	store := &fact.Store{}

	errs := scanner.Scan(src, stream.Tokens, store)
	require.Len(t, errs, 1)
	assert.Equal(t, fact.HasError, store.Get(errs[0]).Predicate)
}

func TestScanUnclosedOpenerProducesErrorAtEOF(t *testing.T) {
	src := []byte(`{"a":1`)
	stream := lexer.Tokenize(rule.LangJSON, src)
	store := &fact.Store{}

	errs := scanner.Scan(src, stream.Tokens, store)
	require.Len(t, errs, 1)
	f := store.Get(errs[0])
	assert.Equal(t, fact.HasError, f.Predicate)
	assert.Equal(t, uint32(len(src)), f.Subject.Unpack().End)
}

func TestScanMismatchedBracketsHealsAndFlags(t *testing.T) {
	src := []byte(`[1,2}`)
	stream := lexer.Tokenize(rule.LangJSON, src)
	store := &fact.Store{}

	errs := scanner.Scan(src, stream.Tokens, store)
	require.Len(t, errs, 1)

	var boundaries int
	for i := 0; i < store.Len(); i++ {
		if store.Get(fact.ID(i + 1)).Predicate == fact.IsBoundary {
			boundaries++
		}
	}
	assert.Equal(t, 1, boundaries, "healing still closes the open bracket into a boundary")
}
