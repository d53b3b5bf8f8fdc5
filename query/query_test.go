package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/parser"
	"github.com/zztool/zz/query"
	"github.com/zztool/zz/rule"
)

func TestWalkPreOrderVisitsParentBeforeChildren(t *testing.T) {
	src := `{"a":1,"b":2}`
	toks := lexer.Tokenize(rule.LangJSON, []byte(src))
	tree := parser.Parse(rule.LangJSON, toks, []byte(src), parser.Options{}, nil)

	var order []rule.ID
	query.Walk(tree, tree.Root(), func(tr *ast.AST, p ast.Ptr) query.Continuation {
		order = append(order, tr.Node(p).Rule)
		return query.Descend
	})

	require.NotEmpty(t, order)
	assert.Equal(t, rule.JSONDocument, order[0])
	assert.Equal(t, rule.JSONObject, order[1])
}

func TestWalkStopsEarly(t *testing.T) {
	src := `{"a":1,"b":2}`
	toks := lexer.Tokenize(rule.LangJSON, []byte(src))
	tree := parser.Parse(rule.LangJSON, toks, []byte(src), parser.Options{}, nil)

	count := 0
	query.Walk(tree, tree.Root(), func(tr *ast.AST, p ast.Ptr) query.Continuation {
		count++
		if count == 2 {
			return query.Stop
		}
		return query.Descend
	})
	assert.Equal(t, 2, count)
}

func TestFindMatchesByRuleName(t *testing.T) {
	src := `{"a":1,"b":[2,3]}`
	toks := lexer.Tokenize(rule.LangJSON, []byte(src))
	tree := parser.Parse(rule.LangJSON, toks, []byte(src), parser.Options{}, nil)

	sel := query.Compile("json.number")
	matches := query.Find(tree, sel)
	require.Len(t, matches, 3)
	for _, m := range matches {
		info, ok := rule.Lookup(tree.Node(m).Rule)
		require.True(t, ok)
		assert.Equal(t, "json.number", info.Name)
	}
}

func TestFindWithChildCombinator(t *testing.T) {
	src := `{"a":1,"b":[2,3]}`
	toks := lexer.Tokenize(rule.LangJSON, []byte(src))
	tree := parser.Parse(rule.LangJSON, toks, []byte(src), parser.Options{}, nil)

	sel := query.Compile("json.array/json.number")
	matches := query.Find(tree, sel)
	assert.Len(t, matches, 2)

	sel2 := query.Compile("json.object/json.number")
	assert.Empty(t, query.Find(tree, sel2))
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := query.NewCache(2)
	c.Put(1, "q1", nil)
	c.Put(1, "q2", nil)
	c.Put(1, "q3", nil) // evicts q1

	_, ok := c.Get(1, "q1")
	assert.False(t, ok)
	_, ok = c.Get(1, "q2")
	assert.True(t, ok)
	_, ok = c.Get(1, "q3")
	assert.True(t, ok)
}

func TestCacheInvalidateOlderThan(t *testing.T) {
	c := query.NewCache(10)
	c.Put(1, "q", nil)
	c.Put(2, "q", nil)
	c.InvalidateOlderThan(2)

	_, ok := c.Get(1, "q")
	assert.False(t, ok)
	_, ok = c.Get(2, "q")
	assert.True(t, ok)
}
