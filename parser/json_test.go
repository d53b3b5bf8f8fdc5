package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/parser"
	"github.com/zztool/zz/rule"
)

func TestJSONParsesNestedObjectAndArray(t *testing.T) {
	src := `{"a":1,"b":[2,3],"c":true,"d":null}`
	toks := lexer.Tokenize(rule.LangJSON, []byte(src))
	tree := parser.Parse(rule.LangJSON, toks, []byte(src), parser.Options{}, nil)

	require.False(t, tree.Root().Nil())
	doc := tree.Node(tree.Root())
	assert.Equal(t, rule.JSONDocument, doc.Rule)
	require.Len(t, doc.Children, 1)

	obj := tree.Node(doc.Children[0])
	assert.Equal(t, rule.JSONObject, obj.Rule)
	assert.Len(t, obj.Children, 4)
	assert.Empty(t, tree.Diagnostics)
}

func TestJSON5UnquotedKeys(t *testing.T) {
	src := `{a: 1, b: 2,}`
	toks := lexer.Tokenize(rule.LangJSON, []byte(src))
	tree := parser.Parse(rule.LangJSON, toks, []byte(src), parser.Options{JSON5: true}, nil)
	assert.Empty(t, tree.Diagnostics)
}

func TestJSONRecoversFromMissingComma(t *testing.T) {
	src := `{"a":1 "b":2}`
	toks := lexer.Tokenize(rule.LangJSON, []byte(src))
	tree := parser.Parse(rule.LangJSON, toks, []byte(src), parser.Options{}, nil)
	assert.NotEmpty(t, tree.Diagnostics)
}
