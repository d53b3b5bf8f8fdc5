package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/parser"
	"github.com/zztool/zz/rule"
)

func TestZONParsesStructWithFieldsAndEnumLiteral(t *testing.T) {
	src := `.{ .name = "zz", .mode = .release, .count = 3 }`
	toks := lexer.Tokenize(rule.LangZON, []byte(src))
	tree := parser.Parse(rule.LangZON, toks, []byte(src), parser.Options{}, nil)

	require.False(t, tree.Root().Nil())
	doc := tree.Node(tree.Root())
	assert.Equal(t, rule.ZONDocument, doc.Rule)

	st := tree.Node(doc.Children[0])
	assert.Equal(t, rule.ZONStruct, st.Rule)
	require.Len(t, st.Children, 3)

	nameField := tree.Node(st.Children[0])
	assert.Equal(t, rule.ZONField, nameField.Rule)

	modeField := tree.Node(st.Children[1])
	require.Len(t, modeField.Children, 2)
	modeVal := tree.Node(modeField.Children[1])
	assert.Equal(t, rule.ZONEnumLiteral, modeVal.Rule)

	assert.Empty(t, tree.Diagnostics)
}

func TestZONBuiltinCall(t *testing.T) {
	src := `.{ .dep = @import("std") }`
	toks := lexer.Tokenize(rule.LangZON, []byte(src))
	tree := parser.Parse(rule.LangZON, toks, []byte(src), parser.Options{}, nil)
	assert.Empty(t, tree.Diagnostics)
}
