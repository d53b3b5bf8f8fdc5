package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/parser"
	"github.com/zztool/zz/rule"
)

func TestZigDeclarationsAndImport(t *testing.T) {
	src := `const std = @import("std");
pub fn add(a: i32, b: i32) i32 { return a + b; }
test "add works" { try std.testing.expect(add(1, 2) == 3); }`
	toks := lexer.Tokenize(rule.LangZig, []byte(src))
	tree := parser.Parse(rule.LangZig, toks, []byte(src), parser.Options{}, nil)

	doc := tree.Node(tree.Root())
	require.Len(t, doc.Children, 3)
	assert.Equal(t, rule.ZigConstDecl, tree.Node(doc.Children[0]).Rule)

	fn := tree.Node(doc.Children[1])
	assert.Equal(t, rule.ZigFunctionDecl, fn.Rule)
	require.Len(t, fn.Children, 1)
	assert.Equal(t, rule.ZigBody, tree.Node(fn.Children[0]).Rule)

	test := tree.Node(doc.Children[2])
	assert.Equal(t, rule.ZigTestDecl, test.Rule)
}
