package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/parser"
	"github.com/zztool/zz/rule"
)

func TestCSSParsesRuleSetAndDeclarations(t *testing.T) {
	src := `.card { color: red; padding: 1px 2px; }`
	toks := lexer.Tokenize(rule.LangCSS, []byte(src))
	tree := parser.Parse(rule.LangCSS, toks, []byte(src), parser.Options{}, nil)

	doc := tree.Node(tree.Root())
	require.Len(t, doc.Children, 1)
	rs := tree.Node(doc.Children[0])
	assert.Equal(t, rule.CSSRuleSet, rs.Rule)
	require.Len(t, rs.Children, 2)

	block := tree.Node(rs.Children[1])
	assert.Equal(t, rule.CSSDeclarationBlock, block.Rule)
	require.Len(t, block.Children, 2)

	decl := tree.Node(block.Children[0])
	assert.Equal(t, rule.CSSDeclaration, decl.Rule)
}

func TestCSSNestedMediaAtRule(t *testing.T) {
	src := `@media (max-width: 600px) { .card { color: blue; } }`
	toks := lexer.Tokenize(rule.LangCSS, []byte(src))
	tree := parser.Parse(rule.LangCSS, toks, []byte(src), parser.Options{}, nil)

	doc := tree.Node(tree.Root())
	require.Len(t, doc.Children, 1)
	atRule := tree.Node(doc.Children[0])
	assert.Equal(t, rule.CSSAtRule, atRule.Rule)
	require.Len(t, atRule.Children, 1)

	body := tree.Node(atRule.Children[0])
	assert.Equal(t, rule.CSSDeclarationBlock, body.Rule)
	require.Len(t, body.Children, 1)
	assert.Equal(t, rule.CSSRuleSet, tree.Node(body.Children[0]).Rule)
}
