package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/parser"
	"github.com/zztool/zz/rule"
)

func TestHTMLParsesElementTreeWithVoidElement(t *testing.T) {
	src := `<div class="a"><br><p>hi</p></div>`
	toks := lexer.Tokenize(rule.LangHTML, []byte(src))
	tree := parser.Parse(rule.LangHTML, toks, []byte(src), parser.Options{}, nil)

	doc := tree.Node(tree.Root())
	require.Len(t, doc.Children, 1)
	div := tree.Node(doc.Children[0])
	assert.Equal(t, rule.HTMLElement, div.Rule)

	require.GreaterOrEqual(t, len(div.Children), 3)
	attr := tree.Node(div.Children[0])
	assert.Equal(t, rule.HTMLAttribute, attr.Rule)

	var sawVoid, sawP bool
	for _, c := range div.Children {
		n := tree.Node(c)
		if n.Rule == rule.HTMLVoidElement {
			sawVoid = true
		}
		if n.Rule == rule.HTMLElement {
			sawP = true
		}
	}
	assert.True(t, sawVoid)
	assert.True(t, sawP)
}

func TestHTMLScriptBodyIsOpaque(t *testing.T) {
	src := `<script>if (a < b) { x(); }</script>`
	toks := lexer.Tokenize(rule.LangHTML, []byte(src))
	tree := parser.Parse(rule.LangHTML, toks, []byte(src), parser.Options{}, nil)

	doc := tree.Node(tree.Root())
	script := tree.Node(doc.Children[0])
	require.Len(t, script.Children, 1)
	assert.Equal(t, rule.HTMLOpaqueBody, tree.Node(script.Children[0]).Rule)
}
