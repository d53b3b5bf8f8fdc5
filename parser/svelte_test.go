package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/parser"
	"github.com/zztool/zz/rule"
)

func TestSvelteDecomposesScriptStyleTemplate(t *testing.T) {
	src := `<script>export let name = "world";</script>
<style>.greeting { color: red; }</style>
<h1>Hello {name}!</h1>`
	toks := lexer.Tokenize(rule.LangSvelte, []byte(src))
	tree := parser.Parse(rule.LangSvelte, toks, []byte(src), parser.Options{}, nil)

	doc := tree.Node(tree.Root())
	require.GreaterOrEqual(t, len(doc.Children), 3)

	script := tree.Node(doc.Children[0])
	assert.Equal(t, rule.SvelteScript, script.Rule)
	require.Len(t, script.Children, 1)
	assert.Equal(t, rule.TSExport, tree.Node(script.Children[0]).Rule)

	style := tree.Node(doc.Children[1])
	assert.Equal(t, rule.SvelteStyle, style.Rule)
	require.Len(t, style.Children, 1)
	assert.Equal(t, rule.CSSRuleSet, tree.Node(style.Children[0]).Rule)

	template := tree.Node(doc.Children[2])
	assert.Equal(t, rule.SvelteTemplate, template.Rule)
}
