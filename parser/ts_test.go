package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/parser"
	"github.com/zztool/zz/rule"
)

func TestTSDeclarationsLevelParse(t *testing.T) {
	src := `import { foo } from "bar";
export function run(x: number): number { return x + 1; }
class Widget { render() {} }
export default Widget;`
	toks := lexer.Tokenize(rule.LangTypeScript, []byte(src))
	tree := parser.Parse(rule.LangTypeScript, toks, []byte(src), parser.Options{}, nil)

	doc := tree.Node(tree.Root())
	require.GreaterOrEqual(t, len(doc.Children), 4)
	assert.Equal(t, rule.TSImport, tree.Node(doc.Children[0]).Rule)

	exportedFn := tree.Node(doc.Children[1])
	assert.Equal(t, rule.TSExport, exportedFn.Rule)
	require.Len(t, exportedFn.Children, 1)
	fn := tree.Node(exportedFn.Children[0])
	assert.Equal(t, rule.TSFunctionDecl, fn.Rule)
	require.Len(t, fn.Children, 1)
	assert.Equal(t, rule.TSBody, tree.Node(fn.Children[0]).Rule)

	class := tree.Node(doc.Children[2])
	assert.Equal(t, rule.TSClassDecl, class.Rule)
}
