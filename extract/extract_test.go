package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/extract"
	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/parser"
	"github.com/zztool/zz/rule"
)

func parse(t *testing.T, lang rule.Language, src string) *extractTree {
	t.Helper()
	toks := lexer.Tokenize(lang, []byte(src))
	tree := parser.Parse(lang, toks, []byte(src), parser.Options{}, nil)
	return &extractTree{tree}
}

type extractTree struct {
	*parserResult
}

type parserResult = ast.AST

func TestExtractFullReturnsSourceUnchanged(t *testing.T) {
	src := `{"a":1}`
	toks := lexer.Tokenize(rule.LangJSON, []byte(src))
	tree := parser.Parse(rule.LangJSON, toks, []byte(src), parser.Options{}, nil)

	got := extract.Extract(tree, extract.Flags{Full: true})
	assert.Equal(t, src, string(got))

	got = extract.Extract(tree, extract.Flags{})
	assert.Equal(t, src, string(got))
}

func TestExtractTypeScriptSignaturesAndImports(t *testing.T) {
	src := `import x from "./y";
export function f(a:number):void {
  return;
}`
	toks := lexer.Tokenize(rule.LangTypeScript, []byte(src))
	tree := parser.Parse(rule.LangTypeScript, toks, []byte(src), parser.Options{}, nil)

	got := string(extract.Extract(tree, extract.Flags{Imports: true, Signatures: true}))
	require.Contains(t, got, `import x from "./y";`)
	require.Contains(t, got, "export function f(a:number):void")
	assert.NotContains(t, got, "return;")
}

func TestExtractZONStructureExcludesImports(t *testing.T) {
	src := `.{ .name="x", .version="1.0", .dependencies=.{} }`
	toks := lexer.Tokenize(rule.LangZON, []byte(src))
	tree := parser.Parse(rule.LangZON, toks, []byte(src), parser.Options{}, nil)

	got := string(extract.Extract(tree, extract.Flags{Structure: true}))
	assert.Contains(t, got, ".name=\"x\"")
	assert.Contains(t, got, ".dependencies=.{}")
}
