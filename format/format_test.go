package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/format"
	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/parser"
	"github.com/zztool/zz/rule"
)

func mustFormat(t *testing.T, lang rule.Language, src string, opts format.Options) string {
	t.Helper()
	toks := lexer.Tokenize(lang, []byte(src))
	tree := parser.Parse(lang, toks, []byte(src), parser.Options{}, nil)
	require.False(t, tree.Root().Nil())
	return string(format.Format(tree, opts))
}

func TestFormatJSONObjectAlwaysBreaks(t *testing.T) {
	got := mustFormat(t, rule.LangJSON, `{"a":1,"b":2}`, format.DefaultOptions())
	want := "{\n  \"a\": 1,\n  \"b\": 2\n}\n"
	assert.Equal(t, want, got)
}

func TestFormatJSONArrayStaysFlatWhenItFits(t *testing.T) {
	got := mustFormat(t, rule.LangJSON, `[1,2,3]`, format.DefaultOptions())
	assert.Equal(t, "[1, 2, 3]\n", got)
}

func TestFormatJSONArrayBreaksWhenTooWide(t *testing.T) {
	opts := format.DefaultOptions()
	opts.Width = 10
	got := mustFormat(t, rule.LangJSON, `[100,200,300,400]`, opts)
	want := "[\n  100,\n  200,\n  300,\n  400\n]\n"
	assert.Equal(t, want, got)
}

func TestFormatCSSRuleSet(t *testing.T) {
	got := mustFormat(t, rule.LangCSS, `a{color:red;padding:1rem}`, format.DefaultOptions())
	want := "a {\n  color: red;\n  padding: 1rem;\n}\n"
	assert.Equal(t, want, got)
}

func TestFormatIsIdempotent(t *testing.T) {
	inputs := []struct {
		lang rule.Language
		src  string
	}{
		{rule.LangJSON, `{"a":[1,2,{"b":3}],"c":"x"}`},
		{rule.LangCSS, `a{color:red}b{margin:0;padding:0}`},
		{rule.LangZON, `.{ .name = "x", .values = .{1, 2, 3} }`},
	}
	for _, in := range inputs {
		toks := lexer.Tokenize(in.lang, []byte(in.src))
		tree := parser.Parse(in.lang, toks, []byte(in.src), parser.Options{}, nil)
		once := format.Format(tree, format.DefaultOptions())

		toks2 := lexer.Tokenize(in.lang, once)
		tree2 := parser.Parse(in.lang, toks2, once, parser.Options{}, nil)
		twice := format.Format(tree2, format.DefaultOptions())

		assert.Equal(t, string(once), string(twice), "not idempotent for %q", in.src)
	}
}

func TestFormatZONFieldUsesEquals(t *testing.T) {
	got := mustFormat(t, rule.LangZON, `.{ .a = 1, .b = 2 }`, format.DefaultOptions())
	assert.Contains(t, got, ".a = 1,")
	assert.Contains(t, got, ".b = 2")
}
