package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/lint"
	"github.com/zztool/zz/parser"
	"github.com/zztool/zz/rule"
)

func TestDuplicateObjectKey(t *testing.T) {
	src := `{"a":1,"a":2}`
	toks := lexer.Tokenize(rule.LangJSON, []byte(src))
	tree := parser.Parse(rule.LangJSON, toks, []byte(src), parser.Options{}, nil)
	diags := lint.Lint(tree, lint.Options{})

	var found bool
	for _, d := range diags {
		if d.Name == "duplicate-object-key" {
			found = true
		}
	}
	assert.True(t, found, "expected a duplicate-object-key diagnostic, got %+v", diags)
}

func TestMissingFieldValue(t *testing.T) {
	src := `{"a":}`
	toks := lexer.Tokenize(rule.LangJSON, []byte(src))
	tree := parser.Parse(rule.LangJSON, toks, []byte(src), parser.Options{}, nil)
	diags := lint.Lint(tree, lint.Options{})

	var found bool
	for _, d := range diags {
		if d.Name == "missing-field-value" {
			found = true
		}
	}
	assert.True(t, found, "expected a missing-field-value diagnostic, got %+v", diags)
}

func TestInvalidAtRule(t *testing.T) {
	src := `@bogus { a { color: red; } }`
	toks := lexer.Tokenize(rule.LangCSS, []byte(src))
	tree := parser.Parse(rule.LangCSS, toks, []byte(src), parser.Options{}, nil)
	diags := lint.Lint(tree, lint.Options{})

	var found bool
	for _, d := range diags {
		if d.Name == "invalid-at-rule" {
			found = true
		}
	}
	assert.True(t, found, "expected an invalid-at-rule diagnostic, got %+v", diags)
}

func TestUnknownTag(t *testing.T) {
	src := `<bogus-widget></bogus-widget><wobble></wobble>`
	toks := lexer.Tokenize(rule.LangHTML, []byte(src))
	tree := parser.Parse(rule.LangHTML, toks, []byte(src), parser.Options{}, nil)
	diags := lint.Lint(tree, lint.Options{})

	var names []string
	for _, d := range diags {
		if d.Name == "unknown-tag" {
			names = append(names, d.Message)
		}
	}
	// <bogus-widget> is a custom element (hyphenated) and must not be
	// flagged; <wobble> is not a real tag and must be.
	require.Len(t, names, 1)
	assert.Contains(t, names[0], "wobble")
}

func TestLintIsPure(t *testing.T) {
	src := `{"a":1,"a":2,"b":}`
	toks := lexer.Tokenize(rule.LangJSON, []byte(src))
	tree := parser.Parse(rule.LangJSON, toks, []byte(src), parser.Options{}, nil)

	first := lint.Lint(tree, lint.Options{})
	second := lint.Lint(tree, lint.Options{})

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i], second[i])
	}
}
