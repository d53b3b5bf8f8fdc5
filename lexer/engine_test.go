package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/token"
)

func tokenizeAll(t *testing.T, lang rule.Language, src string) []token.Token {
	t.Helper()
	state := token.Reset(lang)
	toks, next, consumed := lexer.TokenizeChunk(state, []byte(src), 0)
	require.Equal(t, uint32(len(src)), consumed, "whole chunk should be consumed for a complete, well-formed input")
	require.True(t, next.AtTop(), "lexer should return to top state at EOF")
	return toks
}

func TestJSONLexRoundTrip(t *testing.T) {
	src := `{"a":1,"b":[2,3]}`
	toks := tokenizeAll(t, rule.LangJSON, src)

	var rebuilt []byte
	for _, tk := range toks {
		rebuilt = append(rebuilt, tk.Text([]byte(src))...)
	}
	assert.Equal(t, src, string(rebuilt))
}

func TestJSONLexKinds(t *testing.T) {
	toks := tokenizeAll(t, rule.LangJSON, `{"a":1}`)
	require.NotEmpty(t, toks)

	var kinds []token.Kind
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	assert.Contains(t, kinds, token.Punct)
	assert.Contains(t, kinds, token.String)
	assert.Contains(t, kinds, token.Number)
}

func TestZONNumberSubtypes(t *testing.T) {
	toks := tokenizeAll(t, rule.LangZON, `.{ .a = 0x1F, .b = 0b101, .c = 1_000.5 }`)

	var numbers []token.Token
	for _, tk := range toks {
		if tk.Kind == token.Number {
			numbers = append(numbers, tk)
		}
	}
	require.Len(t, numbers, 3)
	assert.Equal(t, token.SubNumberHex, numbers[0].Sub)
	assert.Equal(t, token.SubNumberBinary, numbers[1].Sub)
	assert.Equal(t, token.SubNumberFloat, numbers[2].Sub)
}

func TestResumableStateAcrossChunks(t *testing.T) {
	full := `"hello world"`
	state := token.Reset(rule.LangJSON)

	first := []byte(full[:7]) // `"hello `
	toks1, state, consumed1 := lexer.TokenizeChunk(state, first, 0)
	assert.Empty(t, toks1, "a string split across chunks should not emit a partial token")
	assert.Equal(t, uint32(len(first)), consumed1, "bytes are scanned into lexer state even without an emitted token")
	assert.Equal(t, token.ModeInString, state.Mode)

	second := []byte(full[7:])
	toks2, state, consumed2 := lexer.TokenizeChunk(state, second, 7)
	require.Len(t, toks2, 1)
	assert.Equal(t, token.String, toks2[0].Kind)
	assert.Equal(t, uint32(len(second)), consumed2)
	assert.True(t, state.AtTop())
}

func TestBuiltinCallZig(t *testing.T) {
	toks := tokenizeAll(t, rule.LangZig, `@import("std")`)
	require.NotEmpty(t, toks)
	assert.Equal(t, token.Builtin, toks[0].Kind)
}

func TestUnknownLanguageProducesInvalidToken(t *testing.T) {
	toks := tokenizeAll(t, rule.LangNone, `whatever`)
	require.Len(t, toks, 1)
	assert.Equal(t, token.Unrecognized, toks[0].Kind)
}

func TestTokenizeAppendsEOFSentinel(t *testing.T) {
	stream := lexer.Tokenize(rule.LangJSON, []byte(`{}`))
	require.NotEmpty(t, stream.Tokens)

	last := stream.Tokens[len(stream.Tokens)-1]
	assert.True(t, last.IsEOF())
	assert.True(t, last.Span.Empty())

	eofCount := 0
	for _, tk := range stream.Tokens {
		if tk.IsEOF() {
			eofCount++
		}
	}
	assert.Equal(t, 1, eofCount, "exactly one EOF token per complete tokenization")
}
