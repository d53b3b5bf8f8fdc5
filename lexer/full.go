package lexer

import (
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/span"
	"github.com/zztool/zz/token"
)

// Tokenize performs a complete, non-streaming tokenization of src and
// appends the EOF sentinel every full tokenization must end with (spec
// testable property 10). It is a thin wrapper over TokenizeChunk for
// callers (the parser, tests) that have the whole file in memory and don't
// need chunked/resumable lexing.
func Tokenize(lang rule.Language, src []byte) *token.Stream {
	state := token.Reset(lang)
	toks, _, _ := TokenizeChunk(state, src, 0)

	scanned := uint32(0)
	if n := len(toks); n > 0 {
		scanned = toks[n-1].Span.End
	}
	if scanned < uint32(len(src)) {
		// Unterminated construct (e.g. an unclosed string) at true EOF:
		// the lexer never halts (spec §4.1), so emit what we scanned as
		// an invalid tail token instead of silently dropping it.
		toks = append(toks, token.Token{
			Kind: token.Unrecognized,
			Lang: lang,
			Span: span.New(scanned, uint32(len(src))),
		})
	}

	toks = append(toks, token.Token{
		Kind: token.EOF,
		Lang: lang,
		Span: span.New(uint32(len(src)), uint32(len(src))),
	})

	return &token.Stream{Tokens: toks}
}
