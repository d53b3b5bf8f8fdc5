// Package lexer implements the streaming lexer (C2): a resumable,
// chunked, zero-copy tokenizer driven by a small per-language rule table
// (comment syntax, string quote characters, numeric literal grammar,
// punctuation set). It is the single engine behind every language's
// tokenizer; see token.go's package doc for why one engine replaces seven
// independent per-language state machines.
package lexer

import (
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/token"
)

// Rules is the per-language configuration table. Each language's file in
// this package builds one Rules value and registers it with register; For
// looks it up.
type Rules struct {
	Lang rule.Language

	// LineComment is the prefix that starts a line comment (e.g. "//"),
	// or "" if the language has none.
	LineComment string
	// BlockCommentOpen/Close delimit a block comment (e.g. "/*" "*/"),
	// or "" if the language has none.
	BlockCommentOpen, BlockCommentClose string
	// DocCommentPrefix, if non-empty, is checked after LineComment/
	// BlockCommentOpen to tag a comment as a doc comment (e.g. Zig's
	// "///" or JSDoc's "/**").
	DocCommentPrefix string

	// Quotes lists the byte values that introduce a string literal.
	Quotes []byte
	// AllowUnquotedKeys records that the language accepts a bare
	// identifier in key position (JSON5). The engine does not read it:
	// identifier text is tokenized as Ident either way, and the parser
	// decides whether a bare key is accepted.
	AllowUnquotedKeys bool

	// NumberUnderscoreSep allows '_' as a digit separator (ZON/Zig).
	NumberUnderscoreSep bool
	// NumberPrefixes enables 0x/0b/0o recognition (ZON/Zig).
	NumberPrefixes bool

	// Open/Close are matching bracket-pair bytes that participate in
	// depth tracking and structural boundary detection (C4).
	Open, Close []byte

	// BuiltinSigil, if non-zero, is a byte (commonly '@') that
	// introduces a Builtin token made of the sigil plus a following
	// identifier (ZON/Zig @import, @embedFile, ...).
	BuiltinSigil byte

	// IdentStart/IdentContinue classify bytes as legal identifier
	// characters.
	IdentStart, IdentContinue func(b byte) bool

	// Keywords is the set of identifier spellings that should be
	// reported as Kind Keyword instead of Kind Ident.
	Keywords map[string]bool
}

func isAlpha(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlnum(b byte) bool {
	return isAlpha(b) || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// registry is the compile-time table of language rules, populated by each
// language's init function in this package.
var registry = map[rule.Language]*Rules{}

func register(r *Rules) { registry[r.Lang] = r }

// For returns the Rules for lang.
func For(lang rule.Language) *Rules { return registry[lang] }
