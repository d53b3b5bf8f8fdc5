package token

import "github.com/zztool/zz/rule"

// Mode names the lexer's position within a language-specific state
// machine subset of {top, in_string, in_raw_string, in_line_comment,
// in_block_comment, in_char_literal, in_number}, per spec §4.1.
type Mode uint8

const (
	ModeTop Mode = iota
	ModeInString
	ModeInRawString
	ModeInLineComment
	ModeInBlockComment
	ModeInCharLiteral
	ModeInNumber
)

// State is the opaque, resumable state threaded between calls to
// TokenizeChunk. Callers must thread State between contiguous chunk calls
// in order; a non-contiguous call requires Reset first (spec §4.1).
type State struct {
	Lang  rule.Language
	Mode  Mode
	Quote byte // active quote character, when Mode is a string/char mode
	Depth uint32
	Escape bool // previous byte in a string was an unconsumed '\'
	NumSub SubKind
}

// Reset returns the initial state for lang.
func Reset(lang rule.Language) State {
	return State{Lang: lang, Mode: ModeTop}
}

// AtTop reports whether the lexer is not inside any multi-chunk construct,
// i.e. it would be safe to reparse starting at the next byte without
// context from the previous chunk.
func (s State) AtTop() bool {
	return s.Mode == ModeTop && s.Depth == 0
}
