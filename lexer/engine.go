package lexer

import (
	"github.com/zztool/zz/span"
	"github.com/zztool/zz/token"
)

// TokenizeChunk implements the C2 contract:
//
//	tokenize_chunk(state, chunk, base_offset) -> (tokens, new_state, consumed)
//
// chunk is tokenized starting at absolute offset baseOffset. If the chunk
// ends inside a string or block comment, no partial token is emitted for
// it; the bytes scanned so far are folded into the returned state, which
// carries the mode and quote needed to resume on the next contiguous
// chunk. consumed reports how many bytes of chunk were scanned, which is
// len(chunk) even when the chunk ends inside such a token.
func TokenizeChunk(state token.State, chunk []byte, baseOffset uint32) (tokens []token.Token, next token.State, consumed uint32) {
	rules := For(state.Lang)
	if rules == nil {
		// Unknown language: treat the whole chunk as one invalid token
		// rather than panicking; lexing never halts (spec §4.1).
		if len(chunk) == 0 {
			return nil, state, 0
		}
		return []token.Token{{
			Kind: token.Unrecognized,
			Lang: state.Lang,
			Span: span.New(baseOffset, baseOffset+uint32(len(chunk))),
		}}, state, uint32(len(chunk))
	}

	l := &lexState{rules: rules, state: state, buf: chunk, base: baseOffset}
	l.run()
	return l.out, l.state, l.pos
}

type lexState struct {
	rules *Rules
	state token.State
	buf   []byte
	base  uint32
	pos   uint32
	out   []token.Token
}

func (l *lexState) run() {
	for {
		switch l.state.Mode {
		case token.ModeInString, token.ModeInRawString, token.ModeInCharLiteral:
			if !l.resumeString() {
				return
			}
		case token.ModeInBlockComment:
			if !l.resumeBlockComment() {
				return
			}
		default:
			if !l.step() {
				return
			}
		}
	}
}

func (l *lexState) emit(k token.Kind, sub token.SubKind, start uint32) {
	l.out = append(l.out, token.Token{
		Kind:  k,
		Sub:   sub,
		Lang:  l.rules.Lang,
		Span:  span.New(l.base+start, l.base+l.pos),
		Depth: uint16(l.state.Depth),
	})
}

func (l *lexState) peek() (byte, bool) {
	if int(l.pos) >= len(l.buf) {
		return 0, false
	}
	return l.buf[l.pos], true
}

func (l *lexState) peekAt(off uint32) (byte, bool) {
	i := l.pos + off
	if int(i) >= len(l.buf) {
		return 0, false
	}
	return l.buf[i], true
}

func (l *lexState) hasPrefix(s string) bool {
	end := int(l.pos) + len(s)
	if end > len(l.buf) {
		return false
	}
	return string(l.buf[l.pos:end]) == s
}

// step consumes one top-level token starting at l.pos. Returns false when
// the chunk is exhausted, including when it ends inside a string or block
// comment (caller should stop, preserving l.state for resumption).
func (l *lexState) step() bool {
	start := l.pos
	b, ok := l.peek()
	if !ok {
		return false
	}

	switch {
	case isSpace(b):
		for {
			b, ok := l.peek()
			if !ok || !isSpace(b) {
				break
			}
			l.pos++
		}
		l.emit(token.Space, 0, start)
		return true

	case l.rules.LineComment != "" && l.hasPrefix(l.rules.LineComment):
		sub := token.SubCommentLine
		if l.rules.DocCommentPrefix != "" && l.hasPrefix(l.rules.DocCommentPrefix) {
			sub = token.SubCommentDoc
		}
		l.pos += uint32(len(l.rules.LineComment))
		for {
			b, ok := l.peek()
			if !ok || b == '\n' {
				break
			}
			l.pos++
		}
		l.emit(token.Comment, sub, start)
		return true

	case l.rules.BlockCommentOpen != "" && l.hasPrefix(l.rules.BlockCommentOpen):
		sub := token.SubCommentBlock
		if l.rules.DocCommentPrefix != "" && l.hasPrefix(l.rules.DocCommentPrefix) {
			sub = token.SubCommentContainer
		}
		l.pos += uint32(len(l.rules.BlockCommentOpen))
		l.state.Mode = token.ModeInBlockComment
		l.state.NumSub = sub
		if !l.resumeBlockComment() {
			return false
		}
		l.out[len(l.out)-1].Span.Start = l.base + start
		return true

	case isQuote(l.rules, b):
		l.pos++
		l.state.Mode = token.ModeInString
		l.state.Quote = b
		l.state.Escape = false
		if !l.resumeString() {
			return false
		}
		l.out[len(l.out)-1].Span.Start = l.base + start
		return true

	case l.rules.BuiltinSigil != 0 && b == l.rules.BuiltinSigil:
		l.pos++
		for {
			b, ok := l.peek()
			if !ok || !isAlnum(b) {
				break
			}
			l.pos++
		}
		l.emit(token.Builtin, 0, start)
		return true

	case isDigit(b) || (b == '-' && isLeadDigit(l, 1)):
		l.lexNumber(start)
		return true

	case l.rules.IdentStart != nil && l.rules.IdentStart(b):
		for {
			b, ok := l.peek()
			if !ok || !l.rules.IdentContinue(b) {
				break
			}
			l.pos++
		}
		text := string(l.buf[start:l.pos])
		if l.rules.Keywords[text] {
			l.emit(token.Keyword, 0, start)
		} else {
			l.emit(token.Ident, 0, start)
		}
		return true

	case isBracket(l.rules, b):
		l.pos++
		if isOpenBracket(l.rules, b) {
			l.state.Depth++
			l.emit(token.Punct, 0, start)
		} else {
			l.emit(token.Punct, 0, start)
			if l.state.Depth > 0 {
				l.state.Depth--
			}
		}
		return true

	default:
		l.pos++
		l.emit(token.Punct, 0, start)
		return true
	}
}

func isLeadDigit(l *lexState, off uint32) bool {
	b, ok := l.peekAt(off)
	return ok && isDigit(b)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isQuote(r *Rules, b byte) bool {
	for _, q := range r.Quotes {
		if q == b {
			return true
		}
	}
	return false
}

func isBracket(r *Rules, b byte) bool {
	return isOpenBracket(r, b) || isCloseBracket(r, b)
}

func isOpenBracket(r *Rules, b byte) bool {
	for _, o := range r.Open {
		if o == b {
			return true
		}
	}
	return false
}

func isCloseBracket(r *Rules, b byte) bool {
	for _, c := range r.Close {
		if c == b {
			return true
		}
	}
	return false
}
