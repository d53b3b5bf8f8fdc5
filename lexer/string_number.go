package lexer

import "github.com/zztool/zz/token"

// resumeString consumes bytes while in ModeInString/InRawString/
// InCharLiteral, honoring backslash-escapes only inside string/char
// contexts (spec §4.1: "the lexer treats \ as an escape introducer only
// inside string contexts"). Returns false if the chunk ran out before the
// closing quote, in which case l.state is left set to resume next call.
func (l *lexState) resumeString() bool {
	start := l.pos
	for {
		b, ok := l.peek()
		if !ok {
			// Chunk exhausted mid-string: emit nothing, keep state.
			return false
		}

		if l.state.Escape {
			l.state.Escape = false
			l.pos++
			continue
		}

		if b == '\\' {
			l.state.Escape = true
			l.pos++
			continue
		}

		if b == l.state.Quote {
			l.pos++
			sub := token.SubStringDouble
			if l.state.Quote == '\'' {
				sub = token.SubStringSingle
			}
			kind := token.String
			if l.state.Mode == token.ModeInCharLiteral {
				sub = token.SubStringSingle
			}
			l.emit(kind, sub, start)
			l.state.Mode = token.ModeTop
			l.state.Quote = 0
			return true
		}

		l.pos++
	}
}

// resumeBlockComment consumes bytes while in ModeInBlockComment.
func (l *lexState) resumeBlockComment() bool {
	start := l.pos
	closeSeq := l.rules.BlockCommentClose
	for {
		if l.hasPrefix(closeSeq) {
			l.pos += uint32(len(closeSeq))
			l.emit(token.Comment, l.state.NumSub, start)
			l.state.Mode = token.ModeTop
			l.state.NumSub = 0
			return true
		}
		_, ok := l.peek()
		if !ok {
			return false
		}
		l.pos++
	}
}

// lexNumber implements the numeric policy from spec §4.1 (informative of
// ZON style, reused for Zig and JSON5): optional leading '-', optional
// 0x/0b/0o prefix, '_' digit separators when enabled, then an optional
// '.' fraction and optional exponent.
func (l *lexState) lexNumber(start uint32) {
	sub := token.SubNumberDecimal

	if b, ok := l.peek(); ok && b == '-' {
		l.pos++
	}

	if l.rules.NumberPrefixes {
		if b, ok := l.peek(); ok && b == '0' {
			if next, ok2 := l.peekAt(1); ok2 {
				switch next {
				case 'x', 'X':
					sub = token.SubNumberHex
					l.pos += 2
					l.consumeDigitsHex()
					l.emit(token.Number, sub, start)
					return
				case 'b', 'B':
					sub = token.SubNumberBinary
					l.pos += 2
					l.consumeDigitsBinary()
					l.emit(token.Number, sub, start)
					return
				case 'o', 'O':
					sub = token.SubNumberOctal
					l.pos += 2
					l.consumeDigitsOctal()
					l.emit(token.Number, sub, start)
					return
				}
			}
		}
	}

	l.consumeDigitsDecimal()

	if b, ok := l.peek(); ok && b == '.' {
		if next, ok2 := l.peekAt(1); ok2 && isDigit(next) {
			sub = token.SubNumberFloat
			l.pos++
			l.consumeDigitsDecimal()
		}
	}

	if b, ok := l.peek(); ok && (b == 'e' || b == 'E') {
		save := l.pos
		l.pos++
		if b, ok := l.peek(); ok && (b == '+' || b == '-') {
			l.pos++
		}
		if b, ok := l.peek(); ok && isDigit(b) {
			sub = token.SubNumberFloat
			l.consumeDigitsDecimal()
		} else {
			l.pos = save
		}
	}

	l.emit(token.Number, sub, start)
}

func (l *lexState) consumeDigitsDecimal() { l.consumeDigits(isDigit) }
func (l *lexState) consumeDigitsHex() {
	l.consumeDigits(func(b byte) bool {
		return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	})
}
func (l *lexState) consumeDigitsBinary() {
	l.consumeDigits(func(b byte) bool { return b == '0' || b == '1' })
}
func (l *lexState) consumeDigitsOctal() {
	l.consumeDigits(func(b byte) bool { return b >= '0' && b <= '7' })
}

func (l *lexState) consumeDigits(isDigitFn func(byte) bool) {
	for {
		b, ok := l.peek()
		if !ok {
			return
		}
		if isDigitFn(b) {
			l.pos++
			continue
		}
		if l.rules.NumberUnderscoreSep && b == '_' {
			l.pos++
			continue
		}
		return
	}
}
