package token

// Stream is a complete, ordered token sequence produced by a full
// tokenization (as opposed to the incremental chunk-by-chunk output of
// TokenizeChunk). It always ends with exactly one EOF token (spec
// testable property 10).
type Stream struct {
	Tokens []Token
}

// Cursor is a read-only, rewindable position within a Stream. Parsers
// (C7) consume a Stream exclusively through a Cursor.
type Cursor struct {
	stream *Stream
	pos    int
}

// NewCursor returns a Cursor positioned at the start of s.
func NewCursor(s *Stream) *Cursor {
	return &Cursor{stream: s}
}

// Peek returns the token at the cursor without advancing, skipping
// skippable tokens (space/comment/unrecognized) unless includeSkippable.
func (c *Cursor) Peek(includeSkippable bool) Token {
	i := c.pos
	for i < len(c.stream.Tokens) {
		t := c.stream.Tokens[i]
		if includeSkippable || !t.Kind.IsSkippable() {
			return t
		}
		i++
	}
	return c.stream.Tokens[len(c.stream.Tokens)-1] // EOF
}

// Next returns the current significant token and advances past it.
func (c *Cursor) Next() Token {
	for c.pos < len(c.stream.Tokens) {
		t := c.stream.Tokens[c.pos]
		c.pos++
		if !t.Kind.IsSkippable() {
			return t
		}
	}
	return c.stream.Tokens[len(c.stream.Tokens)-1]
}

// Mark returns an opaque position that can later be restored with Reset,
// used by recursive-descent parsers to backtrack on a failed production.
func (c *Cursor) Mark() int { return c.pos }

// Reset restores the cursor to a position previously returned by Mark.
func (c *Cursor) Reset(mark int) { c.pos = mark }

// AtEOF reports whether the next significant token is EOF.
func (c *Cursor) AtEOF() bool {
	return c.Peek(false).Kind == EOF
}

// SkipTo advances the cursor past tokens until it reaches one whose Kind
// is in kinds (or EOF), used by error recovery to resync to a follow set
// (spec §4.5).
func (c *Cursor) SkipTo(kinds ...Kind) {
	for {
		t := c.Peek(false)
		if t.Kind == EOF {
			return
		}
		for _, k := range kinds {
			if t.Kind == k {
				return
			}
		}
		c.Next()
	}
}
