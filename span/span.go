// Package span defines the byte-range primitives (C1 in the design) shared
// by every layer of the engine: the lexer, the structural scanner, the fact
// store, and the AST.
package span

import "fmt"

// Span is a half-open byte range [Start, End) into a source buffer.
//
// A Span never outlives the buffer it indexes into; callers are responsible
// for keeping the backing bytes alive for as long as any Span referencing it
// is in use.
type Span struct {
	Start, End uint32
}

// New constructs a Span, panicking if the invariant 0 <= start <= end does
// not hold.
func New(start, end uint32) Span {
	if start > end {
		panic(fmt.Sprintf("span: invalid range [%d, %d)", start, end))
	}
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered by s.
func (s Span) Len() uint32 { return s.End - s.Start }

// Empty reports whether s covers zero bytes.
func (s Span) Empty() bool { return s.Start == s.End }

// Text slices src by this span.
func (s Span) Text(src []byte) []byte { return src[s.Start:s.End] }

// Contains reports whether s fully encloses other.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Overlaps reports whether s and other share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Join returns the smallest span containing both s and other. A zero Span
// (the empty span at offset 0) is treated as absent on either side.
func Join(s, other Span) Span {
	if s == (Span{}) {
		return other
	}
	if other == (Span{}) {
		return s
	}
	return Span{Start: min(s.Start, other.Start), End: max(s.End, other.End)}
}

// Packed is the 64-bit storage form of a Span: the high 32 bits are Start,
// the low 32 bits are End. Fact subjects store spans in this form; AST
// nodes keep an unpacked Span.
type Packed uint64

// Pack compresses s into its 64-bit storage form.
func Pack(s Span) Packed {
	return Packed(uint64(s.Start)<<32 | uint64(s.End))
}

// Unpack expands a Packed value back into a Span.
func (p Packed) Unpack() Span {
	return Span{Start: uint32(p >> 32), End: uint32(p)}
}

// Shift translates a packed span by delta bytes.
func (p Packed) Shift(delta int64) Packed {
	s := p.Unpack()
	return Pack(Span{
		Start: uint32(int64(s.Start) + delta),
		End:   uint32(int64(s.End) + delta),
	})
}
