// Package interval provides the fact store's by-span index: a B-tree
// keyed on byte offsets that answers "which fact's span contains byte N"
// in O(log n) instead of a linear scan of the fact log (spec §4.3/§4.5).
//
// Unlike a generic interval map over an arbitrary ordered key type, Index
// is specialized to this engine's own [span.Span]: every interval it
// stores is a half-open byte range into a source buffer, and every
// lookup is a byte offset into that same buffer, so there is no reason
// to carry a type parameter for the key the way a general-purpose
// interval-map package would.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"

	"github.com/zztool/zz/span"
)

// Index maps disjoint [span.Span] ranges to values of type V, keyed
// internally on each span's last covered byte offset in a B-tree — an
// inclusive end, rather than span.Span's own half-open End, so two
// half-open spans that merely touch (A.End == B.Start) never compare as
// overlapping.
//
// A zero Index is empty and ready to use.
type Index[V any] struct {
	tree btree.Map[uint32, *entry[V]]
}

// Entry is a single (span, value) pair returned by [Index.Get] and
// [Index.Insert].
type Entry[V any] struct {
	Span  span.Span
	Value *V
}

// lastByte returns the inclusive last offset s covers, treating a
// zero-width s as covering the single offset at its Start — a zero-width
// span still marks a position in the source, so it is indexed as a
// one-byte interval rather than rejected.
func lastByte(s span.Span) uint32 {
	if s.Empty() {
		return s.Start
	}
	return s.End - 1
}

func entrySpan[V any](start uint32, last uint32, value *V) Entry[V] {
	return Entry[V]{Span: span.New(start, last+1), Value: value}
}

// Get looks up the span that contains offset, if one exists.
//
// If no such span exists, the returned Entry's Value is nil.
func (m *Index[V]) Get(offset uint32) Entry[V] {
	it := m.tree.Iter()
	found := it.Seek(offset)

	if !found || offset < it.Value().start {
		// The candidate's last byte is >= offset, but offset sits before
		// its start, so no stored span actually contains it.
		return Entry[V]{}
	}

	return entrySpan(it.Value().start, it.Key(), &it.Value().value)
}

// Entries returns an iterator over every span stored in the index, in
// ascending order of span end.
func (m *Index[V]) Entries() iter.Seq[Entry[V]] {
	return func(yield func(Entry[V]) bool) {
		it := m.tree.Iter()
		more := it.First()
		for more {
			if !yield(entrySpan(it.Value().start, it.Key(), &it.Value().value)) {
				return
			}
			more = it.Next()
		}
	}
}

// Insert records value under s.
//
// If s overlaps a span already present in the index, Insert does not
// insert anything and instead returns the overlapping entry with the
// least start (so the caller — the fact store's index builder — can
// merge into it rather than split the tree).
func (m *Index[V]) Insert(s span.Span, value V) (overlap Entry[V]) {
	start, end := s.Start, lastByte(s)

	// Five cases, letting (a, b) = (start, end), both inclusive:
	//  1. [a, b] overlaps no stored span.
	//  2. [a, b] is a subset of a stored span.
	//  3. [a, b] intersects the greatest stored span before it.
	//  4. [a, b] intersects the least stored span after it.
	//  5. [a, b] contains a stored span.

	it := m.tree.Iter()
	if !it.Seek(start) {
		// The tree is empty, or every stored span ends before start:
		// degenerate case (1).
		m.tree.Set(end, &entry[V]{start: start, value: value})
		return Entry[V]{}
	}

	switch {
	case end < it.Value().start:
		// Case (1): the least span with end >= start starts after end.
		m.tree.Set(end, &entry[V]{start: start, value: value})
		return Entry[V]{}

	case end <= it.Key():
		// Case (2): [start, end] sits entirely inside this stored span.
		return entrySpan(it.Value().start, it.Key(), &it.Value().value)
	}

	// Case (3)/(5): is there a stored span ending at or before end whose
	// start is <= start?
	it.Seek(end)
	notFirst := it.Prev()
	if notFirst && start <= it.Key() {
		return entrySpan(it.Value().start, it.Key(), &it.Value().value)
	}

	// Case (4), by elimination.
	if notFirst {
		it.Next()
	}
	return entrySpan(it.Value().start, it.Key(), &it.Value().value)
}

// Format implements [fmt.Formatter].
func (m *Index[V]) Format(s fmt.State, v rune) {
	fmt.Fprint(s, "{")
	first := true
	m.tree.Scan(func(end uint32, e *entry[V]) bool {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false

		if e.start == end {
			fmt.Fprintf(s, "%d: ", e.start)
		} else {
			fmt.Fprintf(s, "[%d, %d]: ", e.start, end)
		}
		fmt.Fprintf(s, fmt.FormatString(s, v), e.value)

		return true
	})
	fmt.Fprint(s, "}")
}

type entry[V any] struct {
	start uint32
	value V
}
