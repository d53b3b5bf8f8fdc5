// Package scanner implements the structural scanner (C4): a single O(n)
// pass over a token stream that records one is_boundary fact per
// bracket-delimited region and has_parent facts linking nested regions to
// their enclosing one. This lets the incremental coordinator (C13) find
// "the smallest region enclosing an edit" without re-walking the whole
// token stream; the parser (C7) does not read these facts.
package scanner

import (
	"github.com/zztool/zz/fact"
	"github.com/zztool/zz/span"
	"github.com/zztool/zz/token"
)

type openFrame struct {
	open  byte
	start uint32
}

// childBoundary remembers both a nested boundary's own span and its fact
// ID, so the enclosing boundary can emit a has_parent fact keyed off the
// child's span once the child is known to have a parent.
type childBoundary struct {
	id   fact.ID
	span span.Span
}

// Scan walks toks against src, appending is_boundary and has_parent facts
// to store, and returns the IDs of every has_error fact produced along the
// way (unmatched or mismatched brackets). src must be the same source
// bytes the tokens were produced from.
func Scan(src []byte, toks []token.Token, store *fact.Store) (errors []fact.ID) {
	var stack []openFrame
	// children[i] collects the boundaries opened while stack[i] was the
	// innermost frame, so closing it can link each of them as a child of
	// the newly closed boundary via a has_parent fact.
	var children [][]childBoundary

	for _, tk := range toks {
		if tk.Kind != token.Punct || tk.Span.Len() != 1 {
			continue
		}
		b := tk.Span.Text(src)[0]

		switch {
		case isOpen(b):
			stack = append(stack, openFrame{open: b, start: tk.Span.Start})
			children = append(children, nil)

		case isClose(b):
			if len(stack) == 0 {
				errors = append(errors, store.Append(fact.Fact{
					Subject:    span.Pack(span.New(tk.Span.Start, tk.Span.End)),
					Predicate:  fact.HasError,
					Confidence: fact.Certain,
				}))
				continue
			}

			top := len(stack) - 1
			frame := stack[top]
			if !matches(frame.open, b) {
				// Heal by closing the nearest open frame regardless of
				// which bracket kind it was (spec §4.2's healing
				// policy), but flag the mismatch.
				errors = append(errors, store.Append(fact.Fact{
					Subject:    span.Pack(span.New(frame.start, tk.Span.End)),
					Predicate:  fact.HasError,
					Confidence: fact.Uncertain,
				}))
			}

			boundarySpan := span.New(frame.start, tk.Span.End)
			boundaryID := store.Append(fact.Fact{
				Subject:    span.Pack(boundarySpan),
				Predicate:  fact.IsBoundary,
				Confidence: fact.Certain,
			})

			for _, child := range children[top] {
				store.Append(fact.Fact{
					Subject:    span.Pack(child.span),
					Predicate:  fact.HasParent,
					Object:     fact.FactRefValue(boundaryID),
					Confidence: fact.Certain,
				})
			}

			stack = stack[:top]
			children = children[:top]
			if top > 0 {
				children[top-1] = append(children[top-1], childBoundary{id: boundaryID, span: boundarySpan})
			}
		}
	}

	// Anything left open at EOF never closed: record it.
	for _, frame := range stack {
		errors = append(errors, store.Append(fact.Fact{
			Subject:    span.Pack(span.New(frame.start, uint32(len(src)))),
			Predicate:  fact.HasError,
			Confidence: fact.Certain,
		}))
	}

	return errors
}

func isOpen(b byte) bool  { return b == '{' || b == '[' || b == '(' }
func isClose(b byte) bool { return b == '}' || b == ']' || b == ')' }

func matches(open, close byte) bool {
	switch open {
	case '{':
		return close == '}'
	case '[':
		return close == ']'
	case '(':
		return close == ')'
	}
	return false
}
