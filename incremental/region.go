package incremental

import (
	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/fact"
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/span"
)

// regionTarget identifies the AST node a scoped reparse will replace:
// its parent, its index within the parent's Children, and its own rule
// ID (used to check the reparsed region converges to the same shape).
type regionTarget struct {
	parent ast.Ptr
	index  int
	node   ast.Ptr
	rule   rule.ID
}

// enclosingRegion finds the smallest is_boundary fact (spec §4.2) in
// fs.store whose span fully contains editRange, and the AST node whose
// span matches it exactly. Boundary facts come from the structural
// scanner's bracket matching, which assigns each bracketed region the
// same [open, close] span a JSON/ZON/CSS-declaration-block container
// node gets from the parser — so an exact span match reliably finds the
// corresponding node for those languages; when the closest boundary
// doesn't correspond to any single node's span exactly (e.g. an HTML or
// TypeScript/Zig body token span vs. its node span), ok is false and the
// caller falls back to a full reparse.
//
// This walks every is_boundary fact rather than querying the fact
// store's span index directly: the index is keyed by a single point, not
// by "which intervals contain this whole range", and spec §4.3 doesn't
// mandate a particular enclosing-region query shape beyond  the
// algorithm in §4.10 step 4, so a linear scan over boundary facts (one
// per bracketed region, not per byte) keeps this correct without
// depending on exact interval.Index overlap semantics.
func enclosingRegion(fs *fileState, editRange span.Span) (span.Span, regionTarget, bool) {
	var best span.Span
	have := false
	for _, id := range fs.store.IterByPredicate(fact.IsBoundary) {
		f := fs.store.Get(id)
		sp := f.Subject.Unpack()
		if !sp.Contains(editRange) {
			continue
		}
		if !have || sp.Len() < best.Len() {
			best = sp
			have = true
		}
	}
	if !have {
		return span.Span{}, regionTarget{}, false
	}

	parent, idx, node, ok := findNodeWithSpan(fs.tree, fs.tree.Root(), ast.Ptr{}, -1, best)
	if !ok {
		return span.Span{}, regionTarget{}, false
	}
	return best, regionTarget{parent: parent, index: idx, node: node, rule: fs.tree.Node(node).Rule}, true
}

// findNodeWithSpan searches the subtree rooted at cur for a node whose
// span exactly equals target, returning its parent (nil if cur itself
// is the match — the document root — which callers treat as "not
// found" since there's no parent slot to graft into), the matching
// node's index within that parent, and the node itself.
func findNodeWithSpan(tree *ast.AST, cur, parent ast.Ptr, parentIdx int, target span.Span) (ast.Ptr, int, ast.Ptr, bool) {
	if cur.Nil() {
		return ast.Ptr{}, 0, ast.Ptr{}, false
	}
	n := tree.Node(cur)
	if n.Span == target {
		return parent, parentIdx, cur, true
	}
	if !n.Span.Contains(target) {
		return ast.Ptr{}, 0, ast.Ptr{}, false
	}
	for i, c := range n.Children {
		if p, idx, node, ok := findNodeWithSpan(tree, c, cur, i, target); ok {
			return p, idx, node, true
		}
	}
	return ast.Ptr{}, 0, ast.Ptr{}, false
}

// soleChildMatching reports whether sub's document node has exactly one
// child and that child's rule is want — the convergence check spec
// §4.10 step 3 describes in terms of lexer-state equality, adapted here
// (since this coordinator re-tokenizes the region from scratch rather
// than threading chunked lexer state across the boundary) to a
// structural check: the scoped reparse must reproduce a single node of
// the same rule as the node it's replacing.
func soleChildMatching(sub *ast.AST, want rule.ID) (ast.Ptr, bool) {
	if sub.Root().Nil() {
		return ast.Ptr{}, false
	}
	root := sub.Node(sub.Root())
	if len(root.Children) != 1 {
		return ast.Ptr{}, false
	}
	child := root.Children[0]
	if sub.Node(child).Rule != want {
		return ast.Ptr{}, false
	}
	return child, true
}

// graftInto deep-copies replacement (owned by sub's arena) into tree's
// arena and splices it into target.parent's Children at target.index,
// the same cross-arena copy parser/svelte.go performs when embedding a
// re-lexed sub-language region.
func graftInto(tree *ast.AST, target regionTarget, sub *ast.AST, replacement ast.Ptr) ast.Ptr {
	newNode := graftNode(tree, sub, replacement)
	tree.Node(newNode).Parent = target.parent
	tree.Node(target.parent).Children[target.index] = newNode
	return newNode
}

func graftNode(dst *ast.AST, src *ast.AST, p ast.Ptr) ast.Ptr {
	n := src.Node(p)
	copied := dst.NewNode(n.Rule, n.Span)
	cn := dst.Node(copied)
	cn.Sub = n.Sub
	cn.Payload = n.Payload
	for _, c := range n.Children {
		dst.AddChild(copied, graftNode(dst, src, c))
	}
	return copied
}

// shiftTree walks tree translating every node's span by delta, except
// graftedRoot's own subtree (already expressed in absolute post-edit
// coordinates, since it was parsed directly from newSrc) and anything
// entirely before region.Start (unaffected by the edit). A node whose
// span straddles the region — an ancestor of the replaced node — keeps
// its Start and only its End moves, since only bytes after its Start
// shifted.
func shiftTree(tree *ast.AST, cur, graftedRoot ast.Ptr, region span.Span, delta int64) {
	if cur.Nil() || cur == graftedRoot {
		return
	}
	n := tree.Node(cur)
	switch {
	case n.Span.End <= region.Start:
		// Fully before the edit: untouched.
	case n.Span.Start >= region.End:
		n.Span = span.New(shiftOffset(n.Span.Start, delta), shiftOffset(n.Span.End, delta))
	default:
		if n.Span.Start < region.Start {
			n.Span = span.New(n.Span.Start, shiftOffset(n.Span.End, delta))
		}
	}
	for _, c := range n.Children {
		shiftTree(tree, c, graftedRoot, region, delta)
	}
}

func shiftOffset(v uint32, delta int64) uint32 {
	return uint32(int64(v) + delta)
}

// rebuildDiagnostics replaces tree.Diagnostics with the subset that
// survive the edit (dropping anything that fell inside the replaced
// region, shifting anything after it) plus sub's own diagnostics, which
// are already absolute since sub was parsed directly against newSrc.
func rebuildDiagnostics(tree *ast.AST, sub *ast.AST, region span.Span, delta int64) {
	kept := make([]ast.Diagnostic, 0, len(tree.Diagnostics)+len(sub.Diagnostics))
	for _, d := range tree.Diagnostics {
		switch {
		case d.Span.End <= region.Start:
			kept = append(kept, d)
		case d.Span.Start >= region.End:
			kept = append(kept, ast.Diagnostic{
				Span:    span.New(shiftOffset(d.Span.Start, delta), shiftOffset(d.Span.End, delta)),
				Message: d.Message,
			})
		default:
			// Fell inside the replaced region; sub.Diagnostics carries
			// whatever still applies there.
		}
	}
	kept = append(kept, sub.Diagnostics...)
	tree.Diagnostics = kept
}
