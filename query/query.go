// Package query implements AST traversal and the CSS-like query engine
// (C9): pre-order and post-order visitors driven by a continuation
// result, plus a selector compiler and an LRU Cache of match results
// keyed by (AST-generation, query) (see cache.go). Find does not consult
// the Cache; callers store and look up results in it themselves.
package query

import (
	"strings"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
)

// Continuation tells a walk what to do after a visitor callback runs.
type Continuation uint8

const (
	// Descend continues into the visited node's children.
	Descend Continuation = iota
	// SkipChildren continues the walk but does not descend into this
	// node's children.
	SkipChildren
	// Stop ends the walk immediately.
	Stop
)

// Visitor is called once per node during a walk; node is the pointer
// being visited.
type Visitor func(tree *ast.AST, node ast.Ptr) Continuation

// walkPreOrder visits root and its descendants depth-first, parent
// before children, honoring the visitor's continuation at each step.
// Stop unwinds via a typed panic caught only at the public entry points
// (Walk, WalkPostOrder), so a recursive, early-exiting walk doesn't need
// every frame to thread a bool back up the call stack.
func walkPreOrder(tree *ast.AST, root ast.Ptr, visit Visitor) {
	if root.Nil() {
		return
	}
	switch visit(tree, root) {
	case Stop:
		panic(stopWalk{})
	case SkipChildren:
		return
	}
	for _, c := range tree.Node(root).Children {
		walkPreOrder(tree, c, visit)
	}
}

type stopWalk struct{}

// Walk is a pre-order traversal: parent visited before children.
func Walk(tree *ast.AST, root ast.Ptr, visit Visitor) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(stopWalk); ok {
				return
			}
			panic(r)
		}
	}()
	walkPreOrder(tree, root, visit)
}

// WalkPostOrder visits root's descendants before root itself. Only Stop
// and Descend are meaningful continuations for the visited node itself
// since children have already been visited by the time it runs;
// SkipChildren has already taken effect for nodes on the way down.
func WalkPostOrder(tree *ast.AST, root ast.Ptr, visit Visitor) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(stopWalk); ok {
				return
			}
			panic(r)
		}
	}()
	walkPostOrder(tree, root, visit)
}

func walkPostOrder(tree *ast.AST, root ast.Ptr, visit Visitor) {
	if root.Nil() {
		return
	}
	for _, c := range tree.Node(root).Children {
		walkPostOrder(tree, c, visit)
	}
	if visit(tree, root) == Stop {
		panic(stopWalk{})
	}
}

// Selector is a compiled CSS-like query over rule IDs: a sequence of
// simple selectors joined by child combinators (`rule/child-rule`), each
// simple selector optionally constrained by an attribute predicate
// (`rule[attribute]`), per spec §4.6.
type Selector struct {
	steps []simpleSelector
}

type simpleSelector struct {
	ruleName  string // matched against rule.Info.Name; "" matches any
	attribute string // "" means no attribute constraint
}

// Compile parses a selector string like "json.object/json.field" or
// "ts.function_decl[has_error]" into a Selector ready for repeated use.
func Compile(selector string) Selector {
	parts := strings.Split(selector, "/")
	steps := make([]simpleSelector, len(parts))
	for i, part := range parts {
		steps[i] = parseSimpleSelector(strings.TrimSpace(part))
	}
	return Selector{steps: steps}
}

func parseSimpleSelector(s string) simpleSelector {
	if open := strings.IndexByte(s, '['); open >= 0 && strings.HasSuffix(s, "]") {
		return simpleSelector{ruleName: s[:open], attribute: s[open+1 : len(s)-1]}
	}
	return simpleSelector{ruleName: s}
}

// Match reports whether node satisfies sel's last step, and whether its
// ancestor chain (as recorded by path, closest ancestor last) satisfies
// the preceding steps in order. Attribute predicates currently recognize
// "has_error" (checked against the tree's Diagnostics overlapping the
// node's span) and are otherwise treated as always-true markers reserved
// for future predicates (spec §4.6 names the syntax, not an exhaustive
// attribute vocabulary).
func (sel Selector) Match(tree *ast.AST, node ast.Ptr, path []ast.Ptr) bool {
	if len(sel.steps) == 0 {
		return false
	}
	last := sel.steps[len(sel.steps)-1]
	if !matchSimple(tree, node, last) {
		return false
	}
	if len(sel.steps) == 1 {
		return true
	}
	// Walk the remaining steps backward against path (the ancestor
	// chain), requiring an exact adjacency match per step, matching a
	// direct "rule/child-rule" child combinator rather than a
	// descendant combinator.
	want := sel.steps[:len(sel.steps)-1]
	if len(path) < len(want) {
		return false
	}
	for i := 0; i < len(want); i++ {
		ancestor := path[len(path)-1-i]
		if !matchSimple(tree, ancestor, want[len(want)-1-i]) {
			return false
		}
	}
	return true
}

func matchSimple(tree *ast.AST, node ast.Ptr, sel simpleSelector) bool {
	n := tree.Node(node)
	if sel.ruleName != "" {
		info, ok := rule.Lookup(n.Rule)
		if !ok || info.Name != sel.ruleName {
			return false
		}
	}
	if sel.attribute == "has_error" {
		return nodeHasError(tree, node)
	}
	return true
}

func nodeHasError(tree *ast.AST, node ast.Ptr) bool {
	sp := tree.Node(node).Span
	for _, d := range tree.Diagnostics {
		if sp.Overlaps(d.Span) {
			return true
		}
	}
	return false
}

// Find walks tree and returns every node pointer matching sel, in
// pre-order (source) order.
func Find(tree *ast.AST, sel Selector) []ast.Ptr {
	var matches []ast.Ptr
	var path []ast.Ptr
	var visit func(ast.Ptr)
	visit = func(p ast.Ptr) {
		if sel.Match(tree, p, path) {
			matches = append(matches, p)
		}
		path = append(path, p)
		for _, c := range tree.Node(p).Children {
			visit(c)
		}
		path = path[:len(path)-1]
	}
	if !tree.Root().Nil() {
		visit(tree.Root())
	}
	return matches
}
