// Package extract implements the flag-driven selective emission pass
// (C10): walking an AST and writing out only the spans whose rule
// category matches an enabled flag, in source order, without
// reformatting.
package extract

import (
	"bytes"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/token"
)

// Flags selects which rule categories to emit. The zero value means
// "nothing selected", which Extract treats the same as Full: return the
// original source untouched.
type Flags struct {
	Signatures bool
	Types      bool
	Docs       bool
	Structure  bool
	Imports    bool
	Errors     bool
	Tests      bool
	Full       bool
}

// any reports whether at least one selective flag is set.
func (f Flags) any() bool {
	return f.Signatures || f.Types || f.Docs || f.Structure || f.Imports || f.Errors || f.Tests
}

// Extract renders tree's source subset to flags. Per spec §4.7: an empty
// Flags or Full implies the whole, unmodified source.
func Extract(tree *ast.AST, flags Flags) []byte {
	if flags.Full || !flags.any() {
		return tree.Source
	}
	var buf bytes.Buffer
	w := &walker{tree: tree, flags: flags, buf: &buf}
	if !tree.Root().Nil() {
		w.visit(tree.Root())
	}
	return buf.Bytes()
}

type walker struct {
	tree  *ast.AST
	flags Flags
	buf   *bytes.Buffer
}

// visit descends tree in source order. When a node's category matches an
// enabled flag it emits that node's span and does not descend into it for
// any other flag; the only exception is the errors flag, under which
// error nodes anywhere beneath an emitted node are emitted as well (see
// emitNestedErrors).
func (w *walker) visit(p ast.Ptr) {
	n := w.tree.Node(p)
	if w.matches(n) {
		w.emit(n, p)
		return
	}
	for _, c := range n.Children {
		w.visit(c)
	}
}

func (w *walker) matches(n *ast.Node) bool {
	info, ok := rule.Lookup(n.Rule)
	if !ok {
		return false
	}
	switch info.Category {
	case rule.CategoryFnDecl:
		return w.flags.Signatures
	case rule.CategoryTypeDecl:
		return w.flags.Types
	case rule.CategoryComment:
		return w.flags.Docs && (n.Sub == token.SubCommentDoc || n.Sub == token.SubCommentContainer)
	case rule.CategoryDocumentRoot, rule.CategoryContainer:
		return w.flags.Structure
	case rule.CategoryImport:
		return w.flags.Imports
	case rule.CategoryErrorNode:
		return w.flags.Errors
	case rule.CategoryTestDecl:
		return w.flags.Tests
	default:
		return w.flags.Errors && w.hasError(n)
	}
}

// hasError reports whether n's span overlaps a recorded diagnostic,
// covering spec §4.7's "nodes carrying has_error facts" half of the
// errors flag for nodes whose own category isn't error-node (e.g. a
// mismatched-bracket container flagged by the structural scanner).
func (w *walker) hasError(n *ast.Node) bool {
	for _, d := range w.tree.Diagnostics {
		if n.Span.Overlaps(d.Span) {
			return true
		}
	}
	return false
}

// emit writes n's span text. Signatures are truncated to the body's
// opening brace, if the node has one, per spec §4.7 ("signature up to
// body open brace"): the first '{' byte in the node's text marks where
// the body begins, and whitespace before it is trimmed.
func (w *walker) emit(n *ast.Node, p ast.Ptr) {
	text := n.Span.Text(w.tree.Source)
	info, _ := rule.Lookup(n.Rule)
	if info.Category == rule.CategoryFnDecl {
		if brace := bytes.IndexByte(text, '{'); brace >= 0 {
			text = bytes.TrimRight(text[:brace], " \t\n")
		}
	}
	w.buf.Write(text)
	w.buf.WriteByte('\n')
	if w.flags.Errors {
		w.emitNestedErrors(p)
	}
}

// emitNestedErrors walks beneath an already-emitted node looking for
// error subtrees the caller also wants, matching spec §4.7's "do not
// descend into emitted subtrees unless a nested flag also applies".
func (w *walker) emitNestedErrors(p ast.Ptr) {
	n := w.tree.Node(p)
	for _, c := range n.Children {
		cn := w.tree.Node(c)
		info, ok := rule.Lookup(cn.Rule)
		if ok && info.Category == rule.CategoryErrorNode {
			w.emit(cn, c)
			continue
		}
		w.emitNestedErrors(c)
	}
}
