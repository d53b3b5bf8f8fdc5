// Package format implements the canonical re-printer (C11): it walks an
// AST and emits a deterministic, idempotent rendering of it, the way
// bufbuild-protocompile's dom/layout pass turns a formatted-output tree
// into text. Unlike that pass, zz's formatter drives directly off the
// parsed rule tree rather than building an intermediate layout document;
// spec §4.8 describes the same "does this fit on one line, else break
// and indent" decision this package makes per container node.
package format

import (
	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
)

// Options controls rendering. Width is the target line width used to
// decide whether an array-shaped container stays flat; IndentWidth is
// the number of spaces per nesting level (tabs are never emitted, per
// spec §4.8's "2-space indent" default).
type Options struct {
	Width       int
	IndentWidth int
}

// DefaultOptions matches spec §4.8's stated defaults.
func DefaultOptions() Options {
	return Options{Width: 80, IndentWidth: 2}
}

// Format renders tree's document node back to source text under opts.
// Calling Format on the result of a prior Format call with the same
// opts is required to return the same bytes again (spec §8's
// idempotence property).
func Format(tree *ast.AST, opts Options) []byte {
	if opts.Width <= 0 {
		opts.Width = DefaultOptions().Width
	}
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = DefaultOptions().IndentWidth
	}
	b := &builder{tree: tree, opts: opts}
	if tree.Root().Nil() {
		return nil
	}
	switch tree.Lang {
	case rule.LangJSON, rule.LangZON:
		b.writeJSONLike(tree.Root(), 0)
	case rule.LangCSS:
		b.writeCSS(tree.Root(), 0)
	case rule.LangHTML:
		b.writeHTML(tree.Root(), 0)
	case rule.LangTypeScript, rule.LangZig:
		b.writeMinimal(tree.Root())
	case rule.LangSvelte:
		b.writeSvelte(tree.Root())
	default:
		return tree.Source
	}
	b.buf.trimTrailingBlank()
	b.buf.data = append(b.buf.data, '\n')
	return b.buf.data
}
