package format

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
)

// writeJSONLike renders JSON and ZON documents with one shared algorithm:
// both languages are container/field/literal trees with the same layout
// rule, differing only in bracket spelling and key/value separator.
//
// Object-shaped containers (every non-comment child is a field) always
// break one field per line, regardless of how short they'd be flat — the
// concrete scenarios in spec §8 format even a two-field object
// multi-line. Array-shaped containers (bare-value children) use the
// width budget: flat if they fit, broken otherwise.
func (b *builder) writeJSONLike(p ast.Ptr, depth int) {
	n := b.tree.Node(p)
	switch n.Rule {
	case rule.JSONDocument, rule.ZONDocument:
		for i, c := range n.Children {
			if i > 0 {
				b.buf.newline()
			}
			b.writeItem(c, depth)
		}
	default:
		b.writeItem(p, depth)
	}
}

func (b *builder) writeItem(p ast.Ptr, depth int) {
	n := b.tree.Node(p)
	switch n.Rule {
	case rule.JSONField, rule.ZONField:
		b.writeField(p, depth)
	case rule.JSONObject, rule.JSONArray, rule.ZONStruct:
		b.writeContainer(p, depth)
	default:
		b.buf.write(b.nodeText(p))
	}
}

func (b *builder) writeField(p ast.Ptr, depth int) {
	n := b.tree.Node(p)
	key, val := n.Children[0], n.Children[1]
	b.buf.write(b.nodeText(key))
	b.buf.writeString(fieldSeparator(n.Rule))
	b.writeItem(val, depth)
}

func (b *builder) writeContainer(p ast.Ptr, depth int) {
	n := b.tree.Node(p)
	open, close := bracketFor(n.Rule)
	if len(n.Children) == 0 {
		b.buf.writeString(open + close)
		return
	}
	if !objectShaped(b.tree, n.Children) {
		if flat, ok := b.flatText(p); ok && b.fitsFlat(flat) {
			b.buf.writeString(flat)
			return
		}
	}
	b.writeBroken(n.Children, open, close, depth)
}

// writeBroken emits one child per line, indented one level deeper than
// the enclosing bracket, with a trailing comma on every child but the
// last non-comment one.
func (b *builder) writeBroken(children []ast.Ptr, open, close string, depth int) {
	b.buf.writeString(open)
	b.buf.newline()
	childDepth := depth + 1

	lastValue := -1
	for i, c := range children {
		if !isComment(b.tree, c) {
			lastValue = i
		}
	}

	for i, c := range children {
		b.buf.indent(b.indentUnit(childDepth))
		b.writeItem(c, childDepth)
		if !isComment(b.tree, c) && i != lastValue {
			b.buf.writeString(",")
		}
		b.buf.newline()
	}
	b.buf.indent(b.indentUnit(depth))
	b.buf.writeString(close)
}

// flatText computes a single-line rendering of p, reporting false if p
// (or something beneath it) cannot be flattened: a non-empty
// object-shaped container or a comment always forces a break.
func (b *builder) flatText(p ast.Ptr) (string, bool) {
	n := b.tree.Node(p)
	switch n.Rule {
	case rule.JSONObject, rule.JSONArray, rule.ZONStruct:
		if len(n.Children) == 0 {
			open, close := bracketFor(n.Rule)
			return open + close, true
		}
		if objectShaped(b.tree, n.Children) {
			return "", false
		}
		return b.flatJoin(n)
	case rule.JSONField, rule.ZONField:
		key, val := n.Children[0], n.Children[1]
		vs, ok := b.flatText(val)
		if !ok {
			return "", false
		}
		return string(b.nodeText(key)) + fieldSeparator(n.Rule) + vs, true
	case rule.LineComment, rule.BlockComment, rule.DocComment, rule.ContainerComment:
		return "", false
	default:
		return string(b.nodeText(p)), true
	}
}

func (b *builder) flatJoin(n *ast.Node) (string, bool) {
	open, close := bracketFor(n.Rule)
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		s, ok := b.flatText(c)
		if !ok {
			return "", false
		}
		parts = append(parts, s)
	}
	inner := strings.Join(parts, ", ")
	return open + inner + close, true
}

func (b *builder) fitsFlat(s string) bool {
	if strings.ContainsRune(s, '\n') {
		return false
	}
	return b.buf.column+uniseg.StringWidth(s) <= b.opts.Width
}

func fieldSeparator(id rule.ID) string {
	if id == rule.ZONField {
		return " = "
	}
	return ": "
}

func bracketFor(id rule.ID) (string, string) {
	switch id {
	case rule.JSONObject:
		return "{", "}"
	case rule.JSONArray:
		return "[", "]"
	case rule.ZONStruct:
		return ".{", "}"
	default:
		return "", ""
	}
}

func isComment(tree *ast.AST, p ast.Ptr) bool {
	info, ok := rule.Lookup(tree.Node(p).Rule)
	return ok && info.Category == rule.CategoryComment
}

// objectShaped reports whether children consist entirely of fields
// (ignoring interleaved comments), with at least one field present.
func objectShaped(tree *ast.AST, children []ast.Ptr) bool {
	any := false
	for _, c := range children {
		if isComment(tree, c) {
			continue
		}
		info, ok := rule.Lookup(tree.Node(c).Rule)
		if !ok || info.Category != rule.CategoryField {
			return false
		}
		any = true
	}
	return any
}
