package format

import (
	"bytes"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
)

// writeCSS renders a CSS document: top-level rule sets and at-rules, one
// per line with a blank line between them, matching spec §8 scenario S4
// (`a{color:red;padding:1rem}` becomes a selector line, one declaration
// per line, closing brace on its own line).
func (b *builder) writeCSS(p ast.Ptr, depth int) {
	n := b.tree.Node(p)
	switch n.Rule {
	case rule.CSSDocument:
		for i, c := range n.Children {
			if i > 0 {
				b.buf.newline()
				b.buf.newline()
			}
			b.writeCSS(c, depth)
		}
	case rule.CSSRuleSet:
		b.writeCSSRuleSet(p, depth)
	case rule.CSSAtRule:
		b.writeCSSAtRule(p, depth)
	default:
		b.buf.write(b.nodeText(p))
	}
}

func (b *builder) writeCSSRuleSet(p ast.Ptr, depth int) {
	n := b.tree.Node(p)
	if len(n.Children) == 0 {
		return
	}
	sel := bytes.TrimSpace(b.nodeText(n.Children[0]))
	b.buf.indent(b.indentUnit(depth))
	b.buf.write(sel)
	if len(n.Children) < 2 {
		return
	}
	b.buf.writeString(" ")
	b.writeCSSBlock(n.Children[1], depth)
}

func (b *builder) writeCSSAtRule(p ast.Ptr, depth int) {
	n := b.tree.Node(p)
	b.buf.indent(b.indentUnit(depth))
	if len(n.Children) == 0 {
		b.buf.write(b.nodeText(p))
		return
	}
	// The at-rule's span runs through the end of its body, and the body
	// is a child declaration block, so the prelude text is cut off where
	// the body starts before re-emitting it; the block is rendered
	// separately.
	body := n.Children[0]
	b.buf.write(bytes.TrimSpace(preludeText(b.tree, p, body)))
	b.buf.writeString(" ")
	b.writeCSSBlock(body, depth)
}

// preludeText returns the at-rule's own text up to (not including) its
// body child's span.
func preludeText(tree *ast.AST, atRule, body ast.Ptr) []byte {
	src := tree.Source
	start := tree.Node(atRule).Span.Start
	end := tree.Node(body).Span.Start
	if end < start || int(end) > len(src) {
		return tree.Node(atRule).Span.Text(src)
	}
	return src[start:end]
}

// writeCSSBlock renders a declaration block: always one declaration (or
// nested rule set, for @media/@keyframes bodies) per line, mirroring how
// object-shaped JSON/ZON containers always break.
func (b *builder) writeCSSBlock(p ast.Ptr, depth int) {
	n := b.tree.Node(p)
	if len(n.Children) == 0 {
		b.buf.writeString("{}")
		return
	}
	b.buf.writeString("{")
	b.buf.newline()
	childDepth := depth + 1
	for _, c := range n.Children {
		b.buf.indent(b.indentUnit(childDepth))
		b.writeCSSItem(c, childDepth)
		b.buf.newline()
	}
	b.buf.indent(b.indentUnit(depth))
	b.buf.writeString("}")
}

func (b *builder) writeCSSItem(p ast.Ptr, depth int) {
	n := b.tree.Node(p)
	switch n.Rule {
	case rule.CSSDeclaration:
		b.writeCSSDeclaration(p)
	case rule.CSSRuleSet:
		b.writeCSSRuleSetInline(p, depth)
	default:
		b.buf.write(bytes.TrimSpace(b.nodeText(p)))
	}
}

// writeCSSRuleSetInline renders a nested rule set (inside an @media
// block, say) without the leading indent writeCSSRuleSet applies, since
// the caller (writeCSSBlock) already wrote it.
func (b *builder) writeCSSRuleSetInline(p ast.Ptr, depth int) {
	n := b.tree.Node(p)
	if len(n.Children) == 0 {
		return
	}
	sel := bytes.TrimSpace(b.nodeText(n.Children[0]))
	b.buf.write(sel)
	if len(n.Children) < 2 {
		return
	}
	b.buf.writeString(" ")
	b.writeCSSBlock(n.Children[1], depth)
}

func (b *builder) writeCSSDeclaration(p ast.Ptr) {
	n := b.tree.Node(p)
	if len(n.Children) == 0 {
		b.buf.write(bytes.TrimSpace(b.nodeText(p)))
		return
	}
	prop := bytes.TrimSpace(b.nodeText(n.Children[0]))
	b.buf.write(prop)
	b.buf.writeString(": ")
	if len(n.Children) < 2 {
		b.buf.writeString(";")
		return
	}
	val := bytes.TrimSpace(b.nodeText(n.Children[1]))
	b.buf.write(val)
	b.buf.writeString(";")
}
