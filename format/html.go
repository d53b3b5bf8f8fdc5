package format

import (
	"bytes"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
)

// writeHTML renders an HTML document with minimal reformatting: each
// element gets its own indented line, attributes stay inline on the
// opening tag as written, and <script>/<style> bodies are copied through
// untouched since they carry embedded TypeScript/CSS this pass doesn't
// re-lex (spec §4.5's "opaque body" treatment extended to the formatter).
func (b *builder) writeHTML(p ast.Ptr, depth int) {
	n := b.tree.Node(p)
	switch n.Rule {
	case rule.HTMLDocument:
		for i, c := range n.Children {
			if i > 0 {
				b.buf.newline()
			}
			b.writeHTML(c, depth)
		}
	case rule.HTMLElement, rule.HTMLVoidElement:
		b.writeHTMLElement(p, depth)
	case rule.HTMLText:
		text := bytes.TrimSpace(b.nodeText(p))
		if len(text) == 0 {
			return
		}
		b.buf.indent(b.indentUnit(depth))
		b.buf.write(text)
	default:
		b.buf.indent(b.indentUnit(depth))
		b.buf.write(bytes.TrimSpace(b.nodeText(p)))
	}
}

func (b *builder) writeHTMLElement(p ast.Ptr, depth int) {
	n := b.tree.Node(p)
	name := htmlTagName(b.tree, p)

	var attrs, body []ast.Ptr
	for _, c := range n.Children {
		if b.tree.Node(c).Rule == rule.HTMLOpaqueBody {
			body = append(body, c)
			continue
		}
		if b.tree.Node(c).Rule == rule.HTMLAttribute {
			attrs = append(attrs, c)
			continue
		}
	}

	b.buf.indent(b.indentUnit(depth))
	b.buf.writeString("<" + name)
	for _, a := range attrs {
		b.buf.writeString(" ")
		b.buf.write(bytes.TrimSpace(b.nodeText(a)))
	}
	if n.Rule == rule.HTMLVoidElement {
		b.buf.writeString(">")
		return
	}
	b.buf.writeString(">")

	if len(body) == 1 {
		text := b.nodeText(body[0])
		if len(bytes.TrimSpace(text)) > 0 {
			b.buf.newline()
			b.buf.write(text)
			b.buf.newline()
			b.buf.indent(b.indentUnit(depth))
		}
		b.buf.writeString("</" + name + ">")
		return
	}

	children := childElements(b.tree, n)
	if len(children) == 0 {
		b.buf.writeString("</" + name + ">")
		return
	}
	b.buf.newline()
	for _, c := range children {
		b.writeHTML(c, depth+1)
		b.buf.newline()
	}
	b.buf.indent(b.indentUnit(depth))
	b.buf.writeString("</" + name + ">")
}

func childElements(tree *ast.AST, n *ast.Node) []ast.Ptr {
	var out []ast.Ptr
	for _, c := range n.Children {
		switch tree.Node(c).Rule {
		case rule.HTMLAttribute, rule.HTMLOpaqueBody:
			continue
		}
		out = append(out, c)
	}
	return out
}

// htmlTagName reads the element's tag name straight out of source,
// starting just past the opening '<'.
func htmlTagName(tree *ast.AST, p ast.Ptr) string {
	text := tree.Node(p).Span.Text(tree.Source)
	if len(text) == 0 || text[0] != '<' {
		return ""
	}
	i := 1
	for i < len(text) {
		c := text[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '>' || c == '/' {
			break
		}
		i++
	}
	return string(text[1:i])
}
