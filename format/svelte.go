package format

import (
	"bytes"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
)

// writeSvelte renders a Svelte document by dispatching each top-level
// region to the sub-formatter for its language: CSS for <style>, the
// minimal TypeScript formatter for <script>, and the HTML formatter for
// template markup. Regions are grafted sub-trees (parser/svelte.go),
// so their children are that language's own top-level nodes directly.
func (b *builder) writeSvelte(p ast.Ptr) {
	n := b.tree.Node(p)
	for i, c := range n.Children {
		if i > 0 {
			b.buf.newline()
			b.buf.newline()
		}
		cn := b.tree.Node(c)
		switch cn.Rule {
		case rule.SvelteScript:
			b.writeSvelteRegion(c, "script")
		case rule.SvelteStyle:
			b.writeSvelteRegion(c, "style")
		case rule.SvelteTemplate:
			for _, t := range cn.Children {
				b.writeHTML(t, 0)
			}
		default:
			b.buf.write(b.nodeText(c))
		}
	}
}

func (b *builder) writeSvelteRegion(p ast.Ptr, tag string) {
	n := b.tree.Node(p)
	b.buf.writeString("<" + tag + ">")
	if len(n.Children) == 0 {
		b.buf.writeString("</" + tag + ">")
		return
	}
	b.buf.newline()
	indent := b.indentUnit(1)
	if tag == "style" {
		for i, c := range n.Children {
			if i > 0 {
				b.buf.newline()
			}
			b.writeCSS(c, 1)
		}
	} else {
		for i, c := range n.Children {
			if i > 0 {
				b.buf.newline()
				b.buf.newline()
			}
			b.buf.indent(indent)
			b.buf.write(indentContinuationLines(trimTrailingWhitespacePerLine(b.nodeText(c)), indent))
		}
	}
	b.buf.newline()
	b.buf.writeString("</" + tag + ">")
}

// indentContinuationLines pads every line after the first with width
// spaces, for text whose first line is already positioned by a caller's
// explicit indent write.
func indentContinuationLines(src []byte, width int) []byte {
	lines := bytes.Split(src, []byte("\n"))
	pad := bytes.Repeat([]byte(" "), width)
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) == 0 {
			continue
		}
		lines[i] = append(append([]byte{}, pad...), lines[i]...)
	}
	return bytes.Join(lines, []byte("\n"))
}
