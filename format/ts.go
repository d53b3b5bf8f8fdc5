package format

import (
	"bytes"

	"github.com/zztool/zz/ast"
)

// writeMinimal renders TypeScript and Zig documents with the minimal
// formatting their declarations-level parse coverage supports (spec
// §4.5's design note: "richer grammars are future work"): each top-level
// item keeps its own source text verbatim (bodies are opaque TSBody/
// ZigBody spans this pass never reflows), trailing whitespace per line is
// trimmed, and exactly one blank line separates top-level items.
func (b *builder) writeMinimal(p ast.Ptr) {
	n := b.tree.Node(p)
	for i, c := range n.Children {
		if i > 0 {
			b.buf.newline()
			b.buf.newline()
		}
		b.buf.write(trimTrailingWhitespacePerLine(b.nodeText(c)))
	}
}

func trimTrailingWhitespacePerLine(src []byte) []byte {
	lines := bytes.Split(src, []byte("\n"))
	for i, l := range lines {
		lines[i] = bytes.TrimRight(l, " \t\r")
	}
	return bytes.Join(lines, []byte("\n"))
}
