package format

import (
	"bytes"

	"github.com/rivo/uniseg"

	"github.com/zztool/zz/ast"
)

// lineBuffer accumulates output bytes while tracking the current column,
// the way bufbuild-protocompile's dom/layout.layout tracks column during
// layoutFlat/layoutBroken, simplified here to a single running offset
// since this package never needs to backtrack past a line it already
// committed.
type lineBuffer struct {
	data   []byte
	column int
}

func (b *lineBuffer) writeString(s string) {
	b.data = append(b.data, s...)
	b.advance(s)
}

func (b *lineBuffer) write(p []byte) {
	b.data = append(b.data, p...)
	b.advance(string(p))
}

func (b *lineBuffer) advance(s string) {
	if i := bytes.LastIndexByte([]byte(s), '\n'); i >= 0 {
		b.column = uniseg.StringWidth(s[i+1:])
		return
	}
	b.column += uniseg.StringWidth(s)
}

func (b *lineBuffer) newline() {
	// Trim trailing spaces before a line break so a flat-then-broken
	// decision never leaves dangling indentation.
	for len(b.data) > 0 && b.data[len(b.data)-1] == ' ' {
		b.data = b.data[:len(b.data)-1]
	}
	b.data = append(b.data, '\n')
	b.column = 0
}

func (b *lineBuffer) indent(width int) {
	for i := 0; i < width; i++ {
		b.data = append(b.data, ' ')
	}
	b.column += width
}

func (b *lineBuffer) trimTrailingBlank() {
	for len(b.data) > 0 && (b.data[len(b.data)-1] == '\n' || b.data[len(b.data)-1] == ' ' || b.data[len(b.data)-1] == '\t') {
		b.data = b.data[:len(b.data)-1]
	}
}

// builder holds the shared state every per-language writer method reads:
// the tree being rendered, the formatting options, and the output buffer.
type builder struct {
	tree *ast.AST
	opts Options
	buf  lineBuffer
}

func (b *builder) indentUnit(depth int) int {
	return depth * b.opts.IndentWidth
}

// nodeText returns n's raw span text, or its decoded Payload.Text when
// the parser recorded one (e.g. a pre-unescaped string literal).
func (b *builder) nodeText(p ast.Ptr) []byte {
	n := b.tree.Node(p)
	if n.Payload.HasText {
		return []byte(n.Payload.Text)
	}
	return n.Span.Text(b.tree.Source)
}
