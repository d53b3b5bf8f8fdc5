package parser

import (
	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/span"
	"github.com/zztool/zz/token"
)

// parseZONDocument implements the ZON grammar from spec §4.5: a document
// is a single `.{...}` struct literal (also used for array-like values,
// matching Zig's anonymous-struct-as-array-literal convention), or any
// other ZON value at the top level.
func (p *parser) parseZONDocument() ast.Ptr {
	start := p.cur.Peek(false).Span.Start
	val := p.parseZONValue()

	if !p.cur.AtEOF() {
		extra := p.errorNode("unexpected trailing content after ZON document", token.EOF)
		doc := p.tree.NewNode(rule.ZONDocument, span.New(start, p.tree.Node(extra).Span.End))
		p.tree.AddChild(doc, val)
		p.tree.AddChild(doc, extra)
		return doc
	}

	end := p.tree.Node(val).Span.End
	doc := p.tree.NewNode(rule.ZONDocument, span.New(start, end))
	p.tree.AddChild(doc, val)
	return doc
}

func (p *parser) parseZONValue() ast.Ptr {
	t := p.cur.Peek(false)
	switch {
	case p.punctIs('.') && p.peekNthIsPunct(1, '{'):
		return p.parseZONStruct()
	case p.punctIs('.'):
		return p.parseZONEnumLiteral()
	case t.Kind == token.Builtin:
		p.cur.Next()
		end := t.Span.End
		if p.punctIs('(') {
			end = p.skipBalanced('(', ')')
		}
		return p.tree.NewNode(rule.ZONBuiltinCall, span.New(t.Span.Start, end))
	case t.Kind == token.String && t.Sub == token.SubStringSingle:
		p.cur.Next()
		return p.tree.NewNode(rule.ZONCharLiteral, t.Span)
	case t.Kind == token.String:
		p.cur.Next()
		return p.tree.NewNode(rule.ZONString, t.Span)
	case t.Kind == token.Number:
		p.cur.Next()
		n := p.tree.NewNode(rule.ZONNumber, t.Span)
		p.tree.Node(n).Sub = t.Sub
		return n
	case t.Kind == token.Keyword && string(t.Text(p.src)) == "true":
		p.cur.Next()
		return p.tree.NewNode(rule.ZONBool, t.Span)
	case t.Kind == token.Keyword && string(t.Text(p.src)) == "false":
		p.cur.Next()
		return p.tree.NewNode(rule.ZONBool, t.Span)
	case t.Kind == token.Keyword && string(t.Text(p.src)) == "null":
		p.cur.Next()
		return p.tree.NewNode(rule.ZONNull, t.Span)
	case t.Kind == token.Keyword && string(t.Text(p.src)) == "undefined":
		p.cur.Next()
		return p.tree.NewNode(rule.ZONUndefined, t.Span)
	default:
		return p.errorNode("expected a ZON value", token.EOF)
	}
}

// parseZONEnumLiteral handles a bare `.name` enum-literal value, as
// distinct from a `.{` struct literal or a `.field = value` assignment
// (the latter only appears inside parseZONStruct, which consumes the
// leading '.' itself before calling this).
func (p *parser) parseZONEnumLiteral() ast.Ptr {
	dot := p.cur.Next() // '.'
	if p.cur.Peek(false).Kind != token.Ident && p.cur.Peek(false).Kind != token.Keyword {
		return p.errorNode("expected identifier after '.'", token.Punct, token.EOF)
	}
	name := p.cur.Next()
	return p.tree.NewNode(rule.ZONEnumLiteral, span.New(dot.Span.Start, name.Span.End))
}

func (p *parser) parseZONStruct() ast.Ptr {
	dot := p.cur.Next()   // '.'
	open := p.cur.Next()  // '{'
	st := p.tree.NewNode(rule.ZONStruct, span.New(dot.Span.Start, open.Span.End))

	for {
		if p.cur.AtEOF() {
			p.errorAt(p.tree.Node(st).Span, "unterminated struct literal")
			break
		}
		if p.punctIs('}') {
			break
		}

		beforeField := p.cur.Mark()
		var member ast.Ptr
		if p.punctIs('.') && !p.peekNthIsPunct(1, '{') {
			member = p.parseZONField()
		} else {
			member = p.parseZONValue()
		}
		for _, c := range p.leadingComments(tokensBetween(p.toks, beforeField, p.cur.Mark())) {
			p.tree.AddChild(st, c)
		}
		p.tree.AddChild(st, member)

		if p.punctIs(',') {
			p.cur.Next()
			continue
		}
		break
	}

	end := open.Span.End
	if close, ok := p.expectPunct('}'); ok {
		end = close.Span.End
	} else if !p.cur.AtEOF() {
		errNode := p.errorNode("expected ',' or '}' in struct literal", token.EOF)
		p.tree.AddChild(st, errNode)
		end = p.tree.Node(errNode).Span.End
	}
	p.tree.Node(st).Span = span.New(dot.Span.Start, end)
	return st
}

// parseZONField handles `.name = value` or `.name: value`. The caller
// sends a nested `.{` struct to parseZONValue instead, so the token after
// the '.' here is expected to be a name. When no '=' or ':' follows the
// name, the member is a lone `.name` value and is returned as a bare
// ZONKey node.
func (p *parser) parseZONField() ast.Ptr {
	dot := p.cur.Next() // '.'
	if p.cur.Peek(false).Kind != token.Ident && p.cur.Peek(false).Kind != token.Keyword {
		return p.errorNode("expected field name after '.'", token.Punct, token.EOF)
	}
	name := p.cur.Next()
	key := p.tree.NewNode(rule.ZONKey, span.New(dot.Span.Start, name.Span.End))

	if !p.punctIs('=') && !p.punctIs(':') {
		// Not actually a field assignment: this was a bare enum literal
		// used as a struct member value.
		return key
	}
	p.cur.Next() // '=' or ':'

	val := p.parseZONValue()
	field := p.tree.NewNode(rule.ZONField, span.New(p.tree.Node(key).Span.Start, p.tree.Node(val).Span.End))
	p.tree.AddChild(field, key)
	p.tree.AddChild(field, val)
	return field
}

// peekNthIsPunct reports whether the nth significant token ahead (0 =
// current) is a single-byte Punct token matching b, using a mark/reset
// round-trip since Cursor has no direct multi-token lookahead.
func (p *parser) peekNthIsPunct(n int, b byte) bool {
	mark := p.cur.Mark()
	defer p.cur.Reset(mark)

	for i := 0; i < n; i++ {
		p.cur.Next()
	}
	t := p.cur.Peek(false)
	return t.Kind == token.Punct && t.Span.Len() == 1 && t.Span.Text(p.src)[0] == b
}
