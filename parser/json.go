package parser

import (
	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/span"
	"github.com/zztool/zz/token"
)

// parseJSONDocument implements the JSON grammar from spec §4.5. Options.JSON5
// only allows bare identifier keys; trailing commas, comments, and
// single-quoted strings parse without error in either mode. The document
// production is a single value (object, array, or
// scalar) possibly preceded/followed by whitespace and comments, which the
// cursor already skips.
func (p *parser) parseJSONDocument() ast.Ptr {
	start := p.cur.Peek(false).Span.Start
	val := p.parseJSONValue()

	if !p.cur.AtEOF() {
		extra := p.errorNode("unexpected trailing content after JSON document", token.EOF)
		doc := p.tree.NewNode(rule.JSONDocument, span.New(start, p.tree.Node(extra).Span.End))
		p.tree.AddChild(doc, val)
		p.tree.AddChild(doc, extra)
		return doc
	}

	end := p.tree.Node(val).Span.End
	doc := p.tree.NewNode(rule.JSONDocument, span.New(start, end))
	p.tree.AddChild(doc, val)
	return doc
}

func (p *parser) parseJSONValue() ast.Ptr {
	t := p.cur.Peek(false)
	switch {
	case p.punctIs('{'):
		return p.parseJSONObject()
	case p.punctIs('['):
		return p.parseJSONArray()
	case t.Kind == token.String:
		p.cur.Next()
		return p.tree.NewNode(rule.JSONString, t.Span)
	case t.Kind == token.Number:
		p.cur.Next()
		n := p.tree.NewNode(rule.JSONNumber, t.Span)
		p.tree.Node(n).Sub = t.Sub
		return n
	case t.Kind == token.Ident && string(t.Text(p.src)) == "true":
		p.cur.Next()
		return p.tree.NewNode(rule.JSONBool, t.Span)
	case t.Kind == token.Ident && string(t.Text(p.src)) == "false":
		p.cur.Next()
		return p.tree.NewNode(rule.JSONBool, t.Span)
	case t.Kind == token.Ident && string(t.Text(p.src)) == "null":
		p.cur.Next()
		return p.tree.NewNode(rule.JSONNull, t.Span)
	default:
		return p.errorNode("expected a JSON value", token.EOF)
	}
}

func (p *parser) parseJSONObject() ast.Ptr {
	open := p.cur.Next() // consumes '{'
	obj := p.tree.NewNode(rule.JSONObject, open.Span)

	for {
		if p.cur.AtEOF() {
			p.errorAt(open.Span, "unterminated object")
			break
		}
		if p.punctIs('}') {
			break
		}

		beforeField := p.cur.Mark()
		field := p.parseJSONField()
		comments := p.leadingComments(tokensBetween(p.toks, beforeField, p.cur.Mark()))
		for _, c := range comments {
			p.tree.AddChild(obj, c)
		}
		p.tree.AddChild(obj, field)

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
		errNode := p.errorNode("expected ','  or '}' in object", token.EOF)
		p.tree.AddChild(obj, errNode)
		end = p.tree.Node(errNode).Span.End
	}
	p.tree.Node(obj).Span = span.New(open.Span.Start, end)
	return obj
}

func (p *parser) parseJSONField() ast.Ptr {
	t := p.cur.Peek(false)
	var key ast.Ptr
	switch {
	case t.Kind == token.String:
		p.cur.Next()
		key = p.tree.NewNode(rule.JSONKey, t.Span)
	case p.opts.JSON5 && (t.Kind == token.Ident || t.Kind == token.Keyword):
		p.cur.Next()
		key = p.tree.NewNode(rule.JSONKey, t.Span)
	default:
		key = p.errorNode("expected a field name", token.Punct, token.EOF)
	}

	fieldStart := p.tree.Node(key).Span.Start
	var val ast.Ptr
	if _, ok := p.expectPunct(':'); ok {
		val = p.parseJSONValue()
	} else {
		val = p.errorNode("expected ':' after field name", token.Punct, token.EOF)
	}

	field := p.tree.NewNode(rule.JSONField, span.New(fieldStart, p.tree.Node(val).Span.End))
	p.tree.AddChild(field, key)
	p.tree.AddChild(field, val)
	return field
}

func (p *parser) parseJSONArray() ast.Ptr {
	open := p.cur.Next() // consumes '['
	arr := p.tree.NewNode(rule.JSONArray, open.Span)

	for {
		if p.cur.AtEOF() {
			p.errorAt(open.Span, "unterminated array")
			break
		}
		if p.punctIs(']') {
			break
		}

		elem := p.parseJSONValue()
		p.tree.AddChild(arr, elem)

		if p.punctIs(',') {
			p.cur.Next()
			continue
		}
		break
	}

	end := open.Span.End
	if close, ok := p.expectPunct(']'); ok {
		end = close.Span.End
	} else if !p.cur.AtEOF() {
		errNode := p.errorNode("expected ',' or ']' in array", token.EOF)
		p.tree.AddChild(arr, errNode)
		end = p.tree.Node(errNode).Span.End
	}
	p.tree.Node(arr).Span = span.New(open.Span.Start, end)
	return arr
}
