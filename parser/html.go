package parser

import (
	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/span"
	"github.com/zztool/zz/token"
)

// voidElements never have children or a closing tag (spec §4.5).
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// opaqueBodyElements have their contents captured as a single opaque text
// span rather than re-lexed as HTML (spec §4.5).
var opaqueBodyElements = map[string]bool{"script": true, "style": true}

// parseHTMLDocument implements the HTML grammar from spec §4.5: a
// DOM-like tree of elements and text nodes.
func (p *parser) parseHTMLDocument() ast.Ptr {
	start := p.cur.Peek(false).Span.Start
	doc := p.tree.NewNode(rule.HTMLDocument, span.New(start, start))

	children := p.parseHTMLNodes()
	for _, c := range children {
		p.tree.AddChild(doc, c)
	}

	end := start
	if n := len(children); n > 0 {
		end = p.tree.Node(children[n-1]).Span.End
	}
	p.tree.Node(doc).Span = span.New(start, end)
	return doc
}

// parseHTMLNodes parses a sequence of sibling nodes until EOF or a
// closing tag (</...>) is seen; the closing tag itself is left for the
// caller (parseHTMLElement) to consume.
func (p *parser) parseHTMLNodes() []ast.Ptr {
	var out []ast.Ptr
	for {
		if p.cur.AtEOF() || p.atHTMLClosingTag() {
			return out
		}
		if p.punctIs('<') {
			out = append(out, p.parseHTMLElement())
			continue
		}
		out = append(out, p.parseHTMLText())
	}
}

func (p *parser) atHTMLClosingTag() bool {
	if !p.punctIs('<') {
		return false
	}
	mark := p.cur.Mark()
	defer p.cur.Reset(mark)
	p.cur.Next() // '<'
	return p.punctIs('/')
}

func (p *parser) parseHTMLText() ast.Ptr {
	start := p.cur.Peek(false).Span.Start
	end := start
	for !p.cur.AtEOF() && !p.punctIs('<') {
		t := p.cur.Next()
		end = t.Span.End
	}
	return p.tree.NewNode(rule.HTMLText, span.New(start, end))
}

func (p *parser) parseHTMLElement() ast.Ptr {
	open := p.cur.Next() // '<'
	if p.cur.Peek(false).Kind != token.Ident {
		return p.errorNode("expected a tag name", token.EOF)
	}
	nameTok := p.cur.Next()
	name := string(nameTok.Text(p.src))

	var attrs []ast.Ptr
	for !p.cur.AtEOF() && !p.punctIs('>') && !p.punctIsSlashClose() {
		attrs = append(attrs, p.parseHTMLAttribute())
	}

	selfClosing := p.punctIsSlashClose()
	if selfClosing {
		p.cur.Next() // '/'
	}
	closeAngle, ok := p.expectPunct('>')
	end := open.Span.End
	if ok {
		end = closeAngle.Span.End
	}

	isVoid := voidElements[name]
	ruleID := rule.HTMLElement
	if isVoid {
		ruleID = rule.HTMLVoidElement
	}
	el := p.tree.NewNode(ruleID, span.New(open.Span.Start, end))
	for _, a := range attrs {
		p.tree.AddChild(el, a)
	}

	if isVoid || selfClosing {
		p.tree.Node(el).Span = span.New(open.Span.Start, end)
		return el
	}

	if opaqueBodyElements[name] {
		bodyStart := end
		bodyEnd := bodyStart
		for !p.cur.AtEOF() && !p.atHTMLClosingTagNamed(name) {
			t := p.cur.Next()
			bodyEnd = t.Span.End
		}
		if bodyEnd > bodyStart {
			body := p.tree.NewNode(rule.HTMLOpaqueBody, span.New(bodyStart, bodyEnd))
			p.tree.AddChild(el, body)
		}
	} else {
		for _, c := range p.parseHTMLNodes() {
			p.tree.AddChild(el, c)
		}
	}

	end = p.consumeHTMLClosingTag(name, end)
	p.tree.Node(el).Span = span.New(open.Span.Start, end)
	return el
}

func (p *parser) punctIsSlashClose() bool {
	if !p.punctIs('/') {
		return false
	}
	mark := p.cur.Mark()
	defer p.cur.Reset(mark)
	p.cur.Next()
	return p.punctIs('>')
}

func (p *parser) atHTMLClosingTagNamed(name string) bool {
	if !p.atHTMLClosingTag() {
		return false
	}
	mark := p.cur.Mark()
	defer p.cur.Reset(mark)
	p.cur.Next() // '<'
	p.cur.Next() // '/'
	t := p.cur.Peek(false)
	return t.Kind == token.Ident && string(t.Text(p.src)) == name
}

// consumeHTMLClosingTag consumes a "</name>" sequence if present,
// returning its end offset, or fallback if it isn't there (unterminated
// element; recorded as a recovered error).
func (p *parser) consumeHTMLClosingTag(name string, fallback uint32) uint32 {
	if !p.atHTMLClosingTagNamed(name) {
		p.errorAt(span.New(fallback, fallback), "unclosed <%s> element", name)
		return fallback
	}
	p.cur.Next() // '<'
	p.cur.Next() // '/'
	p.cur.Next() // name
	if close, ok := p.expectPunct('>'); ok {
		return close.Span.End
	}
	return fallback
}

func (p *parser) parseHTMLAttribute() ast.Ptr {
	if p.cur.Peek(false).Kind != token.Ident {
		return p.errorNode("expected an attribute name", token.Punct, token.EOF)
	}
	nameTok := p.cur.Next()
	start := nameTok.Span.Start
	end := nameTok.Span.End

	if p.punctIs('=') {
		p.cur.Next()
		if p.cur.Peek(false).Kind == token.String {
			val := p.cur.Next()
			end = val.Span.End
		}
	}
	return p.tree.NewNode(rule.HTMLAttribute, span.New(start, end))
}
