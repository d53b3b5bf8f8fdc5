package parser

import (
	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/span"
	"github.com/zztool/zz/token"
)

// parseSvelteDocument implements spec §4.5's Svelte decomposition: find
// the top-level <script> and <style> elements (lexed, like the rest of
// the document, with the HTML lexer/rules, since a Svelte file is HTML at
// the token level), hand their contents to the TypeScript and CSS
// sub-parsers respectively, and treat everything else as template markup
// reusing the HTML element parser.
func (p *parser) parseSvelteDocument() ast.Ptr {
	start := p.cur.Peek(false).Span.Start
	doc := p.tree.NewNode(rule.SvelteDocument, span.New(start, start))

	var items []ast.Ptr
	for !p.cur.AtEOF() {
		if p.atSvelteRegionStart("script") {
			items = append(items, p.parseSvelteRegion("script", rule.SvelteScript))
			continue
		}
		if p.atSvelteRegionStart("style") {
			items = append(items, p.parseSvelteRegion("style", rule.SvelteStyle))
			continue
		}
		items = append(items, p.parseSvelteTemplateNode())
	}
	for _, it := range items {
		p.tree.AddChild(doc, it)
	}

	end := start
	if n := len(items); n > 0 {
		end = p.tree.Node(items[n-1]).Span.End
	}
	p.tree.Node(doc).Span = span.New(start, end)
	return doc
}

func (p *parser) atSvelteRegionStart(tag string) bool {
	if !p.punctIs('<') {
		return false
	}
	mark := p.cur.Mark()
	defer p.cur.Reset(mark)
	p.cur.Next() // '<'
	t := p.cur.Peek(false)
	return t.Kind == token.Ident && string(t.Text(p.src)) == tag
}

// parseSvelteRegion consumes `<tag ...attrs...> body </tag>`, reusing the
// HTML attribute parser for the opening tag and re-lexing body with the
// language the tag implies (TypeScript for <script>, CSS for <style>),
// then handing the re-lexed stream to that language's own parser.
func (p *parser) parseSvelteRegion(tag string, regionRule rule.ID) ast.Ptr {
	open := p.cur.Next() // '<'
	p.cur.Next()          // tag name

	for !p.cur.AtEOF() && !p.punctIs('>') {
		p.parseHTMLAttribute()
	}
	if _, ok := p.expectPunct('>'); !ok && !p.cur.AtEOF() {
		p.cur.Next()
	}

	bodyStart := p.cur.Peek(false).Span.Start
	bodyEnd := bodyStart
	for !p.cur.AtEOF() && !p.atHTMLClosingTagNamed(tag) {
		t := p.cur.Next()
		bodyEnd = t.Span.End
	}

	region := p.tree.NewNode(regionRule, span.New(open.Span.Start, bodyEnd))
	if bodyEnd > bodyStart {
		sub := subParserLanguage(tag)
		subTokens := lexer.Tokenize(sub, p.src[bodyStart:bodyEnd])
		offsetTokens(subTokens, bodyStart)
		subTree := Parse(sub, subTokens, p.src, p.opts, p.store)
		if !subTree.Root().Nil() {
			// Graft the sub-document's own children directly under the
			// region, rather than the sub-document node itself: the
			// SvelteScript/SvelteStyle node already plays that role.
			for _, child := range subTree.Node(subTree.Root()).Children {
				p.tree.AddChild(region, graftNode(p.tree, subTree, child))
			}
		}
		p.tree.Diagnostics = append(p.tree.Diagnostics, subTree.Diagnostics...)
	}

	end := bodyEnd
	if p.atHTMLClosingTagNamed(tag) {
		end = p.consumeHTMLClosingTag(tag, bodyEnd)
	}
	p.tree.Node(region).Span = span.New(open.Span.Start, end)
	return region
}

func subParserLanguage(tag string) rule.Language {
	if tag == "style" {
		return rule.LangCSS
	}
	return rule.LangTypeScript
}

// offsetTokens shifts every token's span by delta, since the sub-lexer ran
// over an isolated slice starting at offset 0.
func offsetTokens(s *token.Stream, delta uint32) {
	for i := range s.Tokens {
		sp := s.Tokens[i].Span
		s.Tokens[i].Span = span.New(sp.Start+delta, sp.End+delta)
	}
}

// graftNode deep-copies the subtree rooted at p (owned by sub's arena)
// into parent's arena, since an arena.Pointer is only valid against the
// arena that allocated it. Returns the corresponding pointer in parent.
func graftNode(parent, sub *ast.AST, p ast.Ptr) ast.Ptr {
	n := sub.Node(p)
	copied := parent.NewNode(n.Rule, n.Span)
	cn := parent.Node(copied)
	cn.Sub = n.Sub
	cn.Payload = n.Payload
	for _, child := range n.Children {
		parent.AddChild(copied, graftNode(parent, sub, child))
	}
	return copied
}

func (p *parser) parseSvelteTemplateNode() ast.Ptr {
	if p.punctIs('<') {
		el := p.parseHTMLElement()
		wrapped := p.tree.NewNode(rule.SvelteTemplate, p.tree.Node(el).Span)
		p.tree.AddChild(wrapped, el)
		return wrapped
	}
	text := p.parseHTMLText()
	wrapped := p.tree.NewNode(rule.SvelteTemplate, p.tree.Node(text).Span)
	p.tree.AddChild(wrapped, text)
	return wrapped
}
