package parser

import (
	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/span"
	"github.com/zztool/zz/token"
)

// parseTSDocument implements the declarations-level TypeScript grammar
// from spec §4.5: imports/exports, function/class/interface/enum/type
// declarations, and otherwise-opaque top-level statements. Bodies
// (anything in braces) are never descended into; they are captured as a
// single TSBody span.
func (p *parser) parseTSDocument() ast.Ptr {
	start := p.cur.Peek(false).Span.Start
	doc := p.tree.NewNode(rule.TSDocument, span.New(start, start))

	var items []ast.Ptr
	for !p.cur.AtEOF() {
		before := p.cur.Mark()
		item := p.parseTSTopLevelItem()
		for _, c := range p.leadingComments(tokensBetween(p.toks, before, p.cur.Mark())) {
			items = append(items, c)
		}
		items = append(items, item)
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

func (p *parser) parseTSTopLevelItem() ast.Ptr {
	switch {
	case p.keywordIs("import"):
		return p.parseTSSimpleStatement(rule.TSImport, ';')
	case p.keywordIs("export"):
		return p.parseTSExport()
	case p.keywordIs("function"), p.keywordIs("async"):
		return p.parseTSFunctionLike()
	case p.keywordIs("class"):
		return p.parseTSBracedDecl(rule.TSClassDecl)
	case p.keywordIs("interface"):
		return p.parseTSBracedDecl(rule.TSInterfaceDecl)
	case p.keywordIs("enum"):
		return p.parseTSBracedDecl(rule.TSEnumDecl)
	case p.keywordIs("type"):
		return p.parseTSSimpleStatement(rule.TSTypeAlias, ';')
	default:
		return p.parseTSStatement()
	}
}

func (p *parser) parseTSExport() ast.Ptr {
	kw := p.cur.Next() // 'export'
	if p.cur.AtEOF() {
		return p.tree.NewNode(rule.TSExport, kw.Span)
	}
	inner := p.parseTSTopLevelItem()
	ex := p.tree.NewNode(rule.TSExport, span.New(kw.Span.Start, p.tree.Node(inner).Span.End))
	p.tree.AddChild(ex, inner)
	return ex
}

// parseTSFunctionLike handles `function name(...) { ... }` and
// `async function name(...) { ... }`, capturing the body opaquely.
func (p *parser) parseTSFunctionLike() ast.Ptr {
	start := p.cur.Peek(false).Span.Start
	for !p.cur.AtEOF() && !p.punctIs('{') && !p.punctIs(';') {
		p.cur.Next()
	}
	sigEnd := start
	if mark := p.cur.Mark(); mark > 0 {
		sigEnd = p.toks.Tokens[mark-1].Span.End
	}

	fn := p.tree.NewNode(rule.TSFunctionDecl, span.New(start, sigEnd))
	if p.punctIs(';') {
		semi := p.cur.Next()
		p.tree.Node(fn).Span = span.New(start, semi.Span.End)
		return fn
	}
	if p.punctIs('{') {
		bodyEnd := p.skipBalanced('{', '}')
		body := p.tree.NewNode(rule.TSBody, span.New(sigEnd, bodyEnd))
		p.tree.AddChild(fn, body)
		p.tree.Node(fn).Span = span.New(start, bodyEnd)
	}
	return fn
}

// parseTSBracedDecl handles `class/interface/enum Name { ... }`,
// capturing the braced body opaquely.
func (p *parser) parseTSBracedDecl(ruleID rule.ID) ast.Ptr {
	start := p.cur.Peek(false).Span.Start
	for !p.cur.AtEOF() && !p.punctIs('{') && !p.punctIs(';') {
		p.cur.Next()
	}
	sigEnd := start
	if mark := p.cur.Mark(); mark > 0 {
		sigEnd = p.toks.Tokens[mark-1].Span.End
	}

	decl := p.tree.NewNode(ruleID, span.New(start, sigEnd))
	if p.punctIs(';') {
		semi := p.cur.Next()
		p.tree.Node(decl).Span = span.New(start, semi.Span.End)
		return decl
	}
	if p.punctIs('{') {
		bodyEnd := p.skipBalanced('{', '}')
		body := p.tree.NewNode(rule.TSBody, span.New(sigEnd, bodyEnd))
		p.tree.AddChild(decl, body)
		p.tree.Node(decl).Span = span.New(start, bodyEnd)
	}
	return decl
}

// parseTSSimpleStatement consumes tokens up to and including a token
// matching endPunct (or EOF), wrapping them in a node of the given rule.
func (p *parser) parseTSSimpleStatement(ruleID rule.ID, endPunct byte) ast.Ptr {
	start := p.cur.Peek(false).Span.Start
	end := start
	for !p.cur.AtEOF() {
		t := p.cur.Next()
		end = t.Span.End
		if t.Kind == token.Punct && t.Span.Len() == 1 && t.Span.Text(p.src)[0] == endPunct {
			break
		}
	}
	return p.tree.NewNode(ruleID, span.New(start, end))
}

func (p *parser) parseTSStatement() ast.Ptr {
	start := p.cur.Peek(false).Span.Start
	end := start
	for !p.cur.AtEOF() {
		t := p.cur.Next()
		end = t.Span.End
		if t.Kind == token.Punct && t.Span.Len() == 1 {
			b := t.Span.Text(p.src)[0]
			if b == ';' {
				break
			}
			if b == '{' {
				end = p.skipBalancedFrom('{', '}')
				break
			}
		}
	}
	return p.tree.NewNode(rule.TSStatement, span.New(start, end))
}

// skipBalanced consumes tokens starting at (and including) the current
// open-bracket token through its matching close, returning the end
// offset of the close token.
func (p *parser) skipBalanced(open, close byte) uint32 {
	t := p.cur.Next() // consumes the opener
	return p.skipBalancedFromDepth(open, close, 1, t.Span.End)
}

// skipBalancedFrom is like skipBalanced but assumes the opener was
// already consumed by the caller's loop (t itself was the opener).
func (p *parser) skipBalancedFrom(open, close byte) uint32 {
	return p.skipBalancedFromDepth(open, close, 1, 0)
}

func (p *parser) skipBalancedFromDepth(open, close byte, depth int, fallback uint32) uint32 {
	end := fallback
	for depth > 0 && !p.cur.AtEOF() {
		t := p.cur.Next()
		end = t.Span.End
		if t.Kind != token.Punct || t.Span.Len() != 1 {
			continue
		}
		b := t.Span.Text(p.src)[0]
		if b == open {
			depth++
		} else if b == close {
			depth--
		}
	}
	return end
}
