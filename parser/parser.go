// Package parser implements the per-language recursive-descent parsers
// (C7): token stream + source bytes in, rule-ID-tagged AST out. Each
// language gets its own file; this file holds the shared contract
// (Options, dispatch, error recovery, comment attachment) every one of
// them is built on.
package parser

import (
	"fmt"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/fact"
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/span"
	"github.com/zztool/zz/token"
)

// Options configures dialect-level parsing behavior.
type Options struct {
	// JSON5 lets a JSON object key be a bare identifier. Comments,
	// trailing commas, and single-quoted strings are accepted whether or
	// not JSON5 is set; strict mode reports none of them as errors.
	JSON5 bool
}

// Parse builds an AST for src under lang, consuming toks. It never
// returns an error: unrecoverable conditions are represented as error
// nodes plus has_error facts in store (spec §4.5's "never abort on
// recoverable input"); store may be nil if the caller doesn't need facts
// recorded during parsing itself (the structural scanner records its own
// boundary facts independently).
func Parse(lang rule.Language, toks *token.Stream, src []byte, opts Options, store *fact.Store) *ast.AST {
	tree := ast.New(lang, src)
	p := &parser{
		toks:  toks,
		cur:   token.NewCursor(toks),
		tree:  tree,
		src:   src,
		opts:  opts,
		store: store,
	}

	var root ast.Ptr
	switch lang {
	case rule.LangJSON:
		root = p.parseJSONDocument()
	case rule.LangZON:
		root = p.parseZONDocument()
	case rule.LangCSS:
		root = p.parseCSSDocument()
	case rule.LangHTML:
		root = p.parseHTMLDocument()
	case rule.LangTypeScript:
		root = p.parseTSDocument()
	case rule.LangZig:
		root = p.parseZigDocument()
	case rule.LangSvelte:
		root = p.parseSvelteDocument()
	default:
		root = tree.NewNode(rule.ErrorNode, span.New(0, uint32(len(src))))
		p.errorAt(tree.Node(root).Span, "unsupported language")
	}

	tree.SetRoot(root)
	return tree
}

// parser holds the mutable state shared by every language's descent.
type parser struct {
	toks  *token.Stream
	cur   *token.Cursor
	tree  *ast.AST
	src   []byte
	opts  Options
	store *fact.Store
}

// errorAt records a recovered syntax error both on the AST (for callers
// with no fact store handy) and, if present, in the fact store.
func (p *parser) errorAt(sp span.Span, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.tree.Diagnostics = append(p.tree.Diagnostics, ast.Diagnostic{Span: sp, Message: msg})
	if p.store != nil {
		p.store.Append(fact.Fact{
			Subject:    span.Pack(sp),
			Predicate:  fact.HasError,
			Confidence: fact.Certain,
		})
	}
}

// errorNode builds an error-node covering the current token and advances
// past it, implementing the "emit error node, resync to follow set" half
// of spec §4.5's recovery algorithm. followKinds is the set of token
// kinds considered safe to resume at; the caller still needs to re-check
// AtEOF after calling this.
func (p *parser) errorNode(msg string, followKinds ...token.Kind) ast.Ptr {
	bad := p.cur.Peek(false)
	start := bad.Span.Start
	p.errorAt(bad.Span, "%s", msg)

	if !p.cur.AtEOF() {
		p.cur.Next()
	}
	end := bad.Span.End
	if mark := p.cur.Mark(); mark > 0 && mark <= len(p.toks.Tokens) {
		end = p.toks.Tokens[mark-1].Span.End
	}
	p.cur.SkipTo(followKinds...)

	return p.tree.NewNode(rule.ErrorNode, span.New(start, end))
}

// expectPunct consumes the next token if it is a Punct token whose single
// byte matches b. Otherwise it consumes nothing and records no error; ok
// is false and the caller decides how to recover. followKinds is not
// used.
func (p *parser) expectPunct(b byte, followKinds ...token.Kind) (tok token.Token, ok bool) {
	t := p.cur.Peek(false)
	if t.Kind == token.Punct && t.Span.Len() == 1 && t.Span.Text(p.src)[0] == b {
		return p.cur.Next(), true
	}
	return token.Token{}, false
}

// punctIs reports whether the next significant token is a single-byte
// Punct token matching b, without consuming it.
func (p *parser) punctIs(b byte) bool {
	t := p.cur.Peek(false)
	return t.Kind == token.Punct && t.Span.Len() == 1 && t.Span.Text(p.src)[0] == b
}

// keywordIs reports whether the next significant token is an Ident or
// Keyword token whose text equals s.
func (p *parser) keywordIs(s string) bool {
	t := p.cur.Peek(false)
	if t.Kind != token.Ident && t.Kind != token.Keyword {
		return false
	}
	return string(t.Text(p.src)) == s
}

// leadingComments scans the raw token stream (including skippable
// tokens) between prevEnd and the current cursor position for comment
// tokens, and returns one AST comment node per comment found. Used to
// attach doc comments to the declaration that follows them, since the
// Cursor otherwise skips comments silently (spec §4.7 "docs" flag needs
// them as real nodes).
func (p *parser) leadingComments(raw []token.Token) []ast.Ptr {
	var out []ast.Ptr
	for _, t := range raw {
		if t.Kind != token.Comment {
			continue
		}
		ruleID := rule.LineComment
		switch t.Sub {
		case token.SubCommentBlock:
			ruleID = rule.BlockComment
		case token.SubCommentDoc:
			ruleID = rule.DocComment
		case token.SubCommentContainer:
			ruleID = rule.ContainerComment
		}
		n := p.tree.NewNode(ruleID, t.Span)
		p.tree.Node(n).Sub = t.Sub
		out = append(out, n)
	}
	return out
}

// tokensBetween returns the raw (unfiltered) tokens of the cursor's
// stream lying in [fromPos, toPos), used alongside leadingComments.
func tokensBetween(toks *token.Stream, fromPos, toPos int) []token.Token {
	if fromPos < 0 {
		fromPos = 0
	}
	if toPos > len(toks.Tokens) {
		toPos = len(toks.Tokens)
	}
	if fromPos >= toPos {
		return nil
	}
	return toks.Tokens[fromPos:toPos]
}
