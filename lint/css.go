package lint

import (
	"bytes"
	"fmt"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
)

// knownAtRules is the common CSS at-rule vocabulary; anything else is
// flagged by invalid-at-rule. Vendor/experimental at-rules aren't in
// scope (spec §1's non-goals exclude a full CSS grammar).
var knownAtRules = map[string]bool{
	"@import": true, "@media": true, "@keyframes": true, "@supports": true,
	"@font-face": true, "@charset": true, "@page": true, "@namespace": true,
	"@document": true, "@layer": true, "@container": true, "@property": true,
	"@font-feature-values": true, "@counter-style": true,
}

func init() {
	register(Rule{
		ID: RuleInvalidAtRule, Name: "invalid-at-rule", Language: rule.LangCSS,
		DefaultSeverity: SeverityWarning, DefaultEnabled: true,
		Check: checkInvalidAtRule,
	})
	register(Rule{
		ID: RuleNestedAtRuleDepth, Name: "nested-at-rule-depth", Language: rule.LangCSS,
		DefaultSeverity: SeverityWarning, DefaultEnabled: false,
		Check: checkNestedAtRuleDepth,
	})
}

func checkInvalidAtRule(tree *ast.AST) []Diagnostic {
	var out []Diagnostic
	walk(tree, func(n *ast.Node, p ast.Ptr) {
		if n.Rule != rule.CSSAtRule {
			return
		}
		name := atRuleName(tree, n)
		if name != "" && !knownAtRules[name] {
			out = append(out, Diagnostic{
				RuleID: RuleInvalidAtRule, Name: "invalid-at-rule",
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("unrecognized at-rule %q", name),
				Span:     n.Span,
			})
		}
	})
	return out
}

// checkNestedAtRuleDepth flags every at-rule (of any name) nested inside
// another at-rule, the supplemented rule noted in the expanded
// specification: deeply nested at-rules are legal CSS but rarely
// intentional.
func checkNestedAtRuleDepth(tree *ast.AST) []Diagnostic {
	var out []Diagnostic
	var visit func(p ast.Ptr, atDepth int)
	visit = func(p ast.Ptr, atDepth int) {
		n := tree.Node(p)
		switch n.Rule {
		case rule.CSSAtRule:
			atDepth++
			if atDepth > 1 {
				out = append(out, Diagnostic{
					RuleID: RuleNestedAtRuleDepth, Name: "nested-at-rule-depth",
					Severity: SeverityWarning,
					Message:  "at-rule nested more than one level deep",
					Span:     n.Span,
				})
			}
		}
		for _, c := range n.Children {
			visit(c, atDepth)
		}
	}
	if !tree.Root().Nil() {
		visit(tree.Root(), 0)
	}
	return out
}

func atRuleName(tree *ast.AST, n *ast.Node) string {
	text := n.Span.Text(tree.Source)
	end := bytes.IndexAny(text, " \t\r\n{;")
	if end < 0 {
		end = len(text)
	}
	return string(text[:end])
}
