package lint

import (
	"bytes"
	"fmt"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
)

func init() {
	register(Rule{
		ID: RuleDuplicateObjectKey, Name: "duplicate-object-key", Language: rule.LangJSON,
		DefaultSeverity: SeverityWarning, DefaultEnabled: true,
		Check: checkDuplicateObjectKey,
	})
	register(Rule{
		ID: RuleInvalidUTF8Escape, Name: "invalid-utf8-escape", Language: rule.LangNone,
		DefaultSeverity: SeverityError, DefaultEnabled: true,
		Check: checkInvalidUTF8Escape,
	})
	register(Rule{
		ID: RuleJSON5FeatureInStrictMode, Name: "json5-feature-in-strict-mode", Language: rule.LangJSON,
		DefaultSeverity: SeverityWarning, DefaultEnabled: false,
		Check: checkJSON5FeatureInStrictMode,
	})
}

func checkDuplicateObjectKey(tree *ast.AST) []Diagnostic {
	var out []Diagnostic
	walk(tree, func(n *ast.Node, p ast.Ptr) {
		if n.Rule != rule.JSONObject {
			return
		}
		seen := map[string]bool{}
		for _, c := range n.Children {
			cn := tree.Node(c)
			if cn.Rule != rule.JSONField || len(cn.Children) == 0 {
				continue
			}
			key := tree.Node(cn.Children[0])
			name := string(bytes.Trim(key.Span.Text(tree.Source), `"'`))
			if seen[name] {
				out = append(out, Diagnostic{
					RuleID: RuleDuplicateObjectKey, Name: "duplicate-object-key",
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("duplicate key %q", name),
					Span:     cn.Span,
				})
			}
			seen[name] = true
		}
	})
	return out
}

// checkInvalidUTF8Escape flags a `\u` escape in a JSON/ZON string literal
// that isn't followed by exactly four hex digits.
func checkInvalidUTF8Escape(tree *ast.AST) []Diagnostic {
	var out []Diagnostic
	walk(tree, func(n *ast.Node, p ast.Ptr) {
		if n.Rule != rule.JSONString && n.Rule != rule.ZONString {
			return
		}
		text := n.Span.Text(tree.Source)
		for i := 0; i < len(text)-1; i++ {
			if text[i] != '\\' || text[i+1] != 'u' {
				continue
			}
			if i+6 > len(text) || !isHex4(text[i+2 : i+6]) {
				out = append(out, Diagnostic{
					RuleID: RuleInvalidUTF8Escape, Name: "invalid-utf8-escape",
					Severity: SeverityError,
					Message:  "invalid \\u escape: expected four hex digits",
					Span:     n.Span,
				})
			}
			i++ // skip the 'u'
		}
	})
	return out
}

func isHex4(b []byte) bool {
	if len(b) != 4 {
		return false
	}
	for _, c := range b {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// checkJSON5FeatureInStrictMode flags comments and trailing commas inside
// a JSON document — legal only under JSON5 parsing, and otherwise a sign
// that a file declared as strict JSON actually relies on JSON5 leniency.
// Opt-in: the caller only enables this when it knows the file is meant to
// be strict (spec's JSON5-vs-strict distinction isn't itself recorded on
// the AST).
func checkJSON5FeatureInStrictMode(tree *ast.AST) []Diagnostic {
	var out []Diagnostic
	walk(tree, func(n *ast.Node, p ast.Ptr) {
		cat, ok := categoryOf(n)
		if ok && cat == rule.CategoryComment {
			out = append(out, Diagnostic{
				RuleID: RuleJSON5FeatureInStrictMode, Name: "json5-feature-in-strict-mode",
				Severity: SeverityWarning, Message: "comments are a JSON5 feature", Span: n.Span,
			})
		}
		if n.Rule != rule.JSONObject && n.Rule != rule.JSONArray {
			return
		}
		if hasTrailingComma(tree, n) {
			out = append(out, Diagnostic{
				RuleID: RuleJSON5FeatureInStrictMode, Name: "json5-feature-in-strict-mode",
				Severity: SeverityWarning, Message: "trailing comma is a JSON5 feature", Span: n.Span,
			})
		}
	})
	return out
}

func hasTrailingComma(tree *ast.AST, n *ast.Node) bool {
	text := n.Span.Text(tree.Source)
	if len(text) < 2 {
		return false
	}
	inner := bytes.TrimRight(text[:len(text)-1], " \t\r\n")
	return len(inner) > 0 && inner[len(inner)-1] == ','
}
