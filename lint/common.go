package lint

import (
	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
)

// Lint rule IDs. These are a separate 16-bit namespace from grammar rule
// IDs (rule.ID is reused only for its width/type, per spec §3's
// Diagnostic.rule_id) — a lint rule ID never appears in rule.table.
const (
	RuleMismatchedBracket rule.ID = iota + 1
	RuleMissingFieldValue
	RuleDuplicateObjectKey
	RuleInvalidUTF8Escape
	RuleInvalidAtRule
	RuleUnknownTag
	RuleEmptyScriptStyleSection
	RuleJSON5FeatureInStrictMode
	RuleNestedAtRuleDepth
)

func init() {
	register(Rule{
		ID: RuleMismatchedBracket, Name: "mismatched-bracket", Language: rule.LangNone,
		DefaultSeverity: SeverityError, DefaultEnabled: true,
		Check: checkMismatchedBracket,
	})
	register(Rule{
		ID: RuleMissingFieldValue, Name: "missing-field-value", Language: rule.LangNone,
		DefaultSeverity: SeverityError, DefaultEnabled: true,
		Check: checkMissingFieldValue,
	})
}

// checkMismatchedBracket surfaces every parser-recorded diagnostic
// (structural-scanner/parser recovery, spec §4.2's healing policy) as a
// lint finding, since those already carry the exact offending span.
func checkMismatchedBracket(tree *ast.AST) []Diagnostic {
	var out []Diagnostic
	for _, d := range tree.Diagnostics {
		out = append(out, Diagnostic{
			RuleID: RuleMismatchedBracket, Name: "mismatched-bracket",
			Severity: SeverityError, Message: d.Message, Span: d.Span,
		})
	}
	return out
}

// checkMissingFieldValue flags a field node (json.field / zon.field_assignment
// / css.declaration / html.attribute) whose value child is an error node,
// meaning the parser recovered from a missing value.
func checkMissingFieldValue(tree *ast.AST) []Diagnostic {
	var out []Diagnostic
	walk(tree, func(n *ast.Node, p ast.Ptr) {
		cat, ok := categoryOf(n)
		if !ok || cat != rule.CategoryField {
			return
		}
		if len(n.Children) == 0 {
			return
		}
		val := tree.Node(n.Children[len(n.Children)-1])
		info, ok := rule.Lookup(val.Rule)
		if ok && info.Category == rule.CategoryErrorNode {
			out = append(out, Diagnostic{
				RuleID: RuleMissingFieldValue, Name: "missing-field-value",
				Severity: SeverityError, Message: "field is missing a value", Span: n.Span,
			})
		}
	})
	return out
}
