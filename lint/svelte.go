package lint

import (
	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
)

func init() {
	register(Rule{
		ID: RuleEmptyScriptStyleSection, Name: "empty-script-style-section", Language: rule.LangSvelte,
		DefaultSeverity: SeverityInfo, DefaultEnabled: true,
		Check: checkEmptyScriptStyleSection,
	})
}

func checkEmptyScriptStyleSection(tree *ast.AST) []Diagnostic {
	var out []Diagnostic
	walk(tree, func(n *ast.Node, p ast.Ptr) {
		if n.Rule != rule.SvelteScript && n.Rule != rule.SvelteStyle {
			return
		}
		if len(n.Children) != 0 {
			return
		}
		name := "script"
		if n.Rule == rule.SvelteStyle {
			name = "style"
		}
		out = append(out, Diagnostic{
			RuleID: RuleEmptyScriptStyleSection, Name: "empty-script-style-section",
			Severity: SeverityInfo,
			Message:  "<" + name + "> section is empty",
			Span:     n.Span,
		})
	})
	return out
}
