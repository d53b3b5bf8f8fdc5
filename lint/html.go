package lint

import (
	"fmt"
	"strings"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
)

// knownHTMLTags is a common-subset allowlist; anything else not shaped
// like a custom element (containing a hyphen, per the Custom Elements
// convention) is flagged by unknown-tag.
var knownHTMLTags = map[string]bool{
	"html": true, "head": true, "body": true, "title": true, "meta": true,
	"link": true, "style": true, "script": true, "noscript": true,
	"div": true, "span": true, "p": true, "a": true, "img": true, "br": true,
	"hr": true, "ul": true, "ol": true, "li": true, "table": true, "tr": true,
	"td": true, "th": true, "thead": true, "tbody": true, "tfoot": true,
	"form": true, "input": true, "button": true, "label": true, "select": true,
	"option": true, "textarea": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "footer": true,
	"nav": true, "main": true, "section": true, "article": true, "aside": true,
	"em": true, "strong": true, "code": true, "pre": true, "blockquote": true,
	"figure": true, "figcaption": true, "video": true, "audio": true,
	"source": true, "canvas": true, "svg": true, "path": true, "iframe": true,
	"template": true, "slot": true, "b": true, "i": true, "u": true,
	"small": true, "sub": true, "sup": true, "dl": true, "dt": true, "dd": true,
}

func init() {
	register(Rule{
		ID: RuleUnknownTag, Name: "unknown-tag", Language: rule.LangHTML,
		DefaultSeverity: SeverityWarning, DefaultEnabled: true,
		Check: checkUnknownTag,
	})
}

func checkUnknownTag(tree *ast.AST) []Diagnostic {
	var out []Diagnostic
	walk(tree, func(n *ast.Node, p ast.Ptr) {
		if n.Rule != rule.HTMLElement && n.Rule != rule.HTMLVoidElement {
			return
		}
		name := strings.ToLower(tagName(tree, n))
		if name == "" || strings.Contains(name, "-") {
			return // custom elements are never "unknown"
		}
		if !knownHTMLTags[name] {
			out = append(out, Diagnostic{
				RuleID: RuleUnknownTag, Name: "unknown-tag",
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("unknown HTML tag %q", name),
				Span:     n.Span,
			})
		}
	})
	return out
}

func tagName(tree *ast.AST, n *ast.Node) string {
	text := n.Span.Text(tree.Source)
	if len(text) == 0 || text[0] != '<' {
		return ""
	}
	i := 1
	for i < len(text) {
		c := text[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '>' || c == '/' {
			break
		}
		i++
	}
	return string(text[1:i])
}
