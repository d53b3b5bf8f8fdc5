// Package lint implements the rule-driven diagnostics pass (C12): a
// registry of per-language and common rules, each a pure function over
// an AST that appends Diagnostics. Lint sorts its output by span start
// and then rule name, so two runs over the same tree always agree (spec
// §8's "linter purity" property).
package lint

import (
	"sort"

	"golang.org/x/exp/slices"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/query"
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/span"
)

// Severity is a diagnostic's default weight, mirroring report.Level
// without importing it: lint runs over a bare AST and has no file path
// or source-line context to build a report.Diagnostic with, so callers
// (the CLI) translate Diagnostic into report.Diagnostic themselves.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Edit is a suggested fix a rule may attach to a Diagnostic.
type Edit struct {
	Range       span.Span
	Replacement []byte
}

// Diagnostic is one finding.
type Diagnostic struct {
	RuleID   rule.ID // the id of the *lint* rule that produced this, not a grammar rule
	Name     string
	Severity Severity
	Message  string
	Span     span.Span
	Fix      *Edit
}

// Rule is one lint check: a stable ID/name, a default severity and
// enabled state, and the language(s) it applies to (LangNone means
// "every language").
type Rule struct {
	ID             rule.ID
	Name           string
	Language       rule.Language
	DefaultSeverity Severity
	DefaultEnabled bool
	Check          func(tree *ast.AST) []Diagnostic
}

var registry []Rule

func register(r Rule) {
	for _, existing := range registry {
		if existing.ID == r.ID {
			panic("lint: duplicate rule id " + r.Name)
		}
	}
	registry = append(registry, r)
}

// Rules returns every registered rule, sorted by name. Registration
// order follows each language file's init(), which Go only guarantees
// is consistent within a single build, not a stable contract callers
// (e.g. a `--list-rules` CLI flag) should depend on.
func Rules() []Rule {
	out := make([]Rule, len(registry))
	copy(out, registry)
	slices.SortFunc(out, func(a, b Rule) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Options selects which rules run. A nil Enabled map means "use each
// rule's DefaultEnabled".
type Options struct {
	Enabled map[string]bool
}

func (o Options) enabled(r Rule) bool {
	if o.Enabled == nil {
		return r.DefaultEnabled
	}
	if v, ok := o.Enabled[r.Name]; ok {
		return v
	}
	return r.DefaultEnabled
}

// Lint runs every enabled rule applicable to tree.Lang over tree,
// returning diagnostics sorted by (span start, rule name) for
// deterministic output.
func Lint(tree *ast.AST, opts Options) []Diagnostic {
	var out []Diagnostic
	for _, r := range registry {
		if r.Language != rule.LangNone && r.Language != tree.Lang {
			continue
		}
		if !opts.enabled(r) {
			continue
		}
		out = append(out, r.Check(tree)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Span.Start != out[j].Span.Start {
			return out[i].Span.Start < out[j].Span.Start
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// walk is the shared helper every Check function uses to visit every
// node of a category, via the traversal API (C9) rather than a bespoke
// recursive walk per rule.
func walk(tree *ast.AST, visit func(*ast.Node, ast.Ptr)) {
	if tree.Root().Nil() {
		return
	}
	query.Walk(tree, tree.Root(), func(t *ast.AST, p ast.Ptr) query.Continuation {
		visit(t.Node(p), p)
		return query.Descend
	})
}

func categoryOf(n *ast.Node) (rule.Category, bool) {
	info, ok := rule.Lookup(n.Rule)
	if !ok {
		return 0, false
	}
	return info.Category, true
}
