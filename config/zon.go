package config

import (
	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/rule"
)

// topLevelStruct finds the document's top-level .{ ... } struct, the
// only shape zz.zon's root is expected to take.
func topLevelStruct(tree *ast.AST) (ast.Ptr, bool) {
	root := tree.Root()
	if root.Nil() {
		return ast.Ptr{}, false
	}
	doc := tree.Node(root)
	if doc.Rule != rule.ZONDocument || len(doc.Children) == 0 {
		return ast.Ptr{}, false
	}
	first := doc.Children[0]
	if tree.Node(first).Rule != rule.ZONStruct {
		return ast.Ptr{}, false
	}
	return first, true
}

// structFields returns st's ZONField children, skipping comments and any
// positional (non-field) members.
func structFields(tree *ast.AST, st ast.Ptr) []ast.Ptr {
	var out []ast.Ptr
	for _, c := range tree.Node(st).Children {
		if tree.Node(c).Rule == rule.ZONField {
			out = append(out, c)
		}
	}
	return out
}

// fieldKey returns a field's key name with the leading '.' stripped.
func fieldKey(tree *ast.AST, field ast.Ptr) (string, bool) {
	children := tree.Node(field).Children
	if len(children) != 2 {
		return "", false
	}
	key := children[0]
	if tree.Node(key).Rule != rule.ZONKey {
		return "", false
	}
	text := string(tree.Text(key))
	if len(text) < 2 || text[0] != '.' {
		return "", false
	}
	return text[1:], true
}

func fieldValue(tree *ast.AST, field ast.Ptr) (ast.Ptr, bool) {
	children := tree.Node(field).Children
	if len(children) != 2 {
		return ast.Ptr{}, false
	}
	return children[1], true
}

// stringValue decodes a ZONString node's body, stripping the surrounding
// quotes and resolving the handful of escapes zz.zon values plausibly
// use. It does not attempt full JSON-string-escape coverage since config
// values are short identifiers and paths, not arbitrary text.
func stringValue(tree *ast.AST, p ast.Ptr) (string, bool) {
	n := tree.Node(p)
	if n.Rule != rule.ZONString {
		return "", false
	}
	raw := string(tree.Text(p))
	if len(raw) < 2 {
		return "", false
	}
	return unescape(raw[1 : len(raw)-1]), true
}

func unescape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			default:
				out = append(out, s[i])
			}
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

// boolValue reads a ZONBool node's literal value.
func boolValue(tree *ast.AST, p ast.Ptr) (bool, bool) {
	n := tree.Node(p)
	if n.Rule != rule.ZONBool {
		return false, false
	}
	return string(tree.Text(p)) == "true", true
}

// enumValue reads a `.name` ZONEnumLiteral's name, with the leading '.'
// stripped.
func enumValue(tree *ast.AST, p ast.Ptr) (string, bool) {
	n := tree.Node(p)
	if n.Rule != rule.ZONEnumLiteral {
		return "", false
	}
	text := string(tree.Text(p))
	if len(text) < 2 || text[0] != '.' {
		return "", false
	}
	return text[1:], true
}

// stringListValue reads an explicit `.{ "a", "b", ... }` struct literal
// used as an array of strings.
func stringListValue(tree *ast.AST, p ast.Ptr) ([]string, bool) {
	n := tree.Node(p)
	if n.Rule != rule.ZONStruct {
		return nil, false
	}
	var out []string
	for _, c := range n.Children {
		s, ok := stringValue(tree, c)
		if !ok {
			continue
		}
		out = append(out, s)
	}
	return out, true
}
