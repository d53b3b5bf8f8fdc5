package main

import (
	"path/filepath"
	"strings"

	"github.com/zztool/zz/rule"
)

// languageForPath maps a file extension to the language it should be
// parsed as, returning ok=false for extensions outside the seven
// languages in scope (spec §2).
func languageForPath(path string) (rule.Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return rule.LangJSON, true
	case ".zon":
		return rule.LangZON, true
	case ".css":
		return rule.LangCSS, true
	case ".html", ".htm":
		return rule.LangHTML, true
	case ".ts", ".tsx":
		return rule.LangTypeScript, true
	case ".zig":
		return rule.LangZig, true
	case ".svelte":
		return rule.LangSvelte, true
	default:
		return rule.LangNone, false
	}
}
