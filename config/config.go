// Package config loads zz.zon (spec §6) by dogfooding the engine's own
// ZON lexer and parser (C2/C7) instead of a standalone config format
// library. A missing file or a parse error both fall back to built-in
// defaults per spec §7's "Config — missing"/"Config — malformed" rows;
// the latter also produces a report.Diagnostic warning for the caller
// to surface.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/parser"
	"github.com/zztool/zz/report"
	"github.com/zztool/zz/rule"
)

// SymlinkBehavior is the `symlink_behavior` config key.
type SymlinkBehavior int

const (
	SymlinkSkip SymlinkBehavior = iota
	SymlinkFollow
	SymlinkReport
)

func (s SymlinkBehavior) String() string {
	switch s {
	case SymlinkFollow:
		return "follow"
	case SymlinkReport:
		return "report"
	default:
		return "skip"
	}
}

// Config holds the recognized zz.zon keys (spec §6).
type Config struct {
	// BasePatterns is the set of source-file glob patterns selected by
	// the base_patterns key. ExtendBase reports whether this list
	// extends the built-in defaults ("extend") or replaces them
	// entirely (an explicit .{ ... } list). The cmd/zz tree walker and
	// glob expansion do not read either field.
	BasePatterns []string
	ExtendBase   bool

	IgnoredPatterns  []string
	HiddenFiles      []string
	RespectGitignore bool
	SymlinkBehavior  SymlinkBehavior
}

// defaultBasePatterns covers the seven languages in scope (spec §2).
var defaultBasePatterns = []string{
	"**/*.json", "**/*.zon", "**/*.ts", "**/*.tsx",
	"**/*.css", "**/*.html", "**/*.svelte", "**/*.zig",
}

var defaultHiddenFiles = []string{
	".git", ".DS_Store", "node_modules", ".svelte-kit", "zig-cache", "zig-out",
}

// Default returns the built-in configuration used when zz.zon is absent
// or malformed.
func Default() Config {
	return Config{
		BasePatterns:     append([]string(nil), defaultBasePatterns...),
		ExtendBase:       true,
		IgnoredPatterns:  nil,
		HiddenFiles:      append([]string(nil), defaultHiddenFiles...),
		RespectGitignore: true,
		SymlinkBehavior:  SymlinkSkip,
	}
}

// Load reads and parses path. If the file doesn't exist, Default() is
// returned with no diagnostics. Any other read or parse failure also
// falls back to Default(), accompanied by a single warning diagnostic.
func Load(path string) (Config, []report.Diagnostic) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), []report.Diagnostic{{
			Level:   report.LevelWarning,
			Message: fmt.Sprintf("reading %s: %v; using defaults", path, err),
			Path:    path,
		}}
	}
	return Parse(path, data)
}

// Parse decodes src (the contents of a zz.zon file) into a Config,
// merging recognized keys onto Default() and leaving the rest at their
// default values. A parse error anywhere in src discards the whole file
// and returns Default() plus a warning, matching spec §7's "malformed
// config" policy rather than attempting partial recovery of a broken
// document.
func Parse(path string, src []byte) (Config, []report.Diagnostic) {
	toks := lexer.Tokenize(rule.LangZON, src)
	tree := parser.Parse(rule.LangZON, toks, src, parser.Options{}, nil)

	if len(tree.Diagnostics) > 0 {
		return Default(), []report.Diagnostic{{
			Level:   report.LevelWarning,
			Message: fmt.Sprintf("%s: %s; using defaults", path, tree.Diagnostics[0].Message),
			Path:    path,
			Span:    tree.Diagnostics[0].Span,
		}}
	}

	root, ok := topLevelStruct(tree)
	if !ok {
		return Default(), []report.Diagnostic{{
			Level:   report.LevelWarning,
			Message: path + ": expected a top-level .{ ... } struct; using defaults",
			Path:    path,
		}}
	}

	cfg := Default()
	var diags []report.Diagnostic
	for _, field := range structFields(tree, root) {
		key, ok := fieldKey(tree, field)
		if !ok {
			continue
		}
		val, ok := fieldValue(tree, field)
		if !ok {
			continue
		}
		if d, ok := applyKey(tree, &cfg, key, val); !ok {
			diags = append(diags, report.Diagnostic{
				Level:   report.LevelWarning,
				Message: fmt.Sprintf("%s: %s", path, d),
				Path:    path,
			})
		}
	}
	return cfg, diags
}

// applyKey sets the field of cfg named by key from val, reporting an
// error message (and ok=false) for a recognized key with the wrong
// shape. Unrecognized keys are silently ignored, matching the original
// tool's forward-compatible config handling (new keys don't break old
// binaries).
func applyKey(tree *ast.AST, cfg *Config, key string, val ast.Ptr) (string, bool) {
	switch key {
	case "base_patterns":
		if s, ok := stringValue(tree, val); ok && s == "extend" {
			cfg.ExtendBase = true
			return "", true
		}
		if list, ok := stringListValue(tree, val); ok {
			cfg.BasePatterns = list
			cfg.ExtendBase = false
			return "", true
		}
		return "base_patterns: expected \"extend\" or an explicit list", false
	case "ignored_patterns":
		list, ok := stringListValue(tree, val)
		if !ok {
			return "ignored_patterns: expected a list of strings", false
		}
		cfg.IgnoredPatterns = list
		return "", true
	case "hidden_files":
		list, ok := stringListValue(tree, val)
		if !ok {
			return "hidden_files: expected a list of strings", false
		}
		cfg.HiddenFiles = list
		return "", true
	case "respect_gitignore":
		b, ok := boolValue(tree, val)
		if !ok {
			return "respect_gitignore: expected true or false", false
		}
		cfg.RespectGitignore = b
		return "", true
	case "symlink_behavior":
		name, ok := enumValue(tree, val)
		if !ok {
			return "symlink_behavior: expected .skip, .follow, or .report", false
		}
		switch name {
		case "skip":
			cfg.SymlinkBehavior = SymlinkSkip
		case "follow":
			cfg.SymlinkBehavior = SymlinkFollow
		case "report":
			cfg.SymlinkBehavior = SymlinkReport
		default:
			return "symlink_behavior: unknown value ." + name, false
		}
		return "", true
	default:
		return "", true
	}
}
