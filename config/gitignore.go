package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// LoadGitignore reads a .gitignore-style file at path, returning its
// non-blank, non-comment pattern lines in order. A missing file returns
// an empty list rather than an error, mirroring `respect_gitignore`'s
// "absent means no additional exclusions" behavior.
func LoadGitignore(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// MatchesAny reports whether relPath matches any of patterns, using
// doublestar's `**`-aware glob semantics (spec §6's gitignore-like
// ignored_patterns). Patterns without a path separator match against the
// base name alone, the same shorthand .gitignore itself uses for a
// pattern like "*.log".
func MatchesAny(patterns []string, relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	base := filepath.Base(relPath)
	for _, pat := range patterns {
		if !strings.Contains(pat, "/") {
			if ok, _ := doublestar.Match(pat, base); ok {
				return true
			}
			continue
		}
		if ok, _ := doublestar.Match(pat, relPath); ok {
			return true
		}
	}
	return false
}

// IsHidden reports whether base (a file or directory basename) is in the
// hidden_files list or starts with a dot, matching common directory
// walkers' default "hidden" definition.
func IsHidden(hiddenFiles []string, base string) bool {
	if strings.HasPrefix(base, ".") {
		return true
	}
	for _, h := range hiddenFiles {
		if h == base {
			return true
		}
	}
	return false
}
