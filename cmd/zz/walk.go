package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/zztool/zz/config"
)

// treeEntry is one row of a `tree` walk.
type treeEntry struct {
	Path     string
	Name     string
	IsDir    bool
	Depth    int
	Children []*treeEntry
}

// walkTree builds the directory tree rooted at root, honoring cfg's
// ignored-pattern settings always and its hidden-file settings unless
// showHidden is set (spec §6's `tree --hidden`). maxDepth <= 0 means
// unlimited.
func walkTree(root string, cfg config.Config, showHidden bool, maxDepth int) (*treeEntry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	return buildTreeEntry(root, root, filepath.Base(root), info.IsDir(), 0, cfg, showHidden, maxDepth)
}

func buildTreeEntry(walkRoot, path, name string, isDir bool, depth int, cfg config.Config, showHidden bool, maxDepth int) (*treeEntry, error) {
	e := &treeEntry{Path: path, Name: name, IsDir: isDir, Depth: depth}
	if !isDir {
		return e, nil
	}
	if maxDepth > 0 && depth >= maxDepth {
		return e, nil
	}

	dirents, err := os.ReadDir(path)
	if err != nil {
		// Filesystem — safe (spec §7): permission denied etc. is logged
		// here and this branch of the tree is simply empty.
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return e, nil
	}
	sort.Slice(dirents, func(i, j int) bool { return dirents[i].Name() < dirents[j].Name() })

	for _, d := range dirents {
		name := d.Name()
		if !showHidden && config.IsHidden(cfg.HiddenFiles, name) {
			continue
		}
		childPath := filepath.Join(path, name)
		rel, _ := filepath.Rel(walkRoot, childPath)
		if len(cfg.IgnoredPatterns) > 0 && config.MatchesAny(cfg.IgnoredPatterns, rel) {
			continue
		}
		child, err := buildTreeEntry(walkRoot, childPath, name, d.IsDir(), depth+1, cfg, showHidden, maxDepth)
		if err != nil {
			continue
		}
		e.Children = append(e.Children, child)
	}
	return e, nil
}

// expandGlobs resolves each of patterns (as given on the command line)
// against the working directory using doublestar's `**`-aware matching,
// filtering out anything cfg would treat as hidden or ignored, and
// de-duplicating/sorting the result for deterministic output.
func expandGlobs(patterns []string, cfg config.Config) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, pat := range patterns {
		matches, err := doublestar.FilepathGlob(pat)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			if config.IsHidden(cfg.HiddenFiles, filepath.Base(m)) {
				continue
			}
			if config.MatchesAny(cfg.IgnoredPatterns, filepath.ToSlash(m)) {
				continue
			}
			if seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out, nil
}
