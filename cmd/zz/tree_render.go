package main

import (
	"fmt"
	"io"
	"sort"
)

// renderTreeFormat prints e in the box-drawing connector style (spec §6
// `--format=tree`, the default).
func renderTreeFormat(w io.Writer, e *treeEntry) {
	fmt.Fprintln(w, e.Name)
	renderTreeChildren(w, e, "")
}

func renderTreeChildren(w io.Writer, e *treeEntry, prefix string) {
	for i, c := range e.Children {
		last := i == len(e.Children)-1
		connector := "├── "
		nextPrefix := prefix + "│   "
		if last {
			connector = "└── "
			nextPrefix = prefix + "    "
		}
		fmt.Fprintln(w, prefix+connector+c.Name)
		renderTreeChildren(w, c, nextPrefix)
	}
}

// renderListFormat prints every path under e, one per line (spec §6
// `--format=list`).
func renderListFormat(w io.Writer, e *treeEntry) {
	var paths []string
	collectPaths(e, &paths)
	sort.Strings(paths)
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
}

func collectPaths(e *treeEntry, out *[]string) {
	*out = append(*out, e.Path)
	for _, c := range e.Children {
		collectPaths(c, out)
	}
}
