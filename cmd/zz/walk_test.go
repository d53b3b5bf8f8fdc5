package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/config"
)

func TestWalkTreeSkipsHiddenByDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0644))

	root, err := walkTree(dir, config.Default(), false, 0)
	require.NoError(t, err)

	var names []string
	for _, c := range root.Children {
		names = append(names, c.Name)
	}
	require.Equal(t, []string{"a.json"}, names)
}

func TestWalkTreeRespectsIgnoredPatterns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "vendor"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vendor", "dep.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.json"), []byte("{}"), 0644))

	cfg := config.Default()
	cfg.IgnoredPatterns = []string{"vendor/**", "vendor"}

	root, err := walkTree(dir, cfg, false, 0)
	require.NoError(t, err)

	var names []string
	for _, c := range root.Children {
		names = append(names, c.Name)
	}
	require.Equal(t, []string{"keep.json"}, names)
}

func TestWalkTreeMaxDepth(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "deep.json"), []byte("{}"), 0644))

	root, err := walkTree(dir, config.Default(), false, 1)
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	require.Equal(t, "a", root.Children[0].Name)
	require.Empty(t, root.Children[0].Children)
}
