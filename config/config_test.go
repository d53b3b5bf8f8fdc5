package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, diags := config.Load("/nonexistent/zz.zon")
	assert.Empty(t, diags)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseExtendsBasePatterns(t *testing.T) {
	src := `.{
		.base_patterns = "extend",
		.respect_gitignore = false,
		.symlink_behavior = .follow,
	}`
	cfg, diags := config.Parse("zz.zon", []byte(src))
	require.Empty(t, diags)
	assert.True(t, cfg.ExtendBase)
	assert.Equal(t, config.Default().BasePatterns, cfg.BasePatterns)
	assert.False(t, cfg.RespectGitignore)
	assert.Equal(t, config.SymlinkFollow, cfg.SymlinkBehavior)
}

func TestParseExplicitListsReplaceDefaults(t *testing.T) {
	src := `.{
		.base_patterns = .{ "**/*.zig" },
		.ignored_patterns = .{ "vendor/**", "*.log" },
		.hidden_files = .{ ".cache" },
	}`
	cfg, diags := config.Parse("zz.zon", []byte(src))
	require.Empty(t, diags)
	assert.False(t, cfg.ExtendBase)
	assert.Equal(t, []string{"**/*.zig"}, cfg.BasePatterns)
	assert.Equal(t, []string{"vendor/**", "*.log"}, cfg.IgnoredPatterns)
	assert.Equal(t, []string{".cache"}, cfg.HiddenFiles)
}

func TestParseMalformedFallsBackToDefaults(t *testing.T) {
	src := `.{ .respect_gitignore = `
	cfg, diags := config.Parse("zz.zon", []byte(src))
	require.NotEmpty(t, diags)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseUnrecognizedKeyIsIgnored(t *testing.T) {
	src := `.{ .totally_unknown_key = "x" }`
	cfg, diags := config.Parse("zz.zon", []byte(src))
	assert.Empty(t, diags)
	assert.Equal(t, config.Default(), cfg)
}

func TestMatchesAny(t *testing.T) {
	assert.True(t, config.MatchesAny([]string{"*.log"}, "deep/nested/debug.log"))
	assert.True(t, config.MatchesAny([]string{"vendor/**"}, "vendor/pkg/foo.go"))
	assert.False(t, config.MatchesAny([]string{"*.log"}, "deep/nested/debug.txt"))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, config.IsHidden(nil, ".git"))
	assert.True(t, config.IsHidden([]string{"node_modules"}, "node_modules"))
	assert.False(t, config.IsHidden([]string{"node_modules"}, "src"))
}
