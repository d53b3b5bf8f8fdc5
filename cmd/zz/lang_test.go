package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zztool/zz/rule"
)

func TestLanguageForPath(t *testing.T) {
	cases := []struct {
		path string
		want rule.Language
		ok   bool
	}{
		{"pkg.json", rule.LangJSON, true},
		{"build.zig.zon", rule.LangZON, true},
		{"main.ts", rule.LangTypeScript, true},
		{"App.svelte", rule.LangSvelte, true},
		{"index.HTML", rule.LangHTML, true},
		{"readme.md", rule.LangNone, false},
	}
	for _, c := range cases {
		got, ok := languageForPath(c.path)
		assert.Equal(t, c.ok, ok, c.path)
		if c.ok {
			assert.Equal(t, c.want, got, c.path)
		}
	}
}
