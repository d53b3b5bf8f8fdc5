package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zztool/zz/rule"
)

func TestLookupKnownIDs(t *testing.T) {
	info, ok := rule.Lookup(rule.JSONObject)
	assert.True(t, ok)
	assert.Equal(t, rule.LangJSON, info.Language)
	assert.Equal(t, rule.CategoryContainer, info.Category)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := rule.Lookup(rule.ID(0xFFFF))
	assert.False(t, ok)
}

func TestEachLanguageRegistersDocumentRoot(t *testing.T) {
	roots := []rule.ID{
		rule.JSONDocument, rule.ZONDocument, rule.CSSDocument,
		rule.HTMLDocument, rule.TSDocument, rule.ZigDocument, rule.SvelteDocument,
	}
	for _, id := range roots {
		info, ok := rule.Lookup(id)
		assert.True(t, ok, "rule %d should be registered", id)
		assert.Equal(t, rule.CategoryDocumentRoot, info.Category)
	}
}

func TestNameFallback(t *testing.T) {
	assert.Equal(t, "<unknown>", rule.Name(rule.ID(0xFFFF)))
	assert.Equal(t, "json.object", rule.Name(rule.JSONObject))
}

func TestAllIDsIsSortedAndComplete(t *testing.T) {
	ids := rule.AllIDs()
	assert.NotEmpty(t, ids)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
	assert.Contains(t, ids, rule.JSONObject)
	assert.Contains(t, ids, rule.SvelteDocument)
}
