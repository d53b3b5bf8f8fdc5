package incremental_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/incremental"
	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/parser"
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/span"
)

// snapshot is a comparable, span-free projection of a subtree: enough to
// tell whether two trees are structurally identical down to their text,
// without comparing byte offsets (a grafted node's offsets are shifted
// relative to a from-scratch parse of the same text would never produce,
// since the two trees were built from sources of different lengths along
// the way).
type snapshot struct {
	Rule     rule.ID
	Text     string
	Children []snapshot
}

func snapshotOf(tree *ast.AST, p ast.Ptr) snapshot {
	if p.Nil() {
		return snapshot{}
	}
	n := tree.Node(p)
	s := snapshot{Rule: n.Rule}
	if len(n.Children) == 0 {
		s.Text = string(n.Span.Text(tree.Source))
	}
	for _, c := range n.Children {
		s.Children = append(s.Children, snapshotOf(tree, c))
	}
	return s
}

// shape renders a tree's rule IDs in pre-order, ignoring spans, so an
// incrementally-updated tree can be compared structurally against a
// from-scratch parse of the same final source (spec §8 property 8).
func shape(tree *ast.AST) []rule.ID {
	var out []rule.ID
	var visit func(p ast.Ptr)
	visit = func(p ast.Ptr) {
		if p.Nil() {
			return
		}
		n := tree.Node(p)
		out = append(out, n.Rule)
		for _, c := range n.Children {
			visit(c)
		}
	}
	visit(tree.Root())
	return out
}

func TestApplyEditMatchesFullReparseShape(t *testing.T) {
	src := `{"outer":{"inner":"value","count":1},"sibling":true}`
	co := incremental.NewCoordinator(incremental.DefaultConvergenceBudget)
	tree, gen := co.Open("f.json", rule.LangJSON, []byte(src), parser.Options{})
	require.False(t, tree.Root().Nil())

	// Insert "2" right after "val" inside the inner string, fully
	// contained within the inner object's own boundary.
	editAt := uint32(len(`{"outer":{"inner":"val`))
	edit := incremental.Edit{Range: span.New(editAt, editAt), Replacement: []byte("2")}

	updated, newGen, err := co.ApplyEdit("f.json", edit)
	require.NoError(t, err)
	assert.Greater(t, newGen, gen)

	newSrc := `{"outer":{"inner":"val2ue","count":1},"sibling":true}`
	toks := lexer.Tokenize(rule.LangJSON, []byte(newSrc))
	fresh := parser.Parse(rule.LangJSON, toks, []byte(newSrc), parser.Options{}, nil)

	assert.Equal(t, shape(fresh), shape(updated))
	assert.Equal(t, newSrc, string(updated.Source))

	if diff := cmp.Diff(snapshotOf(fresh, fresh.Root()), snapshotOf(updated, updated.Root())); diff != "" {
		t.Errorf("grafted tree diverged from a from-scratch reparse (-fresh +updated):\n%s", diff)
	}
}

func TestApplyEditFallsBackWhenNoEnclosingRegion(t *testing.T) {
	src := `"just a string"`
	co := incremental.NewCoordinator(incremental.DefaultConvergenceBudget)
	co.Open("f.json", rule.LangJSON, []byte(src), parser.Options{})

	edit := incremental.Edit{Range: span.New(1, 1), Replacement: []byte("X")}
	updated, _, err := co.ApplyEdit("f.json", edit)
	require.NoError(t, err)
	assert.False(t, updated.Root().Nil())
}

func TestApplyEditUnknownFileErrors(t *testing.T) {
	co := incremental.NewCoordinator(0)
	_, _, err := co.ApplyEdit("nope.json", incremental.Edit{Range: span.New(0, 0), Replacement: []byte("x")})
	assert.Error(t, err)
}
