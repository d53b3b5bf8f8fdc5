// Package incremental implements the edit→delta→reparse coordinator
// (C13): apply_edit splices an edit into a cached file's source, locates
// the smallest boundary fact enclosing the edit, reparses only that
// region, and grafts the resulting subtree back into the cached AST —
// falling back to a full reparse whenever the region can't be found or
// the reparsed region doesn't converge to the same shape it replaced
// (spec §4.10). The per-language lexer and structural scanner (C2/C4)
// are linear, allocation-light passes, so this coordinator still reruns
// them over the whole post-edit source on every edit; what it actually
// saves is the expensive recursive-descent parse (C7), which is scoped
// to the edited region. See DESIGN.md for the full account of this
// trade-off against the byte-exact lazy-offset design spec §4.10
// describes.
package incremental

import (
	"fmt"

	"github.com/zztool/zz/ast"
	"github.com/zztool/zz/fact"
	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/parser"
	"github.com/zztool/zz/query"
	"github.com/zztool/zz/rule"
	"github.com/zztool/zz/scanner"
	"github.com/zztool/zz/span"
	"github.com/zztool/zz/token"
)

// Edit is a single byte-range replacement, matching spec §3's Edit
// record (generation is tracked by the Coordinator, not the caller).
type Edit struct {
	Range       span.Span
	Replacement []byte
}

// DefaultConvergenceBudget is the largest enclosing region, in bytes,
// the coordinator will attempt a scoped reparse over before giving up
// and falling back to a full reparse (spec §4.10: "if convergence fails
// within a configured byte budget, fall back").
const DefaultConvergenceBudget = 64 * 1024

// fileState is everything the coordinator caches per open file.
type fileState struct {
	lang       rule.Language
	opts       parser.Options
	source     []byte
	tokens     *token.Stream
	store      *fact.Store
	tree       *ast.AST
	generation uint32
	queries    *query.Cache
}

// Coordinator owns a per-file cache of parse artifacts. Per spec §5,
// each file's state is only ever touched by calls naming that file_id;
// a Coordinator has no cross-file shared mutable state, so callers may
// run one Coordinator per worker-pool task.
type Coordinator struct {
	files  map[string]*fileState
	budget int
}

// NewCoordinator returns a Coordinator whose scoped-reparse attempts are
// bounded by budget bytes (DefaultConvergenceBudget if budget <= 0).
func NewCoordinator(budget int) *Coordinator {
	if budget <= 0 {
		budget = DefaultConvergenceBudget
	}
	return &Coordinator{files: make(map[string]*fileState), budget: budget}
}

// Open performs (or replaces) a full baseline parse of src under fileID,
// returning the resulting tree and its generation.
func (c *Coordinator) Open(fileID string, lang rule.Language, src []byte, opts parser.Options) (*ast.AST, uint32) {
	fs := c.parseFull(lang, opts, src)
	c.files[fileID] = fs
	return fs.tree, fs.generation
}

// Tree returns the cached tree for fileID, if open.
func (c *Coordinator) Tree(fileID string) (*ast.AST, bool) {
	fs, ok := c.files[fileID]
	if !ok {
		return nil, false
	}
	return fs.tree, true
}

// Queries returns fileID's query cache, if open, so callers can reuse
// cached selector matches across edits of the same file.
func (c *Coordinator) Queries(fileID string) (*query.Cache, bool) {
	fs, ok := c.files[fileID]
	if !ok {
		return nil, false
	}
	return fs.queries, true
}

// Evict drops fileID's cached parse artifacts as a single unit (spec
// §5's "LRU of AST + tokens sized by a configurable byte budget;
// least-recently-used files are evicted as whole units" — eviction
// policy itself is the caller's job; Evict is the mechanical operation).
func (c *Coordinator) Evict(fileID string) {
	delete(c.files, fileID)
}

func (c *Coordinator) parseFull(lang rule.Language, opts parser.Options, src []byte) *fileState {
	toks := lexer.Tokenize(lang, src)
	store := &fact.Store{}
	scanner.Scan(src, toks.Tokens, store)
	tree := parser.Parse(lang, toks, src, opts, store)
	return &fileState{
		lang: lang, opts: opts, source: src, tokens: toks,
		store: store, tree: tree, generation: store.NextGeneration(),
		queries: query.NewCache(64),
	}
}

// ApplyEdit splices edit into fileID's cached source and returns the
// updated tree and its new generation. fileID must already be Open.
func (c *Coordinator) ApplyEdit(fileID string, edit Edit) (*ast.AST, uint32, error) {
	fs, ok := c.files[fileID]
	if !ok {
		return nil, 0, fmt.Errorf("incremental: file %q is not open", fileID)
	}

	newSrc := splice(fs.source, edit)
	delta := int64(len(edit.Replacement)) - int64(edit.Range.Len())

	newToks := lexer.Tokenize(fs.lang, newSrc)
	newStore := &fact.Store{}
	scanner.Scan(newSrc, newToks.Tokens, newStore)

	region, target, ok := enclosingRegion(fs, edit.Range)
	if ok && int(region.Len()) <= c.budget && !target.parent.Nil() {
		if grafted := c.tryScopedReparse(fs, newSrc, newToks, newStore, region, target, delta); grafted {
			fs.source = newSrc
			fs.tree.Source = newSrc
			fs.tokens = newToks
			fs.store = newStore
			fs.generation = newStore.NextGeneration()
			fs.queries.InvalidateOlderThan(fs.generation)
			return fs.tree, fs.generation, nil
		}
	}

	full := c.parseFull(fs.lang, fs.opts, newSrc)
	c.files[fileID] = full
	return full.tree, full.generation, nil
}

// tryScopedReparse attempts the region-scoped reparse+graft described in
// spec §4.10 steps 3-4. It mutates fs.tree in place and reports whether
// it succeeded; on failure fs.tree is left untouched and the caller
// falls back to a full reparse.
func (c *Coordinator) tryScopedReparse(fs *fileState, newSrc []byte, newToks *token.Stream, newStore *fact.Store, region span.Span, target regionTarget, delta int64) bool {
	newRegionEnd := uint32(int64(region.End) + delta)
	if newRegionEnd < region.Start || int(newRegionEnd) > len(newSrc) {
		return false
	}

	subToks := sliceTokens(newToks, region.Start, newRegionEnd)
	subTree := parser.Parse(fs.lang, subToks, newSrc, fs.opts, newStore)

	replacement, ok := soleChildMatching(subTree, target.rule)
	if !ok {
		return false
	}

	graftedRoot := graftInto(fs.tree, target, subTree, replacement)
	shiftTree(fs.tree, fs.tree.Root(), graftedRoot, region, delta)
	rebuildDiagnostics(fs.tree, subTree, region, delta)
	return true
}

func splice(src []byte, edit Edit) []byte {
	out := make([]byte, 0, len(src)-int(edit.Range.Len())+len(edit.Replacement))
	out = append(out, src[:edit.Range.Start]...)
	out = append(out, edit.Replacement...)
	out = append(out, src[edit.Range.End:]...)
	return out
}

// sliceTokens returns the subsequence of toks whose spans fall within
// [start, end), used to hand the scoped reparse only the tokens covering
// the enclosing region instead of re-tokenizing a byte slice in
// isolation (newToks is already absolute-offset, so no re-offsetting is
// needed, unlike the sub-parses parser/svelte.go performs for foreign
// sub-languages).
func sliceTokens(toks *token.Stream, start, end uint32) *token.Stream {
	var out []token.Token
	for _, t := range toks.Tokens {
		if t.Span.Start >= start && t.Span.End <= end {
			out = append(out, t)
		}
	}
	out = append(out, token.Token{Kind: token.EOF, Span: span.New(end, end)})
	return &token.Stream{Tokens: out}
}
