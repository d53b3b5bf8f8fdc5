package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/internal/interval"
	"github.com/zztool/zz/span"
)

// TestInsertOverlapCases exercises every overlap case Insert has to
// distinguish when the fact store folds a newly-scanned boundary fact's
// span into the by-span index (fact.Store.ensureIndexes): a span that
// misses every stored span entirely, one that nests inside a stored
// span, one that only clips the edge of the span before or after it,
// and one that swallows a stored span whole.
//
// Each case lists its insertions in order; a non-empty want names the
// stored span that the last insertion is reported to overlap.
func TestInsertOverlapCases(t *testing.T) {
	t.Parallel()

	type insertion struct {
		start, end uint32 // half-open, like span.Span itself
		label      string
	}

	tests := []struct {
		name   string
		spans  []insertion
		want   string // non-"" means: the last insertion's overlap value
	}{
		{
			name:  "single span, nothing to overlap",
			spans: []insertion{{0, 10, "field"}},
		},
		{
			name: "disjoint, new span is the rightmost",
			spans: []insertion{
				{0, 10, "field"},
				{30, 40, "comment"},
			},
		},
		{
			name: "disjoint, new span is the leftmost",
			spans: []insertion{
				{30, 40, "comment"},
				{0, 10, "field"},
			},
		},
		{
			name: "disjoint, new span falls strictly between two others",
			spans: []insertion{
				{0, 10, "field"},
				{30, 40, "comment"},
				{20, 26, "gap"},
			},
		},

		{
			name: "new span nests entirely inside a stored span",
			spans: []insertion{
				{0, 10, "object"},
				{1, 3, "key"},
			},
			want: "object",
		},
		{
			name: "new span shares the stored span's start",
			spans: []insertion{
				{0, 10, "object"},
				{0, 3, "key"},
			},
			want: "object",
		},
		{
			name: "new span is identical to the stored span",
			spans: []insertion{
				{0, 10, "object"},
				{0, 10, "key"},
			},
			want: "object",
		},

		{
			name: "new span clips the tail of the span before it",
			spans: []insertion{
				{0, 10, "object"},
				{9, 13, "trailing comma"},
			},
			want: "object",
		},
		{
			name: "new span clips the tail, a later span is unaffected",
			spans: []insertion{
				{0, 10, "object"},
				{30, 40, "comment"},
				{9, 13, "trailing comma"},
			},
			want: "object",
		},
		{
			name: "new span spans the gap and clips into the next span's start",
			spans: []insertion{
				{0, 10, "object"},
				{30, 40, "comment"},
				{9, 31, "trailing comma"},
			},
			want: "object",
		},

		{
			name: "new span starts before a stored span and clips its head",
			spans: []insertion{
				{2, 10, "object"},
				{0, 3, "leading byte"},
			},
			want: "object",
		},
		{
			name: "new span clips the head of the span after it",
			spans: []insertion{
				{0, 10, "object"},
				{30, 40, "comment"},
				{20, 32, "trailing"},
			},
			want: "comment",
		},
		{
			name: "new span starts at the previous span's end and clips the next span's head",
			spans: []insertion{
				{0, 10, "object"},
				{30, 40, "comment"},
				{10, 32, "trailing"},
			},
			want: "comment",
		},

		{
			name: "new span swallows a stored span whole",
			spans: []insertion{
				{2, 10, "object"},
				{0, 12, "document"},
			},
			want: "object",
		},
		{
			name: "new span swallows the first of two stored spans",
			spans: []insertion{
				{0, 10, "object"},
				{30, 40, "comment"},
				{0, 30, "document"},
			},
			want: "object",
		},
		{
			name: "new span swallows both stored spans",
			spans: []insertion{
				{0, 10, "object"},
				{30, 40, "comment"},
				{0, 31, "document"},
			},
			want: "object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			type boxed struct{ label string } // aids pretty-printing on failure
			idx := new(interval.Index[boxed])
			for i, s := range tt.spans {
				overlap := idx.Insert(span.New(s.start, s.end), boxed{s.label})
				if i < len(tt.spans)-1 || tt.want == "" {
					require.Nil(t, overlap.Value)
				} else {
					assert.Equal(t, &boxed{tt.want}, overlap.Value)
				}
				t.Logf("%q", idx)
			}
		})
	}
}

func TestGetReturnsSpanNotJustValue(t *testing.T) {
	t.Parallel()

	var idx interval.Index[string]
	idx.Insert(span.New(10, 20), "boundary")

	hit := idx.Get(15)
	require.NotNil(t, hit.Value)
	assert.Equal(t, "boundary", *hit.Value)
	assert.Equal(t, span.New(10, 20), hit.Span)

	// Half-open: the span's own end offset is not covered.
	assert.Nil(t, idx.Get(20).Value)
	assert.Nil(t, idx.Get(9).Value)
}

func TestGetOnZeroWidthSpanCoversItsStartOffset(t *testing.T) {
	t.Parallel()

	var idx interval.Index[string]
	idx.Insert(span.New(5, 5), "insertion point")

	hit := idx.Get(5)
	require.NotNil(t, hit.Value)
	assert.Equal(t, "insertion point", *hit.Value)
}

func TestEntriesVisitsEveryStoredSpanInOrder(t *testing.T) {
	t.Parallel()

	var idx interval.Index[string]
	idx.Insert(span.New(30, 40), "second")
	idx.Insert(span.New(0, 10), "first")

	var got []string
	for e := range idx.Entries() {
		got = append(got, *e.Value)
	}
	assert.Equal(t, []string{"first", "second"}, got)
}
