package intern_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zztool/zz/internal/intern"
)

func TestIntern(t *testing.T) {
	t.Parallel()

	data := []string{
		"",
		"a",
		"abc",
		"?",
		"xy.z",
		"a_b_c",
		".....",
		"foo.",
		"foo.a",
		"very long",
		" ",
		"verylong",
	}

	var table intern.Table
	for i := range 3 {
		for _, s := range data {
			t.Run(fmt.Sprintf("%s/%d", s, i), func(t *testing.T) {
				t.Parallel()

				id := table.Intern(s)
				assert.Equal(t, s, table.Value(id), "id: %v", id)
			})
		}
	}
}

func TestInternEmptyStringIsZero(t *testing.T) {
	var table intern.Table
	require.Equal(t, intern.ID(0), table.Intern(""))
	assert.Equal(t, "", table.Value(0))
}

func TestInternStableAcrossCalls(t *testing.T) {
	var table intern.Table
	a := table.Intern("repeated")
	b := table.Intern("repeated")
	assert.Equal(t, a, b)
	assert.Equal(t, 1, table.Len())
}
