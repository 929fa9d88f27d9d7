package options_test

import (
	"testing"

	"github.com/katalvlaran/travelopts/builder"
	"github.com/katalvlaran/travelopts/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitSortedPareto covers thresholds below, inside, on and above the list.
func TestSplitSortedPareto(t *testing.T) {
	base := [][2]float64{{1, 10}, {3, 6}, {5, 4}, {8, 2}}
	tests := []struct {
		name       string
		maxPrice   float64
		kept, sold [][2]float64
	}{
		{"inside", 4, base[:2], base[2:]},
		{"on a price", 3, base[:2], base[2:]},
		{"below all", 0.5, nil, base},
		{"above all", 100, base, nil},
		{"first only", 1, base[:1], base[1:]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := options.FromPairs(base)
			before := l.Checksum()

			exp, err := l.SplitSortedPareto(tc.maxPrice)
			require.NoError(t, err)
			require.NotNil(t, exp)

			assert.Equal(t, opts(tc.kept...), l.ToSequence())
			assert.Equal(t, opts(tc.sold...), exp.ToSequence())
			assert.Equal(t, len(tc.kept), l.Len())
			assert.Equal(t, len(tc.sold), exp.Len())
			assert.True(t, l.IsParetoSorted())
			assert.True(t, exp.IsParetoSorted())
			assert.Equal(t, before, l.Checksum()^exp.Checksum(), "nodes are relinked, never reallocated")
		})
	}
}

// TestSplitSortedPareto_Edges verifies the empty list and the precondition failure.
func TestSplitSortedPareto_Edges(t *testing.T) {
	exp, err := options.New().SplitSortedPareto(10)
	require.NoError(t, err)
	assert.Equal(t, 0, exp.Len())

	bad := options.FromPairs(canonical)
	before := bad.Checksum()
	exp, err = bad.SplitSortedPareto(3)
	assert.ErrorIs(t, err, options.ErrNotParetoSorted)
	assert.Nil(t, exp)
	assert.Equal(t, before, bad.Checksum())
	assert.Equal(t, len(canonical), bad.Len())
}

// TestSplitSortedPareto_Property verifies the partition on generated frontiers.
func TestSplitSortedPareto_Property(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		l, err := builder.Frontier(20, builder.WithSeed(seed))
		require.NoError(t, err)
		all := l.ToSequence()
		before := l.Checksum()
		limit := float64(seed * 5)

		exp, err := l.SplitSortedPareto(limit)
		require.NoError(t, err)
		for _, o := range l.ToSequence() {
			assert.LessOrEqual(t, o.Price, limit)
		}
		for _, o := range exp.ToSequence() {
			assert.Greater(t, o.Price, limit)
		}
		assert.Equal(t, all, append(l.ToSequence(), exp.ToSequence()...), "seed %d", seed)
		assert.Equal(t, before, l.Checksum()^exp.Checksum(), "seed %d", seed)
	}
}
