package options_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/travelopts/builder"
	"github.com/katalvlaran/travelopts/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInsertSorted covers placement at the front, inside a duplicate block and at the end.
func TestInsertSorted(t *testing.T) {
	tests := []struct {
		name   string
		insert [2]float64
		want   [][2]float64
	}{
		{"end", [2]float64{22, 9.7}, append(append([][2]float64{}, canonical...), [2]float64{22, 9.7})},
		{"front", [2]float64{0, 100}, append([][2]float64{{0, 100}}, canonical...)},
		{"duplicate block", [2]float64{5, 8}, [][2]float64{
			{1, 7}, {2, 8}, {2, 9}, {3, 5}, {5, 8}, {5, 8}, {5, 8}, {5, 9}, {6, 12},
		}},
		{"time tie-break", [2]float64{2, 1}, [][2]float64{
			{1, 7}, {2, 1}, {2, 8}, {2, 9}, {3, 5}, {5, 8}, {5, 8}, {5, 9}, {6, 12},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := options.FromPairs(canonical)
			require.NoError(t, l.InsertSorted(tc.insert[0], tc.insert[1]))
			assert.True(t, l.IsSorted())
			assert.Equal(t, len(canonical)+1, l.Len())
			assert.Equal(t, opts(tc.want...), l.ToSequence())
		})
	}
}

// TestInsertSorted_NotSorted verifies the failure leaves the list untouched.
func TestInsertSorted_NotSorted(t *testing.T) {
	l := options.FromPairs([][2]float64{{3, 1}, {1, 1}})
	before := l.Checksum()

	err := l.InsertSorted(2, 2)
	assert.ErrorIs(t, err, options.ErrNotSorted)
	assert.Equal(t, before, l.Checksum())
	assert.Equal(t, 2, l.Len())
}

// TestInsertSorted_Property verifies repeated insertion sorts any sequence.
func TestInsertSorted_Property(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		r, err := builder.Random(30, builder.WithSeed(seed), builder.WithPriceRange(0, 9), builder.WithTimeRange(0, 9))
		require.NoError(t, err)

		l := options.New()
		for _, o := range r.ToSequence() {
			require.NoError(t, l.InsertSorted(o.Price, o.Time))
			require.True(t, l.IsSorted(), "seed %d", seed)
		}

		want := r.ToSequence()
		sort.SliceStable(want, func(i, j int) bool {
			if want[i].Price != want[j].Price {
				return want[i].Price < want[j].Price
			}
			return want[i].Time < want[j].Time
		})
		assert.Equal(t, want, l.ToSequence(), "seed %d", seed)
	}
}

// TestInsertParetoSorted covers dominated, equal, dominating and incomparable insertions.
func TestInsertParetoSorted(t *testing.T) {
	base := [][2]float64{{1, 10}, {3, 6}, {5, 4}, {8, 2}}
	tests := []struct {
		name   string
		insert [2]float64
		want   [][2]float64
	}{
		{"dominated from the left", [2]float64{4, 7}, base},
		{"equal", [2]float64{3, 6}, base},
		{"same price slower", [2]float64{3, 7}, base},
		{"same time dearer", [2]float64{9, 2}, base},
		{"same price faster", [2]float64{3, 5}, [][2]float64{{1, 10}, {3, 5}, {5, 4}, {8, 2}}},
		{"same time cheaper", [2]float64{7, 2}, [][2]float64{{1, 10}, {3, 6}, {5, 4}, {7, 2}}},
		{"dominates a run", [2]float64{2, 3}, [][2]float64{{1, 10}, {2, 3}, {8, 2}}},
		{"new front", [2]float64{0, 20}, [][2]float64{{0, 20}, {1, 10}, {3, 6}, {5, 4}, {8, 2}}},
		{"dominates all", [2]float64{0, 1}, [][2]float64{{0, 1}}},
		{"new back", [2]float64{9, 1}, [][2]float64{{1, 10}, {3, 6}, {5, 4}, {8, 2}, {9, 1}}},
		{"middle", [2]float64{4, 5}, [][2]float64{{1, 10}, {3, 6}, {4, 5}, {5, 4}, {8, 2}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := options.FromPairs(base)
			require.NoError(t, l.InsertParetoSorted(tc.insert[0], tc.insert[1]))
			assert.True(t, l.IsParetoSorted())
			assert.Equal(t, opts(tc.want...), l.ToSequence())
			assert.Equal(t, len(tc.want), l.Len())
		})
	}
}

// TestInsertParetoSorted_Empty verifies insertion into an empty list.
func TestInsertParetoSorted_Empty(t *testing.T) {
	l := options.New()
	require.NoError(t, l.InsertParetoSorted(4, 2))
	assert.Equal(t, opts([2]float64{4, 2}), l.ToSequence())
}

// TestInsertParetoSorted_NotParetoSorted verifies the failure leaves the list untouched.
func TestInsertParetoSorted_NotParetoSorted(t *testing.T) {
	l := options.FromPairs(canonical)
	before := l.Checksum()

	err := l.InsertParetoSorted(21, 9.7)
	assert.ErrorIs(t, err, options.ErrNotParetoSorted)
	assert.Equal(t, before, l.Checksum())
	assert.Equal(t, opts(canonical...), l.ToSequence())
}

// TestInsertParetoSorted_Property verifies the result equals the brute-force frontier.
func TestInsertParetoSorted_Property(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		r, err := builder.Random(25, builder.WithSeed(seed), builder.WithPriceRange(0, 20), builder.WithTimeRange(0, 20))
		require.NoError(t, err)

		l := options.New()
		for _, o := range r.ToSequence() {
			require.NoError(t, l.InsertParetoSorted(o.Price, o.Time))
		}
		assert.True(t, l.IsParetoSorted(), "seed %d", seed)
		assert.Equal(t, bruteFrontier(r.ToSequence()), l.ToSequence(), "seed %d", seed)
	}
}
