// File: builder_impl_test.go
// Package builder_test contains functional tests for all generators,
// verifying invariants, sizes, determinism and error sentinels.
package builder_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/travelopts/builder"
	"github.com/katalvlaran/travelopts/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerators_Functional runs table-driven checks for each generator.
func TestGenerators_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		n            int
		opts         []builder.BuilderOption
		gen          func(int, ...builder.BuilderOption) (*options.List, error)
		wantSorted   bool
		wantParetoSt bool
	}{
		{name: "Frontier(10)", n: 10, gen: builder.Frontier, wantSorted: true, wantParetoSt: true},
		{name: "Frontier(0)", n: 0, gen: builder.Frontier, wantSorted: true, wantParetoSt: true},
		{name: "Frontier(49) fills the time axis", n: 49, gen: builder.Frontier, wantSorted: true, wantParetoSt: true},
		{name: "Sorted(40)", n: 40, opts: []builder.BuilderOption{builder.WithSeed(9)}, gen: builder.Sorted, wantSorted: true},
		{name: "Random(25)", n: 25, opts: []builder.BuilderOption{builder.WithSeed(5)}, gen: builder.Random},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			l, err := tc.gen(tc.n, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.n, l.Len())
			if tc.wantSorted {
				assert.True(t, l.IsSorted(), "expected sorted output")
			}
			if tc.wantParetoSt {
				assert.True(t, l.IsParetoSorted(), "expected pareto-sorted output")
			}
		})
	}
}

// TestGenerators_Determinism verifies equal seeds produce equal lists.
func TestGenerators_Determinism(t *testing.T) {
	t.Parallel()

	a, err := builder.Random(30, builder.WithSeed(11))
	require.NoError(t, err)
	b, err := builder.Random(30, builder.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, a.ToSequence(), b.ToSequence())

	fa, err := builder.Frontier(12, builder.WithSeed(4))
	require.NoError(t, err)
	fb, err := builder.Frontier(12, builder.WithSeed(4))
	require.NoError(t, err)
	assert.Equal(t, fa.ToSequence(), fb.ToSequence())
}

// TestGenerators_Ranges verifies all drawn values sit inside the configured ranges.
func TestGenerators_Ranges(t *testing.T) {
	t.Parallel()

	l, err := builder.Random(200,
		builder.WithSeed(2),
		builder.WithPriceRange(50, 60),
		builder.WithTimeRange(3, 4),
		builder.WithStep(0.5),
	)
	require.NoError(t, err)
	for _, o := range l.ToSequence() {
		assert.GreaterOrEqual(t, o.Price, 50.0)
		assert.LessOrEqual(t, o.Price, 60.0)
		assert.GreaterOrEqual(t, o.Time, 3.0)
		assert.LessOrEqual(t, o.Time, 4.0)
	}
}

// TestGenerators_Errors verifies sentinel errors.
func TestGenerators_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.Random(-1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.Sorted(-3)
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.Frontier(-1)
	assert.ErrorIs(t, err, builder.ErrBadSize)

	// default time grid holds 49 values
	_, err = builder.Frontier(50)
	assert.ErrorIs(t, err, builder.ErrBadRange)
	assert.Contains(t, err.Error(), builder.MethodFrontier)

	_, err = builder.Frontier(3, builder.WithPriceRange(1, 2))
	assert.ErrorIs(t, err, builder.ErrBadRange)
}

// TestFrontier_WideGrid verifies sampling cost follows n, not the grid size.
func TestFrontier_WideGrid(t *testing.T) {
	t.Parallel()

	start := time.Now()
	l, err := builder.Frontier(2, builder.WithSeed(3), builder.WithPriceRange(0, 1e9))
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 2, l.Len())
	assert.True(t, l.IsParetoSorted())
	for _, o := range l.ToSequence() {
		assert.LessOrEqual(t, o.Price, 1e9)
	}
}
