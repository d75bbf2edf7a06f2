package dataset_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/corrdim/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Errors verifies that New rejects empty and ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		points [][]float64
		err    error
	}{
		{"Empty", [][]float64{}, dataset.ErrEmptyDataset},
		{"ZeroDim", [][]float64{{}}, dataset.ErrEmptyDataset},
		{"Ragged", [][]float64{{1, 2}, {3}}, dataset.ErrRaggedData},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.New(tc.points)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_Immutable verifies that mutating the input after construction
// does not affect the dataset.
func TestNew_Immutable(t *testing.T) {
	raw := [][]float64{{1, 2}, {3, 4}}
	ds, err := dataset.New(raw)
	require.NoError(t, err)

	raw[0][0] = 99
	assert.Equal(t, 1.0, ds.Point(0)[0], "dataset must deep-copy its input")
}

// TestMinMaximaAndExtent checks per-dimension bounds and the mean extent.
func TestMinMaximaAndExtent(t *testing.T) {
	ds, err := dataset.New([][]float64{
		{0, 10},
		{2, 14},
		{1, 12},
	})
	require.NoError(t, err)

	mins, maxs := ds.MinMaxima()
	assert.Equal(t, []float64{0, 10}, mins)
	assert.Equal(t, []float64{2, 14}, maxs)

	// ranges are (2, 4), mean extent = 3
	assert.InDelta(t, 3.0, ds.Extent(), 1e-12)
}

// TestMetrics verifies Euclidean and Chebyshev distances on a known pair.
func TestMetrics(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{3, 4, 0}

	assert.InDelta(t, 5.0, dataset.Euclidean{}.Distance(a, b), 1e-12)
	assert.InDelta(t, 4.0, dataset.Chebyshev{}.Distance(a, b), 1e-12)
}

// TestMinimumPairwiseDistance covers the generic and degenerate cases.
func TestMinimumPairwiseDistance(t *testing.T) {
	ds, err := dataset.New([][]float64{{0, 0}, {1, 0}, {5, 0}})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, dataset.MinimumPairwiseDistance(ds, dataset.Euclidean{}), 1e-12)

	dup, err := dataset.New([][]float64{{1, 1}, {1, 1}, {2, 2}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, dataset.MinimumPairwiseDistance(dup, dataset.Euclidean{}),
		"duplicate points must yield zero minimum distance")

	single, err := dataset.New([][]float64{{7}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, dataset.MinimumPairwiseDistance(single, dataset.Euclidean{}))
}

// TestSubsample verifies size bounds, deduplication, and determinism for a
// fixed seed.
func TestSubsample(t *testing.T) {
	points := make([][]float64, 100)
	for i := range points {
		points[i] = []float64{float64(i)}
	}
	ds, err := dataset.New(points)
	require.NoError(t, err)

	sub := ds.Subsample(30, rand.New(rand.NewSource(7)))
	assert.LessOrEqual(t, sub.Len(), 30, "dedup can only shrink the draw")
	assert.GreaterOrEqual(t, sub.Len(), 1)

	// No duplicates survive.
	seen := map[float64]bool{}
	for i := 0; i < sub.Len(); i++ {
		v := sub.Point(i)[0]
		assert.False(t, seen[v], "subsample must be deduplicated")
		seen[v] = true
	}

	// Same seed, same subsample.
	again := ds.Subsample(30, rand.New(rand.NewSource(7)))
	require.Equal(t, sub.Len(), again.Len())
	for i := 0; i < sub.Len(); i++ {
		assert.Equal(t, sub.Point(i)[0], again.Point(i)[0])
	}

	// Degenerate request sizes clamp to one draw.
	tiny := ds.Subsample(0, rand.New(rand.NewSource(1)))
	assert.Equal(t, 1, tiny.Len())
}

// TestSubsample_DimPreserved checks the subsample keeps the point dimension.
func TestSubsample_DimPreserved(t *testing.T) {
	ds, err := dataset.New([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	sub := ds.Subsample(2, rand.New(rand.NewSource(3)))
	assert.Equal(t, 3, sub.Dim())
	assert.False(t, math.IsNaN(sub.Point(0)[0]))
}
