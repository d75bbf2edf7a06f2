package corrsum_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/corrdim/corrsum"
	"github.com/katalvlaran/corrdim/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineDataset returns four collinear 1D points at 0, 1, 2, 3 whose pair
// distances (1, 1, 1, 2, 2, 3) are easy to count by hand.
func lineDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New([][]float64{{0}, {1}, {2}, {3}})
	require.NoError(t, err)

	return ds
}

// uniformCloud returns n random 3D points in the unit cube, fixed seed.
func uniformCloud(t *testing.T, n int, seed int64) *dataset.Dataset {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	points := make([][]float64, n)
	for i := range points {
		points[i] = []float64{rng.Float64(), rng.Float64(), rng.Float64()}
	}
	ds, err := dataset.New(points)
	require.NoError(t, err)

	return ds
}

// TestCorrelationSum_HandCounted checks the q=2 sum against hand-counted
// pair fractions on the collinear fixture.
func TestCorrelationSum_HandCounted(t *testing.T) {
	ds := lineDataset(t)

	// Distances: three pairs at 1, two at 2, one at 3.
	// C(1.5) = 3 pairs, C(2.5) = 5 pairs, normalizer 2/(4·3) = 1/6.
	cs, err := corrsum.CorrelationSum(ds, []float64{1.5, 2.5}, corrsum.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 3.0/6.0, cs[0], 1e-12)
	assert.InDelta(t, 5.0/6.0, cs[1], 1e-12)
}

// TestCorrelationSum_TheilerWindow verifies that w=1 drops the three
// adjacent-index pairs from the counts and changes the normalizer.
func TestCorrelationSum_TheilerWindow(t *testing.T) {
	ds := lineDataset(t)
	opts := corrsum.DefaultOptions()
	opts.TheilerWindow = 1

	// Surviving pairs: (0,2) d=2, (1,3) d=2, (0,3) d=3.
	// Normalizer 2/((4−1)(4−2)) = 1/3.
	cs, err := corrsum.CorrelationSum(ds, []float64{1.5, 2.5}, opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, cs[0], 1e-12)
	assert.InDelta(t, 2.0/3.0, cs[1], 1e-12)
}

// TestCorrelationSum_Preconditions walks the precondition failures.
func TestCorrelationSum_Preconditions(t *testing.T) {
	ds := lineDataset(t)
	opts := corrsum.DefaultOptions()

	_, err := corrsum.CorrelationSum(nil, []float64{1}, opts)
	assert.ErrorIs(t, err, corrsum.ErrTooFewPoints)

	_, err = corrsum.CorrelationSum(ds, nil, opts)
	assert.ErrorIs(t, err, corrsum.ErrNoRadii)

	_, err = corrsum.CorrelationSum(ds, []float64{2, 1}, opts)
	assert.ErrorIs(t, err, corrsum.ErrUnsortedRadii)

	_, err = corrsum.CorrelationSum(ds, []float64{0, 1}, opts)
	assert.ErrorIs(t, err, corrsum.ErrNonPositiveRadius)

	opts.TheilerWindow = -1
	_, err = corrsum.CorrelationSum(ds, []float64{1}, opts)
	assert.ErrorIs(t, err, corrsum.ErrTheilerWindow)

	// Window so large no pair survives.
	opts.TheilerWindow = 3
	_, err = corrsum.CorrelationSum(ds, []float64{1}, opts)
	assert.ErrorIs(t, err, corrsum.ErrTheilerWindow)
}

// TestCorrelationSum_MonotoneAndBounded verifies the q=2 curve is
// non-decreasing and stays within [0, 1] for w=0.
func TestCorrelationSum_MonotoneAndBounded(t *testing.T) {
	ds := uniformCloud(t, 150, 5)
	radii := []float64{0.05, 0.1, 0.2, 0.4, 0.8, 1.6, 3.2}

	cs, err := corrsum.CorrelationSum(ds, radii, corrsum.DefaultOptions())
	require.NoError(t, err)
	for k := range cs {
		assert.GreaterOrEqual(t, cs[k], 0.0)
		assert.LessOrEqual(t, cs[k], 1.0+1e-12)
		if k > 0 {
			assert.GreaterOrEqual(t, cs[k], cs[k-1], "curve must be non-decreasing")
		}
	}
	// The largest radius exceeds the cube diagonal: every pair counted.
	assert.InDelta(t, 1.0, cs[len(cs)-1], 1e-12)
}

// TestCorrelationSum_GeneralQExecutesLowOrders verifies q ≤ 1 runs (flagged
// as advisory, never an error) and q=3 produces a monotone curve.
func TestCorrelationSum_GeneralQExecutesLowOrders(t *testing.T) {
	ds := uniformCloud(t, 60, 9)
	radii := []float64{0.1, 0.3, 0.9}

	for _, q := range []float64{0.5, 3} {
		opts := corrsum.DefaultOptions()
		opts.Q = q
		cs, err := corrsum.CorrelationSum(ds, radii, opts)
		require.NoError(t, err, "q=%v must execute", q)
		require.Len(t, cs, len(radii))
	}

	opts := corrsum.DefaultOptions()
	opts.Q = 3
	cs, err := corrsum.CorrelationSum(ds, radii, opts)
	require.NoError(t, err)
	for k := 1; k < len(cs); k++ {
		assert.GreaterOrEqual(t, cs[k], cs[k-1])
	}
}
