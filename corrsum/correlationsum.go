package corrsum

import (
	"math"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/corrdim/dataset"
)

// CorrelationSum computes the brute-force (unboxed) correlation sum of ds at
// every radius: the normalized count of point pairs closer than each radius,
// with pairs |i−j| ≤ w excluded by the Theiler window.
//
// For q=2 each unordered pair is visited once and the counts are normalized
// by 2/((N−w)(N−w−1)); for general q every point accumulates its neighbor
// count per radius, raised to (q−1), normalized by (N−2w)(N−2w−1)^(q−1),
// clamped to [0, ∞) and taken to the 1/(q−1) root. The returned curve is
// non-decreasing because radii must be ascending.
//
// This is the O(N²·D) reference implementation; prefer BoxedCorrelationSum
// for large datasets. Complexity: O(N²·(D + log R)) for R radii.
func CorrelationSum(ds *dataset.Dataset, radii []float64, opts Options) ([]float64, error) {
	q := opts.order()
	w := opts.TheilerWindow
	if err := validateInputs(ds, radii, w, q); err != nil {
		return nil, err
	}
	if q <= 1 {
		opts.log().Warn("correlation sum of order q ≤ 1 is ill-conditioned; results are advisory only",
			zap.Float64("q", q))
	}
	if q == 2 {
		return bruteSum2(ds, radii, w, opts.metric()), nil
	}

	return bruteSumQ(ds, radii, q, w, opts.metric()), nil
}

// bruteSum2 counts every admissible unordered pair once.
func bruteSum2(ds *dataset.Dataset, radii []float64, w int, m dataset.Metric) []float64 {
	n := ds.Len()
	counts := make([]float64, len(radii))
	for i := 0; i < n-1; i++ {
		x := ds.Point(i)
		for j := i + w + 1; j < n; j++ {
			countDescending(m.Distance(x, ds.Point(j)), radii, counts)
		}
	}
	floats.Scale(2/(float64(n-w)*float64(n-w-1)), counts)

	return counts
}

// bruteSumQ accumulates per-point neighbor counts raised to (q−1), skipping
// points within w of either sequence boundary.
func bruteSumQ(ds *dataset.Dataset, radii []float64, q float64, w int, m dataset.Metric) []float64 {
	n := ds.Len()
	sums := make([]float64, len(radii))
	current := make([]float64, len(radii))
	for i := w; i <= n-1-w; i++ {
		for k := range current {
			current[k] = 0
		}
		x := ds.Point(i)
		for j := 0; j < n; j++ {
			if absInt(i-j) <= w {
				continue
			}
			countDescending(m.Distance(x, ds.Point(j)), radii, current)
		}
		for k := range sums {
			sums[k] += math.Pow(current[k], q-1)
		}
	}

	return renormalizeQ(sums, n, q, w)
}

// renormalizeQ divides accumulated q-order powers by (N−2w)(N−2w−1)^(q−1),
// clamps tiny negative cancellation noise to zero, and inverts the per-point
// exponent with a 1/(q−1) root.
func renormalizeQ(sums []float64, n int, q float64, w int) []float64 {
	norm := float64(n-2*w) * math.Pow(float64(n-2*w-1), q-1)
	out := make([]float64, len(sums))
	for k, s := range sums {
		v := s / norm
		if v < 0 {
			v = 0
		}
		out[k] = math.Pow(v, 1/(q-1))
	}

	return out
}

// countDescending increments the bucket of every radius the distance is
// below, scanning from the largest radius down and stopping at the first
// miss. Valid because radii are ascending: failing a larger radius implies
// failing every smaller one.
func countDescending(dist float64, radii []float64, counts []float64) {
	for k := len(radii) - 1; k >= 0; k-- {
		if dist >= radii[k] {
			break
		}
		counts[k]++
	}
}

// validateInputs applies the shared preconditions of every correlation-sum
// entry point: a pair-capable dataset, ascending positive radii, and a
// Theiler window that leaves admissible pairs for the requested order.
func validateInputs(ds *dataset.Dataset, radii []float64, w int, q float64) error {
	if ds == nil || ds.Len() < 2 {
		return ErrTooFewPoints
	}
	if len(radii) == 0 {
		return ErrNoRadii
	}
	if !sort.Float64sAreSorted(radii) {
		return ErrUnsortedRadii
	}
	if radii[0] <= 0 {
		return ErrNonPositiveRadius
	}
	if w < 0 {
		return ErrTheilerWindow
	}
	n := ds.Len()
	if q == 2 {
		if n-w-1 < 1 {
			return ErrTheilerWindow
		}
	} else if n-2*w-1 < 1 {
		return ErrTheilerWindow
	}

	return nil
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
