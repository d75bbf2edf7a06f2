package corrsum

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// LinearRegionSlope returns the least-squares slope of the largest linear
// region of the curve (x, y); for log radii against log correlation sums,
// that slope is the correlation-dimension estimate.
//
// Non-finite samples (log of a zero count is -Inf) are dropped first; the
// remaining curve is cut wherever consecutive secant slopes deviate by more
// than DefaultSlopeTolerance relative to each other, and the longest
// resulting run is fitted with gonum's LinearRegression.
//
// Returns ErrLengthMismatch for unequal inputs and ErrShortCurve when fewer
// than three finite samples remain. A degenerate region (all x equal) yields
// a NaN slope, which callers must treat as a failed fit.
// Complexity: O(len(x)).
func LinearRegionSlope(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}

	fx := make([]float64, 0, len(x))
	fy := make([]float64, 0, len(y))
	for i := range x {
		if isFinite(x[i]) && isFinite(y[i]) {
			fx = append(fx, x[i])
			fy = append(fy, y[i])
		}
	}
	if len(fx) < 3 {
		return 0, ErrShortCurve
	}

	lo, hi := largestLinearRegion(fx, fy, DefaultSlopeTolerance)
	_, slope := stat.LinearRegression(fx[lo:hi+1], fy[lo:hi+1], nil, false)

	return slope, nil
}

// largestLinearRegion returns the inclusive sample bounds of the longest run
// whose consecutive secant slopes stay within a relative tolerance tol of
// each other.
func largestLinearRegion(x, y []float64, tol float64) (lo, hi int) {
	n := len(x)
	bestLo, bestHi := 0, 1
	segLo := 0
	prev := secant(x, y, 0)
	for i := 1; i < n-1; i++ {
		s := secant(x, y, i)
		if relativeDiff(s, prev) > tol {
			if i-segLo > bestHi-bestLo {
				bestLo, bestHi = segLo, i
			}
			segLo = i
		}
		prev = s
	}
	if n-1-segLo > bestHi-bestLo {
		bestLo, bestHi = segLo, n-1
	}

	return bestLo, bestHi
}

// secant returns the slope of the segment between samples i and i+1.
func secant(x, y []float64, i int) float64 {
	return (y[i+1] - y[i]) / (x[i+1] - x[i])
}

// relativeDiff returns |a−b| scaled by the larger magnitude of the two.
func relativeDiff(a, b float64) float64 {
	m := math.Max(math.Abs(a), math.Abs(b))
	if m == 0 {
		return 0
	}

	return math.Abs(a-b) / m
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
