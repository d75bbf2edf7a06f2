package dataset

import "math"

// Metric measures the distance between two points of equal dimension.
// Implementations must be symmetric and non-negative.
type Metric interface {
	Distance(a, b []float64) float64
}

// Euclidean is the L2 metric, the default for pairwise distance evaluation.
type Euclidean struct{}

// Distance returns sqrt(Σ (a[d]−b[d])²). Complexity: O(D).
func (Euclidean) Distance(a, b []float64) float64 {
	var sum float64
	for d := range a {
		diff := a[d] - b[d]
		sum += diff * diff
	}

	return math.Sqrt(sum)
}

// Chebyshev is the L∞ (max-coordinate) metric.
type Chebyshev struct{}

// Distance returns max_d |a[d]−b[d]|. Complexity: O(D).
func (Chebyshev) Distance(a, b []float64) float64 {
	var best float64
	for d := range a {
		diff := math.Abs(a[d] - b[d])
		if diff > best {
			best = diff
		}
	}

	return best
}
