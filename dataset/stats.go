package dataset

import (
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"
)

// MinMaxima returns the per-dimension minima and maxima of the dataset.
// Complexity: O(N·D).
func (ds *Dataset) MinMaxima() (mins, maxs []float64) {
	mins = make([]float64, ds.dim)
	maxs = make([]float64, ds.dim)
	copy(mins, ds.points[0])
	copy(maxs, ds.points[0])
	for _, p := range ds.points[1:] {
		for d, v := range p {
			if v < mins[d] {
				mins[d] = v
			}
			if v > maxs[d] {
				maxs[d] = v
			}
		}
	}

	return mins, maxs
}

// Extent returns the attractor extent R: the mean over dimensions of
// (max − min). Complexity: O(N·D).
func (ds *Dataset) Extent() float64 {
	mins, maxs := ds.MinMaxima()
	ranges := make([]float64, ds.dim)
	for d := range ranges {
		ranges[d] = maxs[d] - mins[d]
	}
	// Dimension is validated ≥ 1 at construction, so Mean cannot fail.
	r, _ := stats.Mean(ranges)

	return r
}

// MinimumPairwiseDistance returns the exact smallest distance between any
// two distinct points of ds under m. A dataset with duplicate points yields
// zero. Complexity: O(N²·D).
func MinimumPairwiseDistance(ds *Dataset, m Metric) float64 {
	best := math.Inf(1)
	n := ds.Len()
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if d := m.Distance(ds.points[i], ds.points[j]); d < best {
				best = d
			}
		}
	}
	if math.IsInf(best, 1) {
		return 0 // single-point dataset
	}

	return best
}

// Subsample draws size indices uniformly with replacement from rng,
// deduplicates them preserving first-occurrence order, and returns the
// dataset restricted to those points. The result therefore holds at most
// size points. size values below 1 are treated as 1.
// Complexity: O(size).
func (ds *Dataset) Subsample(size int, rng *rand.Rand) *Dataset {
	if size < 1 {
		size = 1
	}
	n := ds.Len()
	seen := make(map[int]struct{}, size)
	picked := make([][]float64, 0, size)
	for k := 0; k < size; k++ {
		i := rng.Intn(n)
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		picked = append(picked, ds.points[i])
	}

	// Points are shared, not copied: the receiver is immutable and the
	// subsample only ever reads them.
	return &Dataset{points: picked, dim: ds.dim}
}
