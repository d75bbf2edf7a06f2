package boxing

import (
	"math"
	"sort"

	"github.com/katalvlaran/corrdim/dataset"
)

// Partition maps every point of ds to an integer box coordinate
// floor((point[d] − min[d]) / r0) over the first prismDim dimensions and
// groups the point indices by coordinate.
//
// The returned Grid lists the distinct coordinates in strictly increasing
// lexicographic order; within a box, point indices keep their relative
// dataset order (the index sort is stable). Returns ErrEmptyDataset,
// ErrBoxSize (r0 ≤ 0), or ErrPrismDim (prismDim outside [1, ds.Dim()]);
// an oversized prism dimension is rejected, never truncated.
// Complexity: O(N·(P + log N)) time, O(N·P) memory.
func Partition(ds *dataset.Dataset, r0 float64, prismDim int) (*Grid, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if r0 <= 0 {
		return nil, ErrBoxSize
	}
	if prismDim < 1 || prismDim > ds.Dim() {
		return nil, ErrPrismDim
	}

	mins, _ := ds.MinMaxima()
	n := ds.Len()

	// Integer coordinate of every point along the prism dimensions.
	coords := make([][]int, n)
	for i := 0; i < n; i++ {
		p := ds.Point(i)
		c := make([]int, prismDim)
		for d := 0; d < prismDim; d++ {
			c[d] = int(math.Floor((p[d] - mins[d]) / r0))
		}
		coords[i] = c
	}

	// Stable sort of point indices under lexicographic coordinate order,
	// so equal coordinates are contiguous and in-box order stays temporal.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return lexLess(coords[order[a]], coords[order[b]])
	})

	// Group runs of equal coordinates into boxes.
	g := &Grid{PrismDim: prismDim, Size: r0}
	for start := 0; start < n; {
		end := start + 1
		for end < n && lexEqual(coords[order[start]], coords[order[end]]) {
			end++
		}
		g.Boxes = append(g.Boxes, coords[order[start]])
		g.Contents = append(g.Contents, order[start:end:end])
		start = end
	}

	return g, nil
}

// lexLess reports whether coordinate a sorts before b lexicographically.
func lexLess(a, b []int) bool {
	for d := range a {
		if a[d] != b[d] {
			return a[d] < b[d]
		}
	}

	return false
}

// lexEqual reports whether two coordinates are identical.
func lexEqual(a, b []int) bool {
	for d := range a {
		if a[d] != b[d] {
			return false
		}
	}

	return true
}
