package dataset

import (
	"errors"
)

// Sentinel errors for dataset construction.
var (
	// ErrEmptyDataset indicates the input contains no points.
	ErrEmptyDataset = errors.New("dataset: input must contain at least one point")
	// ErrRaggedData indicates points of differing dimensionality.
	ErrRaggedData = errors.New("dataset: all points must have the same dimension")
)

// Dataset is an ordered sequence of N points of equal dimension D.
// It is immutable once built; insertion order defines temporal order.
type Dataset struct {
	points [][]float64
	dim    int
}

// New constructs a Dataset from a non-empty slice of equal-length points.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyDataset if points is empty or the first point has no
// coordinates, ErrRaggedData if any point length differs.
// Complexity: O(N·D) time and memory.
func New(points [][]float64) (*Dataset, error) {
	if len(points) == 0 || len(points[0]) == 0 {
		return nil, ErrEmptyDataset
	}
	dim := len(points[0])
	cp := make([][]float64, len(points))
	for i, p := range points {
		if len(p) != dim {
			return nil, ErrRaggedData
		}
		cp[i] = make([]float64, dim)
		copy(cp[i], p)
	}

	return &Dataset{points: cp, dim: dim}, nil
}

// Len returns the number of points N. Complexity: O(1).
func (ds *Dataset) Len() int { return len(ds.points) }

// Dim returns the point dimension D. Complexity: O(1).
func (ds *Dataset) Dim() int { return ds.dim }

// Point returns the i-th point. The returned slice is the internal storage;
// callers must not mutate it. Complexity: O(1).
func (ds *Dataset) Point(i int) []float64 { return ds.points[i] }
