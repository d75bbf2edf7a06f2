// Package boxing defines core types, scan modes, and sentinel errors for
// the boxing subpackage of github.com/katalvlaran/corrdim.
package boxing

import (
	"errors"
)

// Sentinel errors for boxing operations.
var (
	// ErrEmptyDataset indicates a nil or empty input dataset.
	ErrEmptyDataset = errors.New("boxing: dataset must contain at least one point")
	// ErrBoxSize indicates a non-positive box size.
	ErrBoxSize = errors.New("boxing: box size must be positive")
	// ErrPrismDim indicates a prism dimension outside [1, data dimension].
	ErrPrismDim = errors.New("boxing: prism dimension must be between 1 and the data dimension")
	// ErrBoxIndex indicates a requested box index is out of range.
	ErrBoxIndex = errors.New("boxing: box index out of range")
)

// ScanMode selects which boxes a neighbor scan visits.
type ScanMode int

const (
	// ScanForward visits only boxes at or after the query box in Grid order.
	// Combined with the q=2 counter's half-open inner loop this counts each
	// unordered pair exactly once across the whole grid.
	ScanForward ScanMode = iota
	// ScanAll visits every box. Required for q-order sums, where each point
	// needs its complete neighbor count rather than a deduplicated pair count.
	ScanAll
)

// Grid is the box decomposition of a dataset. It is immutable once built.
//
// Boxes holds the distinct occupied box coordinates (length-PrismDim integer
// vectors) in strictly increasing lexicographic order. Contents[k] holds the
// original dataset indices whose points fall in Boxes[k]; every dataset index
// appears in exactly one Contents entry.
type Grid struct {
	Boxes    [][]int
	Contents [][]int
	PrismDim int
	Size     float64 // box edge length r0
}

// NumBoxes returns the number of occupied boxes. Complexity: O(1).
func (g *Grid) NumBoxes() int { return len(g.Boxes) }
