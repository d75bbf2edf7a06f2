package boxing

// Neighbors returns the flattened dataset indices of box k and of every box
// Chebyshev-adjacent to it: coordinates differing by at most 1 in every
// prism dimension (the 3^P block around the box, the box included).
//
// In ScanForward mode only boxes with index ≥ k are visited, so the query
// box's own contents always come first in the result; the q=2 counter's
// half-open inner loop depends on exactly that ordering. In ScanAll mode
// every box is visited. The output order follows the Grid's box order and
// is therefore deterministic.
//
// Returns ErrBoxIndex when k is out of range.
// Complexity: O(M·P + K) for M boxes and K returned indices.
func (g *Grid) Neighbors(k int, mode ScanMode) ([]int, error) {
	if k < 0 || k >= len(g.Boxes) {
		return nil, ErrBoxIndex
	}

	start := 0
	if mode == ScanForward {
		start = k
	}
	target := g.Boxes[k]

	var out []int
	for j := start; j < len(g.Boxes); j++ {
		if !chebyshevAdjacent(target, g.Boxes[j]) {
			continue
		}
		out = append(out, g.Contents[j]...)
	}

	return out, nil
}

// chebyshevAdjacent reports whether two box coordinates differ by at most 1
// in every dimension (L∞ distance < 2). Complexity: O(P).
func chebyshevAdjacent(a, b []int) bool {
	for d := range a {
		diff := a[d] - b[d]
		if diff < -1 || diff > 1 {
			return false
		}
	}

	return true
}
