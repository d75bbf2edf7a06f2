// Package boxing partitions a point cloud into axis-aligned boxes along a
// reduced "prism" dimension, enabling box-restricted pair searches.
//
// What:
//
//   - Partition assigns each point an integer box coordinate
//     floor((point − min)/r0) over the first P dimensions and groups the
//     original point indices by coordinate.
//   - Grid holds the resulting Boxes (distinct coordinates, lexicographically
//     increasing) and Contents (per-box index lists); together they partition
//     the full index set.
//   - Neighbors flattens the contents of a box and every Chebyshev-adjacent
//     box (coordinates differing by at most 1 in every prism dimension,
//     i.e. the 3^P surrounding block).
//
// Why:
//
//   - Correlation sums only compare points closer than the largest radius;
//     with box edge r0 ≥ max radius, all relevant partners of a point live
//     in the point's own box or an adjacent one.
//   - The lexicographic box order plus ScanForward traversal lets the q=2
//     counter visit each unordered pair exactly once without deduplication.
//
// Complexity:
//
//   - Partition: O(N·(P + log N)) time, O(N·P) memory.
//   - Neighbors: O(M·P + K) time for M boxes and K returned indices.
//
// Options:
//
//   - ScanMode: ScanForward (boxes at or after the query box; q=2 scheme)
//     or ScanAll (every box; general-q scheme).
//
// Errors:
//
//   - ErrEmptyDataset: nil or empty dataset.
//   - ErrBoxSize: non-positive box size.
//   - ErrPrismDim: prism dimension outside [1, D].
//   - ErrBoxIndex: neighbor query for a box index out of range.
package boxing
