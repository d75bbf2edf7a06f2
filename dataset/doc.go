// Package dataset provides the ordered point-cloud container and the small
// geometric collaborators consumed by the boxing and corrsum packages.
//
// What:
//
//   - Dataset wraps an immutable, ordered sequence of D-dimensional points.
//     Insertion order is significant: it defines the temporal order used by
//     Theiler-window exclusion in correlation sums.
//   - MinMaxima / Extent give per-dimension bounds and the mean attractor
//     extent R = mean(max − min).
//   - MinimumPairwiseDistance computes the exact smallest inter-point
//     distance under a pluggable Metric.
//   - Subsample draws a random, deduplicated subsample (uniform draws with
//     replacement, first-occurrence order kept) from an injectable
//     *rand.Rand.
//
// Why:
//
//   - Attractor reconstruction: delay embeddings arrive as ordered point
//     sequences whose index is time.
//   - Box-assisted counting needs bounds (box origins) and extents (radius
//     ranges) computed once and reused.
//
// Complexity:
//
//   - MinMaxima / Extent:          O(N·D)
//   - MinimumPairwiseDistance:     O(N²·D)
//   - Subsample:                   O(size)
//
// Errors:
//
//   - ErrEmptyDataset: constructor received no points.
//   - ErrRaggedData: points with differing dimensionality.
package dataset
