// Package corrsum computes classical (q=2) and generalized q-order
// correlation sums of point-cloud datasets, with a box-assisted pair search
// and automatic box-size/radius-range heuristics.
//
// What:
//
//   - CorrelationSum – exact brute-force O(N²) reference sum; also used
//     internally on small subsamples to seed the box-size heuristics.
//   - BoxedCorrelationSum – the same counts, but restricted to pairs within
//     the same or Chebyshev-adjacent boxes of a boxing.Grid, so only nearby
//     points are ever compared. Counting semantics stay exact.
//   - AutoBoxedCorrelationSum – picks the radius range [ε0, r0] and box size
//     r0 automatically (Bueno-Orovio heuristic) and returns (radii, sums).
//   - EstimateBoxSizeTheiler / EstimateBoxSizeBuenoOrovio – the two box-size
//     heuristics; AutoPrismDim – the prism-dimension heuristics.
//   - LinearRegionSlope – least-squares slope of the largest linear region
//     of a log-log curve: the correlation-dimension estimate.
//
// Why:
//
//   - The correlation dimension of an attractor is the log-log scaling slope
//     of C_q(ε); evaluating C_q naively costs O(N²) per radius. Boxing cuts
//     the effective cost while the Theiler window keeps temporally adjacent
//     (statistically dependent) pairs out of the counts.
//
// Counting policies:
//
//   - Radii must be ascending; every pair is bucketed by scanning radii from
//     the largest down and stopping at the first miss (monotone early break).
//   - q=2 uses a half-open forward scan so each unordered pair is counted
//     exactly once, then normalizes by 2/((N−w)(N−w−1)).
//   - General q accumulates per-point neighbor counts raised to (q−1),
//     excludes points within w of the sequence ends, normalizes by
//     (N−2w)(N−2w−1)^(q−1), clamps to [0, ∞), and takes the 1/(q−1) root.
//   - q ≤ 1 executes but is flagged through the diagnostics logger; the
//     normalization is ill-conditioned there and results are advisory only.
//
// Concurrency:
//
//	All computations are synchronous and allocate only local state; a Grid
//	box's contribution is independent of every other box's, which makes the
//	per-box loop the natural seam for a future parallel variant.
//
// Errors:
//
//   - ErrTooFewPoints, ErrNoRadii, ErrUnsortedRadii, ErrNonPositiveRadius,
//     ErrTheilerWindow: precondition violations, failed fast.
//   - ErrZeroExtent, ErrBoxSizeRange, ErrEstimatorDiverged: estimation
//     failures.
//   - ErrShortCurve, ErrLengthMismatch: slope-fit failures.
package corrsum
