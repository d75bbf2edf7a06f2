// Package corrdim estimates the correlation dimension of point-cloud
// datasets (typically reconstructed attractors of dynamical systems)
// through box-assisted correlation sums.
//
// 🚀 What is corrdim?
//
//	A library that turns the naive O(N²) all-pairs correlation sum into a
//	spatially indexed computation while keeping exact pairwise semantics:
//	  • dataset/ – ordered point clouds, metrics, extents, subsampling
//	  • boxing/  – prism-dimension box partitioning + Chebyshev neighbor scans
//	  • corrsum/ – classical (q=2) and generalized q-order correlation sums,
//	               automatic box-size/radius heuristics (Theiler and
//	               Bueno-Orovio), log-log linear-region slope fitting
//
// ✨ Why choose corrdim?
//
//   - Exact counting: boxes restrict which pairs are compared, never which
//     pairs are counted
//   - Theiler-window exclusion of temporally correlated pairs
//   - Deterministic by default, with injectable randomness for subsampling
//   - Fail-fast sentinel errors, injectable zap diagnostics, zero globals
//
// Quick sketch:
//
//	ds, _ := dataset.New(points)
//	radii, sums, err := corrsum.AutoBoxedCorrelationSum(ds, corrsum.DefaultOptions())
//	slope, _ := corrsum.LinearRegionSlope(logOf(radii), logOf(sums))
//
// The slope of the linear region of log C(ε) versus log ε is the
// correlation-dimension estimate.
//
//	go get github.com/katalvlaran/corrdim
package corrdim
