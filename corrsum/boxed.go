package corrsum

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/corrdim/boxing"
	"github.com/katalvlaran/corrdim/dataset"
)

// BoxedCorrelationSum computes the correlation sum of ds at the given
// ascending radii using a box-assisted pair search: points are bucketed into
// boxes of edge boxSize along the first Options.PrismDim coordinates, and
// only points within the same or a Chebyshev-adjacent box are ever compared.
// The counts are identical to CorrelationSum's (boxing restricts which
// pairs are examined, never which pairs are counted) provided boxSize is at
// least the largest radius.
//
// A boxSize ≤ 0 defaults to the largest radius. Options.PrismDim of zero
// selects AutoPrismDim; a prism dimension above the data dimension is
// rejected with boxing.ErrPrismDim. Options.Progress, when set, is invoked
// once per processed box. Dispatch on the order is two distinct strategies:
// the q=2 counter's half-open pair scan cannot be expressed as a special
// case of the general-q per-point accumulation.
// Complexity: O(N·K·(D + log R)) for K average neighborhood occupancy.
func BoxedCorrelationSum(ds *dataset.Dataset, radii []float64, boxSize float64, opts Options) ([]float64, error) {
	q := opts.order()
	w := opts.TheilerWindow
	if err := validateInputs(ds, radii, w, q); err != nil {
		return nil, err
	}

	prismDim := opts.PrismDim
	if prismDim == 0 {
		prismDim = AutoPrismDim(ds, PrismBueno)
	}
	if boxSize <= 0 {
		boxSize = radii[len(radii)-1]
	}

	grid, err := boxing.Partition(ds, boxSize, prismDim)
	if err != nil {
		return nil, err
	}

	if q == 2 {
		return boxedSum2(ds, grid, radii, w, opts.metric(), opts.Progress)
	}
	if q <= 1 {
		opts.log().Warn("correlation sum of order q ≤ 1 is ill-conditioned; results are advisory only",
			zap.Float64("q", q))
	}

	return boxedSumQ(ds, grid, radii, q, w, opts.metric(), opts.Progress)
}

// AutoBoxedCorrelationSum computes the boxed correlation sum with an
// automatically chosen radius range and box size: the Bueno-Orovio heuristic
// supplies (r0, ε0), the radii are 16 logarithmically spaced values spanning
// [ε0, r0], and the boxes use edge r0. Returns the radii alongside the sums
// so callers can fit the log-log slope directly.
//
// The range is only constructible when ε0 < r0; otherwise the call fails
// fast with ErrBoxSizeRange instead of producing a meaningless radius range.
func AutoBoxedCorrelationSum(ds *dataset.Dataset, opts Options) (radii, sums []float64, err error) {
	if ds == nil || ds.Len() < 2 {
		return nil, nil, ErrTooFewPoints
	}
	prismDim := opts.PrismDim
	if prismDim == 0 {
		prismDim = AutoPrismDim(ds, PrismBueno)
	}

	r0, eps0, err := EstimateBoxSizeBuenoOrovio(ds, prismDim, opts)
	if err != nil {
		return nil, nil, err
	}
	if r0 <= eps0 {
		return nil, nil, ErrBoxSizeRange
	}

	radii = logSpace(eps0, r0, autoRadiiCount)
	opts.PrismDim = prismDim
	sums, err = BoxedCorrelationSum(ds, radii, r0, opts)
	if err != nil {
		return nil, nil, err
	}

	return radii, sums, nil
}

// boxedSum2 runs the q=2 specialization: for every box, pairs are drawn from
// the box's own contents against the forward neighbor list and counted once.
func boxedSum2(ds *dataset.Dataset, grid *boxing.Grid, radii []float64, w int,
	m dataset.Metric, progress ProgressFunc) ([]float64, error) {
	counts := make([]float64, len(radii))
	total := grid.NumBoxes()
	for k := 0; k < total; k++ {
		neighbors, err := grid.Neighbors(k, boxing.ScanForward)
		if err != nil {
			return nil, err
		}
		innerCount2(grid.Contents[k], neighbors, ds, radii, w, m, counts)
		if progress != nil {
			progress(k+1, total)
		}
	}
	n := ds.Len()
	floats.Scale(2/(float64(n-w)*float64(n-w-1)), counts)

	return counts, nil
}

// innerCount2 counts pairs between box and the flattened forward neighbor
// list. The neighbor list leads with box's own contents, so starting the
// inner loop at position i+1 yields exactly the pairs not yet counted by any
// earlier box, the half-open scheme that makes deduplication unnecessary.
func innerCount2(box, neighbors []int, ds *dataset.Dataset, radii []float64, w int,
	m dataset.Metric, counts []float64) {
	for i, xi := range box {
		x := ds.Point(xi)
		for j := i + 1; j < len(neighbors); j++ {
			yi := neighbors[j]
			if absInt(xi-yi) <= w {
				continue
			}
			countDescending(m.Distance(x, ds.Point(yi)), radii, counts)
		}
	}
}

// boxedSumQ runs the general-q strategy: every point of every box gets its
// complete neighbor count from the full adjacent-box scan, raised to (q−1)
// and accumulated; boundary points within w of either sequence end are
// skipped because their neighbor count would be artificially truncated.
func boxedSumQ(ds *dataset.Dataset, grid *boxing.Grid, radii []float64, q float64, w int,
	m dataset.Metric, progress ProgressFunc) ([]float64, error) {
	n := ds.Len()
	sums := make([]float64, len(radii))
	current := make([]float64, len(radii))
	total := grid.NumBoxes()
	for k := 0; k < total; k++ {
		neighbors, err := grid.Neighbors(k, boxing.ScanAll)
		if err != nil {
			return nil, err
		}
		for _, xi := range grid.Contents[k] {
			if xi < w || xi > n-1-w {
				continue
			}
			for r := range current {
				current[r] = 0
			}
			x := ds.Point(xi)
			for _, yi := range neighbors {
				if absInt(xi-yi) <= w {
					continue
				}
				countDescending(m.Distance(x, ds.Point(yi)), radii, current)
			}
			for r := range sums {
				sums[r] += math.Pow(current[r], q-1)
			}
		}
		if progress != nil {
			progress(k+1, total)
		}
	}

	return renormalizeQ(sums, n, q, w), nil
}
