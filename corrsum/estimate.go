package corrsum

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/corrdim/boxing"
	"github.com/katalvlaran/corrdim/dataset"
)

// AutoPrismDim picks the number of leading coordinates used for box
// assignment. PrismBueno caps the data dimension at ⌈0.75·log2(N)⌉ so the
// number of candidate boxes stays tractable for the available points;
// PrismTheiler caps it at 2. The result always lies in [1, ds.Dim()].
// Complexity: O(1).
func AutoPrismDim(ds *dataset.Dataset, variant PrismVariant) int {
	d := ds.Dim()
	if variant == PrismTheiler {
		if d > 2 {
			return 2
		}

		return d
	}

	limit := int(math.Ceil(0.75 * math.Log2(float64(ds.Len()))))
	if limit < 1 {
		limit = 1
	}
	if d > limit {
		return limit
	}

	return d
}

// EstimateBoxSizeTheiler picks a box size r0 and the minimum usable radius
// ε0 with Theiler's heuristic: estimate a rough correlation dimension ν from
// a ⌈√N⌉-point random subsample, then size the boxes as R·(2/N)^(1/ν) for
// attractor extent R. ε0 is the exact minimum pairwise distance of the full
// dataset; when that is zero (duplicate points) it is substituted with
// R/1000 and a diagnostic is emitted rather than failing.
//
// Returns ErrTooFewPoints, ErrZeroExtent (all points coincide), or
// ErrEstimatorDiverged when the slope fit yields no finite box size.
// Complexity: O(N²·D) dominated by the minimum-distance scan.
func EstimateBoxSizeTheiler(ds *dataset.Dataset, opts Options) (r0, eps0 float64, err error) {
	if ds == nil || ds.Len() < 2 {
		return 0, 0, ErrTooFewPoints
	}
	n := ds.Len()
	metric := opts.metric()
	rng := opts.rng()

	extent, eps0, err := extentAndMinDistance(ds, metric, opts.log())
	if err != nil {
		return 0, 0, err
	}

	sub := ds.Subsample(sqrtSampleSize(n), rng)
	radii := logSpace(eps0, extent, theilerRadiiCount)
	nu, err := roughDimension(sub, radii, metric)
	if err != nil {
		return 0, 0, fmt.Errorf("theiler box size: %w", ErrEstimatorDiverged)
	}

	r0 = extent * math.Pow(2/float64(n), 1/nu)
	if math.IsNaN(r0) || math.IsInf(r0, 0) || r0 <= 0 {
		return 0, 0, ErrEstimatorDiverged
	}

	return r0, eps0, nil
}

// EstimateBoxSizeBuenoOrovio picks a box size r0 and the minimum usable
// radius ε0 with the Bueno-Orovio heuristic (the default of the automatic
// entry point): box a tenth-size subsample at trial edge R/10 to measure the
// occupied-box count η_ℓ, then repeatedly estimate a rough dimension ν from
// fresh ⌈√N⌉-point subsamples until ℓ/η_opt^(1/ν) comes out finite, where
// ℓ = (R/10)·η_ℓ^(1/ν) is the effective attractor size and
// η_opt = N^(2/3)·√((3^ν − 1/2)/(3^P − 1)) the combinatorially optimal
// occupied-box count for prism dimension P.
//
// A degenerate slope fit produces NaN; each such attempt is discarded and
// retried with a fresh subsample, up to Options.MaxRetries attempts
// (negative = retry forever). Returns
// ErrTooFewPoints, boxing.ErrPrismDim, ErrZeroExtent, or
// ErrEstimatorDiverged when the cap is exhausted.
func EstimateBoxSizeBuenoOrovio(ds *dataset.Dataset, prismDim int, opts Options) (r0, eps0 float64, err error) {
	if ds == nil || ds.Len() < 2 {
		return 0, 0, ErrTooFewPoints
	}
	if prismDim == 0 {
		prismDim = AutoPrismDim(ds, PrismBueno)
	}
	if prismDim < 1 || prismDim > ds.Dim() {
		return 0, 0, boxing.ErrPrismDim
	}
	n := ds.Len()
	metric := opts.metric()
	logger := opts.log()
	rng := opts.rng()

	extent, eps0, err := extentAndMinDistance(ds, metric, logger)
	if err != nil {
		return 0, 0, err
	}

	// Occupied-box count of a tenth-size subsample at the trial edge R/10.
	trialEdge := extent / 10
	trial, err := boxing.Partition(ds.Subsample(n/10, rng), trialEdge, prismDim)
	if err != nil {
		return 0, 0, err
	}
	etaTrial := float64(trial.NumBoxes())

	radii := logSpace(eps0, extent, buenoRadiiCount)
	maxAttempts := opts.retries()
	for attempt := 1; ; attempt++ {
		sub := ds.Subsample(sqrtSampleSize(n), rng)
		nu, fitErr := roughDimension(sub, radii, metric)
		if fitErr == nil {
			size := trialEdge * math.Pow(etaTrial, 1/nu)
			etaOpt := math.Pow(float64(n), 2.0/3.0) *
				math.Sqrt((math.Pow(3, nu)-0.5)/(math.Pow(3, float64(prismDim))-1))
			r0 = size / math.Pow(etaOpt, 1/nu)
			if !math.IsNaN(r0) && !math.IsInf(r0, 0) && r0 > 0 {
				return r0, eps0, nil
			}
		}
		logger.Debug("box size estimate did not converge; retrying with a fresh subsample",
			zap.Int("attempt", attempt), zap.Error(fitErr))
		if maxAttempts >= 0 && attempt >= maxAttempts {
			return 0, 0, ErrEstimatorDiverged
		}
	}
}

// extentAndMinDistance computes the attractor extent R and the minimum
// pairwise distance ε0, applying the R/1000 substitution for degenerate
// (duplicate-point) datasets.
func extentAndMinDistance(ds *dataset.Dataset, m dataset.Metric, logger *zap.Logger) (extent, eps0 float64, err error) {
	extent = ds.Extent()
	if extent == 0 {
		return 0, 0, ErrZeroExtent
	}
	eps0 = dataset.MinimumPairwiseDistance(ds, m)
	if eps0 == 0 {
		eps0 = extent / 1000
		logger.Warn("minimum pairwise distance is zero (duplicate points); substituting fallback",
			zap.Float64("epsilon0", eps0))
	}

	return extent, eps0, nil
}

// roughDimension estimates the correlation dimension of a subsample as the
// linear-region slope of its log-log correlation-sum curve.
func roughDimension(sub *dataset.Dataset, radii []float64, m dataset.Metric) (float64, error) {
	cs, err := CorrelationSum(sub, radii, Options{Metric: m})
	if err != nil {
		return 0, err
	}
	logR := make([]float64, len(radii))
	logC := make([]float64, len(radii))
	for i := range radii {
		logR[i] = math.Log(radii[i])
		logC[i] = math.Log(cs[i]) // log(0) = -Inf; filtered by the fit
	}

	return LinearRegionSlope(logR, logC)
}

// sqrtSampleSize is the ⌈√N⌉ subsample size both heuristics draw for the
// rough dimension estimate.
func sqrtSampleSize(n int) int {
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// logSpace returns count logarithmically spaced values spanning [lo, hi]
// inclusive. Both bounds must be positive.
func logSpace(lo, hi float64, count int) []float64 {
	return floats.LogSpan(make([]float64, count), lo, hi)
}
