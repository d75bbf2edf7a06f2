// Package corrsum defines options, defaults, and sentinel errors for the
// corrsum subpackage of github.com/katalvlaran/corrdim.
package corrsum

import (
	"errors"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/corrdim/dataset"
)

// Sentinel errors for correlation-sum operations.
var (
	// ErrTooFewPoints indicates a nil dataset or one without enough points
	// to form a pair.
	ErrTooFewPoints = errors.New("corrsum: dataset must contain at least two points")
	// ErrNoRadii indicates an empty radius list.
	ErrNoRadii = errors.New("corrsum: at least one radius is required")
	// ErrUnsortedRadii indicates radii not in ascending order.
	ErrUnsortedRadii = errors.New("corrsum: radii must be in ascending order")
	// ErrNonPositiveRadius indicates a radius ≤ 0.
	ErrNonPositiveRadius = errors.New("corrsum: radii must be positive")
	// ErrTheilerWindow indicates a negative window or one so large that no
	// admissible pair remains.
	ErrTheilerWindow = errors.New("corrsum: theiler window must be non-negative and leave admissible pairs")
	// ErrZeroExtent indicates a dataset whose points all coincide, leaving
	// no spatial extent to derive radii from.
	ErrZeroExtent = errors.New("corrsum: dataset has zero spatial extent")
	// ErrBoxSizeRange indicates the estimated box size does not exceed the
	// minimum inter-point distance, so no ascending radius range exists.
	ErrBoxSizeRange = errors.New("corrsum: estimated box size must exceed the minimum inter-point distance")
	// ErrEstimatorDiverged indicates box-size estimation exhausted its
	// retries without producing a finite positive value.
	ErrEstimatorDiverged = errors.New("corrsum: box size estimation failed to converge")
	// ErrShortCurve indicates too few finite samples for a linear-region fit.
	ErrShortCurve = errors.New("corrsum: too few finite samples for a linear-region fit")
	// ErrLengthMismatch indicates x and y curves of differing length.
	ErrLengthMismatch = errors.New("corrsum: x and y must have equal length")
)

// DEFAULTS - single source of truth for zero-value Options behavior.
const (
	// DefaultQ is the classical correlation-sum order.
	DefaultQ = 2.0

	// DefaultMaxRetries caps Bueno-Orovio estimation attempts. Set
	// Options.MaxRetries negative to retry without bound.
	DefaultMaxRetries = 64

	// DefaultSlopeTolerance is the relative secant-slope deviation that ends
	// a linear region during slope fitting.
	DefaultSlopeTolerance = 0.25

	// defaultSeed drives subsampling when no Rand is injected, keeping the
	// estimators reproducible by default.
	defaultSeed = 42
)

// Radius counts used by the estimation heuristics.
const (
	theilerRadiiCount = 12
	buenoRadiiCount   = 16
	autoRadiiCount    = 16
)

// ProgressFunc observes per-box progress of a boxed computation. It is
// invoked once per processed box with done ∈ [1, total]. It is a pure side
// channel and must not influence the computation.
type ProgressFunc func(done, total int)

// PrismVariant selects the heuristic used by AutoPrismDim.
type PrismVariant int

const (
	// PrismBueno caps the prism dimension at ⌈0.75·log2(N)⌉ (Bueno-Orovio).
	PrismBueno PrismVariant = iota
	// PrismTheiler caps the prism dimension at 2 (Theiler).
	PrismTheiler
)

// Options configures correlation-sum computations and box-size estimation.
// The zero value is usable: every field normalizes to a documented default.
type Options struct {
	// Q is the correlation-sum order. Zero selects the classical q=2 sum.
	// Orders q ≤ 1 execute but are flagged as unreliable via Logger.
	Q float64
	// PrismDim is the number of leading coordinates used for box assignment.
	// Zero selects AutoPrismDim with the PrismBueno variant.
	PrismDim int
	// TheilerWindow w excludes pairs of indices with |i−j| ≤ w from all
	// counts. Must be non-negative.
	TheilerWindow int
	// Metric measures pairwise point distance. Nil selects dataset.Euclidean.
	Metric dataset.Metric
	// Rand drives estimator subsampling. Nil selects a fixed-seed source, so
	// estimation is deterministic unless a source is injected.
	Rand *rand.Rand
	// Logger receives non-fatal diagnostics (degenerate minimum distance,
	// q ≤ 1 advisories, estimator retries). Nil selects zap.NewNop().
	Logger *zap.Logger
	// Progress, when non-nil, is invoked once per processed box.
	Progress ProgressFunc
	// MaxRetries caps Bueno-Orovio estimation attempts. Zero selects
	// DefaultMaxRetries; negative values retry without bound.
	MaxRetries int
}

// DefaultOptions returns an Options with every field at its documented
// default.
func DefaultOptions() Options {
	return Options{
		Q:          DefaultQ,
		Metric:     dataset.Euclidean{},
		MaxRetries: DefaultMaxRetries,
	}
}

// order returns the normalized correlation-sum order.
func (o Options) order() float64 {
	if o.Q == 0 {
		return DefaultQ
	}

	return o.Q
}

// metric returns the normalized pairwise metric.
func (o Options) metric() dataset.Metric {
	if o.Metric != nil {
		return o.Metric
	}

	return dataset.Euclidean{}
}

// rng returns the injected randomness source, or a fresh fixed-seed one.
// Call once per operation and reuse the result.
func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rand.New(rand.NewSource(defaultSeed))
}

// log returns the injected logger or a no-op one.
func (o Options) log() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return zap.NewNop()
}

// retries returns the normalized retry cap; -1 means unbounded.
func (o Options) retries() int {
	if o.MaxRetries == 0 {
		return DefaultMaxRetries
	}
	if o.MaxRetries < 0 {
		return -1
	}

	return o.MaxRetries
}
