package corrsum_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/corrdim/corrsum"
	"github.com/katalvlaran/corrdim/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lorenzTrajectory integrates the Lorenz system (σ=10, ρ=28, β=8/3) with a
// fixed-step RK4 scheme, discards a transient, and returns n points sampled
// every stride steps of size dt.
func lorenzTrajectory(n, stride int, dt float64) [][]float64 {
	const sigma, rho = 10.0, 28.0
	beta := 8.0 / 3.0

	deriv := func(s [3]float64) [3]float64 {
		return [3]float64{
			sigma * (s[1] - s[0]),
			s[0]*(rho-s[2]) - s[1],
			s[0]*s[1] - beta*s[2],
		}
	}
	step := func(s [3]float64) [3]float64 {
		k1 := deriv(s)
		k2 := deriv([3]float64{s[0] + dt/2*k1[0], s[1] + dt/2*k1[1], s[2] + dt/2*k1[2]})
		k3 := deriv([3]float64{s[0] + dt/2*k2[0], s[1] + dt/2*k2[1], s[2] + dt/2*k2[2]})
		k4 := deriv([3]float64{s[0] + dt*k3[0], s[1] + dt*k3[1], s[2] + dt*k3[2]})
		for d := 0; d < 3; d++ {
			s[d] += dt / 6 * (k1[d] + 2*k2[d] + 2*k3[d] + k4[d])
		}

		return s
	}

	s := [3]float64{1, 1, 1}
	for i := 0; i < 1000; i++ { // transient
		s = step(s)
	}
	points := make([][]float64, n)
	for i := range points {
		for k := 0; k < stride; k++ {
			s = step(s)
		}
		points[i] = []float64{s[0], s[1], s[2]}
	}

	return points
}

// TestLorenzCorrelationDimension is the end-to-end scenario: the log-log
// slope of the automatically tuned boxed correlation sum of a 10,000-point
// Lorenz trajectory must approximate the attractor's known correlation
// dimension of about 2.05.
func TestLorenzCorrelationDimension(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10k-point end-to-end scenario in short mode")
	}

	ds, err := dataset.New(lorenzTrajectory(10000, 5, 0.01))
	require.NoError(t, err)

	radii, sums, err := corrsum.AutoBoxedCorrelationSum(ds, corrsum.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, sums, len(radii))

	logR := make([]float64, len(radii))
	logC := make([]float64, len(radii))
	for i := range radii {
		logR[i] = math.Log(radii[i])
		logC[i] = math.Log(sums[i])
	}
	slope, err := corrsum.LinearRegionSlope(logR, logC)
	require.NoError(t, err)

	assert.InDelta(t, 2.05, slope, 0.3,
		"correlation-dimension estimate for the Lorenz attractor")
}
