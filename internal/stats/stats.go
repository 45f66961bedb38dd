package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Z999 is the two-sided normal quantile for 99.9% confidence.
const Z999 = 3.291

// Stats summarizes simulation results.
type Stats struct {
	N         int
	Mean      float64
	Var       float64 // sample variance (N-1)
	StdDev    float64
	PopStdDev float64 // population standard deviation (N)
	CI999     float64 // half-width of the 99.9% confidence interval of Mean
	Min       float64
	Max       float64
	P50       float64
	P90       float64
	P99       float64
}

// Ints converts integer samples for Summarize.
func Ints(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = float64(v)
	}
	return out
}

// Summarize computes mean/variance/percentiles for samples.
// Percentiles interpolate linearly on the empirical CDF.
func Summarize(xs []float64) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	mean, variance := stat.MeanVariance(xs, nil)
	_, pop := stat.PopMeanStdDev(xs, nil)
	// a single sample has no spread
	if n == 1 {
		variance, pop = 0, 0
	}
	stddev := math.Sqrt(variance)

	cp := append([]float64(nil), xs...)
	sort.Float64s(cp)

	return Stats{
		N:         n,
		Mean:      mean,
		Var:       variance,
		StdDev:    stddev,
		PopStdDev: pop,
		CI999:     HalfWidth(stddev, n),
		Min:       floats.Min(cp),
		Max:       floats.Max(cp),
		P50:       stat.Quantile(0.50, stat.LinInterp, cp, nil),
		P90:       stat.Quantile(0.90, stat.LinInterp, cp, nil),
		P99:       stat.Quantile(0.99, stat.LinInterp, cp, nil),
	}
}

// HalfWidth returns Z999 * sd / sqrt(n).
func HalfWidth(sd float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return Z999 * sd / math.Sqrt(float64(n))
}
