package setdiff

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/xtding233/gacha-sim/internal/stats"
)

// DefaultOverlaps are the overlap fractions of the summary report.
var DefaultOverlaps = []float64{1.0, 0.75, 0.50, 0.25, 0.0}

// TrendOverlaps returns n evenly spaced overlaps from 0 to 1 inclusive.
func TrendOverlaps(n int) []float64 {
	if n <= 1 {
		return []float64{0}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

// Result holds millisecond timings of both methods at one overlap.
type Result struct {
	Overlap float64
	Set     stats.Stats
	Key     stats.Stats
}

// Measure runs trials per overlap sequentially, so timings never compete
// for CPU with each other.
func Measure(ctx context.Context, n, trials int, overlaps []float64, seed uint64, log *zap.Logger) ([]Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	rng := rand.New(rand.NewPCG(seed, 0))
	out := make([]Result, 0, len(overlaps))
	for _, ov := range overlaps {
		set := make([]float64, trials)
		key := make([]float64, trials)
		for i := 0; i < trials; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			t := Trial(n, ov, rng)
			set[i] = float64(t.Set.Nanoseconds()) / 1e6
			key[i] = float64(t.Key.Nanoseconds()) / 1e6
		}
		r := Result{Overlap: ov, Set: stats.Summarize(set), Key: stats.Summarize(key)}
		log.Info("overlap measured",
			zap.Float64("overlap", ov),
			zap.Float64("set_mean_ms", r.Set.Mean),
			zap.Float64("key_mean_ms", r.Key.Mean))
		out = append(out, r)
	}
	return out, nil
}
