package gacha

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xtding233/gacha-sim/internal/stats"
)

// Buckets is the number of frequency columns in a likelihood row:
// 0, 1, 2, 3 and "CopyCeiling or more" copies.
const Buckets = CopyCeiling + 1

// progressEvery is how many expectation trials pass between progress logs.
const progressEvery = 1000

// Runner repeats independent trials and reduces them.
type Runner struct {
	Options Options // shared, read-only across trials
	Trials  int     // k, trials per report / per budget
	Workers int     // <= 0 => runtime.NumCPU()
	Seed    uint64  // run seed; trial streams derive from it
	Logger  *zap.Logger
}

// ExpectationReport summarizes k expectation trials.
type ExpectationReport struct {
	Target    int
	Trials    int
	Batch     bool
	Seed      uint64
	Draws     stats.Stats
	OffTarget stats.Stats
}

// LikelihoodRow is the empirical copy distribution at one draw budget.
type LikelihoodRow struct {
	Budget int
	Freq   [Buckets]float64
}

// ExpectedCopies is the dot product of Freq with weights 0..CopyCeiling.
func (r LikelihoodRow) ExpectedCopies() float64 {
	var e float64
	for i, f := range r.Freq {
		e += float64(i) * f
	}
	return e
}

func (r *Runner) workers() int {
	if r.Workers <= 0 {
		return runtime.NumCPU()
	}
	return r.Workers
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// rng returns the random stream owned by one trial.
func (r *Runner) rng(stream uint64) RandomSource {
	return NewStreamRNG(r.Seed, stream)
}

// Expectation runs Trials expectation trials for target copies.
func (r *Runner) Expectation(ctx context.Context, target int) (ExpectationReport, error) {
	if r.Trials <= 0 {
		return ExpectationReport{}, fmt.Errorf("%w: got %d", ErrInvalidTrials, r.Trials)
	}
	if target <= 0 {
		return ExpectationReport{}, fmt.Errorf("%w: got %d", ErrInvalidTarget, target)
	}
	log := r.logger()

	draws := make([]int, r.Trials)
	spooks := make([]int, r.Trials)
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for _, c := range chunks(r.Trials, r.workers()) {
		g.Go(func() error {
			for i := c.lo; i < c.hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := RunExpectation(r.Options, target, r.rng(uint64(i)))
				if err != nil {
					return err
				}
				draws[i], spooks[i] = res.Draws, res.OffTarget
				if n := done.Add(1); n%progressEvery == 0 {
					log.Info("trials completed",
						zap.Int64("trials", n),
						zap.Int("sample_draws", res.Draws),
						zap.Int("sample_spooks", res.OffTarget))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ExpectationReport{}, err
	}

	return ExpectationReport{
		Target:    target,
		Trials:    r.Trials,
		Batch:     r.Options.Batch,
		Seed:      r.Seed,
		Draws:     stats.Summarize(stats.Ints(draws)),
		OffTarget: stats.Summarize(stats.Ints(spooks)),
	}, nil
}

// Likelihood scans budgets 0..maxBudget inclusive and returns one row per
// budget, ordered by budget.
func (r *Runner) Likelihood(ctx context.Context, maxBudget int) ([]LikelihoodRow, error) {
	if r.Trials <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, r.Trials)
	}
	if maxBudget < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBudget, maxBudget)
	}
	log := r.logger()

	rows := make([]LikelihoodRow, maxBudget+1)
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for b := 0; b <= maxBudget; b++ {
		g.Go(func() error {
			row, err := r.likelihoodRow(ctx, b)
			if err != nil {
				return err
			}
			rows[b] = row
			if n := done.Add(1); n%100 == 0 {
				log.Info("budgets completed", zap.Int64("budgets", n), zap.Int("of", maxBudget+1))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Runner) likelihoodRow(ctx context.Context, budget int) (LikelihoodRow, error) {
	var counts [Buckets]int
	base := uint64(budget) << 32
	for i := 0; i < r.Trials; i++ {
		if err := ctx.Err(); err != nil {
			return LikelihoodRow{}, err
		}
		res, err := RunLikelihood(r.Options, budget, r.rng(base|uint64(i)))
		if err != nil {
			return LikelihoodRow{}, err
		}
		counts[res.Copies]++
	}
	row := LikelihoodRow{Budget: budget}
	for i, c := range counts {
		row.Freq[i] = float64(c) / float64(r.Trials)
	}
	return row, nil
}

type span struct{ lo, hi int }

// chunks splits n trials into at most parts contiguous spans.
func chunks(n, parts int) []span {
	if parts > n {
		parts = n
	}
	per, rem := n/parts, n%parts
	out := make([]span, 0, parts)
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + per
		if i == parts-1 {
			hi += rem
		}
		out = append(out, span{lo, hi})
		lo = hi
	}
	return out
}
