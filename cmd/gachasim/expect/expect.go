package expect

import (
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xtding233/gacha-sim/internal/config"
	"github.com/xtding233/gacha-sim/internal/gacha"
	"github.com/xtding233/gacha-sim/internal/report"
)

func Run(cmd *cobra.Command, args []string, p *config.Params) error {
	ctx := cmd.Context()
	l := ctxzap.Extract(ctx)

	start := time.Now()
	r := &gacha.Runner{
		Options: gacha.Options{Batch: p.TenDraw, Verbose: p.Verbose, Logger: l},
		Trials:  p.Trials,
		Workers: p.Workers,
		Seed:    p.Seed,
		Logger:  l,
	}
	rep, err := r.Expectation(ctx, p.Target)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	l.Info("expectation complete",
		zap.Float64("mean_draws", rep.Draws.Mean),
		zap.Float64("mean_spooks", rep.OffTarget.Mean),
		zap.Duration("duration", elapsed))

	return report.PrintExpectation(cmd.OutOrStdout(), rep, elapsed)
}

var Cmd = &cobra.Command{
	Use:     "expect",
	Short:   "Average draws and spooks needed for the target copy count",
	Aliases: []string{"e", "expectation"},
	Args:    cobra.NoArgs,
}
