package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xtding233/gacha-sim/internal/gacha"
	"github.com/xtding233/gacha-sim/internal/report"
	"github.com/xtding233/gacha-sim/internal/setdiff"
	"github.com/xtding233/gacha-sim/internal/stats"
)

// Trend sweeps 100 overlaps, so it defaults to smaller maps and fewer trials.
const (
	statsElements = 10_000
	statsTrials   = 10_000
	trendElements = 4096
	trendTrials   = 1000
)

// bench holds the per-command sizing flags.
type bench struct {
	elements int
	trials   int
}

func (b *bench) bind(cmd *cobra.Command, elements, trials int) {
	cmd.Flags().IntVar(&b.elements, "elements", elements, "keys per map")
	cmd.Flags().IntVar(&b.trials, "trials", trials, "trials per overlap")
}

var (
	seed       uint64
	statsBench bench
	trendBench bench
	root       = &cobra.Command{
		Use:               "setdiff",
		Short:             "Time set difference against key difference on int-keyed maps",
		SilenceUsage:      true,
		PersistentPreRunE: initLogging,
	}
	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Mean/std/min/max per overlap (100, 75, 50, 25, 0%)",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	trendCmd = &cobra.Command{
		Use:   "trend [out.png]",
		Short: "Chart mean runtime over 100 overlap values",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrend,
	}
)

func initLogging(cmd *cobra.Command, args []string) error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = gacha.NewSeed()
	}
	l.Info("benchmark starting", zap.String("command", cmd.Name()), zap.Uint64("seed", seed))
	cmd.SetContext(ctxzap.ToContext(cmd.Context(), l))
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	l := ctxzap.Extract(ctx)
	defer l.Sync()

	elements, trials := statsBench.elements, statsBench.trials
	start := time.Now()
	res, err := setdiff.Measure(ctx, elements, trials, setdiff.DefaultOverlaps, seed, l)
	if err != nil {
		return err
	}
	l.Info("benchmark complete", zap.Duration("duration", time.Since(start)))

	pterm.Println(fmt.Sprintf("Set size: %d, average of %d trials", elements, trials))
	for _, method := range []string{"set", "key"} {
		data := [][]string{{"Overlap", "Mean ms", "Std ms", "Min ms", "Max ms"}}
		for _, r := range res {
			s := r.Set
			if method == "key" {
				s = r.Key
			}
			data = append(data, row(r.Overlap, s))
		}
		pterm.DefaultSection.Println(method + " difference")
		if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
			return err
		}
	}
	return nil
}

func row(overlap float64, s stats.Stats) []string {
	return []string{
		fmt.Sprintf("%3d%%", int(100*overlap)),
		fmt.Sprintf("%.3f", s.Mean),
		fmt.Sprintf("%.3f", s.PopStdDev),
		fmt.Sprintf("%.3f", s.Min),
		fmt.Sprintf("%.3f", s.Max),
	}
}

func runTrend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	l := ctxzap.Extract(ctx)
	defer l.Sync()

	out := filepath.Join("out", "setdiff_trend.png")
	if len(args) == 1 {
		out = args[0]
	}
	elements, trials := trendBench.elements, trendBench.trials
	res, err := setdiff.Measure(ctx, elements, trials, setdiff.TrendOverlaps(100), seed, l)
	if err != nil {
		return err
	}
	x := make([]float64, len(res))
	set := make([]float64, len(res))
	key := make([]float64, len(res))
	for i, r := range res {
		x[i] = 100 * r.Overlap
		set[i], key[i] = r.Set.Mean, r.Key.Mean
	}
	chart := report.Chart{
		Title:  fmt.Sprintf("Set difference vs. key difference mean runtime (%d elements, %d trials)", elements, trials),
		XLabel: "Overlap (%)",
		YLabel: "Time (ms)",
		Series: []report.Series{
			{Name: "Set difference", X: x, Y: set},
			{Name: "Key difference", X: x, Y: key},
		},
	}
	if err := chart.Render(out); err != nil {
		return err
	}
	pterm.Success.Printfln("Wrote %s", out)
	return nil
}

func init() {
	root.PersistentFlags().Uint64Var(&seed, "seed", 0, "shuffle seed (0 = random)")
	statsBench.bind(statsCmd, statsElements, statsTrials)
	trendBench.bind(trendCmd, trendElements, trendTrials)

	root.AddCommand(statsCmd, trendCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
