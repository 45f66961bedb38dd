package likelihood

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xtding233/gacha-sim/internal/config"
	"github.com/xtding233/gacha-sim/internal/gacha"
	"github.com/xtding233/gacha-sim/internal/report"
)

// previewStep is the budget spacing of the console preview table.
const previewStep = 100

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
	rows, err := r.Likelihood(ctx, p.ScanMax)
	if err != nil {
		return err
	}

	path := filepath.Join(p.OutDir, report.FileName(p.Trials, p.TenDraw))
	if err := report.SaveLikelihood(path, rows); err != nil {
		return err
	}
	l.Info("likelihood table written",
		zap.String("path", path),
		zap.Int("rows", len(rows)),
		zap.Duration("duration", time.Since(start)))

	data := [][]string{{"Draws", "0", "1", "2", "3", "4+", "Expected"}}
	for _, row := range rows {
		if row.Budget%previewStep != 0 && row.Budget != p.ScanMax {
			continue
		}
		rec := []string{fmt.Sprintf("%d", row.Budget)}
		for _, f := range row.Freq {
			rec = append(rec, fmt.Sprintf("%.4f", f))
		}
		rec = append(rec, fmt.Sprintf("%.3f", row.ExpectedCopies()))
		data = append(data, rec)
	}
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Success.Printfln("Wrote %s", path)
	return nil
}

var Cmd = &cobra.Command{
	Use:     "likelihood",
	Short:   "Copy-count distribution for every draw budget up to --scan-max",
	Aliases: []string{"l"},
	Args:    cobra.NoArgs,
}
