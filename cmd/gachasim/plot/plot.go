package plot

import (
	"path/filepath"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xtding233/gacha-sim/internal/config"
	"github.com/xtding233/gacha-sim/internal/report"
)

const defaultInterval = 500 * time.Millisecond

func Run(cmd *cobra.Command, args []string, p *config.Params) error {
	ctx := cmd.Context()
	l := ctxzap.Extract(ctx)

	path := filepath.Join(p.OutDir, report.FileName(p.Trials, p.TenDraw))
	render := func() error {
		rows, err := report.LoadLikelihood(path)
		if err != nil {
			return err
		}
		if err := report.RenderLikelihood(rows, p.Trials, p.TenDraw, path); err != nil {
			return err
		}
		probs, expected := report.ChartPaths(path)
		pterm.Success.Printfln("Rendered %s and %s", probs, expected)
		return nil
	}
	if err := render(); err != nil {
		return err
	}

	// the interactive flow runs without plot's own flags
	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		return nil
	}
	interval, _ := cmd.Flags().GetDuration("interval")
	if interval <= 0 {
		interval = defaultInterval
	}

	w := report.NewFileWatcher([]string{path}, interval, func(changed string) {
		l.Info("likelihood table changed", zap.String("path", changed))
		if err := render(); err != nil {
			l.Error("Failed to render charts", zap.Error(err))
		}
	})
	w.OnError = func(err error) { l.Warn("watch error", zap.Error(err)) }
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()
	l.Info("watching for changes", zap.String("path", path), zap.Duration("interval", interval))
	<-ctx.Done()
	return nil
}

var Cmd = &cobra.Command{
	Use:     "plot",
	Short:   "Render charts from the likelihood table",
	Aliases: []string{"p"},
	Args:    cobra.NoArgs,
}

func init() {
	Cmd.Flags().Bool("watch", false, "re-render when the table changes")
	Cmd.Flags().Duration("interval", defaultInterval, "quiet period before re-rendering with --watch")
}
