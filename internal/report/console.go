package report

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/xtding233/gacha-sim/internal/gacha"
	"github.com/xtding233/gacha-sim/internal/stats"
	"github.com/xtding233/gacha-sim/internal/token"
)

// ExpectationSummary returns the two headline lines of an expectation run.
func ExpectationSummary(rep gacha.ExpectationReport) []string {
	printer := message.NewPrinter(language.English)
	return []string{
		printer.Sprintf("Average number of draws required to get %d copies of the featured rare over %d trials: %.2f +/- %.3f (99.9%% confidence)",
			rep.Target, rep.Trials, rep.Draws.Mean, rep.Draws.CI999),
		printer.Sprintf("Average number of spooks drawn while drawing for %d copies of the featured rare over %d trials: %.2f +/- %.3f (99.9%% confidence)",
			rep.Target, rep.Trials, rep.OffTarget.Mean, rep.OffTarget.CI999),
	}
}

// PrintExpectation writes the summary lines, a stats table, the stone cost
// of the mean draw count and the runtime.
func PrintExpectation(w io.Writer, rep gacha.ExpectationReport, elapsed time.Duration) error {
	for _, line := range ExpectationSummary(rep) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	printer := message.NewPrinter(language.English)
	row := func(name string, s stats.Stats) []string {
		return []string{
			name,
			printer.Sprintf("%.2f", s.Mean),
			printer.Sprintf("%.3f", s.CI999),
			printer.Sprintf("%.2f", s.StdDev),
			printer.Sprintf("%.0f", s.P50),
			printer.Sprintf("%.0f", s.P90),
			printer.Sprintf("%.0f", s.P99),
			printer.Sprintf("%.0f", s.Max),
		}
	}
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData([][]string{
			{"", "Mean", "±99.9%", "SD", "P50", "P90", "P99", "Max"},
			row("Draws", rep.Draws),
			row("Spooks", rep.OffTarget),
		}).Srender()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, table); err != nil {
		return err
	}

	cost := token.MagiaStones.TokensForMean(rep.Draws.Mean)
	if _, err := printer.Fprintf(w, "Estimated cost of the average: %d %s (%s)\n",
		cost, token.MagiaStones.Name, DrawMode(rep.Batch)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Seed: %d\nScript runtime: %.8f seconds.\n", rep.Seed, elapsed.Seconds())
	return err
}
