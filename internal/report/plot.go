package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/xtding233/gacha-sim/internal/gacha"
)

// Series is one named line on a chart.
type Series struct {
	Name string
	X, Y []float64
}

// Chart describes a line chart written to a PNG file.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// Render saves the chart to path; the extension picks the image format.
func (c Chart) Render(path string) error {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	lines := make([]interface{}, 0, 2*len(c.Series))
	for _, s := range c.Series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("series %q: %d x values, %d y values", s.Name, len(s.X), len(s.Y))
		}
		xys := make(plotter.XYs, len(s.X))
		for i := range s.X {
			xys[i].X, xys[i].Y = s.X[i], s.Y[i]
		}
		lines = append(lines, s.Name, xys)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

var bucketNames = [gacha.Buckets]string{"0 copies", "1 copy", "2 copies", "3 copies", "4+ copies"}

// ChartPaths returns the probability and expected-copies image paths for a
// likelihood table.
func ChartPaths(csvPath string) (probs, expected string) {
	base := strings.TrimSuffix(csvPath, filepath.Ext(csvPath))
	return base + ".png", base + "_expected.png"
}

// RenderLikelihood draws the copy distribution and the expected copies
// against the draw budget.
func RenderLikelihood(rows []gacha.LikelihoodRow, trials int, tenDraw bool, csvPath string) error {
	x := make([]float64, len(rows))
	exp := make([]float64, len(rows))
	ys := make([][]float64, gacha.Buckets)
	for i := range ys {
		ys[i] = make([]float64, len(rows))
	}
	for i, r := range rows {
		x[i] = float64(r.Budget)
		exp[i] = r.ExpectedCopies()
		for b, f := range r.Freq {
			ys[b][i] = f
		}
	}

	probs := Chart{
		Title:  fmt.Sprintf("Featured copies by draw budget (%d trials, %s)", trials, DrawMode(tenDraw)),
		XLabel: "Draws",
		YLabel: "Probability",
	}
	for b, name := range bucketNames {
		probs.Series = append(probs.Series, Series{Name: name, X: x, Y: ys[b]})
	}
	expected := Chart{
		Title:  fmt.Sprintf("Expected featured copies (%d trials, %s)", trials, DrawMode(tenDraw)),
		XLabel: "Draws",
		YLabel: "Copies",
		Series: []Series{{Name: "expected copies", X: x, Y: exp}},
	}

	probsPath, expPath := ChartPaths(csvPath)
	if err := probs.Render(probsPath); err != nil {
		return fmt.Errorf("render %s: %w", probsPath, err)
	}
	if err := expected.Render(expPath); err != nil {
		return fmt.Errorf("render %s: %w", expPath, err)
	}
	return nil
}
