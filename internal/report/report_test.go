package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xtding233/gacha-sim/internal/gacha"
	"github.com/xtding233/gacha-sim/internal/stats"
)

func sampleRows() []gacha.LikelihoodRow {
	return []gacha.LikelihoodRow{
		{Budget: 0, Freq: [gacha.Buckets]float64{1, 0, 0, 0, 0}},
		{Budget: 1, Freq: [gacha.Buckets]float64{0.9941, 0.0059, 0, 0, 0}},
		{Budget: 2, Freq: [gacha.Buckets]float64{1.0 / 3.0, 1.0 / 3.0, 1.0 / 3.0, 0, 0}},
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(10000, true); got != "likelihood_10000_tendraw.csv" {
		t.Fatalf("got %q", got)
	}
	if got := FileName(500, false); got != "likelihood_500_single.csv" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteLikelihoodFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLikelihood(&buf, sampleRows()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0] != "budget,p0,p1,p2,p3,p4plus" {
		t.Fatalf("header %q", lines[0])
	}
	if lines[3] != "2,0.333333,0.333333,0.333333,0.000000,0.000000" {
		t.Fatalf("row %q", lines[3])
	}
}

func TestSaveAndLoadLikelihood(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName(3, true))
	if err := SaveLikelihood(path, sampleRows()); err != nil {
		t.Fatal(err)
	}
	rows, err := LoadLikelihood(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 || rows[1].Budget != 1 || rows[1].Freq[1] != 0.0059 {
		t.Fatalf("got %+v", rows)
	}
}

func TestLoadLikelihoodMissing(t *testing.T) {
	_, err := LoadLikelihood(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("got %v, want ErrMissingInput", err)
	}
}

func TestReadLikelihoodRejectsGarbage(t *testing.T) {
	if _, err := ReadLikelihood(strings.NewReader("a,b\n")); err == nil {
		t.Fatalf("expected error for short records")
	}
	if _, err := ReadLikelihood(strings.NewReader("x,p0,p1,p2,p3,p4plus\n")); err == nil {
		t.Fatalf("expected error for bad header")
	}
}

func TestRenderLikelihood(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName(3, false))
	if err := RenderLikelihood(sampleRows(), 3, false, path); err != nil {
		t.Fatal(err)
	}
	probs, expected := ChartPaths(path)
	for _, p := range []string{probs, expected} {
		fi, err := os.Stat(p)
		if err != nil {
			t.Fatal(err)
		}
		if fi.Size() == 0 {
			t.Fatalf("%s is empty", p)
		}
	}
}

func TestPrintExpectation(t *testing.T) {
	rep := gacha.ExpectationReport{
		Target:    4,
		Trials:    10000,
		Batch:     true,
		Seed:      1,
		Draws:     stats.Summarize([]float64{400, 420, 440}),
		OffTarget: stats.Summarize([]float64{2, 3, 4}),
	}
	lines := ExpectationSummary(rep)
	if !strings.Contains(lines[0], "get 4 copies") || !strings.Contains(lines[0], "10,000 trials: 420.00 +/-") {
		t.Fatalf("line 0: %q", lines[0])
	}
	if !strings.Contains(lines[1], "spooks") || !strings.Contains(lines[1], ": 3.00 +/-") {
		t.Fatalf("line 1: %q", lines[1])
	}

	var buf bytes.Buffer
	if err := PrintExpectation(&buf, rep, time.Second); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "105,000 Magia Stones (tendraw)") {
		t.Fatalf("cost line missing:\n%s", out)
	}
	if !strings.Contains(out, "Script runtime:") {
		t.Fatalf("runtime missing:\n%s", out)
	}
}

func TestFileWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.csv")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	changed := make(chan string, 8)
	w := NewFileWatcher([]string{path}, 50*time.Millisecond, func(p string) { changed <- p })
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	// a neighbour in the same directory is ignored
	if err := os.WriteFile(filepath.Join(dir, "other.csv"), []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}
	// several writes in a burst collapse into one call
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte(strings.Repeat("x", i+2)), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	select {
	case p := <-changed:
		if p != filepath.Clean(path) {
			t.Fatalf("got %q", p)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no change reported")
	}
	select {
	case p := <-changed:
		t.Fatalf("unexpected second call for %q", p)
	case <-time.After(300 * time.Millisecond):
	}
	w.Stop()
}

func TestFileWatcherSeesNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "later.csv")
	changed := make(chan string, 1)
	w := NewFileWatcher([]string{path}, 10*time.Millisecond, func(p string) {
		select {
		case changed <- p:
		default:
		}
	})
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := SaveLikelihood(path, sampleRows()); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatalf("creation not reported")
	}
}

func TestFileWatcherMissingDir(t *testing.T) {
	w := NewFileWatcher([]string{filepath.Join(t.TempDir(), "gone", "t.csv")}, time.Millisecond, nil)
	if err := w.Start(); err == nil {
		w.Stop()
		t.Fatalf("expected error for missing directory")
	}
	w.Stop()
}
