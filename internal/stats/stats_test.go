package stats

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if s.N != 8 || !near(s.Mean, 5) {
		t.Fatalf("n=%d mean=%f", s.N, s.Mean)
	}
	// sample variance: 32 / 7
	if !near(s.Var, 32.0/7.0) {
		t.Fatalf("var=%f, want %f", s.Var, 32.0/7.0)
	}
	if want := 3.291 * math.Sqrt(32.0/7.0) / math.Sqrt(8); !near(s.CI999, want) {
		t.Fatalf("ci=%f, want %f", s.CI999, want)
	}
	if s.Min != 2 || s.Max != 9 {
		t.Fatalf("min=%f max=%f", s.Min, s.Max)
	}
	if !near(s.P50, 4) || !near(s.P90, 7.4) {
		t.Fatalf("p50=%f p90=%f, want 4 and 7.4", s.P50, s.P90)
	}
	// population sd: sqrt(32 / 8)
	if !near(s.PopStdDev, 2) {
		t.Fatalf("pop sd=%f, want 2", s.PopStdDev)
	}
}

func TestSummarizeEdges(t *testing.T) {
	if s := Summarize(nil); s.N != 0 || s.Mean != 0 {
		t.Fatalf("empty: %+v", s)
	}
	s := Summarize([]float64{3})
	if s.Mean != 3 || s.Var != 0 || s.CI999 != 0 || s.PopStdDev != 0 || s.P99 != 3 || math.IsNaN(s.StdDev) {
		t.Fatalf("single sample: %+v", s)
	}
}

func TestSummarizeDoesNotReorder(t *testing.T) {
	xs := []float64{3, 1, 2}
	Summarize(xs)
	if xs[0] != 3 || xs[1] != 1 || xs[2] != 2 {
		t.Fatalf("input reordered: %v", xs)
	}
}

func TestInts(t *testing.T) {
	got := Ints([]int{1, 2, 3})
	if len(got) != 3 || got[2] != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestStatsComparable(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	a, b := Summarize(xs), Summarize(xs)
	if a != b {
		t.Fatalf("summaries differ: %+v vs %+v", a, b)
	}
	xs[0] = 100
	if Summarize([]float64{1, 2, 3, 4}) != a {
		t.Fatalf("summary tied to input slice")
	}
}
