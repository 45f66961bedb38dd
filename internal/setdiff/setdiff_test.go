package setdiff

import (
	"context"
	"math/rand/v2"
	"testing"
)

func TestDifferencesAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, ov := range DefaultOverlaps {
		x, y := Inputs(1000, ov, rng)
		a := SetDifference(x, y)
		b := KeyDifference(x, y)
		if want := 1000 - int(1000*ov); len(a) != want || len(b) != want {
			t.Fatalf("overlap %.2f: set=%d key=%d, want %d", ov, len(a), len(b), want)
		}
		for k := range a {
			if _, ok := b[k]; !ok {
				t.Fatalf("overlap %.2f: key %d missing from KeyDifference", ov, k)
			}
		}
	}
}

func TestInputsOverlap(t *testing.T) {
	x, y := Inputs(100, 0.25, rand.New(rand.NewPCG(3, 4)))
	shared := 0
	for k := range x {
		if _, ok := y[k]; ok {
			shared++
		}
	}
	if shared != 25 {
		t.Fatalf("shared=%d, want 25", shared)
	}
}

func TestTrendOverlaps(t *testing.T) {
	o := TrendOverlaps(5)
	if len(o) != 5 || o[0] != 0 || o[4] != 1 || o[2] != 0.5 {
		t.Fatalf("got %v", o)
	}
}

func TestMeasure(t *testing.T) {
	res, err := Measure(context.Background(), 200, 20, []float64{1, 0}, 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 || res[0].Set.N != 20 || res[1].Key.N != 20 {
		t.Fatalf("got %+v", res)
	}
	if res[0].Set.Min < 0 || res[0].Key.Mean < 0 {
		t.Fatalf("negative timing: %+v", res[0])
	}
	for _, r := range res {
		if r.Set.PopStdDev > r.Set.StdDev || r.Key.PopStdDev > r.Key.StdDev {
			t.Fatalf("population sd above sample sd at overlap %.2f: %+v", r.Overlap, r)
		}
	}
}

func BenchmarkSetDifference(b *testing.B) {
	x, y := Inputs(10_000, 0.5, rand.New(rand.NewPCG(1, 1)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SetDifference(x, y)
	}
}

func BenchmarkKeyDifference(b *testing.B) {
	x, y := Inputs(10_000, 0.5, rand.New(rand.NewPCG(1, 1)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = KeyDifference(x, y)
	}
}
