package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/multierr"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaultsWithoutFiles(t *testing.T) {
	_, p, err := NewLoader(t.TempDir()).Resolve("", Overrides{})
	if err != nil {
		t.Fatal(err)
	}
	want := Params{Target: 4, Trials: 10000, TenDraw: true, ScanMax: 1000, OutDir: "out"}
	if p != want {
		t.Fatalf("got %+v, want %+v", p, want)
	}
}

func TestResolveLayers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "default.yaml"), `
version: "3"
simulation:
  target: 2
  trials: 500
run:
  seed: 9
`)
	writeFile(t, filepath.Join(dir, "profiles", "single.yaml"), `
simulation:
  ten_draw: false
  trials: 50
`)
	trials := 7
	mode := "likelihood"
	raw, p, err := NewLoader(dir).Resolve("single", Overrides{Trials: &trials, Mode: &mode})
	if err != nil {
		t.Fatal(err)
	}
	if p.Target != 2 || p.Trials != 7 || p.TenDraw || p.Seed != 9 || p.Mode != ModeLikelihood || p.Version != "3" {
		t.Fatalf("got %+v", p)
	}
	if *raw.Simulation.Trials != 7 {
		t.Fatalf("override not applied to raw config")
	}
}

func TestLoaderCachesUntilInvalidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "default.yaml")
	writeFile(t, path, "simulation:\n  target: 2\n")
	l := NewLoader(dir)
	if _, err := l.LoadMerged(""); err != nil {
		t.Fatal(err)
	}
	writeFile(t, path, "simulation:\n  target: 3\n")
	cfg, _ := l.LoadMerged("")
	if *cfg.Simulation.Target != 2 {
		t.Fatalf("expected cached target 2, got %d", *cfg.Simulation.Target)
	}
	l.Invalidate()
	cfg, _ = l.LoadMerged("")
	if *cfg.Simulation.Target != 3 {
		t.Fatalf("expected reloaded target 3, got %d", *cfg.Simulation.Target)
	}
}

func TestValidateRawCollectsErrors(t *testing.T) {
	zero, neg := 0, -1
	err := ValidateRaw(RawConfig{
		Simulation: SimulationCfg{Mode: "plotz", Target: &zero, Trials: &neg, ScanMax: &neg},
		Run:        RunCfg{Workers: &neg},
	})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("unknown mode not reported: %v", err)
	}
	var inner interface{ Unwrap() []error }
	if !errors.As(err, &inner) {
		t.Fatalf("expected wrapped errors: %v", err)
	}
	// ErrInvalidConfig plus the combined violations
	if n := len(multierr.Errors(inner.Unwrap()[1])); n != 5 {
		t.Fatalf("got %d violations, want 5: %v", n, err)
	}
}

func TestResolveRejectsBadTarget(t *testing.T) {
	zero := 0
	if _, _, err := NewLoader(t.TempDir()).Resolve("", Overrides{Target: &zero}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(string(m))
		if err != nil || got != m {
			t.Fatalf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMode("chart"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("got %v", err)
	}
}
