package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for default/profile files.
type Paths struct {
	BaseDir string // base directory, e.g., ./configs
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "default.yaml")
}
func (p Paths) ProfilePath(profile string) string {
	return filepath.Join(p.BaseDir, "profiles", profile+".yaml")
}

// Loader reads YAML configs and merges default → profile.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: profile name or "$default"
}

// NewLoader creates a config loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

func cacheKey(profile string) string {
	if profile == "" {
		return "$default"
	}
	return profile
}

// LoadMerged loads and merges default → profile (profile optional).
// It returns the merged RawConfig (without normalization).
func (l *Loader) LoadMerged(profile string) (RawConfig, error) {
	key := cacheKey(profile)
	l.mu.RLock()
	if cfg, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	merged := defCfg
	if profile != "" {
		profCfg, err := readYAML(l.paths.ProfilePath(profile))
		if err != nil {
			return RawConfig{}, fmt.Errorf("read profile %q: %w", profile, err)
		}
		merged = mergeRaw(defCfg, profCfg)
	}

	l.mu.Lock()
	l.cache["$default"] = defCfg
	l.cache[key] = merged
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears loader's cache.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// mergeRaw overlays 'b' onto 'a' wherever 'b' sets a value.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	// top-level scalars
	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	// simulation
	if b.Simulation.Mode != "" {
		out.Simulation.Mode = b.Simulation.Mode
	}
	if b.Simulation.Target != nil {
		out.Simulation.Target = b.Simulation.Target
	}
	if b.Simulation.Trials != nil {
		out.Simulation.Trials = b.Simulation.Trials
	}
	if b.Simulation.TenDraw != nil {
		out.Simulation.TenDraw = b.Simulation.TenDraw
	}
	if b.Simulation.ScanMax != nil {
		out.Simulation.ScanMax = b.Simulation.ScanMax
	}

	// run
	if b.Run.Workers != nil {
		out.Run.Workers = b.Run.Workers
	}
	if b.Run.Seed != nil {
		out.Run.Seed = b.Run.Seed
	}
	if b.Run.Verbose != nil {
		out.Run.Verbose = b.Run.Verbose
	}

	// output
	if b.Output.Dir != "" {
		out.Output.Dir = b.Output.Dir
	}

	return out
}
