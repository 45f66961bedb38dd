// resolve.go
package config

// Overrides carries flag/env values that win over the YAML layers.
type Overrides struct {
	Mode    *string
	Target  *int
	Trials  *int
	TenDraw *bool
	ScanMax *int
	Workers *int
	Seed    *uint64
	Verbose *bool
	OutDir  *string
}

type Resolver interface {
	// Returns merged RawConfig and normalized Params
	Resolve(profile string, o Overrides) (RawConfig, Params, error)
}

var _ Resolver = (*Loader)(nil)

// Resolve merges default → profile → overrides, validates, and fills defaults.
func (l *Loader) Resolve(profile string, o Overrides) (RawConfig, Params, error) {
	raw, err := l.LoadMerged(profile)
	if err != nil {
		return RawConfig{}, Params{}, err
	}
	raw = applyOverrides(raw, o)
	if err := ValidateRaw(raw); err != nil {
		return raw, Params{}, err
	}
	return raw, normalize(raw), nil
}

func applyOverrides(raw RawConfig, o Overrides) RawConfig {
	if o.Mode != nil {
		raw.Simulation.Mode = *o.Mode
	}
	if o.Target != nil {
		raw.Simulation.Target = o.Target
	}
	if o.Trials != nil {
		raw.Simulation.Trials = o.Trials
	}
	if o.TenDraw != nil {
		raw.Simulation.TenDraw = o.TenDraw
	}
	if o.ScanMax != nil {
		raw.Simulation.ScanMax = o.ScanMax
	}
	if o.Workers != nil {
		raw.Run.Workers = o.Workers
	}
	if o.Seed != nil {
		raw.Run.Seed = o.Seed
	}
	if o.Verbose != nil {
		raw.Run.Verbose = o.Verbose
	}
	if o.OutDir != nil {
		raw.Output.Dir = *o.OutDir
	}
	return raw
}

// normalize assumes raw passed ValidateRaw.
func normalize(raw RawConfig) Params {
	p := Params{
		Mode:    Mode(raw.Simulation.Mode),
		Target:  DefaultTarget,
		Trials:  DefaultTrials,
		TenDraw: DefaultTenDraw,
		ScanMax: DefaultScanMax,
		OutDir:  DefaultOutDir,
		Version: raw.Version,
	}
	if v := raw.Simulation.Target; v != nil {
		p.Target = *v
	}
	if v := raw.Simulation.Trials; v != nil {
		p.Trials = *v
	}
	if v := raw.Simulation.TenDraw; v != nil {
		p.TenDraw = *v
	}
	if v := raw.Simulation.ScanMax; v != nil {
		p.ScanMax = *v
	}
	if v := raw.Run.Workers; v != nil {
		p.Workers = *v
	}
	if v := raw.Run.Seed; v != nil {
		p.Seed = *v
	}
	if v := raw.Run.Verbose; v != nil {
		p.Verbose = *v
	}
	if raw.Output.Dir != "" {
		p.OutDir = raw.Output.Dir
	}
	return p
}
