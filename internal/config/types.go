// types.go
package config

// Raw config loaded from YAML; mirrors the schema in configs/default.yaml.
type RawConfig struct {
	Version    string        `yaml:"version"`
	Simulation SimulationCfg `yaml:"simulation"`
	Run        RunCfg        `yaml:"run"`
	Output     OutputCfg     `yaml:"output"`
	Notes      string        `yaml:"notes,omitempty"`
}

type SimulationCfg struct {
	Mode    string `yaml:"mode"` // "expectation" | "likelihood" | "plot"
	Target  *int   `yaml:"target"`
	Trials  *int   `yaml:"trials"`
	TenDraw *bool  `yaml:"ten_draw"`
	ScanMax *int   `yaml:"scan_max"` // likelihood budgets 0..scan_max
}
type RunCfg struct {
	Workers *int    `yaml:"workers,omitempty"` // 0 => one per CPU
	Seed    *uint64 `yaml:"seed,omitempty"`    // 0 => fresh seed per run
	Verbose *bool   `yaml:"verbose,omitempty"`
}
type OutputCfg struct {
	Dir string `yaml:"dir"`
}

// Mode selects what a run produces.
type Mode string

const (
	ModeExpectation Mode = "expectation"
	ModeLikelihood  Mode = "likelihood"
	ModePlot        Mode = "plot"
)

// Modes lists the valid modes in prompt order.
var Modes = []Mode{ModeExpectation, ModeLikelihood, ModePlot}

// Normalized params used by the commands.
type Params struct {
	Mode    Mode
	Target  int
	Trials  int
	TenDraw bool
	ScanMax int
	Workers int
	Seed    uint64
	Verbose bool
	OutDir  string
	Version string // effective config version for tracing
}

// Built-in defaults applied when no layer sets a value.
const (
	DefaultTarget  = 4
	DefaultTrials  = 10000
	DefaultTenDraw = true
	DefaultScanMax = 1000
	DefaultOutDir  = "out"
)
