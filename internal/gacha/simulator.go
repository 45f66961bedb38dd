package gacha

import (
	"fmt"

	"go.uber.org/zap"
)

// CopyCeiling is the largest copy count a likelihood trial distinguishes.
// A trial stops once it holds this many copies, so the top bucket means
// "CopyCeiling or more".
const CopyCeiling = 4

// DrawEvent describes one resolved draw for observers.
type DrawEvent struct {
	Draw    int // 1-based index within the trial
	Batch   bool
	Outcome Outcome
	Pity    int // pity counter after the draw
}

// Options configures a Simulator.
type Options struct {
	Batch bool  // ten-draws while pity allows
	Rules Rules // zero value => MagiRecoRules

	// Verbose logs every rare at debug level on Logger.
	Verbose bool
	Logger  *zap.Logger

	// Observer, if set, sees every draw. It must be safe for concurrent
	// use when the same Options drive parallel trials.
	Observer func(DrawEvent)
}

// ExpectationResult is what one expectation trial consumed.
type ExpectationResult struct {
	Draws     int
	OffTarget int
}

// LikelihoodResult is what one fixed-budget trial obtained.
type LikelihoodResult struct {
	Copies int // capped at CopyCeiling
}

// State is a snapshot of a trial in progress.
type State struct {
	Draws     int
	Pity      int
	OnTarget  int
	OffTarget int
}

// Simulator runs a single acquisition campaign. It is not safe for
// concurrent use; every trial gets its own.
type Simulator struct {
	opts   Options
	rules  Rules
	banner *BannerSystem
	log    *zap.Logger

	draws     int
	onTarget  int
	offTarget int
}

// NewSimulator builds a fresh campaign with zero pity.
func NewSimulator(opts Options, rng RandomSource) (*Simulator, error) {
	rules := opts.Rules
	if rules == (Rules{}) {
		rules = MagiRecoRules()
	}
	if err := validateRules(rules); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil || !opts.Verbose {
		log = zap.NewNop()
	}
	return &Simulator{
		opts:   opts,
		rules:  rules,
		banner: NewBannerSystem(rules, rng),
		log:    log,
	}, nil
}

// State returns the current counters.
func (s *Simulator) State() State {
	return State{
		Draws:     s.draws,
		Pity:      s.banner.Pity.Count,
		OnTarget:  s.onTarget,
		OffTarget: s.offTarget,
	}
}

// FindCopies draws until target featured copies are held.
// A ten-draw that reaches the target part way is still counted in full.
func (s *Simulator) FindCopies(target int) (ExpectationResult, error) {
	if target <= 0 {
		return ExpectationResult{}, fmt.Errorf("%w: got %d", ErrInvalidTarget, target)
	}
	for s.onTarget < target {
		s.step(-1)
	}
	return ExpectationResult{Draws: s.draws, OffTarget: s.offTarget}, nil
}

// CopiesWithin draws until budget draws are spent or CopyCeiling copies are
// held, and returns the featured copy count capped at CopyCeiling.
func (s *Simulator) CopiesWithin(budget int) (LikelihoodResult, error) {
	if budget < 0 {
		return LikelihoodResult{}, fmt.Errorf("%w: got %d", ErrInvalidBudget, budget)
	}
	for s.draws < budget && s.onTarget < CopyCeiling {
		s.step(budget - s.draws)
	}
	return LikelihoodResult{Copies: min(s.onTarget, CopyCeiling)}, nil
}

// step issues one batch or one single draw. remaining < 0 means unbounded.
func (s *Simulator) step(remaining int) {
	batch := s.opts.Batch &&
		s.banner.Pity.Count < s.rules.BatchFloor &&
		(remaining < 0 || remaining >= s.rules.BatchSize)
	if !batch {
		s.record(s.banner.Draw(s.rules.HitCeil), false)
		return
	}
	for i := 0; i < s.rules.BatchSize; i++ {
		ceil := s.rules.HitCeil
		if i == s.rules.BatchSize-1 {
			ceil = s.rules.LastHitCeil
		}
		s.record(s.banner.Draw(ceil), true)
	}
}

func (s *Simulator) record(out BannerOutcome, batch bool) {
	s.draws++
	switch out.Outcome {
	case OnTarget:
		s.onTarget++
		s.log.Debug("featured copy found", zap.Int("copy", s.onTarget), zap.Int("draws", s.draws))
	case OffTarget:
		s.offTarget++
		s.log.Debug("spooked", zap.Int("spooks", s.offTarget), zap.Int("draws", s.draws))
	}
	if s.opts.Observer != nil {
		s.opts.Observer(DrawEvent{
			Draw:    s.draws,
			Batch:   batch,
			Outcome: out.Outcome,
			Pity:    out.Count,
		})
	}
}

// RunExpectation runs one expectation trial on a fresh simulator.
func RunExpectation(opts Options, target int, rng RandomSource) (ExpectationResult, error) {
	if target <= 0 {
		return ExpectationResult{}, fmt.Errorf("%w: got %d", ErrInvalidTarget, target)
	}
	s, err := NewSimulator(opts, rng)
	if err != nil {
		return ExpectationResult{}, err
	}
	return s.FindCopies(target)
}

// RunLikelihood runs one fixed-budget trial on a fresh simulator.
func RunLikelihood(opts Options, budget int, rng RandomSource) (LikelihoodResult, error) {
	if budget < 0 {
		return LikelihoodResult{}, fmt.Errorf("%w: got %d", ErrInvalidBudget, budget)
	}
	s, err := NewSimulator(opts, rng)
	if err != nil {
		return LikelihoodResult{}, err
	}
	return s.CopiesWithin(budget)
}
