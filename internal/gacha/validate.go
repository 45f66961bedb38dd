package gacha

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRules  = errors.New("invalid banner rules")
	ErrInvalidTarget = errors.New("invalid target count; must be >= 1")
	ErrInvalidBudget = errors.New("invalid draw budget; must be >= 0")
	ErrInvalidTrials = errors.New("invalid trial count; must be >= 1")
)

func validateRules(r Rules) error {
	switch {
	case r.Sides <= 1:
		return fmt.Errorf("%w: sides=%d", ErrInvalidRules, r.Sides)
	case r.Pity <= 1:
		return fmt.Errorf("%w: pity=%d", ErrInvalidRules, r.Pity)
	case r.HitCeil <= 0 || r.HitCeil > r.Sides:
		return fmt.Errorf("%w: hit ceiling %d outside 1..%d", ErrInvalidRules, r.HitCeil, r.Sides)
	case r.LastHitCeil < r.HitCeil || r.LastHitCeil > r.Sides:
		return fmt.Errorf("%w: last hit ceiling %d outside %d..%d", ErrInvalidRules, r.LastHitCeil, r.HitCeil, r.Sides)
	case r.FeaturedPct < 0 || r.FeaturedPct > r.Sides:
		return fmt.Errorf("%w: featured %d outside 0..%d", ErrInvalidRules, r.FeaturedPct, r.Sides)
	case r.BatchSize <= 0:
		return fmt.Errorf("%w: batch size=%d", ErrInvalidRules, r.BatchSize)
	}
	// a batch must never cross the hard pity, or the guarantee would be skipped
	if r.BatchFloor < 0 || r.BatchFloor+r.BatchSize > r.Pity {
		return fmt.Errorf("%w: batch floor %d + size %d exceeds pity %d", ErrInvalidRules, r.BatchFloor, r.BatchSize, r.Pity)
	}
	return nil
}
