package gacha

// PitySystem handles a "hard pity": after reaching the threshold, the next draw is guaranteed

type PitySystem struct {
	Pity  int          // threshold count before guaranteed hit
	Sides int          // roll range [0, Sides)
	Count int          // number of draws since last hit
	RNG   RandomSource // random source for probability count
}

// NewPitySystem creates a new hard pity system with given threshold and RNG
func NewPitySystem(pity, sides int, rng RandomSource) *PitySystem {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &PitySystem{Pity: pity, Sides: sides, RNG: rng}
}

// Guaranteed reports whether the next draw triggers pity.
func (ps *PitySystem) Guaranteed() bool {
	return ps.Pity > 0 && ps.Count+1 >= ps.Pity
}

// Draw performs one draw that hits when a roll in [0,Sides) is below ceil
// - If the next draw reaches the pity threshold, it is guaranted to hit and no roll is made
// - On hit, Count resets to 0; otherwise, Count increments
func (ps *PitySystem) Draw(ceil int) bool {
	if ps.Guaranteed() {
		ps.Count = 0
		return true
	}

	if Roll(ps.Sides, ceil, ps.RNG) {
		ps.Count = 0
		return true
	}
	ps.Count++
	return false
}
