package gacha

// Rules holds the fixed banner mechanics.
// Example (MagiReco): Pity=100, HitCeil=1 (roll == 0), LastHitCeil=2 (roll <= 1)
// on the tenth draw of a ten-draw, FeaturedPct=60.
type Rules struct {
	Sides       int // roll range [0, Sides)
	Pity        int // the Pity-th draw without a rare is guaranteed
	HitCeil     int // roll < HitCeil => rare, normal draw
	LastHitCeil int // roll < LastHitCeil => rare, last draw of a batch
	FeaturedPct int // roll < FeaturedPct => rare is the featured item
	BatchSize   int // draws per batch
	BatchFloor  int // batches are only drawn while Count < BatchFloor
}

// MagiRecoRules returns the event banner rules of Magia Record.
func MagiRecoRules() Rules {
	return Rules{
		Sides:       100,
		Pity:        100,
		HitCeil:     1,
		LastHitCeil: 2,
		FeaturedPct: 60,
		BatchSize:   10,
		BatchFloor:  90,
	}
}

// BannerOutcome reports one draw's result under banner rules.
type BannerOutcome struct {
	Outcome Outcome
	Count   int // draws since last rare after this draw
}

// BannerSystem composes hard pity with the featured/off-banner split
// - PitySystem decides whether a rare occurs.
// - On a rare, one more roll picks featured (roll < FeaturedPct) or off-banner.
type BannerSystem struct {
	Pity        *PitySystem
	FeaturedPct int
}

// NewBannerSystem initializes a BannerSystem for the given rules.
func NewBannerSystem(r Rules, rng RandomSource) *BannerSystem {
	return &BannerSystem{
		Pity:        NewPitySystem(r.Pity, r.Sides, rng),
		FeaturedPct: r.FeaturedPct,
	}
}

// Draw performs one banner draw where a roll below ceil is a rare.
func (b *BannerSystem) Draw(ceil int) BannerOutcome {
	if !b.Pity.Draw(ceil) {
		return BannerOutcome{Outcome: Miss, Count: b.Pity.Count}
	}
	out := OffTarget
	if Roll(b.Pity.Sides, b.FeaturedPct, b.Pity.RNG) {
		out = OnTarget
	}
	return BannerOutcome{Outcome: out, Count: b.Pity.Count} // Count == 0
}
