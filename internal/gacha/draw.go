package gacha

// Outcome is the result of one individual draw.
type Outcome int

const (
	Miss Outcome = iota
	OffTarget // rare, but not the featured item ("spook")
	OnTarget
)

func (o Outcome) String() string {
	switch o {
	case Miss:
		return "miss"
	case OffTarget:
		return "off_target"
	case OnTarget:
		return "on_target"
	}
	return "unknown"
}

// Hit reports whether the draw produced a rare item.
func (o Outcome) Hit() bool { return o != Miss }

// Roll draws once from [0, sides) and reports whether it falls below ceil.
// ceil <= 0 => never. ceil >= sides => always, and no entropy is consumed.
func Roll(sides, ceil int, rng RandomSource) bool {
	if ceil <= 0 {
		return false
	}
	if ceil >= sides {
		return true
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	return rng.IntN(sides) < ceil
}
