package token

import "math"

// Token defines how many units are required per draw

type Token struct {
	Name       string //e.g. "Magia Stone", "Stellar Jade"
	PerDraw    int    // tokens per single draw, e.g. 250, 160
	PerTenDraw int    // optional; if 0 -> equal to 10 * PerDraw
}

// MagiaStones prices draws on a Magia Record banner.
var MagiaStones = Token{Name: "Magia Stones", PerDraw: 250, PerTenDraw: 2500}

// TokensForDraws returns how many tokens are required for n draws
func (t Token) TokensForDraws(n int) int {
	if n <= 0 {
		return 0
	}
	if t.PerTenDraw > 0 && n >= 10 {
		tens := n / 10
		remTens := n % 10
		return tens*t.PerTenDraw + remTens*t.PerDraw
	}

	return n * t.PerDraw
}

// TokensForMean prices a fractional mean draw count, rounding draws up.
func (t Token) TokensForMean(draws float64) int {
	if draws <= 0 || math.IsNaN(draws) {
		return 0
	}
	return t.TokensForDraws(int(math.Ceil(draws)))
}
