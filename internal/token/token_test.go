package token

import "testing"

func TestTokensForDraws(t *testing.T) {
	cases := []struct {
		tok  Token
		n    int
		want int
	}{
		{MagiaStones, 0, 0},
		{MagiaStones, 7, 1750},
		{MagiaStones, 25, 2*2500 + 5*250},
		{Token{PerDraw: 160, PerTenDraw: 1500}, 9, 9 * 160},
		{Token{PerDraw: 160, PerTenDraw: 1500}, 21, 2*1500 + 160},
		{Token{PerDraw: 160}, 10, 1600},
	}
	for _, c := range cases {
		if got := c.tok.TokensForDraws(c.n); got != c.want {
			t.Fatalf("%+v TokensForDraws(%d) = %d, want %d", c.tok, c.n, got, c.want)
		}
	}
}

func TestTokensForMean(t *testing.T) {
	if got := MagiaStones.TokensForMean(105.3); got != 10*2500+6*250 {
		t.Fatalf("got %d", got)
	}
	if got := MagiaStones.TokensForMean(-1); got != 0 {
		t.Fatalf("negative mean: got %d", got)
	}
}
