// Package setdiff compares two ways of taking the key difference of two maps:
// materialising both key sets first, or probing one map's keys directly.
package setdiff

import (
	"math/rand/v2"
	"time"
)

type Set map[int]struct{}

// SetDifference copies the keys of both maps into fresh sets and subtracts.
func SetDifference[V any](x, y map[int]V) Set {
	xs := keys(x)
	ys := keys(y)
	out := make(Set)
	for k := range xs {
		if _, ok := ys[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

// KeyDifference subtracts y's keys from x's keys without copying either.
func KeyDifference[V any](x, y map[int]V) Set {
	out := make(Set)
	for k := range x {
		if _, ok := y[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func keys[V any](m map[int]V) Set {
	s := make(Set, len(m))
	for k := range m {
		s[k] = struct{}{}
	}
	return s
}

// Inputs builds two maps of n keys (1..n) sharing int(n*overlap) of them.
// Keys of y beyond the overlap are negated so they never collide with x.
func Inputs(n int, overlap float64, rng *rand.Rand) (x, y map[int]struct{}) {
	shared := int(float64(n) * overlap)
	xs := make([]int, n)
	ys := make([]int, n)
	for i := range xs {
		xs[i], ys[i] = i+1, i+1
		if i >= shared {
			ys[i] = -(i + 1)
		}
	}
	rng.Shuffle(n, func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	rng.Shuffle(n, func(i, j int) { ys[i], ys[j] = ys[j], ys[i] })

	x = make(map[int]struct{}, n)
	y = make(map[int]struct{}, n)
	for i := range xs {
		x[xs[i]] = struct{}{}
		y[ys[i]] = struct{}{}
	}
	return x, y
}

// Timing is one trial's wall time for each method.
type Timing struct {
	Set time.Duration
	Key time.Duration
}

// Trial times both methods on fresh inputs, in random order.
func Trial(n int, overlap float64, rng *rand.Rand) Timing {
	x, y := Inputs(n, overlap, rng)
	var t Timing
	timeSet := func() {
		start := time.Now()
		_ = SetDifference(x, y)
		t.Set = time.Since(start)
	}
	timeKey := func() {
		start := time.Now()
		_ = KeyDifference(x, y)
		t.Key = time.Since(start)
	}
	if rng.Float64() < 0.5 {
		timeSet()
		timeKey()
	} else {
		timeKey()
		timeSet()
	}
	return t
}
