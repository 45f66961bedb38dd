package gacha

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/big"
	"math/rand/v2"
)

// RandomSource abstract

type RandomSource interface {
	IntN(n int) int // uniform in [0, n)
}

// crypto random : default generation method
type cryptoRNG struct{}

func (cryptoRNG) IntN(n int) int {
	v, err := cryptoRand.Int(cryptoRand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// backto math / rand/ v2
		return rand.IntN(n)
	}
	return int(v.Int64())
}

func DefaultRNG() RandomSource { return cryptoRNG{} }

// NewSeed returns a fresh run seed from crypto/rand.
func NewSeed() uint64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Uint64()
	}
	return binary.BigEndian.Uint64(buf[:])
}

// Replicable RNG (e.g. Monte Carlo)
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return NewStreamRNG(seed, 0)
}

// NewStreamRNG returns an independent PCG stream for the same run seed.
// Trials use their index as stream so concurrent runs stay reproducible.
func NewStreamRNG(seed, stream uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, stream))}
}

func (s *seededRNG) IntN(n int) int { return s.r.IntN(n) }
