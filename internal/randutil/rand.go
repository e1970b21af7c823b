// Package randutil centralises generator construction so every
// consumer derives reproducible rand/v2 sequences the same way.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const golden = 0x9e3779b97f4a7c15

// New returns a generator seeded deterministically from seed, using a
// splitmix64 stream to expand it into the two words a PCG wants.
func New(seed int64) *rand.Rand {
	state := uint64(seed)
	next := func() uint64 {
		state += golden
		return mix(state)
	}
	return rand.New(rand.NewPCG(next(), next()))
}

// Seed returns a wall-clock-derived seed for runs that should not
// repeat; resolve it once and pass the result to New so that derived
// generators agree on the run's base seed.
func Seed() int64 {
	return time.Now().UnixNano()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
