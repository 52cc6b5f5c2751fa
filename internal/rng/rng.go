// Package rng provides the two randomness utilities the game engines rely on:
// an unbiased Fisher-Yates shuffle on non-deterministic randomness for
// ordinary play, and a seeded linear congruential stream for daily content
// that must reproduce identically on every machine. The two never share state.
package rng

import (
	"math/rand/v2"
)

// Shuffle performs an in-place unbiased Fisher-Yates shuffle using
// non-deterministic randomness. Use Seq.Shuffle for daily content instead.
func Shuffle[T any](items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Pick returns a uniformly random element. Panics on an empty slice; callers
// guard against empty catalogs before picking.
func Pick[T any](items []T) T {
	return items[rand.IntN(len(items))]
}

// DaySeed derives the daily seed from a YYYY-MM-DD day identifier by summing
// its byte values. Distribution quality is irrelevant here; identical input
// must yield an identical seed everywhere.
func DaySeed(dayID string) uint64 {
	var seed uint64
	for i := 0; i < len(dayID); i++ {
		seed += uint64(dayID[i])
	}
	return seed
}

// Seq is a deterministic pseudo-random stream (64-bit LCG, Knuth MMIX
// constants). A Seq seeded with the same value emits the same sequence on
// any platform.
type Seq struct {
	state uint64
}

// NewSeq returns a stream seeded once from the given value.
func NewSeq(seed uint64) *Seq {
	return &Seq{state: seed}
}

// Next advances the stream and returns the raw 64-bit state.
func (s *Seq) Next() uint64 {
	s.state = s.state*6364136223846793005 + 1442695040888963407
	return s.state
}

// IntN returns a value in [0, n) drawn from the stream.
func (s *Seq) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	// Use the high bits; low LCG bits have short periods.
	return int((s.Next() >> 33) % uint64(n))
}

// Shuffle performs a deterministic in-place Fisher-Yates shuffle driven by
// the stream.
func (s *Seq) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.IntN(i + 1)
		swap(i, j)
	}
}

// ShuffleSlice is a convenience wrapper over Shuffle for slices.
func ShuffleSlice[T any](s *Seq, items []T) {
	s.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
