package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShuffleKeepsAllElements(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(items)

	assert.Len(t, items, 8)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, items)
}

func TestPickReturnsMembers(t *testing.T) {
	items := []string{"x", "y", "z"}
	seen := map[string]bool{}

	for i := 0; i < 200; i++ {
		seen[Pick(items)] = true
	}

	assert.Subset(t, items, keys(seen))
	assert.Len(t, seen, 3)
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestDaySeedIsStable(t *testing.T) {
	assert.Equal(t, DaySeed("2025-01-15"), DaySeed("2025-01-15"))
	assert.NotEqual(t, DaySeed("2025-01-15"), DaySeed("2025-01-16"))

	// "0"*4 + "-"*2 + "2025-01-15" digits; sanity-check against a hand
	// computed value so the hash never silently changes.
	var want uint64
	for _, b := range []byte("2025-01-15") {
		want += uint64(b)
	}
	assert.Equal(t, want, DaySeed("2025-01-15"))
}

func TestSeqIsDeterministic(t *testing.T) {
	a := NewSeq(42)
	b := NewSeq(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestSeqShuffleReproducible(t *testing.T) {
	first := []string{"a", "b", "c", "d", "e", "f"}
	second := []string{"a", "b", "c", "d", "e", "f"}

	ShuffleSlice(NewSeq(DaySeed("2025-03-01")), first)
	ShuffleSlice(NewSeq(DaySeed("2025-03-01")), second)

	assert.Equal(t, first, second)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e", "f"}, first)
}

func TestSeqIntNBounds(t *testing.T) {
	s := NewSeq(7)
	for i := 0; i < 1000; i++ {
		v := s.IntN(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
	assert.Equal(t, 0, s.IntN(0))
}
