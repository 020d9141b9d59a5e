package hashutil

import (
	"hash/maphash"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sum(seed maphash.Seed, fn func(h *maphash.Hash)) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	fn(&h)
	return h.Sum64()
}

func TestWriteFloatZeroSigns(t *testing.T) {
	seed := maphash.MakeSeed()
	pos := sum(seed, func(h *maphash.Hash) { WriteFloat(h, 0) })
	neg := sum(seed, func(h *maphash.Hash) { WriteFloat(h, math.Copysign(0, -1)) })
	assert.Equal(t, pos, neg)
}

func TestWriteStringIsLengthPrefixed(t *testing.T) {
	seed := maphash.MakeSeed()
	a := sum(seed, func(h *maphash.Hash) {
		WriteString(h, "ab")
		WriteString(h, "c")
	})
	b := sum(seed, func(h *maphash.Hash) {
		WriteString(h, "a")
		WriteString(h, "bc")
	})
	assert.NotEqual(t, a, b)
}
