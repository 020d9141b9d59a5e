// Package hashutil writes primitive values into a maphash.Hash so that
// value types can expose a hash consistent with their Equal method.
package hashutil

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// WriteFloat writes f. Positive and negative zero hash the same because
// they compare equal.
func WriteFloat(h *maphash.Hash, f float64) {
	if f == 0 {
		f = 0
	}
	WriteUint(h, math.Float64bits(f))
}

// WriteUint writes v as eight little-endian bytes.
func WriteUint(h *maphash.Hash, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

// WriteInt writes v.
func WriteInt(h *maphash.Hash, v int64) {
	WriteUint(h, uint64(v))
}

// WriteBool writes a single byte.
func WriteBool(h *maphash.Hash, b bool) {
	if b {
		h.WriteByte(1)
		return
	}
	h.WriteByte(0)
}

// WriteString writes s prefixed by its length, so adjacent strings cannot
// collide by shifting bytes between them.
func WriteString(h *maphash.Hash, s string) {
	WriteUint(h, uint64(len(s)))
	h.WriteString(s)
}
