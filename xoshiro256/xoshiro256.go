// Package xoshiro256 implements the xoshiro256** pseudorandom generator
// (Blackman & Vigna) with the three deterministic seeding modes used
// throughout the fountain code: from raw bytes, from a CRC32, and from a
// short string. Given a fixed seed the output stream is reproducible
// bit-for-bit across runs and across language implementations, which the
// fountain encoder and decoder rely on to regenerate identical parts from
// nothing but a sequence number and a checksum.
package xoshiro256

import (
	"crypto/sha256"
	"encoding/binary"
)

// Source holds the 256-bit xoshiro256** state.
type Source struct {
	s [4]uint64
}

func rotl(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

// FromBytes seeds a Source from arbitrary seed bytes. The seed is hashed
// with SHA-256 and the 32-byte digest is split into four big-endian
// uint64 words, which become the initial state verbatim — no further
// mixing. A resulting all-zero state, which xoshiro256** can never
// escape, is replaced with a nonzero constant; in practice a SHA-256
// digest is never all-zero, so this only guards pathological inputs.
func FromBytes(seed []byte) *Source {
	digest := sha256.Sum256(seed)

	var s [4]uint64
	for i := range s {
		s[i] = binary.BigEndian.Uint64(digest[i*8 : i*8+8])
	}
	if s == ([4]uint64{}) {
		s[0] = 0x9e3779b97f4a7c15
	}
	return &Source{s: s}
}

// FromCRC32 seeds a Source from a CRC32 checksum by feeding its 4
// big-endian bytes to FromBytes.
func FromCRC32(checksum uint32) *Source {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], checksum)
	return FromBytes(buf[:])
}

// FromString seeds a Source from the UTF-8 bytes of s directly; unlike
// FromCRC32 it does not go through a checksum.
func FromString(s string) *Source {
	return FromBytes([]byte(s))
}

// Next returns the next 64-bit value in the xoshiro256** stream.
func (src *Source) Next() uint64 {
	s := &src.s
	result := rotl(s[1]*5, 7) * 9

	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t
	s[3] = rotl(s[3], 45)

	return result
}

// NextDouble returns a uniform float64 in [0, 1), using the top 53 bits
// of the next generator output.
func (src *Source) NextDouble() float64 {
	return float64(src.Next()>>11) / (1 << 53)
}

// NextInt returns a uniform int64 in [low, high] inclusive.
func (src *Source) NextInt(low, high int64) int64 {
	if high < low {
		low, high = high, low
	}
	span := high - low + 1
	n := int64(src.NextDouble() * float64(span))
	if n >= span {
		n = span - 1
	}
	return low + n
}

// NextByte returns a uniform byte in [0, 255], computed the same way
// as NextInt(0, 255) rather than by truncating the raw 64-bit output.
func (src *Source) NextByte() byte {
	return byte(src.NextInt(0, 255))
}

// NextData returns n bytes drawn from successive NextByte calls.
func (src *Source) NextData(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = src.NextByte()
	}
	return data
}
