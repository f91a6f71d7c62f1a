// Package testmsg reproduces the reference test suite's deterministic
// message generator so pinned fountain/UR test vectors can be checked
// without embedding large binary fixtures.
package testmsg

import (
	"github.com/fountaincodec/ur/internal/minicbor"
	"github.com/fountaincodec/ur/xoshiro256"
)

// DefaultSeed is the seed string the reference test suite's
// make_message/make_message_ur helpers use throughout test.py.
const DefaultSeed = "Wolf"

// Make returns length deterministic bytes seeded from the given
// string, matching the reference test suite's make_message helper.
func Make(length int, seed string) []byte {
	return xoshiro256.FromString(seed).NextData(length)
}

// MakeCBOR returns length deterministic bytes wrapped as a minimal
// CBOR byte string, matching the "bytes" UR type the reference test
// suite's make_message_ur helper tags its fixture messages with.
func MakeCBOR(length int, seed string) []byte {
	return minicbor.AppendBytes(nil, Make(length, seed))
}
