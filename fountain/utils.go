package fountain

import (
	"encoding/binary"

	"github.com/fountaincodec/ur/sampler"
	"github.com/fountaincodec/ur/xoshiro256"
)

// Shuffled returns a permutation of items built by repeatedly drawing a
// random index into the shrinking remainder — rng.NextInt(0,
// len(remaining)-1) — and appending the element at that index to the
// output. This is not an in-place Fisher-Yates swap: the reference
// implementation removes the chosen element from the pool each round,
// which consumes the rng stream differently than a swap-based shuffle.
func Shuffled(items []int, rng *xoshiro256.Source) []int {
	remaining := append([]int(nil), items...)
	out := make([]int, 0, len(remaining))
	for len(remaining) > 0 {
		j := int(rng.NextInt(0, int64(len(remaining)-1)))
		out = append(out, remaining[j])
		remaining = append(remaining[:j], remaining[j+1:]...)
	}
	return out
}

// ChooseDegree samples a 1-based fragment count from the distribution
// with weights [1/1, 1/2, ..., 1/seqLen].
func ChooseDegree(seqLen int, rng *xoshiro256.Source) int {
	weights := make([]float64, seqLen)
	for i := range weights {
		weights[i] = 1 / float64(i+1)
	}
	s := sampler.New(weights)
	return s.Next(rng.NextDouble) + 1
}

// FragmentSet is an unordered set of fragment indexes.
type FragmentSet map[int]struct{}

func newFragmentSet(indexes []int) FragmentSet {
	s := make(FragmentSet, len(indexes))
	for _, i := range indexes {
		s[i] = struct{}{}
	}
	return s
}

// ChooseFragments deterministically derives the set of fragment
// indexes combined into the part with the given sequence number. For
// seqNum <= seqLen the part is a pure fragment; beyond that, a
// per-part xoshiro256 source seeded from seqNum and checksum drives
// the degree and fragment choice.
func ChooseFragments(seqNum uint32, seqLen int, checksum uint32) FragmentSet {
	if int(seqNum) <= seqLen {
		return newFragmentSet([]int{int(seqNum) - 1})
	}

	seed := make([]byte, 8)
	binary.BigEndian.PutUint32(seed[0:4], seqNum)
	binary.BigEndian.PutUint32(seed[4:8], checksum)
	rng := xoshiro256.FromBytes(seed)

	degree := ChooseDegree(seqLen, rng)
	indexes := make([]int, seqLen)
	for i := range indexes {
		indexes[i] = i
	}
	return newFragmentSet(Shuffled(indexes, rng)[:degree])
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
