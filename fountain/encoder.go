package fountain

import "github.com/fountaincodec/ur/internal/crc32util"

// Encoder turns a message into an unbounded stream of Parts: the
// first seqLen parts (by default) cycle through the pure fragments,
// and every part after that XORs together a pseudorandom subset of
// fragments chosen by ChooseFragments.
type Encoder struct {
	message     []byte
	fragments   [][]byte
	fragmentLen int
	seqLen      int
	checksum    uint32
	seqNum      uint32

	seen map[int]struct{}
}

// NewEncoder partitions message into fragments no larger than
// maxFragmentLen (but at least minFragmentLen, where the message is
// large enough to need more than one), and prepares to emit parts
// starting from firstSeqNum.
func NewEncoder(message []byte, maxFragmentLen int, firstSeqNum uint32, minFragmentLen int) *Encoder {
	fragmentLen := FindNominalFragmentLength(len(message), minFragmentLen, maxFragmentLen)
	fragments := PartitionMessage(message, fragmentLen)
	return &Encoder{
		message:     message,
		fragments:   fragments,
		fragmentLen: fragmentLen,
		seqLen:      len(fragments),
		checksum:    crc32util.Int(message),
		seqNum:      firstSeqNum,
		seen:        make(map[int]struct{}),
	}
}

// FindNominalFragmentLength computes the fragment length the encoder
// uses: messageLen itself if it already fits in one fragment,
// otherwise the smallest length in [minFragmentLen, maxFragmentLen]
// that produces the same part count as fragmenting at maxFragmentLen.
func FindNominalFragmentLength(messageLen, minFragmentLen, maxFragmentLen int) int {
	if messageLen <= maxFragmentLen {
		return messageLen
	}
	seqLenMax := ceilDiv(messageLen, maxFragmentLen)
	fragmentLen := ceilDiv(messageLen, seqLenMax)
	if fragmentLen < minFragmentLen {
		fragmentLen = minFragmentLen
	}
	return fragmentLen
}

// PartitionMessage splits message into ceil(len(message)/fragmentLen)
// fixed-size fragments, zero-padding the last one.
func PartitionMessage(message []byte, fragmentLen int) [][]byte {
	seqLen := ceilDiv(len(message), fragmentLen)
	fragments := make([][]byte, seqLen)
	for i := range fragments {
		frag := make([]byte, fragmentLen)
		start := i * fragmentLen
		end := start + fragmentLen
		if end > len(message) {
			end = len(message)
		}
		copy(frag, message[start:end])
		fragments[i] = frag
	}
	return fragments
}

// SeqLen returns the number of fragments the message was partitioned
// into.
func (e *Encoder) SeqLen() int { return e.seqLen }

// NextPart advances the sequence number (wrapping at 32 bits) and
// returns the next part in the stream.
func (e *Encoder) NextPart() *Part {
	e.seqNum++
	indexes := ChooseFragments(e.seqNum, e.seqLen, e.checksum)

	data := make([]byte, e.fragmentLen)
	for idx := range indexes {
		e.seen[idx] = struct{}{}
		xorInto(data, e.fragments[idx])
	}

	return &Part{
		SeqNum:     e.seqNum,
		SeqLen:     uint32(e.seqLen),
		MessageLen: uint32(len(e.message)),
		Checksum:   e.checksum,
		Data:       data,
	}
}

// IsComplete reports whether every fragment index has appeared in at
// least one part generated so far. It is a sender-side heuristic, not
// a guarantee that any single receiver has enough parts yet.
func (e *Encoder) IsComplete() bool {
	return len(e.seen) == e.seqLen
}
