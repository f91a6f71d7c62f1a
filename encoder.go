package ur

import (
	"fmt"

	"github.com/fountaincodec/ur/bytewords"
	"github.com/fountaincodec/ur/fountain"
)

// defaultMinFragmentLen mirrors the reference encoder's default
// minimum fragment length (4.7), used whenever a caller does not need
// to tune it explicitly.
const defaultMinFragmentLen = 10

// Encode renders ur as a single-part "ur:<type>/<bytewords-minimal>"
// string, bypassing the fountain code entirely. It is a shortcut
// equivalent to constructing an Encoder whose CBOR payload fits in one
// fragment and calling NextPart once.
func Encode(u *UR) string {
	return "ur:" + u.Type + "/" + bytewords.Encode(bytewords.Minimal, u.CBOR)
}

// Encoder streams a UR as an unbounded sequence of "ur:" URI strings.
// When the CBOR payload fits in a single fragment it repeatedly
// produces the same single-part string; otherwise each call advances
// the underlying fountain.Encoder and renders its next Part as a
// multipart string.
type Encoder struct {
	urType string
	cbor   []byte
	single bool
	enc    *fountain.Encoder
}

// NewEncoder prepares to stream ur's CBOR payload, partitioned into
// fragments no larger than maxFragmentLen, with multipart sequence
// numbers starting at firstSeqNum.
func NewEncoder(u *UR, maxFragmentLen int, firstSeqNum uint32) *Encoder {
	fragmentLen := fountain.FindNominalFragmentLength(len(u.CBOR), defaultMinFragmentLen, maxFragmentLen)
	fragments := fountain.PartitionMessage(u.CBOR, fragmentLen)

	e := &Encoder{
		urType: u.Type,
		cbor:   u.CBOR,
		single: len(fragments) <= 1,
	}
	if !e.single {
		e.enc = fountain.NewEncoder(u.CBOR, maxFragmentLen, firstSeqNum, defaultMinFragmentLen)
	}
	return e
}

// IsSinglePart reports whether this encoder's payload fits in one
// fragment, in which case NextPart never emits a seq-seqLen segment.
func (e *Encoder) IsSinglePart() bool { return e.single }

// NextPart returns the next "ur:" URI string in the stream.
func (e *Encoder) NextPart() string {
	if e.single {
		return Encode(&UR{Type: e.urType, CBOR: e.cbor})
	}
	part := e.enc.NextPart()
	bw := bytewords.Encode(bytewords.Minimal, part.CBOR())
	return fmt.Sprintf("ur:%s/%d-%d/%s", e.urType, part.SeqNum, part.SeqLen, bw)
}

// IsComplete reports whether every fragment has appeared in at least
// one emitted part. Single-part encoders are always complete.
func (e *Encoder) IsComplete() bool {
	if e.single {
		return true
	}
	return e.enc.IsComplete()
}
