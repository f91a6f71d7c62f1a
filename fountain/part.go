// Package fountain implements the rateless fountain code fountain
// encoder/decoder pair used to split a large message into a bounded
// set of fixed-size fragments and an unbounded stream of XOR-combined
// parts, any sufficient subset of which lets a receiver reconstruct
// the original message.
package fountain

import (
	"encoding/hex"
	"fmt"

	"github.com/fountaincodec/ur/internal/minicbor"
)

// Part is one fountain-encoded piece of a message: either a pure
// fragment (seqNum <= seqLen) or a pseudorandom XOR combination of
// several fragments (seqNum > seqLen).
type Part struct {
	SeqNum     uint32
	SeqLen     uint32
	MessageLen uint32
	Checksum   uint32
	Data       []byte
}

// Description renders the part the way the reference implementation's
// debug string does, used to cross-check pinned test vectors.
func (p *Part) Description() string {
	return fmt.Sprintf("seqNum:%d, seqLen:%d, messageLen:%d, checksum:%d, data:%s",
		p.SeqNum, p.SeqLen, p.MessageLen, p.Checksum, hex.EncodeToString(p.Data))
}

func (p *Part) String() string { return p.Description() }

// CBOR serializes the part as the fixed 5-element array
// [seqNum, seqLen, messageLen, checksum, data].
func (p *Part) CBOR() []byte {
	var buf []byte
	buf = minicbor.AppendArrayHeader(buf, 5)
	buf = minicbor.AppendUint(buf, uint64(p.SeqNum))
	buf = minicbor.AppendUint(buf, uint64(p.SeqLen))
	buf = minicbor.AppendUint(buf, uint64(p.MessageLen))
	buf = minicbor.AppendUint(buf, uint64(p.Checksum))
	buf = minicbor.AppendBytes(buf, p.Data)
	return buf
}

// PartFromCBOR deserializes a Part previously produced by CBOR, rejecting
// anything that is not exactly a 5-element array of the expected shape.
func PartFromCBOR(buf []byte) (*Part, error) {
	r := minicbor.NewReader(buf)
	n, err := r.ReadArrayHeader()
	if err != nil {
		return nil, err
	}
	if n != 5 {
		return nil, fmt.Errorf("fountain: part array has %d elements, want 5", n)
	}
	seqNum, err := r.ReadUint()
	if err != nil {
		return nil, err
	}
	seqLen, err := r.ReadUint()
	if err != nil {
		return nil, err
	}
	messageLen, err := r.ReadUint()
	if err != nil {
		return nil, err
	}
	checksum, err := r.ReadUint()
	if err != nil {
		return nil, err
	}
	data, err := r.ReadBytes()
	if err != nil {
		return nil, err
	}
	return &Part{
		SeqNum:     uint32(seqNum),
		SeqLen:     uint32(seqLen),
		MessageLen: uint32(messageLen),
		Checksum:   uint32(checksum),
		Data:       append([]byte(nil), data...),
	}, nil
}

func xorInto(dst, src []byte) {
	for i := range src {
		dst[i] ^= src[i]
	}
}
