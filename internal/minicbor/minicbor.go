// Package minicbor implements the minimal CBOR (RFC 8949) subset the UR
// wire format needs: unsigned integers, definite-length byte strings,
// and definite-length arrays. It deliberately does not attempt to be a
// general CBOR library — maps, tags, floats, and indefinite-length
// items are out of scope, the same way the fountain and bytewords
// packages only implement the constructs the UR format actually uses.
package minicbor

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

const (
	majorUint   = 0
	majorBytes  = 2
	majorArray  = 4
	majorOffset = 5
)

// ErrMalformed is wrapped by every decode-time framing violation this
// package detects: a wrong major type, a truncated buffer, or an
// unsupported additional-info value. Array lengths are returned as
// read; checking them is left to the caller.
var ErrMalformed = errors.New("minicbor: malformed input")

// AppendUint appends the smallest-encoding CBOR unsigned integer (major
// type 0) for v to buf and returns the extended slice.
func AppendUint(buf []byte, v uint64) []byte {
	return appendHeader(buf, majorUint, v)
}

// AppendBytesHeader appends a CBOR byte-string header (major type 2) for
// a string of the given length.
func AppendBytesHeader(buf []byte, length int) []byte {
	return appendHeader(buf, majorBytes, uint64(length))
}

// AppendBytes appends a complete CBOR byte string (header plus data).
func AppendBytes(buf []byte, data []byte) []byte {
	buf = AppendBytesHeader(buf, len(data))
	return append(buf, data...)
}

// AppendArrayHeader appends a CBOR definite-length array header (major
// type 4) for n items.
func AppendArrayHeader(buf []byte, n int) []byte {
	return appendHeader(buf, majorArray, uint64(n))
}

func appendHeader(buf []byte, major byte, v uint64) []byte {
	lead := major << majorOffset
	switch {
	case v < 24:
		return append(buf, lead|byte(v))
	case v <= 0xff:
		return append(buf, lead|24, byte(v))
	case v <= 0xffff:
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, uint16(v))
		return append(append(buf, lead|25), b...)
	case v <= 0xffffffff:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, uint32(v))
		return append(append(buf, lead|26), b...)
	default:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, v)
		return append(append(buf, lead|27), b...)
	}
}

// Reader decodes a sequence of minicbor items from a byte slice.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// header reads the next item's major type and value, tolerating
// non-minimal encodings (a CBOR writer never produces one, but a
// conforming reader does not reject one on input).
func (r *Reader) header(wantMajor byte) (value uint64, err error) {
	if r.pos >= len(r.buf) {
		return 0, errors.Wrap(ErrMalformed, "unexpected end of input")
	}
	lead := r.buf[r.pos]
	major := lead >> majorOffset
	info := lead & 0x1f
	if major != wantMajor {
		return 0, errors.Wrapf(ErrMalformed, "expected major type %d, got %d", wantMajor, major)
	}
	r.pos++

	switch {
	case info < 24:
		return uint64(info), nil
	case info == 24:
		if r.pos+1 > len(r.buf) {
			return 0, errors.Wrap(ErrMalformed, "truncated 1-byte length")
		}
		v := uint64(r.buf[r.pos])
		r.pos++
		return v, nil
	case info == 25:
		if r.pos+2 > len(r.buf) {
			return 0, errors.Wrap(ErrMalformed, "truncated 2-byte length")
		}
		v := uint64(binary.BigEndian.Uint16(r.buf[r.pos:]))
		r.pos += 2
		return v, nil
	case info == 26:
		if r.pos+4 > len(r.buf) {
			return 0, errors.Wrap(ErrMalformed, "truncated 4-byte length")
		}
		v := uint64(binary.BigEndian.Uint32(r.buf[r.pos:]))
		r.pos += 4
		return v, nil
	case info == 27:
		if r.pos+8 > len(r.buf) {
			return 0, errors.Wrap(ErrMalformed, "truncated 8-byte length")
		}
		v := binary.BigEndian.Uint64(r.buf[r.pos:])
		r.pos += 8
		return v, nil
	default:
		return 0, errors.Wrapf(ErrMalformed, "unsupported additional info %d", info)
	}
}

// ReadUint reads an unsigned integer (major type 0).
func (r *Reader) ReadUint() (uint64, error) {
	return r.header(majorUint)
}

// ReadArrayHeader reads a definite-length array header and returns its
// declared length.
func (r *Reader) ReadArrayHeader() (int, error) {
	n, err := r.header(majorArray)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ReadBytes reads a complete byte string (major type 2).
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.header(majorBytes)
	if err != nil {
		return nil, err
	}
	if r.pos+int(n) > len(r.buf) {
		return nil, errors.Wrap(ErrMalformed, "truncated byte string")
	}
	data := r.buf[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return data, nil
}

// Remaining reports whether unconsumed bytes remain.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}
