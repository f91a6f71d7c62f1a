package ur

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fountaincodec/ur/bytewords"
	"github.com/fountaincodec/ur/fountain"
)

var seqPattern = regexp.MustCompile(`^([0-9]+)-([0-9]+)$`)

// Decode parses a single "ur:" URI string and returns the UR it
// encodes. It only succeeds for single-part URIs and for a multipart
// URI whose seqLen is 1; any other multipart URI returns an error, as
// it requires accumulating parts through a Decoder.
func Decode(s string) (*UR, error) {
	d := NewDecoder()
	if err := d.ReceivePart(s); err != nil {
		return nil, err
	}
	if !d.IsComplete() {
		return nil, newError(InvalidURFormat, "multipart ur needs more parts than one")
	}
	return d.Result()
}

// parseURI splits a "ur:<type>/<bytewords>" or
// "ur:<type>/<seqNum>-<seqLen>/<bytewords>" string into its parts.
func parseURI(s string) (typ string, seqNum, seqLen uint32, multipart bool, bwPayload string, err error) {
	const prefix = "ur:"
	if !strings.HasPrefix(s, prefix) {
		return "", 0, 0, false, "", newError(InvalidURFormat, "missing ur: prefix")
	}
	segs := strings.Split(s[len(prefix):], "/")

	switch len(segs) {
	case 2:
		typ, bwPayload = segs[0], segs[1]
	case 3:
		typ = segs[0]
		m := seqPattern.FindStringSubmatch(segs[1])
		if m == nil {
			return "", 0, 0, false, "", newError(InvalidURFormat, "malformed seq-seqLen segment %q", segs[1])
		}
		n1, e1 := strconv.ParseUint(m[1], 10, 32)
		n2, e2 := strconv.ParseUint(m[2], 10, 32)
		if e1 != nil || e2 != nil || n1 < 1 || n2 < 1 {
			return "", 0, 0, false, "", newError(InvalidURFormat, "malformed seq-seqLen segment %q", segs[1])
		}
		seqNum, seqLen, multipart = uint32(n1), uint32(n2), true
		bwPayload = segs[2]
	default:
		return "", 0, 0, false, "", newError(InvalidURFormat, "malformed ur uri %q", s)
	}

	if !typePattern.MatchString(typ) {
		return "", 0, 0, false, "", newError(InvalidURFormat, "invalid ur type %q", typ)
	}
	return typ, seqNum, seqLen, multipart, bwPayload, nil
}

// Decoder accumulates "ur:" URI strings, single- or multi-part, and
// recovers the original UR once enough of them have been received.
// A single-part delivery resolves the Decoder immediately.
type Decoder struct {
	urType  string
	typeSet bool

	single       bool
	singleResult *UR
	singleErr    error

	fdec *fountain.Decoder
}

// NewDecoder returns an empty Decoder, ready to receive parts.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// ReceivePart folds one "ur:" URI string into the decoder's state.
// Parsing and bytewords-checksum failures are returned immediately
// without mutating decoder state; a part whose type disagrees with a
// previously established type is likewise rejected without being
// folded in.
func (d *Decoder) ReceivePart(s string) error {
	if d.IsComplete() {
		return nil
	}

	typ, _, _, multipart, bwPayload, err := parseURI(s)
	if err != nil {
		return err
	}
	if d.typeSet && typ != d.urType {
		return newError(InvalidURFormat, "part type %q disagrees with established type %q", typ, d.urType)
	}

	payload, err := bytewords.Decode(bytewords.Minimal, bwPayload)
	if err != nil {
		return wrapBytewordsErr(err)
	}

	if !multipart {
		u, err := New(typ, payload)
		if err != nil {
			d.singleErr = err
			return err
		}
		d.urType = typ
		d.typeSet = true
		d.single = true
		d.singleResult = u
		return nil
	}

	part, err := fountain.PartFromCBOR(payload)
	if err != nil {
		return newError(InvalidCBOR, "malformed part cbor: %s", err.Error())
	}
	d.urType = typ
	d.typeSet = true
	if d.fdec == nil {
		d.fdec = fountain.NewDecoder()
	}
	if err := d.fdec.ReceivePart(part); err != nil {
		return wrapFountainErr(err)
	}
	return nil
}

// IsComplete reports whether the decoder has reached a terminal state.
func (d *Decoder) IsComplete() bool {
	if d.single {
		return true
	}
	return d.fdec != nil && d.fdec.IsComplete()
}

// IsSuccess reports whether the decoder finished successfully.
func (d *Decoder) IsSuccess() bool {
	if d.single {
		return d.singleErr == nil
	}
	return d.fdec != nil && d.fdec.IsSuccess()
}

// Result returns the recovered UR, or the terminal error if decoding
// failed. Both are nil/absent until IsComplete returns true.
func (d *Decoder) Result() (*UR, error) {
	if d.single {
		return d.singleResult, d.singleErr
	}
	if d.fdec == nil {
		return nil, nil
	}
	message, err := d.fdec.Result()
	if err != nil {
		return nil, wrapFountainErr(err)
	}
	if message == nil {
		return nil, nil
	}
	u, err := New(d.urType, message)
	if err != nil {
		return nil, err
	}
	return u, nil
}
