package ur

import (
	"github.com/pkg/errors"

	"github.com/fountaincodec/ur/bytewords"
	"github.com/fountaincodec/ur/fountain"
)

// Kind classifies a UR-level failure. It widens the subpackage Kinds
// (bytewords.Kind, fountain.Kind) with the failure modes that only
// exist at the URI/framing layer.
type Kind int

const (
	// InvalidBytewords mirrors bytewords.InvalidBytewords.
	InvalidBytewords Kind = iota
	// InvalidChecksum mirrors bytewords.InvalidChecksum.
	InvalidChecksum
	// TooShort mirrors bytewords.TooShort.
	TooShort
	// InvalidURFormat means the string is not a well-formed
	// "ur:<type>/..." URI: missing prefix, bad seq-seqLen segment, or
	// disallowed characters in <type>.
	InvalidURFormat
	// InvalidCBOR means the bytewords payload did not parse as the
	// expected CBOR shape.
	InvalidCBOR
	// InconsistentPart mirrors fountain.InconsistentPart.
	InconsistentPart
	// MessageChecksumMismatch mirrors fountain.MessageChecksumMismatch.
	MessageChecksumMismatch
)

func (k Kind) String() string {
	switch k {
	case InvalidBytewords:
		return "invalid bytewords"
	case InvalidChecksum:
		return "invalid checksum"
	case TooShort:
		return "too short"
	case InvalidURFormat:
		return "invalid ur format"
	case InvalidCBOR:
		return "invalid cbor"
	case InconsistentPart:
		return "inconsistent part"
	case MessageChecksumMismatch:
		return "message checksum mismatch"
	default:
		return "unknown"
	}
}

// Error is the error type returned by this package's Encode/Decode
// operations.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.msg
}

func newError(kind Kind, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: kind, msg: errors.Errorf(format, args...).Error()})
}

// wrapBytewordsErr maps a bytewords.Error onto the equivalent ur.Kind,
// preserving the original as the error chain's cause.
func wrapBytewordsErr(err error) error {
	var bwErr *bytewords.Error
	if errors.As(err, &bwErr) {
		switch bwErr.Kind {
		case bytewords.InvalidChecksum:
			return newError(InvalidChecksum, "%s", bwErr.Error())
		case bytewords.TooShort:
			return newError(TooShort, "%s", bwErr.Error())
		default:
			return newError(InvalidBytewords, "%s", bwErr.Error())
		}
	}
	return newError(InvalidBytewords, "%s", err.Error())
}

// wrapFountainErr maps a fountain.Error onto the equivalent ur.Kind.
func wrapFountainErr(err error) error {
	var fErr *fountain.Error
	if errors.As(err, &fErr) {
		switch fErr.Kind {
		case fountain.MessageChecksumMismatch:
			return newError(MessageChecksumMismatch, "%s", fErr.Error())
		default:
			return newError(InconsistentPart, "%s", fErr.Error())
		}
	}
	return newError(InconsistentPart, "%s", err.Error())
}
