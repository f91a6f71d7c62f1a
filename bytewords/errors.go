package bytewords

import "github.com/pkg/errors"

// Kind classifies a bytewords decode failure.
type Kind int

const (
	// InvalidBytewords means a token (a word, or a minimal shorthand
	// pair) did not match any entry in the wordlist.
	InvalidBytewords Kind = iota
	// InvalidChecksum means every token decoded to a known byte, but
	// the trailing CRC32 did not match the payload.
	InvalidChecksum
	// TooShort means the decoded byte sequence is too short to contain
	// a 4-byte checksum.
	TooShort
)

func (k Kind) String() string {
	switch k {
	case InvalidBytewords:
		return "invalid bytewords"
	case InvalidChecksum:
		return "invalid checksum"
	case TooShort:
		return "too short"
	default:
		return "unknown"
	}
}

// Error is the error type returned by Decode.
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
