package fountain

import "github.com/pkg/errors"

// Kind classifies a fountain decode failure.
type Kind int

const (
	// InconsistentPart means a received part's seqLen, messageLen, or
	// checksum disagrees with the header established by the first
	// part received.
	InconsistentPart Kind = iota
	// MessageChecksumMismatch means every fragment was recovered but
	// the whole-message CRC32 does not match the header checksum.
	MessageChecksumMismatch
)

func (k Kind) String() string {
	switch k {
	case InconsistentPart:
		return "inconsistent part"
	case MessageChecksumMismatch:
		return "message checksum mismatch"
	default:
		return "unknown"
	}
}

// Error is the error type stored as a Decoder's terminal result.
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
