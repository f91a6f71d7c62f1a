// Package ur implements the Uniform Resource codec (BCR-2020-005): a
// self-describing encoding of arbitrary binary payloads into sequences
// of URI-safe text fragments, built on the bytewords, fountain and
// minicbor subpackages. Payloads that fit in a single fragment are
// encoded as "ur:<type>/<bytewords-minimal>"; larger ones are split by
// the fountain code into "ur:<type>/<seqNum>-<seqLen>/<bytewords-minimal>"
// parts that a receiver can reassemble from any sufficient subset,
// in any order.
package ur

import "regexp"

var typePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// UR is an application payload tagged with a type string: an opaque
// CBOR-encoded byte string plus the lower-case identifier naming what
// it carries.
type UR struct {
	Type string
	CBOR []byte
}

// New validates typ against the UR grammar's type production
// ([a-z0-9][a-z0-9-]*) and returns a UR wrapping cbor.
func New(typ string, cbor []byte) (*UR, error) {
	if !typePattern.MatchString(typ) {
		return nil, newError(InvalidURFormat, "invalid UR type %q", typ)
	}
	return &UR{Type: typ, CBOR: cbor}, nil
}

// Equal reports whether two URs carry the same type and CBOR payload.
func (u *UR) Equal(other *UR) bool {
	if u == nil || other == nil {
		return u == other
	}
	if u.Type != other.Type || len(u.CBOR) != len(other.CBOR) {
		return false
	}
	for i := range u.CBOR {
		if u.CBOR[i] != other.CBOR[i] {
			return false
		}
	}
	return true
}
