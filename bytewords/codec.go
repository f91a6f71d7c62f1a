// Package bytewords implements the bytewords codec (BCR-2020-012): a
// mapping between byte values and a fixed lexicon of 256 four-letter
// English words, used as a transcription-resistant, URI-safe
// alternative to base-N encoding. Encoding appends a CRC32 checksum to
// the input before mapping each byte to its word, so a corrupted or
// mistyped encoding is caught on decode rather than silently accepted.
package bytewords

import (
	"strings"

	"github.com/fountaincodec/ur/internal/crc32util"
)

// Style selects one of the three textual renderings of a bytewords
// string.
type Style int

const (
	// Standard renders full words separated by a single space.
	Standard Style = iota
	// URI renders full words separated by a hyphen.
	URI
	// Minimal renders the first+last letter of each word, concatenated
	// with no separator.
	Minimal
)

func (s Style) separator() string {
	switch s {
	case URI:
		return "-"
	default:
		return " "
	}
}

var (
	wordToByte      map[string]byte
	shorthandToByte map[string]byte
)

func init() {
	wordToByte = make(map[string]byte, len(words))
	shorthandToByte = make(map[string]byte, len(words))
	for b, w := range words {
		wordToByte[w] = byte(b)
		shorthandToByte[shorthand(w)] = byte(b)
	}
}

func shorthand(word string) string {
	return string([]byte{word[0], word[len(word)-1]})
}

// Encode appends the big-endian CRC32 checksum of data to data, maps
// every resulting byte to its word, and joins the words per style.
func Encode(style Style, data []byte) string {
	framed := append(append([]byte(nil), data...), crc32util.Bytes(data)...)

	switch style {
	case Minimal:
		var b strings.Builder
		b.Grow(len(framed) * 2)
		for _, by := range framed {
			b.WriteString(shorthand(words[by]))
		}
		return b.String()
	default:
		parts := make([]string, len(framed))
		for i, by := range framed {
			parts[i] = words[by]
		}
		return strings.Join(parts, style.separator())
	}
}

// Decode parses s as a bytewords string in the given style, verifies
// its trailing CRC32 checksum, and returns the original (unframed)
// payload.
func Decode(style Style, s string) ([]byte, error) {
	var framed []byte

	switch style {
	case Minimal:
		if len(s)%2 != 0 {
			return nil, newError(InvalidBytewords, "minimal bytewords string has odd length")
		}
		framed = make([]byte, 0, len(s)/2)
		for i := 0; i < len(s); i += 2 {
			b, ok := shorthandToByte[s[i:i+2]]
			if !ok {
				return nil, newError(InvalidBytewords, "unknown shorthand %q", s[i:i+2])
			}
			framed = append(framed, b)
		}
	default:
		if s == "" {
			return nil, newError(TooShort, "bytewords string is empty")
		}
		tokens := strings.Split(s, style.separator())
		framed = make([]byte, 0, len(tokens))
		for _, tok := range tokens {
			b, ok := wordToByte[tok]
			if !ok {
				return nil, newError(InvalidBytewords, "unknown word %q", tok)
			}
			framed = append(framed, b)
		}
	}

	if len(framed) < 4 {
		return nil, newError(TooShort, "bytewords payload shorter than a checksum")
	}

	payload, checksum := framed[:len(framed)-4], framed[len(framed)-4:]
	want := crc32util.Bytes(payload)
	for i := range want {
		if want[i] != checksum[i] {
			return nil, newError(InvalidChecksum, "bytewords checksum mismatch")
		}
	}
	return payload, nil
}
