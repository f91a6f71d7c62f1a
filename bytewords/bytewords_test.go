package bytewords_test

import (
	"bytes"
	"testing"

	"github.com/fountaincodec/ur/bytewords"
)

// pinned against the reference test suite's test_bytewords_1.
func TestEncodePinned(t *testing.T) {
	input := []byte{0, 1, 2, 128, 255}

	tests := []struct {
		style bytewords.Style
		want  string
	}{
		{bytewords.Standard, "able acid also lava zero jade need echo taxi"},
		{bytewords.URI, "able-acid-also-lava-zero-jade-need-echo-taxi"},
		{bytewords.Minimal, "aeadaolazojendeoti"},
	}
	for _, tt := range tests {
		if got := bytewords.Encode(tt.style, input); got != tt.want {
			t.Errorf("Encode(%v): got %q, want %q", tt.style, got, tt.want)
		}
	}
}

// pinned against the reference test suite's test_bytewords_1.
func TestDecodePinned(t *testing.T) {
	want := []byte{0, 1, 2, 128, 255}

	tests := []struct {
		style bytewords.Style
		s     string
	}{
		{bytewords.Standard, "able acid also lava zero jade need echo taxi"},
		{bytewords.URI, "able-acid-also-lava-zero-jade-need-echo-taxi"},
		{bytewords.Minimal, "aeadaolazojendeoti"},
	}
	for _, tt := range tests {
		got, err := bytewords.Decode(tt.style, tt.s)
		if err != nil {
			t.Fatalf("Decode(%v): unexpected error: %v", tt.style, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Decode(%v): got %v, want %v", tt.style, got, want)
		}
	}
}

// pinned against the reference test suite's test_bytewords_1 (bad checksum
// and too-short cases).
func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		style bytewords.Style
		s     string
		kind  bytewords.Kind
	}{
		{"bad checksum standard", bytewords.Standard, "able acid also lava zero jade need echo wolf", bytewords.InvalidChecksum},
		{"bad checksum uri", bytewords.URI, "able-acid-also-lava-zero-jade-need-echo-wolf", bytewords.InvalidChecksum},
		{"bad checksum minimal", bytewords.Minimal, "aeadaolazojendeowf", bytewords.InvalidChecksum},
		{"too short standard", bytewords.Standard, "wolf", bytewords.TooShort},
		{"empty standard", bytewords.Standard, "", bytewords.TooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bytewords.Decode(tt.style, tt.s)
			if err == nil {
				t.Fatalf("Decode(%q): expected error, got nil", tt.s)
			}
			var bwErr *bytewords.Error
			if !asError(err, &bwErr) {
				t.Fatalf("Decode(%q): error %v is not a *bytewords.Error", tt.s, err)
			}
			if bwErr.Kind != tt.kind {
				t.Errorf("Decode(%q): got kind %v, want %v", tt.s, bwErr.Kind, tt.kind)
			}
		})
	}
}

// pinned against the reference test suite's test_bytewords_2.
func TestEncodeDecodeLongVector(t *testing.T) {
	input := []byte{
		245, 215, 20, 198, 241, 235, 69, 59, 209, 205,
		165, 18, 150, 158, 116, 135, 229, 212, 19, 159,
		17, 37, 239, 240, 253, 11, 109, 191, 37, 242,
		38, 120, 223, 41, 156, 189, 242, 254, 147, 204,
		66, 163, 216, 175, 191, 72, 169, 54, 32, 60,
		144, 230, 210, 137, 184, 197, 33, 113, 88, 14,
		157, 31, 177, 46, 1, 115, 205, 69, 225, 150,
		65, 235, 58, 144, 65, 240, 133, 69, 113, 247,
		63, 53, 242, 165, 160, 144, 26, 13, 79, 237,
		133, 71, 82, 69, 254, 165, 138, 41, 85, 24,
	}

	const encoded = "yank toys bulb skew when warm free fair tent swan " +
		"open brag mint noon jury lion view tiny brew note " +
		"body data webs what zone bald join runs data whiz " +
		"days keys user diet news ruby whiz zoom menu surf " +
		"flew omit trip pose runs fund part even crux fern " +
		"math visa tied loud redo silk curl jugs hard beta " +
		"next cost puma drum acid junk swan free very mint " +
		"flap warm fact math flap what list free jugs yell " +
		"fish epic whiz open numb math city belt glow wave " +
		"list fuel grim free zoom open love diet gyro cats " +
		"fizz holy city puff"

	const encodedMinimal = "yktsbbswwnwmfefrttsnonbgmtnnjylnvwtybwne" +
		"bydawswtzebdjnrsdawzdsksurdtnsrywzzmmusf" +
		"fwottppersfdptencxfnmhvatdldroskcljshdba" +
		"ntctpadmadjksnfevymtfpwmftmhfpwtltfejsyl" +
		"fhecwzonnbmhcybtgwweltflgmfezmonledtgocs" +
		"fzhycypf"

	if got := bytewords.Encode(bytewords.Standard, input); got != encoded {
		t.Errorf("Encode(standard): got %q, want %q", got, encoded)
	}
	if got := bytewords.Encode(bytewords.Minimal, input); got != encodedMinimal {
		t.Errorf("Encode(minimal): got %q, want %q", got, encodedMinimal)
	}

	got, err := bytewords.Decode(bytewords.Standard, encoded)
	if err != nil {
		t.Fatalf("Decode(standard): unexpected error: %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Errorf("Decode(standard): got %v, want %v", got, input)
	}

	got, err = bytewords.Decode(bytewords.Minimal, encodedMinimal)
	if err != nil {
		t.Fatalf("Decode(minimal): unexpected error: %v", err)
	}
	if !bytes.Equal(got, input) {
		t.Errorf("Decode(minimal): got %v, want %v", got, input)
	}
}

// testable property 2: decode(style, encode(style, b)) == b for every style.
func TestRoundTripAllStyles(t *testing.T) {
	msgs := [][]byte{
		{},
		{0},
		{0, 1, 2, 128, 255},
		bytes.Repeat([]byte{0x42}, 100),
	}
	styles := []bytewords.Style{bytewords.Standard, bytewords.URI, bytewords.Minimal}

	for _, msg := range msgs {
		for _, style := range styles {
			encoded := bytewords.Encode(style, msg)
			got, err := bytewords.Decode(style, encoded)
			if err != nil {
				t.Fatalf("round trip style %v, msg %v: %v", style, msg, err)
			}
			if !bytes.Equal(got, msg) {
				t.Fatalf("round trip style %v: got %v, want %v", style, got, msg)
			}
		}
	}
}

func asError(err error, target **bytewords.Error) bool {
	for err != nil {
		if e, ok := err.(*bytewords.Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
