package ur_test

import (
	"testing"

	"github.com/fountaincodec/ur"
	"github.com/fountaincodec/ur/internal/testmsg"
)

func makeBytesUR(t *testing.T, length int) *ur.UR {
	t.Helper()
	u, err := ur.New("bytes", testmsg.MakeCBOR(length, "Wolf"))
	if err != nil {
		t.Fatalf("ur.New: %v", err)
	}
	return u
}

// pinned against the reference test suite's test_single_part_ur.
func TestSinglePartEncodeDecodePinned(t *testing.T) {
	u := makeBytesUR(t, 50)

	encoded := ur.Encode(u)
	want := "ur:bytes/hdeymejtswhhylkepmykhhtsytsnoyoyaxaedsuttydmmhhpktpmsrjtgwdpfnsboxgwlbaawzuefywkdplrsrjynbvygabwjldapfcsdwkbrkch"
	if encoded != want {
		t.Fatalf("Encode: got %q, want %q", encoded, want)
	}

	decoded, err := ur.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !decoded.Equal(u) {
		t.Fatalf("decoded UR differs from original: got %+v", decoded)
	}
}

// pinned against the reference test suite's test_ur_encoder: the first
// 20 multipart strings for a 256-byte message at maxFragmentLen=30.
func TestEncoderMultipartPinned(t *testing.T) {
	u := makeBytesUR(t, 256)
	enc := ur.NewEncoder(u, 30, 0)

	want := []string{
		"ur:bytes/1-9/ltadascfadaxcywenbpljkhdcahkadaemejtswhhylkepmykhhtsytsnoyoyaxaedsuttydmmhhpktpmsrjtdkgsltgh",
		"ur:bytes/2-9/ltaoascfadaxcywenbpljkhdcagwdpfnsboxgwlbaawzuefywkdplrsrjynbvygabwjldapfcsgmghhkhstlrdcxaefz",
		"ur:bytes/3-9/ltaxascfadaxcywenbpljkhdcahelbknlkuejnbadmssfhfrdpsbiegecpasvssovlgeykssjykklronvsjksopdzool",
		"ur:bytes/4-9/ltaaascfadaxcywenbpljkhdcasotkhemthydawydtaxneurlkosgwcekonertkbrlwmplssjtammdplolsbrdzertas",
		"ur:bytes/5-9/ltahascfadaxcywenbpljkhdcatbbdfmssrkzocwnezmlennjpfzbgmuktrhtejscktelgfpdlrkfyfwdajldejokbwf",
		"ur:bytes/6-9/ltamascfadaxcywenbpljkhdcackjlhkhybssklbwefectpfnbbectrljectpavyrolkzezepkmwidmwoxkilghdsowp",
		"ur:bytes/7-9/ltatascfadaxcywenbpljkhdcavszownjkwtclrtvaynhpahrtoxmwvwatmedibkaegdosftvandiodagdhthtrlnnhy",
		"ur:bytes/8-9/ltayascfadaxcywenbpljkhdcadmsponkkbbhgsolnjntegepmttmoonftnbuoiyrehfrtsabzsttorodklubbuyaetk",
		"ur:bytes/9-9/ltasascfadaxcywenbpljkhdcajskecpmdckihdyhphfotjojtfmlpwmadspaxrkytbztpbauotbgtgtaeaevtgavtny",
		"ur:bytes/10-9/ltbkascfadaxcywenbpljkhdcahkadaemejtswhhylkepmykhhtsytsnoyoyaxaedsuttydmmhhpktpmsrjtwdkiplzs",
		"ur:bytes/11-9/ltbdascfadaxcywenbpljkhdcahelbknlkuejnbadmssfhfrdpsbiegecpasvssovlgeykssjykklronvsjkvetiiapk",
		"ur:bytes/12-9/ltbnascfadaxcywenbpljkhdcarllaluzodmgstospeyiefmwejlwtpedamktksrvlcygmzmmovovllarodtmtbnptrs",
		"ur:bytes/13-9/ltbtascfadaxcywenbpljkhdcamtkgtpknghchchyketwsvwgwfdhpgmgtylctotztpdrpayoschcmhplffziachrfgd",
		"ur:bytes/14-9/ltbaascfadaxcywenbpljkhdcapazmwnvonnvdnsbyleynwtnsjkjndeoldydkbkdslgjkbbkortbelomueekgvstegt",
		"ur:bytes/15-9/ltbsascfadaxcywenbpljkhdcaynmhpddpzoversbdqdfyrehnqzlugmjzmnmtwmrouohtstgsbsahpawkditkckynwt",
		"ur:bytes/16-9/ltbeascfadaxcywenbpljkhdcawygekobamwtlihsnpalpsghenskkiynthdzttsimtojetprsttmukirlrsbtamjtpd",
		"ur:bytes/17-9/ltbyascfadaxcywenbpljkhdcamklgftaxykpewyrtqzhydntpnytyisincxmhtbceaykolduortotiaiaiafhiaoyce",
		"ur:bytes/18-9/ltbgascfadaxcywenbpljkhdcahkadaemejtswhhylkepmykhhtsytsnoyoyaxaedsuttydmmhhpktpmsrjtntwkbkwy",
		"ur:bytes/19-9/ltbwascfadaxcywenbpljkhdcadekicpaajootjzpsdrbalteywllbdsnbinaerkurspbncxgslgftvtsrjtksplcpeo",
		"ur:bytes/20-9/ltbbascfadaxcywenbpljkhdcayapmrleeleaxpasfrtrdkncffwjyjzgyetdmlewtkpktgllepfrltatazcksmhkbot",
	}

	for i, w := range want {
		got := enc.NextPart()
		if got != w {
			t.Fatalf("part %d: got %q, want %q", i, got, w)
		}
	}
}

// pinned against the reference test suite's test_multipart_ur: a
// 32767-byte message, maxFragmentLen=1000, firstSeqNum=100, driven
// through a full Encoder/Decoder round trip.
func TestEncoderDecoderRoundTripMultipart(t *testing.T) {
	u := makeBytesUR(t, 32767)
	enc := ur.NewEncoder(u, 1000, 100)
	dec := ur.NewDecoder()

	for !dec.IsComplete() {
		if err := dec.ReceivePart(enc.NextPart()); err != nil {
			t.Fatalf("ReceivePart: %v", err)
		}
	}

	if !dec.IsSuccess() {
		_, err := dec.Result()
		t.Fatalf("decoder did not succeed: %v", err)
	}
	got, err := dec.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if !got.Equal(u) {
		t.Fatal("decoded UR does not match original")
	}
}

func TestDecoderRejectsMalformedURI(t *testing.T) {
	cases := []string{
		"",
		"bytes/abcd",
		"ur:Bytes/abcd",
		"ur:bytes/1-x/abcd",
		"ur:bytes",
	}
	for _, s := range cases {
		if _, err := ur.Decode(s); err == nil {
			t.Fatalf("Decode(%q): expected an error", s)
		}
	}
}

func TestDecoderRejectsMixedTypes(t *testing.T) {
	u := makeBytesUR(t, 256)
	enc := ur.NewEncoder(u, 30, 0)
	dec := ur.NewDecoder()

	if err := dec.ReceivePart(enc.NextPart()); err != nil {
		t.Fatalf("ReceivePart: %v", err)
	}
	if err := dec.ReceivePart("ur:other/1-9/ltaoascfadaxcywenbpljkhdcagwdpfnsboxgwlbaawzuefywkdplrsrjynbvygabwjldapfcsgmghhkhstlrdcxaefz"); err == nil {
		t.Fatal("expected an error for a mismatched UR type")
	}
}
