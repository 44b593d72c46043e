package ed25519

import (
	"math/big"
	"testing"

	"github.com/agl/ed25519engine/edwards25519"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := edwards25519.HexToBytes(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// TestRFC8032Vector1 and TestRFC8032Vector2 check the two concrete
// scenarios quoted from RFC 8032: the empty-message vector and the
// single-byte-message vector.
func TestRFC8032Vector1(t *testing.T) {
	SetSyncHash(StdlibSyncHasher())

	seed := hexBytes(t, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	wantPub := hexBytes(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a")
	wantSig := hexBytes(t, "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b")

	pub, err := GetPublicKey(seed)
	if err != nil {
		t.Fatal(err)
	}
	if string(pub) != string(wantPub) {
		t.Errorf("pubkey mismatch\ngot  %x\nwant %x", pub, wantPub)
	}

	sig, err := Sign(nil, seed)
	if err != nil {
		t.Fatal(err)
	}
	if string(sig) != string(wantSig) {
		t.Errorf("signature mismatch\ngot  %x\nwant %x", sig, wantSig)
	}

	if !Verify(sig, nil, pub) {
		t.Error("expected signature to verify")
	}
}

func TestRFC8032Vector2(t *testing.T) {
	SetSyncHash(StdlibSyncHasher())

	seed := hexBytes(t, "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb")
	msg := hexBytes(t, "72")
	wantPub := hexBytes(t, "3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c")
	wantSig := hexBytes(t, "92a009a9f0d4cab8720e820b5f642540a2b27b5416503f8fb3762223ebdb69da085ac1e43e15996e458f3613d0f11d8c387b2eaeb4302aeeb00d291612bb0c00")

	pub, err := GetPublicKey(seed)
	if err != nil {
		t.Fatal(err)
	}
	if string(pub) != string(wantPub) {
		t.Errorf("pubkey mismatch\ngot  %x\nwant %x", pub, wantPub)
	}

	sig, err := Sign(msg, seed)
	if err != nil {
		t.Fatal(err)
	}
	if string(sig) != string(wantSig) {
		t.Errorf("signature mismatch\ngot  %x\nwant %x", sig, wantSig)
	}

	if !Verify(sig, msg, pub) {
		t.Error("expected signature to verify")
	}

	// Tampering the message must flip verification to false.
	tampered := append([]byte(nil), msg...)
	tampered[0] ^= 0xff
	if Verify(sig, tampered, pub) {
		t.Error("expected tampered message to fail verification")
	}
}

// TestPublicKeyRoundTrip checks decode-then-encode of scenario 1's
// public key reproduces the original bytes.
func TestPublicKeyRoundTrip(t *testing.T) {
	pub := hexBytes(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a")
	var pubArr [32]byte
	copy(pubArr[:], pub)

	p, err := edwards25519.DecodePoint(pubArr, true)
	if err != nil {
		t.Fatal(err)
	}
	got := p.Bytes()
	if got != pubArr {
		t.Errorf("round trip mismatch\ngot  %x\nwant %x", got, pubArr)
	}
}

// TestZIP215StrictDivergence checks spec scenario 6: a signature whose
// public key A is a small-order point verifies under ZIP-215 but is
// rejected under strict mode, even though the cofactor-cleared check
// that ZIP-215 relies on is satisfied for every scalar k.
//
// With A an order-2 point, R = identity and S = 0, the check equation
// reduces to ClearCofactor(0*B + k*A - 0*B) = 8*(k*A), which is the
// identity for any k because A has order 2. Strict mode additionally
// rejects A outright for being small-order.
func TestZIP215StrictDivergence(t *testing.T) {
	SetSyncHash(StdlibSyncHasher())

	orderTwoAffine := edwards25519.NewAffine(
		edwards25519.FieldElementFromInt64(0),
		edwards25519.NewFieldElement(new(big.Int).Sub(edwards25519.P, big.NewInt(1))),
	)
	A := orderTwoAffine.ToExtended()
	if !A.IsSmallOrder() {
		t.Fatal("constructed point is not small-order; test setup is wrong")
	}

	pub := A.Bytes()
	var sig [64]byte // R = identity (encodes to 0x01 little-endian), S = 0
	rEnc := edwards25519.Identity.Bytes()
	copy(sig[:32], rEnc[:])

	if !Verify(sig[:], []byte("anything"), pub[:], WithZIP215(true)) {
		t.Error("expected ZIP-215 mode to accept the small-order-A signature")
	}
	if Verify(sig[:], []byte("anything"), pub[:], WithZIP215(false)) {
		t.Error("expected strict mode to reject the small-order-A signature")
	}
}
