package edwards25519

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestEncodeDecodeRoundTrip checks decode(encode(P)) = P for a handful of
// on-curve points, and that encoding always produces 32 bytes whose top
// bit matches the parity of x (spec 8).
func TestEncodeDecodeRoundTrip(t *testing.T) {
	points := []ExtendedPoint{Identity, Base, Base.Add(Base), Base.Double().Add(Base)}
	for i, p := range points {
		enc := p.Bytes()
		if len(enc) != 32 {
			t.Fatalf("point %d: encoding length %d, want 32", i, len(enc))
		}
		a := p.ToAffine()
		wantBit := a.X.Bit(0)
		gotBit := uint(enc[31] >> 7)
		if wantBit != gotBit {
			t.Errorf("point %d: sign bit %d, want %d", i, gotBit, wantBit)
		}

		decoded, err := DecodePoint(enc, true)
		if err != nil {
			t.Fatalf("point %d: decode failed: %v\n%s", i, err, spew.Sdump(p))
		}
		if !decoded.Equal(p) {
			t.Errorf("point %d: decode(encode(p)) != p\nwant %s\ngot  %s", i, spew.Sdump(p), spew.Sdump(decoded))
		}
	}
}

// TestSmallOrderPoints constructs the order-2 point (0, -1) and an
// order-4 point (sqrt(-1), 0) directly from the curve equation and checks
// IsSmallOrder / IsTorsionFree agree with their known order.
func TestSmallOrderPoints(t *testing.T) {
	orderTwo := NewAffine(FieldElementFromInt64(0), NewFieldElement(new(big.Int).Sub(P, big.NewInt(1)))).ToExtended()
	if !orderTwo.IsSmallOrder() {
		t.Error("(0,-1) should be small-order (order 2)")
	}
	if orderTwo.IsTorsionFree() {
		t.Error("(0,-1) should not be torsion-free")
	}
	if orderTwo.Double().IsIdentity() == false {
		t.Error("(0,-1) doubled should be the identity")
	}

	orderFour := NewAffine(NewFieldElement(sqrtM1), FieldElementFromInt64(0)).ToExtended()
	if !orderFour.IsSmallOrder() {
		t.Error("(sqrt(-1), 0) should be small-order (order 4)")
	}
	if orderFour.Double().IsIdentity() {
		t.Error("(sqrt(-1), 0) should have order 4, not 2")
	}
	if !orderFour.Double().Double().IsIdentity() {
		t.Error("(sqrt(-1), 0) doubled twice should be the identity")
	}

	if Base.IsSmallOrder() {
		t.Error("Base must not be small-order")
	}
	if !Base.IsTorsionFree() {
		t.Error("Base must be torsion-free")
	}
}

// TestDecodeStrictRejectsNonCanonicalY checks that strict mode rejects a
// y-coordinate >= P while ZIP-215 mode accepts the same bytes (spec 8's
// mode-specific divergence requirement). y=P is chosen because it is the
// smallest non-canonical encoding that still reduces (mod P) to a y with
// a known valid x: y=0 is the order-4 point (sqrt(-1), 0).
func TestDecodeStrictRejectsNonCanonicalY(t *testing.T) {
	var enc [32]byte
	encodeLittleEndian(enc[:], new(big.Int).Set(P))

	if _, err := DecodePoint(enc, false); err == nil {
		t.Error("strict mode should reject y >= P")
	}
	decoded, err := DecodePoint(enc, true)
	if err != nil {
		t.Fatalf("ZIP-215 mode should accept non-canonical y, got %v", err)
	}
	if !decoded.IsSmallOrder() {
		t.Error("y=P should decode to the same small-order point as y=0")
	}
}
