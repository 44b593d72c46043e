package edwards25519

import "math/big"

// ExtendedPoint is a point on the twisted Edwards curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2  (mod P)
//
// held in extended projective coordinates (X:Y:Z:T) with x = X/Z, y = Y/Z,
// and T = XY/Z. Z is never zero for a point produced by this package; the
// invariant is re-established by every group operation (spec 3).
type ExtendedPoint struct {
	X, Y, Z, T FieldElement
}

// AffinePoint is the (x, y) projection of an ExtendedPoint. It is only
// ever produced by ToAffine; it is never the canonical in-memory form.
type AffinePoint struct {
	X, Y FieldElement
}

var (
	// Identity is the neutral element (0, 1, 1, 0).
	Identity ExtendedPoint
	// Base is the standard Ed25519 generator B.
	Base ExtendedPoint
)

// Identity and Base are set here rather than in the var block because
// they need P, which field.go's init sets after package variables are
// initialized.
func init() {
	Identity = ExtendedPoint{
		X: FieldElementFromInt64(0),
		Y: FieldElementFromInt64(1),
		Z: FieldElementFromInt64(1),
		T: FieldElementFromInt64(0),
	}
	gx, _ := new(big.Int).SetString("216936d3cd6e53fec0a4e231fdd6dc5c692cc7609525a7b2c9562d608f25d51a", 16)
	gy, _ := new(big.Int).SetString("6666666666666666666666666666666666666666666666666666666666666658", 16)
	Base = NewAffine(NewFieldElement(gx), NewFieldElement(gy)).ToExtended()
}

// NewAffine builds an AffinePoint from raw coordinates; callers are
// responsible for the coordinates actually lying on the curve.
func NewAffine(x, y FieldElement) AffinePoint {
	return AffinePoint{X: x, Y: y}
}

// ToExtended lifts an affine point into extended coordinates:
// (X=x, Y=y, Z=1, T=x*y), per spec 4.E's decoding postcondition.
func (a AffinePoint) ToExtended() ExtendedPoint {
	one := FieldElementFromInt64(1)
	return ExtendedPoint{X: a.X, Y: a.Y, Z: one, T: a.X.Mul(a.Y)}
}

// ToAffine projects an ExtendedPoint down to affine coordinates. It is not
// constant time (field inversion isn't); this is only used on the caller's
// own public output, never on a value that must stay secret.
func (p ExtendedPoint) ToAffine() AffinePoint {
	zInv := p.Z.Inverse()
	return AffinePoint{X: p.X.Mul(zInv), Y: p.Y.Mul(zInv)}
}

// twoD is 2*d mod P, the constant folded into the unified addition
// formula below (matching the "k" constant of the teacher's reference
// implementation).
var twoD FieldElement

func init() {
	twoD = NewFieldElement(D).Add(NewFieldElement(D))
}

// Add computes p+q using the complete, unified "add-2008-hwcd-3" formula
// for twisted Edwards curves with a=-1 (spec 4.C): 8 field multiplications,
// one multiplication by 2d, no branches, and no special case for doubling
// or the identity.
func (p ExtendedPoint) Add(q ExtendedPoint) ExtendedPoint {
	a := p.Y.Sub(p.X).Mul(q.Y.Sub(q.X))
	b := p.Y.Add(p.X).Mul(q.Y.Add(q.X))
	c := p.T.Mul(q.T).Mul(twoD)
	d := p.Z.Mul(q.Z).Add(p.Z.Mul(q.Z))
	e := b.Sub(a)
	f := d.Sub(c)
	g := d.Add(c)
	h := b.Add(a)
	return ExtendedPoint{
		X: e.Mul(f),
		Y: g.Mul(h),
		T: e.Mul(h),
		Z: f.Mul(g),
	}
}

// Double computes p+p using the "dbl-2008-hwcd" doubling formula
// (4M + 4S + 1 mult-by-a + 6 adds), specialized for a=-1.
func (p ExtendedPoint) Double() ExtendedPoint {
	a := p.X.Square()
	b := p.Y.Square()
	c := p.Z.Square().Add(p.Z.Square())
	h := a.Negate()              // d = a*A with a=-1
	e := p.X.Add(p.Y).Square().Sub(a).Sub(b)
	g := h.Add(b) // D+B = B-A
	f := g.Sub(c)
	j := h.Sub(b) // D-B = -A-B
	return ExtendedPoint{
		X: e.Mul(f),
		Y: g.Mul(j),
		T: e.Mul(j),
		Z: f.Mul(g),
	}
}

// Negate returns -p by flipping the sign of X and T.
func (p ExtendedPoint) Negate() ExtendedPoint {
	return ExtendedPoint{X: p.X.Negate(), Y: p.Y, Z: p.Z, T: p.T.Negate()}
}

// Subtract returns p-q.
func (p ExtendedPoint) Subtract(q ExtendedPoint) ExtendedPoint {
	return p.Add(q.Negate())
}

// Equal reports whether p and q represent the same affine point, via
// cross-multiplication X1*Z2 == X2*Z1 && Y1*Z2 == Y2*Z1 — two different
// projective representations of the same point compare equal (spec 3).
func (p ExtendedPoint) Equal(q ExtendedPoint) bool {
	return p.X.Mul(q.Z).Equal(q.X.Mul(p.Z)) && p.Y.Mul(q.Z).Equal(q.Y.Mul(p.Z))
}

// IsIdentity reports whether p is the neutral element.
func (p ExtendedPoint) IsIdentity() bool {
	return p.Equal(Identity)
}

// ClearCofactor returns [8]p via three doublings, matching the cofactor
// h=8 of spec 3.
func (p ExtendedPoint) ClearCofactor() ExtendedPoint {
	return p.Double().Double().Double()
}

// IsSmallOrder reports whether p*h = O, i.e. p's order divides the
// cofactor 8.
func (p ExtendedPoint) IsSmallOrder() bool {
	return p.ClearCofactor().IsIdentity()
}

// IsTorsionFree reports whether p lies in the prime-order subgroup, i.e.
// L*p = O.
func (p ExtendedPoint) IsTorsionFree() bool {
	return p.scalarMultRawUnsafe(new(big.Int).Set(L)).IsIdentity()
}

// Bytes encodes p as 32 bytes: y little-endian with the top bit of the
// last byte set to the low bit of x (spec 4.E).
func (p ExtendedPoint) Bytes() [32]byte {
	a := p.ToAffine()
	var out [32]byte
	encodeLittleEndian(out[:], a.Y.BigInt())
	if a.X.Bit(0) == 1 {
		out[31] |= 0x80
	}
	return out
}

// Hex encodes p as lowercase hex, per Bytes.
func (p ExtendedPoint) Hex() string {
	b := p.Bytes()
	return BytesToHex(b[:])
}

// DecodePoint parses a 32-byte compressed point per RFC 8032 section
// 5.1.3, honoring the ZIP-215 vs strict canonicality rule of spec 4.E.
// zip215=true accepts any y in [0, 2^256); zip215=false requires y in
// [0, P) and additionally rejects x=0 paired with a set sign bit.
func DecodePoint(in [32]byte, zip215 bool) (ExtendedPoint, error) {
	sign := in[31] >> 7
	yBytes := in
	yBytes[31] &= 0x7f
	y := new(big.Int).SetBytes(reverseBytes(yBytes[:]))

	if !zip215 && y.Cmp(P) >= 0 {
		return ExtendedPoint{}, Error{Err: ErrInvalidPoint, Description: "y >= p in strict mode"}
	}
	yf := NewFieldElement(y)

	u := yf.Square().Sub(FieldElementFromInt64(1))
	v := yf.Square().Mul(NewFieldElement(D)).Add(FieldElementFromInt64(1))

	// x = u*v^3*(u*v^7)^((p-5)/8), per RFC 8032's candidate-root
	// construction; v3 is retained because it's reused below.
	v2 := v.Square()
	v3 := v2.Mul(v)
	v7 := v3.Mul(v2).Mul(v2)
	candidateExp := v7.Mul(u).SqrtCandidateExponent()
	x := u.Mul(v3).Mul(candidateExp)

	check := x.Square().Mul(v)
	validPlain := check.Equal(u)

	// Always compute the sqrt(-1)-twisted branch so that which branch
	// held does not change the cost of this call (spec 4.E). The twist
	// test is on the original candidate x, not on x*sqrt(-1): squaring
	// sqrt(-1) away would just reproduce check == u and the branch could
	// never trigger (matches ed25519_ref.go's decodePoint, which tests
	// the untwisted check against -u before multiplying by sqrtm1).
	validTwisted := check.Equal(u.Negate())
	xTimesSqrtM1 := x.Mul(NewFieldElement(sqrtM1))

	if !validPlain {
		if !validTwisted {
			return ExtendedPoint{}, Error{Err: ErrInvalidPoint, Description: "no square root exists"}
		}
		x = xTimesSqrtM1
	}

	if x.IsZero() && sign == 1 {
		if !zip215 {
			return ExtendedPoint{}, Error{Err: ErrInvalidPoint, Description: "x=0 with sign bit set"}
		}
	}
	if x.Bit(0) != uint(sign) {
		x = x.Negate()
	}

	return NewAffine(x, yf).ToExtended(), nil
}
