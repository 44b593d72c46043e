// Package edwards25519 implements the twisted Edwards curve group used by
// Ed25519: finite-field arithmetic modulo 2**255-19, the curve group in
// extended projective coordinates, scalar multiplication, and point
// compression.
package edwards25519

import "math/big"

var (
	// P is 2**255-19, the field prime.
	P *big.Int
	// pMinus2 is P-2, the exponent used for field inversion via Fermat's
	// little theorem.
	pMinus2 *big.Int
	// pMinus5Div8 is (P-5)/8, the exponent used by the square-root chain
	// in point decompression.
	pMinus5Div8 *big.Int
	// sqrtM1 is a square root of -1 mod P.
	sqrtM1 *big.Int
	// D is the twisted Edwards curve parameter d = -121665/121666 mod P.
	D *big.Int
	// L is the order of the prime-order subgroup generated by the base
	// point.
	L *big.Int
	// bigOne and bigZero are small shared constants to avoid repeated
	// allocation at call sites.
	bigOne  = big.NewInt(1)
	bigZero = big.NewInt(0)
)

func init() {
	P, _ = new(big.Int).SetString("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed", 16)
	pMinus2 = new(big.Int).Sub(P, big.NewInt(2))
	pMinus5Div8 = new(big.Int).Rsh(new(big.Int).Sub(P, big.NewInt(5)), 3)
	sqrtM1, _ = new(big.Int).SetString("2b8324804fc1df0b2b4d00993dfbd7a72f431806ad2fe478c4ee1b274a0ea0b0", 16)
	D, _ = new(big.Int).SetString("52036cee2b6ffe738cc740797779e89800700a4d4141d8ab75eb4dca135978a3", 16)
	L, _ = new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)
}

// FieldElement is a value in [0, P) represented as an unbounded big.Int,
// always kept in reduced form.
type FieldElement struct {
	n *big.Int
}

// NewFieldElement reduces v mod P and returns the resulting FieldElement.
func NewFieldElement(v *big.Int) FieldElement {
	return FieldElement{n: new(big.Int).Mod(v, P)}
}

// FieldElementFromInt64 builds a FieldElement from a small literal, useful
// for the curve constants (0, 1, 2, ...).
func FieldElementFromInt64(v int64) FieldElement {
	return NewFieldElement(big.NewInt(v))
}

// BigInt returns the element's value as a fresh big.Int in [0, P).
func (f FieldElement) BigInt() *big.Int {
	return new(big.Int).Set(f.n)
}

// IsZero reports whether f is the additive identity.
func (f FieldElement) IsZero() bool {
	return f.n.Sign() == 0
}

// Equal reports whether f and g represent the same reduced field value.
func (f FieldElement) Equal(g FieldElement) bool {
	return f.n.Cmp(g.n) == 0
}

// Add returns f+g mod P.
func (f FieldElement) Add(g FieldElement) FieldElement {
	return NewFieldElement(new(big.Int).Add(f.n, g.n))
}

// Sub returns f-g mod P.
func (f FieldElement) Sub(g FieldElement) FieldElement {
	return NewFieldElement(new(big.Int).Sub(f.n, g.n))
}

// Mul returns f*g mod P.
func (f FieldElement) Mul(g FieldElement) FieldElement {
	return NewFieldElement(new(big.Int).Mul(f.n, g.n))
}

// MulInt64 returns f*k mod P for a small literal multiplier.
func (f FieldElement) MulInt64(k int64) FieldElement {
	return NewFieldElement(new(big.Int).Mul(f.n, big.NewInt(k)))
}

// Square returns f*f mod P.
func (f FieldElement) Square() FieldElement {
	return NewFieldElement(new(big.Int).Mul(f.n, f.n))
}

// Negate returns -f mod P.
func (f FieldElement) Negate() FieldElement {
	return NewFieldElement(new(big.Int).Neg(f.n))
}

// Inverse returns f^-1 mod P via Fermat's little theorem (f^(P-2)). It is
// not constant time; the spec permits this because inversion is only used
// in point decoding and affine projection, never on secret scalars.
//
// Inverse panics if f is zero: inverting zero indicates a corrupted input
// or a bug upstream, per the InvalidInverse error kind's propagation
// policy (callers are expected to check IsZero first when zero is a
// legitimate possibility).
func (f FieldElement) Inverse() FieldElement {
	if f.IsZero() {
		panic("edwards25519: inverse of zero field element")
	}
	return FieldElement{n: new(big.Int).Exp(f.n, pMinus2, P)}
}

// Pow raises f to the given exponent mod P.
func (f FieldElement) Pow(e *big.Int) FieldElement {
	return FieldElement{n: new(big.Int).Exp(f.n, e, P)}
}

// SqrtCandidateExponent computes f^((P-5)/8), the specialized exponentiation
// chain used by point decompression (spec 4.A). A direct big.Int Exp
// already performs this in O(log P) squarings; it is expressed as a named
// helper so the decompression code documents its provenance (RFC 8032
// section 5.1.3's candidate-root construction) rather than burying a magic
// exponent inline.
func (f FieldElement) SqrtCandidateExponent() FieldElement {
	return f.Pow(pMinus5Div8)
}

// Bit returns bit i of f; bit 0 (the low bit) is used for the sign-bit
// convention in point compression.
func (f FieldElement) Bit(i uint) uint {
	return f.n.Bit(int(i))
}
