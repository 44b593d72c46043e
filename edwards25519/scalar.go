package edwards25519

import "math/big"

// Scalar is an integer in [0, L), the order of the prime-order subgroup.
type Scalar struct {
	n *big.Int
}

// NewScalar reduces v mod L.
func NewScalar(v *big.Int) Scalar {
	return Scalar{n: new(big.Int).Mod(v, L)}
}

// ScalarFromInt64 builds a reduced Scalar from a small literal.
func ScalarFromInt64(v int64) Scalar {
	return NewScalar(big.NewInt(v))
}

// ScalarFromLittleEndian interprets b as a little-endian integer and
// reduces it mod L. b may be any length (32 bytes for a clamped private
// scalar, 64 bytes for a SHA-512 digest awaiting reduction).
func ScalarFromLittleEndian(b []byte) Scalar {
	return NewScalar(new(big.Int).SetBytes(reverseBytes(b)))
}

// BigInt returns the scalar's value as a fresh big.Int in [0, L).
func (s Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.n)
}

// IsZero reports whether s is the additive identity mod L.
func (s Scalar) IsZero() bool {
	return s.n.Sign() == 0
}

// Equal reports whether s and t are the same residue mod L.
func (s Scalar) Equal(t Scalar) bool {
	return s.n.Cmp(t.n) == 0
}

// Add returns s+t mod L.
func (s Scalar) Add(t Scalar) Scalar {
	return NewScalar(new(big.Int).Add(s.n, t.n))
}

// Mul returns s*t mod L.
func (s Scalar) Mul(t Scalar) Scalar {
	return NewScalar(new(big.Int).Mul(s.n, t.n))
}

// Bytes32 encodes s as 32 little-endian bytes, zero-padded.
func (s Scalar) Bytes32() [32]byte {
	var out [32]byte
	encodeLittleEndian(out[:], s.n)
	return out
}

// ScalarBytesInRange reports whether the raw byte encoding v, read little-endian,
// names an integer strictly less than L. It does not reduce: it is used
// by Verify to reject non-canonical signature scalars (spec 4.F step 2).
func ScalarBytesInRange(v []byte) bool {
	n := new(big.Int).SetBytes(reverseBytes(v))
	return n.Cmp(L) < 0
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

func encodeLittleEndian(dst []byte, n *big.Int) {
	be := n.Bytes()
	for i := 0; i < len(dst); i++ {
		dst[i] = 0
	}
	for i := 0; i < len(be) && i < len(dst); i++ {
		dst[i] = be[len(be)-1-i]
	}
}
