package edwards25519

import "math/big"

// ScalarMult computes s*p for an arbitrary point p using a right-to-left
// (least significant bit first) double-and-add ladder with a fake-add
// timing defense (spec 4.D.1): on every bit up to the scalar's bit
// length, an add is performed either into the real accumulator or into a
// decoy, so the number of additions equals that bit length whichever of
// the bits are set. It rejects a zero scalar. The
// second return value is the decoy accumulator; callers that don't need
// it should discard it with `_`, but must not drop the call entirely —
// per design note 9, the decoy work must stay observable so the compiler
// cannot prove it dead and eliminate it.
func (p ExtendedPoint) ScalarMult(s Scalar) (ExtendedPoint, ExtendedPoint, error) {
	if s.IsZero() {
		return ExtendedPoint{}, ExtendedPoint{}, Error{Err: ErrInvalidScalar, Description: "scalar multiplication of zero scalar in safe mode"}
	}
	acc, decoy := p.scalarMultLadder(s.BigInt(), true)
	return acc, decoy, nil
}

// ScalarMultUnsafe computes s*p without the fake-add defense or the
// zero-scalar rejection. It is for use on public values only — spec 4.F
// step 3 explicitly allows a non-constant-time path for S*B during
// verification, since none of verify's inputs are secret.
func (p ExtendedPoint) ScalarMultUnsafe(s Scalar) ExtendedPoint {
	acc, _ := p.scalarMultLadder(s.BigInt(), false)
	return acc
}

// scalarMultRawUnsafe multiplies p by the literal integer n (not reduced
// mod L), without the fake-add defense. It backs IsTorsionFree, which
// needs to test multiplication by L itself — a value that would collapse
// to zero if routed through the Scalar type's mod-L reduction.
func (p ExtendedPoint) scalarMultRawUnsafe(n *big.Int) ExtendedPoint {
	acc, _ := p.scalarMultLadder(n, false)
	return acc
}

func (p ExtendedPoint) scalarMultLadder(n *big.Int, safe bool) (acc, decoy ExtendedPoint) {
	acc = Identity
	decoy = Base
	addend := p
	bitLen := n.BitLen()
	if bitLen == 0 {
		bitLen = 1
	}
	for i := 0; i < bitLen; i++ {
		if n.Bit(i) == 1 {
			acc = acc.Add(addend)
		} else if safe {
			decoy = decoy.Add(addend)
		}
		if i != bitLen-1 {
			addend = addend.Double()
		}
	}
	return acc, decoy
}

// selectTableEntry scans every entry of window and returns the one at
// position want-1 (1-based; want==0 yields Identity), touching every
// entry via PointCMove regardless of want so the memory-access pattern
// does not depend on which entry is selected (spec 5's "table indexing
// in hardened deployments" direction, the purpose FeCMove/PointCMove
// exist for).
func selectTableEntry(window []ExtendedPoint, want int32) ExtendedPoint {
	result := Identity
	for i, entry := range window {
		match := int32(0)
		if int32(i+1) == want {
			match = 1
		}
		result = PointCMove(result, entry, match)
	}
	return result
}

// ScalarMultBase computes s*Base using the fixed-base windowed-NAF method
// with the lazily-built precomputation table (spec 4.D.2, 4.H): windows
// are walked low to high, each window's low W bits form a signed digit
// (carrying into the next window when the digit exceeds 2^(W-1)), and a
// decoy accumulator receives a table lookup on every zero digit so the
// sequence of operations performed is determined by the window count,
// not by the scalar's digits. Every window's lookup — real or decoy —
// goes through selectTableEntry rather than direct array indexing.
func ScalarMultBase(s Scalar) (ExtendedPoint, ExtendedPoint) {
	table := getBaseTable()
	n := s.BigInt()
	byteMask := big.NewInt(0xff)

	acc := Identity
	decoy := Identity
	var carry uint32
	for w := 0; w < numBaseWindows; w++ {
		low := new(big.Int).And(n, byteMask).Uint64()
		n.Rsh(n, wnafWindowBits)

		digit := uint32(low) + carry
		carry = 0
		signed := int32(digit)
		if digit > wnafWindowSize {
			signed = int32(digit) - (1 << wnafWindowBits)
			carry = 1
		}

		if signed == 0 {
			decoy = decoy.Add(selectTableEntry(table[w], 1))
			continue
		}
		idx := signed
		if idx < 0 {
			idx = -idx
		}
		entry := selectTableEntry(table[w], idx)
		negated := entry.Negate()
		mask := int32(0)
		if signed < 0 {
			mask = 1
		}
		entry = PointCMove(entry, negated, mask)
		acc = acc.Add(entry)
	}
	return acc, decoy
}
