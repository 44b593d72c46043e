package ed25519

import (
	"context"

	"github.com/agl/ed25519engine/edwards25519"
)

// ExtendedPrivateKey is the full material derived from a 32-byte seed via
// the RFC 8032 section 5.1.5 key-expansion procedure (spec 3): the
// clamped scalar-generating head, the signing prefix, the reduced
// scalar, the public point, and its compressed encoding. It is meant to
// be recomputed per signing operation, not cached across calls — any
// caching is the caller's responsibility (spec 3 lifecycle note).
type ExtendedPrivateKey struct {
	Head       [32]byte
	Prefix     [32]byte
	Scalar     edwards25519.Scalar
	Point      edwards25519.ExtendedPoint
	PointBytes [32]byte
}

func expandSeed(seed []byte) ([64]byte, error) {
	var digest [64]byte
	if len(seed) != PrivateKeySize {
		return digest, Error{Err: ErrInvalidEncoding, Description: "seed must be 32 bytes"}
	}
	h, err := hashSync(seed)
	if err != nil {
		return digest, err
	}
	copy(digest[:], h)
	return digest, nil
}

func extendedKeyFromDigest(digest [64]byte) ExtendedPrivateKey {
	var key ExtendedPrivateKey
	copy(key.Head[:], digest[:32])
	copy(key.Prefix[:], digest[32:])

	key.Head[0] &= 248
	key.Head[31] &= 127
	key.Head[31] |= 64

	key.Scalar = edwards25519.ScalarFromLittleEndian(key.Head[:])
	key.Point, _ = edwards25519.ScalarMultBase(key.Scalar)
	key.PointBytes = key.Point.Bytes()
	return key
}

// GetExtendedPublicKey derives the full key-expansion record from seed
// (RFC 8032 section 5.1.5), using the installed synchronous hash.
func GetExtendedPublicKey(seed []byte) (ExtendedPrivateKey, error) {
	digest, err := expandSeed(seed)
	if err != nil {
		return ExtendedPrivateKey{}, err
	}
	return extendedKeyFromDigest(digest), nil
}

// GetExtendedPublicKeyAsync is the asynchronous counterpart of
// GetExtendedPublicKey, using the installed asynchronous hash.
func GetExtendedPublicKeyAsync(ctx context.Context, seed []byte) <-chan Result[ExtendedPrivateKey] {
	out := make(chan Result[ExtendedPrivateKey], 1)
	go func() {
		defer close(out)
		if len(seed) != PrivateKeySize {
			out <- Result[ExtendedPrivateKey]{Err: Error{Err: ErrInvalidEncoding, Description: "seed must be 32 bytes"}}
			return
		}
		res := <-hashAsync(ctx, seed)
		if res.Err != nil {
			out <- Result[ExtendedPrivateKey]{Err: res.Err}
			return
		}
		var digest [64]byte
		copy(digest[:], res.Bytes)
		out <- Result[ExtendedPrivateKey]{Value: extendedKeyFromDigest(digest)}
	}()
	return out
}

// Result carries either a value or an error across an async channel —
// Go's stand-in for the spec's async-hash "deferred value" contract
// (spec 4.F's "Hashing concurrency contract").
type Result[T any] struct {
	Value T
	Err   error
}

// GetPublicKey derives the 32-byte compressed public key A from seed.
func GetPublicKey(seed []byte) ([]byte, error) {
	key, err := GetExtendedPublicKey(seed)
	if err != nil {
		return nil, err
	}
	out := make([]byte, PublicKeySize)
	copy(out, key.PointBytes[:])
	return out, nil
}

// GetPublicKeyAsync is the asynchronous counterpart of GetPublicKey.
func GetPublicKeyAsync(ctx context.Context, seed []byte) <-chan Result[[]byte] {
	out := make(chan Result[[]byte], 1)
	go func() {
		defer close(out)
		res := <-GetExtendedPublicKeyAsync(ctx, seed)
		if res.Err != nil {
			out <- Result[[]byte]{Err: res.Err}
			return
		}
		out <- Result[[]byte]{Value: append([]byte(nil), res.Value.PointBytes[:]...)}
	}()
	return out
}

// Sign produces the 64-byte RFC 8032 signature of msg under seed (spec
// 4.F). Signing is a pure function of (seed, msg): no randomness is
// sampled, so two concurrent calls with identical inputs are
// byte-identical (spec 5).
func Sign(msg, seed []byte) ([]byte, error) {
	key, err := GetExtendedPublicKey(seed)
	if err != nil {
		return nil, err
	}

	rDigest, err := hashSync(key.Prefix[:], msg)
	if err != nil {
		return nil, err
	}
	r := reduceScalar64(rDigest)
	R, _ := edwards25519.ScalarMultBase(r)
	rBytes := R.Bytes()

	kDigest, err := hashSync(rBytes[:], key.PointBytes[:], msg)
	if err != nil {
		return nil, err
	}
	k := reduceScalar64(kDigest)

	s := r.Add(k.Mul(key.Scalar))
	sBytes := s.Bytes32()

	sig := make([]byte, SignatureSize)
	copy(sig[:32], rBytes[:])
	copy(sig[32:], sBytes[:])
	return sig, nil
}

// SignAsync is the asynchronous counterpart of Sign.
func SignAsync(ctx context.Context, msg, seed []byte) <-chan Result[[]byte] {
	out := make(chan Result[[]byte], 1)
	go func() {
		defer close(out)
		keyRes := <-GetExtendedPublicKeyAsync(ctx, seed)
		if keyRes.Err != nil {
			out <- Result[[]byte]{Err: keyRes.Err}
			return
		}
		key := keyRes.Value

		rRes := <-hashAsync(ctx, key.Prefix[:], msg)
		if rRes.Err != nil {
			out <- Result[[]byte]{Err: rRes.Err}
			return
		}
		r := reduceScalar64(rRes.Bytes)
		R, _ := edwards25519.ScalarMultBase(r)
		rBytes := R.Bytes()

		kRes := <-hashAsync(ctx, rBytes[:], key.PointBytes[:], msg)
		if kRes.Err != nil {
			out <- Result[[]byte]{Err: kRes.Err}
			return
		}
		k := reduceScalar64(kRes.Bytes)

		s := r.Add(k.Mul(key.Scalar))
		sBytes := s.Bytes32()

		sig := make([]byte, SignatureSize)
		copy(sig[:32], rBytes[:])
		copy(sig[32:], sBytes[:])
		out <- Result[[]byte]{Value: sig}
	}()
	return out
}

// verifyOptions holds per-call Verify configuration (spec 6
// "Configuration options").
type verifyOptions struct {
	zip215 bool
}

// VerifyOption configures a single Verify/VerifyAsync call.
type VerifyOption func(*verifyOptions)

// WithZIP215 selects ZIP-215 verification predicates when enabled (the
// default) or strict RFC 8032 / FIPS 186-5 / SBS predicates when
// disabled (spec 6).
func WithZIP215(enabled bool) VerifyOption {
	return func(o *verifyOptions) { o.zip215 = enabled }
}

func resolveVerifyOptions(opts []VerifyOption) verifyOptions {
	o := verifyOptions{zip215: true}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Verify reports whether sig is a valid signature of msg under the
// public key pub (spec 4.F). It never returns an error: a malformed
// signature, message, or key is indistinguishable from a genuinely wrong
// one and simply verifies false (spec 7's VerifyFalse propagation
// policy) — the only way to know "why" is to decode the inputs yourself.
func Verify(sig, msg, pub []byte, opts ...VerifyOption) bool {
	o := resolveVerifyOptions(opts)
	return verifySync(sig, msg, pub, o)
}

func verifySync(sig, msg, pub []byte, o verifyOptions) bool {
	if len(sig) != SignatureSize || len(pub) != PublicKeySize {
		return false
	}
	var pubArr, rArr [32]byte
	copy(pubArr[:], pub)
	copy(rArr[:], sig[:32])
	sBytes := sig[32:64]

	if !edwards25519.ScalarBytesInRange(sBytes) {
		return false
	}

	A, err := edwards25519.DecodePoint(pubArr, o.zip215)
	if err != nil {
		return false
	}
	R, err := edwards25519.DecodePoint(rArr, o.zip215)
	if err != nil {
		return false
	}
	if !o.zip215 && A.IsSmallOrder() {
		return false
	}

	s := edwards25519.ScalarFromLittleEndian(sBytes)
	kDigest, err := hashSync(rArr[:], pubArr[:], msg)
	if err != nil {
		return false
	}
	k := reduceScalar64(kDigest)

	SB := edwards25519.Base.ScalarMultUnsafe(s)
	kA := A.ScalarMultUnsafe(k)
	P := R.Add(kA).Subtract(SB)
	return P.ClearCofactor().IsIdentity()
}

// VerifyAsync is the asynchronous counterpart of Verify.
func VerifyAsync(ctx context.Context, sig, msg, pub []byte, opts ...VerifyOption) <-chan bool {
	o := resolveVerifyOptions(opts)
	out := make(chan bool, 1)
	go func() {
		defer close(out)
		if len(sig) != SignatureSize || len(pub) != PublicKeySize {
			out <- false
			return
		}
		var pubArr, rArr [32]byte
		copy(pubArr[:], pub)
		copy(rArr[:], sig[:32])
		sBytes := sig[32:64]

		if !edwards25519.ScalarBytesInRange(sBytes) {
			out <- false
			return
		}

		A, err := edwards25519.DecodePoint(pubArr, o.zip215)
		if err != nil {
			out <- false
			return
		}
		R, err := edwards25519.DecodePoint(rArr, o.zip215)
		if err != nil {
			out <- false
			return
		}
		if !o.zip215 && A.IsSmallOrder() {
			out <- false
			return
		}

		s := edwards25519.ScalarFromLittleEndian(sBytes)
		kRes := <-hashAsync(ctx, rArr[:], pubArr[:], msg)
		if kRes.Err != nil {
			out <- false
			return
		}
		k := reduceScalar64(kRes.Bytes)

		SB := edwards25519.Base.ScalarMultUnsafe(s)
		kA := A.ScalarMultUnsafe(k)
		P := R.Add(kA).Subtract(SB)
		out <- P.ClearCofactor().IsIdentity()
	}()
	return out
}
