package ed25519

import (
	"context"
	"crypto/rand"
	"crypto/sha512"
	"sync"

	"github.com/agl/ed25519engine/edwards25519"
)

// HashResult is the payload delivered on an AsyncHasher's channel: either
// a completed digest or the error that prevented one.
type HashResult struct {
	Bytes []byte
	Err   error
}

// SyncHasher computes SHA-512 over the concatenation of parts and returns
// synchronously (spec 4.G hash_sync).
type SyncHasher interface {
	HashSync(parts ...[]byte) ([]byte, error)
}

// AsyncHasher computes SHA-512 over the concatenation of parts and
// delivers the result on the returned channel (spec 4.G hash_async). The
// channel receives exactly one value and is then closed.
type AsyncHasher interface {
	HashAsync(ctx context.Context, parts ...[]byte) <-chan HashResult
}

// RandomSource supplies cryptographically secure random bytes (spec 4.G
// random_bytes).
type RandomSource interface {
	RandomBytes(n int) ([]byte, error)
}

type stdlibSyncHasher struct{}

func (stdlibSyncHasher) HashSync(parts ...[]byte) ([]byte, error) {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil), nil
}

type stdlibAsyncHasher struct{}

func (stdlibAsyncHasher) HashAsync(ctx context.Context, parts ...[]byte) <-chan HashResult {
	out := make(chan HashResult, 1)
	go func() {
		defer close(out)
		h := sha512.New()
		for _, p := range parts {
			h.Write(p)
		}
		digest := h.Sum(nil)
		select {
		case out <- HashResult{Bytes: digest}:
		case <-ctx.Done():
			out <- HashResult{Err: ctx.Err()}
		}
	}()
	return out
}

type stdlibRandomSource struct{}

func (stdlibRandomSource) RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, Error{Err: ErrConfigMissing, Description: "CSPRNG unavailable: " + err.Error()}
	}
	return b, nil
}

var (
	syncHashOnce sync.Once
	syncHashImpl SyncHasher // nil until installed; no default per spec 4.G

	asyncHashOnce sync.Once
	asyncHashImpl AsyncHasher = stdlibAsyncHasher{}

	randomSourceOnce sync.Once
	randomSourceImpl RandomSource = stdlibRandomSource{}
)

// SetSyncHash installs the synchronous SHA-512 collaborator. Installation
// is write-once: a second call is a documented no-op (spec 4.G, design
// note 9's "atomic set-if-empty" cell). There is no default synchronous
// hasher wired in at startup — per spec 4.G, "No default; must be
// installed before any sync operation is called" — so library users
// performing the library's own synchronous API (Sign, Verify, ...)
// install one during program setup, typically:
//
//	ed25519.SetSyncHash(ed25519.StdlibSyncHasher())
func SetSyncHash(h SyncHasher) {
	syncHashOnce.Do(func() { syncHashImpl = h })
}

// StdlibSyncHasher returns the synchronous SHA-512 implementation backed
// by crypto/sha512 — the same primitive the teacher calls directly, here
// exposed so callers can opt into it explicitly via SetSyncHash rather
// than have it silently assumed.
func StdlibSyncHasher() SyncHasher { return stdlibSyncHasher{} }

// SetAsyncHash overrides the asynchronous SHA-512 collaborator. Like
// SetSyncHash, installation is write-once; the pre-installed default
// already uses the platform's native hash primitive (crypto/sha512 run on
// a goroutine), so overriding is only needed to swap in an accelerated or
// hardware-backed implementation.
func SetAsyncHash(h AsyncHasher) {
	asyncHashOnce.Do(func() { asyncHashImpl = h })
}

// SetRandomSource overrides the CSPRNG collaborator used by
// RandomBytes. Write-once, like the hash slots; the pre-installed
// default wraps crypto/rand.
func SetRandomSource(r RandomSource) {
	randomSourceOnce.Do(func() { randomSourceImpl = r })
}

func hashSync(parts ...[]byte) ([]byte, error) {
	if syncHashImpl == nil {
		return nil, Error{Err: ErrConfigMissing, Description: "synchronous hash not installed; call SetSyncHash first"}
	}
	return syncHashImpl.HashSync(parts...)
}

func hashAsync(ctx context.Context, parts ...[]byte) <-chan HashResult {
	return asyncHashImpl.HashAsync(ctx, parts...)
}

func randomBytes(n int) ([]byte, error) {
	return randomSourceImpl.RandomBytes(n)
}

// RandomBytes samples n bytes from the installed CSPRNG (spec 4.G
// random_bytes, part of the exported utility bundle in spec 6). It is
// not used internally by Sign or GetPublicKey — key derivation and
// signing are pure functions of their inputs — but is offered alongside
// them for callers that need to generate a fresh seed.
func RandomBytes(n int) ([]byte, error) {
	return randomBytes(n)
}

// reduceScalar64 reduces a 64-byte SHA-512 digest mod L, yielding a
// Scalar ready for use as r or k in spec 4.F.
func reduceScalar64(digest []byte) edwards25519.Scalar {
	return edwards25519.ScalarFromLittleEndian(digest)
}
