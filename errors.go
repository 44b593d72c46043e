package ed25519

import "github.com/agl/ed25519engine/edwards25519"

// ErrorKind and Error are aliased from edwards25519 rather than
// redefined, so the same error taxonomy (spec 7) is usable whether the
// failure originates in point decoding (edwards25519) or in the signing
// engine (this package) — the same pattern the pack's signer packages
// use to alias a shared interface type instead of duplicating it (see
// mleku-p256k1/signer's `type I = orlysigner.I`).
type ErrorKind = edwards25519.ErrorKind
type Error = edwards25519.Error

const (
	ErrInvalidEncoding = edwards25519.ErrInvalidEncoding
	ErrInvalidPoint    = edwards25519.ErrInvalidPoint
	ErrInvalidScalar   = edwards25519.ErrInvalidScalar
	ErrInvalidInverse  = edwards25519.ErrInvalidInverse
	ErrConfigMissing   = edwards25519.ErrConfigMissing
)
