package edwards25519

// ErrorKind identifies one of the semantic error categories of spec 7.
// It is a named string rather than a sentinel value so that it prints
// meaningfully and compares cheaply with errors.Is, following the
// ErrorKind/Error split used by ModChain-secp256k1's error2.go.
type ErrorKind string

const (
	// ErrInvalidEncoding signals malformed hex, or a byte buffer of the
	// wrong length for a public key, signature, or seed.
	ErrInvalidEncoding = ErrorKind("InvalidEncoding")
	// ErrInvalidPoint signals a decoded y out of range for the selected
	// mode, a missing square root, or x=0 paired with a set sign bit in
	// strict mode.
	ErrInvalidPoint = ErrorKind("InvalidPoint")
	// ErrInvalidScalar signals a scalar that is zero or >= L where that
	// is disallowed.
	ErrInvalidScalar = ErrorKind("InvalidScalar")
	// ErrInvalidInverse signals an attempt to invert zero: a bug or a
	// corrupted input, never a merely-invalid signature.
	ErrInvalidInverse = ErrorKind("InvalidInverse")
	// ErrConfigMissing signals a missing synchronous hash or CSPRNG
	// collaborator.
	ErrConfigMissing = ErrorKind("ConfigMissing")
)

// Error is the engine's error value: a kind plus a human-readable
// description. It implements error and supports errors.Is against a bare
// ErrorKind, so callers can write `errors.Is(err, edwards25519.ErrInvalidPoint)`.
type Error struct {
	Err         ErrorKind
	Description string
}

func (e Error) Error() string {
	if e.Description == "" {
		return string(e.Err)
	}
	return string(e.Err) + ": " + e.Description
}

// Is reports whether target is the same ErrorKind as e, or an Error
// carrying the same ErrorKind.
func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case ErrorKind:
		return e.Err == t
	case Error:
		return e.Err == t.Err
	default:
		return false
	}
}

// Error implements the error interface so an ErrorKind itself can also be
// compared with errors.Is(err, SomeErrorKind).
func (k ErrorKind) Error() string {
	return string(k)
}
