package ed25519

import "testing"

// TestSignFailsWithoutSyncHash checks spec 4.G/7's ConfigMissing
// contract: the synchronous API must fail until a synchronous hash has
// been installed. SetSyncHash is write-once (spec 9's "atomic
// set-if-empty" cell), so this test must observe the package before any
// other test installs one — hence the 000_ filename, which sorts first
// among this package's test files under go test's per-package file
// ordering.
func TestSignFailsWithoutSyncHash(t *testing.T) {
	_, err := Sign([]byte("hello"), make([]byte, 32))
	if err == nil {
		t.Fatal("expected ConfigMissing before any sync hash is installed")
	}
	if kindErr, ok := err.(Error); !ok || kindErr.Err != ErrConfigMissing {
		t.Fatalf("expected ErrConfigMissing, got %v", err)
	}
}

// TestSetSyncHashWriteOnce checks that a second SetSyncHash call is a
// documented no-op: the first-installed hasher keeps serving requests.
func TestSetSyncHashWriteOnce(t *testing.T) {
	SetSyncHash(StdlibSyncHasher())

	calls := 0
	SetSyncHash(countingHasher{&calls})

	if _, err := hashSync([]byte("x")); err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Error("second SetSyncHash call should not have taken effect")
	}
}

type countingHasher struct{ n *int }

func (c countingHasher) HashSync(parts ...[]byte) ([]byte, error) {
	*c.n++
	return StdlibSyncHasher().HashSync(parts...)
}

// TestRandomBytes checks the exported CSPRNG utility (spec 6's "utility
// bundle") returns the requested length and does not return the same
// bytes twice in a row.
func TestRandomBytes(t *testing.T) {
	a, err := RandomBytes(32)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 32 {
		t.Fatalf("got %d bytes, want 32", len(a))
	}
	b, err := RandomBytes(32)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) == string(b) {
		t.Error("two calls to RandomBytes returned identical output")
	}
}
