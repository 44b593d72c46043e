// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ed25519 implements the Ed25519 signature algorithm, as
// specified in RFC 8032 and FIPS 186-5, with an optional ZIP-215
// verification mode for consensus-critical callers. See
// http://ed25519.cr.yp.to/.
//
// The curve group itself — field arithmetic, the twisted Edwards point
// type, and scalar multiplication — lives in the edwards25519
// subpackage, which is exported for callers that need group operations
// directly.
//
// SHA-512 and the CSPRNG are treated as externally supplied
// collaborators (see SetSyncHash, SetAsyncHash, SetRandomSource). The
// asynchronous hash and the random source come preinstalled with
// crypto/sha512- and crypto/rand-backed defaults; the synchronous hash
// has none and must be installed once, typically with:
//
//	ed25519.SetSyncHash(ed25519.StdlibSyncHasher())
package ed25519

const (
	// PublicKeySize is the size, in bytes, of an Ed25519 public key.
	PublicKeySize = 32
	// PrivateKeySize is the size, in bytes, of an Ed25519 seed.
	PrivateKeySize = 32
	// SignatureSize is the size, in bytes, of a signature.
	SignatureSize = 64
)
