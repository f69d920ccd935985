// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sec implements the GJP2 password verifier used by the game client.

# Derivation

	verifier = bcrypt(SHA1(password || "mI29fmAnxgTs"), bcrypt.DefaultCost)

The raw 20-byte SHA-1 digest is the bcrypt password. The stored verifier is
bcrypt's self-describing encoding ($2a$<cost>$<salt><hash>, 60 bytes), so it
alone is enough to check a candidate password later.

# Concurrency

[GJP2Generator] owns a mutable digest and is single-owner: give each worker
its own generator. [VerifyGJP2] and [ParseGJP2] are safe for concurrent use.
bcrypt is CPU-bound; callers on a latency-sensitive path should hand the work
to a worker pool.
*/
package sec

import (
	"crypto/sha1"
	"errors"
	"hash"
	"io"

	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/gdps/internal/users/credential"
)

// GJP2Suffix is appended to the plaintext before the SHA-1 stage.
const GJP2Suffix = "mI29fmAnxgTs"

// GJP2 is an opaque bcrypt-encoded password verifier.
type GJP2 struct {
	encoded string
}

// ParseGJP2 rebuilds a verifier loaded from storage. It rejects anything that
// is not a well-formed bcrypt encoding.
func ParseGJP2(encoded string) (GJP2, error) {
	if _, err := bcrypt.Cost([]byte(encoded)); err != nil {
		return GJP2{}, &GJP2Error{Err: err}
	}
	return GJP2{encoded: encoded}, nil
}

// String returns the encoded verifier in its persisted form.
func (g GJP2) String() string { return g.encoded }

// GJP2Error wraps a failure reported by the bcrypt primitive.
type GJP2Error struct {
	Err error
}

// Error implements the error interface.
func (e *GJP2Error) Error() string { return "sec: gjp2: " + e.Err.Error() }

// Unwrap returns the underlying bcrypt error.
func (e *GJP2Error) Unwrap() error { return e.Err }

// # Derivation

// GJP2Generator derives verifiers from validated passwords.
//
// The digest is reset before and after every derivation, so a reused
// generator produces the same results as a fresh one per password.
type GJP2Generator struct {
	digest hash.Hash
}

// NewGJP2Generator returns a generator around digest. A nil digest selects a
// fresh SHA-1 instance; any other digest must be SHA-1 for client compatibility.
func NewGJP2Generator(digest hash.Hash) *GJP2Generator {
	if digest == nil {
		digest = sha1.New()
	}
	return &GJP2Generator{digest: digest}
}

// Generate derives the verifier for password. The only failure is a wrapped
// bcrypt error.
func (g *GJP2Generator) Generate(password credential.Password) (GJP2, error) {
	sum := g.sum(password.Plaintext())
	defer clear(sum)

	encoded, err := bcrypt.GenerateFromPassword(sum, bcrypt.DefaultCost)
	if err != nil {
		return GJP2{}, &GJP2Error{Err: err}
	}
	return GJP2{encoded: string(encoded)}, nil
}

// sum hashes plaintext followed by the suffix, appended exactly once.
func (g *GJP2Generator) sum(plaintext string) []byte {
	g.digest.Reset()
	defer g.digest.Reset()

	io.WriteString(g.digest, plaintext)
	io.WriteString(g.digest, GJP2Suffix)
	return g.digest.Sum(nil)
}

// # Verification

/*
VerifyGJP2 checks candidate against a stored verifier.

Returns:
  - true, nil: the candidate matches
  - false, nil: the candidate does not match
  - false, *GJP2Error: the verifier could not be evaluated (e.g. malformed)

The comparison is bcrypt's constant-time comparison. The SHA-1 stage leaks
only the candidate length, which the password length policy already makes public.
*/
func VerifyGJP2(candidate string, verifier GJP2) (bool, error) {
	sum := sha1.Sum([]byte(candidate + GJP2Suffix))
	defer clear(sum[:])

	err := bcrypt.CompareHashAndPassword([]byte(verifier.encoded), sum[:])
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, &GJP2Error{Err: err}
	}
}
