// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// verifies plaintext against a stored hash.
//
// Implementations are stateless and safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a freshly salted hash of plaintext. Two calls with the same
	// input return different strings.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A malformed or foreign
	// hash is treated as a mismatch, never as an error.
	Verify(plaintext, hash string) bool
}
