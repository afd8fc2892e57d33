// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() PasswordHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

func TestBcryptHasher_HashIsSaltedAndVerifiable(t *testing.T) {
	hasher := newTestHasher()

	for _, password := range []string{"secret123", "", "пароль", strings.Repeat("x", MaxPasswordBytes)} {
		first, err := hasher.Hash(password)
		require.NoError(t, err)
		second, err := hasher.Hash(password)
		require.NoError(t, err)

		assert.NotEqual(t, first, second, "each hash must use a fresh salt")
		assert.True(t, hasher.Verify(password, first))
		assert.True(t, hasher.Verify(password, second))
	}
}

func TestBcryptHasher_VerifyRejectsWrongPassword(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	for _, wrong := range []string{"secret124", "Secret123", "secret123 ", "", "secret12"} {
		assert.False(t, hasher.Verify(wrong, hash), "password %q must not verify", wrong)
	}
}

func TestBcryptHasher_VerifyFailsClosedOnMalformedHash(t *testing.T) {
	hasher := newTestHasher()

	malformed := []string{
		"",
		"not-a-hash",
		"$2a$",
		"$2a$99$abcdefghijklmnopqrstuuabcdefghijklmnopqrstuvwxyz01234",
		"5ebe2294ecd0e0f08eab7690d2a6ee69",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
	}

	for _, hash := range malformed {
		assert.NotPanics(t, func() {
			assert.False(t, hasher.Verify("secret123", hash), "hash %q must not verify", hash)
		})
	}
}

func TestBcryptHasher_TooLongPassword(t *testing.T) {
	_, err := newTestHasher().Hash(strings.Repeat("x", MaxPasswordBytes+1))
	assert.Error(t, err)
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	low := NewBcryptHasher(0).(*bcryptHasher)
	assert.Equal(t, bcrypt.MinCost, low.cost)

	high := NewBcryptHasher(100).(*bcryptHasher)
	assert.Equal(t, bcrypt.MaxCost, high.cost)

	hash, err := NewBcryptHasher(5).Hash("secret123")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}
