// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/sha1"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/gdps/internal/platform/sec"
	"github.com/taibuivan/gdps/internal/users/credential"
)

func mustPassword(t *testing.T, raw string) credential.Password {
	t.Helper()
	password, err := credential.ParsePassword(raw)
	require.NoError(t, err)
	return password
}

/*
TestGJP2_RoundTrip verifies the right password and rejects a different one.
*/
func TestGJP2_RoundTrip(t *testing.T) {
	generator := sec.NewGJP2Generator(nil)
	password := mustPassword(t, "_deez-nuts")

	verifier, err := generator.Generate(password)
	require.NoError(t, err)

	ok, err := sec.VerifyGJP2(password.Plaintext(), verifier)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = sec.VerifyGJP2("_deez-nutz", verifier)
	require.NoError(t, err)
	assert.False(t, ok)
}

/*
TestGJP2_Encoding checks the persisted form of a verifier.
*/
func TestGJP2_Encoding(t *testing.T) {
	verifier, err := sec.NewGJP2Generator(nil).Generate(mustPassword(t, "password123"))
	require.NoError(t, err)

	encoded := verifier.String()
	assert.Len(t, encoded, 60)
	assert.True(t, strings.HasPrefix(encoded, "$2a$10$") || strings.HasPrefix(encoded, "$2b$10$"))

	cost, err := bcrypt.Cost([]byte(encoded))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	// The bcrypt password is the raw SHA-1 digest of password + suffix.
	sum := sha1.Sum([]byte("password123" + sec.GJP2Suffix))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(encoded), sum[:]))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(encoded), []byte("password123")))
}

/*
TestGJP2_SaltedDerivations derives the same password twice and expects two
distinct verifiers that both verify.
*/
func TestGJP2_SaltedDerivations(t *testing.T) {
	password := mustPassword(t, "gronk-42")

	first, err := sec.NewGJP2Generator(nil).Generate(password)
	require.NoError(t, err)
	second, err := sec.NewGJP2Generator(nil).Generate(password)
	require.NoError(t, err)

	assert.NotEqual(t, first.String(), second.String())

	for _, verifier := range []sec.GJP2{first, second} {
		ok, err := sec.VerifyGJP2("gronk-42", verifier)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

/*
TestGJP2Generator_Reuse derives two passwords with one generator and checks
each verifier accepts only its own password.
*/
func TestGJP2Generator_Reuse(t *testing.T) {
	generator := sec.NewGJP2Generator(sha1.New())
	p1 := mustPassword(t, "first-pass")
	p2 := mustPassword(t, "second_pass")

	v1, err := generator.Generate(p1)
	require.NoError(t, err)
	v2, err := generator.Generate(p2)
	require.NoError(t, err)

	tests := []struct {
		name      string
		candidate string
		verifier  sec.GJP2
		want      bool
	}{
		{"p1_against_v1", p1.Plaintext(), v1, true},
		{"p2_against_v2", p2.Plaintext(), v2, true},
		{"p2_against_v1", p2.Plaintext(), v1, false},
		{"p1_against_v2", p1.Plaintext(), v2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := sec.VerifyGJP2(tt.candidate, tt.verifier)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

/*
TestVerifyGJP2_MalformedVerifier surfaces bcrypt failures as a GJP2Error.
*/
func TestVerifyGJP2_MalformedVerifier(t *testing.T) {
	ok, err := sec.VerifyGJP2("password123", sec.GJP2{})
	assert.False(t, ok)

	var gjp2Err *sec.GJP2Error
	require.True(t, errors.As(err, &gjp2Err))
	assert.ErrorIs(t, err, bcrypt.ErrHashTooShort)
}

/*
TestParseGJP2 accepts stored verifiers and rejects garbage.
*/
func TestParseGJP2(t *testing.T) {
	verifier, err := sec.NewGJP2Generator(nil).Generate(mustPassword(t, "password123"))
	require.NoError(t, err)

	loaded, err := sec.ParseGJP2(verifier.String())
	require.NoError(t, err)
	assert.Equal(t, verifier, loaded)

	ok, err := sec.VerifyGJP2("password123", loaded)
	require.NoError(t, err)
	assert.True(t, ok)

	for _, garbage := range []string{"", "plaintext", "$1$abc$" + strings.Repeat("x", 53)} {
		_, err := sec.ParseGJP2(garbage)

		var gjp2Err *sec.GJP2Error
		assert.True(t, errors.As(err, &gjp2Err), garbage)
	}
}
