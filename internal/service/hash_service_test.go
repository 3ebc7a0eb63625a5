package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheapParams keeps the suite fast; production cost is exercised once below.
var cheapParams = Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 16, SaltLen: 8}

func TestArgon2HashService_HashAndVerify(t *testing.T) {
	svc := NewArgon2HashService()

	key := "op_7f3c9a1e5b2d4c8f"
	hash, err := svc.Hash(key)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))

	match, err := svc.Verify(key, hash)
	require.NoError(t, err)
	assert.True(t, match, "correct key should verify")
}

func TestArgon2HashService_VerifyWrongKey(t *testing.T) {
	svc := NewArgon2HashServiceWithParams(cheapParams)

	hash, err := svc.Hash("correct-key")
	require.NoError(t, err)

	match, err := svc.Verify("wrong-key", hash)
	require.NoError(t, err)
	assert.False(t, match, "wrong key should not verify")
}

func TestArgon2HashService_UniqueSalts(t *testing.T) {
	svc := NewArgon2HashServiceWithParams(cheapParams)

	hash1, err := svc.Hash("same-key")
	require.NoError(t, err)
	hash2, err := svc.Hash("same-key")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "same key should produce different hashes (different salts)")
}

func TestArgon2HashService_VerifyAcrossParams(t *testing.T) {
	hash, err := NewArgon2HashServiceWithParams(cheapParams).Hash("rotate-me")
	require.NoError(t, err)
	assert.Contains(t, hash, "m=1024,t=1,p=1")

	// A service configured with other costs still verifies older hashes.
	match, err := NewArgon2HashService().Verify("rotate-me", hash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestArgon2HashService_RejectsEmptyKey(t *testing.T) {
	_, err := NewArgon2HashServiceWithParams(cheapParams).Hash("")
	assert.Error(t, err)
}

func TestArgon2HashService_VerifyMalformedHash(t *testing.T) {
	svc := NewArgon2HashServiceWithParams(cheapParams)

	cases := []string{
		"not-a-valid-hash",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=16$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=x,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$",
	}
	for _, tc := range cases {
		_, err := svc.Verify("key", tc)
		assert.True(t, errors.Is(err, errMalformedHash), "expected malformed: %s", tc)
	}
}

func TestArgon2HashService_LongKey(t *testing.T) {
	svc := NewArgon2HashServiceWithParams(cheapParams)

	longKey := strings.Repeat("a", 1000)
	hash, err := svc.Hash(longKey)
	require.NoError(t, err)

	match, err := svc.Verify(longKey, hash)
	require.NoError(t, err)
	assert.True(t, match)
}
