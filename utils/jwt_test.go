package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("unit-secret")
	token, err := GenerateToken(secret, "admin@everafter.test", "admin", time.Hour)
	require.NoError(t, err)

	sub, err := ExtractSubject(secret, token, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin@everafter.test", sub)

	_, err = ExtractSubject(secret, token, "vendor")
	assert.Error(t, err)

	_, err = ExtractSubject([]byte("other-secret"), token, "admin")
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	secret := []byte("unit-secret")
	token, err := GenerateToken(secret, "admin@everafter.test", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(secret, token)
	assert.Error(t, err)
}

func TestMissingSecret(t *testing.T) {
	_, err := GenerateToken(nil, "x", "admin", time.Hour)
	assert.Error(t, err)
	_, err = ValidateToken(nil, "x.y.z")
	assert.Error(t, err)
}
