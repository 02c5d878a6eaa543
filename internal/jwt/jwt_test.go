package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	j := New("test-secret", 24*time.Hour)

	token, err := j.NewToken("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := j.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestExpiredToken(t *testing.T) {
	j := New("test-secret", -1*time.Minute)

	token, err := j.NewToken("alice")
	require.NoError(t, err)

	_, err = j.DecodeToken(token)
	assert.Error(t, err)
}

func TestWrongSecret(t *testing.T) {
	issuer := New("secret-one", time.Hour)
	verifier := New("secret-two", time.Hour)

	token, err := issuer.NewToken("alice")
	require.NoError(t, err)

	_, err = verifier.DecodeToken(token)
	assert.Error(t, err)
}

func TestGarbageToken(t *testing.T) {
	j := New("test-secret", time.Hour)

	_, err := j.DecodeToken("not-a-jwt")
	assert.Error(t, err)
}
