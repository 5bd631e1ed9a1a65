package config

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT(t *testing.T) *JWT {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return &JWT{
		privateKey:    key,
		publicKey:     &key.PublicKey,
		signingMethod: jwt.GetSigningMethod("RS256"),
		tokenLifetime: time.Hour,
	}
}

func TestSignedClaimsSurviveRoundTrip(t *testing.T) {
	t.Parallel()

	j := newTestJWT(t)

	claims := NewPlayerClaims(7, "gamer")
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(j.TokenLifetime()))
	token, err := j.Sign(claims)
	require.NoError(t, err)

	var parsed PlayerClaims
	_, err = j.ParseWithClaims(token, &parsed)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.PlayerId)
	assert.Equal(t, "gamer", parsed.Username)
	require.NotNil(t, parsed.ExpiresAt)
	assert.WithinDuration(t,
		time.Now().Add(j.TokenLifetime()), parsed.ExpiresAt.Time, time.Minute)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	t.Parallel()

	j := newTestJWT(t)

	claims := NewPlayerClaims(7, "gamer")
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	token, err := j.Sign(claims)
	require.NoError(t, err)

	_, err = j.ParseWithClaims(token, &PlayerClaims{})
	assert.Error(t, err)
}
