package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundTrip(t *testing.T) {
	token, err := Sign("user-1", "session-1", time.Hour)
	require.NoError(t, err)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "session-1", claims.SessionID)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := Sign("user-1", "session-1", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not.a.token")
	assert.Error(t, err)
}

func TestSetSecretInvalidatesOldTokens(t *testing.T) {
	t.Cleanup(func() { secret = []byte(defaultSecret) })

	SetSecret("first secret")
	token, err := Sign("user-1", "", time.Hour)
	require.NoError(t, err)

	SetSecret("second secret")
	_, err = Parse(token)
	assert.Error(t, err)
}

func TestSetSecretIgnoresEmptyString(t *testing.T) {
	t.Cleanup(func() { secret = []byte(defaultSecret) })

	SetSecret("configured")
	SetSecret("")
	assert.Equal(t, []byte("configured"), secret)
}
