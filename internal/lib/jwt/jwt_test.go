package jwt

import (
	"testing"
	"time"

	jwtGo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestAccessToken_RoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := NewAccessToken(userID, "user@example.com", secret, time.Hour)
	require.NoError(t, err)

	identity, err := ParseAccessToken(token, secret)
	require.NoError(t, err)

	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "user@example.com", identity.Email)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	token, err := NewAccessToken(uuid.New(), "user@example.com", secret, time.Hour)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, "other-secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_Expired(t *testing.T) {
	token, err := NewAccessToken(uuid.New(), "user@example.com", secret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, secret)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_WrongType(t *testing.T) {
	// A refresh-style token must not pass as an access token.
	token := jwtGo.New(jwtGo.SigningMethodHS256)
	claims := token.Claims.(jwtGo.MapClaims)
	claims["uid"] = uuid.New().String()
	claims["typ"] = "refresh"
	claims["exp"] = time.Now().Add(time.Hour).Unix()

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = ParseAccessToken(signed, secret)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_BadUID(t *testing.T) {
	token := jwtGo.New(jwtGo.SigningMethodHS256)
	claims := token.Claims.(jwtGo.MapClaims)
	claims["uid"] = "not-a-uuid"
	claims["typ"] = "access"
	claims["exp"] = time.Now().Add(time.Hour).Unix()

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = ParseAccessToken(signed, secret)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	_, err := ParseAccessToken("not.a.token", secret)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
