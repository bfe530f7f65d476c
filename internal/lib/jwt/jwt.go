package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the verified subject of an access token issued by the identity
// provider.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// NewAccessToken mints an HS256 access token with the provider's claim set.
// The service itself never issues tokens in production; this exists for tests
// and local tooling.
func NewAccessToken(userID uuid.UUID, email, secret string, ttl time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)

	claims["uid"] = userID.String()
	claims["email"] = email
	claims["typ"] = "access"
	claims["exp"] = time.Now().Add(ttl).Unix()

	return token.SignedString([]byte(secret))
}

// ParseAccessToken verifies signature, expiry and token type, and returns the
// embedded identity.
func ParseAccessToken(tokenString, secret string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	if typ, _ := claims["typ"].(string); typ != "access" {
		return Identity{}, fmt.Errorf("%w: not an access token", ErrInvalidToken)
	}

	uidStr, _ := claims["uid"].(string)
	userID, err := uuid.Parse(uidStr)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: bad uid claim", ErrInvalidToken)
	}

	email, _ := claims["email"].(string)

	return Identity{UserID: userID, Email: email}, nil
}
