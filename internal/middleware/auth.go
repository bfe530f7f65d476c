package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pollwise/poll-service/internal/lib/jwt"
)

// Context keys set by the middleware for downstream handlers.
const (
	UserIDKey    = "userID"
	UserEmailKey = "userEmail"
)

// AuthMiddleware resolves the caller's identity from the external provider's
// bearer token. Tokens are verified locally with the provider's shared secret.
type AuthMiddleware struct {
	appSecret string
}

func NewAuthMiddleware(appSecret string) *AuthMiddleware {
	return &AuthMiddleware{appSecret: appSecret}
}

// RequireAuth rejects requests without a valid access token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := extractTokenFromHeader(c.GetHeader("Authorization"))
		if accessToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing access token"})
			return
		}

		identity, err := jwt.ParseAccessToken(accessToken, m.appSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(UserIDKey, identity.UserID)
		c.Set(UserEmailKey, identity.Email)
		c.Next()
	}
}

// OptionalAuth attaches an identity when a valid token is present and lets
// anonymous requests through. An invalid token is still a hard 401 rather than
// a silent downgrade to anonymous.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := extractTokenFromHeader(c.GetHeader("Authorization"))
		if accessToken == "" {
			c.Next()
			return
		}

		identity, err := jwt.ParseAccessToken(accessToken, m.appSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(UserIDKey, identity.UserID)
		c.Set(UserEmailKey, identity.Email)
		c.Next()
	}
}

func extractTokenFromHeader(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
