package middleware

import (
	"errors"
	"net/http"

	"github.com/UAShoshi/car-doctor-server/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// ClaimsContextKey is where verified token claims are stored on the gin context.
const ClaimsContextKey = "userClaims"

// RequireAuth reads the access token from the `token` cookie and verifies it.
// Requests without a valid token get a single generic 401; the reason for the
// failure is deliberately not surfaced to the client.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie("token")
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// GetUserEmail returns the email claim of the authenticated user.
func GetUserEmail(c *gin.Context) (string, error) {
	val, exists := c.Get(ClaimsContextKey)
	if !exists {
		return "", errors.New("no claims in context")
	}
	claims, ok := val.(jwt.MapClaims)
	if !ok {
		return "", errors.New("claims have invalid type in context")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("email claim missing")
	}
	return email, nil
}
