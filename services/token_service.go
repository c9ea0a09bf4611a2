package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Sentinel errors for token verification failures. The HTTP layer collapses
// both into one generic 401, but callers and tests can tell them apart.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// TokenService is responsible for creating and validating access tokens.
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
}

// NewTokenService creates a TokenService signing with the given secret.
// Tokens are valid for one hour.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secretKey: []byte(secret), ttl: time.Hour}
}

// Sign produces an HS256 token carrying the whole identity payload plus an
// absolute expiration. Any exp or iat supplied by the caller is overwritten.
func (s *TokenService) Sign(identity map[string]interface{}) (string, error) {
	now := time.Now()
	claims := make(jwt.MapClaims, len(identity)+2)
	for k, v := range identity {
		claims[k] = v
	}
	claims["exp"] = now.Add(s.ttl).Unix()
	claims["iat"] = now.Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Verify parses and validates a token string, returning its claims.
// An expired token fails with ErrTokenExpired; any other failure, including
// a signature mismatch or malformed input, fails with ErrInvalidToken.
func (s *TokenService) Verify(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
