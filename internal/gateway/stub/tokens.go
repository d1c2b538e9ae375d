package stub

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teamhubhq/teamhub/internal/model"
)

// tokenTTL is how long a stub backend session lives
const tokenTTL = 24 * time.Hour

// newSigningKey generates a per-instance HMAC key, so tokens never
// outlive the stub that issued them
func newSigningKey() []byte {
	key := make([]byte, 32)
	_, _ = rand.Read(key)
	return key
}

// issueToken mints a signed session token for a user
func (s *Server) issueToken(userID model.UserID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   string(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.signingKey)
}

// parseToken validates a session token and returns the user id
func (s *Server) parseToken(tokenString string) (model.UserID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("invalid token claims")
	}

	return model.UserID(claims.Subject), nil
}
