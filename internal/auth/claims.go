package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload of the backend-issued JWT. The client never
// verifies the signature (it has no secret); it only reads the expiry so
// a stale persisted token resolves to anonymous instead of producing a
// guaranteed 401 on the first call.
type TokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func tokenUsable(token string) bool {
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return time.Now().Before(claims.ExpiresAt.Time)
}
