package admin

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CredentialVerifier checks an admin login attempt. The production
// implementation compares against the configured shared secret; a real
// user directory could be swapped in without touching the handler.
type CredentialVerifier interface {
	Verify(secret string) bool
}

// StaticVerifier accepts exactly one configured secret.
type StaticVerifier struct {
	secret string
}

// NewStaticVerifier builds a verifier for the configured admin secret. An
// empty secret disables login entirely.
func NewStaticVerifier(secret string) *StaticVerifier {
	return &StaticVerifier{secret: secret}
}

// Verify compares in constant time.
func (v *StaticVerifier) Verify(secret string) bool {
	if v.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(v.secret), []byte(secret)) == 1
}

// TokenIssuer mints the HMAC-signed session tokens the admin middleware
// verifies.
type TokenIssuer struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

// NewTokenIssuer constructs an issuer for the given signing key and
// session lifetime.
func NewTokenIssuer(signingKey string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{signingKey: []byte(signingKey), ttl: ttl, now: time.Now}
}

// Issue returns a signed session token.
func (t *TokenIssuer) Issue() (string, error) {
	if len(t.signingKey) == 0 {
		return "", fmt.Errorf("admin: signing key not configured")
	}
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.signingKey)
}
