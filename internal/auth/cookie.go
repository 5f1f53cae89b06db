package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SessionCookieName is the cookie carrying the signed session ID.
const SessionCookieName = "session"

// CookieSigner signs and verifies the session cookie. The cookie value is an
// HS256 JWT whose JTI claim holds the server-side session ID; the client
// never sees session contents.
type CookieSigner struct {
	secret []byte
}

// NewCookieSigner creates a signer with the given secret.
func NewCookieSigner(secret string) *CookieSigner {
	return &CookieSigner{secret: []byte(secret)}
}

// Sign produces a signed cookie value for the session ID.
func (s *CookieSigner) Sign(sessionID string, expiresAt time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// SessionID validates a cookie value and returns the embedded session ID.
func (s *CookieSigner) SessionID(value string) (string, error) {
	token, err := jwt.ParseWithClaims(value, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return "", errors.New("invalid session cookie")
	}
	return claims.ID, nil
}
