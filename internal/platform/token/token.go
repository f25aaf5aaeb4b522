package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid is returned for any token that fails verification: bad
// signature, malformed structure, or expiry at/before verification time.
// Callers must not distinguish the cases toward clients.
var ErrInvalid = errors.New("invalid or expired token")

// Claims is the verified identity carried by a bearer token.
type Claims struct {
	// Subject is the user's email, the durable login key.
	Subject string
	// ExpiresAt is the absolute expiry instant (unix-second resolution).
	ExpiresAt time.Time
}

// Codec signs and verifies bearer tokens with a server-held HMAC secret.
// The secret is fixed at construction and never mutated.
type Codec struct {
	secret []byte
}

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret}
}

// Issue signs {sub: subject, exp: now+ttl}. A non-positive ttl produces a
// token that is already expired; Verify will reject it.
func (c *Codec) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return t.SignedString(c.secret)
}

// Verify parses and validates tok. There is no clock-skew allowance: a token
// is invalid the second it expires.
func (c *Codec) Verify(tok string) (Claims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalid
	}
	return Claims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
