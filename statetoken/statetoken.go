package statetoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalid is returned when a state token is malformed, carries a bad
// signature, or has expired.
var ErrInvalid = errors.New("invalid state token")

// DefaultTTL bounds how long an authorization attempt may stay pending.
const DefaultTTL = 10 * time.Minute

// Codec mints and verifies the signed state tokens that bind a pending
// authorization attempt to a host user. Tokens are self-contained: no
// server-side pending-authorization table exists.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a codec signing with the given secret. A zero ttl falls
// back to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("state secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

// Issue mints a state token for the given host user ID. The result is
// URL-safe and may be placed in a query parameter as-is.
func (c *Codec) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user ID is required")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign state token: %w", err)
	}
	return signed, nil
}

// Validate checks integrity and expiry of a state token. It must be called
// before the accompanying authorization code is used for anything.
func (c *Codec) Validate(token string) error {
	_, err := c.parse(token)
	return err
}

// UserID verifies the token and extracts the host user ID it was issued for.
// It never returns an ID from a token that fails verification.
func (c *Codec) UserID(token string) (string, error) {
	claims, err := c.parse(token)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalid)
	}
	return claims.Subject, nil
}

func (c *Codec) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return claims, nil
}
