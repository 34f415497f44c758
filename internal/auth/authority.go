package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 7 * 24 * time.Hour

var (
	// ErrMissingSecret is a deployment precondition failure, not an
	// authentication failure. Surfaced the first time the authority is built.
	ErrMissingSecret = errors.New("ADMIN_JWT_SECRET is not configured")

	// ErrRevocationUnsupported documents the accepted trade-off of stateless
	// tokens: "logout" only deletes the cookie, already-issued copies stay
	// valid until natural expiry. A denylist-backed authority would override
	// this.
	ErrRevocationUnsupported = errors.New("stateless session tokens cannot be revoked")
)

// Session is the verified claim set carried by an admin token. Nothing is
// stored server-side; validity is recomputed from the signature and embedded
// expiry on every request.
type Session struct {
	Username  string    `json:"username"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionAuthority issues and verifies admin identity tokens.
type SessionAuthority interface {
	// Issue builds and signs a token for username, valid for seven days.
	Issue(username string) (string, *Session, error)

	// Verify checks a serialized token. Any signature, parse, or expiry
	// failure comes back as an error; callers treat all of them as "no
	// session" (fail-closed).
	Verify(token string) (*Session, error)

	// RevokeAll invalidates every outstanding token, where the backend
	// supports it.
	RevokeAll() error
}

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTAuthority signs sessions with HMAC-SHA256 under a shared secret.
type JWTAuthority struct {
	secret []byte
	now    func() time.Time
}

var _ SessionAuthority = (*JWTAuthority)(nil)

// NewJWTAuthority creates the authority. An empty secret is a fatal
// configuration error.
func NewJWTAuthority(secret string) (*JWTAuthority, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &JWTAuthority{
		secret: []byte(secret),
		now:    time.Now,
	}, nil
}

func (a *JWTAuthority) Issue(username string) (string, *Session, error) {
	now := a.now()
	expiresAt := now.Add(sessionTTL)

	claims := sessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, &Session{
		Username:  username,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}, nil
}

func (a *JWTAuthority) Verify(token string) (*Session, error) {
	var claims sessionClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil {
		return nil, fmt.Errorf("session token rejected: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("session token rejected: invalid")
	}

	session := &Session{Username: claims.Username}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

func (a *JWTAuthority) RevokeAll() error {
	return ErrRevocationUnsupported
}
