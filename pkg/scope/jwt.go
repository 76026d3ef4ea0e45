package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrEmptySecret  = errors.New("session secret must not be empty")
)

type claims struct {
	SessionID string `json:"sid"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL is the lifetime given to new tokens.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Sign issues a token for p. A zero ExpiresAt is filled from the manager TTL.
func (m *Manager) Sign(p Payload) (string, Payload, error) {
	now := m.now()
	if p.ExpiresAt.IsZero() {
		p.ExpiresAt = now.Add(m.ttl)
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		SessionID: p.SessionID,
		Role:      p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(p.ExpiresAt),
		},
	})
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", Payload{}, fmt.Errorf("scope.Sign: %w", err)
	}
	return signed, p, nil
}

// Verify parses token and returns its payload when the signature and expiry hold.
func (m *Manager) Verify(token string) (Payload, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return Payload{}, ErrInvalidToken
	}
	if c.SessionID == "" || c.Subject == "" {
		return Payload{}, ErrInvalidToken
	}

	p := Payload{
		SessionID: c.SessionID,
		UserID:    c.Subject,
		Role:      c.Role,
	}
	if c.ExpiresAt != nil {
		p.ExpiresAt = c.ExpiresAt.Time
	}
	return p, nil
}
