package jwtinfra

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-social-api/internal/config"
	"github.com/go-social-api/internal/domain"
	"github.com/go-social-api/internal/pkg/id"
	"github.com/golang-jwt/jwt/v5"
)

// Kind distinguishes the two credential types. Each kind has its own secret and
// lifetime, and a token of one kind never verifies as the other.
type Kind string

const (
	Access  Kind = "access"
	Refresh Kind = "refresh"
)

// Claims holds the JWT payload fields.
type Claims struct {
	Kind Kind `json:"kind"`
	jwt.RegisteredClaims
}

type keyConfig struct {
	secret []byte
	ttl    time.Duration
}

// Provider signs and verifies HS256 access and refresh credentials.
type Provider struct {
	keys map[Kind]keyConfig
	now  func() time.Time
}

func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.AccessTokenSecret == "" || cfg.RefreshTokenSecret == "" {
		return nil, errors.New("access and refresh token secrets are required")
	}
	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		return nil, errors.New("access and refresh token secrets must differ")
	}
	return &Provider{
		keys: map[Kind]keyConfig{
			Access:  {secret: []byte(cfg.AccessTokenSecret), ttl: cfg.AccessTokenTTL},
			Refresh: {secret: []byte(cfg.RefreshTokenSecret), ttl: cfg.RefreshTokenTTL},
		},
		now: time.Now,
	}, nil
}

// TTL returns the lifetime of credentials of the given kind.
func (p *Provider) TTL(kind Kind) time.Duration {
	return p.keys[kind].ttl
}

// Sign issues a credential of kind for userID and returns it with its expiry.
func (p *Provider) Sign(kind Kind, userID string) (string, time.Time, error) {
	key, ok := p.keys[kind]
	if !ok {
		return "", time.Time{}, fmt.Errorf("unknown token kind %q", kind)
	}
	now := p.now()
	exp := now.Add(key.ttl)
	claims := Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        id.New(),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign %s token: %w", kind, err)
	}
	return signed, exp, nil
}

// Verify checks signature, expiry and kind. An expired but otherwise well-formed
// token yields domain.ErrTokenExpired; every other failure yields domain.ErrInvalidToken.
func (p *Provider) Verify(kind Kind, tokenStr string) (*Claims, error) {
	key, ok := p.keys[kind]
	if !ok {
		return nil, fmt.Errorf("unknown token kind %q: %w", kind, domain.ErrInvalidToken)
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return key.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s token: %w", kind, domain.ErrTokenExpired)
		}
		return nil, fmt.Errorf("%s token: %w", kind, domain.ErrInvalidToken)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Kind != kind || claims.Subject == "" {
		return nil, fmt.Errorf("%s token claims: %w", kind, domain.ErrInvalidToken)
	}
	return claims, nil
}
