package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-social-api/internal/domain"
	"github.com/go-social-api/internal/infrastructure/google"
	jwtinfra "github.com/go-social-api/internal/infrastructure/jwt"
	"github.com/go-social-api/internal/pkg/id"
	pkgtoken "github.com/go-social-api/internal/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Signup(ctx context.Context, req domain.SignupRequest) (*domain.Session, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.Session, error)
	LoginWithGoogle(ctx context.Context, idToken string) (*domain.Session, error)
	// Authenticate resolves the caller from the presented credentials. When the access
	// credential has lapsed but the refresh credential and session marker are valid,
	// the returned principal carries a freshly minted access credential.
	Authenticate(ctx context.Context, creds domain.Credentials) (domain.Principal, error)
	Logout(ctx context.Context, p domain.Principal) error
	Me(ctx context.Context, p domain.Principal) (*domain.User, error)
}

type userStore interface {
	Create(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type kvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type tokenProvider interface {
	Sign(kind jwtinfra.Kind, userID string) (string, time.Time, error)
	Verify(kind jwtinfra.Kind, token string) (*jwtinfra.Claims, error)
	TTL(kind jwtinfra.Kind) time.Duration
}

type signupVerifier interface {
	CheckVerification(ctx context.Context, email string) error
	ConsumeVerification(ctx context.Context, email string) error
}

type googleVerifier interface {
	Verify(ctx context.Context, token string) (*google.Payload, error)
}

type service struct {
	userRepo       userStore
	store          kvStore
	tokens         tokenProvider
	signupVerifier signupVerifier
	googleVerifier googleVerifier
	bcryptCost     int
}

type ServiceDeps struct {
	UserRepo       userStore
	Store          kvStore
	Tokens         tokenProvider
	SignupVerifier signupVerifier
	GoogleVerifier googleVerifier
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

func NewService(deps ServiceDeps) Service {
	cost := deps.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &service{
		userRepo:       deps.UserRepo,
		store:          deps.Store,
		tokens:         deps.Tokens,
		signupVerifier: deps.SignupVerifier,
		googleVerifier: deps.GoogleVerifier,
		bcryptCost:     cost,
	}
}

var errInvalidCredentials = fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.Session, error) {
	email := normalizeEmail(req.Email)
	if err := s.signupVerifier.CheckVerification(ctx, email); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Truncate(time.Second)
	u := &domain.User{
		UserID:       id.New(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		About:        req.About,
		Experience:   req.Experience,
		Field:        req.Field,
		Interests:    req.Interests,
		AuthProvider: domain.AuthProviderLocal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	// The verification stays usable until an account actually exists for it.
	if err := s.signupVerifier.ConsumeVerification(ctx, email); err != nil {
		slog.Warn("failed to consume signup verification", "email", email, "err", err)
	}
	return s.establish(ctx, u)
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.Session, error) {
	u, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if u.PasswordHash == "" {
		return nil, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errInvalidCredentials
	}
	return s.establish(ctx, u)
}

func (s *service) LoginWithGoogle(ctx context.Context, idToken string) (*domain.Session, error) {
	p, err := s.googleVerifier.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}
	if p.Email == "" || p.Sub == "" {
		return nil, fmt.Errorf("incomplete google identity: %w", domain.ErrUnauthorized)
	}
	email := normalizeEmail(p.Email)

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return s.establish(ctx, u)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	u = &domain.User{
		UserID:       id.New(),
		Email:        email,
		Name:         name,
		Interests:    []string{},
		AuthProvider: domain.AuthProviderGoogle,
		GoogleSub:    p.Sub,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		if !errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		// Lost a race with a concurrent first login for the same address.
		if u, err = s.userRepo.GetByEmail(ctx, email); err != nil {
			return nil, err
		}
	}
	return s.establish(ctx, u)
}

// establish writes the session marker and mints both credentials.
func (s *service) establish(ctx context.Context, u *domain.User) (*domain.Session, error) {
	sessionID, err := pkgtoken.NewSessionID()
	if err != nil {
		return nil, err
	}
	refreshTTL := s.tokens.TTL(jwtinfra.Refresh)
	if err := s.store.SetWithTTL(ctx, domain.SessionMarkerKey(u.UserID), sessionID, refreshTTL); err != nil {
		return nil, fmt.Errorf("write session marker: %w", err)
	}
	access, accessExp, err := s.tokens.Sign(jwtinfra.Access, u.UserID)
	if err != nil {
		return nil, err
	}
	refresh, refreshExp, err := s.tokens.Sign(jwtinfra.Refresh, u.UserID)
	if err != nil {
		return nil, err
	}
	return &domain.Session{
		SessionID:        sessionID,
		User:             u,
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (s *service) Authenticate(ctx context.Context, creds domain.Credentials) (domain.Principal, error) {
	if creds.AccessToken == "" && creds.RefreshToken == "" {
		return domain.Principal{}, domain.ErrUnauthorized
	}

	// A missing access credential is handled like an expired one: clients drop the
	// cookie once its max-age lapses.
	if creds.AccessToken != "" {
		claims, err := s.tokens.Verify(jwtinfra.Access, creds.AccessToken)
		switch {
		case err == nil:
			if err := s.requireMarker(ctx, claims.Subject); err != nil {
				return domain.Principal{}, err
			}
			return domain.Principal{UserID: claims.Subject}, nil
		case !errors.Is(err, domain.ErrTokenExpired):
			return domain.Principal{}, domain.ErrInvalidToken
		}
	}

	if creds.RefreshToken == "" {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return s.renew(ctx, creds.RefreshToken)
}

func (s *service) renew(ctx context.Context, refreshToken string) (domain.Principal, error) {
	claims, err := s.tokens.Verify(jwtinfra.Refresh, refreshToken)
	if err != nil {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	if err := s.requireMarker(ctx, claims.Subject); err != nil {
		return domain.Principal{}, err
	}
	access, exp, err := s.tokens.Sign(jwtinfra.Access, claims.Subject)
	if err != nil {
		return domain.Principal{}, err
	}
	return domain.Principal{
		UserID:             claims.Subject,
		RenewedAccessToken: access,
		RenewedExpiresAt:   exp,
	}, nil
}

func (s *service) requireMarker(ctx context.Context, userID string) error {
	_, ok, err := s.store.Get(ctx, domain.SessionMarkerKey(userID))
	if err != nil {
		return fmt.Errorf("read session marker: %w", err)
	}
	if !ok {
		return domain.ErrSessionExpired
	}
	return nil
}

func (s *service) Logout(ctx context.Context, p domain.Principal) error {
	return s.store.Delete(ctx, domain.SessionMarkerKey(p.UserID))
}

func (s *service) Me(ctx context.Context, p domain.Principal) (*domain.User, error) {
	return s.userRepo.Get(ctx, p.UserID)
}
