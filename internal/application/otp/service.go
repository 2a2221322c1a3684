package otp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-social-api/internal/domain"
	pkgtoken "github.com/go-social-api/internal/pkg/token"
)

const codeLength = 6

// Service issues and checks the one-time codes that gate account creation.
type Service interface {
	Request(ctx context.Context, email string) error
	Verify(ctx context.Context, email, code string) error
	// CheckVerification reports domain.ErrOTPNotVerified unless a Verify succeeded
	// within the verified window. It does not consume the verification.
	CheckVerification(ctx context.Context, email string) error
	// ConsumeVerification succeeds once per successful Verify, within the verified window.
	ConsumeVerification(ctx context.Context, email string) error
}

type kvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Delete(ctx context.Context, key string) error
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

type service struct {
	store         kvStore
	userRepo      userStore
	mailer        mailer
	codeTTL       time.Duration
	attemptWindow time.Duration
	maxAttempts   int
	verifiedTTL   time.Duration
	now           func() time.Time
	newCode       func() (string, error)
}

type ServiceDeps struct {
	Store         kvStore
	UserRepo      userStore
	Mailer        mailer
	CodeTTL       time.Duration
	AttemptWindow time.Duration
	MaxAttempts   int
	VerifiedTTL   time.Duration
	// Now and NewCode default to time.Now and a random 6-digit code.
	Now     func() time.Time
	NewCode func() (string, error)
}

func NewService(deps ServiceDeps) Service {
	s := &service{
		store:         deps.Store,
		userRepo:      deps.UserRepo,
		mailer:        deps.Mailer,
		codeTTL:       deps.CodeTTL,
		attemptWindow: deps.AttemptWindow,
		maxAttempts:   deps.MaxAttempts,
		verifiedTTL:   deps.VerifiedTTL,
		now:           deps.Now,
		newCode:       deps.NewCode,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newCode == nil {
		s.newCode = func() (string, error) { return pkgtoken.NewNumericCode(codeLength) }
	}
	return s
}

// NormalizeEmail is the canonical form under which signup state is keyed.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Request(ctx context.Context, email string) error {
	email = NormalizeEmail(email)

	_, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.ErrAlreadyRegistered
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("lookup user: %w", err)
	}

	// The counter is bumped before anything is written so concurrent requests
	// cannot all slip under the ceiling.
	attempts, err := s.store.Incr(ctx, domain.SignupAttemptsKey(email), s.attemptWindow)
	if err != nil {
		return err
	}
	if attempts > int64(s.maxAttempts) {
		return domain.ErrRateLimited
	}

	code, err := s.newCode()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(domain.OTPRecord{Code: code, ExpiresAt: s.now().Add(s.codeTTL)})
	if err != nil {
		return fmt.Errorf("marshal otp: %w", err)
	}
	if err := s.store.SetWithTTL(ctx, domain.SignupOTPKey(email), string(raw), s.codeTTL); err != nil {
		return err
	}

	s.sendCode(email, code)
	return nil
}

// sendCode mails the code. Delivery is best-effort: the code is already stored,
// so a failure is logged and the request still succeeds.
func (s *service) sendCode(email, code string) {
	minutes := int(s.codeTTL.Minutes())
	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, minutes)
	if err := s.mailer.SendEmail(email, "Your verification code", body); err != nil {
		slog.Warn("failed to send signup otp", "email", email, "err", err)
	}
}

func (s *service) Verify(ctx context.Context, email, code string) error {
	email = NormalizeEmail(email)

	raw, ok, err := s.store.Get(ctx, domain.SignupOTPKey(email))
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrOTPNotFound
	}
	var rec domain.OTPRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return fmt.Errorf("decode otp: %w", err)
	}
	if rec.Code != code {
		return domain.ErrOTPMismatch
	}
	if !s.now().Before(rec.ExpiresAt) {
		return domain.ErrOTPExpired
	}

	if err := s.store.Delete(ctx, domain.SignupOTPKey(email)); err != nil {
		return err
	}
	return s.store.SetWithTTL(ctx, domain.SignupVerifiedKey(email), "1", s.verifiedTTL)
}

func (s *service) CheckVerification(ctx context.Context, email string) error {
	_, ok, err := s.store.Get(ctx, domain.SignupVerifiedKey(NormalizeEmail(email)))
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrOTPNotVerified
	}
	return nil
}

func (s *service) ConsumeVerification(ctx context.Context, email string) error {
	key := domain.SignupVerifiedKey(NormalizeEmail(email))
	_, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrOTPNotVerified
	}
	return s.store.Delete(ctx, key)
}
