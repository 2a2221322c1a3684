package profile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-social-api/internal/domain"
)

const photoURLTTL = 15 * time.Minute

// photoExtensions lists the accepted photo content types by sniffed MIME type.
var photoExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type Service interface {
	// ChangePhoto replaces the user's profile photo and returns the new object key.
	ChangePhoto(ctx context.Context, userID string, body io.Reader) (string, error)
	DeletePhoto(ctx context.Context, userID string) error
	// PhotoURL returns a short-lived download URL for the user's current photo.
	PhotoURL(ctx context.Context, userID string) (string, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	SetProfilePhoto(ctx context.Context, userID string, key *string) error
}

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type service struct {
	users   userStore
	objects objectStore
	now     func() time.Time
}

func NewService(users userStore, objects objectStore) Service {
	return &service{users: users, objects: objects, now: time.Now}
}

func (s *service) ChangePhoto(ctx context.Context, userID string, body io.Reader) (string, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	br := bufio.NewReaderSize(body, 512)
	head, err := br.Peek(512)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return "", fmt.Errorf("read photo: %w", err)
	}
	contentType := http.DetectContentType(head)
	ext, ok := photoExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported photo type %s: %w", contentType, domain.ErrBadRequest)
	}

	key := fmt.Sprintf("profile/%s-%d.%s", userID, s.now().Unix(), ext)
	if _, err := s.objects.Upload(ctx, key, br, contentType); err != nil {
		return "", err
	}
	if err := s.users.SetProfilePhoto(ctx, userID, &key); err != nil {
		return "", err
	}
	if u.ProfilePhoto != nil && *u.ProfilePhoto != key {
		if err := s.objects.Delete(ctx, *u.ProfilePhoto); err != nil {
			slog.Warn("failed to delete replaced profile photo", "user_id", userID, "key", *u.ProfilePhoto, "err", err)
		}
	}
	return key, nil
}

func (s *service) DeletePhoto(ctx context.Context, userID string) error {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if u.ProfilePhoto == nil {
		return fmt.Errorf("no profile photo: %w", domain.ErrBadRequest)
	}
	if err := s.objects.Delete(ctx, *u.ProfilePhoto); err != nil {
		slog.Warn("failed to delete profile photo", "user_id", userID, "key", *u.ProfilePhoto, "err", err)
	}
	return s.users.SetProfilePhoto(ctx, userID, nil)
}

func (s *service) PhotoURL(ctx context.Context, userID string) (string, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if u.ProfilePhoto == nil {
		return "", fmt.Errorf("no profile photo: %w", domain.ErrNotFound)
	}
	return s.objects.PresignedURL(ctx, *u.ProfilePhoto, photoURLTTL)
}
