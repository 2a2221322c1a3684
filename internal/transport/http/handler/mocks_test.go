package handler

import (
	"context"
	"io"

	"github.com/go-social-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockOTPSvc struct{ mock.Mock }

func (m *mockOTPSvc) Request(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *mockOTPSvc) Verify(ctx context.Context, email, code string) error {
	return m.Called(ctx, email, code).Error(0)
}
func (m *mockOTPSvc) CheckVerification(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *mockOTPSvc) ConsumeVerification(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type mockSessionSvc struct{ mock.Mock }

func (m *mockSessionSvc) session(args mock.Arguments) (*domain.Session, error) {
	if s, _ := args.Get(0).(*domain.Session); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSessionSvc) Signup(ctx context.Context, req domain.SignupRequest) (*domain.Session, error) {
	return m.session(m.Called(ctx, req))
}
func (m *mockSessionSvc) Login(ctx context.Context, req domain.LoginRequest) (*domain.Session, error) {
	return m.session(m.Called(ctx, req))
}
func (m *mockSessionSvc) LoginWithGoogle(ctx context.Context, idToken string) (*domain.Session, error) {
	return m.session(m.Called(ctx, idToken))
}
func (m *mockSessionSvc) Authenticate(ctx context.Context, creds domain.Credentials) (domain.Principal, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(domain.Principal), args.Error(1)
}
func (m *mockSessionSvc) Logout(ctx context.Context, p domain.Principal) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockSessionSvc) Me(ctx context.Context, p domain.Principal) (*domain.User, error) {
	args := m.Called(ctx, p)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockInteractionSvc struct{ mock.Mock }

func (m *mockInteractionSvc) Toggle(ctx context.Context, actorID string, kind domain.RelationKind, targetID string) (domain.ToggleResult, error) {
	args := m.Called(ctx, actorID, kind, targetID)
	return args.Get(0).(domain.ToggleResult), args.Error(1)
}
func (m *mockInteractionSvc) Save(ctx context.Context, actorID, blogID string) error {
	return m.Called(ctx, actorID, blogID).Error(0)
}
func (m *mockInteractionSvc) Unsave(ctx context.Context, actorID, blogID string) error {
	return m.Called(ctx, actorID, blogID).Error(0)
}
func (m *mockInteractionSvc) Annotate(ctx context.Context, actorID string, blogs []domain.Blog) ([]domain.BlogView, error) {
	args := m.Called(ctx, actorID, blogs)
	return args.Get(0).([]domain.BlogView), args.Error(1)
}

type mockBlogSvc struct{ mock.Mock }

func (m *mockBlogSvc) Create(ctx context.Context, authorID string, req domain.CreateBlogRequest) (*domain.Blog, error) {
	args := m.Called(ctx, authorID, req)
	if b, _ := args.Get(0).(*domain.Blog); b != nil {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBlogSvc) Get(ctx context.Context, viewerID, blogID string) (*domain.BlogView, error) {
	args := m.Called(ctx, viewerID, blogID)
	if v, _ := args.Get(0).(*domain.BlogView); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBlogSvc) ListByUser(ctx context.Context, viewerID, userID string, limit int, cursor string) (*domain.BlogPage, error) {
	args := m.Called(ctx, viewerID, userID, limit, cursor)
	if p, _ := args.Get(0).(*domain.BlogPage); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBlogSvc) Delete(ctx context.Context, actorID, blogID string) error {
	return m.Called(ctx, actorID, blogID).Error(0)
}
func (m *mockBlogSvc) Comment(ctx context.Context, actorID, blogID, message string) (*domain.Comment, error) {
	args := m.Called(ctx, actorID, blogID, message)
	if c, _ := args.Get(0).(*domain.Comment); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBlogSvc) ListComments(ctx context.Context, blogID string, limit int, cursor string) (*domain.CommentPage, error) {
	args := m.Called(ctx, blogID, limit, cursor)
	if p, _ := args.Get(0).(*domain.CommentPage); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockNotificationSvc struct{ mock.Mock }

func (m *mockNotificationSvc) ListUnread(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	n, _ := args.Get(0).([]domain.Notification)
	return n, args.Error(1)
}
func (m *mockNotificationSvc) MarkAsRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID, userID)
	if n, _ := args.Get(0).(*domain.Notification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockProfileSvc struct {
	mock.Mock
	body []byte
}

func (m *mockProfileSvc) ChangePhoto(ctx context.Context, userID string, body io.Reader) (string, error) {
	m.body, _ = io.ReadAll(body)
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}
func (m *mockProfileSvc) DeletePhoto(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *mockProfileSvc) PhotoURL(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}
