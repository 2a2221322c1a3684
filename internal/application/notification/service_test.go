package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-social-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockNotificationStore struct{ mock.Mock }

func (m *mockNotificationStore) Put(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *mockNotificationStore) ListUnread(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	ns, _ := args.Get(0).([]domain.Notification)
	return ns, args.Error(1)
}
func (m *mockNotificationStore) Get(ctx context.Context, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	if n, _ := args.Get(0).(*domain.Notification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNotificationStore) MarkSeen(ctx context.Context, notificationID string) error {
	return m.Called(ctx, notificationID).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, eventType, message string) error {
	return m.Called(ctx, eventType, message).Error(0)
}

func likeNotification() domain.Notification {
	return domain.Notification{UserID: "U2", ActorID: "U1", Source: domain.NotificationLike, BlogID: "B1"}
}

// --- Notifier ---

func TestNotify_StoresAndPublishes(t *testing.T) {
	repo, pub := &mockNotificationStore{}, &mockPublisher{}
	repo.On("Put", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil)
	pub.On("Publish", mock.Anything, "notification.like", mock.Anything).Return(nil)

	n := NewNotifier(repo, pub)
	n.Notify(context.Background(), likeNotification())
	n.Wait()

	stored := repo.Calls[0].Arguments.Get(1).(*domain.Notification)
	assert.NotEmpty(t, stored.NotificationID)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, "U2", stored.UserID)
	assert.False(t, stored.Seen)

	var published domain.Notification
	require.NoError(t, json.Unmarshal([]byte(pub.Calls[0].Arguments.String(2)), &published))
	assert.Equal(t, stored.NotificationID, published.NotificationID)
}

func TestNotify_StoreFailureSkipsPublish(t *testing.T) {
	repo, pub := &mockNotificationStore{}, &mockPublisher{}
	repo.On("Put", mock.Anything, mock.Anything).Return(errors.New("throttled"))

	n := NewNotifier(repo, pub)
	n.Notify(context.Background(), likeNotification())
	n.Wait()

	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotify_PublishFailureIsSwallowed(t *testing.T) {
	repo, pub := &mockNotificationStore{}, &mockPublisher{}
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("sns down"))

	n := NewNotifier(repo, pub)
	n.Notify(context.Background(), likeNotification())
	n.Wait()

	pub.AssertNumberOfCalls(t, "Publish", 1)
}

func TestNotify_WithoutPublisher(t *testing.T) {
	repo := &mockNotificationStore{}
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)

	n := NewNotifier(repo, nil)
	n.Notify(context.Background(), likeNotification())
	n.Wait()

	repo.AssertNumberOfCalls(t, "Put", 1)
}

func TestNotify_OutlivesCancelledRequest(t *testing.T) {
	repo := &mockNotificationStore{}
	repo.On("Put", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		assert.NoError(t, ctx.Err())
	})

	ctx, cancel := context.WithCancel(context.Background())
	n := NewNotifier(repo, nil)
	n.Notify(ctx, likeNotification())
	cancel()
	n.Wait()

	repo.AssertNumberOfCalls(t, "Put", 1)
}

// --- inbox ---

func TestMarkAsRead_Forbidden(t *testing.T) {
	repo := &mockNotificationStore{}
	repo.On("Get", mock.Anything, "n1").Return(&domain.Notification{NotificationID: "n1", UserID: "U2"}, nil)

	_, err := NewService(repo).MarkAsRead(context.Background(), "n1", "U1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "MarkSeen", mock.Anything, mock.Anything)
}

func TestMarkAsRead_OK(t *testing.T) {
	repo := &mockNotificationStore{}
	repo.On("Get", mock.Anything, "n1").Return(&domain.Notification{NotificationID: "n1", UserID: "U2"}, nil)
	repo.On("MarkSeen", mock.Anything, "n1").Return(nil)

	n, err := NewService(repo).MarkAsRead(context.Background(), "n1", "U2")

	require.NoError(t, err)
	assert.True(t, n.Seen)
}

func TestMarkAsRead_AlreadySeen(t *testing.T) {
	repo := &mockNotificationStore{}
	repo.On("Get", mock.Anything, "n1").Return(&domain.Notification{NotificationID: "n1", UserID: "U2", Seen: true}, nil)

	n, err := NewService(repo).MarkAsRead(context.Background(), "n1", "U2")

	require.NoError(t, err)
	assert.True(t, n.Seen)
	repo.AssertNotCalled(t, "MarkSeen", mock.Anything, mock.Anything)
}

func TestMarkAsRead_NotFound(t *testing.T) {
	repo := &mockNotificationStore{}
	repo.On("Get", mock.Anything, "nx").Return(nil, domain.ErrNotFound)

	_, err := NewService(repo).MarkAsRead(context.Background(), "nx", "U2")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListUnread(t *testing.T) {
	repo := &mockNotificationStore{}
	repo.On("ListUnread", mock.Anything, "U2").Return([]domain.Notification{{NotificationID: "n1"}}, nil)

	ns, err := NewService(repo).ListUnread(context.Background(), "U2")

	require.NoError(t, err)
	assert.Len(t, ns, 1)
}
