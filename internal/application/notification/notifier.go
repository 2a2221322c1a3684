package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/go-social-api/internal/domain"
	"github.com/go-social-api/internal/pkg/id"
)

const defaultDeliveryTimeout = 5 * time.Second

type notificationWriter interface {
	Put(ctx context.Context, n *domain.Notification) error
}

type eventPublisher interface {
	Publish(ctx context.Context, eventType, message string) error
}

// Notifier delivers notifications on a best-effort basis. Notify never blocks the
// caller and never reports failure; delivery errors are logged. Wait drains
// in-flight deliveries and is called on shutdown.
type Notifier struct {
	repo      notificationWriter
	publisher eventPublisher
	timeout   time.Duration
	wg        sync.WaitGroup
}

// NewNotifier creates a Notifier. publisher may be nil, in which case notifications
// are only stored.
func NewNotifier(repo notificationWriter, publisher eventPublisher) *Notifier {
	return &Notifier{repo: repo, publisher: publisher, timeout: defaultDeliveryTimeout}
}

func (n *Notifier) Notify(ctx context.Context, note domain.Notification) {
	note.NotificationID = id.New()
	note.CreatedAt = time.Now().UTC().Truncate(time.Second)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
		defer cancel()
		n.deliver(dctx, note)
	}()
}

func (n *Notifier) deliver(ctx context.Context, note domain.Notification) {
	if err := n.repo.Put(ctx, &note); err != nil {
		slog.Warn("failed to store notification",
			"recipient_id", note.UserID, "actor_id", note.ActorID, "blog_id", note.BlogID, "err", err)
		return
	}
	if n.publisher == nil {
		return
	}
	payload, err := json.Marshal(note)
	if err != nil {
		slog.Warn("failed to encode notification event", "notification_id", note.NotificationID, "err", err)
		return
	}
	if err := n.publisher.Publish(ctx, "notification."+note.Source, string(payload)); err != nil {
		slog.Warn("failed to publish notification event", "notification_id", note.NotificationID, "err", err)
	}
}

// Wait blocks until every notification handed to Notify has been delivered or dropped.
func (n *Notifier) Wait() {
	n.wg.Wait()
}
