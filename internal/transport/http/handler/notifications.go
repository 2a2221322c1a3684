package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-social-api/internal/application/notification"
	"github.com/go-social-api/internal/domain"
)

// NotificationHandler handles notification endpoints.
type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) ListUnread(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	notifications, err := h.svc.ListUnread(r.Context(), p.UserID)
	if err != nil {
		httpError(w, r, err)
		return
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, NotificationsEnvelope{Envelope: ok("Notifications fetched"), Notifications: notifications})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	n, err := h.svc.MarkAsRead(r.Context(), chi.URLParam(r, "id"), p.UserID)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, NotificationEnvelope{Envelope: ok("Notification marked as read"), Notification: n})
}
