package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-social-api/internal/domain"
)

// Envelope is the common response wrapper. Payload envelopes embed it.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ok(msg string) Envelope { return Envelope{Success: true, Message: msg} }

// UserEnvelope wraps signup, login and profile responses.
type UserEnvelope struct {
	Envelope
	User *domain.User `json:"user"`
}

// ToggleEnvelope reports the state a toggle left the relation in.
type ToggleEnvelope struct {
	Envelope
	domain.ToggleResult
}

type BlogEnvelope struct {
	Envelope
	Blog any `json:"blog"`
}

type BlogPageEnvelope struct {
	Envelope
	*domain.BlogPage
}

type CommentEnvelope struct {
	Envelope
	Comment *domain.Comment `json:"comment"`
}

type CommentPageEnvelope struct {
	Envelope
	*domain.CommentPage
}

type NotificationsEnvelope struct {
	Envelope
	Notifications []domain.Notification `json:"notifications"`
}

type NotificationEnvelope struct {
	Envelope
	Notification *domain.Notification `json:"notification"`
}

type PhotoEnvelope struct {
	Envelope
	Key string `json:"key,omitempty"`
	URL string `json:"url,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Envelope{Success: false, Message: msg})
}
