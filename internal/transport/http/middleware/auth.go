package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-social-api/internal/domain"
)

// AuthedHandler is a handler that receives the authenticated caller explicitly.
type AuthedHandler func(w http.ResponseWriter, r *http.Request, p domain.Principal)

type authenticator interface {
	Authenticate(ctx context.Context, creds domain.Credentials) (domain.Principal, error)
}

// Authenticator resolves the caller from the credential cookies before invoking
// an AuthedHandler.
type Authenticator struct {
	svc     authenticator
	cookies *Cookies
}

func NewAuthenticator(svc authenticator, cookies *Cookies) *Authenticator {
	return &Authenticator{svc: svc, cookies: cookies}
}

// Wrap adapts next into an http.HandlerFunc. A renewed access credential is
// written back as a cookie before next runs.
func (a *Authenticator) Wrap(next AuthedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := a.svc.Authenticate(r.Context(), readCredentials(r))
		if err != nil {
			a.reject(w, r, err)
			return
		}
		if p.Renewed() {
			a.cookies.SetAccess(w, p.RenewedAccessToken, p.RenewedExpiresAt)
		}
		next(w, r, p)
	}
}

func (a *Authenticator) reject(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionExpired):
		a.cookies.Clear(w)
		writeJSONError(w, http.StatusUnauthorized, "Session expired, please log in again")
	case errors.Is(err, domain.ErrInvalidToken):
		writeJSONError(w, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		slog.Error("authentication failed", "request_id", chimiddleware.GetReqID(r.Context()), "err", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
