package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-social-api/internal/application/blog"
	"github.com/go-social-api/internal/domain"
	"github.com/go-social-api/internal/pkg/validate"
)

// httpError maps a service error onto a status code and a client-safe message.
// Anything outside the domain taxonomy is a 500 and is logged with the request id.
func httpError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrOTPExpired):
		writeError(w, http.StatusBadRequest, "OTP has expired")
	case errors.Is(err, domain.ErrOTPNotFound), errors.Is(err, domain.ErrOTPMismatch):
		writeError(w, http.StatusBadRequest, "Invalid OTP")
	case errors.Is(err, domain.ErrOTPNotVerified):
		writeError(w, http.StatusBadRequest, "Email is not verified")
	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusBadRequest, "Too many attempts, try again later")
	case errors.Is(err, domain.ErrAlreadyRegistered):
		writeError(w, http.StatusConflict, "User already registered")
	case errors.Is(err, domain.ErrBadRequest), errors.Is(err, domain.ErrInvalidOperation):
		writeError(w, http.StatusBadRequest, clientMessage(err))
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrSessionExpired), errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, clientMessage(err))
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, clientMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, clientMessage(err))
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, clientMessage(err))
	default:
		slog.Error("request failed", "request_id", chimiddleware.GetReqID(r.Context()),
			"method", r.Method, "path", r.URL.Path, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// clientMessage keeps the outermost context of a wrapped domain error,
// e.g. "blog already saved: conflict" becomes "blog already saved".
func clientMessage(err error) string {
	msg, _, _ := strings.Cut(err.Error(), ":")
	return msg
}

// decodeBody decodes and validates a JSON request body, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// parseLimit reads the optional limit query parameter. Zero means the default page size.
func parseLimit(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > blog.MaxPageSize {
		return 0, false
	}
	return n, true
}
