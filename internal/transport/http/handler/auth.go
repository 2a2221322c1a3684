package handler

import (
	"net/http"

	"github.com/go-social-api/internal/application/otp"
	"github.com/go-social-api/internal/application/session"
	"github.com/go-social-api/internal/domain"
	"github.com/go-social-api/internal/transport/http/middleware"
)

// AuthHandler handles the signup challenge and session endpoints.
type AuthHandler struct {
	otp      otp.Service
	sessions session.Service
	cookies  *middleware.Cookies
}

func NewAuthHandler(otpSvc otp.Service, sessions session.Service, cookies *middleware.Cookies) *AuthHandler {
	return &AuthHandler{otp: otpSvc, sessions: sessions, cookies: cookies}
}

func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.RequestOTPRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.otp.Request(r.Context(), req.Email); err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ok("OTP sent"))
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyOTPRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.otp.Verify(r.Context(), req.Email, req.OTP); err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ok("Email verified"))
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}
	sess, err := h.sessions.Signup(r.Context(), req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	h.cookies.SetSession(w, sess)
	writeJSON(w, http.StatusCreated, UserEnvelope{Envelope: ok("User registered"), User: sess.User})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	sess, err := h.sessions.Login(r.Context(), req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	h.cookies.SetSession(w, sess)
	writeJSON(w, http.StatusOK, UserEnvelope{Envelope: ok("Logged in"), User: sess.User})
}

func (h *AuthHandler) Google(w http.ResponseWriter, r *http.Request) {
	var req domain.GoogleLoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	sess, err := h.sessions.LoginWithGoogle(r.Context(), req.IDToken)
	if err != nil {
		httpError(w, r, err)
		return
	}
	h.cookies.SetSession(w, sess)
	writeJSON(w, http.StatusOK, UserEnvelope{Envelope: ok("Logged in"), User: sess.User})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	if err := h.sessions.Logout(r.Context(), p); err != nil {
		httpError(w, r, err)
		return
	}
	h.cookies.Clear(w)
	writeJSON(w, http.StatusOK, ok("Logged out"))
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	u, err := h.sessions.Me(r.Context(), p)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, UserEnvelope{Envelope: ok("User fetched"), User: u})
}
