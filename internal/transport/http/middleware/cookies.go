package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-social-api/internal/config"
	"github.com/go-social-api/internal/domain"
)

const (
	AccessCookie  = "accessToken"
	RefreshCookie = "refreshToken"
)

// Cookies writes and clears the credential cookies.
type Cookies struct {
	secure   bool
	sameSite http.SameSite
}

func NewCookies(cfg *config.Config) *Cookies {
	return &Cookies{secure: cfg.CookieSecure, sameSite: parseSameSite(cfg.CookieSameSite)}
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "lax":
		return http.SameSiteLaxMode
	default:
		return http.SameSiteNoneMode
	}
}

// SetSession writes both credential cookies for a freshly established session.
func (c *Cookies) SetSession(w http.ResponseWriter, s *domain.Session) {
	c.set(w, AccessCookie, s.AccessToken, s.AccessExpiresAt)
	c.set(w, RefreshCookie, s.RefreshToken, s.RefreshExpiresAt)
}

// SetAccess rewrites only the access cookie, after a refresh-driven renewal.
func (c *Cookies) SetAccess(w http.ResponseWriter, token string, expiresAt time.Time) {
	c.set(w, AccessCookie, token, expiresAt)
}

// Clear expires both credential cookies.
func (c *Cookies) Clear(w http.ResponseWriter) {
	for _, name := range []string{AccessCookie, RefreshCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   c.secure,
			SameSite: c.sameSite,
		})
	}
}

func (c *Cookies) set(w http.ResponseWriter, name, value string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: c.sameSite,
	})
}

// readCredentials collects the credential cookies presented with r.
func readCredentials(r *http.Request) domain.Credentials {
	var creds domain.Credentials
	if c, err := r.Cookie(AccessCookie); err == nil {
		creds.AccessToken = c.Value
	}
	if c, err := r.Cookie(RefreshCookie); err == nil {
		creds.RefreshToken = c.Value
	}
	return creds
}
