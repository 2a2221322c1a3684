package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-social-api/internal/config"
	"github.com/go-social-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthenticator struct{ mock.Mock }

func (m *mockAuthenticator) Authenticate(ctx context.Context, creds domain.Credentials) (domain.Principal, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(domain.Principal), args.Error(1)
}

func newTestAuthenticator(svc *mockAuthenticator) *Authenticator {
	return NewAuthenticator(svc, NewCookies(&config.Config{CookieSecure: true, CookieSameSite: "none"}))
}

func cookieReq(access, refresh string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if access != "" {
		req.AddCookie(&http.Cookie{Name: AccessCookie, Value: access})
	}
	if refresh != "" {
		req.AddCookie(&http.Cookie{Name: RefreshCookie, Value: refresh})
	}
	return req
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestWrap_PassesPrincipal(t *testing.T) {
	svc := &mockAuthenticator{}
	svc.On("Authenticate", mock.Anything, domain.Credentials{AccessToken: "a", RefreshToken: "r"}).
		Return(domain.Principal{UserID: "u1"}, nil)

	var got domain.Principal
	h := newTestAuthenticator(svc).Wrap(func(w http.ResponseWriter, _ *http.Request, p domain.Principal) {
		got = p
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, cookieReq("a", "r"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "u1", got.UserID)
	assert.Nil(t, findCookie(rr, AccessCookie))
}

func TestWrap_RenewedAccessSetsCookie(t *testing.T) {
	svc := &mockAuthenticator{}
	exp := time.Now().Add(15 * time.Minute)
	svc.On("Authenticate", mock.Anything, domain.Credentials{RefreshToken: "r"}).
		Return(domain.Principal{UserID: "u1", RenewedAccessToken: "fresh", RenewedExpiresAt: exp}, nil)

	h := newTestAuthenticator(svc).Wrap(func(w http.ResponseWriter, _ *http.Request, _ domain.Principal) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, cookieReq("", "r"))

	require.Equal(t, http.StatusOK, rr.Code)
	c := findCookie(rr, AccessCookie)
	require.NotNil(t, c)
	assert.Equal(t, "fresh", c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
	assert.InDelta(t, 15*60, c.MaxAge, 2)
	assert.Nil(t, findCookie(rr, RefreshCookie))
}

func TestWrap_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"no credentials", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized},
		{"session expired", domain.ErrSessionExpired, http.StatusUnauthorized},
		{"store failure", errors.New("redis down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockAuthenticator{}
			svc.On("Authenticate", mock.Anything, mock.Anything).Return(domain.Principal{}, tc.err)

			called := false
			h := newTestAuthenticator(svc).Wrap(func(http.ResponseWriter, *http.Request, domain.Principal) {
				called = true
			})

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, cookieReq("a", "r"))

			assert.Equal(t, tc.status, rr.Code)
			assert.False(t, called)
			assert.Contains(t, rr.Body.String(), `"success":false`)
		})
	}
}

func TestWrap_SessionExpiredClearsCookies(t *testing.T) {
	svc := &mockAuthenticator{}
	svc.On("Authenticate", mock.Anything, mock.Anything).Return(domain.Principal{}, domain.ErrSessionExpired)

	rr := httptest.NewRecorder()
	newTestAuthenticator(svc).Wrap(func(http.ResponseWriter, *http.Request, domain.Principal) {}).
		ServeHTTP(rr, cookieReq("a", "r"))

	for _, name := range []string{AccessCookie, RefreshCookie} {
		c := findCookie(rr, name)
		require.NotNil(t, c, name)
		assert.Equal(t, -1, c.MaxAge)
	}
}

func TestCookies_SetSession(t *testing.T) {
	c := NewCookies(&config.Config{CookieSecure: false, CookieSameSite: "lax"})
	now := time.Now()
	rr := httptest.NewRecorder()

	c.SetSession(rr, &domain.Session{
		AccessToken:      "acc",
		AccessExpiresAt:  now.Add(15 * time.Minute),
		RefreshToken:     "ref",
		RefreshExpiresAt: now.Add(720 * time.Hour),
	})

	access := findCookie(rr, AccessCookie)
	refresh := findCookie(rr, RefreshCookie)
	require.NotNil(t, access)
	require.NotNil(t, refresh)
	assert.Equal(t, "acc", access.Value)
	assert.Equal(t, "ref", refresh.Value)
	assert.False(t, access.Secure)
	assert.Equal(t, http.SameSiteLaxMode, refresh.SameSite)
	assert.InDelta(t, 720*3600, refresh.MaxAge, 2)
}
