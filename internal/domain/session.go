package domain

import "time"

// Principal is the authenticated caller of a request. Handlers receive it as an
// explicit argument; it is never stored on the request context.
type Principal struct {
	UserID string
	// RenewedAccessToken is set when the request authenticated through the refresh
	// credential and a new access credential was minted for the response.
	RenewedAccessToken string
	RenewedExpiresAt   time.Time
}

// Renewed reports whether a fresh access credential must be returned to the client.
func (p Principal) Renewed() bool { return p.RenewedAccessToken != "" }

// Credentials are the bearer tokens presented by a client.
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// Session is the result of a successful signup or login.
type Session struct {
	SessionID        string
	User             *User
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// SessionMarkerKey is the key-value store key whose presence keeps a user's credentials valid.
func SessionMarkerKey(userID string) string { return "session:" + userID }
