// ABOUTME: Channel identity types: credentials, access tokens, handles and user ids
// ABOUTME: Handles are case-insensitive and normalised before they are used as cache keys

package domain

import (
	"regexp"
	"strings"
	"time"
)

// Credentials is the application's client id and secret pair.
// It is comparable and used directly as the token cache key.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// String redacts the secret so credentials can be logged safely
func (c Credentials) String() string {
	return "Credentials{ClientID: " + c.ClientID + ", ClientSecret: <redacted>}"
}

// IsZero reports whether either half of the pair is missing
func (c Credentials) IsZero() bool {
	return c.ClientID == "" || c.ClientSecret == ""
}

// AccessToken is an app access token minted by the authorization server.
// Downstream stages treat it as opaque.
type AccessToken struct {
	Value     string
	TokenType string

	// ExpiresAt is the expiry reported by the authorization server, zero if unknown
	ExpiresAt time.Time
}

// String redacts the token value
func (t AccessToken) String() string {
	return "AccessToken{Type: " + t.TokenType + ", Value: <redacted>}"
}

// Handle is a channel login name such as "twitchdev"
type Handle string

var handlePattern = regexp.MustCompile(`^[a-z0-9_]{1,25}$`)

// NormalizeHandle trims and lower-cases a raw handle
func NormalizeHandle(raw string) Handle {
	return Handle(strings.ToLower(strings.TrimSpace(raw)))
}

// Valid reports whether the handle matches the platform's login syntax.
// Call it on a normalised handle.
func (h Handle) Valid() bool {
	return handlePattern.MatchString(string(h))
}

// UserID is the platform's stable numeric user identifier in decimal form
type UserID string

func (id UserID) String() string {
	return string(id)
}
