package domain

import (
	"time"

	"github.com/google/uuid"
)

// Credentials is the opaque bundle returned by a platform's OAuth exchange.
// A zero Expiry means the token does not expire.
type Credentials struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	Expiry       time.Time `json:"expiry"`
	AccountID    string    `json:"accountId"`
}

// PlatformConnection is a user's credential state for one platform.
type PlatformConnection struct {
	UserID      uuid.UUID   `json:"userId"`
	Platform    Platform    `json:"platform"`
	Connected   bool        `json:"connected"`
	Credentials Credentials `json:"credentials"`
	ConnectedAt *time.Time  `json:"connectedAt,omitempty"`
}

// Usable reports whether the connection holds a token that has not expired.
func (c PlatformConnection) Usable(now time.Time) bool {
	if !c.Connected || c.Credentials.AccessToken == "" {
		return false
	}
	return c.Credentials.Expiry.IsZero() || now.Before(c.Credentials.Expiry)
}

// Connections is the per-user lookup table keyed by platform.
type Connections map[Platform]PlatformConnection

// Connected reports whether the user holds a connected credential for p.
func (c Connections) Connected(p Platform) (PlatformConnection, bool) {
	conn, ok := c[p]
	if !ok || !conn.Connected {
		return PlatformConnection{}, false
	}
	return conn, true
}
