package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the app-facing token payload. UserID is the doctor's
// account identifier and doubles as the document key for their profile.
type Claims struct {
	UserID    string
	SessionID *uuid.UUID

	// Profile claims carried over from the identity provider.
	Name    string
	Email   string
	Picture string

	Issuer   string
	Audience string

	IssuedAt    time.Time
	NotBefore   time.Time
	ExpiresAt   time.Time
	TokenID     string // jti
	Subject     string
	RawFooter   []byte
	RawClaimsJS []byte
}

func (c *Claims) GetUserID() string {
	return c.UserID
}

func (c *Claims) GetSessionID() *uuid.UUID {
	return c.SessionID
}

func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
