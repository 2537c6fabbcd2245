package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a login of a user. Tokens reference it by its ID, deleting
// the session revokes the token.
type Session struct {
	DefaultModel
	User      User `gorm:"constraint:OnDelete:CASCADE"`
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// Expired reports whether the session is expired at t.
func (s Session) Expired(t time.Time) bool {
	return !t.Before(s.ExpiresAt)
}
