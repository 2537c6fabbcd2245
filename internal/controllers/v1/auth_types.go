package v1

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pocket-ledger/backend/internal/auth"
	"github.com/pocket-ledger/backend/internal/models"
)

type SignupEditable struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"` // Email address, also used as username
	Password string `json:"password" binding:"required,min=8" example:"correct horse battery staple"`
	Currency string `json:"currency" example:"EUR" default:"USD"` // ISO 4217 currency code
}

// UnmarshalJSON trims the email address so that it is validated the way it is stored.
func (s *SignupEditable) UnmarshalJSON(data []byte) error {
	type signup SignupEditable

	var raw signup
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	raw.Email = strings.TrimSpace(raw.Email)
	*s = SignupEditable(raw)
	return nil
}

type Credentials struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

type User struct {
	models.DefaultModel
	Email    string `json:"email" example:"jane@example.com"` // Email address of the user
	Username string `json:"username" example:"jane@example.com"`
	Currency string `json:"currency" example:"EUR"` // ISO 4217 currency code
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Email:        model.Email,
		Username:     model.Username,
		Currency:     model.Currency,
	}
}

type Session struct {
	User      User      `json:"user"`
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.e30.Et9HFtf9R3GEMA0IICOfFMVXY7kkTX1wr4qCyhIf58U"` // Bearer token for the Authorization header
	ExpiresAt time.Time `json:"expiresAt" example:"2024-05-01T12:00:00Z"`                                                             // Time the token expires
}

func newSession(r auth.Result) Session {
	return Session{
		User:      newUser(r.User),
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
	}
}

type SessionResponse struct {
	Data  *Session `json:"data"`                                                       // The session
	Error *string  `json:"error" example:"the email address or the password is wrong"` // The error, if any occurred
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                 // The authenticated user
	Error *string `json:"error" example:"there is no user matching your query"` // The error, if any occurred
}
