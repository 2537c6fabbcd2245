// Package auth implements signup, login and token based sessions.
//
// Tokens are HS256 JWTs. The ID of a token is the ID of a persisted session,
// a token is only valid as long as its session exists and is not expired.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// MinPasswordLength is the minimum number of characters of a password.
	MinPasswordLength = 8

	// DefaultTTL is the lifetime of sessions if none is configured.
	DefaultTTL = 30 * 24 * time.Hour

	issuer = "pocket-ledger"
)

// Service issues and validates session tokens.
type Service struct {
	secret []byte
	ttl    time.Duration

	// Cost is the bcrypt cost for password hashes
	Cost int

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Claims are the claims of a session token.
type Claims struct {
	jwt.RegisteredClaims
}

// Result is returned for successful signups and logins.
type Result struct {
	User      models.User
	Token     string
	ExpiresAt time.Time
}

// NewService returns a Service that signs tokens with secret.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		Cost:   12,
		Now:    time.Now,
	}
}

// Signup creates a new user and logs them in.
func (s *Service) Signup(db *gorm.DB, email, password, currency string) (Result, error) {
	if len([]rune(password)) < MinPasswordLength {
		return Result{}, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.Cost)
	if err != nil {
		return Result{}, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Currency:     currency,
	}

	err = db.Create(&user).Error
	if err != nil {
		return Result{}, err
	}

	return s.newSession(db, user)
}

// Login verifies the credentials and starts a new session.
func (s *Service) Login(db *gorm.DB, email, password string) (Result, error) {
	var user models.User
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return Result{}, ErrInvalidCredentials
		}
		return Result{}, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return Result{}, ErrInvalidCredentials
	}

	return s.newSession(db, user)
}

// Logout deletes the session, which revokes all tokens for it.
func (s *Service) Logout(db *gorm.DB, sessionID uuid.UUID) error {
	return db.Where("id = ?", sessionID).Delete(&models.Session{}).Error
}

// Authenticate parses the token and returns its session.
func (s *Service) Authenticate(db *gorm.DB, token string) (models.Session, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.Now))
	if err != nil || !t.Valid {
		return models.Session{}, ErrTokenInvalid
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return models.Session{}, ErrTokenInvalid
	}

	var session models.Session
	err = db.Preload("User").First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return models.Session{}, ErrTokenInvalid
		}
		return models.Session{}, err
	}

	if session.Expired(s.Now()) || session.UserID.String() != claims.Subject {
		return models.Session{}, ErrTokenInvalid
	}

	return session, nil
}

// PurgeExpired deletes all sessions that are expired and returns how many were deleted.
func (s *Service) PurgeExpired(db *gorm.DB) (int64, error) {
	tx := db.Where("expires_at <= ?", s.Now().UTC()).Delete(&models.Session{})
	return tx.RowsAffected, tx.Error
}

func (s *Service) newSession(db *gorm.DB, user models.User) (Result, error) {
	now := s.Now().UTC()
	session := models.Session{
		UserID:    user.ID,
		ExpiresAt: now.Add(s.ttl),
	}

	err := db.Create(&session).Error
	if err != nil {
		return Result{}, err
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID.String(),
			Subject:   user.ID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Result{}, fmt.Errorf("signing token: %w", err)
	}

	return Result{
		User:      user,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
