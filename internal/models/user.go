package models

import (
	"strings"

	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// DefaultCurrency is used for users that do not specify a currency on signup.
const DefaultCurrency = "USD"

// User is an account that owns all other resources.
type User struct {
	DefaultModel
	Email        string `gorm:"uniqueIndex"`
	Username     string
	PasswordHash string
	Currency     string
}

// BeforeSave normalizes the email address and validates the currency.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Username = strings.TrimSpace(u.Username)

	if u.Username == "" {
		u.Username = u.Email
	}

	c, err := ParseCurrency(u.Currency)
	if err != nil {
		return err
	}
	u.Currency = c

	return nil
}

// ParseCurrency returns the canonical ISO 4217 code for s.
// An empty string is parsed as the DefaultCurrency.
func ParseCurrency(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultCurrency, nil
	}

	unit, err := currency.ParseISO(s)
	if err != nil {
		return "", ErrCurrencyInvalid
	}

	return unit.String(), nil
}
